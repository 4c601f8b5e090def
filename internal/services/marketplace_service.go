package services

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/campusconnect/portal-be/internal/models"
)

// MarketplaceServiceProvider defines the interface for the marketplace store.
type MarketplaceServiceProvider interface {
	Create(item models.MarketplaceItem) (models.MarketplaceItem, error)
	List() ([]models.MarketplaceItem, error)
}

// MarketplaceService persists marketplace listings.
type MarketplaceService struct {
	db *sql.DB
}

// NewMarketplaceService creates a new MarketplaceService.
func NewMarketplaceService(db *sql.DB) *MarketplaceService {
	return &MarketplaceService{db: db}
}

// Create assigns an ID and creation timestamp, then persists the listing.
func (s *MarketplaceService) Create(item models.MarketplaceItem) (models.MarketplaceItem, error) {
	item.ID = uuid.New().String()
	item.CreatedAt = time.Now().UTC()

	_, err := s.db.Exec(
		"INSERT INTO marketplace_items(id, item_name, price, description, condition, created_at) VALUES(?, ?, ?, ?, ?, ?)",
		item.ID, item.ItemName, item.Price, item.Description, item.Condition, item.CreatedAt,
	)
	if err != nil {
		return models.MarketplaceItem{}, err
	}
	return item, nil
}

// List returns every listing in the store.
func (s *MarketplaceService) List() ([]models.MarketplaceItem, error) {
	rows, err := s.db.Query("SELECT id, item_name, price, description, condition, created_at FROM marketplace_items")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.MarketplaceItem{}
	for rows.Next() {
		var item models.MarketplaceItem
		if err := rows.Scan(&item.ID, &item.ItemName, &item.Price, &item.Description, &item.Condition, &item.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
