package services

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/campusconnect/portal-be/internal/models"
)

// LostFoundServiceProvider defines the interface for the lost-and-found store.
type LostFoundServiceProvider interface {
	Create(item models.LostFoundItem) (models.LostFoundItem, error)
	List() ([]models.LostFoundItem, error)
}

// LostFoundService persists lost-and-found reports.
type LostFoundService struct {
	db *sql.DB
}

// NewLostFoundService creates a new LostFoundService.
func NewLostFoundService(db *sql.DB) *LostFoundService {
	return &LostFoundService{db: db}
}

// Create assigns an ID and creation timestamp, then persists the report.
func (s *LostFoundService) Create(item models.LostFoundItem) (models.LostFoundItem, error) {
	item.ID = uuid.New().String()
	item.CreatedAt = time.Now().UTC()

	_, err := s.db.Exec(
		"INSERT INTO lostfound_items(id, item_name, status, location, created_at) VALUES(?, ?, ?, ?, ?)",
		item.ID, item.ItemName, item.Status, item.Location, item.CreatedAt,
	)
	if err != nil {
		return models.LostFoundItem{}, err
	}
	return item, nil
}

// List returns every report in the store.
func (s *LostFoundService) List() ([]models.LostFoundItem, error) {
	rows, err := s.db.Query("SELECT id, item_name, status, location, created_at FROM lostfound_items")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.LostFoundItem{}
	for rows.Next() {
		var item models.LostFoundItem
		if err := rows.Scan(&item.ID, &item.ItemName, &item.Status, &item.Location, &item.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
