package services

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/campusconnect/portal-be/internal/models"
)

// ExchangeServiceProvider defines the interface for the exchange-post store.
type ExchangeServiceProvider interface {
	Create(post models.ExchangePost) (models.ExchangePost, error)
	List() ([]models.ExchangePost, error)
}

// ExchangeService persists exchange posts.
type ExchangeService struct {
	db *sql.DB
}

// NewExchangeService creates a new ExchangeService.
func NewExchangeService(db *sql.DB) *ExchangeService {
	return &ExchangeService{db: db}
}

// Create assigns an ID and creation timestamp, then persists the post.
func (s *ExchangeService) Create(post models.ExchangePost) (models.ExchangePost, error) {
	post.ID = uuid.New().String()
	post.CreatedAt = time.Now().UTC()

	_, err := s.db.Exec(
		"INSERT INTO exchange_posts(id, title, type, description, created_at) VALUES(?, ?, ?, ?, ?)",
		post.ID, post.Title, post.Type, post.Description, post.CreatedAt,
	)
	if err != nil {
		return models.ExchangePost{}, err
	}
	return post, nil
}

// List returns every post in the store.
func (s *ExchangeService) List() ([]models.ExchangePost, error) {
	rows, err := s.db.Query("SELECT id, title, type, description, created_at FROM exchange_posts")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	posts := []models.ExchangePost{}
	for rows.Next() {
		var post models.ExchangePost
		if err := rows.Scan(&post.ID, &post.Title, &post.Type, &post.Description, &post.CreatedAt); err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, rows.Err()
}
