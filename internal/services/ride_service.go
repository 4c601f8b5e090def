package services

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/campusconnect/portal-be/internal/models"
)

// RideServiceProvider defines the interface for the ride-share store.
type RideServiceProvider interface {
	Create(ride models.Ride) (models.Ride, error)
	List() ([]models.Ride, error)
}

// RideService persists ride-share offers.
type RideService struct {
	db *sql.DB
}

// NewRideService creates a new RideService.
func NewRideService(db *sql.DB) *RideService {
	return &RideService{db: db}
}

// Create assigns an ID and creation timestamp, then persists the offer.
func (s *RideService) Create(ride models.Ride) (models.Ride, error) {
	ride.ID = uuid.New().String()
	ride.CreatedAt = time.Now().UTC()

	_, err := s.db.Exec(
		"INSERT INTO rides(id, departure, destination, time, created_at) VALUES(?, ?, ?, ?, ?)",
		ride.ID, ride.Departure, ride.Destination, ride.Time, ride.CreatedAt,
	)
	if err != nil {
		return models.Ride{}, err
	}
	return ride, nil
}

// List returns every offer in the store.
func (s *RideService) List() ([]models.Ride, error) {
	rows, err := s.db.Query("SELECT id, departure, destination, time, created_at FROM rides")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	rides := []models.Ride{}
	for rows.Next() {
		var ride models.Ride
		if err := rows.Scan(&ride.ID, &ride.Departure, &ride.Destination, &ride.Time, &ride.CreatedAt); err != nil {
			return nil, err
		}
		rides = append(rides, ride)
	}
	return rides, rows.Err()
}
