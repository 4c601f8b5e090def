package models

import "time"

// Schedule represents a recurring announcement broadcast at fixed times.
type Schedule struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	CronExpression string     `json:"cronExpression"` // e.g., "0 8 * * *" for 8 AM daily
	Message        string     `json:"message"`
	IsActive       bool       `json:"isActive"`
	LastRunAt      *time.Time `json:"lastRunAt"`
	NextRunAt      *time.Time `json:"nextRunAt"`
	CreatedAt      time.Time  `json:"createdAt"`
}
