// Package entities contains core business entities.
package entities

import "time"

// Project is a named container of tasks owned by one user.
type Project struct {
	ID          int64
	Name        string
	Description string
	OwnerID     int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
