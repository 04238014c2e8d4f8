// Package entities contains core business entities.
package entities

// User is a read-only identity referenced by projects, members and tasks.
type User struct {
	ID       int64
	Username string
	Email    string
}
