package models

// Client represents a customer of the atelier.
// Clients are append-only: there is no update or delete route.
type Client struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	Address      string `json:"address"`
	RegisteredOn string `json:"registered_on"` // ISO date, set at creation
}
