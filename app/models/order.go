package models

// Recognized order statuses. The field itself is free text: the UI offers
// these values but the storage layer accepts any string.
const (
	StatusPending    = "pending"
	StatusInProgress = "in-progress"
	StatusCompleted  = "completed"
	StatusDelivered  = "delivered"
)

// Order represents a commissioned sewing job tied to a Client.
type Order struct {
	ID           int64   `json:"id"`
	ClientID     int64   `json:"client_id"`
	ClientName   string  `json:"client_name"` // denormalized for list views
	Description  string  `json:"description"`
	ServiceType  string  `json:"service_type"`
	Price        float64 `json:"price"`
	OrderDate    string  `json:"order_date"` // ISO date, set at creation
	DeliveryDate string  `json:"delivery_date"`
	Notes        string  `json:"notes"`
	Status       string  `json:"status"`
	Paid         bool    `json:"paid"`
}
