package notifications

import "time"

// Event names used on the broker and the realtime bus.
const (
	EventOrderPlaced    = "orderPlaced"
	EventOrderCancelled = "orderCancelled"
)

type OrderLine struct {
	ProductID uint    `json:"product_id"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

// OrderPlacedEvent carries everything the notification channels need, so
// consumers never have to read the database.
type OrderPlacedEvent struct {
	OrderID              uint        `json:"order_id"`
	OrderRef             string      `json:"order_ref"`
	UserID               uint        `json:"user_id"`
	TotalAmount          float64     `json:"total_amount"`
	ExpectedDeliveryDate time.Time   `json:"expected_delivery_date"`
	Items                []OrderLine `json:"items"`
	UserName             string      `json:"user_name"`
	UserEmail            string      `json:"user_email"`
	UserMobile           string      `json:"user_mobile"`
	EventTime            time.Time   `json:"event_time"`
}

type OrderCancelledEvent struct {
	OrderID       uint      `json:"order_id"`
	OrderRef      string    `json:"order_ref"`
	UserID        uint      `json:"user_id"`
	FirebaseToken string    `json:"firebase_token,omitempty"`
	EventTime     time.Time `json:"event_time"`
}
