package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const DefaultBrand = "Arihant"

type Product struct {
	ID             primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title          string             `json:"title" bson:"title"`
	Description    *string            `json:"description" bson:"description"`
	Price          float64            `json:"price" bson:"price"`
	Category       string             `json:"category" bson:"category"`
	Brand          *string            `json:"brand" bson:"brand"`
	Images         []string           `json:"images" bson:"images"`
	Stock          int                `json:"stock" bson:"stock"`
	Specifications map[string]string  `json:"specifications" bson:"specifications"`
	Featured       bool               `json:"featured" bson:"featured"`
	CreatedAt      time.Time          `json:"-" bson:"created_at,omitempty"`
	UpdatedAt      time.Time          `json:"-" bson:"updated_at,omitempty"`
}

// ProductQuery filters a catalog listing. Nil/empty fields are not applied.
// Limit 0 means no limit.
type ProductQuery struct {
	Text     string
	Category string
	Featured *bool
	Limit    int
}

type Availability struct {
	Status string `json:"status"` // IN_STOCK | LOW_STOCK | OUT_OF_STOCK
	Qty    int    `json:"qty"`
}

type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusProcessing OrderStatus = "processing"
	StatusShipped    OrderStatus = "shipped"
	StatusDelivered  OrderStatus = "delivered"
	StatusCancelled  OrderStatus = "cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

type OrderItem struct {
	ProductID string  `json:"product_id" bson:"product_id"`
	Title     string  `json:"title" bson:"title"`
	Price     float64 `json:"price" bson:"price"` // snapshot at order time
	Quantity  int     `json:"quantity" bson:"quantity"`
	Image     *string `json:"image,omitempty" bson:"image,omitempty"`
}

type Customer struct {
	Name       string  `json:"name" bson:"name"`
	Email      string  `json:"email" bson:"email"`
	Phone      *string `json:"phone,omitempty" bson:"phone,omitempty"`
	Address    string  `json:"address" bson:"address"`
	City       *string `json:"city,omitempty" bson:"city,omitempty"`
	State      *string `json:"state,omitempty" bson:"state,omitempty"`
	PostalCode *string `json:"postal_code,omitempty" bson:"postal_code,omitempty"`
}

type Order struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Items     []OrderItem        `json:"items" bson:"items"`
	Customer  Customer           `json:"customer" bson:"customer"`
	Subtotal  float64            `json:"subtotal" bson:"subtotal"`
	Shipping  float64            `json:"shipping" bson:"shipping"`
	Total     float64            `json:"total" bson:"total"`
	Status    OrderStatus        `json:"status" bson:"status"`
	Notes     *string            `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time          `json:"-" bson:"updated_at,omitempty"`
}
