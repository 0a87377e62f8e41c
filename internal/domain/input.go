package domain

// ProductInput is the body of a product create or update. Pointer fields
// distinguish "absent" from zero values for required and defaulted fields.
type ProductInput struct {
	Title          *string           `json:"title"`
	Description    *string           `json:"description"`
	Price          *float64          `json:"price"`
	Category       *string           `json:"category"`
	Brand          *string           `json:"brand"`
	Images         []string          `json:"images"`
	Stock          *int              `json:"stock"`
	Specifications map[string]string `json:"specifications"`
	Featured       *bool             `json:"featured"`
}

type OrderItemInput struct {
	ProductID *string  `json:"product_id"`
	Title     *string  `json:"title"`
	Price     *float64 `json:"price"`
	Quantity  *int     `json:"quantity"`
	Image     *string  `json:"image"`
}

type CustomerInput struct {
	Name       *string `json:"name"`
	Email      *string `json:"email"`
	Phone      *string `json:"phone"`
	Address    *string `json:"address"`
	City       *string `json:"city"`
	State      *string `json:"state"`
	PostalCode *string `json:"postal_code"`
}

type OrderInput struct {
	Items    []OrderItemInput `json:"items"`
	Customer *CustomerInput   `json:"customer"`
	Subtotal *float64         `json:"subtotal"`
	Shipping *float64         `json:"shipping"`
	Total    *float64         `json:"total"`
	Status   *string          `json:"status"`
	Notes    *string          `json:"notes"`
}
