package repos

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"arihant/internal/domain"
)

// Collection names, shared by every backend.
const (
	ProductCollection = "product"
	OrderCollection   = "order"
)

// ProductStore is the catalog side of the document store. Get, Update and
// Delete report a missing record with domain.ErrNotFound.
type ProductStore interface {
	List(ctx context.Context, q domain.ProductQuery) ([]domain.Product, error)
	Get(ctx context.Context, id primitive.ObjectID) (domain.Product, error)
	Create(ctx context.Context, p domain.Product) (primitive.ObjectID, error)
	Update(ctx context.Context, id primitive.ObjectID, p domain.Product) (domain.Product, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	// Decrement subtracts by units only if at least that many are in stock,
	// as one atomic single-document update. A no-op returns
	// domain.ErrInsufficientStock.
	Decrement(ctx context.Context, id primitive.ObjectID, by int) error
	Increment(ctx context.Context, id primitive.ObjectID, by int) error
}

type OrderStore interface {
	Create(ctx context.Context, o domain.Order) (primitive.ObjectID, error)
	ListLatest(ctx context.Context, limit int) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status domain.OrderStatus) error
}

// Store is a connected document store.
type Store interface {
	Products() ProductStore
	Orders() OrderStore
	Name() string
	Collections(ctx context.Context) ([]string, error)
	Close(ctx context.Context) error
}
