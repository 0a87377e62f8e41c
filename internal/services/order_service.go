package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"arihant/internal/domain"
	applog "arihant/internal/log"
	"arihant/internal/repos"
)

type OrderService struct {
	Prods  repos.ProductStore
	Orders repos.OrderStore
	Now    func() time.Time
}

func NewOrderService(prods repos.ProductStore, orders repos.OrderStore) *OrderService {
	return &OrderService{Prods: prods, Orders: orders, Now: time.Now}
}

type reservation struct {
	id    primitive.ObjectID
	qty   int
	title string
}

func (s *OrderService) ready() error {
	if s == nil || s.Prods == nil || s.Orders == nil {
		return domain.ErrNotConfigured
	}
	return nil
}

// Place checks every line against current stock, deducts stock per line and
// persists the order. Nothing is deducted unless every line passes the check.
// Each deduction is conditional on enough stock remaining, so concurrent
// orders cannot drive stock negative; a lost race undoes this order's earlier
// deductions and fails the same way a failed check does.
func (s *OrderService) Place(ctx context.Context, o domain.Order) (string, error) {
	if err := s.ready(); err != nil {
		return "", err
	}
	if len(o.Items) == 0 {
		return "", domain.Invalid("Order has no items", nil)
	}

	// validate
	need := make(map[primitive.ObjectID]int, len(o.Items))
	plan := make([]reservation, 0, len(o.Items))
	for _, it := range o.Items {
		id, err := domain.ParseID(it.ProductID)
		if err != nil {
			return "", domain.Invalid("Invalid product id in order", err)
		}
		p, err := s.Prods.Get(ctx, id)
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return "", domain.Invalid("Product not found: "+it.ProductID, err)
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			return "", err
		case err != nil:
			applog.Error(nil, "order.resolve.fail", err, map[string]any{"product_id": it.ProductID})
			return "", domain.Invalid("Invalid product id in order", err)
		}
		need[id] += it.Quantity
		if p.Stock < need[id] {
			return "", domain.Invalid("Insufficient stock for "+p.Title, domain.ErrInsufficientStock)
		}
		plan = append(plan, reservation{id: id, qty: it.Quantity, title: p.Title})
	}

	// deduct
	done := make([]reservation, 0, len(plan))
	for _, r := range plan {
		if err := s.Prods.Decrement(ctx, r.id, r.qty); err != nil {
			s.release(ctx, done)
			if errors.Is(err, domain.ErrInsufficientStock) {
				return "", domain.Invalid("Insufficient stock for "+r.title, err)
			}
			return "", fmt.Errorf("deduct stock for %s: %w", r.id.Hex(), err)
		}
		done = append(done, r)
	}

	// persist
	if o.Status == "" {
		o.Status = domain.StatusPending
	}
	o.CreatedAt = s.Now().UTC()
	id, err := s.Orders.Create(ctx, o)
	if err != nil {
		s.release(ctx, done)
		return "", fmt.Errorf("persist order: %w", err)
	}
	return id.Hex(), nil
}

// release puts back stock taken for a failed order. It runs detached from
// request cancellation.
func (s *OrderService) release(ctx context.Context, done []reservation) {
	ctx = context.WithoutCancel(ctx)
	for _, r := range done {
		if err := s.Prods.Increment(ctx, r.id, r.qty); err != nil {
			// Stock is now short by r.qty until an operator corrects it.
			applog.Error(nil, "order.release.fail", err, map[string]any{
				"product_id": r.id.Hex(),
				"qty":        r.qty,
			})
		}
	}
}

// List returns the newest orders first. limit <= 0 means no limit.
func (s *OrderService) List(ctx context.Context, limit int) ([]domain.Order, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	return s.Orders.ListLatest(ctx, limit)
}

func (s *OrderService) UpdateStatus(ctx context.Context, rawID string, status domain.OrderStatus) error {
	if err := s.ready(); err != nil {
		return err
	}
	if !status.Valid() {
		return domain.Invalid("Unknown order status: "+string(status), nil)
	}
	id, err := domain.ParseID(rawID)
	if err != nil {
		return err
	}
	return s.Orders.UpdateStatus(ctx, id, status)
}
