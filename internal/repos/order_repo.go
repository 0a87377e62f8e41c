package repos

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"arihant/internal/domain"
)

type OrderRepo struct{ db *sqlx.DB }

func NewOrderRepo(db *sqlx.DB) *OrderRepo { return &OrderRepo{db: db} }

type orderRow struct {
	ID           string         `db:"id"`
	ItemsJSON    string         `db:"items_json"`
	CustomerJSON string         `db:"customer_json"`
	Subtotal     float64        `db:"subtotal"`
	Shipping     float64        `db:"shipping"`
	Total        float64        `db:"total"`
	Status       string         `db:"status"`
	Notes        sql.NullString `db:"notes"`
	CreatedAt    string         `db:"created_at"`
	UpdatedAt    string         `db:"updated_at"`
}

func (r orderRow) toDomain() (domain.Order, error) {
	id, err := primitive.ObjectIDFromHex(r.ID)
	if err != nil {
		return domain.Order{}, fmt.Errorf("order row %q: %w", r.ID, err)
	}
	o := domain.Order{
		ID:        id,
		Subtotal:  r.Subtotal,
		Shipping:  r.Shipping,
		Total:     r.Total,
		Status:    domain.OrderStatus(r.Status),
		CreatedAt: parseTS(r.CreatedAt),
		UpdatedAt: parseTS(r.UpdatedAt),
	}
	if r.Notes.Valid {
		o.Notes = &r.Notes.String
	}
	if err := json.Unmarshal([]byte(r.ItemsJSON), &o.Items); err != nil {
		return domain.Order{}, fmt.Errorf("order %s items: %w", r.ID, err)
	}
	if err := json.Unmarshal([]byte(r.CustomerJSON), &o.Customer); err != nil {
		return domain.Order{}, fmt.Errorf("order %s customer: %w", r.ID, err)
	}
	return o, nil
}

// Create inserts the whole order document.
func (r *OrderRepo) Create(ctx context.Context, o domain.Order) (primitive.ObjectID, error) {
	items, err := json.Marshal(o.Items)
	if err != nil {
		return primitive.NilObjectID, err
	}
	cust, err := json.Marshal(o.Customer)
	if err != nil {
		return primitive.NilObjectID, err
	}
	if o.CreatedAt.IsZero() {
		o.CreatedAt = time.Now()
	}
	if o.Status == "" {
		o.Status = domain.StatusPending
	}
	id := primitive.NewObjectID()
	_, err = r.db.ExecContext(ctx, `
	  INSERT INTO "order"
	    (id, items_json, customer_json, subtotal, shipping, total, status, notes, created_at)
	  VALUES
	    (?,  ?,          ?,             ?,        ?,        ?,     ?,      ?,     ?)
	`, id.Hex(), string(items), string(cust), o.Subtotal, o.Shipping, o.Total, string(o.Status),
		nullString(o.Notes), formatTS(o.CreatedAt))
	if err != nil {
		return primitive.NilObjectID, err
	}
	return id, nil
}

// ListLatest returns orders newest first. limit <= 0 means no limit.
func (r *OrderRepo) ListLatest(ctx context.Context, limit int) ([]domain.Order, error) {
	if limit <= 0 {
		limit = -1
	}
	var rows []orderRow
	err := r.db.SelectContext(ctx, &rows, `
		SELECT id, items_json, customer_json, subtotal, shipping, total, status, notes,
		       created_at, COALESCE(updated_at,'') AS updated_at
		FROM "order"
		ORDER BY created_at DESC, rowid DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Order, 0, len(rows))
	for _, row := range rows {
		o, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, nil
}

func (r *OrderRepo) UpdateStatus(ctx context.Context, id primitive.ObjectID, status domain.OrderStatus) error {
	res, err := r.db.ExecContext(ctx, `UPDATE "order" SET status = ?, updated_at = ? WHERE id = ?`,
		string(status), formatTS(time.Now()), id.Hex())
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("order %s: %w", id.Hex(), domain.ErrNotFound)
	}
	return nil
}
