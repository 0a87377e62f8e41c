package repos

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"arihant/internal/domain"
)

type ProductRepo struct{ db *sqlx.DB }

func NewProductRepo(db *sqlx.DB) *ProductRepo { return &ProductRepo{db: db} }

type productRow struct {
	ID                 string         `db:"id"`
	Title              string         `db:"title"`
	Description        sql.NullString `db:"description"`
	Price              float64        `db:"price"`
	Category           string         `db:"category"`
	Brand              sql.NullString `db:"brand"`
	ImagesJSON         string         `db:"images_json"`
	Stock              int            `db:"stock"`
	SpecificationsJSON string         `db:"specifications_json"`
	Featured           bool           `db:"featured"`
	CreatedAt          string         `db:"created_at"`
	UpdatedAt          string         `db:"updated_at"`
}

const productCols = `id, title, description, price, category, brand, images_json, stock,
    specifications_json, featured, created_at, COALESCE(updated_at,'') AS updated_at`

func (r productRow) toDomain() (domain.Product, error) {
	id, err := primitive.ObjectIDFromHex(r.ID)
	if err != nil {
		return domain.Product{}, fmt.Errorf("product row %q: %w", r.ID, err)
	}
	p := domain.Product{
		ID:        id,
		Title:     r.Title,
		Price:     r.Price,
		Category:  r.Category,
		Stock:     r.Stock,
		Featured:  r.Featured,
		CreatedAt: parseTS(r.CreatedAt),
		UpdatedAt: parseTS(r.UpdatedAt),
	}
	if r.Description.Valid {
		p.Description = &r.Description.String
	}
	if r.Brand.Valid {
		p.Brand = &r.Brand.String
	}
	if err := json.Unmarshal([]byte(r.ImagesJSON), &p.Images); err != nil {
		return domain.Product{}, fmt.Errorf("product %s images: %w", r.ID, err)
	}
	if err := json.Unmarshal([]byte(r.SpecificationsJSON), &p.Specifications); err != nil {
		return domain.Product{}, fmt.Errorf("product %s specifications: %w", r.ID, err)
	}
	if p.Images == nil {
		p.Images = []string{}
	}
	if p.Specifications == nil {
		p.Specifications = map[string]string{}
	}
	return p, nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func encodeDocFields(p domain.Product) (images, specs string, err error) {
	imgs := p.Images
	if imgs == nil {
		imgs = []string{}
	}
	spec := p.Specifications
	if spec == nil {
		spec = map[string]string{}
	}
	ib, err := json.Marshal(imgs)
	if err != nil {
		return "", "", err
	}
	sb, err := json.Marshal(spec)
	if err != nil {
		return "", "", err
	}
	return string(ib), string(sb), nil
}

// escapeLike makes s match literally inside a LIKE pattern using '\' as escape.
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

func (r *ProductRepo) List(ctx context.Context, q domain.ProductQuery) ([]domain.Product, error) {
	where := []string{"1 = 1"}
	args := []any{}
	if q.Text != "" {
		pat := "%" + escapeLike(strings.ToLower(q.Text)) + "%"
		where = append(where, `(fold(title) LIKE ? ESCAPE '\' OR fold(COALESCE(description,'')) LIKE ? ESCAPE '\')`)
		args = append(args, pat, pat)
	}
	if q.Category != "" {
		where = append(where, `category = ?`)
		args = append(args, q.Category)
	}
	if q.Featured != nil {
		where = append(where, `featured = ?`)
		args = append(args, *q.Featured)
	}
	limit := q.Limit
	if limit <= 0 {
		limit = -1 // sqlite: no limit
	}
	query := `
  SELECT ` + productCols + `
  FROM product
  WHERE ` + strings.Join(where, " AND ") + `
  ORDER BY rowid
  LIMIT ?`
	args = append(args, limit)

	var rows []productRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}
	out := make([]domain.Product, 0, len(rows))
	for _, row := range rows {
		p, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *ProductRepo) Get(ctx context.Context, id primitive.ObjectID) (domain.Product, error) {
	var row productRow
	err := r.db.GetContext(ctx, &row, `SELECT `+productCols+` FROM product WHERE id = ?`, id.Hex())
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Product{}, fmt.Errorf("product %s: %w", id.Hex(), domain.ErrNotFound)
	}
	if err != nil {
		return domain.Product{}, err
	}
	return row.toDomain()
}

func (r *ProductRepo) Create(ctx context.Context, p domain.Product) (primitive.ObjectID, error) {
	images, specs, err := encodeDocFields(p)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id := primitive.NewObjectID()
	created := p.CreatedAt
	if created.IsZero() {
		created = time.Now()
	}
	_, err = r.db.ExecContext(ctx, `
	  INSERT INTO product
	    (id, title, description, price, category, brand, images_json, stock, specifications_json, featured, created_at)
	  VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, id.Hex(), p.Title, nullString(p.Description), p.Price, p.Category, nullString(p.Brand),
		images, p.Stock, specs, p.Featured, formatTS(created))
	if err != nil {
		return primitive.NilObjectID, err
	}
	return id, nil
}

// Update replaces every mutable field and stamps updated_at.
func (r *ProductRepo) Update(ctx context.Context, id primitive.ObjectID, p domain.Product) (domain.Product, error) {
	images, specs, err := encodeDocFields(p)
	if err != nil {
		return domain.Product{}, err
	}
	res, err := r.db.ExecContext(ctx, `
	  UPDATE product SET
	    title = ?, description = ?, price = ?, category = ?, brand = ?,
	    images_json = ?, stock = ?, specifications_json = ?, featured = ?, updated_at = ?
	  WHERE id = ?
	`, p.Title, nullString(p.Description), p.Price, p.Category, nullString(p.Brand),
		images, p.Stock, specs, p.Featured, formatTS(time.Now()), id.Hex())
	if err != nil {
		return domain.Product{}, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.Product{}, fmt.Errorf("product %s: %w", id.Hex(), domain.ErrNotFound)
	}
	return r.Get(ctx, id)
}

func (r *ProductRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM product WHERE id = ?`, id.Hex())
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("product %s: %w", id.Hex(), domain.ErrNotFound)
	}
	return nil
}

func (r *ProductRepo) Decrement(ctx context.Context, id primitive.ObjectID, by int) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE product
		SET stock = stock - ?
		WHERE id = ? AND stock >= ?
	`, by, id.Hex(), by)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return fmt.Errorf("product %s by %d: %w", id.Hex(), by, domain.ErrInsufficientStock)
	}
	return nil
}

func (r *ProductRepo) Increment(ctx context.Context, id primitive.ObjectID, by int) error {
	res, err := r.db.ExecContext(ctx, `UPDATE product SET stock = stock + ? WHERE id = ?`, by, id.Hex())
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("product %s: %w", id.Hex(), domain.ErrNotFound)
	}
	return nil
}
