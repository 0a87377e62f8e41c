package repos

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"arihant/internal/domain"
)

type MongoProductRepository struct {
	Collection *mongo.Collection
}

func NewMongoProductRepository(db *mongo.Database) *MongoProductRepository {
	return &MongoProductRepository{Collection: db.Collection(ProductCollection)}
}

// productFilter translates a query into a Mongo filter document.
func productFilter(q domain.ProductQuery) bson.M {
	filter := bson.M{}
	if q.Text != "" {
		re := primitive.Regex{Pattern: regexp.QuoteMeta(q.Text), Options: "i"}
		filter["$or"] = bson.A{
			bson.M{"title": re},
			bson.M{"description": re},
		}
	}
	if q.Category != "" {
		filter["category"] = q.Category
	}
	if q.Featured != nil {
		filter["featured"] = *q.Featured
	}
	return filter
}

func (r *MongoProductRepository) List(ctx context.Context, q domain.ProductQuery) ([]domain.Product, error) {
	opts := options.Find()
	if q.Limit > 0 {
		opts.SetLimit(int64(q.Limit))
	}
	cursor, err := r.Collection.Find(ctx, productFilter(q), opts)
	if err != nil {
		return nil, err
	}
	products := []domain.Product{}
	if err = cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	for i := range products {
		normalize(&products[i])
	}
	return products, nil
}

func (r *MongoProductRepository) Get(ctx context.Context, id primitive.ObjectID) (domain.Product, error) {
	var p domain.Product
	err := r.Collection.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return domain.Product{}, fmt.Errorf("product %s: %w", id.Hex(), domain.ErrNotFound)
	}
	if err != nil {
		return domain.Product{}, err
	}
	normalize(&p)
	return p, nil
}

func (r *MongoProductRepository) Create(ctx context.Context, p domain.Product) (primitive.ObjectID, error) {
	p.ID = primitive.NilObjectID
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	normalize(&p)
	res, err := r.Collection.InsertOne(ctx, p)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return id, nil
}

func (r *MongoProductRepository) Update(ctx context.Context, id primitive.ObjectID, p domain.Product) (domain.Product, error) {
	normalize(&p)
	set := bson.M{
		"title":          p.Title,
		"description":    p.Description,
		"price":          p.Price,
		"category":       p.Category,
		"brand":          p.Brand,
		"images":         p.Images,
		"stock":          p.Stock,
		"specifications": p.Specifications,
		"featured":       p.Featured,
		"updated_at":     time.Now().UTC(),
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var out domain.Product
	err := r.Collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return domain.Product{}, fmt.Errorf("product %s: %w", id.Hex(), domain.ErrNotFound)
	}
	if err != nil {
		return domain.Product{}, err
	}
	normalize(&out)
	return out, nil
}

func (r *MongoProductRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.Collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("product %s: %w", id.Hex(), domain.ErrNotFound)
	}
	return nil
}

func (r *MongoProductRepository) Decrement(ctx context.Context, id primitive.ObjectID, by int) error {
	filter := bson.M{"_id": id, "stock": bson.M{"$gte": by}}
	res, err := r.Collection.UpdateOne(ctx, filter, bson.M{"$inc": bson.M{"stock": -by}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("product %s by %d: %w", id.Hex(), by, domain.ErrInsufficientStock)
	}
	return nil
}

func (r *MongoProductRepository) Increment(ctx context.Context, id primitive.ObjectID, by int) error {
	res, err := r.Collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$inc": bson.M{"stock": by}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("product %s: %w", id.Hex(), domain.ErrNotFound)
	}
	return nil
}

func normalize(p *domain.Product) {
	if p.Images == nil {
		p.Images = []string{}
	}
	if p.Specifications == nil {
		p.Specifications = map[string]string{}
	}
}
