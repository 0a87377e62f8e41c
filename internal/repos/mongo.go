package repos

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoStore struct {
	client   *mongo.Client
	db       *mongo.Database
	products *MongoProductRepository
	orders   *MongoOrderRepository
}

// OpenMongo connects and pings so a bad URI fails at startup.
func OpenMongo(ctx context.Context, uri, dbName string) (*MongoStore, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	db := client.Database(dbName)

	// Newest-first order listing.
	_, err = db.Collection(OrderCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "created_at", Value: -1}},
	})
	if err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	return &MongoStore{
		client:   client,
		db:       db,
		products: NewMongoProductRepository(db),
		orders:   NewMongoOrderRepository(db),
	}, nil
}

func (s *MongoStore) Products() ProductStore { return s.products }
func (s *MongoStore) Orders() OrderStore     { return s.orders }
func (s *MongoStore) Name() string           { return s.db.Name() }

func (s *MongoStore) Collections(ctx context.Context) ([]string, error) {
	return s.db.ListCollectionNames(ctx, bson.D{})
}

func (s *MongoStore) Close(ctx context.Context) error { return s.client.Disconnect(ctx) }

// Drop removes the whole database. Used to clean up test databases.
func (s *MongoStore) Drop(ctx context.Context) error { return s.db.Drop(ctx) }
