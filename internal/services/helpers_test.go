package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"arihant/internal/domain"
	"arihant/internal/repos"
)

func memStore(t *testing.T) *repos.SQLStore {
	t.Helper()
	s, err := repos.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close(context.Background()) })
	return s
}

func addProduct(t *testing.T, prods repos.ProductStore, title string, price float64, stock int) primitive.ObjectID {
	t.Helper()
	id, err := prods.Create(context.Background(), domain.Product{
		Title:    title,
		Price:    price,
		Category: "Accessories",
		Stock:    stock,
	})
	require.NoError(t, err)
	return id
}

func stockOf(t *testing.T, prods repos.ProductStore, id primitive.ObjectID) int {
	t.Helper()
	p, err := prods.Get(context.Background(), id)
	require.NoError(t, err)
	return p.Stock
}

func line(id primitive.ObjectID, title string, price float64, qty int) domain.OrderItem {
	return domain.OrderItem{ProductID: id.Hex(), Title: title, Price: price, Quantity: qty}
}

func order(items ...domain.OrderItem) domain.Order {
	var sub float64
	for _, it := range items {
		sub += it.Price * float64(it.Quantity)
	}
	return domain.Order{
		Items:    items,
		Customer: domain.Customer{Name: "Asha", Email: "asha@example.com", Address: "12 MG Road"},
		Subtotal: sub,
		Total:    sub,
	}
}
