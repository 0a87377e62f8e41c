package repos_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"arihant/internal/domain"
)

func sampleOrder(at time.Time, total float64) domain.Order {
	return domain.Order{
		Items: []domain.OrderItem{{
			ProductID: primitive.NewObjectID().Hex(),
			Title:     "Alloy Wheel",
			Price:     total,
			Quantity:  1,
		}},
		Customer: domain.Customer{
			Name:    "Asha",
			Email:   "asha@example.com",
			Address: "12 MG Road",
			City:    strp("Pune"),
		},
		Subtotal:  total,
		Total:     total,
		Status:    domain.StatusPending,
		Notes:     strp("leave at gate"),
		CreatedAt: at,
	}
}

func TestOrderRepo_CreateAndListNewestFirst(t *testing.T) {
	ctx := context.Background()
	orders := memStore(t).Orders()

	base := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	first, err := orders.Create(ctx, sampleOrder(base, 100))
	require.NoError(t, err)
	second, err := orders.Create(ctx, sampleOrder(base.Add(time.Minute), 200))
	require.NoError(t, err)

	got, err := orders.ListLatest(ctx, 0)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, second, got[0].ID)
	assert.Equal(t, first, got[1].ID)

	o := got[1]
	assert.True(t, base.Equal(o.CreatedAt))
	assert.Equal(t, "Alloy Wheel", o.Items[0].Title)
	assert.Equal(t, "Pune", *o.Customer.City)
	assert.Nil(t, o.Customer.Phone)
	assert.Equal(t, "leave at gate", *o.Notes)

	limited, err := orders.ListLatest(ctx, 1)
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, second, limited[0].ID)
}

func TestOrderRepo_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	orders := memStore(t).Orders()

	id, err := orders.Create(ctx, sampleOrder(time.Now(), 50))
	require.NoError(t, err)
	require.NoError(t, orders.UpdateStatus(ctx, id, domain.StatusDelivered))

	got, err := orders.ListLatest(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusDelivered, got[0].Status)
	assert.False(t, got[0].UpdatedAt.IsZero())

	err = orders.UpdateStatus(ctx, primitive.NewObjectID(), domain.StatusShipped)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}
