package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/VladPetriv/busbooker/internal/models"
	"github.com/VladPetriv/busbooker/internal/store"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPayment_CreateAndGet(t *testing.T) {
	t.Parallel()

	ctx := context.TODO() //nolint: forbidigo
	paymentStore := store.NewPayment(createTestDB(t, "payments_create"))

	now := time.Now().UTC().Truncate(time.Second)
	payment := &models.Payment{
		ID:            uuid.NewString(),
		TransactionID: models.NewTransactionID(now),
		SeatID:        "U1A",
		PassengerName: "John",
		Amount:        "40.00",
		Status:        models.PaymentStatusSucceeded,
		CreatedAt:     now,
	}

	err := paymentStore.Create(ctx, payment)
	require.NoError(t, err)

	actual, err := paymentStore.Get(ctx, payment.TransactionID)
	require.NoError(t, err)
	require.NotNil(t, actual)

	assert.Equal(t, payment.ID, actual.ID)
	assert.Equal(t, payment.Amount, actual.Amount)
	assert.Equal(t, payment.Status, actual.Status)
	assert.True(t, payment.CreatedAt.Equal(actual.CreatedAt))

	missing, err := paymentStore.Get(ctx, "TXN00000000000000")
	require.NoError(t, err)
	assert.Nil(t, missing)
}
