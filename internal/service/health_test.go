package service_test

import (
	"context"
	"fmt"
	"io"
	"testing"

	"github.com/VladPetriv/busbooker/internal/service"
	"github.com/VladPetriv/busbooker/internal/service/mocks"
	"github.com/VladPetriv/busbooker/pkg/logger"
	"github.com/stretchr/testify/assert"
)

func TestHealth_Check(t *testing.T) {
	t.Parallel()

	ctx := context.TODO() //nolint: forbidigo

	testCases := [...]struct {
		desc     string
		pingErr  error
		expected bool
	}{
		{
			desc:     "positive: store is reachable",
			expected: true,
		},
		{
			desc:     "negative: store is unreachable",
			pingErr:  fmt.Errorf("connection refused"),
			expected: false,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			t.Parallel()

			healthStore := mocks.NewHealthStore(t)
			healthStore.On("Ping", ctx).Return(tc.pingErr)

			healthService := service.NewHealth(logger.NewWithWriter(io.Discard), service.Stores{Health: healthStore})

			actual := healthService.Check(ctx)
			assert.Equal(t, tc.expected, actual.Healthy)
			assert.False(t, actual.Timestamp.IsZero())
		})
	}
}
