package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/VladPetriv/busbooker/internal/api/busbooker"
	"github.com/VladPetriv/busbooker/pkg/apiclient"
	"github.com/VladPetriv/busbooker/pkg/logger"
	"github.com/VladPetriv/busbooker/pkg/notify"
	"github.com/stretchr/testify/assert"
)

type stubRequester struct {
	responses map[string]apiclient.Response
	calls     []string
	data      []map[string]any
}

func (s *stubRequester) MakeAPIRequest(_ context.Context, endpoint string, data map[string]any) apiclient.Response {
	s.calls = append(s.calls, endpoint)
	s.data = append(s.data, data)

	response, ok := s.responses[endpoint]
	if !ok {
		return apiclient.NetworkErrorResponse()
	}

	return response
}

func TestBook(t *testing.T) {
	t.Parallel()

	req := bookingRequest{
		source:        "Hyderabad",
		destination:   "Bangalore",
		seatID:        "U1A",
		passengerName: "John",
	}

	searchResponse := apiclient.Response{
		"success": true,
		"count":   float64(2),
		"routes": []any{
			map[string]any{"id": float64(1), "price": float64(56), "discount_price": float64(45)},
			map[string]any{"id": float64(2), "price": float64(48), "discount_price": float64(38)},
		},
	}

	testCases := [...]struct {
		desc          string
		responses     map[string]apiclient.Response
		expected      bool
		expectedCalls []string
		expectedLog   string
	}{
		{
			desc: "books the seat and pays the cheapest price",
			responses: map[string]apiclient.Response{
				"/api/routes/search":    searchResponse,
				"/api/seats/U1A/select": {"success": true, "message": "Seat U1A selected successfully"},
				"/api/payment/process":  {"success": true, "transaction_id": "TXN20240115103000", "message": "Payment processed successfully"},
			},
			expected:      true,
			expectedCalls: []string{"/api/routes/search", "/api/seats/U1A/select", "/api/payment/process"},
			expectedLog:   "SUCCESS: Payment processed successfully, transaction TXN20240115103000",
		},
		{
			desc:          "stops on network error",
			responses:     map[string]apiclient.Response{},
			expected:      false,
			expectedCalls: []string{"/api/routes/search"},
			expectedLog:   "ERROR: Network error occurred",
		},
		{
			desc: "stops when no routes are found",
			responses: map[string]apiclient.Response{
				"/api/routes/search": {"success": true, "count": float64(0), "routes": []any{}},
			},
			expected:      false,
			expectedCalls: []string{"/api/routes/search"},
			expectedLog:   "WARNING: No routes from Hyderabad to Bangalore",
		},
		{
			desc: "stops when seat is not available",
			responses: map[string]apiclient.Response{
				"/api/routes/search":    searchResponse,
				"/api/seats/U1A/select": {"success": false, "message": "seat is not available"},
			},
			expected:      false,
			expectedCalls: []string{"/api/routes/search", "/api/seats/U1A/select"},
			expectedLog:   "ERROR: seat is not available",
		},
		{
			desc: "reports failed payment",
			responses: map[string]apiclient.Response{
				"/api/routes/search":    searchResponse,
				"/api/seats/U1A/select": {"success": true, "message": "Seat U1A selected successfully"},
				"/api/payment/process":  {"success": false, "message": "Payment failed. Please try again."},
			},
			expected:      false,
			expectedCalls: []string{"/api/routes/search", "/api/seats/U1A/select", "/api/payment/process"},
			expectedLog:   "ERROR: Payment failed. Please try again.",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			notifier := notify.New(notify.Options{Logger: logger.NewWithWriter(&buf)})
			requester := &stubRequester{responses: tc.responses}

			actual := book(context.TODO(), busbooker.New(requester), notifier, req) //nolint: forbidigo

			assert.Equal(t, tc.expected, actual)
			assert.Equal(t, tc.expectedCalls, requester.calls)
			assert.Contains(t, buf.String(), tc.expectedLog)
			if len(requester.data) == 3 {
				assert.Equal(t, "38.00", requester.data[2]["amount"])
			}
		})
	}
}

func TestCheapestPrice(t *testing.T) {
	t.Parallel()

	price, found := cheapestPrice(apiclient.Response{
		"routes": []any{
			map[string]any{"price": float64(56)},
			"unexpected",
			map[string]any{"price": float64(48), "discount_price": float64(38)},
		},
	})
	assert.True(t, found)
	assert.Equal(t, "38.00", price.StringFixed())

	_, found = cheapestPrice(apiclient.NetworkErrorResponse())
	assert.False(t, found)
}
