// Package busbooker provides typed calls of the booking backend API.
package busbooker

import (
	"context"
	"fmt"
	"net/url"

	"github.com/VladPetriv/busbooker/pkg/apiclient"
)

// Requester sends a JSON POST request and never fails, see apiclient.Client.MakeAPIRequest.
type Requester interface {
	MakeAPIRequest(ctx context.Context, endpoint string, data map[string]any) apiclient.Response
}

// Client calls the booking backend API endpoints.
type Client struct {
	requester Requester
}

// New creates a new instance of Client.
func New(requester Requester) *Client {
	return &Client{
		requester: requester,
	}
}

// SearchRoutesOptions represents input structure for SearchRoutes method.
type SearchRoutesOptions struct {
	Source      string
	Destination string
}

// SearchRoutes finds routes between source and destination.
func (c *Client) SearchRoutes(ctx context.Context, opts SearchRoutesOptions) apiclient.Response {
	return c.requester.MakeAPIRequest(ctx, "/api/routes/search", map[string]any{
		"source":      opts.Source,
		"destination": opts.Destination,
	})
}

// SelectSeat selects the seat for passenger.
func (c *Client) SelectSeat(ctx context.Context, seatID, passengerName string) apiclient.Response {
	return c.requester.MakeAPIRequest(ctx, fmt.Sprintf("/api/seats/%s/select", url.PathEscape(seatID)), map[string]any{
		"passenger_name": passengerName,
	})
}

// ProcessPaymentOptions represents input structure for ProcessPayment method.
type ProcessPaymentOptions struct {
	// Amount is sent as a decimal string, empty means no amount.
	Amount        string
	SeatID        string
	PassengerName string
}

// ProcessPayment pays for the selected seat.
func (c *Client) ProcessPayment(ctx context.Context, opts ProcessPaymentOptions) apiclient.Response {
	data := map[string]any{}
	if opts.Amount != "" {
		data["amount"] = opts.Amount
	}
	if opts.SeatID != "" {
		data["seat_id"] = opts.SeatID
	}
	if opts.PassengerName != "" {
		data["passenger_name"] = opts.PassengerName
	}

	return c.requester.MakeAPIRequest(ctx, "/api/payment/process", data)
}

// TransactionID returns the transaction id of a successful payment response.
func TransactionID(response apiclient.Response) string {
	transactionID, _ := response["transaction_id"].(string)
	return transactionID
}
