package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/VladPetriv/busbooker/internal/models"
	"github.com/VladPetriv/busbooker/pkg/money"
)

type searchRoutesRequest struct {
	Source      string `json:"source"`
	Destination string `json:"destination"`
}

type selectSeatRequest struct {
	PassengerName string `json:"passenger_name"`
}

type processPaymentRequest struct {
	Amount        *amount `json:"amount"`
	SeatID        string  `json:"seat_id"`
	PassengerName string  `json:"passenger_name"`
}

// amount accepts both JSON numbers and numeric strings.
type amount struct {
	money.Money
}

func (a *amount) UnmarshalJSON(data []byte) error {
	raw := string(bytes.Trim(data, `"`))
	if raw == "null" {
		return nil
	}

	parsed, err := money.NewFromString(raw)
	if err != nil {
		return fmt.Errorf("parse amount: %w", err)
	}

	a.Money = parsed
	return nil
}

type routeResponse struct {
	ID                     int      `json:"id"`
	Operator               string   `json:"operator"`
	Type                   string   `json:"type"`
	Seating                string   `json:"seating"`
	From                   string   `json:"from"`
	To                     string   `json:"to"`
	Departure              string   `json:"departure"`
	Arrival                string   `json:"arrival"`
	Duration               string   `json:"duration"`
	Date                   string   `json:"date"`
	Price                  float64  `json:"price"`
	DiscountPrice          float64  `json:"discount_price"`
	HasDiscount            bool     `json:"has_discount"`
	FormattedPrice         string   `json:"formatted_price"`
	FormattedDiscountPrice string   `json:"formatted_discount_price"`
	Rating                 float64  `json:"rating"`
	Reviews                int      `json:"reviews"`
	AvailableSeats         int      `json:"available_seats"`
	Amenities              []string `json:"amenities"`
	Image                  string   `json:"image"`
}

func newRouteResponse(route models.Route) routeResponse {
	price := route.GetPrice()
	discountPrice := route.GetDiscountPrice()

	amenities := []string(route.Amenities)
	if amenities == nil {
		amenities = []string{}
	}

	return routeResponse{
		ID:                     route.ID,
		Operator:               route.Operator,
		Type:                   route.Type,
		Seating:                route.Seating,
		From:                   route.From,
		To:                     route.To,
		Departure:              route.Departure,
		Arrival:                route.Arrival,
		Duration:               route.Duration,
		Date:                   route.Date,
		Price:                  price.Float64(),
		DiscountPrice:          discountPrice.Float64(),
		HasDiscount:            route.HasDiscount(),
		FormattedPrice:         price.Format(),
		FormattedDiscountPrice: discountPrice.Format(),
		Rating:                 route.Rating,
		Reviews:                route.Reviews,
		AvailableSeats:         route.AvailableSeats,
		Amenities:              amenities,
		Image:                  route.Image,
	}
}

func newRouteResponses(routes []models.Route) []routeResponse {
	output := make([]routeResponse, 0, len(routes))
	for _, route := range routes {
		output = append(output, newRouteResponse(route))
	}

	return output
}

type seatResponse struct {
	ID             string  `json:"id"`
	Type           string  `json:"type"`
	Price          float64 `json:"price"`
	FormattedPrice string  `json:"formatted_price"`
	Available      bool    `json:"available"`
}

func newSeatResponses(seats []models.Seat) []seatResponse {
	output := make([]seatResponse, 0, len(seats))
	for _, seat := range seats {
		price := seat.GetPrice()

		output = append(output, seatResponse{
			ID:             seat.ID,
			Type:           string(seat.Type),
			Price:          price.Float64(),
			FormattedPrice: price.Format(),
			Available:      seat.Available,
		})
	}

	return output
}

type seatLayoutResponse struct {
	UpperDeck []seatResponse `json:"upper_deck"`
	LowerDeck []seatResponse `json:"lower_deck"`
}

type seatSelectionPageResponse struct {
	Route      routeResponse      `json:"route"`
	SeatLayout seatLayoutResponse `json:"seat_layout"`
}

type searchRoutesResponse struct {
	Success bool            `json:"success"`
	Routes  []routeResponse `json:"routes"`
	Count   int             `json:"count"`
}

type selectSeatResponse struct {
	Success       bool   `json:"success"`
	SeatID        string `json:"seat_id"`
	PassengerName string `json:"passenger_name"`
	Message       string `json:"message"`
}

type processPaymentResponse struct {
	Success       bool   `json:"success"`
	TransactionID string `json:"transaction_id"`
	Message       string `json:"message"`
}

type paymentResponse struct {
	Success         bool    `json:"success"`
	TransactionID   string  `json:"transaction_id"`
	SeatID          string  `json:"seat_id"`
	PassengerName   string  `json:"passenger_name"`
	Amount          float64 `json:"amount"`
	FormattedAmount string  `json:"formatted_amount"`
	Status          string  `json:"status"`
	CreatedAt       string  `json:"created_at"`
}

func newPaymentResponse(payment models.Payment) paymentResponse {
	amount := payment.GetAmount()

	return paymentResponse{
		Success:         true,
		TransactionID:   payment.TransactionID,
		SeatID:          payment.SeatID,
		PassengerName:   payment.PassengerName,
		Amount:          amount.Float64(),
		FormattedAmount: amount.Format(),
		Status:          string(payment.Status),
		CreatedAt:       payment.CreatedAt.Format(time.RFC3339),
	}
}

type healthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Service   string `json:"service"`
}

type errorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func decodeBody(body []byte, v any) error {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil
	}

	return json.Unmarshal(body, v)
}
