// Package server exposes booking services over HTTP.
package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/VladPetriv/busbooker/internal/service"
	"github.com/VladPetriv/busbooker/pkg/errs"
	"github.com/VladPetriv/busbooker/pkg/logger"
	"github.com/VladPetriv/busbooker/pkg/typecast"
	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"
)

const serviceName = "BusBooker Pro"

// Server represents the backend HTTP server.
type Server struct {
	logger   *logger.Logger
	services service.Services
	server   *fasthttp.Server
}

// Options represents options for creating a new Server.
type Options struct {
	Logger   *logger.Logger
	Services service.Services
}

// New creates a new instance of Server.
func New(opts Options) *Server {
	s := &Server{
		logger:   opts.Logger.Named("server"),
		services: opts.Services,
	}

	s.server = &fasthttp.Server{
		Name:    serviceName,
		Handler: s.Handler(),
	}

	return s
}

// Handler returns the request handler with all routes registered.
func (s *Server) Handler() fasthttp.RequestHandler {
	r := router.New()

	r.GET("/health", s.health)
	r.GET("/routes", s.listRoutes)
	r.GET("/seats", s.seatSelection)

	api := r.Group("/api")
	api.POST("/routes/search", s.searchRoutes)
	api.POST("/seats/{seat_id}/select", s.selectSeat)
	api.POST("/payment/process", s.processPayment)
	api.GET("/payment/{transaction_id}", s.getPayment)

	return s.recoverer(s.accessLog(r.Handler))
}

// ListenAndServe serves HTTP requests on addr until Shutdown is called.
func (s *Server) ListenAndServe(addr string) error {
	s.logger.Info().Str("address", addr).Msg("starting http server")

	return s.server.ListenAndServe(addr)
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown() error {
	return s.server.Shutdown()
}

func (s *Server) health(ctx *fasthttp.RequestCtx) {
	status := s.services.Health.Check(ctx)

	response := healthResponse{
		Status:    "healthy",
		Timestamp: status.Timestamp.Format(time.RFC3339Nano),
		Service:   serviceName,
	}
	if !status.Healthy {
		response.Status = "unhealthy"
		s.writeJSON(ctx, http.StatusServiceUnavailable, response)
		return
	}

	s.writeJSON(ctx, http.StatusOK, response)
}

func (s *Server) listRoutes(ctx *fasthttp.RequestCtx) {
	pagination, err := paginationFromQuery(ctx.QueryArgs())
	if err != nil {
		s.writeError(ctx, err)
		return
	}

	routes, err := s.services.Booking.ListRoutes(ctx, pagination)
	if err != nil {
		s.writeError(ctx, err)
		return
	}

	s.writeJSON(ctx, http.StatusOK, newRouteResponses(routes))
}

func (s *Server) seatSelection(ctx *fasthttp.RequestCtx) {
	var routeID *int
	if raw := ctx.QueryArgs().Peek("route_id"); len(raw) != 0 {
		id, err := strconv.Atoi(string(raw))
		if err != nil {
			s.writeError(ctx, errs.New("route_id must be a number"))
			return
		}
		routeID = typecast.ToPtr(id)
	}

	page, err := s.services.Booking.GetSeatSelection(ctx, routeID)
	if err != nil {
		s.writeError(ctx, err)
		return
	}

	s.writeJSON(ctx, http.StatusOK, seatSelectionPageResponse{
		Route: newRouteResponse(page.Route),
		SeatLayout: seatLayoutResponse{
			UpperDeck: newSeatResponses(page.Layout.UpperDeck),
			LowerDeck: newSeatResponses(page.Layout.LowerDeck),
		},
	})
}

func (s *Server) searchRoutes(ctx *fasthttp.RequestCtx) {
	var request searchRoutesRequest
	err := decodeBody(ctx.PostBody(), &request)
	if err != nil {
		s.writeError(ctx, errs.New("invalid request body"))
		return
	}

	routes, err := s.services.Booking.SearchRoutes(ctx, service.SearchRoutesOptions{
		Source:      request.Source,
		Destination: request.Destination,
	})
	if err != nil {
		s.writeError(ctx, err)
		return
	}

	s.writeJSON(ctx, http.StatusOK, searchRoutesResponse{
		Success: true,
		Routes:  newRouteResponses(routes),
		Count:   len(routes),
	})
}

func (s *Server) selectSeat(ctx *fasthttp.RequestCtx) {
	seatID, _ := ctx.UserValue("seat_id").(string)

	var request selectSeatRequest
	err := decodeBody(ctx.PostBody(), &request)
	if err != nil {
		s.writeError(ctx, errs.New("invalid request body"))
		return
	}

	selection, err := s.services.Booking.SelectSeat(ctx, service.SelectSeatOptions{
		SeatID:        seatID,
		PassengerName: request.PassengerName,
	})
	if err != nil {
		s.writeError(ctx, err)
		return
	}

	s.writeJSON(ctx, http.StatusOK, selectSeatResponse{
		Success:       true,
		SeatID:        selection.SeatID,
		PassengerName: selection.PassengerName,
		Message:       fmt.Sprintf("Seat %s selected successfully", selection.SeatID),
	})
}

func (s *Server) processPayment(ctx *fasthttp.RequestCtx) {
	var request processPaymentRequest
	err := decodeBody(ctx.PostBody(), &request)
	if err != nil {
		s.writeError(ctx, errs.New("invalid request body"))
		return
	}

	opts := service.ProcessPaymentOptions{
		SeatID:        request.SeatID,
		PassengerName: request.PassengerName,
	}
	if request.Amount != nil {
		opts.Amount = &request.Amount.Money
	}

	payment, err := s.services.Payment.ProcessPayment(ctx, opts)
	if err != nil {
		s.writeError(ctx, err)
		return
	}

	s.writeJSON(ctx, http.StatusOK, processPaymentResponse{
		Success:       true,
		TransactionID: payment.TransactionID,
		Message:       "Payment processed successfully",
	})
}

func (s *Server) getPayment(ctx *fasthttp.RequestCtx) {
	transactionID, _ := ctx.UserValue("transaction_id").(string)

	payment, err := s.services.Payment.GetPayment(ctx, transactionID)
	if err != nil {
		s.writeError(ctx, err)
		return
	}

	s.writeJSON(ctx, http.StatusOK, newPaymentResponse(*payment))
}

func (s *Server) writeError(ctx *fasthttp.RequestCtx, err error) {
	statusCode := errs.StatusCode(err)

	message := "internal server error"
	if errs.IsExpected(err) {
		message = errs.Message(err)
	} else {
		s.logger.Error().Err(err).Str("path", string(ctx.Path())).Msg("handle request")
	}

	s.writeJSON(ctx, statusCode, errorResponse{
		Success: false,
		Message: message,
	})
}

func (s *Server) writeJSON(ctx *fasthttp.RequestCtx, statusCode int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		s.logger.Error().Err(err).Msg("encode response body")
		ctx.Error("internal server error", http.StatusInternalServerError)
		return
	}

	ctx.SetContentType("application/json")
	ctx.SetStatusCode(statusCode)
	ctx.SetBody(body)
}

// paginationFromQuery returns nil when the limit is not set, so the whole list is returned.
func paginationFromQuery(args *fasthttp.Args) (*service.Pagination, error) {
	if !args.Has("limit") {
		return nil, nil
	}

	limit, err := args.GetUint("limit")
	if err != nil {
		return nil, service.ErrInvalidPagination
	}

	var page int
	if args.Has("page") {
		page, err = args.GetUint("page")
		if err != nil || page == 0 {
			return nil, service.ErrInvalidPagination
		}
	}

	return service.NewPagination(page, limit)
}
