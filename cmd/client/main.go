// Command client books a seat through the backend API:
//
//	client <source> <destination> <seat_id> <passenger_name>
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/VladPetriv/busbooker/config"
	"github.com/VladPetriv/busbooker/internal/api/busbooker"
	"github.com/VladPetriv/busbooker/pkg/apiclient"
	"github.com/VladPetriv/busbooker/pkg/logger"
	"github.com/VladPetriv/busbooker/pkg/money"
	"github.com/VladPetriv/busbooker/pkg/notify"
)

func main() {
	if len(os.Args) != 5 {
		fmt.Fprintln(os.Stderr, "usage: client <source> <destination> <seat_id> <passenger_name>")
		os.Exit(2)
	}

	cfg := config.Get()

	logger := logger.New(logger.Options{
		LogLevel:        cfg.Logger.LogLevel,
		LogFile:         cfg.Logger.LogFilename,
		PrettyLogOutput: cfg.Logger.PrettyLogOutput,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	httpClient := apiclient.New(apiclient.Options{
		BaseURL: cfg.APIClient.BaseURL,
		Logger:  logger,
	})
	defer httpClient.Close() //nolint: errcheck

	notifier := notify.New(notify.Options{Logger: logger})

	ok := book(ctx, busbooker.New(httpClient), notifier, bookingRequest{
		source:        os.Args[1],
		destination:   os.Args[2],
		seatID:        os.Args[3],
		passengerName: os.Args[4],
	})
	if !ok {
		os.Exit(1)
	}
}

type bookingRequest struct {
	source        string
	destination   string
	seatID        string
	passengerName string
}

func book(ctx context.Context, client *busbooker.Client, notifier *notify.Notifier, req bookingRequest) bool {
	search := client.SearchRoutes(ctx, busbooker.SearchRoutesOptions{
		Source:      req.source,
		Destination: req.destination,
	})
	if !search.Success() {
		notifier.Show(search.Message(), notify.TypeError)
		return false
	}

	price, found := cheapestPrice(search)
	if !found {
		notifier.Show(fmt.Sprintf("No routes from %s to %s", req.source, req.destination), notify.TypeWarning)
		return false
	}
	notifier.Show(fmt.Sprintf("Found routes from %s to %s starting at %s", req.source, req.destination, price.Format()), notify.TypeInfo)

	selection := client.SelectSeat(ctx, req.seatID, req.passengerName)
	if !selection.Success() {
		notifier.Show(selection.Message(), notify.TypeError)
		return false
	}
	notifier.Show(selection.Message(), notify.TypeSuccess)

	payment := client.ProcessPayment(ctx, busbooker.ProcessPaymentOptions{
		Amount:        price.StringFixed(),
		SeatID:        req.seatID,
		PassengerName: req.passengerName,
	})
	if !payment.Success() {
		notifier.Show(payment.Message(), notify.TypeError)
		return false
	}
	notifier.Show(fmt.Sprintf("%s, transaction %s", payment.Message(), busbooker.TransactionID(payment)), notify.TypeSuccess)

	return true
}

// cheapestPrice returns the lowest fare among the found routes, preferring discounted prices.
func cheapestPrice(response apiclient.Response) (money.Money, bool) {
	routes, _ := response["routes"].([]any)

	var (
		cheapest money.Money
		found    bool
	)
	for _, r := range routes {
		route, ok := r.(map[string]any)
		if !ok {
			continue
		}

		price, ok := fareOf(route)
		if !ok {
			continue
		}

		if !found || cheapest.GreaterThan(price) {
			cheapest, found = price, true
		}
	}

	return cheapest, found
}

func fareOf(route map[string]any) (money.Money, bool) {
	for _, key := range []string{"discount_price", "price"} {
		price, ok := route[key].(float64)
		if ok {
			return money.NewFromFloat(price), true
		}
	}

	return money.Money{}, false
}
