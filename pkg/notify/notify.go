// Package notify writes user facing notifications to the diagnostic log and
// optionally forwards them to external sinks.
package notify

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/VladPetriv/busbooker/pkg/logger"
	"github.com/VladPetriv/busbooker/pkg/worker"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Type represents a notification severity.
type Type string

// Known notification types. Any other value is accepted and rendered upper-cased.
const (
	TypeInfo    Type = "info"
	TypeSuccess Type = "success"
	TypeWarning Type = "warning"
	TypeError   Type = "error"
)

// Notification represents a single notification.
type Notification struct {
	Type    Type
	Message string
}

// String returns the log line of the notification, e.g. "ERROR: payment failed".
func (n Notification) String() string {
	return fmt.Sprintf("%s: %s", strings.ToUpper(string(n.Type)), n.Message)
}

// Sink receives notifications after they were logged.
type Sink interface {
	Send(ctx context.Context, notification Notification) error
}

// Notifier logs notifications and fans them out to sinks.
type Notifier struct {
	logger *logger.Logger
	sinks  []Sink
	pool   *worker.Pool[Notification]
}

// Options represents options for creating a new Notifier.
type Options struct {
	Logger *logger.Logger
	Sinks  []Sink
	// WorkersCount is the number of goroutines delivering notifications to sinks.
	WorkersCount int
	// QueueSize bounds the number of undelivered notifications, newer ones are dropped.
	QueueSize int
}

// New creates a new Notifier. When sinks are given, Start must be called to deliver to them.
func New(opts Options) *Notifier {
	n := &Notifier{
		logger: opts.Logger.Named("notify"),
		sinks:  opts.Sinks,
	}

	if len(opts.Sinks) > 0 {
		n.pool = worker.NewPool(worker.Options[Notification]{
			WorkersCount: opts.WorkersCount,
			QueueSize:    opts.QueueSize,
			HandlerFunc:  n.deliver,
			Logger:       opts.Logger,
		})
	}

	return n
}

// Start starts delivering notifications to sinks until Stop is called.
// Cancellation of ctx is not propagated to deliveries, so Stop still flushes the queue.
func (n *Notifier) Start(ctx context.Context) {
	if n.pool != nil {
		n.pool.Start(context.WithoutCancel(ctx))
	}
}

// Stop waits until queued notifications are delivered.
func (n *Notifier) Stop() {
	if n.pool != nil {
		n.pool.Stop()
	}
}

// Show writes "<TYPE>: <message>" to the diagnostic log. Empty type means TypeInfo.
func (n *Notifier) Show(message string, notificationType Type) {
	if notificationType == "" {
		notificationType = TypeInfo
	}

	notification := Notification{
		Type:    notificationType,
		Message: message,
	}

	n.logger.WithLevel(levelOf(notificationType)).
		Str("type", string(notificationType)).
		Msg(notification.String())

	if n.pool != nil {
		n.pool.AddJob(uuid.NewString(), notification)
	}
}

func (n *Notifier) deliver(ctx context.Context, _ string, notification Notification) error {
	var sendErrs []error
	for _, sink := range n.sinks {
		err := sink.Send(ctx, notification)
		if err != nil {
			sendErrs = append(sendErrs, fmt.Errorf("send notification to %T: %w", sink, err))
		}
	}

	return errors.Join(sendErrs...)
}

func levelOf(notificationType Type) zerolog.Level {
	switch notificationType {
	case TypeError:
		return zerolog.ErrorLevel
	case TypeWarning:
		return zerolog.WarnLevel
	default:
		return zerolog.InfoLevel
	}
}
