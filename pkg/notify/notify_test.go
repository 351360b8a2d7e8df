package notify_test

import (
	"bytes"
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/VladPetriv/busbooker/pkg/logger"
	"github.com/VladPetriv/busbooker/pkg/notify"
	"github.com/stretchr/testify/assert"
)

func TestNotifier_Show(t *testing.T) {
	t.Parallel()

	testCases := [...]struct {
		desc             string
		message          string
		notificationType notify.Type
		expected         []string
	}{
		{
			desc:             "error notification is logged upper-cased with error level",
			message:          "x",
			notificationType: notify.TypeError,
			expected:         []string{`"message":"ERROR: x"`, `"level":"error"`},
		},
		{
			desc:     "empty type defaults to info",
			message:  "Seat U1A selected successfully",
			expected: []string{`"message":"INFO: Seat U1A selected successfully"`, `"level":"info"`, `"type":"info"`},
		},
		{
			desc:             "warning notification is logged with warn level",
			message:          "only 5 seats left",
			notificationType: notify.TypeWarning,
			expected:         []string{`"message":"WARNING: only 5 seats left"`, `"level":"warn"`},
		},
		{
			desc:             "unknown type is kept as is",
			message:          "booked",
			notificationType: "custom",
			expected:         []string{`"message":"CUSTOM: booked"`, `"level":"info"`},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			notifier := notify.New(notify.Options{Logger: logger.NewWithWriter(&buf)})

			notifier.Show(tc.message, tc.notificationType)

			for _, e := range tc.expected {
				assert.Contains(t, buf.String(), e)
			}
		})
	}
}

type recordingSink struct {
	mu            sync.Mutex
	notifications []notify.Notification
	err           error
}

func (r *recordingSink) Send(_ context.Context, notification notify.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.notifications = append(r.notifications, notification)
	return r.err
}

func TestNotifier_Sinks(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	failing := &recordingSink{err: fmt.Errorf("telegram is down")}
	working := &recordingSink{}

	notifier := notify.New(notify.Options{
		Logger:       logger.NewWithWriter(&buf),
		Sinks:        []notify.Sink{failing, working},
		WorkersCount: 1,
		QueueSize:    10,
	})
	notifier.Start(context.Background())

	notifier.Show("Payment processed successfully", notify.TypeSuccess)
	notifier.Stop()

	expected := []notify.Notification{{Type: notify.TypeSuccess, Message: "Payment processed successfully"}}
	assert.Equal(t, expected, failing.notifications)
	assert.Equal(t, expected, working.notifications)
	assert.Contains(t, buf.String(), "telegram is down")
}

type slowSink struct {
	recordingSink
	delay time.Duration
}

func (s *slowSink) Send(ctx context.Context, notification notify.Notification) error {
	time.Sleep(s.delay)
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.recordingSink.Send(ctx, notification)
}

func TestNotifier_StopDeliversQueuedAfterCancel(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	sink := &slowSink{delay: 20 * time.Millisecond}

	notifier := notify.New(notify.Options{
		Logger:       logger.NewWithWriter(&bytes.Buffer{}),
		Sinks:        []notify.Sink{sink},
		WorkersCount: 1,
		QueueSize:    10,
	})
	notifier.Start(ctx)

	notifier.Show("first", notify.TypeInfo)
	notifier.Show("second", notify.TypeInfo)
	notifier.Show("third", notify.TypeInfo)

	cancel()
	notifier.Stop()

	var messages []string
	for _, notification := range sink.notifications {
		messages = append(messages, notification.Message)
	}
	assert.Equal(t, []string{"first", "second", "third"}, messages)
}

func TestNotification_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "INFO: hello", notify.Notification{Type: notify.TypeInfo, Message: "hello"}.String())
}
