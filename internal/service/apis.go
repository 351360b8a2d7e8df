package service

import "github.com/VladPetriv/busbooker/pkg/notify"

// APIs represents external integrations used by services.
type APIs struct {
	Notifier Notifier
}

// Notifier shows notifications about booking events.
//
//go:generate mockery --dir . --name Notifier --output ./mocks
type Notifier interface {
	// Show shows message with the given severity, empty severity means info.
	Show(message string, notificationType notify.Type)
}
