package logger

import "fmt"

// RestyLogger adapts Logger to the logger interface of resty clients.
type RestyLogger struct {
	log *Logger
}

// NewRestyLogger returns a resty compatible wrapper around log.
func NewRestyLogger(log *Logger) *RestyLogger {
	return &RestyLogger{log: log}
}

func (r *RestyLogger) Errorf(format string, v ...any) {
	r.log.Error().Msg(fmt.Sprintf(format, v...))
}

func (r *RestyLogger) Warnf(format string, v ...any) {
	r.log.Warn().Msg(fmt.Sprintf(format, v...))
}

func (r *RestyLogger) Debugf(format string, v ...any) {
	r.log.Debug().Msg(fmt.Sprintf(format, v...))
}
