package rabbitmq_common

// Logger is the minimal logging surface the connection manager and the
// publisher need. Key/value pairs follow the message, alternating keys
// and values. The service bridges its own logger onto this interface.
type Logger interface {
	Debug(msg string, keysAndValues ...interface{})
	Info(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
	Error(err error, msg string, keysAndValues ...interface{})
}

type noopLogger struct{}

func (l *noopLogger) Debug(msg string, keysAndValues ...interface{})            {}
func (l *noopLogger) Info(msg string, keysAndValues ...interface{})             {}
func (l *noopLogger) Warn(msg string, keysAndValues ...interface{})             {}
func (l *noopLogger) Error(err error, msg string, keysAndValues ...interface{}) {}

// NewNoopLogger returns a logger that discards everything. Used when no
// logger is configured on a manager or publisher.
func NewNoopLogger() Logger {
	return &noopLogger{}
}
