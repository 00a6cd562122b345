package port

// Fields carries structured logging context.
type Fields map[string]interface{}

// LoggerPort is the logging contract the core depends on. It abstracts the
// application from the concrete logger implementation.
type LoggerPort interface {
	Info(msg string, fields Fields)

	Warn(msg string, fields Fields)

	Error(msg string, err error, fields Fields)

	Debug(msg string, fields Fields)

	// WithFields returns a new logger instance with the fields attached.
	WithFields(fields Fields) LoggerPort
}
