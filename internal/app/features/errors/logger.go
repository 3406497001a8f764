// internal/app/features/errors/logger.go
package errors

import (
	"net/http"

	"go.uber.org/zap"
)

// ErrorLogger pairs structured logging with user-facing error pages so
// handlers can report a failure in one call.
type ErrorLogger struct {
	log *zap.Logger
}

// NewErrorLogger constructs an ErrorLogger around the app logger.
func NewErrorLogger(logger *zap.Logger) *ErrorLogger {
	return &ErrorLogger{log: logger}
}

// LogServerError logs msg with the underlying error at error level, then
// renders the server-error page with userMsg.
func (e *ErrorLogger) LogServerError(w http.ResponseWriter, r *http.Request, msg string, err error, userMsg, backURL string) {
	if e.log != nil {
		e.log.Error(msg, zap.Error(err), zap.String("path", r.URL.Path))
	}
	RenderServerError(w, r, userMsg, backURL)
}

// LogBadRequest logs msg with the underlying error at warn level, then
// renders the bad-request page with userMsg.
func (e *ErrorLogger) LogBadRequest(w http.ResponseWriter, r *http.Request, msg string, err error, userMsg, backURL string) {
	if e.log != nil {
		e.log.Warn(msg, zap.Error(err), zap.String("path", r.URL.Path))
	}
	RenderBadRequest(w, r, userMsg, backURL)
}
