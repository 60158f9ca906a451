package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
)

// TrackingWriter records the status and size of a response. Once the request
// context is done, further writes are dropped so that a handler still running
// after a timeout cannot touch the connection.
type TrackingWriter struct {
	http.ResponseWriter
	ctx context.Context //nolint:containedctx //Writes are checked against the request's lifetime.

	mu          sync.Mutex
	status      int
	wroteHeader bool
	bytes       int
}

func NewTrackingWriter(ctx context.Context, w http.ResponseWriter) *TrackingWriter {
	return &TrackingWriter{
		ResponseWriter: w,
		ctx:            ctx,
		status:         http.StatusOK,
	}
}

func (w *TrackingWriter) WriteHeader(statusCode int) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.dropped() || w.wroteHeader {
		return
	}

	w.writeHeader(statusCode)
}

func (w *TrackingWriter) Write(b []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.dropped() {
		return 0, nil
	}

	if !w.wroteHeader {
		w.writeHeader(http.StatusOK)
	}

	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

func (w *TrackingWriter) Status() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.status
}

func (w *TrackingWriter) BytesWritten() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.bytes
}

// Unwrap exposes the underlying writer to http.ResponseController.
func (w *TrackingWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

func (w *TrackingWriter) writeHeader(statusCode int) {
	w.ResponseWriter.WriteHeader(statusCode)
	w.status = statusCode
	w.wroteHeader = true
}

func (w *TrackingWriter) dropped() bool {
	if err := w.ctx.Err(); err != nil {
		slog.WarnContext(w.ctx, "response write dropped", "reason", err)
		return true
	}
	return false
}

// InjectWriter wraps the response writer in a TrackingWriter for LogRequest.
func InjectWriter(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(NewTrackingWriter(r.Context(), w), r)
	})
}
