package api

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/bytedance/sonic"
	"github.com/limbo/studyquest/pkg/httputil"
)

// streamEvents writes every value from values as a server-sent event until
// the client goes away or values is closed.
func streamEvents[T any](w http.ResponseWriter, r *http.Request, logger *slog.Logger, event string, values <-chan T) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		logger.Error("streaming unsupported by response writer")
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "streaming unsupported", nil)
		return
	}
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()
	logger.Info("stream opened", slog.String("event", event))
	defer logger.Info("stream closed", slog.String("event", event))
	for {
		select {
		case <-r.Context().Done():
			return
		case value, ok := <-values:
			if !ok {
				return
			}
			data, err := sonic.ConfigDefault.Marshal(value)
			if err != nil {
				logger.Error("encoding stream event error", slog.String("error", err.Error()))
				return
			}
			if _, err = fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, data); err != nil {
				return
			}
			flusher.Flush()
		}
	}
}
