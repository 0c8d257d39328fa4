package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/sanskritiagarwal6-debug/luxemarket-api/internal/infra/events"
)

// EventsHandler streams lead-sold events to catalog clients over SSE, so an
// exclusive purchase disappears from every open catalog without a refresh.
type EventsHandler struct {
	Broadcaster *events.Broadcaster
}

func NewEventsHandler(b *events.Broadcaster) *EventsHandler {
	return &EventsHandler{Broadcaster: b}
}

func (h *EventsHandler) Handle(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	// The server write timeout would sever long-lived streams.
	http.NewResponseController(w).SetWriteDeadline(time.Time{})

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	ch := h.Broadcaster.Subscribe()
	defer h.Broadcaster.Unsubscribe(ch)

	for {
		select {
		case <-r.Context().Done():
			return
		case payload, open := <-ch:
			if !open {
				return
			}
			data, err := json.Marshal(payload)
			if err != nil {
				continue
			}
			fmt.Fprintf(w, "event: lead_sold\ndata: %s\n\n", data)
			flusher.Flush()
		}
	}
}
