// pkg/api/stream.go

package api

import (
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The facade already sends permissive CORS headers for the UI.
	CheckOrigin: func(*http.Request) bool { return true },
}

// handleMetricsStream pushes a snapshot to the client every stream
// interval. The loop is a cancellable recurring task: it stops
// deterministically when the client disconnects or the request context
// ends, so no ticker leaks past the connection.
func (s *Server) handleMetricsStream(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("Websocket upgrade failed: %v", err)
		return
	}

	defer func() {
		if err := conn.Close(); err != nil {
			log.Printf("Error closing websocket: %v", err)
		}
	}()

	// Reader goroutine: we never expect client messages, but reading is
	// how gorilla surfaces the close frame.
	done := make(chan struct{})

	go func() {
		defer close(done)

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	interval := s.streamInterval
	if interval <= 0 {
		interval = 30 * time.Second
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	// First sample immediately so the client does not wait a full tick.
	if !s.pushSnapshot(r, conn) {
		return
	}

	for {
		select {
		case <-done:
			return
		case <-r.Context().Done():
			return
		case <-ticker.C:
			if !s.pushSnapshot(r, conn) {
				return
			}
		}
	}
}

func (s *Server) pushSnapshot(r *http.Request, conn *websocket.Conn) bool {
	snap, err := s.recorder.Sample(r.Context())
	if err != nil {
		// Transient upstream failure; tell the client and keep the
		// stream open so it can recover on the next tick.
		if writeErr := conn.WriteJSON(errorResponse{Error: err.Error(), Kind: "upstream_unavailable"}); writeErr != nil {
			return false
		}

		return true
	}

	if err := conn.WriteJSON(snap); err != nil {
		return false
	}

	return true
}
