// Package health exposes liveness endpoints that report storage connectivity
// without ever failing the probe itself.
package health

import (
	"context"
	"net/http"
	"time"

	"booksvc/internal/httpx"
)

// Pinger reports storage connectivity; a *pgxpool.Pool satisfies it.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Status struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

type HTTPHandler struct {
	db      Pinger
	timeout time.Duration
}

func NewHTTPHandler(db Pinger, timeout time.Duration) *HTTPHandler {
	return &HTTPHandler{db: db, timeout: timeout}
}

// Check handles GET /health and GET /healthz. It always answers 200; the body
// carries the storage status so a process whose database dropped out keeps
// reporting instead of crashing the probe.
func (h *HTTPHandler) Check(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	database := "connected"
	if err := h.db.Ping(ctx); err != nil {
		database = "disconnected"
	}

	httpx.JSON(w, http.StatusOK, Status{Status: "healthy", Database: database})
}
