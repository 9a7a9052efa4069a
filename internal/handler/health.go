package handler

import (
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"vidplan/internal/httputil"
)

// HealthHandler reports service and database health
type HealthHandler struct {
	pool *pgxpool.Pool
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(pool *pgxpool.Pool) *HealthHandler {
	return &HealthHandler{pool: pool}
}

// HealthCheck is a simple health check endpoint that also pings the database
// GET /api/health
func (h *HealthHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	database := "ok"
	status := "ok"
	code := http.StatusOK
	if err := h.pool.Ping(r.Context()); err != nil {
		database = "unreachable"
		status = "degraded"
		code = http.StatusServiceUnavailable
	}

	httputil.RespondJSON(w, code, map[string]interface{}{
		"status":   status,
		"database": database,
		"time":     time.Now().UTC(),
	})
}

// Root is the service banner endpoint
// GET /
func (h *HealthHandler) Root(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"service": "vidplan",
		"status":  "running",
	})
}
