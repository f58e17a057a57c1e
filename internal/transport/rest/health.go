package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"
)

const pingTimeout = 3 * time.Second

// dbPinger defines the minimal interface for DB health checks.
type dbPinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves the liveness, readiness and health probes.
type HealthHandler struct {
	db      dbPinger
	version string
	log     *slog.Logger
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(db dbPinger, version string, log *slog.Logger) *HealthHandler {
	return &HealthHandler{db: db, version: version, log: log.With("handler", "health")}
}

// HealthResponse is the JSON body of every probe.
type HealthResponse struct {
	Status    string          `json:"status"`
	Version   string          `json:"version,omitempty"`
	Database  *DatabaseStatus `json:"database,omitempty"`
	Timestamp time.Time       `json:"timestamp"`
}

// DatabaseStatus reports the outcome of a DB ping.
type DatabaseStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

// Live always returns 200 while the process serves requests.
func (h *HealthHandler) Live(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: time.Now().UTC()})
}

// Ready returns 503 when the database cannot be reached.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	db := h.checkDatabase(r.Context())
	writeJSON(w, statusCode(db), HealthResponse{Status: db.Status, Timestamp: time.Now().UTC()})
}

// Health is Ready plus version and ping latency.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	db := h.checkDatabase(r.Context())
	writeJSON(w, statusCode(db), HealthResponse{
		Status:    db.Status,
		Version:   h.version,
		Database:  &db,
		Timestamp: time.Now().UTC(),
	})
}

func (h *HealthHandler) checkDatabase(ctx context.Context) DatabaseStatus {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	start := time.Now()
	if err := h.db.Ping(ctx); err != nil {
		h.log.WarnContext(ctx, "database ping failed", slog.String("error", err.Error()))
		return DatabaseStatus{Status: "down"}
	}
	return DatabaseStatus{Status: "ok", Latency: time.Since(start).String()}
}

func statusCode(db DatabaseStatus) int {
	if db.Status != "ok" {
		return http.StatusServiceUnavailable
	}
	return http.StatusOK
}
