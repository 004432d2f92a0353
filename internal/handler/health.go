package handler

import (
	"net/http"
	"time"
)

type healthResponse struct {
	Status    string  `json:"status"`
	Message   string  `json:"message"`
	Timestamp string  `json:"timestamp"`
	Uptime    float64 `json:"uptime"`
}

// Health handles GET /api/health. Uptime is in seconds.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	now := h.now()
	resp := healthResponse{
		Status:    "OK",
		Message:   "LoanBaazar backend is running",
		Timestamp: now.UTC().Format(time.RFC3339),
		Uptime:    now.Sub(h.startedAt).Seconds(),
	}

	if err := h.db.Ping(r.Context()); err != nil {
		resp.Status = "unhealthy"
		resp.Message = "database unreachable"
		writeJSON(w, http.StatusServiceUnavailable, resp)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
