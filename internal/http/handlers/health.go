package handlers

import (
	"context"
	"net/http"
	"time"
)

// Root is the liveness message at the API root.
func (a *App) Root(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, map[string]string{"message": "charity sponsorship API running"})
}

// StoreCheck reports database reachability. Store trouble degrades the
// payload instead of failing the request, so the probe stays useful when the
// database is down.
func (a *App) StoreCheck(w http.ResponseWriter, r *http.Request) {
	if a.Probe == nil {
		a.json(w, http.StatusOK, map[string]any{
			"backend":  "running",
			"database": "unavailable",
		})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	tables, err := a.Probe.Tables(ctx)
	if err != nil {
		a.Logger.Error().Err(err).Msg("store probe failed")
		a.json(w, http.StatusOK, map[string]any{
			"backend":  "running",
			"database": "error: " + truncate(err.Error(), 80),
		})
		return
	}

	if tables == nil {
		tables = []string{}
	}
	a.json(w, http.StatusOK, map[string]any{
		"backend":  "running",
		"database": "connected",
		"tables":   tables,
	})
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
