package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/shortshop/shortshop-backend/api/responses"
	"github.com/shortshop/shortshop-backend/pkg/config"
	"github.com/shortshop/shortshop-backend/pkg/db"
	pkgerrors "github.com/shortshop/shortshop-backend/pkg/errors"
	"github.com/shortshop/shortshop-backend/pkg/logger"
)

// Root serves the API banner.
func Root(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, map[string]string{
			"name":    cfg.App.Name,
			"version": cfg.App.Version,
			"status":  "ok",
		})
	}
}

// HealthLive reports process liveness with a static payload.
func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Shortshop-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"message":   "service is healthy",
		})
	}
}

// HealthReady reports readiness after checking the database.
func HealthReady(cfg *config.Config, logg *logger.Logger, dbP db.Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Shortshop-Env", cfg.App.Env)

		if dbP == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeDependency, "database not wired"))
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := dbP.Ping(ctx); err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "database unreachable"))
			return
		}

		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
