package controllers

import (
	"net/http"

	"github.com/esonge/storefront-backend/api/responses"
	"github.com/esonge/storefront-backend/pkg/config"
	pkgerrors "github.com/esonge/storefront-backend/pkg/errors"
	"github.com/esonge/storefront-backend/pkg/logger"
	"github.com/esonge/storefront-backend/pkg/storage"
)

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Esonge-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

func HealthReady(cfg *config.Config, logg *logger.Logger, snaps storage.Snapshots) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Esonge-Env", cfg.App.Env)

		if snaps != nil {
			if err := snaps.Ping(r.Context()); err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "snapshot storage unavailable"))
				return
			}
		}

		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
