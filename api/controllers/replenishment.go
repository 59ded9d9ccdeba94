package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dsanchezmx/shelfstock-backend/api/responses"
	"github.com/dsanchezmx/shelfstock-backend/api/validators"
	replenishmentsvc "github.com/dsanchezmx/shelfstock-backend/internal/replenishment"
	pkgerrors "github.com/dsanchezmx/shelfstock-backend/pkg/errors"
	"github.com/dsanchezmx/shelfstock-backend/pkg/logger"
)

// ReorderGenerate runs the planning pass for every product stocked in a store.
func ReorderGenerate(svc replenishmentsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "replenishment service unavailable"))
			return
		}

		storeID, err := validators.ParsePathUUID(chi.URLParam(r, "storeId"), "store id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.GeneratePlan(r.Context(), storeID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}

// ReorderPending lists the unprocessed recommendations for a store.
func ReorderPending(svc replenishmentsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "replenishment service unavailable"))
			return
		}

		storeID, err := validators.ParsePathUUID(chi.URLParam(r, "storeId"), "store id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.ListPending(r.Context(), storeID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}

// ReorderProcess marks a recommendation as acted on.
func ReorderProcess(svc replenishmentsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "replenishment service unavailable"))
			return
		}

		id, err := validators.ParsePathUUID(chi.URLParam(r, "recommendationId"), "recommendation id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.MarkProcessed(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{"status": "processed"})
	}
}
