package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dsanchezmx/shelfstock-backend/api/responses"
	"github.com/dsanchezmx/shelfstock-backend/api/validators"
	abcsvc "github.com/dsanchezmx/shelfstock-backend/internal/abcanalysis"
	pkgerrors "github.com/dsanchezmx/shelfstock-backend/pkg/errors"
	"github.com/dsanchezmx/shelfstock-backend/pkg/logger"
)

func classifyForRequest(svc abcsvc.Service, w http.ResponseWriter, r *http.Request, logg *logger.Logger) ([]abcsvc.Result, bool) {
	storeID, err := validators.ParsePathUUID(chi.URLParam(r, "storeId"), "store id")
	if err != nil {
		responses.WriteError(r.Context(), logg, w, err)
		return nil, false
	}

	days, err := validators.ParseQueryInt(r, "days", 0, 1, 365)
	if err != nil {
		responses.WriteError(r.Context(), logg, w, err)
		return nil, false
	}

	results, err := svc.Classify(r.Context(), storeID, days)
	if err != nil {
		responses.WriteError(r.Context(), logg, w, err)
		return nil, false
	}
	return results, true
}

// AbcClassify ranks a store's products by revenue contribution.
func AbcClassify(svc abcsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "abc analysis service unavailable"))
			return
		}

		results, ok := classifyForRequest(svc, w, r, logg)
		if !ok {
			return
		}

		responses.WriteSuccess(w, results)
	}
}

// AbcByCategory returns the classification bucketed into the A/B/C tiers.
func AbcByCategory(svc abcsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "abc analysis service unavailable"))
			return
		}

		results, ok := classifyForRequest(svc, w, r, logg)
		if !ok {
			return
		}

		responses.WriteSuccess(w, abcsvc.GroupByCategory(results))
	}
}

// AbcSummary returns the per-tier product counts.
func AbcSummary(svc abcsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "abc analysis service unavailable"))
			return
		}

		results, ok := classifyForRequest(svc, w, r, logg)
		if !ok {
			return
		}

		responses.WriteSuccess(w, abcsvc.AnalysisSummary{
			TotalProducts: len(results),
			Counts:        abcsvc.SummarizeByCategory(results),
		})
	}
}
