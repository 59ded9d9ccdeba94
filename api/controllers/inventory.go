package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dsanchezmx/shelfstock-backend/api/responses"
	"github.com/dsanchezmx/shelfstock-backend/api/validators"
	inventorysvc "github.com/dsanchezmx/shelfstock-backend/internal/inventory"
	pkgerrors "github.com/dsanchezmx/shelfstock-backend/pkg/errors"
	"github.com/dsanchezmx/shelfstock-backend/pkg/logger"
)

// StoreInventory lists the stock levels for one store.
func StoreInventory(svc inventorysvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "inventory service unavailable"))
			return
		}

		storeID, err := validators.ParsePathUUID(chi.URLParam(r, "storeId"), "store id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.ListForStore(r.Context(), storeID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}

type updateStockRequest struct {
	NewStock *int `json:"newStock" validate:"required,min=0"`
}

// InventoryUpdateStock overwrites the on-hand quantity for one level.
func InventoryUpdateStock(svc inventorysvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "inventory service unavailable"))
			return
		}

		inventoryID, err := validators.ParsePathUUID(chi.URLParam(r, "inventoryId"), "inventory id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body updateStockRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.UpdateStock(r.Context(), inventoryID, *body.NewStock)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}
