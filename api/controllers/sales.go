package controllers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/dsanchezmx/shelfstock-backend/api/responses"
	"github.com/dsanchezmx/shelfstock-backend/api/validators"
	salessvc "github.com/dsanchezmx/shelfstock-backend/internal/sales"
	pkgerrors "github.com/dsanchezmx/shelfstock-backend/pkg/errors"
	"github.com/dsanchezmx/shelfstock-backend/pkg/logger"
)

type recordSaleRequest struct {
	ProductID     string     `json:"productId" validate:"required"`
	StoreID       string     `json:"storeId" validate:"required"`
	Quantity      int        `json:"quantity" validate:"required,min=1"`
	TransactionAt *time.Time `json:"transactionAt,omitempty"`
}

func (r recordSaleRequest) toInput() (salessvc.RecordSaleInput, error) {
	productID, err := uuid.Parse(r.ProductID)
	if err != nil {
		return salessvc.RecordSaleInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid product id")
	}
	storeID, err := uuid.Parse(r.StoreID)
	if err != nil {
		return salessvc.RecordSaleInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid store id")
	}
	input := salessvc.RecordSaleInput{
		ProductID: productID,
		StoreID:   storeID,
		Quantity:  r.Quantity,
	}
	if r.TransactionAt != nil {
		input.TransactionAt = *r.TransactionAt
	}
	return input, nil
}

// SaleRecord registers a sale and decrements the matching stock level.
func SaleRecord(svc salessvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "sales service unavailable"))
			return
		}

		var body recordSaleRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input, err := body.toInput()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.RecordSale(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, result)
	}
}

// StoreSales lists the recent sales for one store. The lookback defaults
// to 30 days and is capped at a year.
func StoreSales(svc salessvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "sales service unavailable"))
			return
		}

		storeID, err := validators.ParsePathUUID(chi.URLParam(r, "storeId"), "store id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		days, err := validators.ParseQueryInt(r, "days", 30, 1, 365)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.ListForStore(r.Context(), storeID, days)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}
