package sales

import (
	"time"

	"github.com/dsanchezmx/shelfstock-backend/pkg/db/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RecordSaleInput captures one sale to register.
type RecordSaleInput struct {
	ProductID     uuid.UUID
	StoreID       uuid.UUID
	Quantity      int
	TransactionAt time.Time
}

// TransactionDTO is the API-facing view of one sale.
type TransactionDTO struct {
	ID            uuid.UUID       `json:"id"`
	ProductID     uuid.UUID       `json:"productId"`
	StoreID       uuid.UUID       `json:"storeId"`
	Quantity      int             `json:"quantity"`
	UnitPrice     decimal.Decimal `json:"unitPrice"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	TransactionAt time.Time       `json:"transactionAt"`
}

// FromModel maps a persistence row to the DTO.
func FromModel(tx *models.SalesTransaction) *TransactionDTO {
	if tx == nil {
		return nil
	}
	return &TransactionDTO{
		ID:            tx.ID,
		ProductID:     tx.ProductID,
		StoreID:       tx.StoreID,
		Quantity:      tx.Quantity,
		UnitPrice:     tx.UnitPrice,
		TotalAmount:   tx.TotalAmount,
		TransactionAt: tx.TransactionAt,
	}
}
