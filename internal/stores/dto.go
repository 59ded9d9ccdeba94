package stores

import (
	"time"

	"github.com/dsanchezmx/shelfstock-backend/pkg/db/models"
	"github.com/google/uuid"
)

// StoreDTO is the API-facing view of a store.
type StoreDTO struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Location  string    `json:"location"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

// FromModel maps a persistence row to the DTO.
func FromModel(store *models.Store) *StoreDTO {
	if store == nil {
		return nil
	}
	return &StoreDTO{
		ID:        store.ID,
		Name:      store.Name,
		Location:  store.Location,
		IsActive:  store.IsActive,
		CreatedAt: store.CreatedAt,
	}
}
