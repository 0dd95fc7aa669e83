package dto

import (
	"time"

	"github.com/SwatiP012/Momo-Muffin-backend/internal/domain/model"
)

// StoreResponse is a store as shown to superadmins.
type StoreResponse struct {
	ID               int64     `json:"id"`
	OwnerID          int64     `json:"ownerId"`
	StoreName        string    `json:"storeName"`
	StoreDescription string    `json:"storeDescription,omitempty"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"createdAt"`
}

func NewStoreResponse(s model.Store) StoreResponse {
	return StoreResponse{
		ID:               s.ID,
		OwnerID:          s.OwnerID,
		StoreName:        s.StoreName,
		StoreDescription: s.StoreDescription,
		Status:           string(s.Status),
		CreatedAt:        s.CreatedAt,
	}
}
