package response

import (
	"time"

	"staybook/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationResponse struct {
	ID                uuid.UUID `json:"id"`
	ResidenceID       uuid.UUID `json:"residenceId"`
	ResidenceTitle    *string   `json:"residenceTitle,omitempty"`
	ResidenceLocation *string   `json:"residenceLocation,omitempty"`
	UserID            uuid.UUID `json:"userId"`
	UserEmail         string    `json:"userEmail"`
	Status            string    `json:"status"`
	TotalPrice        int64     `json:"totalPrice"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

type ReservationListResponse struct {
	ID             uuid.UUID `json:"id"`
	ResidenceID    uuid.UUID `json:"residenceId"`
	ResidenceTitle *string   `json:"residenceTitle,omitempty"`
	UserID         uuid.UUID `json:"userId"`
	Status         string    `json:"status"`
	TotalPrice     int64     `json:"totalPrice"`
	CreatedAt      time.Time `json:"createdAt"`
}

type OwnerStatsResponse struct {
	Total        int64 `json:"total"`
	Confirmed    int64 `json:"confirmed"`
	Pending      int64 `json:"pending"`
	Cancelled    int64 `json:"cancelled"`
	TotalRevenue int64 `json:"totalRevenue"`
}

func FromReservationView(rm *queries.ReservationView) *ReservationResponse {
	return &ReservationResponse{
		ID:                rm.ID,
		ResidenceID:       rm.ResidenceID,
		ResidenceTitle:    rm.ResidenceTitle,
		ResidenceLocation: rm.ResidenceLocation,
		UserID:            rm.UserID,
		UserEmail:         rm.UserEmail,
		Status:            rm.Status,
		TotalPrice:        rm.TotalPrice,
		CreatedAt:         rm.CreatedAt,
		UpdatedAt:         rm.UpdatedAt,
	}
}

func FromReservationListItems(rms []*queries.ReservationListItem) []*ReservationListResponse {
	out := make([]*ReservationListResponse, 0, len(rms))
	for _, rm := range rms {
		out = append(out, &ReservationListResponse{
			ID:             rm.ID,
			ResidenceID:    rm.ResidenceID,
			ResidenceTitle: rm.ResidenceTitle,
			UserID:         rm.UserID,
			Status:         rm.Status,
			TotalPrice:     rm.TotalPrice,
			CreatedAt:      rm.CreatedAt,
		})
	}
	return out
}

func FromOwnerStats(rm *queries.OwnerStats) *OwnerStatsResponse {
	return &OwnerStatsResponse{
		Total:        rm.Total,
		Confirmed:    rm.Confirmed,
		Pending:      rm.Pending,
		Cancelled:    rm.Cancelled,
		TotalRevenue: rm.TotalRevenue,
	}
}
