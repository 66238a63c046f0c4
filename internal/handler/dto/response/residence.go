package response

import (
	"time"

	"staybook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type MediaResponse struct {
	URL  string `json:"url"`
	Kind string `json:"kind"`
}

type ResidenceResponse struct {
	ID           uuid.UUID       `json:"id"`
	OwnerID      uuid.UUID       `json:"ownerId"`
	Title        string          `json:"title"`
	Description  string          `json:"description"`
	Type         string          `json:"type"`
	Price        int64           `json:"price"`
	Location     string          `json:"location"`
	Address      string          `json:"address"`
	Reference    *string         `json:"reference,omitempty"`
	Media        []MediaResponse `json:"media"`
	Amenities    []string        `json:"amenities"`
	Status       string          `json:"status"`
	Rating       float64         `json:"rating"`
	ReviewsCount int32           `json:"reviewsCount"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

func FromResidenceView(rm *queries.ResidenceView) *ResidenceResponse {
	var resp ResidenceResponse
	// Field names line up one to one; copier keeps the mapping mechanical.
	_ = copier.Copy(&resp, rm)
	if resp.Media == nil {
		resp.Media = []MediaResponse{}
	}
	if resp.Amenities == nil {
		resp.Amenities = []string{}
	}
	return &resp
}

func FromResidenceViews(rms []*queries.ResidenceView) []*ResidenceResponse {
	out := make([]*ResidenceResponse, 0, len(rms))
	for _, rm := range rms {
		out = append(out, FromResidenceView(rm))
	}
	return out
}
