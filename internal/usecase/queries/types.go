package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type MediaView struct {
	URL  string `json:"url"`
	Kind string `json:"kind"`
}

type ResidenceView struct {
	ID           uuid.UUID   `json:"id"`
	OwnerID      uuid.UUID   `json:"owner_id"`
	Title        string      `json:"title"`
	Description  string      `json:"description"`
	Type         string      `json:"type"`
	Price        int64       `json:"price"`
	Location     string      `json:"location"`
	Address      string      `json:"address"`
	Reference    *string     `json:"reference,omitempty"`
	Media        []MediaView `json:"media"`
	Amenities    []string    `json:"amenities"`
	Status       string      `json:"status"`
	Rating       float64     `json:"rating"`
	ReviewsCount int32       `json:"reviews_count"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

// ReservationView is the populated form of a reservation: the residence and
// booker references are resolved into display fields. ResidenceOwnerID is nil
// when the residence no longer exists (orphan reservation).
type ReservationView struct {
	ID                uuid.UUID  `json:"id"`
	ResidenceID       uuid.UUID  `json:"residence_id"`
	ResidenceTitle    *string    `json:"residence_title,omitempty"`
	ResidenceLocation *string    `json:"residence_location,omitempty"`
	ResidenceOwnerID  *uuid.UUID `json:"-"`
	UserID            uuid.UUID  `json:"user_id"`
	UserEmail         string     `json:"user_email"`
	Status            string     `json:"status"`
	TotalPrice        int64      `json:"total_price"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

type ReservationListItem struct {
	ID             uuid.UUID `json:"id"`
	ResidenceID    uuid.UUID `json:"residence_id"`
	ResidenceTitle *string   `json:"residence_title,omitempty"`
	UserID         uuid.UUID `json:"user_id"`
	Status         string    `json:"status"`
	TotalPrice     int64     `json:"total_price"`
	CreatedAt      time.Time `json:"created_at"`
}

// OwnerStats aggregates reservation counts and confirmed revenue over every
// residence the owner controls.
type OwnerStats struct {
	Total        int64 `json:"total"`
	Confirmed    int64 `json:"confirmed"`
	Pending      int64 `json:"pending"`
	Cancelled    int64 `json:"cancelled"`
	TotalRevenue int64 `json:"total_revenue"`
}

type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}

// ResidenceFilters narrows the public listing. Location and Title are
// case-insensitive substring matches; MaxPrice is an upper bound.
type ResidenceFilters struct {
	Location *string
	Title    *string
	MaxPrice *int64
}
