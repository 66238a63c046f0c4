//go:build unit || e2e

package builder

import (
	"time"

	domrsv "staybook/internal/domain/reservation"
	reqdto "staybook/internal/handler/dto/request"
	"staybook/internal/usecase/commands"
	"staybook/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	ResidenceID       uuid.UUID
	ResidenceTitle    string
	ResidenceLocation string
	ResidenceOwnerID  uuid.UUID
	UserID            uuid.UUID
	UserEmail         string
	Status            string
	TotalPrice        int64
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	now := time.Now()
	return &ReservationBuilder{
		ResidenceID:       uuid.New(),
		ResidenceTitle:    "Seaside Apartment",
		ResidenceLocation: "Lisbon",
		ResidenceOwnerID:  uuid.New(),
		UserID:            uuid.New(),
		UserEmail:         "client@example.com",
		Status:            "pending",
		TotalPrice:        5000,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *ReservationBuilder) BuildDomain() (*domrsv.Reservation, error) {
	return domrsv.NewReservation(b.ResidenceID, b.UserID, b.TotalPrice)
}

func (b *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		ResidenceID: b.ResidenceID,
	}
}

func (b *ReservationBuilder) BuildViewQuery() *queries.ReservationView {
	title := b.ResidenceTitle
	location := b.ResidenceLocation
	return &queries.ReservationView{
		ID:                uuid.New(),
		ResidenceID:       b.ResidenceID,
		ResidenceTitle:    &title,
		ResidenceLocation: &location,
		ResidenceOwnerID:  b.ownerIDPtr(),
		UserID:            b.UserID,
		UserEmail:         b.UserEmail,
		Status:            b.Status,
		TotalPrice:        b.TotalPrice,
		CreatedAt:         b.CreatedAt,
		UpdatedAt:         b.UpdatedAt,
	}
}

func (b *ReservationBuilder) BuildListItem() *queries.ReservationListItem {
	title := b.ResidenceTitle
	return &queries.ReservationListItem{
		ID:             uuid.New(),
		ResidenceID:    b.ResidenceID,
		ResidenceTitle: &title,
		UserID:         b.UserID,
		Status:         b.Status,
		TotalPrice:     b.TotalPrice,
		CreatedAt:      b.CreatedAt,
	}
}

func (b *ReservationBuilder) BuildSnapshot() *commands.ReservationSnapshot {
	return &commands.ReservationSnapshot{
		ID:               uuid.New(),
		ResidenceID:      b.ResidenceID,
		UserID:           b.UserID,
		Status:           domrsv.Status(b.Status),
		ResidenceOwnerID: b.ownerIDPtr(),
	}
}

// ownerIDPtr returns nil for an orphaned reservation.
func (b *ReservationBuilder) ownerIDPtr() *uuid.UUID {
	if b.ResidenceOwnerID == uuid.Nil {
		return nil
	}
	ownerID := b.ResidenceOwnerID
	return &ownerID
}

func (b *ReservationBuilder) BuildResidenceSnapshot() *commands.ResidenceSnapshot {
	return &commands.ResidenceSnapshot{
		ID:      b.ResidenceID,
		OwnerID: b.ResidenceOwnerID,
		Price:   b.TotalPrice,
	}
}

// Fluent builder methods
func (b *ReservationBuilder) WithResidenceID(id uuid.UUID) *ReservationBuilder {
	b.ResidenceID = id
	return b
}

func (b *ReservationBuilder) WithResidenceOwnerID(id uuid.UUID) *ReservationBuilder {
	b.ResidenceOwnerID = id
	return b
}

func (b *ReservationBuilder) WithUserID(id uuid.UUID) *ReservationBuilder {
	b.UserID = id
	return b
}

func (b *ReservationBuilder) WithStatus(status string) *ReservationBuilder {
	b.Status = status
	return b
}

func (b *ReservationBuilder) WithTotalPrice(price int64) *ReservationBuilder {
	b.TotalPrice = price
	return b
}

func (b *ReservationBuilder) AsOrphan() *ReservationBuilder {
	b.ResidenceOwnerID = uuid.Nil
	return b
}
