package commands

import (
	"context"

	"staybook/internal/domain/reservation"
	"staybook/internal/domain/residence"

	"github.com/google/uuid"
)

// Write-side snapshots keep the command layer independent of the read-side
// view types.

// ResidenceSnapshot carries the facts a reservation command needs from the
// referenced residence.
type ResidenceSnapshot struct {
	ID      uuid.UUID
	OwnerID uuid.UUID
	Price   int64
}

// ReservationSnapshot resolves the residence owner for authorization.
// ResidenceOwnerID is nil when the residence row no longer exists.
type ReservationSnapshot struct {
	ID               uuid.UUID
	ResidenceID      uuid.UUID
	UserID           uuid.UUID
	Status           reservation.Status
	ResidenceOwnerID *uuid.UUID
}

type ResidenceRepository interface {
	Create(ctx context.Context, res *residence.Residence) (uuid.UUID, error)
	Update(ctx context.Context, res *residence.Residence) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*residence.Residence, error)
	ReferenceExists(ctx context.Context, reference string, excludeID uuid.UUID) (bool, error)
}

type ReservationRepository interface {
	Create(ctx context.Context, res *reservation.Reservation) (uuid.UUID, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status reservation.Status) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindSnapshot(ctx context.Context, id uuid.UUID) (*ReservationSnapshot, error)
	FindResidenceSnapshot(ctx context.Context, residenceID uuid.UUID) (*ResidenceSnapshot, error)
}

// MediaStore removes stored residence media files. Removal is best-effort:
// a failed removal is logged by the caller and never aborts the deletion.
type MediaStore interface {
	Remove(ctx context.Context, url string) error
}
