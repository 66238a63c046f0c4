package reservation

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus = errors.New("invalid reservation status")
	ErrNegativePrice = errors.New("total price cannot be negative")
)

type Reservation struct {
	id          uuid.UUID
	residenceID uuid.UUID
	userID      uuid.UUID
	status      Status
	totalPrice  int64
	createdAt   time.Time
	updatedAt   time.Time
}

// NewReservation books a residence for a user. The initial status is always
// pending; a client-supplied status never reaches this constructor. Total
// price is fixed here and not mutated by later transitions.
func NewReservation(residenceID, userID uuid.UUID, totalPrice int64) (*Reservation, error) {
	if totalPrice < 0 {
		return nil, ErrNegativePrice
	}

	return &Reservation{
		id:          uuid.New(),
		residenceID: residenceID,
		userID:      userID,
		status:      StatusPending,
		totalPrice:  totalPrice,
	}, nil
}

func ReconstructReservation(
	id, residenceID, userID uuid.UUID,
	status Status,
	totalPrice int64,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:          id,
		residenceID: residenceID,
		userID:      userID,
		status:      status,
		totalPrice:  totalPrice,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// TransitionTo moves the reservation to the target status. Any member of the
// status enum is a legal target; anything else is rejected as invalid input.
func (r *Reservation) TransitionTo(target Status) error {
	if !target.IsValid() {
		return ErrInvalidStatus
	}
	r.status = target
	return nil
}

func (r *Reservation) IsPending() bool   { return r.status == StatusPending }
func (r *Reservation) IsConfirmed() bool { return r.status == StatusConfirmed }
func (r *Reservation) IsCancelled() bool { return r.status == StatusCancelled }

func (r *Reservation) ID() uuid.UUID          { return r.id }
func (r *Reservation) ResidenceID() uuid.UUID { return r.residenceID }
func (r *Reservation) UserID() uuid.UUID      { return r.userID }
func (r *Reservation) Status() Status         { return r.status }
func (r *Reservation) TotalPrice() int64      { return r.totalPrice }
func (r *Reservation) CreatedAt() time.Time   { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time   { return r.updatedAt }
