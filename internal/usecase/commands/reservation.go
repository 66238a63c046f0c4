package commands

import (
	"context"

	"staybook/internal/domain/authz"
	"staybook/internal/domain/reservation"
	"staybook/internal/infra"
	"staybook/internal/pkg/errs"
	"staybook/internal/usecase/queries"

	"github.com/google/uuid"
)

type CreateReservationCommand struct {
	ResidenceID uuid.UUID
}

type ReservationCommands interface {
	Create(ctx context.Context, actor authz.Actor, cmd CreateReservationCommand) (*queries.ReservationView, error)
	Transition(ctx context.Context, actor authz.Actor, id uuid.UUID, target string) (*queries.ReservationView, error)
	Delete(ctx context.Context, actor authz.Actor, id uuid.UUID) error
}

type reservationCommandsImpl struct {
	repo      ReservationRepository
	readStore queries.ReservationReadStore
}

func NewReservationCommands(repo ReservationRepository, readStore queries.ReservationReadStore) ReservationCommands {
	return &reservationCommandsImpl{
		repo:      repo,
		readStore: readStore,
	}
}

// Create books the residence for the acting client. The residence must exist;
// the total price is fixed from the residence's current price and the status
// always starts at pending, whatever the client sent on the wire. Overlapping
// reservations on the same residence are intentionally not prevented.
func (c *reservationCommandsImpl) Create(ctx context.Context, actor authz.Actor, cmd CreateReservationCommand) (*queries.ReservationView, error) {
	if !authz.CanActOnReservation(actor, authz.ActionCreateReservation, authz.ReservationRelation{BookerID: actor.ID}) {
		return nil, errs.ErrForbidden
	}

	snap, err := c.repo.FindResidenceSnapshot(ctx, cmd.ResidenceID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrResidenceNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	entity, err := reservation.NewReservation(snap.ID, actor.ID, snap.Price)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidInput)
	}

	id, err := c.repo.Create(ctx, entity)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return c.resolveView(ctx, id)
}

// Transition moves the reservation to the target status. Only the owner of
// the referenced residence may transition; the check fails closed when the
// residence cannot be resolved. The target must be a member of the status
// enum; anything else is invalid input, never silently coerced.
func (c *reservationCommandsImpl) Transition(ctx context.Context, actor authz.Actor, id uuid.UUID, target string) (*queries.ReservationView, error) {
	snap, err := c.repo.FindSnapshot(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrReservationNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if snap.ResidenceOwnerID == nil {
		return nil, errs.ErrResidenceNotFound
	}

	rel := authz.ReservationRelation{
		BookerID:         snap.UserID,
		ResidenceOwnerID: snap.ResidenceOwnerID,
	}
	if !authz.CanActOnReservation(actor, authz.ActionTransitionReservation, rel) {
		return nil, errs.ErrForbidden
	}

	status, err := reservation.NewStatus(target)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidStatus)
	}

	if err := c.repo.UpdateStatus(ctx, id, status); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrReservationNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return c.resolveView(ctx, id)
}

// Delete hard-deletes the reservation. The residence owner and the original
// booker hold equal deletion rights; a booker may remove an orphaned
// reservation whose residence is already gone.
func (c *reservationCommandsImpl) Delete(ctx context.Context, actor authz.Actor, id uuid.UUID) error {
	snap, err := c.repo.FindSnapshot(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.ErrReservationNotFound
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	rel := authz.ReservationRelation{
		BookerID:         snap.UserID,
		ResidenceOwnerID: snap.ResidenceOwnerID,
	}
	if !authz.CanActOnReservation(actor, authz.ActionDeleteReservation, rel) {
		return errs.ErrForbidden
	}

	if err := c.repo.Delete(ctx, id); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

// Read-after-write: return the populated view so callers render the same
// shape a subsequent get would.
func (c *reservationCommandsImpl) resolveView(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	view, err := c.readStore.FindByID(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}
