package queries

import (
	"context"

	"staybook/internal/domain/authz"
	"staybook/internal/infra"
	"staybook/internal/pkg/errs"

	"github.com/google/uuid"
)

type ReservationReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	FindByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*ReservationListItem, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*ReservationListItem, error)
	AggregateByOwnerID(ctx context.Context, ownerID uuid.UUID) (*OwnerStats, error)
}

type ReservationQueries interface {
	GetByID(ctx context.Context, actor authz.Actor, id uuid.UUID) (*ReservationView, error)
	ListForOwner(ctx context.Context, actor authz.Actor) ([]*ReservationListItem, error)
	ListForClient(ctx context.Context, actor authz.Actor) ([]*ReservationListItem, error)
	StatsForOwner(ctx context.Context, actor authz.Actor) (*OwnerStats, error)
}

type reservationQueriesImpl struct {
	store ReservationReadStore
}

func NewReservationQueries(store ReservationReadStore) ReservationQueries {
	return &reservationQueriesImpl{store: store}
}

// GetByID resolves the reservation with its residence populated, then applies
// the dual-access rule: the residence owner and the original booker have equal
// read rights; everyone else is rejected. An orphaned reservation (its
// residence was deleted) surfaces as a missing residence for everyone.
func (q *reservationQueriesImpl) GetByID(ctx context.Context, actor authz.Actor, id uuid.UUID) (*ReservationView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrReservationNotFound
		}
		return nil, err
	}

	if view.ResidenceOwnerID == nil {
		return nil, errs.ErrResidenceNotFound
	}

	rel := authz.ReservationRelation{
		BookerID:         view.UserID,
		ResidenceOwnerID: view.ResidenceOwnerID,
	}
	if !authz.CanActOnReservation(actor, authz.ActionViewReservation, rel) {
		return nil, errs.ErrForbidden
	}

	return view, nil
}

func (q *reservationQueriesImpl) ListForOwner(ctx context.Context, actor authz.Actor) ([]*ReservationListItem, error) {
	return q.store.FindByOwnerID(ctx, actor.ID)
}

func (q *reservationQueriesImpl) ListForClient(ctx context.Context, actor authz.Actor) ([]*ReservationListItem, error) {
	return q.store.FindByUserID(ctx, actor.ID)
}

// StatsForOwner aggregates at the store level; no reservation bodies are
// loaded. An actor with no residences gets an all-zero result, not an error.
func (q *reservationQueriesImpl) StatsForOwner(ctx context.Context, actor authz.Actor) (*OwnerStats, error) {
	if !authz.CanViewOwnerStats(actor) {
		return nil, errs.ErrForbidden
	}
	return q.store.AggregateByOwnerID(ctx, actor.ID)
}
