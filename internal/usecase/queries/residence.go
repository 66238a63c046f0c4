package queries

import (
	"context"

	"staybook/internal/infra"
	"staybook/internal/pkg/errs"

	"github.com/google/uuid"
)

type ResidenceReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ResidenceView, error)
	FindFiltered(ctx context.Context, filters ResidenceFilters) ([]*ResidenceView, error)
	FindByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*ResidenceView, error)
}

type ResidenceQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ResidenceView, error)
	List(ctx context.Context, filters ResidenceFilters) ([]*ResidenceView, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*ResidenceView, error)
}

type residenceQueriesImpl struct {
	store ResidenceReadStore
}

func NewResidenceQueries(store ResidenceReadStore) ResidenceQueries {
	return &residenceQueriesImpl{store: store}
}

func (q *residenceQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ResidenceView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrResidenceNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *residenceQueriesImpl) List(ctx context.Context, filters ResidenceFilters) ([]*ResidenceView, error) {
	return q.store.FindFiltered(ctx, filters)
}

func (q *residenceQueriesImpl) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*ResidenceView, error) {
	return q.store.FindByOwnerID(ctx, ownerID)
}
