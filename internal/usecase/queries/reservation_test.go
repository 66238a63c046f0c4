//go:build unit

package queries_test

import (
	"context"
	"testing"

	"staybook/internal/domain/authz"
	"staybook/internal/domain/user"
	"staybook/internal/infra"
	"staybook/internal/pkg/errs"
	"staybook/internal/usecase/queries"
	"staybook/tests/common/builder"
	queriesmock "staybook/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newReservationQueries(t *testing.T) (queries.ReservationQueries, *queriesmock.MockReservationReadStore) {
	t.Helper()
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockReservationReadStore(ctrl)
	return queries.NewReservationQueries(store), store
}

func TestReservationQueries_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("success: booker reads their reservation", func(t *testing.T) {
		q, store := newReservationQueries(t)
		booker := authz.Actor{ID: uuid.New(), Role: user.RoleClient}
		view := builder.NewReservationBuilder().WithUserID(booker.ID).BuildViewQuery()

		store.EXPECT().FindByID(ctx, view.ID).Return(view, nil)

		actual, err := q.GetByID(ctx, booker, view.ID)

		require.NoError(t, err)
		assert.Equal(t, view, actual)
	})

	t.Run("success: residence owner reads a booking on their listing", func(t *testing.T) {
		q, store := newReservationQueries(t)
		owner := authz.Actor{ID: uuid.New(), Role: user.RoleOwner}
		view := builder.NewReservationBuilder().WithResidenceOwnerID(owner.ID).BuildViewQuery()

		store.EXPECT().FindByID(ctx, view.ID).Return(view, nil)

		_, err := q.GetByID(ctx, owner, view.ID)
		require.NoError(t, err)
	})

	t.Run("error: stranger is rejected", func(t *testing.T) {
		q, store := newReservationQueries(t)
		view := builder.NewReservationBuilder().BuildViewQuery()

		store.EXPECT().FindByID(ctx, view.ID).Return(view, nil)

		stranger := authz.Actor{ID: uuid.New(), Role: user.RoleClient}
		_, err := q.GetByID(ctx, stranger, view.ID)
		require.ErrorIs(t, err, errs.ErrForbidden)
	})

	t.Run("error: orphaned reservation surfaces missing residence for everyone", func(t *testing.T) {
		q, store := newReservationQueries(t)
		booker := authz.Actor{ID: uuid.New(), Role: user.RoleClient}
		view := builder.NewReservationBuilder().WithUserID(booker.ID).AsOrphan().BuildViewQuery()

		store.EXPECT().FindByID(ctx, view.ID).Return(view, nil)

		_, err := q.GetByID(ctx, booker, view.ID)
		require.ErrorIs(t, err, errs.ErrResidenceNotFound)
	})

	t.Run("error: reservation not found", func(t *testing.T) {
		q, store := newReservationQueries(t)
		id := uuid.New()

		store.EXPECT().FindByID(ctx, id).
			Return(nil, infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound))

		_, err := q.GetByID(ctx, authz.Actor{ID: uuid.New(), Role: user.RoleClient}, id)
		require.ErrorIs(t, err, errs.ErrReservationNotFound)
	})
}

func TestReservationQueries_Lists(t *testing.T) {
	ctx := context.Background()

	t.Run("owner list is scoped to the actor", func(t *testing.T) {
		q, store := newReservationQueries(t)
		owner := authz.Actor{ID: uuid.New(), Role: user.RoleOwner}
		items := []*queries.ReservationListItem{
			builder.NewReservationBuilder().BuildListItem(),
			builder.NewReservationBuilder().WithStatus("confirmed").BuildListItem(),
		}

		store.EXPECT().FindByOwnerID(ctx, owner.ID).Return(items, nil)

		actual, err := q.ListForOwner(ctx, owner)

		require.NoError(t, err)
		assert.Len(t, actual, 2)
	})

	t.Run("client list is scoped to the actor", func(t *testing.T) {
		q, store := newReservationQueries(t)
		client := authz.Actor{ID: uuid.New(), Role: user.RoleClient}
		items := []*queries.ReservationListItem{
			builder.NewReservationBuilder().WithUserID(client.ID).BuildListItem(),
		}

		store.EXPECT().FindByUserID(ctx, client.ID).Return(items, nil)

		actual, err := q.ListForClient(ctx, client)

		require.NoError(t, err)
		assert.Len(t, actual, 1)
	})
}

func TestReservationQueries_StatsForOwner(t *testing.T) {
	ctx := context.Background()

	t.Run("success: aggregates are returned as-is", func(t *testing.T) {
		q, store := newReservationQueries(t)
		owner := authz.Actor{ID: uuid.New(), Role: user.RoleOwner}
		stats := &queries.OwnerStats{Total: 3, Confirmed: 2, Pending: 1, TotalRevenue: 16000}

		store.EXPECT().AggregateByOwnerID(ctx, owner.ID).Return(stats, nil)

		actual, err := q.StatsForOwner(ctx, owner)

		require.NoError(t, err)
		assert.Equal(t, stats, actual)
	})

	t.Run("success: actor with no residences gets zeros", func(t *testing.T) {
		q, store := newReservationQueries(t)
		client := authz.Actor{ID: uuid.New(), Role: user.RoleClient}

		store.EXPECT().AggregateByOwnerID(ctx, client.ID).Return(&queries.OwnerStats{}, nil)

		actual, err := q.StatsForOwner(ctx, client)

		require.NoError(t, err)
		assert.Equal(t, int64(0), actual.Total)
		assert.Equal(t, int64(0), actual.TotalRevenue)
	})

	t.Run("error: anonymous actor is rejected", func(t *testing.T) {
		q, _ := newReservationQueries(t)

		_, err := q.StatsForOwner(ctx, authz.Actor{})
		require.ErrorIs(t, err, errs.ErrForbidden)
	})
}
