//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"staybook/internal/domain/authz"
	"staybook/internal/domain/reservation"
	"staybook/internal/domain/user"
	"staybook/internal/infra"
	"staybook/internal/pkg/errs"
	"staybook/internal/usecase/commands"
	"staybook/tests/common/builder"
	commandsmock "staybook/tests/mock/commands"
	queriesmock "staybook/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newReservationCommands(t *testing.T) (commands.ReservationCommands, *commandsmock.MockReservationRepository, *queriesmock.MockReservationReadStore) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := commandsmock.NewMockReservationRepository(ctrl)
	readStore := queriesmock.NewMockReservationReadStore(ctrl)
	return commands.NewReservationCommands(repo, readStore), repo, readStore
}

func clientActor() authz.Actor {
	return authz.Actor{ID: uuid.New(), Role: user.RoleClient}
}

func TestReservationCommands_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success: price is fixed from the residence, status starts pending", func(t *testing.T) {
		uc, repo, readStore := newReservationCommands(t)
		actor := clientActor()
		b := builder.NewReservationBuilder().WithUserID(actor.ID).WithTotalPrice(8000)
		snap := b.BuildResidenceSnapshot()
		view := b.BuildViewQuery()

		repo.EXPECT().FindResidenceSnapshot(ctx, b.ResidenceID).Return(snap, nil)
		repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, r *reservation.Reservation) (uuid.UUID, error) {
				assert.Equal(t, snap.ID, r.ResidenceID())
				assert.Equal(t, actor.ID, r.UserID())
				assert.Equal(t, int64(8000), r.TotalPrice())
				assert.True(t, r.IsPending())
				return view.ID, nil
			})
		readStore.EXPECT().FindByID(ctx, view.ID).Return(view, nil)

		actual, err := uc.Create(ctx, actor, commands.CreateReservationCommand{ResidenceID: b.ResidenceID})

		require.NoError(t, err)
		assert.Equal(t, view, actual)
	})

	t.Run("error: residence does not exist", func(t *testing.T) {
		uc, repo, _ := newReservationCommands(t)
		residenceID := uuid.New()

		repo.EXPECT().FindResidenceSnapshot(ctx, residenceID).
			Return(nil, infra.WrapRepoErr("residence not found", nil, infra.KindNotFound))

		_, err := uc.Create(ctx, clientActor(), commands.CreateReservationCommand{ResidenceID: residenceID})
		require.ErrorIs(t, err, errs.ErrResidenceNotFound)
	})

	t.Run("error: forbidden for unknown role", func(t *testing.T) {
		uc, _, _ := newReservationCommands(t)
		actor := authz.Actor{ID: uuid.New(), Role: user.Role("ghost")}

		_, err := uc.Create(ctx, actor, commands.CreateReservationCommand{ResidenceID: uuid.New()})
		require.ErrorIs(t, err, errs.ErrForbidden)
	})

	t.Run("error: insert failure", func(t *testing.T) {
		uc, repo, _ := newReservationCommands(t)
		b := builder.NewReservationBuilder()

		repo.EXPECT().FindResidenceSnapshot(ctx, b.ResidenceID).Return(b.BuildResidenceSnapshot(), nil)
		repo.EXPECT().Create(ctx, gomock.Any()).
			Return(uuid.Nil, infra.WrapRepoErr("insert reservation", errors.New("connection reset")))

		_, err := uc.Create(ctx, clientActor(), commands.CreateReservationCommand{ResidenceID: b.ResidenceID})
		require.ErrorIs(t, err, errs.ErrDatabaseOperationFailed)
	})
}

func TestReservationCommands_Transition(t *testing.T) {
	ctx := context.Background()

	t.Run("success: residence owner confirms", func(t *testing.T) {
		uc, repo, readStore := newReservationCommands(t)
		owner := authz.Actor{ID: uuid.New(), Role: user.RoleOwner}
		b := builder.NewReservationBuilder().WithResidenceOwnerID(owner.ID)
		snap := b.BuildSnapshot()
		view := b.WithStatus("confirmed").BuildViewQuery()
		view.ID = snap.ID

		repo.EXPECT().FindSnapshot(ctx, snap.ID).Return(snap, nil)
		repo.EXPECT().UpdateStatus(ctx, snap.ID, reservation.StatusConfirmed).Return(nil)
		readStore.EXPECT().FindByID(ctx, snap.ID).Return(view, nil)

		actual, err := uc.Transition(ctx, owner, snap.ID, "confirmed")

		require.NoError(t, err)
		assert.Equal(t, "confirmed", actual.Status)
	})

	t.Run("error: booker cannot transition their own booking", func(t *testing.T) {
		uc, repo, _ := newReservationCommands(t)
		booker := clientActor()
		snap := builder.NewReservationBuilder().WithUserID(booker.ID).BuildSnapshot()

		repo.EXPECT().FindSnapshot(ctx, snap.ID).Return(snap, nil)

		_, err := uc.Transition(ctx, booker, snap.ID, "confirmed")
		require.ErrorIs(t, err, errs.ErrForbidden)
	})

	t.Run("error: orphaned reservation cannot be transitioned", func(t *testing.T) {
		uc, repo, _ := newReservationCommands(t)
		owner := authz.Actor{ID: uuid.New(), Role: user.RoleOwner}
		snap := builder.NewReservationBuilder().AsOrphan().BuildSnapshot()

		repo.EXPECT().FindSnapshot(ctx, snap.ID).Return(snap, nil)

		_, err := uc.Transition(ctx, owner, snap.ID, "confirmed")
		require.ErrorIs(t, err, errs.ErrResidenceNotFound)
	})

	t.Run("error: unknown target status", func(t *testing.T) {
		uc, repo, _ := newReservationCommands(t)
		owner := authz.Actor{ID: uuid.New(), Role: user.RoleOwner}
		snap := builder.NewReservationBuilder().WithResidenceOwnerID(owner.ID).BuildSnapshot()

		repo.EXPECT().FindSnapshot(ctx, snap.ID).Return(snap, nil)

		_, err := uc.Transition(ctx, owner, snap.ID, "archived")
		require.ErrorIs(t, err, errs.ErrInvalidStatus)
	})

	t.Run("error: reservation not found", func(t *testing.T) {
		uc, repo, _ := newReservationCommands(t)
		id := uuid.New()

		repo.EXPECT().FindSnapshot(ctx, id).
			Return(nil, infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound))

		_, err := uc.Transition(ctx, clientActor(), id, "confirmed")
		require.ErrorIs(t, err, errs.ErrReservationNotFound)
	})
}

func TestReservationCommands_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("success: booker deletes their own booking", func(t *testing.T) {
		uc, repo, _ := newReservationCommands(t)
		booker := clientActor()
		snap := builder.NewReservationBuilder().WithUserID(booker.ID).BuildSnapshot()

		repo.EXPECT().FindSnapshot(ctx, snap.ID).Return(snap, nil)
		repo.EXPECT().Delete(ctx, snap.ID).Return(nil)

		require.NoError(t, uc.Delete(ctx, booker, snap.ID))
	})

	t.Run("success: residence owner deletes a booking on their listing", func(t *testing.T) {
		uc, repo, _ := newReservationCommands(t)
		owner := authz.Actor{ID: uuid.New(), Role: user.RoleOwner}
		snap := builder.NewReservationBuilder().WithResidenceOwnerID(owner.ID).BuildSnapshot()

		repo.EXPECT().FindSnapshot(ctx, snap.ID).Return(snap, nil)
		repo.EXPECT().Delete(ctx, snap.ID).Return(nil)

		require.NoError(t, uc.Delete(ctx, owner, snap.ID))
	})

	t.Run("success: booker can delete an orphaned booking", func(t *testing.T) {
		uc, repo, _ := newReservationCommands(t)
		booker := clientActor()
		snap := builder.NewReservationBuilder().WithUserID(booker.ID).AsOrphan().BuildSnapshot()

		repo.EXPECT().FindSnapshot(ctx, snap.ID).Return(snap, nil)
		repo.EXPECT().Delete(ctx, snap.ID).Return(nil)

		require.NoError(t, uc.Delete(ctx, booker, snap.ID))
	})

	t.Run("error: stranger cannot delete", func(t *testing.T) {
		uc, repo, _ := newReservationCommands(t)
		snap := builder.NewReservationBuilder().BuildSnapshot()

		repo.EXPECT().FindSnapshot(ctx, snap.ID).Return(snap, nil)

		require.ErrorIs(t, uc.Delete(ctx, clientActor(), snap.ID), errs.ErrForbidden)
	})

	t.Run("error: reservation not found", func(t *testing.T) {
		uc, repo, _ := newReservationCommands(t)
		id := uuid.New()

		repo.EXPECT().FindSnapshot(ctx, id).
			Return(nil, infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound))

		require.ErrorIs(t, uc.Delete(ctx, clientActor(), id), errs.ErrReservationNotFound)
	})
}
