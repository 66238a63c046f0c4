//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"staybook/internal/domain/authz"
	"staybook/internal/domain/residence"
	"staybook/internal/domain/user"
	"staybook/internal/infra"
	"staybook/internal/pkg/errs"
	"staybook/internal/usecase/commands"
	"staybook/tests/common/builder"
	commandsmock "staybook/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func ownerActor() authz.Actor {
	return authz.Actor{ID: uuid.New(), Role: user.RoleOwner}
}

func newResidenceCommands(t *testing.T) (commands.ResidenceCommands, *commandsmock.MockResidenceRepository, *commandsmock.MockMediaStore) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := commandsmock.NewMockResidenceRepository(ctrl)
	media := commandsmock.NewMockMediaStore(ctrl)
	return commands.NewResidenceCommands(repo, media), repo, media
}

func createCommand(b *builder.ResidenceBuilder) commands.CreateResidenceCommand {
	return commands.CreateResidenceCommand{
		Title:       b.Title,
		Description: b.Description,
		Type:        b.Type,
		Price:       b.Price,
		Location:    b.Location,
		Address:     b.Address,
		Reference:   b.Reference,
		Media:       b.Media,
		Amenities:   b.Amenities,
	}
}

func TestResidenceCommands_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success: creates and returns the new id", func(t *testing.T) {
		uc, repo, _ := newResidenceCommands(t)
		actor := ownerActor()
		newID := uuid.New()

		repo.EXPECT().Create(ctx, gomock.Any()).Return(newID, nil)

		id, err := uc.Create(ctx, actor, createCommand(builder.NewResidenceBuilder()))

		require.NoError(t, err)
		assert.Equal(t, newID, id)
	})

	t.Run("success: reference pre-check passes when unused", func(t *testing.T) {
		uc, repo, _ := newResidenceCommands(t)
		actor := ownerActor()
		cmd := createCommand(builder.NewResidenceBuilder().WithReference("LIS-001"))

		repo.EXPECT().ReferenceExists(ctx, "LIS-001", uuid.Nil).Return(false, nil)
		repo.EXPECT().Create(ctx, gomock.Any()).Return(uuid.New(), nil)

		_, err := uc.Create(ctx, actor, cmd)
		require.NoError(t, err)
	})

	t.Run("error: duplicate reference detected by pre-check", func(t *testing.T) {
		uc, repo, _ := newResidenceCommands(t)
		cmd := createCommand(builder.NewResidenceBuilder().WithReference("LIS-001"))

		repo.EXPECT().ReferenceExists(ctx, "LIS-001", uuid.Nil).Return(true, nil)

		id, err := uc.Create(ctx, ownerActor(), cmd)

		require.ErrorIs(t, err, errs.ErrDuplicateReference)
		assert.Equal(t, uuid.Nil, id)
	})

	t.Run("error: duplicate reference surfaced by unique index", func(t *testing.T) {
		uc, repo, _ := newResidenceCommands(t)
		cmd := createCommand(builder.NewResidenceBuilder().WithReference("LIS-001"))

		repo.EXPECT().ReferenceExists(ctx, "LIS-001", uuid.Nil).Return(false, nil)
		repo.EXPECT().Create(ctx, gomock.Any()).
			Return(uuid.Nil, infra.WrapRepoErr("insert residence", errors.New("dup"), infra.KindDuplicateKey))

		_, err := uc.Create(ctx, ownerActor(), cmd)
		require.ErrorIs(t, err, errs.ErrDuplicateReference)
	})

	t.Run("error: invalid payload never reaches the repository", func(t *testing.T) {
		uc, _, _ := newResidenceCommands(t)
		cmd := createCommand(builder.NewResidenceBuilder().WithPrice(1))

		_, err := uc.Create(ctx, ownerActor(), cmd)

		require.ErrorIs(t, err, errs.ErrInvalidInput)
		assert.Contains(t, errs.ViolationsOf(err), residence.ErrPriceOutOfRange.Error())
	})

	t.Run("error: forbidden for unknown role", func(t *testing.T) {
		uc, _, _ := newResidenceCommands(t)
		actor := authz.Actor{ID: uuid.New(), Role: user.Role("ghost")}

		_, err := uc.Create(ctx, actor, createCommand(builder.NewResidenceBuilder()))
		require.ErrorIs(t, err, errs.ErrForbidden)
	})

	t.Run("error: repository failure", func(t *testing.T) {
		uc, repo, _ := newResidenceCommands(t)

		repo.EXPECT().Create(ctx, gomock.Any()).
			Return(uuid.Nil, infra.WrapRepoErr("insert residence", errors.New("connection reset")))

		_, err := uc.Create(ctx, ownerActor(), createCommand(builder.NewResidenceBuilder()))
		require.ErrorIs(t, err, errs.ErrDatabaseOperationFailed)
	})
}

func TestResidenceCommands_Update(t *testing.T) {
	ctx := context.Background()

	existing := func(t *testing.T, ownerID uuid.UUID) *residence.Residence {
		t.Helper()
		r, err := builder.NewResidenceBuilder().WithOwnerID(ownerID).BuildDomain()
		require.NoError(t, err)
		return r
	}

	t.Run("success: owner patches title and price", func(t *testing.T) {
		uc, repo, _ := newResidenceCommands(t)
		actor := ownerActor()
		current := existing(t, actor.ID)

		title := "Harbor Loft"
		price := int64(7000)
		cmd := commands.UpdateResidenceCommand{Title: &title, Price: &price}

		repo.EXPECT().FindByID(ctx, current.ID()).Return(current, nil)
		repo.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, patched *residence.Residence) error {
				assert.Equal(t, "Harbor Loft", patched.Title())
				assert.Equal(t, int64(7000), patched.Price().Value())
				assert.Equal(t, current.OwnerID(), patched.OwnerID())
				return nil
			})

		require.NoError(t, uc.Update(ctx, actor, current.ID(), cmd))
	})

	t.Run("success: admin may patch someone else's residence", func(t *testing.T) {
		uc, repo, _ := newResidenceCommands(t)
		admin := authz.Actor{ID: uuid.New(), Role: user.RoleAdmin}
		current := existing(t, uuid.New())

		title := "Renamed"
		repo.EXPECT().FindByID(ctx, current.ID()).Return(current, nil)
		repo.EXPECT().Update(ctx, gomock.Any()).Return(nil)

		require.NoError(t, uc.Update(ctx, admin, current.ID(), commands.UpdateResidenceCommand{Title: &title}))
	})

	t.Run("success: media delete and add are applied together", func(t *testing.T) {
		uc, repo, _ := newResidenceCommands(t)
		actor := ownerActor()
		current := existing(t, actor.ID)

		cmd := commands.UpdateResidenceCommand{
			MediaToDelete: []string{"/uploads/seaside-1.jpg"},
			MediaToAdd:    []residence.Media{{URL: "/uploads/seaside-2.jpg", Kind: residence.MediaImage}},
		}

		repo.EXPECT().FindByID(ctx, current.ID()).Return(current, nil)
		repo.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, patched *residence.Residence) error {
				require.Len(t, patched.Media(), 1)
				assert.Equal(t, "/uploads/seaside-2.jpg", patched.Media()[0].URL)
				return nil
			})

		require.NoError(t, uc.Update(ctx, actor, current.ID(), cmd))
	})

	t.Run("success: amenities replace wholesale", func(t *testing.T) {
		uc, repo, _ := newResidenceCommands(t)
		actor := ownerActor()
		current := existing(t, actor.ID)

		cmd := commands.UpdateResidenceCommand{Amenities: []string{"parking"}}

		repo.EXPECT().FindByID(ctx, current.ID()).Return(current, nil)
		repo.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, patched *residence.Residence) error {
				assert.Equal(t, []string{"parking"}, patched.Amenities())
				return nil
			})

		require.NoError(t, uc.Update(ctx, actor, current.ID(), cmd))
	})

	t.Run("error: residence not found", func(t *testing.T) {
		uc, repo, _ := newResidenceCommands(t)
		id := uuid.New()

		repo.EXPECT().FindByID(ctx, id).
			Return(nil, infra.WrapRepoErr("residence not found", nil, infra.KindNotFound))

		err := uc.Update(ctx, ownerActor(), id, commands.UpdateResidenceCommand{})
		require.ErrorIs(t, err, errs.ErrResidenceNotFound)
	})

	t.Run("error: forbidden for a different owner", func(t *testing.T) {
		uc, repo, _ := newResidenceCommands(t)
		current := existing(t, uuid.New())

		repo.EXPECT().FindByID(ctx, current.ID()).Return(current, nil)

		err := uc.Update(ctx, ownerActor(), current.ID(), commands.UpdateResidenceCommand{})
		require.ErrorIs(t, err, errs.ErrForbidden)
	})

	t.Run("error: patched state fails validation", func(t *testing.T) {
		uc, repo, _ := newResidenceCommands(t)
		actor := ownerActor()
		current := existing(t, actor.ID)

		badPrice := int64(5)
		repo.EXPECT().FindByID(ctx, current.ID()).Return(current, nil)

		err := uc.Update(ctx, actor, current.ID(), commands.UpdateResidenceCommand{Price: &badPrice})
		require.ErrorIs(t, err, errs.ErrInvalidInput)
	})

	t.Run("error: changed reference collides", func(t *testing.T) {
		uc, repo, _ := newResidenceCommands(t)
		actor := ownerActor()
		current := existing(t, actor.ID)

		ref := "LIS-002"
		repo.EXPECT().FindByID(ctx, current.ID()).Return(current, nil)
		repo.EXPECT().ReferenceExists(ctx, "LIS-002", current.ID()).Return(true, nil)

		err := uc.Update(ctx, actor, current.ID(), commands.UpdateResidenceCommand{Reference: &ref})
		require.ErrorIs(t, err, errs.ErrDuplicateReference)
	})
}

func TestResidenceCommands_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("success: deletes the row and removes media files", func(t *testing.T) {
		uc, repo, media := newResidenceCommands(t)
		actor := ownerActor()
		current, err := builder.NewResidenceBuilder().WithOwnerID(actor.ID).BuildDomain()
		require.NoError(t, err)

		repo.EXPECT().FindByID(ctx, current.ID()).Return(current, nil)
		repo.EXPECT().Delete(ctx, current.ID()).Return(nil)
		media.EXPECT().Remove(ctx, "/uploads/seaside-1.jpg").Return(nil)

		require.NoError(t, uc.Delete(ctx, actor, current.ID()))
	})

	t.Run("success: media removal failure does not abort deletion", func(t *testing.T) {
		uc, repo, media := newResidenceCommands(t)
		actor := ownerActor()
		current, err := builder.NewResidenceBuilder().WithOwnerID(actor.ID).BuildDomain()
		require.NoError(t, err)

		repo.EXPECT().FindByID(ctx, current.ID()).Return(current, nil)
		repo.EXPECT().Delete(ctx, current.ID()).Return(nil)
		media.EXPECT().Remove(ctx, gomock.Any()).Return(errors.New("file locked"))

		require.NoError(t, uc.Delete(ctx, actor, current.ID()))
	})

	t.Run("error: residence not found", func(t *testing.T) {
		uc, repo, _ := newResidenceCommands(t)
		id := uuid.New()

		repo.EXPECT().FindByID(ctx, id).
			Return(nil, infra.WrapRepoErr("residence not found", nil, infra.KindNotFound))

		require.ErrorIs(t, uc.Delete(ctx, ownerActor(), id), errs.ErrResidenceNotFound)
	})

	t.Run("error: client cannot delete a residence they do not own", func(t *testing.T) {
		uc, repo, _ := newResidenceCommands(t)
		client := authz.Actor{ID: uuid.New(), Role: user.RoleClient}
		current, err := builder.NewResidenceBuilder().BuildDomain()
		require.NoError(t, err)

		repo.EXPECT().FindByID(ctx, current.ID()).Return(current, nil)

		require.ErrorIs(t, uc.Delete(ctx, client, current.ID()), errs.ErrForbidden)
	})

	t.Run("error: repository failure on delete", func(t *testing.T) {
		uc, repo, _ := newResidenceCommands(t)
		actor := ownerActor()
		current, err := builder.NewResidenceBuilder().WithOwnerID(actor.ID).BuildDomain()
		require.NoError(t, err)

		repo.EXPECT().FindByID(ctx, current.ID()).Return(current, nil)
		repo.EXPECT().Delete(ctx, current.ID()).
			Return(infra.WrapRepoErr("delete residence", errors.New("connection reset")))

		require.ErrorIs(t, uc.Delete(ctx, actor, current.ID()), errs.ErrDatabaseOperationFailed)
	})
}
