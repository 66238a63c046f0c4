package commands

import (
	"context"
	"log/slog"

	"staybook/internal/domain/authz"
	"staybook/internal/domain/residence"
	"staybook/internal/infra"
	"staybook/internal/pkg/errs"

	"github.com/google/uuid"
)

type CreateResidenceCommand struct {
	Title       string
	Description string
	Type        string
	Price       int64
	Location    string
	Address     string
	Reference   string
	Media       []residence.Media
	Amenities   []string
}

// UpdateResidenceCommand patches a residence. Nil scalar fields keep their
// current value. MediaToDelete removes existing entries by URL before
// MediaToAdd is appended; Amenities, when non-nil, replaces the set wholesale.
type UpdateResidenceCommand struct {
	Title         *string
	Description   *string
	Type          *string
	Price         *int64
	Location      *string
	Address       *string
	Reference     *string
	MediaToDelete []string
	MediaToAdd    []residence.Media
	Amenities     []string
}

type ResidenceCommands interface {
	Create(ctx context.Context, actor authz.Actor, cmd CreateResidenceCommand) (uuid.UUID, error)
	Update(ctx context.Context, actor authz.Actor, id uuid.UUID, cmd UpdateResidenceCommand) error
	Delete(ctx context.Context, actor authz.Actor, id uuid.UUID) error
}

type residenceCommandsImpl struct {
	repo  ResidenceRepository
	media MediaStore
}

func NewResidenceCommands(repo ResidenceRepository, media MediaStore) ResidenceCommands {
	return &residenceCommandsImpl{
		repo:  repo,
		media: media,
	}
}

// Create validates the whole payload before any write. The reference
// pre-check gives a friendly error on the common path; the database unique
// index remains the actual enforcement under concurrent inserts.
func (c *residenceCommandsImpl) Create(ctx context.Context, actor authz.Actor, cmd CreateResidenceCommand) (uuid.UUID, error) {
	if !authz.CanActOnResidence(actor, authz.ActionCreateResidence, authz.ResidenceRelation{}) {
		return uuid.Nil, errs.ErrForbidden
	}

	entity, err := residence.NewResidence(
		actor.ID,
		cmd.Title, cmd.Description,
		residence.Type(cmd.Type),
		cmd.Price,
		cmd.Location, cmd.Address,
		cmd.Reference,
		cmd.Media,
		cmd.Amenities,
	)
	if err != nil {
		return uuid.Nil, err
	}

	if !entity.Reference().IsEmpty() {
		exists, err := c.repo.ReferenceExists(ctx, entity.Reference().Value(), uuid.Nil)
		if err != nil {
			return uuid.Nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if exists {
			return uuid.Nil, errs.ErrDuplicateReference
		}
	}

	id, err := c.repo.Create(ctx, entity)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return uuid.Nil, errs.ErrDuplicateReference
		}
		return uuid.Nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return id, nil
}

func (c *residenceCommandsImpl) Update(ctx context.Context, actor authz.Actor, id uuid.UUID, cmd UpdateResidenceCommand) error {
	current, err := c.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.ErrResidenceNotFound
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if !authz.CanActOnResidence(actor, authz.ActionUpdateResidence, authz.ResidenceRelation{OwnerID: current.OwnerID()}) {
		return errs.ErrForbidden
	}

	patched, err := applyResidencePatch(current, cmd)
	if err != nil {
		return err
	}

	if !patched.Reference().IsEmpty() && patched.Reference().Value() != current.Reference().Value() {
		exists, err := c.repo.ReferenceExists(ctx, patched.Reference().Value(), id)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if exists {
			return errs.ErrDuplicateReference
		}
	}

	if err := c.repo.Update(ctx, patched); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return errs.ErrDuplicateReference
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

// Delete removes the residence row, then removes its stored media files.
// File removal is best-effort: a failure is logged and never aborts the
// deletion. Reservations referencing the residence are left in place;
// subsequent reads on them surface the missing residence.
func (c *residenceCommandsImpl) Delete(ctx context.Context, actor authz.Actor, id uuid.UUID) error {
	current, err := c.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.ErrResidenceNotFound
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if !authz.CanActOnResidence(actor, authz.ActionDeleteResidence, authz.ResidenceRelation{OwnerID: current.OwnerID()}) {
		return errs.ErrForbidden
	}

	if err := c.repo.Delete(ctx, id); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	for _, m := range current.Media() {
		if err := c.media.Remove(ctx, m.URL); err != nil {
			slog.Warn("failed to remove residence media file",
				"residence_id", id.String(),
				"url", m.URL,
				"error", err.Error())
		}
	}
	return nil
}

// applyResidencePatch folds the patch into a fresh entity so the full field
// validation runs again over the merged state. Owner is immutable and always
// carried over from the current record.
func applyResidencePatch(current *residence.Residence, cmd UpdateResidenceCommand) (*residence.Residence, error) {
	title := current.Title()
	if cmd.Title != nil {
		title = *cmd.Title
	}
	description := current.Description()
	if cmd.Description != nil {
		description = *cmd.Description
	}
	kind := current.Kind()
	if cmd.Type != nil {
		kind = residence.Type(*cmd.Type)
	}
	price := current.Price().Value()
	if cmd.Price != nil {
		price = *cmd.Price
	}
	location := current.Location()
	if cmd.Location != nil {
		location = *cmd.Location
	}
	address := current.Address()
	if cmd.Address != nil {
		address = *cmd.Address
	}
	reference := current.Reference().Value()
	if cmd.Reference != nil {
		reference = *cmd.Reference
	}

	patched, err := residence.NewResidence(
		current.OwnerID(),
		title, description,
		kind,
		price,
		location, address,
		reference,
		current.Media(),
		current.Amenities(),
	)
	if err != nil {
		return nil, err
	}

	merged := residence.ReconstructResidence(
		current.ID(), current.OwnerID(),
		patched.Title(), patched.Description(),
		patched.Kind(), patched.Price(),
		patched.Location(), patched.Address(),
		patched.Reference(),
		current.Media(), current.Amenities(),
		current.Status(),
		current.Rating(), current.ReviewsCount(),
		current.CreatedAt(), current.UpdatedAt(),
	)

	merged.ApplyMediaUpdate(cmd.MediaToDelete, cmd.MediaToAdd)
	if cmd.Amenities != nil {
		merged.ReplaceAmenities(cmd.Amenities)
	}
	return merged, nil
}
