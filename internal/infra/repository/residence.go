package repository

import (
	"context"

	"staybook/internal/domain/residence"
	"staybook/internal/infra"
	"staybook/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ResidenceRepository struct {
	pool *pgxpool.Pool
}

func NewResidenceRepository(pool *pgxpool.Pool) *ResidenceRepository {
	return &ResidenceRepository{pool: pool}
}

const insertResidenceSQL = `
INSERT INTO residences (id, owner_id, title, description, type, price, location, address, reference, amenities, status, rating, reviews_count)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
RETURNING id`

const insertMediaSQL = `
INSERT INTO residence_media (residence_id, url, kind, position)
VALUES ($1, $2, $3, $4)`

// Create inserts the residence and its ordered media list in one transaction.
// A duplicate reference code trips the partial unique index and surfaces as
// KindDuplicateKey.
func (r *ResidenceRepository) Create(ctx context.Context, res *residence.Residence) (uuid.UUID, error) {
	var id uuid.UUID
	err := pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		if err := tx.QueryRow(ctx, insertResidenceSQL,
			res.ID(), res.OwnerID(),
			res.Title(), res.Description(), res.Kind().String(),
			res.Price().Value(), res.Location(), res.Address(),
			referenceToPgtype(res.Reference()),
			res.Amenities(), res.Status().String(),
			res.Rating(), res.ReviewsCount(),
		).Scan(&id); err != nil {
			return err
		}
		return insertMedia(ctx, tx, res.ID(), res.Media())
	})
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create residence", err)
	}
	return id, nil
}

const updateResidenceSQL = `
UPDATE residences
SET title = $2, description = $3, type = $4, price = $5, location = $6,
    address = $7, reference = $8, amenities = $9, status = $10, updated_at = now()
WHERE id = $1`

// Update rewrites the scalar fields and replaces the media rows with the
// already-merged list, preserving its order via position.
func (r *ResidenceRepository) Update(ctx context.Context, res *residence.Residence) error {
	err := pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, updateResidenceSQL,
			res.ID(),
			res.Title(), res.Description(), res.Kind().String(),
			res.Price().Value(), res.Location(), res.Address(),
			referenceToPgtype(res.Reference()),
			res.Amenities(), res.Status().String(),
		)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return pgx.ErrNoRows
		}
		if _, err := tx.Exec(ctx, `DELETE FROM residence_media WHERE residence_id = $1`, res.ID()); err != nil {
			return err
		}
		return insertMedia(ctx, tx, res.ID(), res.Media())
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return infra.WrapRepoErr("residence not found", err, infra.KindNotFound)
		}
		return infra.WrapRepoErr("failed to update residence", err)
	}
	return nil
}

func (r *ResidenceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM residences WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete residence", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("residence not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

const selectResidenceSQL = `
SELECT id, owner_id, title, description, type, price, location, address, reference,
       amenities, status, rating, reviews_count, created_at, updated_at
FROM residences
WHERE id = $1`

func (r *ResidenceRepository) FindByID(ctx context.Context, id uuid.UUID) (*residence.Residence, error) {
	var (
		rowID, ownerID                     uuid.UUID
		title, description, kind, location string
		address                            string
		price                              int64
		reference                          pgtype.Text
		amenities                          []string
		status                             string
		rating                             float64
		reviews                            int32
		createdAt, updatedAt               pgtype.Timestamptz
	)
	err := r.pool.QueryRow(ctx, selectResidenceSQL, id).Scan(
		&rowID, &ownerID, &title, &description, &kind, &price, &location, &address,
		&reference, &amenities, &status, &rating, &reviews, &createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("residence not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find residence by ID", err)
	}

	media, err := r.findMedia(ctx, rowID)
	if err != nil {
		return nil, err
	}

	priceVO, err := residence.NewPrice(price)
	if err != nil {
		return nil, infra.WrapRepoErr("stored residence price out of range", err)
	}

	ref := residence.Reference{}
	if reference.Valid {
		ref = residence.NewReference(reference.String)
	}

	return residence.ReconstructResidence(
		rowID, ownerID,
		title, description,
		residence.Type(kind),
		priceVO,
		location, address,
		ref,
		media, amenities,
		residence.Status(status),
		rating, int(reviews),
		pgconv.TimeFromPgtype(createdAt), pgconv.TimeFromPgtype(updatedAt),
	), nil
}

func (r *ResidenceRepository) ReferenceExists(ctx context.Context, reference string, excludeID uuid.UUID) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM residences WHERE reference = $1 AND id <> $2)`,
		reference, excludeID,
	).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check reference", err)
	}
	return exists, nil
}

func (r *ResidenceRepository) findMedia(ctx context.Context, residenceID uuid.UUID) ([]residence.Media, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT url, kind FROM residence_media WHERE residence_id = $1 ORDER BY position`,
		residenceID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load residence media", err)
	}
	defer rows.Close()

	var media []residence.Media
	for rows.Next() {
		var m residence.Media
		var kind string
		if err := rows.Scan(&m.URL, &kind); err != nil {
			return nil, infra.WrapRepoErr("failed to scan residence media", err)
		}
		m.Kind = residence.MediaKind(kind)
		media = append(media, m)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate residence media", err)
	}
	return media, nil
}

func insertMedia(ctx context.Context, tx pgx.Tx, residenceID uuid.UUID, media []residence.Media) error {
	for i, m := range media {
		if _, err := tx.Exec(ctx, insertMediaSQL, residenceID, m.URL, string(m.Kind), i); err != nil {
			return err
		}
	}
	return nil
}

func referenceToPgtype(ref residence.Reference) pgtype.Text {
	if ref.IsEmpty() {
		return pgtype.Text{Valid: false}
	}
	return pgconv.StringToPgtype(ref.Value())
}
