package readstore

import (
	"context"
	"fmt"
	"strings"

	"staybook/internal/infra"
	"staybook/internal/pkg/pgconv"
	"staybook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ResidenceReadStore struct {
	pool *pgxpool.Pool
}

func NewResidenceReadStore(pool *pgxpool.Pool) *ResidenceReadStore {
	return &ResidenceReadStore{pool: pool}
}

// Media is aggregated per row so a list query stays a single round trip.
const residenceViewColumns = `
r.id, r.owner_id, r.title, r.description, r.type, r.price, r.location, r.address,
r.reference, r.amenities, r.status, r.rating, r.reviews_count, r.created_at, r.updated_at,
COALESCE(
    (SELECT json_agg(json_build_object('url', m.url, 'kind', m.kind) ORDER BY m.position)
     FROM residence_media m WHERE m.residence_id = r.id),
    '[]'
) AS media`

func (s *ResidenceReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ResidenceView, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+residenceViewColumns+` FROM residences r WHERE r.id = $1`,
		id,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query residence", err)
	}
	views, err := scanResidenceViews(rows)
	if err != nil {
		return nil, err
	}
	if len(views) == 0 {
		return nil, infra.WrapRepoErr("residence not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return views[0], nil
}

// FindFiltered lists publicly visible residences, newest first. Location and
// title filters are case-insensitive substring matches.
func (s *ResidenceReadStore) FindFiltered(ctx context.Context, filters queries.ResidenceFilters) ([]*queries.ResidenceView, error) {
	var (
		conds []string
		args  []any
	)
	if filters.Location != nil {
		args = append(args, "%"+*filters.Location+"%")
		conds = append(conds, fmt.Sprintf("r.location ILIKE $%d", len(args)))
	}
	if filters.Title != nil {
		args = append(args, "%"+*filters.Title+"%")
		conds = append(conds, fmt.Sprintf("r.title ILIKE $%d", len(args)))
	}
	if filters.MaxPrice != nil {
		args = append(args, *filters.MaxPrice)
		conds = append(conds, fmt.Sprintf("r.price <= $%d", len(args)))
	}

	query := `SELECT ` + residenceViewColumns + ` FROM residences r`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY r.created_at DESC"

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list residences", err)
	}
	return scanResidenceViews(rows)
}

func (s *ResidenceReadStore) FindByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*queries.ResidenceView, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+residenceViewColumns+` FROM residences r WHERE r.owner_id = $1 ORDER BY r.created_at DESC`,
		ownerID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list residences by owner", err)
	}
	return scanResidenceViews(rows)
}

func scanResidenceViews(rows pgx.Rows) ([]*queries.ResidenceView, error) {
	defer rows.Close()

	views := make([]*queries.ResidenceView, 0)
	for rows.Next() {
		var (
			v         queries.ResidenceView
			reference pgtype.Text
			createdAt pgtype.Timestamptz
			updatedAt pgtype.Timestamptz
			media     []queries.MediaView
		)
		if err := rows.Scan(
			&v.ID, &v.OwnerID, &v.Title, &v.Description, &v.Type, &v.Price,
			&v.Location, &v.Address, &reference, &v.Amenities, &v.Status,
			&v.Rating, &v.ReviewsCount, &createdAt, &updatedAt, &media,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan residence view", err)
		}
		v.Reference = pgconv.StringPtrFromPgtype(reference)
		v.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		v.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
		if media == nil {
			media = []queries.MediaView{}
		}
		v.Media = media
		if v.Amenities == nil {
			v.Amenities = []string{}
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate residence views", err)
	}
	return views, nil
}
