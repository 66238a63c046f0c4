package readstore

import (
	"context"

	"staybook/internal/infra"
	"staybook/internal/pkg/pgconv"
	"staybook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ReservationReadStore struct {
	pool *pgxpool.Pool
}

func NewReservationReadStore(pool *pgxpool.Pool) *ReservationReadStore {
	return &ReservationReadStore{pool: pool}
}

// The residence side is a left join: a reservation outlives its residence, so
// title, location and owner come back NULL for orphans.
const selectReservationViewSQL = `
SELECT rv.id, rv.residence_id, res.title, res.location, res.owner_id,
       rv.user_id, u.email, rv.status, rv.total_price, rv.created_at, rv.updated_at
FROM reservations rv
LEFT JOIN residences res ON res.id = rv.residence_id
JOIN users u ON u.id = rv.user_id
WHERE rv.id = $1`

func (s *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	var (
		v         queries.ReservationView
		title     pgtype.Text
		location  pgtype.Text
		ownerID   pgtype.UUID
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
	)
	err := s.pool.QueryRow(ctx, selectReservationViewSQL, id).Scan(
		&v.ID, &v.ResidenceID, &title, &location, &ownerID,
		&v.UserID, &v.UserEmail, &v.Status, &v.TotalPrice, &createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation view", err)
	}
	v.ResidenceTitle = pgconv.StringPtrFromPgtype(title)
	v.ResidenceLocation = pgconv.StringPtrFromPgtype(location)
	v.ResidenceOwnerID = pgconv.UUIDPtrFromPgtype(ownerID)
	v.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	v.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &v, nil
}

const listReservationColumns = `
rv.id, rv.residence_id, res.title, rv.user_id, rv.status, rv.total_price, rv.created_at`

// FindByOwnerID lists reservations held against any residence the owner
// controls, newest first. Orphans never match: their owning residence is gone.
func (s *ReservationReadStore) FindByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*queries.ReservationListItem, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+listReservationColumns+`
		 FROM reservations rv
		 JOIN residences res ON res.id = rv.residence_id
		 WHERE res.owner_id = $1
		 ORDER BY rv.created_at DESC`,
		ownerID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations by owner", err)
	}
	return scanReservationItems(rows)
}

func (s *ReservationReadStore) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*queries.ReservationListItem, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+listReservationColumns+`
		 FROM reservations rv
		 LEFT JOIN residences res ON res.id = rv.residence_id
		 WHERE rv.user_id = $1
		 ORDER BY rv.created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations by user", err)
	}
	return scanReservationItems(rows)
}

// AggregateByOwnerID computes the owner dashboard in one statement; revenue
// only counts confirmed reservations.
const ownerStatsSQL = `
SELECT COUNT(*),
       COUNT(*) FILTER (WHERE rv.status = 'confirmed'),
       COUNT(*) FILTER (WHERE rv.status = 'pending'),
       COUNT(*) FILTER (WHERE rv.status = 'cancelled'),
       COALESCE(SUM(rv.total_price) FILTER (WHERE rv.status = 'confirmed'), 0)
FROM reservations rv
JOIN residences res ON res.id = rv.residence_id
WHERE res.owner_id = $1`

func (s *ReservationReadStore) AggregateByOwnerID(ctx context.Context, ownerID uuid.UUID) (*queries.OwnerStats, error) {
	var stats queries.OwnerStats
	err := s.pool.QueryRow(ctx, ownerStatsSQL, ownerID).Scan(
		&stats.Total, &stats.Confirmed, &stats.Pending, &stats.Cancelled, &stats.TotalRevenue,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to aggregate owner stats", err)
	}
	return &stats, nil
}

func scanReservationItems(rows pgx.Rows) ([]*queries.ReservationListItem, error) {
	defer rows.Close()

	items := make([]*queries.ReservationListItem, 0)
	for rows.Next() {
		var (
			item      queries.ReservationListItem
			title     pgtype.Text
			createdAt pgtype.Timestamptz
		)
		if err := rows.Scan(
			&item.ID, &item.ResidenceID, &title, &item.UserID,
			&item.Status, &item.TotalPrice, &createdAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation item", err)
		}
		item.ResidenceTitle = pgconv.StringPtrFromPgtype(title)
		item.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reservation items", err)
	}
	return items, nil
}
