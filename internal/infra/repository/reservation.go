package repository

import (
	"context"

	"staybook/internal/domain/reservation"
	"staybook/internal/infra"
	"staybook/internal/pkg/pgconv"
	"staybook/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ReservationRepository struct {
	pool *pgxpool.Pool
}

func NewReservationRepository(pool *pgxpool.Pool) *ReservationRepository {
	return &ReservationRepository{pool: pool}
}

const insertReservationSQL = `
INSERT INTO reservations (id, residence_id, user_id, status, total_price)
VALUES ($1, $2, $3, $4, $5)
RETURNING id`

func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) (uuid.UUID, error) {
	var id uuid.UUID
	err := r.pool.QueryRow(ctx, insertReservationSQL,
		res.ID(), res.ResidenceID(), res.UserID(),
		res.Status().String(), res.TotalPrice(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create reservation", err)
	}
	return id, nil
}

func (r *ReservationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status reservation.Status) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE reservations SET status = $2, updated_at = now() WHERE id = $1`,
		id, status.String(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

func (r *ReservationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM reservations WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

// FindSnapshot resolves the residence owner through a left join so the
// caller can tell an orphaned reservation (owner nil) from a missing one.
const selectReservationSnapshotSQL = `
SELECT rv.id, rv.residence_id, rv.user_id, rv.status, res.owner_id
FROM reservations rv
LEFT JOIN residences res ON res.id = rv.residence_id
WHERE rv.id = $1`

func (r *ReservationRepository) FindSnapshot(ctx context.Context, id uuid.UUID) (*commands.ReservationSnapshot, error) {
	var (
		snap    commands.ReservationSnapshot
		status  string
		ownerID pgtype.UUID
	)
	err := r.pool.QueryRow(ctx, selectReservationSnapshotSQL, id).Scan(
		&snap.ID, &snap.ResidenceID, &snap.UserID, &status, &ownerID,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation snapshot", err)
	}
	snap.Status = reservation.Status(status)
	snap.ResidenceOwnerID = pgconv.UUIDPtrFromPgtype(ownerID)
	return &snap, nil
}

func (r *ReservationRepository) FindResidenceSnapshot(ctx context.Context, residenceID uuid.UUID) (*commands.ResidenceSnapshot, error) {
	var snap commands.ResidenceSnapshot
	err := r.pool.QueryRow(ctx,
		`SELECT id, owner_id, price FROM residences WHERE id = $1`,
		residenceID,
	).Scan(&snap.ID, &snap.OwnerID, &snap.Price)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("residence not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find residence snapshot", err)
	}
	return &snap, nil
}
