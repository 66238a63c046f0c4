//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"staybook/internal/pkg/password"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// TestPassword is the plaintext password every fixture user is created with.
const TestPassword = "password123"

var (
	hashPasswordOnce sync.Once
	testPasswordHash string
)

// TestPasswordHash returns the bcrypt hash of TestPassword, computed once
// per process.
func TestPasswordHash(t *testing.T) string {
	t.Helper()

	hashPasswordOnce.Do(func() {
		hash, err := password.HashPassword(TestPassword)
		require.NoError(t, err)
		testPasswordHash = hash
	})
	return testPasswordHash
}

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		"INSERT INTO users (id, email, password_hash, role, is_active) VALUES ($1, $2, $3, $4, true) ON CONFLICT (email) DO NOTHING",
		userID, email, TestPasswordHash(t), role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
	}

	return userID
}

func CreateTestResidence(t *testing.T, db DBLike, ownerID uuid.UUID, title string, price int64) uuid.UUID {
	t.Helper()

	residenceID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		`INSERT INTO residences (id, owner_id, title, description, type, price, location, address, amenities, status)
		 VALUES ($1, $2, $3, '', 'apartment', $4, 'Lisbon', '', '{}', 'available')`,
		residenceID, ownerID, title, price)
	require.NoError(t, err)

	return residenceID
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return nil
}
