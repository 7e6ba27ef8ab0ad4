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

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// Execer is satisfied by *pgxpool.Pool and pgx.Tx, so fixtures can seed inside a test transaction.
type Execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func CreateTestProduct(t *testing.T, db Execer, ownerID uuid.UUID, title, price, status string) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(),
		"INSERT INTO products (owner_id, title, purchase_price, status) VALUES ($1, $2, $3::numeric, $4) RETURNING id",
		ownerID, title, price, status).Scan(&id)
	require.NoError(t, err)
	return id
}

func CreateTestAffiliate(t *testing.T, db Execer, refCode, accountID, rate string) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(),
		"INSERT INTO affiliates (ref_code, stripe_account_id, commission_rate) VALUES ($1, $2, $3::numeric) RETURNING id",
		refCode, accountID, rate).Scan(&id)
	require.NoError(t, err)
	return id
}

func CreateTestSubscription(t *testing.T, db Execer, ownerID uuid.UUID, subscriptionID, status string, periodEnd time.Time) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(),
		`INSERT INTO user_subscriptions (owner_id, stripe_customer_id, stripe_subscription_id, status, current_period_start, current_period_end)
		 VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
		ownerID, "cus_"+subscriptionID, subscriptionID, status, periodEnd.AddDate(0, -1, 0), periodEnd).Scan(&id)
	require.NoError(t, err)
	return id
}

func CountWebhookEvents(t *testing.T, db Execer, eventID string) (count int, status string) {
	t.Helper()

	err := db.QueryRow(context.Background(),
		"SELECT count(*), coalesce(max(status), '') FROM webhook_events WHERE event_id = $1", eventID).Scan(&count, &status)
	require.NoError(t, err)
	return count, status
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all application tables
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
