package dbx

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", "file:"+t.Name()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)
	t.Cleanup(func() { _ = db.Close() })
	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS t (id INTEGER PRIMARY KEY, v TEXT);`)
	require.NoError(t, err)
	return db
}

func countRows(t *testing.T, db *sql.DB) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM t`).Scan(&n))
	return n
}

func TestWithTx_CommitsOnSuccess(t *testing.T) {
	db := setupDB(t)

	err := WithTx(context.Background(), db, nil, func(ctx context.Context, tx DBTX) error {
		_, err := tx.ExecContext(ctx, `INSERT INTO t(v) VALUES ('ok')`)
		return err
	})
	require.NoError(t, err)
	require.Equal(t, 1, countRows(t, db), "must commit on success")
}

func TestWithTx_RollbackOnFnError(t *testing.T) {
	db := setupDB(t)

	err := WithTx(context.Background(), db, nil, func(ctx context.Context, tx DBTX) error {
		_, e := tx.ExecContext(ctx, `INSERT INTO t(v) VALUES ('fail')`)
		require.NoError(t, e)
		return errors.New("boom")
	})
	require.Error(t, err)
	require.Equal(t, 0, countRows(t, db), "must rollback when fn returns error")
}

func TestWithTx_RollbackOnPanic(t *testing.T) {
	db := setupDB(t)

	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic to propagate")
		}
		require.Equal(t, 0, countRows(t, db), "must rollback on panic")
	}()

	_ = WithTx(context.Background(), db, nil, func(ctx context.Context, tx DBTX) error {
		_, e := tx.ExecContext(ctx, `INSERT INTO t(v) VALUES ('panic')`)
		require.NoError(t, e)
		panic("kaput")
	})
}

func TestWithTx_BeginError(t *testing.T) {
	db := setupDB(t)
	require.NoError(t, db.Close())

	err := WithTx(context.Background(), db, nil, func(ctx context.Context, tx DBTX) error {
		return nil
	})
	require.Error(t, err, "begin should fail when DB is closed")
}

func TestWithRetryTx_RetriesSerializationFailure(t *testing.T) {
	db := setupDB(t)

	calls := 0
	err := WithRetryTx(context.Background(), db, nil, 3, func(ctx context.Context, tx DBTX) error {
		calls++
		if _, err := tx.ExecContext(ctx, `INSERT INTO t(v) VALUES ('try')`); err != nil {
			return err
		}
		if calls < 3 {
			return fmt.Errorf("update: %w", &pgconn.PgError{Code: CodeSerializationFailure})
		}
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, 3, calls)
	require.Equal(t, 1, countRows(t, db), "failed attempts must be rolled back")
}

func TestWithRetryTx_GivesUpAfterAttempts(t *testing.T) {
	db := setupDB(t)

	calls := 0
	err := WithRetryTx(context.Background(), db, nil, 2, func(ctx context.Context, tx DBTX) error {
		calls++
		return &pgconn.PgError{Code: CodeDeadlockDetected}
	})
	require.True(t, IsRetryable(err))
	require.Equal(t, 2, calls)
}

func TestWithRetryTx_DoesNotRetryOtherErrors(t *testing.T) {
	db := setupDB(t)

	calls := 0
	boom := errors.New("boom")
	err := WithRetryTx(context.Background(), db, nil, 0, func(ctx context.Context, tx DBTX) error {
		calls++
		return boom
	})
	require.ErrorIs(t, err, boom)
	require.Equal(t, 1, calls)
}

func TestErrorClassifiers(t *testing.T) {
	require.True(t, IsUniqueViolation(fmt.Errorf("wrap: %w", &pgconn.PgError{Code: CodeUniqueViolation})))
	require.False(t, IsUniqueViolation(errors.New("plain")))
	require.False(t, IsRetryable(nil))
}
