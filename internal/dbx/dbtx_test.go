package dbx

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func openStorage(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`CREATE TABLE local_storage (key TEXT PRIMARY KEY, value BLOB NOT NULL)`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO local_storage(key, value) VALUES ('access_token', 'tok'), ('user_info', '{}')`)
	require.NoError(t, err)
	return db
}

func keys(t *testing.T, db *sql.DB) []string {
	t.Helper()
	rows, err := db.Query(`SELECT key FROM local_storage ORDER BY key`)
	require.NoError(t, err)
	defer rows.Close()

	var out []string
	for rows.Next() {
		var k string
		require.NoError(t, rows.Scan(&k))
		out = append(out, k)
	}
	require.NoError(t, rows.Err())
	return out
}

func deleteKey(ctx context.Context, tx DBTX, key string) error {
	_, err := tx.ExecContext(ctx, `DELETE FROM local_storage WHERE key = ?`, key)
	return err
}

func TestWithTx(t *testing.T) {
	boom := errors.New("boom")

	tests := []struct {
		name     string
		fn       func(ctx context.Context, tx DBTX) error
		wantErr  error
		wantKeys []string
	}{
		{
			name: "commit removes both keys",
			fn: func(ctx context.Context, tx DBTX) error {
				if err := deleteKey(ctx, tx, "access_token"); err != nil {
					return err
				}
				return deleteKey(ctx, tx, "user_info")
			},
			wantKeys: nil,
		},
		{
			name: "error after first delete rolls back",
			fn: func(ctx context.Context, tx DBTX) error {
				if err := deleteKey(ctx, tx, "access_token"); err != nil {
					return err
				}
				return boom
			},
			wantErr:  boom,
			wantKeys: []string{"access_token", "user_info"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := openStorage(t)
			err := WithTx(context.Background(), db, nil, tt.fn)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantKeys, keys(t, db))
		})
	}
}

func TestWithTx_RollbackOnPanic(t *testing.T) {
	db := openStorage(t)

	assert.PanicsWithValue(t, "kaput", func() {
		_ = WithTx(context.Background(), db, nil, func(ctx context.Context, tx DBTX) error {
			if err := deleteKey(ctx, tx, "access_token"); err != nil {
				return err
			}
			panic("kaput")
		})
	})
	assert.Equal(t, []string{"access_token", "user_info"}, keys(t, db))
}

func TestWithTx_BeginError(t *testing.T) {
	db := openStorage(t)
	require.NoError(t, db.Close())

	called := false
	err := WithTx(context.Background(), db, nil, func(ctx context.Context, tx DBTX) error {
		called = true
		return nil
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "begin tx")
	assert.False(t, called)
}

func TestWithTx_CanceledContext(t *testing.T) {
	db := openStorage(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := WithTx(ctx, db, nil, func(ctx context.Context, tx DBTX) error { return nil })
	require.Error(t, err)
}
