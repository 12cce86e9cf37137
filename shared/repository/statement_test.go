package repository

import (
	"context"
	"database/sql"
	"testing"

	"pms/infras/otel/mocks"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

// rejectingDB fails every statement the way postgres does for a value the column cannot hold.
type rejectingDB struct {
	err error
}

func (r rejectingDB) NamedExecContext(context.Context, string, any) (sql.Result, error) {
	return nil, r.err
}

func (r rejectingDB) PrepareNamedContext(context.Context, string) (*sqlx.NamedStmt, error) {
	return nil, r.err
}

func TestStatementRead_InvalidValueMatchesNothing(t *testing.T) {
	repo := NewRepository[struct {
		ID string `db:"id"`
	}]("room", "rooms", "id", nil, mocks.NewOtel())

	malformed := rejectingDB{err: &pq.Error{Code: "22P02", Message: `invalid input syntax for type uuid: "abc"`}}
	broken := rejectingDB{err: &pq.Error{Code: "08006", Message: "connection failure"}}

	tests := []struct {
		name    string
		db      namedDB
		many    bool
		wantErr error
		failed  bool
	}{
		{name: "single row read finds nothing", db: malformed, wantErr: sql.ErrNoRows},
		{name: "list read is empty", db: malformed, many: true},
		{name: "other driver errors still fail", db: broken, failed: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var dest []string

			err := repo.begin(context.Background(), "Get", "q").read(tt.db, "get data", "q", &dest, map[string]any{"id": "abc"}, tt.many)

			switch {
			case tt.failed:
				assert.ErrorContains(t, err, "failed to prepare statement (room)")
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			default:
				assert.NoError(t, err)
				assert.Empty(t, dest)
			}
		})
	}

	assert.True(t, IsInvalidValue(malformed.err))
	assert.False(t, IsInvalidValue(broken.err))
	assert.False(t, IsInvalidValue(sql.ErrNoRows))
}
