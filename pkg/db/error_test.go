package db

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsDuplicateKeyErr(t *testing.T) {
	assert.False(t, IsDuplicateKeyErr(nil))
	assert.True(t, IsDuplicateKeyErr(gorm.ErrDuplicatedKey))
	assert.True(t, IsDuplicateKeyErr(fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})))
	assert.True(t, IsDuplicateKeyErr(errors.New("UNIQUE constraint failed: origins.name")))
	assert.True(t, IsDuplicateKeyErr(errors.New("Error 1062: Duplicate entry 'Canada'")))
	assert.False(t, IsDuplicateKeyErr(errors.New("connection refused")))
}

func TestClassify(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{gorm.ErrDuplicatedKey, "unique_violation"},
		{gorm.ErrRecordNotFound, "not_found"},
		{&pgconn.PgError{Code: "23503"}, "foreign_key_violation"},
		{&pgconn.PgError{Code: "40001"}, "serialization_failure"},
		{&pgconn.PgError{Code: "08006"}, "pg_08006"},
		{errors.New("boom"), "unknown"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Classify(tc.err))
	}
}

func TestDialect(t *testing.T) {
	for _, typ := range []string{TypePostgres, TypeMySQL, TypeSQLite, " SQLite "} {
		d, err := Dialect(Config{Type: typ})
		assert.NoError(t, err, typ)
		assert.NotNil(t, d, typ)
	}

	_, err := Dialect(Config{Type: "oracle"})
	assert.Error(t, err)
}
