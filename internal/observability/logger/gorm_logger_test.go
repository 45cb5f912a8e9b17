package logger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	gormlogger "gorm.io/gorm/logger"
)

func TestOperationAndTableFromSQL(t *testing.T) {
	cases := []struct {
		sql   string
		op    string
		table string
	}{
		{`SELECT * FROM "crude_oil_imports" WHERE year = 2020`, "SELECT", "crude_oil_imports"},
		{`INSERT INTO origins (name,created_at) VALUES ('Canada', now())`, "INSERT", "origins"},
		{"UPDATE `crude_oil_imports` SET quantity = 600", "UPDATE", "crude_oil_imports"},
		{`DELETE FROM crude_oil_imports WHERE uuid = 'x'`, "DELETE", "crude_oil_imports"},
		{``, "UNKNOWN", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.op, operationFromSQL(tc.sql), tc.sql)
		assert.Equal(t, tc.table, tableFromSQL(tc.sql), tc.sql)
	}
}

func TestGormLoggerTraceLevels(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	restore := zap.ReplaceGlobals(zap.New(core))
	defer restore()

	l := NewGormLogger(GormLoggerConfig{
		Level:                gormlogger.Warn,
		SlowThreshold:        10 * time.Millisecond,
		IgnoreRecordNotFound: true,
	})
	stmt := func() (string, int64) { return "SELECT * FROM grades", 1 }
	ctx := context.Background()

	l.Trace(ctx, time.Now(), stmt, nil)
	assert.Equal(t, 0, logs.Len(), "fast statements are not logged at warn level")

	l.Trace(ctx, time.Now().Add(-time.Second), stmt, nil)
	assert.Equal(t, 1, logs.FilterMessage("gorm.query").FilterField(zap.Bool("slow", true)).Len())

	l.Trace(ctx, time.Now(), stmt, gormlogger.ErrRecordNotFound)
	assert.Equal(t, 1, logs.Len(), "record not found is ignored")

	l.Trace(ctx, time.Now(), stmt, errors.New("boom"))
	assert.Equal(t, 2, logs.Len())
	assert.Equal(t, zap.ErrorLevel, logs.All()[1].Level)
}

func TestGormLoggerParamsFilter(t *testing.T) {
	l := NewGormLogger(DefaultGormLoggerConfig())
	_, params := l.ParamsFilter(context.Background(), "SELECT 1", 1, 2)
	assert.Nil(t, params)

	l = NewGormLogger(GormLoggerConfig{LogParams: true})
	_, params = l.ParamsFilter(context.Background(), "SELECT 1", 1, 2)
	assert.Len(t, params, 2)
}
