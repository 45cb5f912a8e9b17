package service

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/smallbiznis/oilimports/internal/dimension/domain"
	"github.com/smallbiznis/oilimports/internal/dimension/repository"
	"github.com/smallbiznis/oilimports/internal/migration"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupDimensionService(t *testing.T) (*Service, *gorm.DB) {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, migration.AutoMigrate(db))

	svc := New(Params{
		DB:   db,
		Log:  zap.NewNop(),
		Repo: repository.Provide(),
	})
	return svc, db
}

func countRows(t *testing.T, db *gorm.DB, kind domain.Kind, name string) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Table(kind.Table()).Where("name = ?", name).Count(&n).Error)
	return n
}

func TestResolveCreatesMissingName(t *testing.T) {
	svc, db := setupDimensionService(t)
	ctx := context.Background()

	r := svc.NewResolver(db)
	row, err := r.Resolve(ctx, domain.KindOrigin, "Canada")
	require.NoError(t, err)
	assert.Equal(t, "Canada", row.Name)
	assert.False(t, row.CreatedAt.IsZero())
	assert.Equal(t, int64(1), countRows(t, db, domain.KindOrigin, "Canada"))
	assert.Equal(t, map[domain.Kind]int{domain.KindOrigin: 1}, r.Created())
}

func TestResolveReturnsExistingRow(t *testing.T) {
	svc, db := setupDimensionService(t)
	ctx := context.Background()

	_, err := svc.NewResolver(db).Resolve(ctx, domain.KindGrade, "Light")
	require.NoError(t, err)

	r := svc.NewResolver(db)
	_, err = r.Resolve(ctx, domain.KindGrade, "Light")
	require.NoError(t, err)
	assert.Equal(t, int64(1), countRows(t, db, domain.KindGrade, "Light"))
	assert.Empty(t, r.Created())
}

func TestResolveSameNewNameTwiceInOneUnitOfWork(t *testing.T) {
	svc, db := setupDimensionService(t)
	ctx := context.Background()

	err := db.Transaction(func(tx *gorm.DB) error {
		r := svc.NewResolver(tx)
		first, err := r.Resolve(ctx, domain.KindDestination, "USGC")
		if err != nil {
			return err
		}
		second, err := r.Resolve(ctx, domain.KindDestination, "USGC")
		if err != nil {
			return err
		}
		assert.Same(t, first, second)
		assert.Equal(t, 1, r.Created()[domain.KindDestination])
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), countRows(t, db, domain.KindDestination, "USGC"))
}

func TestResolveRollsBackWithTransaction(t *testing.T) {
	svc, db := setupDimensionService(t)
	ctx := context.Background()

	err := db.Transaction(func(tx *gorm.DB) error {
		if _, err := svc.NewResolver(tx).Resolve(ctx, domain.KindOriginType, "Pipeline"); err != nil {
			return err
		}
		return assert.AnError
	})
	require.ErrorIs(t, err, assert.AnError)
	assert.Equal(t, int64(0), countRows(t, db, domain.KindOriginType, "Pipeline"))
}

func TestResolveRejectsBlankNameAndUnknownKind(t *testing.T) {
	svc, db := setupDimensionService(t)
	ctx := context.Background()
	r := svc.NewResolver(db)

	_, err := r.Resolve(ctx, domain.KindOrigin, "   ")
	assert.ErrorIs(t, err, domain.ErrInvalidName)

	_, err = r.Resolve(ctx, domain.Kind("port"), "Houston")
	assert.ErrorIs(t, err, domain.ErrInvalidKind)
}

func TestResolveAllTouchesEveryKind(t *testing.T) {
	svc, db := setupDimensionService(t)
	ctx := context.Background()

	r := svc.NewResolver(db)
	require.NoError(t, r.ResolveAll(ctx, domain.Names{
		Origin:          "Canada",
		OriginType:      "Pipeline",
		Destination:     "USGC",
		DestinationType: "Refinery",
		Grade:           "Light",
	}))
	for _, kind := range domain.Kinds() {
		assert.Equal(t, 1, r.Created()[kind], kind)
	}
}

func TestListOrdersByName(t *testing.T) {
	svc, db := setupDimensionService(t)
	ctx := context.Background()

	r := svc.NewResolver(db)
	for _, name := range []string{"Mexico", "Canada", "Brazil"} {
		_, err := r.Resolve(ctx, domain.KindOrigin, name)
		require.NoError(t, err)
	}

	items, err := svc.List(ctx, domain.KindOrigin)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, []string{"Brazil", "Canada", "Mexico"}, []string{items[0].Name, items[1].Name, items[2].Name})

	_, err = svc.List(ctx, domain.Kind("nope"))
	assert.ErrorIs(t, err, domain.ErrInvalidKind)
}
