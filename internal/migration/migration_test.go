package migration

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	dimensiondomain "github.com/smallbiznis/oilimports/internal/dimension/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestEmbeddedMigrationsArePaired(t *testing.T) {
	files, err := fs.Glob(embeddedMigrations, migrationsDir+"/*.sql")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	ups, downs := 0, 0
	for _, f := range files {
		switch {
		case strings.HasSuffix(f, ".up.sql"):
			ups++
		case strings.HasSuffix(f, ".down.sql"):
			downs++
		}
	}
	assert.Equal(t, ups, downs)
}

func TestRunCreatesSchemaOnSQLite(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file:migration_test?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	version, err := Run(db)
	require.NoError(t, err)
	assert.Zero(t, version)
	// idempotent
	_, err = Run(db)
	require.NoError(t, err)

	for _, kind := range dimensiondomain.Kinds() {
		assert.True(t, db.Migrator().HasTable(kind.Table()), kind.Table())
	}
	assert.True(t, db.Migrator().HasTable("crude_oil_imports"))
	assert.True(t, db.Migrator().HasIndex("crude_oil_imports", "ux_crude_oil_imports_uuid"))
}
