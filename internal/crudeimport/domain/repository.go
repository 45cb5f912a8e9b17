package domain

import (
	"context"

	"github.com/smallbiznis/oilimports/pkg/db/pagination"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, record *ImportRecord) error
	InsertBatch(ctx context.Context, db *gorm.DB, records []*ImportRecord) error
	FindByUUID(ctx context.Context, db *gorm.DB, id RecordID) (*ImportRecord, error)
	List(ctx context.Context, db *gorm.DB, filter Filter, page pagination.Page) ([]ImportRecord, error)
	Count(ctx context.Context, db *gorm.DB, filter Filter) (int64, error)
	// Update writes every business field of record, matched by UUID.
	// It reports the number of rows affected.
	Update(ctx context.Context, db *gorm.DB, record *ImportRecord) (int64, error)
	Delete(ctx context.Context, db *gorm.DB, id RecordID) (int64, error)
}
