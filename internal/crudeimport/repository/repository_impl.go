package repository

import (
	"context"

	"github.com/smallbiznis/oilimports/internal/crudeimport/domain"
	"github.com/smallbiznis/oilimports/pkg/db/pagination"
	"gorm.io/gorm"
)

const insertBatchSize = 200

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, record *domain.ImportRecord) error {
	if record == nil {
		return gorm.ErrInvalidData
	}
	return db.WithContext(ctx).Create(record).Error
}

func (r *repo) InsertBatch(ctx context.Context, db *gorm.DB, records []*domain.ImportRecord) error {
	if len(records) == 0 {
		return nil
	}
	return db.WithContext(ctx).CreateInBatches(records, insertBatchSize).Error
}

func (r *repo) FindByUUID(ctx context.Context, db *gorm.DB, id domain.RecordID) (*domain.ImportRecord, error) {
	var record domain.ImportRecord
	err := db.WithContext(ctx).
		Where("uuid = ?", id).
		Limit(1).
		Find(&record).Error
	if err != nil {
		return nil, err
	}
	if record.ID == 0 {
		return nil, nil
	}
	return &record, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB, filter domain.Filter, page pagination.Page) ([]domain.ImportRecord, error) {
	var items []domain.ImportRecord
	stmt := applyFilter(db.WithContext(ctx).Model(&domain.ImportRecord{}), filter).
		Order("id ASC")
	if err := page.Apply(stmt).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) Count(ctx context.Context, db *gorm.DB, filter domain.Filter) (int64, error) {
	var total int64
	err := applyFilter(db.WithContext(ctx).Model(&domain.ImportRecord{}), filter).
		Count(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, record *domain.ImportRecord) (int64, error) {
	if record == nil {
		return 0, gorm.ErrInvalidData
	}
	res := db.WithContext(ctx).
		Model(&domain.ImportRecord{}).
		Where("uuid = ?", record.UUID).
		Updates(map[string]any{
			"year":                  record.Year,
			"month":                 record.Month,
			"origin_name":           record.OriginName,
			"origin_type_name":      record.OriginTypeName,
			"destination_name":      record.DestinationName,
			"destination_type_name": record.DestinationTypeName,
			"grade_name":            record.GradeName,
			"quantity":              record.Quantity,
			"updated_at":            record.UpdatedAt,
		})
	return res.RowsAffected, res.Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id domain.RecordID) (int64, error) {
	res := db.WithContext(ctx).
		Where("uuid = ?", id).
		Delete(&domain.ImportRecord{})
	return res.RowsAffected, res.Error
}

func applyFilter(stmt *gorm.DB, filter domain.Filter) *gorm.DB {
	for _, p := range filter.Predicates() {
		stmt = stmt.Where(p.Column+" = ?", p.Value)
	}
	return stmt
}
