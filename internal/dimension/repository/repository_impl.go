package repository

import (
	"context"

	"github.com/smallbiznis/oilimports/internal/dimension/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) FindByName(ctx context.Context, db *gorm.DB, kind domain.Kind, name string) (*domain.Dimension, error) {
	if !kind.Valid() {
		return nil, domain.ErrInvalidKind
	}

	var row domain.Dimension
	err := db.WithContext(ctx).
		Table(kind.Table()).
		Where("name = ?", name).
		Limit(1).
		Find(&row).Error
	if err != nil {
		return nil, err
	}
	if row.Name == "" {
		return nil, nil
	}
	return &row, nil
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, kind domain.Kind, row *domain.Dimension) error {
	if !kind.Valid() {
		return domain.ErrInvalidKind
	}
	if row == nil {
		return gorm.ErrInvalidData
	}
	return db.WithContext(ctx).Table(kind.Table()).Create(row).Error
}

func (r *repo) List(ctx context.Context, db *gorm.DB, kind domain.Kind) ([]domain.Dimension, error) {
	if !kind.Valid() {
		return nil, domain.ErrInvalidKind
	}

	var rows []domain.Dimension
	err := db.WithContext(ctx).
		Table(kind.Table()).
		Order("name ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
