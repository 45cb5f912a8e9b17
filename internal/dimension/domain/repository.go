package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	FindByName(ctx context.Context, db *gorm.DB, kind Kind, name string) (*Dimension, error)
	Insert(ctx context.Context, db *gorm.DB, kind Kind, row *Dimension) error
	List(ctx context.Context, db *gorm.DB, kind Kind) ([]Dimension, error)
}
