package domain

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

type Service interface {
	List(ctx context.Context, kind Kind) ([]Response, error)
}

// ResolverFactory opens a Resolver bound to one unit of work.
type ResolverFactory interface {
	NewResolver(tx *gorm.DB) Resolver
}

// Resolver performs get-or-create lookups inside a single transaction.
// Names resolved once are remembered for the lifetime of the resolver.
type Resolver interface {
	Resolve(ctx context.Context, kind Kind, name string) (*Dimension, error)
	ResolveAll(ctx context.Context, names Names) error
	// Created reports how many rows each kind inserted.
	Created() map[Kind]int
}

type Response struct {
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

var (
	ErrInvalidKind = errors.New("invalid_kind")
	ErrInvalidName = errors.New("invalid_dimension_name")
)
