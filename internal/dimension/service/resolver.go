package service

import (
	"context"
	"strings"

	"github.com/smallbiznis/oilimports/internal/clock"
	"github.com/smallbiznis/oilimports/internal/dimension/domain"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type resolver struct {
	tx      *gorm.DB
	repo    domain.Repository
	clock   clock.Clock
	log     *zap.Logger
	seen    map[domain.Kind]map[string]*domain.Dimension
	created map[domain.Kind]int
}

func newResolver(tx *gorm.DB, repo domain.Repository, clk clock.Clock, log *zap.Logger) *resolver {
	if log == nil {
		log = zap.NewNop()
	}
	return &resolver{
		tx:      tx,
		repo:    repo,
		clock:   clock.OrSystem(clk),
		log:     log,
		seen:    make(map[domain.Kind]map[string]*domain.Dimension),
		created: make(map[domain.Kind]int),
	}
}

// Resolve returns the row named name, inserting it first when absent.
// Lookups are exact; name is stored as given.
func (r *resolver) Resolve(ctx context.Context, kind domain.Kind, name string) (*domain.Dimension, error) {
	if !kind.Valid() {
		return nil, domain.ErrInvalidKind
	}
	if strings.TrimSpace(name) == "" {
		return nil, domain.ErrInvalidName
	}

	if row, ok := r.seen[kind][name]; ok {
		return row, nil
	}

	row, err := r.repo.FindByName(ctx, r.tx, kind, name)
	if err != nil {
		return nil, err
	}
	if row == nil {
		row = &domain.Dimension{
			Name:      name,
			CreatedAt: r.clock.Now(),
		}
		if err := r.repo.Insert(ctx, r.tx, kind, row); err != nil {
			return nil, err
		}
		r.created[kind]++
		r.log.Debug("dimension created", zap.String("kind", string(kind)), zap.String("name", name))
	}

	if r.seen[kind] == nil {
		r.seen[kind] = make(map[string]*domain.Dimension)
	}
	r.seen[kind][name] = row
	return row, nil
}

func (r *resolver) ResolveAll(ctx context.Context, names domain.Names) error {
	for _, kind := range domain.Kinds() {
		if _, err := r.Resolve(ctx, kind, names.Get(kind)); err != nil {
			return err
		}
	}
	return nil
}

func (r *resolver) Created() map[domain.Kind]int {
	out := make(map[domain.Kind]int, len(r.created))
	for kind, n := range r.created {
		out[kind] = n
	}
	return out
}
