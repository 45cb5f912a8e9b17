package service

import (
	"context"

	"github.com/smallbiznis/oilimports/internal/clock"
	"github.com/smallbiznis/oilimports/internal/dimension/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	Repo  domain.Repository
	Clock clock.Clock `optional:"true"`
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	repo  domain.Repository
	clock clock.Clock
}

func New(p Params) *Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("dimension.service"),
		repo:  p.Repo,
		clock: clock.OrSystem(p.Clock),
	}
}

func AsService(s *Service) domain.Service { return s }

func AsResolverFactory(s *Service) domain.ResolverFactory { return s }

func (s *Service) List(ctx context.Context, kind domain.Kind) ([]domain.Response, error) {
	if !kind.Valid() {
		return nil, domain.ErrInvalidKind
	}

	rows, err := s.repo.List(ctx, s.db, kind)
	if err != nil {
		s.log.Error("list dimensions failed", zap.String("kind", string(kind)), zap.Error(err))
		return nil, err
	}

	resp := make([]domain.Response, 0, len(rows))
	for _, row := range rows {
		resp = append(resp, domain.Response{
			Name:      row.Name,
			CreatedAt: row.CreatedAt,
		})
	}
	return resp, nil
}

// NewResolver binds a resolver to tx. The caller owns commit and rollback.
func (s *Service) NewResolver(tx *gorm.DB) domain.Resolver {
	return newResolver(tx, s.repo, s.clock, s.log)
}
