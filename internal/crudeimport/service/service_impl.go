package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/oilimports/internal/clock"
	"github.com/smallbiznis/oilimports/internal/config"
	"github.com/smallbiznis/oilimports/internal/crudeimport/domain"
	dimensiondomain "github.com/smallbiznis/oilimports/internal/dimension/domain"
	obslogger "github.com/smallbiznis/oilimports/internal/observability/logger"
	obsmetrics "github.com/smallbiznis/oilimports/internal/observability/metrics"
	pkgdb "github.com/smallbiznis/oilimports/pkg/db"
	"github.com/smallbiznis/oilimports/pkg/db/pagination"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	sourceSingle = "single"
	sourceBulk   = "bulk"

	modePatch   = "patch"
	modeReplace = "replace"
)

type Params struct {
	fx.In

	DB         *gorm.DB
	Log        *zap.Logger
	GenID      *snowflake.Node
	Repo       domain.Repository
	Dimensions dimensiondomain.ResolverFactory
	APIConfig  *config.APIConfigHolder
	Clock      clock.Clock         `optional:"true"`
	Metrics    *obsmetrics.Metrics `optional:"true"`
}

type Service struct {
	db         *gorm.DB
	log        *zap.Logger
	genID      *snowflake.Node
	repo       domain.Repository
	dimensions dimensiondomain.ResolverFactory
	apiConfig  *config.APIConfigHolder
	clock      clock.Clock
	metrics    *obsmetrics.Metrics
}

func New(p Params) domain.Service {
	apiConfig := p.APIConfig
	if apiConfig == nil {
		apiConfig = config.NewStaticAPIConfigHolder(config.DefaultAPIConfig())
	}
	return &Service{
		db:         p.DB,
		log:        p.Log.Named("crudeimport.service"),
		genID:      p.GenID,
		repo:       p.Repo,
		dimensions: p.Dimensions,
		apiConfig:  apiConfig,
		clock:      clock.OrSystem(p.Clock),
		metrics:    p.Metrics,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateRequest) (*domain.Response, error) {
	fields, err := validateComplete(req)
	if err != nil {
		return nil, err
	}

	record := s.newRecord(fields, s.clock.Now())
	var created map[dimensiondomain.Kind]int
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		resolver := s.dimensions.NewResolver(tx)
		if err := resolver.ResolveAll(ctx, record.DimensionNames()); err != nil {
			return err
		}
		if err := s.repo.Insert(ctx, tx, record); err != nil {
			return err
		}
		created = resolver.Created()
		return nil
	})
	if err != nil {
		return nil, s.storageError(ctx, "create", err)
	}

	s.recordDimensions(ctx, created)
	s.metrics.RecordCreated(ctx, sourceSingle, 1)

	resp := toResponse(record)
	return &resp, nil
}

// CreateBatch inserts every record in one transaction or none of them.
func (s *Service) CreateBatch(ctx context.Context, reqs []domain.CreateRequest) ([]domain.Response, error) {
	if len(reqs) == 0 {
		return nil, domain.ErrEmptyBatch
	}
	if maxSize := s.apiConfig.Get().Bulk.MaxSize; len(reqs) > maxSize {
		return nil, domain.ErrBatchTooLarge
	}

	now := s.clock.Now()
	records := make([]*domain.ImportRecord, 0, len(reqs))
	var errs []error
	for i, req := range reqs {
		fields, err := validateComplete(req)
		if err != nil {
			errs = append(errs, &domain.BatchItemError{Index: i, Err: err})
			continue
		}
		records = append(records, s.newRecord(fields, now))
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	var created map[dimensiondomain.Kind]int
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		resolver := s.dimensions.NewResolver(tx)
		for _, record := range records {
			if err := resolver.ResolveAll(ctx, record.DimensionNames()); err != nil {
				return err
			}
		}
		if err := s.repo.InsertBatch(ctx, tx, records); err != nil {
			return err
		}
		created = resolver.Created()
		return nil
	})
	if err != nil {
		return nil, s.storageError(ctx, "create_batch", err)
	}

	s.recordDimensions(ctx, created)
	s.metrics.RecordCreated(ctx, sourceBulk, len(records))

	resp := make([]domain.Response, 0, len(records))
	for _, record := range records {
		resp = append(resp, toResponse(record))
	}
	return resp, nil
}

func (s *Service) List(ctx context.Context, req domain.ListRequest) (*domain.ListResponse, error) {
	if err := validateFilter(req.Filter); err != nil {
		return nil, err
	}

	cfg := s.apiConfig.Get().Pagination
	page, err := pagination.New(req.Skip, req.Limit, cfg.DefaultLimit, cfg.MaxLimit)
	if err != nil {
		switch {
		case errors.Is(err, pagination.ErrInvalidSkip):
			return nil, domain.ErrInvalidSkip
		default:
			return nil, domain.ErrInvalidLimit
		}
	}

	total, err := s.repo.Count(ctx, s.db, req.Filter)
	if err != nil {
		return nil, s.storageError(ctx, "count", err)
	}

	items := []domain.ImportRecord{}
	if total > int64(page.Skip) {
		items, err = s.repo.List(ctx, s.db, req.Filter, page)
		if err != nil {
			return nil, s.storageError(ctx, "list", err)
		}
	}

	data := make([]domain.Response, 0, len(items))
	for i := range items {
		data = append(data, toResponse(&items[i]))
	}

	return &domain.ListResponse{
		Data: data,
		Meta: page.Meta(total),
	}, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Response, error) {
	recordID, err := domain.ParseRecordID(id)
	if err != nil {
		return nil, err
	}

	record, err := s.repo.FindByUUID(ctx, s.db, recordID)
	if err != nil {
		return nil, s.storageError(ctx, "get", err)
	}
	if record == nil {
		return nil, domain.ErrNotFound
	}

	resp := toResponse(record)
	return &resp, nil
}

// Patch writes only the fields present in req. Dimension fields are resolved
// before the write.
func (s *Service) Patch(ctx context.Context, id string, req domain.PatchRequest) (*domain.Response, error) {
	recordID, err := domain.ParseRecordID(id)
	if err != nil {
		return nil, err
	}
	if err := validatePatch(req); err != nil {
		return nil, err
	}
	if req.Empty() {
		return s.Get(ctx, id)
	}

	var (
		record  *domain.ImportRecord
		created map[dimensiondomain.Kind]int
	)
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		current, err := s.repo.FindByUUID(ctx, tx, recordID)
		if err != nil {
			return err
		}
		if current == nil {
			return domain.ErrNotFound
		}

		resolver := s.dimensions.NewResolver(tx)
		if err := applyPatch(ctx, resolver, current, req); err != nil {
			return err
		}
		current.UpdatedAt = s.clock.Now()

		affected, err := s.repo.Update(ctx, tx, current)
		if err != nil {
			return err
		}
		if affected == 0 {
			return domain.ErrNotFound
		}

		record = current
		created = resolver.Created()
		return nil
	})
	if err != nil {
		return nil, s.storageError(ctx, "patch", err)
	}

	s.recordDimensions(ctx, created)
	s.metrics.RecordUpdated(ctx, modePatch)

	resp := toResponse(record)
	return &resp, nil
}

// Replace overwrites every business field and re-resolves all dimensions.
func (s *Service) Replace(ctx context.Context, id string, req domain.ReplaceRequest) (*domain.Response, error) {
	recordID, err := domain.ParseRecordID(id)
	if err != nil {
		return nil, err
	}
	fields, err := validateComplete(req)
	if err != nil {
		return nil, err
	}

	var (
		record  *domain.ImportRecord
		created map[dimensiondomain.Kind]int
	)
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		current, err := s.repo.FindByUUID(ctx, tx, recordID)
		if err != nil {
			return err
		}
		if current == nil {
			return domain.ErrNotFound
		}

		applyFields(current, fields)
		current.UpdatedAt = s.clock.Now()

		resolver := s.dimensions.NewResolver(tx)
		if err := resolver.ResolveAll(ctx, current.DimensionNames()); err != nil {
			return err
		}

		affected, err := s.repo.Update(ctx, tx, current)
		if err != nil {
			return err
		}
		if affected == 0 {
			return domain.ErrNotFound
		}

		record = current
		created = resolver.Created()
		return nil
	})
	if err != nil {
		return nil, s.storageError(ctx, "replace", err)
	}

	s.recordDimensions(ctx, created)
	s.metrics.RecordUpdated(ctx, modeReplace)

	resp := toResponse(record)
	return &resp, nil
}

// Delete removes the record and returns it as it was. Referenced dimension
// rows are left in place.
func (s *Service) Delete(ctx context.Context, id string) (*domain.Response, error) {
	recordID, err := domain.ParseRecordID(id)
	if err != nil {
		return nil, err
	}

	var record *domain.ImportRecord
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		current, err := s.repo.FindByUUID(ctx, tx, recordID)
		if err != nil {
			return err
		}
		if current == nil {
			return domain.ErrNotFound
		}

		affected, err := s.repo.Delete(ctx, tx, recordID)
		if err != nil {
			return err
		}
		if affected == 0 {
			return domain.ErrNotFound
		}

		record = current
		return nil
	})
	if err != nil {
		return nil, s.storageError(ctx, "delete", err)
	}

	s.metrics.RecordDeleted(ctx)

	resp := toResponse(record)
	return &resp, nil
}

func (s *Service) newRecord(fields recordFields, now time.Time) *domain.ImportRecord {
	record := &domain.ImportRecord{
		ID:        s.genID.Generate(),
		UUID:      domain.NewRecordID(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	applyFields(record, fields)
	return record
}

func applyFields(record *domain.ImportRecord, fields recordFields) {
	record.Year = fields.Year
	record.Month = fields.Month
	record.OriginName = fields.OriginName
	record.OriginTypeName = fields.OriginTypeName
	record.DestinationName = fields.DestinationName
	record.DestinationTypeName = fields.DestinationTypeName
	record.GradeName = fields.GradeName
	record.Quantity = fields.Quantity
}

func applyPatch(ctx context.Context, resolver dimensiondomain.Resolver, record *domain.ImportRecord, req domain.PatchRequest) error {
	if req.Year != nil {
		record.Year = *req.Year
	}
	if req.Month != nil {
		record.Month = *req.Month
	}
	if req.Quantity != nil {
		record.Quantity = *req.Quantity
	}

	names := []struct {
		kind  dimensiondomain.Kind
		value *string
		dst   *string
	}{
		{dimensiondomain.KindOrigin, req.OriginName, &record.OriginName},
		{dimensiondomain.KindOriginType, req.OriginTypeName, &record.OriginTypeName},
		{dimensiondomain.KindDestination, req.DestinationName, &record.DestinationName},
		{dimensiondomain.KindDestinationType, req.DestinationTypeName, &record.DestinationTypeName},
		{dimensiondomain.KindGrade, req.GradeName, &record.GradeName},
	}
	for _, n := range names {
		if n.value == nil {
			continue
		}
		if _, err := resolver.Resolve(ctx, n.kind, *n.value); err != nil {
			return err
		}
		*n.dst = *n.value
	}
	return nil
}

func (s *Service) recordDimensions(ctx context.Context, created map[dimensiondomain.Kind]int) {
	for kind, n := range created {
		for i := 0; i < n; i++ {
			s.metrics.DimensionCreated(ctx, string(kind))
		}
	}
}

// storageError passes not-found through and hides every other failure behind
// ErrStorage after logging it.
func (s *Service) storageError(ctx context.Context, op string, err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return err
	}
	obslogger.WithContext(ctx, s.log).Error("storage operation failed",
		zap.String("operation", op),
		zap.String("db_error", pkgdb.Classify(err)),
		zap.Error(err),
	)
	return fmt.Errorf("%w: %v", domain.ErrStorage, err)
}

func toResponse(record *domain.ImportRecord) domain.Response {
	return domain.Response{
		UUID:                record.UUID,
		Year:                record.Year,
		Month:               record.Month,
		OriginName:          record.OriginName,
		OriginTypeName:      record.OriginTypeName,
		DestinationName:     record.DestinationName,
		DestinationTypeName: record.DestinationTypeName,
		GradeName:           record.GradeName,
		Quantity:            record.Quantity,
		CreatedAt:           record.CreatedAt,
		UpdatedAt:           record.UpdatedAt,
	}
}
