package domain

import (
	"context"
	"errors"
	"time"

	"github.com/smallbiznis/oilimports/pkg/db/pagination"
)

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Response, error)
	CreateBatch(ctx context.Context, reqs []CreateRequest) ([]Response, error)
	List(ctx context.Context, req ListRequest) (*ListResponse, error)
	Get(ctx context.Context, id string) (*Response, error)
	Patch(ctx context.Context, id string, req PatchRequest) (*Response, error)
	Replace(ctx context.Context, id string, req ReplaceRequest) (*Response, error)
	Delete(ctx context.Context, id string) (*Response, error)
}

// CreateRequest requires every field; a nil field is rejected.
type CreateRequest struct {
	Year                *int    `json:"year"`
	Month               *int    `json:"month"`
	OriginName          *string `json:"originName"`
	OriginTypeName      *string `json:"originTypeName"`
	DestinationName     *string `json:"destinationName"`
	DestinationTypeName *string `json:"destinationTypeName"`
	GradeName           *string `json:"gradeName"`
	Quantity            *int    `json:"quantity"`
}

type ReplaceRequest = CreateRequest

// PatchRequest writes only the fields that are set.
type PatchRequest struct {
	Year                *int    `json:"year,omitempty"`
	Month               *int    `json:"month,omitempty"`
	OriginName          *string `json:"originName,omitempty"`
	OriginTypeName      *string `json:"originTypeName,omitempty"`
	DestinationName     *string `json:"destinationName,omitempty"`
	DestinationTypeName *string `json:"destinationTypeName,omitempty"`
	GradeName           *string `json:"gradeName,omitempty"`
	Quantity            *int    `json:"quantity,omitempty"`
}

func (p PatchRequest) Empty() bool {
	return p.Year == nil && p.Month == nil &&
		p.OriginName == nil && p.OriginTypeName == nil &&
		p.DestinationName == nil && p.DestinationTypeName == nil &&
		p.GradeName == nil && p.Quantity == nil
}

type ListRequest struct {
	Filter Filter
	Skip   *int
	Limit  *int
}

type Response struct {
	UUID                RecordID  `json:"uuid"`
	Year                int       `json:"year"`
	Month               int       `json:"month"`
	OriginName          string    `json:"originName"`
	OriginTypeName      string    `json:"originTypeName"`
	DestinationName     string    `json:"destinationName"`
	DestinationTypeName string    `json:"destinationTypeName"`
	GradeName           string    `json:"gradeName"`
	Quantity            int       `json:"quantity"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

type ListResponse struct {
	Meta pagination.Meta `json:"metadata"`
	Data []Response      `json:"paginated_data"`
}

var (
	ErrInvalidID                  = errors.New("invalid_uuid")
	ErrInvalidYear                = errors.New("invalid_year")
	ErrInvalidMonth               = errors.New("invalid_month")
	ErrInvalidQuantity            = errors.New("invalid_quantity")
	ErrInvalidOriginName          = errors.New("invalid_origin_name")
	ErrInvalidOriginTypeName      = errors.New("invalid_origin_type_name")
	ErrInvalidDestinationName     = errors.New("invalid_destination_name")
	ErrInvalidDestinationTypeName = errors.New("invalid_destination_type_name")
	ErrInvalidGradeName           = errors.New("invalid_grade_name")
	ErrInvalidSkip                = errors.New("invalid_skip")
	ErrInvalidLimit               = errors.New("invalid_limit")
	ErrEmptyBatch                 = errors.New("invalid_batch_empty")
	ErrBatchTooLarge              = errors.New("invalid_batch_size")
	ErrNotFound                   = errors.New("not_found")
	ErrStorage                    = errors.New("storage_error")
)
