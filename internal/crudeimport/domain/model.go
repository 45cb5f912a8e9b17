package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	dimensiondomain "github.com/smallbiznis/oilimports/internal/dimension/domain"
)

// ImportRecord is one observed crude-oil import. ID orders rows by insertion
// and never leaves the service; UUID is the only externally visible key.
type ImportRecord struct {
	ID                  snowflake.ID `gorm:"primaryKey;autoIncrement:false"`
	UUID                RecordID     `gorm:"column:uuid;not null;uniqueIndex:ux_crude_oil_imports_uuid"`
	Year                int          `gorm:"not null"`
	Month               int          `gorm:"not null"`
	OriginName          string       `gorm:"size:255;not null;index"`
	OriginTypeName      string       `gorm:"size:255;not null;index"`
	DestinationName     string       `gorm:"size:255;not null;index"`
	DestinationTypeName string       `gorm:"size:255;not null;index"`
	GradeName           string       `gorm:"size:255;not null;index"`
	Quantity            int          `gorm:"not null"`
	CreatedAt           time.Time    `gorm:"not null"`
	UpdatedAt           time.Time    `gorm:"not null"`
}

func (ImportRecord) TableName() string { return "crude_oil_imports" }

func (r *ImportRecord) DimensionNames() dimensiondomain.Names {
	return dimensiondomain.Names{
		Origin:          r.OriginName,
		OriginType:      r.OriginTypeName,
		Destination:     r.DestinationName,
		DestinationType: r.DestinationTypeName,
		Grade:           r.GradeName,
	}
}

const (
	MinYear     = 1900
	MaxYear     = 2100
	MinMonth    = 1
	MaxMonth    = 12
	MinQuantity = 1
)

// Filter selects records by exact equality on every field that is set.
type Filter struct {
	UUID                *RecordID
	Year                *int
	Month               *int
	OriginName          *string
	OriginTypeName      *string
	DestinationName     *string
	DestinationTypeName *string
	GradeName           *string
	Quantity            *int
}

type Predicate struct {
	Column string
	Value  any
}

// Predicates emits one equality constraint per present field, in column order.
func (f Filter) Predicates() []Predicate {
	var out []Predicate
	if f.UUID != nil {
		out = append(out, Predicate{Column: "uuid", Value: *f.UUID})
	}
	if f.Year != nil {
		out = append(out, Predicate{Column: "year", Value: *f.Year})
	}
	if f.Month != nil {
		out = append(out, Predicate{Column: "month", Value: *f.Month})
	}
	if f.OriginName != nil {
		out = append(out, Predicate{Column: "origin_name", Value: *f.OriginName})
	}
	if f.OriginTypeName != nil {
		out = append(out, Predicate{Column: "origin_type_name", Value: *f.OriginTypeName})
	}
	if f.DestinationName != nil {
		out = append(out, Predicate{Column: "destination_name", Value: *f.DestinationName})
	}
	if f.DestinationTypeName != nil {
		out = append(out, Predicate{Column: "destination_type_name", Value: *f.DestinationTypeName})
	}
	if f.GradeName != nil {
		out = append(out, Predicate{Column: "grade_name", Value: *f.GradeName})
	}
	if f.Quantity != nil {
		out = append(out, Predicate{Column: "quantity", Value: *f.Quantity})
	}
	return out
}
