package domain

import (
	"strings"
	"time"
)

type Kind string

const (
	KindOrigin          Kind = "origin"
	KindOriginType      Kind = "origin_type"
	KindDestination     Kind = "destination"
	KindDestinationType Kind = "destination_type"
	KindGrade           Kind = "grade"
)

var kindTables = map[Kind]string{
	KindOrigin:          "origins",
	KindOriginType:      "origin_types",
	KindDestination:     "destinations",
	KindDestinationType: "destination_types",
	KindGrade:           "grades",
}

// Kinds lists every dimension in the order records reference them.
func Kinds() []Kind {
	return []Kind{KindOrigin, KindOriginType, KindDestination, KindDestinationType, KindGrade}
}

// Table returns the backing table, or "" for an unknown kind.
func (k Kind) Table() string {
	return kindTables[k]
}

func (k Kind) Valid() bool {
	_, ok := kindTables[k]
	return ok
}

// ParseKind accepts the kind itself or its table name, with dashes or underscores.
func ParseKind(raw string) (Kind, error) {
	value := strings.ToLower(strings.TrimSpace(raw))
	value = strings.ReplaceAll(value, "-", "_")
	for kind, table := range kindTables {
		if value == string(kind) || value == table {
			return kind, nil
		}
	}
	return "", ErrInvalidKind
}

// Dimension is a named reference value. Name is the natural primary key.
type Dimension struct {
	Name      string    `gorm:"primaryKey;size:255"`
	CreatedAt time.Time `gorm:"not null"`
}

// Names carries the five dimension references of one import record.
type Names struct {
	Origin          string
	OriginType      string
	Destination     string
	DestinationType string
	Grade           string
}

func (n Names) Get(kind Kind) string {
	switch kind {
	case KindOrigin:
		return n.Origin
	case KindOriginType:
		return n.OriginType
	case KindDestination:
		return n.Destination
	case KindDestinationType:
		return n.DestinationType
	case KindGrade:
		return n.Grade
	default:
		return ""
	}
}
