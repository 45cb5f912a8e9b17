package domain

import (
	"database/sql/driver"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// RecordID is the public identifier of an import record. It is generated once
// at creation and is unrelated to the internal storage key.
type RecordID struct {
	value uuid.UUID
}

func NewRecordID() RecordID {
	return RecordID{value: uuid.New()}
}

func ParseRecordID(raw string) (RecordID, error) {
	parsed, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil || parsed == uuid.Nil {
		return RecordID{}, ErrInvalidID
	}
	return RecordID{value: parsed}, nil
}

func (id RecordID) IsZero() bool {
	return id.value == uuid.Nil
}

func (id RecordID) String() string {
	return id.value.String()
}

func (id RecordID) MarshalText() ([]byte, error) {
	return id.value.MarshalText()
}

func (id *RecordID) UnmarshalText(data []byte) error {
	parsed, err := ParseRecordID(string(data))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

func (id *RecordID) Scan(src any) error {
	return id.value.Scan(src)
}

func (id RecordID) Value() (driver.Value, error) {
	return id.value.String(), nil
}

func (RecordID) GormDBDataType(db *gorm.DB, _ *schema.Field) string {
	switch db.Dialector.Name() {
	case "postgres":
		return "uuid"
	case "mysql":
		return "char(36)"
	default:
		return "text"
	}
}
