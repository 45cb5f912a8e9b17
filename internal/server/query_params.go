package server

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	crudeimportdomain "github.com/smallbiznis/oilimports/internal/crudeimport/domain"
)

func parseOptionalInt(value string) (*int, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil, nil
	}
	parsed, err := strconv.Atoi(trimmed)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

// parseOptionalString keeps the value as sent; only an empty value counts as absent.
func parseOptionalString(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}

func parseOptionalRecordID(value string) (*crudeimportdomain.RecordID, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}
	parsed, err := crudeimportdomain.ParseRecordID(value)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

// parseImportFilter reads equality filters from the query string. Integer
// fields that do not parse are reported against their field name.
func parseImportFilter(c *gin.Context) (crudeimportdomain.Filter, error) {
	var filter crudeimportdomain.Filter
	var err error

	if filter.UUID, err = parseOptionalRecordID(c.Query("uuid")); err != nil {
		return filter, err
	}

	ints := []struct {
		key string
		dst **int
		bad error
	}{
		{"year", &filter.Year, crudeimportdomain.ErrInvalidYear},
		{"month", &filter.Month, crudeimportdomain.ErrInvalidMonth},
		{"quantity", &filter.Quantity, crudeimportdomain.ErrInvalidQuantity},
	}
	for _, f := range ints {
		v, err := parseOptionalInt(c.Query(f.key))
		if err != nil {
			return filter, f.bad
		}
		*f.dst = v
	}

	filter.OriginName = parseOptionalString(c.Query("originName"))
	filter.OriginTypeName = parseOptionalString(c.Query("originTypeName"))
	filter.DestinationName = parseOptionalString(c.Query("destinationName"))
	filter.DestinationTypeName = parseOptionalString(c.Query("destinationTypeName"))
	filter.GradeName = parseOptionalString(c.Query("gradeName"))

	return filter, nil
}
