package tracing

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/attribute"
)

func TestSafeAttributesDropsUnknownKeys(t *testing.T) {
	attrs := SafeAttributes(
		attribute.String("http.route", "/crude-oil-imports"),
		attribute.String("db.statement", "SELECT 1"),
		attribute.String("dimension.kind", "grade"),
	)
	assert.Len(t, attrs, 2)
	assert.Equal(t, attribute.Key("http.route"), attrs[0].Key)
}

func TestSafeErrorKeepsInnermostMessage(t *testing.T) {
	sentinel := errors.New("storage_failure")
	wrapped := fmt.Errorf("create record: %w", fmt.Errorf("%w", sentinel))

	assert.EqualError(t, SafeError(wrapped), "storage_failure")
	assert.Nil(t, SafeError(nil))
}
