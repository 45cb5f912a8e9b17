package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterPredicatesOnlyPresentFields(t *testing.T) {
	assert.Empty(t, Filter{}.Predicates())

	year := 2020
	origin := "Canada"
	got := Filter{Year: &year, OriginName: &origin}.Predicates()
	assert.Equal(t, []Predicate{
		{Column: "year", Value: 2020},
		{Column: "origin_name", Value: "Canada"},
	}, got)
}

func TestFilterPredicatesKeepZeroValues(t *testing.T) {
	empty := ""
	zero := 0
	got := Filter{GradeName: &empty, Quantity: &zero}.Predicates()
	assert.Len(t, got, 2)
}

func TestRecordIDRoundTrip(t *testing.T) {
	id := NewRecordID()
	assert.False(t, id.IsZero())

	parsed, err := ParseRecordID(" " + id.String() + " ")
	require.NoError(t, err)
	assert.Equal(t, id, parsed)

	body, err := json.Marshal(struct {
		ID RecordID `json:"uuid"`
	}{ID: id})
	require.NoError(t, err)
	assert.JSONEq(t, `{"uuid":"`+id.String()+`"}`, string(body))

	var scanned RecordID
	require.NoError(t, scanned.Scan(id.String()))
	assert.Equal(t, id, scanned)
}

func TestParseRecordIDRejectsGarbage(t *testing.T) {
	for _, raw := range []string{"", "42", "not-a-uuid", "00000000-0000-0000-0000-000000000000"} {
		_, err := ParseRecordID(raw)
		assert.ErrorIs(t, err, ErrInvalidID, raw)
	}
}

func TestPatchRequestEmpty(t *testing.T) {
	assert.True(t, PatchRequest{}.Empty())
	q := 1
	assert.False(t, PatchRequest{Quantity: &q}.Empty())
}
