package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseKind(t *testing.T) {
	cases := map[string]Kind{
		"origin":            KindOrigin,
		"origins":           KindOrigin,
		"origin-types":      KindOriginType,
		"ORIGIN_TYPE":       KindOriginType,
		"destinations":      KindDestination,
		"destination-types": KindDestinationType,
		" grades ":          KindGrade,
	}
	for raw, want := range cases {
		got, err := ParseKind(raw)
		assert.NoError(t, err, raw)
		assert.Equal(t, want, got, raw)
	}

	_, err := ParseKind("ports")
	assert.ErrorIs(t, err, ErrInvalidKind)
}

func TestNamesGet(t *testing.T) {
	n := Names{Origin: "a", OriginType: "b", Destination: "c", DestinationType: "d", Grade: "e"}
	got := make([]string, 0, 5)
	for _, k := range Kinds() {
		got = append(got, n.Get(k))
	}
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, got)
	assert.Equal(t, "", n.Get(Kind("x")))
}
