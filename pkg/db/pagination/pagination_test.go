package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func TestNew(t *testing.T) {
	cases := []struct {
		name    string
		skip    *int
		limit   *int
		want    Page
		wantErr error
	}{
		{name: "defaults", want: Page{Skip: 0, Limit: 500}},
		{name: "explicit", skip: intPtr(20), limit: intPtr(10), want: Page{Skip: 20, Limit: 10}},
		{name: "upper bound", limit: intPtr(1000), want: Page{Limit: 1000}},
		{name: "negative skip", skip: intPtr(-1), wantErr: ErrInvalidSkip},
		{name: "zero limit", limit: intPtr(0), wantErr: ErrInvalidLimit},
		{name: "limit above max", limit: intPtr(1001), wantErr: ErrInvalidLimit},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := New(tc.skip, tc.limit, 500, 1000)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestMeta(t *testing.T) {
	assert.Equal(t, Meta{Skip: 5, Limit: 10, Total: 42}, Page{Skip: 5, Limit: 10}.Meta(42))
}
