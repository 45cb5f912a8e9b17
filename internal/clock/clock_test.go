package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFakeAdvance(t *testing.T) {
	start := time.Date(2024, 5, 1, 12, 0, 0, 0, time.FixedZone("X", 3600))
	c := NewFake(start)

	assert.Equal(t, time.UTC, c.Now().Location())
	c.Advance(90 * time.Minute)
	assert.True(t, c.Now().Equal(start.Add(90*time.Minute)))
}

func TestOrSystem(t *testing.T) {
	assert.IsType(t, System{}, OrSystem(nil))

	fake := NewFake(time.Unix(0, 0))
	assert.Same(t, fake, OrSystem(fake))
	assert.Equal(t, time.UTC, System{}.Now().Location())
}
