package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsArchivable(t *testing.T) {
	now := time.Date(2026, 3, 14, 20, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		date time.Time
		want bool
	}{
		{"three hours ago", now.Add(-3 * time.Hour), true},
		{"just over the grace", now.Add(-ArchiveGrace - time.Second), true},
		{"exactly at the boundary", now.Add(-ArchiveGrace), false},
		{"half an hour ago", now.Add(-30 * time.Minute), false},
		{"in the future", now.Add(2 * time.Hour), false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, IsArchivable(now, c.date))
		})
	}
}

func TestInActiveWindow(t *testing.T) {
	now := time.Date(2026, 3, 14, 20, 0, 0, 0, time.UTC)

	assert.True(t, InActiveWindow(now, now.Add(24*time.Hour)))
	assert.True(t, InActiveWindow(now, now.Add(ActiveWindow)))
	assert.False(t, InActiveWindow(now, now.Add(ActiveWindow+time.Minute)))
}
