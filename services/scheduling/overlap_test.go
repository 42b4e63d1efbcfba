package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func at(hour, min int) time.Time {
	return time.Date(2024, 1, 1, hour, min, 0, 0, time.UTC)
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd time.Time
		want                       bool
	}{
		{"identical intervals", at(9, 0), at(9, 30), at(9, 0), at(9, 30), true},
		{"contained interval", at(9, 0), at(11, 0), at(9, 30), at(10, 0), true},
		{"partial overlap at start", at(9, 0), at(10, 0), at(9, 30), at(10, 30), true},
		{"back-to-back is not a conflict", at(10, 0), at(10, 30), at(10, 30), at(11, 0), false},
		{"disjoint", at(9, 0), at(9, 30), at(11, 0), at(11, 30), false},
		{"one minute of overlap", at(9, 0), at(10, 1), at(10, 0), at(11, 0), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd))
		})
	}
}

func TestOverlapsIsSymmetric(t *testing.T) {
	pairs := [][4]time.Time{
		{at(9, 0), at(9, 30), at(9, 15), at(9, 45)},
		{at(9, 0), at(9, 30), at(9, 30), at(10, 0)},
		{at(8, 0), at(12, 0), at(9, 0), at(9, 30)},
		{at(9, 0), at(9, 30), at(14, 0), at(15, 0)},
	}

	for _, p := range pairs {
		assert.Equal(t,
			Overlaps(p[0], p[1], p[2], p[3]),
			Overlaps(p[2], p[3], p[0], p[1]),
			"overlap must be symmetric for %v", p)
	}
}
