package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEntryType_Valid(t *testing.T) {
	for _, typ := range EntryTypes {
		assert.True(t, typ.Valid(), typ)
	}

	for _, typ := range []EntryType{"", "Work", "unknown-category", "learnings"} {
		assert.False(t, typ.Valid(), typ)
	}
}

func TestDateOnly(t *testing.T) {
	est := time.FixedZone("EST", -5*60*60)

	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{"utc midnight", time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)},
		{"strips time of day", time.Date(2024, 1, 10, 17, 45, 3, 9, time.UTC), time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)},
		{"converts to utc first", time.Date(2024, 1, 10, 23, 0, 0, 0, est), time.Date(2024, 1, 11, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.want.Equal(DateOnly(tt.in)), DateOnly(tt.in))
			assert.Equal(t, time.UTC, DateOnly(tt.in).Location())
		})
	}
}
