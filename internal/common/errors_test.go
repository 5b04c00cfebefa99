package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSentinels_MatchThroughWrapping(t *testing.T) {
	tests := []error{ErrBadRequest, ErrorInternal, ErrInvalidDate, ErrUnknownEntryType, ErrUnsupportedDSN}

	for _, sentinel := range tests {
		wrapped := fmt.Errorf("layer two: %w", fmt.Errorf("layer one: %w", sentinel))
		assert.True(t, errors.Is(wrapped, sentinel), sentinel.Error())
	}
}

func TestSentinels_AreDistinct(t *testing.T) {
	assert.False(t, errors.Is(ErrInvalidDate, ErrBadRequest))
	assert.False(t, errors.Is(ErrUnknownEntryType, ErrInvalidDate))
}
