package statistics

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCachedCountFallsBackToLive(t *testing.T) {
	calls := 0
	got := cachedCount("statistics:test:absent", func() (int64, error) {
		calls++
		return 42, nil
	})

	assert.Equal(t, 42, got)
	assert.Equal(t, 1, calls, "live counter should run when the cache cannot serve the key")
}

func TestCachedCountLiveFailureYieldsZero(t *testing.T) {
	got := cachedCount("statistics:test:absent", func() (int64, error) {
		return 0, errors.New("db down")
	})

	assert.Equal(t, 0, got)
}
