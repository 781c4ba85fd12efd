package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-10-14")
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, 10, 14, 0, 0, 0, 0, time.Local), d)
	// Дата живет в поясе сервера, не в UTC
	assert.Same(t, time.Local, d.Location())
}

func TestParseDate_InvalidFormat(t *testing.T) {
	for _, s := range []string{"14-10-2025", "2025/10/14", "2025-13-01", ""} {
		_, err := ParseDate(s)
		assert.Error(t, err, "input %q", s)
	}
}
