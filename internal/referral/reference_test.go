package referral

import (
	"fmt"
	"regexp"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var referencePattern = regexp.MustCompile(`^AV-(\d{4})-(\d{4})$`)

func TestNewReferenceID(t *testing.T) {
	now := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)

	for i := 0; i < 500; i++ {
		ref := NewReferenceID(now)
		m := referencePattern.FindStringSubmatch(ref)
		require.NotNil(t, m, "reference %q does not match pattern", ref)
		assert.Equal(t, "2025", m[1])

		serial, err := strconv.Atoi(m[2])
		require.NoError(t, err)
		assert.GreaterOrEqual(t, serial, 1)
		assert.LessOrEqual(t, serial, 9999)
	}
}

func TestNewReferenceIDUsesGivenYear(t *testing.T) {
	for _, year := range []int{1999, 2024, 2031} {
		now := time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, fmt.Sprintf("AV-%d-", year), NewReferenceID(now)[:8])
	}
}
