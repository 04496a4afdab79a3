package referral

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// NewReferenceID produces a tracking code of the form AV-<year>-<serial>,
// where <serial> is drawn uniformly from [1, 9999] and zero-padded to four
// digits. The code itself carries no uniqueness guarantee; callers that need
// one must redraw on storage conflict.
func NewReferenceID(now time.Time) string {
	serial := rand.IntN(9999) + 1
	return fmt.Sprintf("AV-%d-%04d", now.Year(), serial)
}
