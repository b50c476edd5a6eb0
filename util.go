package textcompress

import (
	"math"
	mathbits "math/bits"

	"github.com/op/go-logging"
)

const logModule = "textcompress"

var log = logging.MustGetLogger(logModule)

// The core stays quiet unless the caller installs its own backend.
func init() {
	logging.SetLevel(logging.WARNING, logModule)
}

// ceilLog2 returns the number of bits a fixed-width code needs for an
// alphabet of n symbols.
func ceilLog2(n uint64) uint64 {
	if n <= 1 {
		return 0
	}
	return uint64(64 - mathbits.LeadingZeros64(n-1))
}

// addSaturating adds two frequencies, clamping at math.MaxUint64.
func addSaturating(a, b uint64) uint64 {
	sum := a + b
	if sum < a {
		return math.MaxUint64
	}
	return sum
}
