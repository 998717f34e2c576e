package codingtree

import (
	mathbits "math/bits"

	"github.com/op/go-logging"
)

// LogModule is the go-logging module name used by this package.  It defaults
// to logging.WARNING, which hides the per-stage debug trace; use
// logging.SetLevel(logging.DEBUG, codingtree.LogModule) to see it.  Installing
// a new backend with logging.SetBackend resets this level.
const LogModule = "codingtree"

var log = logging.MustGetLogger(LogModule)

func init() {
	logging.SetLevel(logging.WARNING, LogModule)
}

func log2uint32(x uint32) uint32 {
	if x == 0 {
		x = 1
	}
	return uint32(32 - mathbits.LeadingZeros32(x))
}
