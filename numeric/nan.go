package numeric

import (
	"fmt"
	"math"
)

// AssertNotNaN panics if f is NaN, identifying the offending value with
// context. Per the line-detection core's error-handling design, a NaN
// surfacing at a sort-key or projected-coordinate comparison indicates a
// caller contract violation (a malformed camera matrix or projection),
// not a condition the core can recover from.
func AssertNotNaN(f float64, context string) {
	if math.IsNaN(f) {
		panic(fmt.Sprintf("numeric: NaN encountered: %s", context))
	}
}
