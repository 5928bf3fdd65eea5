package strength

import (
	"fmt"
	"math"

	"passforge/internal/domain"
)

// guessesPerSecond is the assumed attacker rate for crack-time estimates.
const guessesPerSecond = 1e9

// timeUnits is ordered largest to smallest; the first unit whose span fits
// the total wins.
var timeUnits = []struct {
	name    string
	seconds float64
}{
	{"centuries", 3153600000},
	{"years", 31536000},
	{"months", 2592000},
	{"days", 86400},
	{"hours", 3600},
	{"minutes", 60},
	{"seconds", 1},
}

// CrackTime estimates how long covering 2^entropyBits candidates takes at
// guessesPerSecond. Sub-second durations report as (rounded) seconds.
func CrackTime(entropyBits float64) domain.CrackTimeEstimate {
	seconds := math.Pow(2, entropyBits) / guessesPerSecond

	for _, u := range timeUnits {
		if seconds >= u.seconds {
			return estimate(seconds/u.seconds, u.name)
		}
	}
	return estimate(seconds, "seconds")
}

func estimate(value float64, unit string) domain.CrackTimeEstimate {
	v := round2(value)
	return domain.CrackTimeEstimate{
		Numeric: v,
		Unit:    unit,
		Display: fmt.Sprintf("%v %s", v, unit),
	}
}
