package costfn

import (
	"math"

	"github.com/tdickson/sailrouter/craft"
	"github.com/tdickson/sailrouter/geo"
)

// Evaluate prices the edge from origin to dest given the environment
// sampled at origin and departure time, the craft used to traverse it, and
// the elapsed mission lifetime (hours since departure of the whole
// voyage, used by the craft's optional lifetime-decay term). It returns
// the traversal time in hours, or +Inf if the edge is infeasible: boat
// speed below MinSpeedKn, or predicted failure probability above the
// craft's reliability tolerance.
func Evaluate(origin, dest geo.Location, sample Sample, c *craft.Craft, elapsedHours float64) float64 {
	distNm := geo.HaversineNm(origin, dest)
	bearing, err := geo.InitialBearing(origin, dest)
	if err != nil {
		// origin == dest: zero-distance edge, trivially zero-cost regardless
		// of bearing.
		return 0
	}

	twaRel := geo.RelativeAngle(bearing, sample.TWD)
	wdRel := geo.RelativeAngle(bearing, sample.WD)

	v := c.Polar.SpeedAt(twaRel, sample.TWS)
	if v < MinSpeedKn {
		return math.Inf(1)
	}

	if c.PFail(sample.TWS, twaRel, sample.WH, wdRel, elapsedHours) > c.ReliabilityTolerance {
		return math.Inf(1)
	}

	return distNm / v
}
