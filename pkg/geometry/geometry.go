package geometry

import (
	"math"

	errs "github.com/matzehuels/chartblocks/pkg/errors"
)

// FullTurn is the number of degrees in a complete circle.
const FullTurn = 360

// Point is a Cartesian coordinate in SVG user units.
type Point struct {
	X, Y float64
}

// Total sums values in index order.
func Total(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum
}

// partial sums values[0..index] in the same order Total does, so that the
// last index reproduces Total bit for bit.
func partial(values []float64, index int) float64 {
	var sum float64
	for _, v := range values[:index+1] {
		sum += v
	}
	return sum
}

func nonZeroTotal(values []float64) (float64, error) {
	total := Total(values)
	if total == 0 {
		return 0, errs.New(errs.ErrCodeDivideByZero, "values sum to zero (%d values)", len(values))
	}
	return total, nil
}

// CumulativeAngle returns the share of the circle swept by values[0..index]
// as whole degrees: round(sum(values[0..index]) / sum(values) * 360).
// index must be in range. It fails with DIVIDE_BY_ZERO when the values sum
// to zero.
func CumulativeAngle(values []float64, index int) (int, error) {
	total, err := nonZeroTotal(values)
	if err != nil {
		return 0, err
	}
	return int(math.RoundToEven(partial(values, index) / total * FullTurn)), nil
}

// Percent returns the rounded share of values[index] in the total, 0..100.
func Percent(values []float64, index int) (int, error) {
	total, err := nonZeroTotal(values)
	if err != nil {
		return 0, err
	}
	return int(math.RoundToEven(values[index] / total * 100)), nil
}

// SliceSpan reports whether values[index] alone occupies more than half of
// the total (rounded percentage > 50) together with the cumulative angle at
// index.
func SliceSpan(values []float64, index int) (overHalf bool, degrees int, err error) {
	pct, err := Percent(values, index)
	if err != nil {
		return false, 0, err
	}
	degrees, err = CumulativeAngle(values, index)
	if err != nil {
		return false, 0, err
	}
	return pct > 50, degrees, nil
}

// PointOnCircle maps angle (degrees, 0 = East, increasing towards +Y) to a
// point on a circle of the given radius whose center sits at (offset, offset).
func PointOnCircle(angle, radius, offset float64) Point {
	rad := angle * math.Pi / 180
	return Point{
		X: offset + radius*math.Cos(rad),
		Y: offset + radius*math.Sin(rad),
	}
}

// VerticalOffset returns the baseline of series seriesIndex in a stacked
// chart whose series are step units apart.
func VerticalOffset(seriesIndex int, step float64) float64 {
	return float64(seriesIndex) * step
}
