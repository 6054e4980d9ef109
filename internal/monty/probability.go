package monty

// Point is one sample of a win-probability curve.
type Point struct {
	N int
	P float64
}

// WinProbability returns the exact chance of winning with n doors.
//
// Staying wins only when the first pick was right, 1/n. Under RevealAll
// switching wins whenever the first pick was wrong, (n-1)/n. Under
// RevealOne the switch lands on one of n-2 closed doors, (n-1)/(n(n-2)).
func WinProbability(n int, strategy Strategy, variant Variant) float64 {
	if n < MinDoors {
		n = MinDoors
	}
	fn := float64(n)
	if strategy == Stay {
		return 1 / fn
	}
	if variant == RevealOne {
		return (fn - 1) / (fn * (fn - 2))
	}
	return (fn - 1) / fn
}

// Curve evaluates WinProbability for every n in [from, to].
func Curve(from, to int, strategy Strategy, variant Variant) []Point {
	if from < MinDoors {
		from = MinDoors
	}
	if to < from {
		return nil
	}
	points := make([]Point, 0, to-from+1)
	for n := from; n <= to; n++ {
		points = append(points, Point{N: n, P: WinProbability(n, strategy, variant)})
	}
	return points
}

// SwitchCurve is the (n-1)/n curve of switching when the host opens all but
// one of the other doors.
func SwitchCurve(from, to int) []Point { return Curve(from, to, Switch, RevealAll) }
