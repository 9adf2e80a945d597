package arms

import (
	"errors"
	"math"
)

// Critical thresholds, ported from original_source/apop_arms.c's XEPS,
// YEPS, EYEPS and YCEIL constants.
const (
	xEPS  = 0.00001 // critical relative x-value difference
	yEPS  = 0.1     // critical y-value difference
	eyEPS = 0.001   // critical relative exp(y) difference
	yCeil = 50.0    // maximum y avoiding overflow in exp(y)
)

// point is one node of the envelope's ordered doubly-linked list
// (spec.md §4.5's "envelope" data model): an x-coordinate, a y-value
// (the true log-density for a density point, or an inferred value for a
// boundary/intersection point), a cumulative area, and an exponentiated
// y shifted by the envelope's running maximum.
type point struct {
	x, y, ey, cum float64
	density       bool
	pl, pr        *point
}

// Func evaluates a univariate log-density at x.
type Func func(x float64) float64

// Envelope is the piecewise-exponential upper bound to a univariate
// log-density, built and refined per Gilks, Best & Tan's adaptive
// rejection metropolis sampling algorithm.
type Envelope struct {
	left, right *point
	count       int
	npoint      int
	ymax        float64
	convexity   float64
	doMetro     bool
	h           Func
	evals       int

	metroX, metroY float64
}

// NewEnvelope builds the initial envelope bracketing [xl, xr] around
// density points at the given initial abscissae (spec.md §4.5's
// "envelope" construction; ported from apop_arms.c's initial()).
func NewEnvelope(h Func, xl, xr float64, initial []float64, npoint int, convexity float64, doMetro bool) (*Envelope, error) {
	if len(initial) < 3 {
		return nil, ErrTooFewInitial
	}
	for i := 1; i < len(initial); i++ {
		if initial[i] <= initial[i-1] {
			return nil, ErrUnordered
		}
	}
	if initial[0] < xl || initial[len(initial)-1] > xr {
		return nil, ErrOutOfBounds
	}
	if convexity < 0 {
		return nil, ErrNegativeConvexity
	}

	e := &Envelope{npoint: npoint, convexity: convexity, doMetro: doMetro, h: h}

	left := &point{x: xl}
	nonDensity := []*point{left}
	prev := left
	for i, x := range initial {
		d := &point{x: x, y: h(x), density: true}
		e.evals++
		prev.pr, d.pl = d, prev
		prev = d
		if i < len(initial)-1 {
			mid := &point{}
			prev.pr, mid.pl = mid, prev
			nonDensity = append(nonDensity, mid)
			prev = mid
		}
	}
	right := &point{x: xr}
	prev.pr, right.pl = right, prev
	nonDensity = append(nonDensity, right)

	e.left, e.right = left, right
	e.count = 2*len(initial) + 1

	for _, q := range nonDensity {
		if err := e.meet(q); err != nil {
			return nil, err
		}
	}
	e.cumulate()
	return e, nil
}

// meet computes q's (x, y) as the intersection of the chords bracketing
// it from the left and right, per apop_arms.c's meet(). It returns
// ErrConvexity when the envelope is not log-concave at q and the
// Metropolis correction is disabled.
func (e *Envelope) meet(q *point) error {
	var gl, gr, grl, dl, dr float64
	var haveLeft, haveRight, haveAcross bool

	if q.pl != nil && q.pl.pl != nil && q.pl.pl.pl != nil {
		gl = (q.pl.y - q.pl.pl.pl.y) / (q.pl.x - q.pl.pl.pl.x)
		haveLeft = true
	}
	if q.pr != nil && q.pr.pr != nil && q.pr.pr.pr != nil {
		gr = (q.pr.y - q.pr.pr.pr.y) / (q.pr.x - q.pr.pr.pr.x)
		haveRight = true
	}
	if q.pl != nil && q.pr != nil {
		grl = (q.pr.y - q.pl.y) / (q.pr.x - q.pl.x)
		haveAcross = true
	}

	if haveAcross && haveLeft && gl < grl {
		if !e.doMetro {
			return ErrConvexity
		}
		gl += (1.0 + e.convexity) * (grl - gl)
	}
	if haveAcross && haveRight && gr > grl {
		if !e.doMetro {
			return ErrConvexity
		}
		gr += (1.0 + e.convexity) * (grl - gr)
	}
	if haveLeft && haveAcross {
		dr = (gl - grl) * (q.pr.x - q.pl.x)
		if dr < yEPS {
			dr = yEPS
		}
	}
	if haveRight && haveAcross {
		dl = (grl - gr) * (q.pr.x - q.pl.x)
		if dl < yEPS {
			dl = yEPS
		}
	}

	switch {
	case haveLeft && haveRight && haveAcross:
		q.x = (dl*q.pr.x + dr*q.pl.x) / (dl + dr)
		q.y = (dl*q.pr.y + dr*q.pl.y + dl*dr) / (dl + dr)
	case haveLeft && haveAcross:
		q.x = q.pr.x
		q.y = q.pr.y + dr
	case haveRight && haveAcross:
		q.x = q.pl.x
		q.y = q.pl.y + dl
	case haveLeft:
		q.y = q.pl.y + gl*(q.x-q.pl.x)
	case haveRight:
		q.y = q.pr.y - gr*(q.pr.x-q.x)
	default:
		return errors.New("arms: no gradient available on either side of an intersection point")
	}
	return nil
}

// cumulate recomputes every point's exponentiated y and cumulative area
// after an envelope change (spec.md §4.5's invariant).
func (e *Envelope) cumulate() {
	e.ymax = e.left.y
	for q := e.left.pr; q != nil; q = q.pr {
		if q.y > e.ymax {
			e.ymax = q.y
		}
	}
	for q := e.left; q != nil; q = q.pr {
		q.ey = expshift(q.y, e.ymax)
	}
	e.left.cum = 0
	for q := e.left.pr; q != nil; q = q.pr {
		q.cum = q.pl.cum + area(q)
	}
}

// area integrates the exponentiated envelope piece to the left of q.
func area(q *point) float64 {
	if q.pl.x == q.x {
		return 0
	}
	if math.Abs(q.y-q.pl.y) < yEPS {
		return 0.5 * (q.ey + q.pl.ey) * (q.x - q.pl.x)
	}
	return (q.ey - q.pl.ey) / (q.y - q.pl.y) * (q.x - q.pl.x)
}

func expshift(y, y0 float64) float64 {
	if y-y0 > -2*yCeil {
		return math.Exp(y - y0 + yCeil)
	}
	return 0
}

func logshift(y, y0 float64) float64 {
	return math.Log(y) + y0 - yCeil
}
