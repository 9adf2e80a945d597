package arms

import (
	"errors"
	"math"

	"golang.org/x/exp/rand"

	"github.com/halvard/apostat/internal/xlog"
)

// invert samples a working point from cumulative probability prob under
// the current envelope (spec.md §4.5 draw steps 1-2; ported from
// apop_arms.c's invert()).
func (e *Envelope) invert(prob float64) *point {
	q := e.right
	u := prob * q.cum
	for q.pl.cum > u {
		q = q.pl
	}

	p := &point{pl: q.pl, pr: q, cum: u}
	if q.pl.x == q.x {
		p.x, p.y, p.ey = q.x, q.y, q.ey
		return p
	}

	xl, xr := q.pl.x, q.x
	yl, yr := q.pl.y, q.y
	eyl, eyr := q.pl.ey, q.ey
	prop := (u - q.pl.cum) / (q.cum - q.pl.cum)

	if math.Abs(yr-yl) < yEPS {
		if math.Abs(eyr-eyl) > eyEPS*math.Abs(eyr+eyl) {
			p.x = xl + (xr-xl)/(eyr-eyl)*(-eyl+math.Sqrt((1-prop)*eyl*eyl+prop*eyr*eyr))
		} else {
			p.x = xl + (xr-xl)*prop
		}
		p.ey = (p.x-xl)/(xr-xl)*(eyr-eyl) + eyl
		p.y = logshift(p.ey, e.ymax)
	} else {
		p.x = xl + (xr-xl)/(yr-yl)*(-yl+logshift((1-prop)*eyl+prop*eyr, e.ymax))
		p.y = (p.x-xl)/(xr-xl)*(yr-yl) + yl
		p.ey = expshift(p.y, e.ymax)
	}
	return p
}

// test performs the rejection, squeeze and optional Metropolis tests on
// working point p, returning whether it is accepted (spec.md §4.5 draw
// steps 3-5; ported from apop_arms.c's test()).
func (e *Envelope) test(p *point, rng *rand.Rand) (bool, error) {
	u := rng.Float64() * p.ey
	y := logshift(u, e.ymax)

	if !e.doMetro && p.pl.pl != nil && p.pr.pr != nil {
		ql := p.pl
		if !ql.density {
			ql = ql.pl
		}
		qr := p.pr
		if !qr.density {
			qr = qr.pr
		}
		ysqueeze := (qr.y*(p.x-ql.x) + ql.y*(qr.x-p.x)) / (qr.x - ql.x)
		if y <= ysqueeze {
			return true, nil
		}
	}

	ynew := e.h(p.x)
	e.evals++

	if !e.doMetro || y >= ynew {
		p.y = ynew
		p.ey = expshift(p.y, e.ymax)
		p.density = true
		if err := e.insert(p); err != nil {
			return false, err
		}
		return y < ynew, nil
	}

	return e.metropolisStep(p, ynew, rng), nil
}

// metropolisStep takes the Metropolis correction step when the envelope
// rejection test falls through without an outright accept/reject
// decision (apop_arms.c's test(), metropolis branch).
func (e *Envelope) metropolisStep(p *point, ynew float64, rng *rand.Rand) bool {
	yold := e.metroY
	ql := e.left
	for ql.pr.x < e.metroX {
		ql = ql.pr
	}
	qr := ql.pr
	w := (e.metroX - ql.x) / (qr.x - ql.x)
	zold := ql.y + w*(qr.y-ql.y)
	znew := p.y
	if yold < zold {
		zold = yold
	}
	if ynew < znew {
		znew = ynew
	}
	w = ynew - znew - yold + zold
	if w > 0 {
		w = 0
	}
	var accept float64
	if w > -yCeil {
		accept = math.Exp(w)
	}

	if rng.Float64() > accept {
		p.x, p.y = e.metroX, e.metroY
		p.ey = expshift(p.y, e.ymax)
		p.density = true
		p.pl, p.pr = ql, qr
	} else {
		e.metroX, e.metroY = p.x, ynew
	}
	return true
}

// insert incorporates newly-evaluated density point p into the
// envelope, allocating a fresh intersection placeholder and re-running
// meet on the affected neighborhood (spec.md §4.5's "every evaluation
// adds a point to the envelope and re-runs meet/cumulate"; ported from
// apop_arms.c's update()).
func (e *Envelope) insert(p *point) error {
	if e.count > e.npoint-2 {
		return nil
	}

	q := &point{x: p.x, y: p.y, ey: p.ey, density: true}
	m := &point{}
	e.count += 2

	switch {
	case p.pl.density && !p.pr.density:
		m.pl, m.pr = p.pl, q
		q.pl, q.pr = m, p.pr
		m.pl.pr = m
		q.pr.pl = q
	case !p.pl.density && p.pr.density:
		m.pr, m.pl = p.pr, q
		q.pr, q.pl = m, p.pl
		m.pr.pl = m
		q.pl.pr = q
	default:
		return errors.New("arms: unexpected envelope topology during insert")
	}

	ql := q.pl
	if ql.pl != nil {
		ql = ql.pl
	}
	qr := q.pr
	if qr.pr != nil {
		qr = qr.pr
	}
	if q.x < (1-xEPS)*ql.x+xEPS*qr.x {
		q.x = (1-xEPS)*ql.x + xEPS*qr.x
		q.y = e.h(q.x)
		e.evals++
	} else if q.x > xEPS*ql.x+(1-xEPS)*qr.x {
		q.x = xEPS*ql.x + (1-xEPS)*qr.x
		q.y = e.h(q.x)
		e.evals++
	}

	if err := e.meet(q.pl); err != nil {
		return err
	}
	if err := e.meet(q.pr); err != nil {
		return err
	}
	if q.pl.pl != nil && q.pl.pl.pl != nil {
		if err := e.meet(q.pl.pl.pl); err != nil {
			return err
		}
	}
	if q.pr.pr != nil && q.pr.pr.pr != nil {
		if err := e.meet(q.pr.pr.pr); err != nil {
			return err
		}
	}

	e.cumulate()
	return nil
}

// Draw samples one value from the target log-density via adaptive
// rejection metropolis sampling, refining the envelope as it goes.
// After maxRejections consecutive rejections it warns and returns the
// last candidate evaluated (spec.md §4.5's failure path).
func (e *Envelope) Draw(rng *rand.Rand, maxRejections int) (float64, error) {
	var last float64
	for i := 0; i < maxRejections; i++ {
		p := e.invert(rng.Float64())
		last = p.x
		accepted, err := e.test(p, rng)
		if err != nil {
			return 0, err
		}
		if accepted {
			return p.x, nil
		}
	}
	xlog.Logger().Warn().Int("rejections", maxRejections).Msg("arms: exhausted rejection budget, returning last candidate")
	return last, nil
}

// Evaluations returns the number of times the target log-density has
// been evaluated since the envelope was built.
func (e *Envelope) Evaluations() int { return e.evals }
