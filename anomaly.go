package keplerian

import (
	"fmt"
	"math"
	"sync"
)

/* Time propagation: mean anomaly → eccentric anomaly → true anomaly → position. */

// MeanAnomalyAt returns the mean anomaly at the given simulation tick,
// reduced to [0, 2π). The reduction is fraction-of-revolution based,
// M = 2π·(M − floor(M)), and deliberately kept that way.
func (b *OrbitalBody) MeanAnomalyAt(tick float64) (float64, error) {
	if !b.epochSet {
		return 0, fmt.Errorf("epoch not set on %s", b.Name)
	}
	n, err := b.ScalarAttribute(AttrN)
	if err != nil {
		return 0, err
	}
	M := b.Mt + n*(tick-b.epoch)
	return 2 * math.Pi * (M - math.Floor(M)), nil
}

// EccentricAnomalyAt solves Kepler's equation at the given simulation tick.
// Non convergence is logged and reported through the result; the last iterate
// is still returned.
func (b *OrbitalBody) EccentricAnomalyAt(tick float64) (KeplerResult, error) {
	M, err := b.MeanAnomalyAt(tick)
	if err != nil {
		return KeplerResult{}, err
	}
	ecc, err := b.ScalarAttribute(AttrEcc)
	if err != nil {
		return KeplerResult{}, err
	}
	rslt := SolveKepler(M, ecc)
	if !rslt.Converged {
		b.logger.Log("level", "warning", "subsys", "kepler", "status", "no convergence", "M", M, "ecc", ecc, "residual", rslt.Residual, "iterations", rslt.Iterations)
	}
	return rslt, nil
}

// TrueAnomalyAt returns the true anomaly at the given simulation tick as a
// half-revolution-normalized fraction (the atan2 result divided by π).
func (b *OrbitalBody) TrueAnomalyAt(tick float64) (float64, error) {
	rslt, err := b.EccentricAnomalyAt(tick)
	if err != nil {
		return 0, err
	}
	ecc := b.scalar(AttrEcc)
	sinE, cosE := math.Sincos(rslt.E)
	return math.Atan2(math.Sqrt(1-ecc*ecc)*sinE, cosE-ecc) / math.Pi, nil
}

// PositionAt reconstructs the inertial position vector at the given
// simulation tick from the eccentric anomaly, through the perifocal frame:
// (a·(cos E − ecc), b·sin E, 0) rotated by the argument of periapsis.
func (b *OrbitalBody) PositionAt(tick float64) ([]float64, error) {
	rslt, err := b.EccentricAnomalyAt(tick)
	if err != nil {
		return nil, err
	}
	if err = b.require(AttrA, AttrB, AttrEcc, Attrω); err != nil {
		return nil, err
	}
	a := b.scalar(AttrA)
	semib := b.scalar(AttrB)
	ecc := b.scalar(AttrEcc)
	ω := b.scalar(Attrω)
	sinE, cosE := math.Sincos(rslt.E)
	pqw := []float64{a * (cosE - ecc), semib * sinE, 0}
	return PQW2Inertial(ω, pqw), nil
}

// State is a propagated sample of the anomaly pipeline.
type State struct {
	Tick     float64
	M, E, Nu float64
	R        []float64
}

// Propagation drives the anomaly pipeline over a range of simulation ticks.
type Propagation struct {
	Body        *OrbitalBody
	Start, Step float64
	Ticks       int
	histChan    chan<- State
	wg          sync.WaitGroup
}

// NewPropagation returns a propagation of the given body. If the export
// configuration is useless, no output is written.
func NewPropagation(b *OrbitalBody, start, step float64, ticks int, conf ExportConfig) *Propagation {
	p := &Propagation{Body: b, Start: start, Step: step, Ticks: ticks}
	if !conf.IsUseless() {
		histChan := make(chan State, 1000) // a 1k entry buffer
		p.histChan = histChan
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			StreamStates(conf, histChan)
		}()
	}
	return p
}

// Propagate runs the pipeline for every tick and returns the final state.
// It is blocking, and does not return until all output files are written.
func (p *Propagation) Propagate() (State, error) {
	b := p.Body
	b.logger.Log("level", "info", "subsys", "astro", "status", "starting", "ticks", p.Ticks, "step", p.Step)
	defer func() {
		if p.histChan != nil {
			close(p.histChan)
		}
		p.wg.Wait() // Don't return until we're done writing all the files.
	}()
	var last State
	for i := 0; i <= p.Ticks; i++ {
		tick := p.Start + float64(i)*p.Step
		M, err := b.MeanAnomalyAt(tick)
		if err != nil {
			return last, err
		}
		rslt, err := b.EccentricAnomalyAt(tick)
		if err != nil {
			return last, err
		}
		ν, err := b.TrueAnomalyAt(tick)
		if err != nil {
			return last, err
		}
		R, err := b.PositionAt(tick)
		if err != nil {
			return last, err
		}
		last = State{tick, M, rslt.E, ν, R}
		if p.histChan != nil {
			p.histChan <- last
		}
	}
	b.logger.Log("level", "notice", "subsys", "astro", "status", "finished", "tick", last.Tick, "M", last.M, "E", last.E)
	return last, nil
}
