package visibility

import (
	"runtime"
	"sync"
	"time"

	"github.com/litescript/ls-launchview/internal/astro"
	"github.com/litescript/ls-launchview/internal/launch"
	"github.com/litescript/ls-launchview/internal/trajectory"
	"github.com/litescript/ls-launchview/internal/tz"
)

// Assessment carries a verdict together with the intermediate values that
// produced it, for reports and the UI.
type Assessment struct {
	Record       launch.Record
	Offset       tz.Offset
	LocalTime    time.Time // launch time on the site's civil clock
	ElevationDeg float64   // sun elevation at launch
	Trajectory   trajectory.Mapping
	Sunrise      time.Time // UTC, zero if unknown
	Sunset       time.Time // UTC, zero if unknown
	Result       Result
}

// Evaluator wires the time branch and trajectory branch together. It is
// safe for concurrent use; the only shared state is the resolver's
// per-year cache.
type Evaluator struct {
	zones  *tz.Resolver
	solar  *astro.SolarCalculator
	mapper *trajectory.Mapper
}

// EvaluatorOption configures an Evaluator.
type EvaluatorOption func(*Evaluator)

// WithResolver shares an existing offset resolver.
func WithResolver(r *tz.Resolver) EvaluatorOption {
	return func(e *Evaluator) {
		e.zones = r
	}
}

// WithMapper sets a custom trajectory mapper.
func WithMapper(m *trajectory.Mapper) EvaluatorOption {
	return func(e *Evaluator) {
		e.mapper = m
	}
}

// NewEvaluator creates an evaluator for the fixed observing site.
func NewEvaluator(opts ...EvaluatorOption) *Evaluator {
	e := &Evaluator{}
	for _, opt := range opts {
		opt(e)
	}

	if e.zones == nil {
		e.zones = tz.NewResolver()
	}
	if e.mapper == nil {
		e.mapper = trajectory.DefaultMapper()
	}
	e.solar = astro.NewSolarCalculator(e.zones)

	return e
}

// Resolver returns the evaluator's offset resolver.
func (e *Evaluator) Resolver() *tz.Resolver {
	return e.zones
}

// Evaluate returns the verdict for one launch. Records without a launch time
// fail with launch.ErrInvalidInput and no result.
func (e *Evaluator) Evaluate(rec launch.Record) (Result, error) {
	a, err := e.Assess(rec)
	if err != nil {
		return Result{}, err
	}
	return a.Result, nil
}

// Assess is Evaluate plus the intermediate values.
func (e *Evaluator) Assess(rec launch.Record) (Assessment, error) {
	if err := rec.Validate(); err != nil {
		return Assessment{}, err
	}

	instant := rec.Instant()

	// Time branch
	offset := e.zones.Resolve(instant)
	elevation := e.solar.SiteElevation(instant)
	level := astro.ClassifyTwilight(elevation)

	// Trajectory branch
	mapping := e.mapper.Map(rec)

	rise, set := e.solar.SunTimes(instant)

	return Assessment{
		Record:       rec,
		Offset:       offset,
		LocalTime:    offset.Local(instant),
		ElevationDeg: elevation,
		Trajectory:   mapping,
		Sunrise:      rise,
		Sunset:       set,
		Result:       Combine(level, mapping.Direction),
	}, nil
}

// Outcome is one entry of a batch evaluation.
type Outcome struct {
	Assessment Assessment
	Err        error
}

// evalJob is a unit of work for the batch workers.
type evalJob struct {
	idx int
	rec launch.Record
}

// EvaluateAll assesses records in parallel. Outcomes are returned in input
// order; a failing record does not affect the others.
func (e *Evaluator) EvaluateAll(records []launch.Record) []Outcome {
	if len(records) == 0 {
		return nil
	}

	workers := runtime.GOMAXPROCS(0)
	if workers > len(records) {
		workers = len(records)
	}

	outcomes := make([]Outcome, len(records))
	jobs := make(chan evalJob, workers*2)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobs {
				a, err := e.Assess(job.rec)
				// Each index is written by exactly one worker.
				outcomes[job.idx] = Outcome{Assessment: a, Err: err}
			}
		}()
	}

	for i, rec := range records {
		jobs <- evalJob{idx: i, rec: rec}
	}
	close(jobs)
	wg.Wait()

	return outcomes
}
