package automation

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"github.com/EEseka/physiquest/internal/engine"
	"github.com/EEseka/physiquest/internal/physics"
	"github.com/EEseka/physiquest/internal/quantity"
)

const (
	memoTTL     = 10 * time.Minute
	memoCleanup = 20 * time.Minute
)

// Runner evaluates scenarios and sweeps on a bounded worker group. Identical
// requests are computed once and served from a memo afterwards.
type Runner struct {
	workers int
	log     *zap.Logger
	memo    *cache.Cache
}

func NewRunner(workers int, log *zap.Logger) *Runner {
	if log == nil {
		log = zap.NewNop()
	}
	return &Runner{
		workers: workers,
		log:     log,
		memo:    cache.New(memoTTL, memoCleanup),
	}
}

// StepResult is the outcome of one scenario step. Err holds the step's own
// failure; it never aborts the other steps.
type StepResult struct {
	Index   int
	Step    Step
	Domain  engine.Domain
	Inputs  quantity.Set
	Summary engine.Summary
	Cached  bool
	Err     error
}

type request struct {
	domain engine.Domain
	inputs quantity.Set
	key    string
}

// Run evaluates every step of sc. Results are in step order.
func (r *Runner) Run(ctx context.Context, sc *Scenario) ([]StepResult, error) {
	results := make([]StepResult, len(sc.Steps))

	var pending []request
	owner := make(map[string]int)
	for i, step := range sc.Steps {
		res := StepResult{Index: i, Step: step}
		d, in, err := step.Request()
		if err != nil {
			res.Err = err
			results[i] = res
			continue
		}
		res.Domain, res.Inputs = d, in

		key := memoKey(d, in)
		if cached, ok := r.memo.Get(key); ok {
			res.Summary, res.Cached = cached.(engine.Summary), true
		} else if _, ok := owner[key]; ok {
			res.Cached = true
		} else {
			owner[key] = len(pending)
			pending = append(pending, request{domain: d, inputs: in, key: key})
		}
		results[i] = res
	}

	r.log.Info("running scenario",
		zap.String("scenario", sc.Name),
		zap.Int("steps", len(sc.Steps)),
		zap.Int("distinct", len(pending)))

	outcomes, err := r.evaluate(ctx, pending)
	if err != nil {
		return results, err
	}

	for i := range results {
		res := &results[i]
		if res.Err != nil || res.Domain == "" {
			continue
		}
		idx, ok := owner[memoKey(res.Domain, res.Inputs)]
		if !ok {
			continue
		}
		o := outcomes[idx]
		if o.Err != nil {
			res.Err = o.Err
			res.Cached = false
			continue
		}
		res.Summary = o.Value
	}

	for _, res := range results {
		if res.Err != nil {
			r.log.Warn("step failed", zap.Int("step", res.Index+1), zap.String("domain", res.Step.Domain), zap.Error(res.Err))
		} else {
			r.log.Debug("step done", zap.Int("step", res.Index+1), zap.String("domain", string(res.Domain)), zap.Bool("cached", res.Cached))
		}
	}
	return results, nil
}

func (r *Runner) evaluate(ctx context.Context, reqs []request) ([]engine.Outcome[engine.Summary], error) {
	return engine.Batch(ctx, r.workers, len(reqs), func(i int) (engine.Summary, error) {
		req := reqs[i]
		s, err := physics.Compute(req.domain, req.inputs)
		if err != nil {
			return engine.Summary{}, err
		}
		r.memo.SetDefault(req.key, s)
		return s, nil
	})
}

// memoKey renders a request canonically: domain, then name=value pairs in
// name order with values in shortest round-trip form.
func memoKey(d engine.Domain, in quantity.Set) string {
	var b strings.Builder
	b.WriteString(string(d))
	for _, name := range in.Names() {
		v, _ := in.Get(name).Get()
		b.WriteByte('|')
		b.WriteString(name)
		b.WriteByte('=')
		b.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
	}
	return b.String()
}
