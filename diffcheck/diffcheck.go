// Package diffcheck measures how often lv.Join reproduces what lv.Evolve
// makes of the already-joined Proto-Kasanic material. The two are not
// expected to agree everywhere; the rate is tracked, not asserted to be zero.
package diffcheck

import (
	"context"
	"fmt"
	"math/rand/v2"
	"slices"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/lauvinko/lauvinko/lv"
	"github.com/lauvinko/lauvinko/pk"
	"github.com/lauvinko/lauvinko/semantics"
)

// Options configures a run.
type Options struct {
	// Samples is the number of random pairs to try.
	Samples int
	// Seed makes runs reproducible. Sample i is drawn from PCG(Seed, i), so
	// the result does not depend on Workers.
	Seed uint64
	// Workers bounds the number of goroutines; values below 1 mean 1.
	Workers int
	// ShowMismatches keeps up to this many mismatching pairs in the report.
	ShowMismatches int
	// Logger receives per-mismatch debug lines and a summary; nil is quiet.
	Logger *zap.Logger
}

// Pair is one comparison.
type Pair struct {
	Index    int
	Left     string
	Right    string
	Accented int
	Context  lv.Context
	// Want is the evolution of the joined form, Got the join of the evolved
	// pieces, both as historical transcriptions.
	Want, Got string
}

// Match reports whether both engines produced the same form.
func (p Pair) Match() bool { return p.Want == p.Got }

func (p Pair) String() string {
	return fmt.Sprintf("%s %d %s %s | want %s | got %s", p.Context.Abbreviation(), p.Accented, p.Left, p.Right, p.Want, p.Got)
}

// Report summarizes a run. Errors counts pairs that either engine rejected;
// they are excluded from Total.
type Report struct {
	Total      int
	Mismatches int
	Errors     int
	Samples    []Pair
}

// Rate is Mismatches / Total, or 0 for an empty run.
func (r Report) Rate() float64 {
	if r.Total == 0 {
		return 0
	}
	return float64(r.Mismatches) / float64(r.Total)
}

// Trial runs one comparison with rng.
func Trial(rng *rand.Rand) (Pair, error) {
	a := pk.RandomMorpheme(rng, semantics.Uninflected)
	b := pk.RandomMorpheme(rng, semantics.Uninflected)
	accented := rng.IntN(2)
	ctx := lv.NonAugmented
	if rng.IntN(2) == 0 {
		ctx = lv.Augmented
	}
	m := Pair{Left: a.Transcription(), Right: b.Transcription(), Accented: accented, Context: ctx}

	joined, err := pk.JoinMorphemes([]pk.Morpheme{a, b}, accented)
	if err != nil {
		return m, err
	}
	want, err := lv.Evolve(joined, ctx)
	if err != nil {
		return m, err
	}

	pieces := make([]lv.Morpheme, 2)
	for i, p := range []pk.Morpheme{a, b} {
		pctx, stress := ctx, 0
		switch {
		case i == accented:
		case i == 0:
			pctx = lv.Prefixed
		default:
			pctx, stress = lv.Augmented, pk.NoStress
		}
		sf, err := p.SurfaceForm(stress)
		if err != nil {
			return m, err
		}
		lsf, err := lv.Evolve(sf, pctx)
		if err != nil {
			return m, err
		}
		pieces[i] = lv.Morpheme{Surface: lsf, Original: sf, Mutation: p.Mutation, Context: pctx}
	}
	got, err := lv.Join(pieces, accented)
	if err != nil {
		return m, err
	}
	m.Want, m.Got = want.HistoricalTranscription(), got.Surface.HistoricalTranscription()
	return m, nil
}

// Run draws opts.Samples pairs across opts.Workers goroutines.
func Run(ctx context.Context, opts Options) (Report, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	workers := max(opts.Workers, 1)

	var (
		mu     sync.Mutex
		report Report
	)
	eg, egCtx := errgroup.WithContext(ctx)
	for w := range workers {
		eg.Go(func() error {
			src := rand.NewPCG(opts.Seed, 0)
			rng := rand.New(src)
			var local Report
			for i := w; i < opts.Samples; i += workers {
				if err := egCtx.Err(); err != nil {
					return err
				}
				src.Seed(opts.Seed, uint64(i))
				m, err := Trial(rng)
				if err != nil {
					local.Errors++
					logger.Debug("pair rejected", zap.Int("index", i), zap.String("left", m.Left),
						zap.String("right", m.Right), zap.Error(err))
					continue
				}
				local.Total++
				if !m.Match() {
					local.Mismatches++
					m.Index = i
					local.Samples = append(local.Samples, m)
					logger.Debug("mismatch", zap.Stringer("pair", m))
				}
			}
			mu.Lock()
			defer mu.Unlock()
			report.Total += local.Total
			report.Mismatches += local.Mismatches
			report.Errors += local.Errors
			report.Samples = append(report.Samples, local.Samples...)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return Report{}, err
	}

	slices.SortFunc(report.Samples, func(a, b Pair) int { return a.Index - b.Index })
	if len(report.Samples) > opts.ShowMismatches {
		report.Samples = report.Samples[:max(opts.ShowMismatches, 0)]
	}
	logger.Info("differential check finished",
		zap.Int("total", report.Total),
		zap.Int("mismatches", report.Mismatches),
		zap.Int("errors", report.Errors),
		zap.Float64("rate", report.Rate()))
	return report, nil
}
