// Command toss-sandbox runs batches of headless tosses and prints the outcome distribution.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/lixenwraith/baebae/config"
	"github.com/lixenwraith/baebae/engine"
	"github.com/lixenwraith/baebae/fate"
	"github.com/lixenwraith/baebae/outcome"
	"github.com/lixenwraith/baebae/physics"
	"github.com/lixenwraith/baebae/status"
	"github.com/lixenwraith/baebae/toss"
)

// frameDelta is the simulated wall time per frame
const frameDelta = 50 * time.Millisecond

// maxFrames bounds one toss well past the controller timeout
const maxFrames = 1000

type report struct {
	Tosses   int
	Counts   map[outcome.Kind]int
	TimedOut int
	Elapsed  time.Duration
	Status   *status.Registry
}

type batchOptions struct {
	N          int
	Seed       uint64
	Identifier string
	Start      time.Time
}

func runBatch(opts batchOptions) (*report, error) {
	clock := engine.NewManualClock(opts.Start)
	reg := status.NewRegistry()
	settings := config.NewSettings(config.Config{Identifier: opts.Identifier, StreakMode: true})

	ctrl, err := toss.NewController(toss.Options{
		Fate:         fate.NewEngine(clock, fate.NewSeededSpirit(opts.Seed)),
		Orchestrator: toss.NewOrchestrator(physics.NewSimWorld(physics.DefaultConfig()), nil, reg),
		Scheduler:    engine.NewScheduler(clock),
		Clock:        clock,
		Settings:     settings,
		Status:       reg,
	})
	if err != nil {
		return nil, err
	}

	r := &report{Counts: make(map[outcome.Kind]int), Status: reg}
	ctrl.OnResult(func(res toss.Result) {
		r.Counts[res.Kind]++
		if res.TimedOut {
			r.TimedOut++
		}
	})

	for i := 0; i < opts.N; i++ {
		if !ctrl.HandleInteraction() {
			return nil, fmt.Errorf("toss %d: trigger rejected in %s", i, ctrl.StateName())
		}
		frames := 0
		for ctrl.State() == toss.StateTossing {
			if frames == maxFrames {
				return nil, fmt.Errorf("toss %d: no conclusion after %d frames", i, maxFrames)
			}
			clock.Advance(frameDelta)
			ctrl.Frame(frameDelta)
			frames++
		}
		r.Tosses++
		// Back to ready
		ctrl.HandleInteraction()
	}
	r.Elapsed = clock.Now().Sub(opts.Start)
	return r, nil
}

func (r *report) print(w io.Writer) {
	fmt.Fprintf(w, "tosses: %s  simulated: %s\n", humanize.Comma(int64(r.Tosses)), r.Elapsed.Round(time.Second))
	for i := len(outcome.Kinds) - 1; i >= 0; i-- {
		k := outcome.Kinds[i]
		n := r.Counts[k]
		pct := 0.0
		if r.Tosses > 0 {
			pct = 100 * float64(n) / float64(r.Tosses)
		}
		fmt.Fprintf(w, "  %-20s %s %8s  %5.1f%%\n", k, outcome.PlayfulText.Lookup(k).Title, humanize.Comma(int64(n)), pct)
	}
	fmt.Fprintf(w, "  timed out: %s\n", humanize.Comma(int64(r.TimedOut)))
	for _, e := range r.Status.Snapshot() {
		fmt.Fprintf(w, "  %-16s %s\n", e.Key, e.Value)
	}
}

// setupLogging keeps controller chatter out of the report unless verbose
func setupLogging(verbose bool, w io.Writer) {
	log.SetFlags(log.Ltime | log.Lmicroseconds)
	if !verbose {
		log.SetOutput(io.Discard)
		return
	}
	log.SetOutput(w)
}

func main() {
	n := flag.Int("n", 200, "number of tosses")
	seed := flag.Uint64("seed", 1, "spirit seed")
	id := flag.String("id", "", "personal identifier, YYYYMMDD")
	start := flag.String("start", "2024-08-25T12:00:00Z", "simulated start time, RFC 3339")
	verbose := flag.Bool("v", false, "log every toss to stderr")
	flag.Parse()
	setupLogging(*verbose, os.Stderr)

	t0, err := time.Parse(time.RFC3339, *start)
	if err != nil {
		fmt.Fprintf(os.Stderr, "start: %v\n", err)
		os.Exit(2)
	}
	if !config.ValidIdentifier(*id) {
		fmt.Fprintf(os.Stderr, "id: %v\n", config.ErrIdentifierFormat)
		os.Exit(2)
	}

	r, err := runBatch(batchOptions{N: *n, Seed: *seed, Identifier: *id, Start: t0})
	if err != nil {
		fmt.Fprintf(os.Stderr, "toss-sandbox: %v\n", err)
		os.Exit(1)
	}
	r.print(os.Stdout)
}
