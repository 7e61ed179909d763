// Package smoke loads the built site in a real browser and checks that
// blocks reveal as they scroll into view.
package smoke

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/vcrobe/visiq/logging"
	"github.com/vcrobe/visiq/reveal"
)

// ErrCheckFailed is wrapped when the page loads but a block misbehaves.
var ErrCheckFailed = errors.New("smoke check failed")

const (
	// settleSlack is added to delay + reveal.Duration before the opacity
	// wait gives up.
	settleSlack = time.Second
	// pollLag covers the time between the flip to shown and the check
	// noticing it.
	pollLag = 250 * time.Millisecond
)

// now is replaced in tests.
var now = time.Now

// Targets are the blocks under test, by reveal id.
type Targets struct {
	// AboveFold is visible on load and must reveal without scrolling.
	AboveFold string
	// BelowFold must stay hidden until scrolled to.
	BelowFold string
}

// DefaultTargets are the first hero block and the final call to action.
var DefaultTargets = Targets{AboveFold: "hero/0", BelowFold: "cta/4"}

// Check is the outcome of one assertion.
type Check struct {
	Name   string
	Block  string
	Want   string
	Got    string
	Passed bool
	Took   time.Duration
}

// Report collects every check that ran.
type Report struct {
	URL    string
	Checks []Check
}

// Passed reports whether every check passed.
func (r Report) Passed() bool {
	for _, c := range r.Checks {
		if !c.Passed {
			return false
		}
	}
	return len(r.Checks) > 0
}

// page is the slice of browser behaviour the checks need.
type page interface {
	// WaitReady blocks until the runtime has mounted.
	WaitReady(ctx context.Context) error
	// State returns the data-reveal value of block.
	State(ctx context.Context, block string) (string, error)
	// WaitState blocks until block's data-reveal equals want.
	WaitState(ctx context.Context, block, want string) error
	// ScrollTo scrolls block into view.
	ScrollTo(ctx context.Context, block string) error
	// WaitOpacity blocks until block's computed opacity equals want.
	WaitOpacity(ctx context.Context, block, want string) error
	// TransitionDelay returns block's computed transition delay.
	TransitionDelay(ctx context.Context, block string) (time.Duration, error)
}

// check runs the reveal assertions against p. It stops at the first
// failure; the report holds everything checked up to then.
func check(ctx context.Context, p page, targets Targets, report *Report) error {
	log := logging.Component("smoke")

	record := func(name, block, want string, fn func() (string, error)) error {
		start := now()
		got, err := fn()
		c := Check{Name: name, Block: block, Want: want, Got: got, Passed: err == nil && got == want, Took: now().Sub(start)}
		report.Checks = append(report.Checks, c)
		log.Info().Str("check", name).Str("block", block).Bool("passed", c.Passed).Dur("took", c.Took).Msg("smoke")
		if err != nil {
			return fmt.Errorf("%w: %s %s: %w", ErrCheckFailed, name, block, err)
		}
		if !c.Passed {
			return fmt.Errorf("%w: %s %s: want %q, got %q", ErrCheckFailed, name, block, want, got)
		}
		return nil
	}
	waitFor := func(block, want string, wait func(context.Context, string, string) error) func() (string, error) {
		return func() (string, error) {
			if err := wait(ctx, block, want); err != nil {
				return "", err
			}
			return want, nil
		}
	}

	var revealedAt time.Time

	steps := []func() error{
		func() error {
			return record("runtime ready", "#app", "ready", func() (string, error) {
				if err := p.WaitReady(ctx); err != nil {
					return "", err
				}
				return "ready", nil
			})
		},
		func() error {
			return record("above fold reveals", targets.AboveFold, reveal.StateShown,
				waitFor(targets.AboveFold, reveal.StateShown, p.WaitState))
		},
		func() error {
			return record("below fold hidden", targets.BelowFold, reveal.StateHidden, func() (string, error) {
				return p.State(ctx, targets.BelowFold)
			})
		},
		func() error {
			return record("below fold reveals on scroll", targets.BelowFold, reveal.StateShown, func() (string, error) {
				if err := p.ScrollTo(ctx, targets.BelowFold); err != nil {
					return "", err
				}
				got, err := waitFor(targets.BelowFold, reveal.StateShown, p.WaitState)()
				revealedAt = now()
				return got, err
			})
		},
		func() error {
			return record("transition settles", targets.BelowFold, "1", func() (string, error) {
				return settle(ctx, p, targets.BelowFold, revealedAt)
			})
		},
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}

// settle waits for block to reach opacity 1 within its transition window
// and reports "instant" if it got there before the transition could have
// finished, which means no transition ran.
func settle(ctx context.Context, p page, block string, revealedAt time.Time) (string, error) {
	delay, err := p.TransitionDelay(ctx, block)
	if err != nil {
		return "", err
	}
	budget := delay + reveal.Duration + settleSlack
	waitCtx, cancel := context.WithTimeout(ctx, revealedAt.Add(budget).Sub(now()))
	defer cancel()
	if err := p.WaitOpacity(waitCtx, block, "1"); err != nil {
		return "", fmt.Errorf("opacity 1 not reached within %s: %w", budget, err)
	}
	if !reveal.Settled(delay, now().Sub(revealedAt)+pollLag) {
		return "instant", nil
	}
	return "1", nil
}

// parseDelay reads the first entry of a computed transition-delay list
// such as "0.4s, 0.4s".
func parseDelay(raw string) (time.Duration, error) {
	first, _, _ := strings.Cut(raw, ",")
	first = strings.TrimSpace(first)
	if first == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(first)
	if err != nil {
		return 0, fmt.Errorf("transition delay %q: %w", raw, err)
	}
	return d, nil
}

func selector(block string) string {
	return fmt.Sprintf("[%s=%q]", reveal.AttrID, block)
}
