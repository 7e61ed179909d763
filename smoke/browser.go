package smoke

import (
	"context"
	"fmt"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"github.com/vcrobe/visiq/config"
	"github.com/vcrobe/visiq/logging"
)

const viewportWidth = 1280

// Run opens url in a browser launched by rod and runs the reveal checks.
func Run(ctx context.Context, cfg config.Smoke, url string, targets Targets) (Report, error) {
	report := Report{URL: url}
	log := logging.Component("smoke")

	ctx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	l := launcher.New().Headless(cfg.Headless).Context(ctx)
	controlURL, err := l.Launch()
	if err != nil {
		return report, fmt.Errorf("launch browser: %w", err)
	}
	defer l.Cleanup()

	browser := rod.New().ControlURL(controlURL).Context(ctx)
	if err := browser.Connect(); err != nil {
		return report, fmt.Errorf("connect to browser: %w", err)
	}
	defer browser.Close()

	p, err := browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return report, fmt.Errorf("create page: %w", err)
	}
	if err := (proto.EmulationSetDeviceMetricsOverride{
		Width:             viewportWidth,
		Height:            cfg.ViewportHeight,
		DeviceScaleFactor: 1,
	}).Call(p); err != nil {
		return report, fmt.Errorf("set viewport: %w", err)
	}

	log.Info().Str("url", url).Int("viewport_height", cfg.ViewportHeight).Msg("opening")
	if err := p.Navigate(url); err != nil {
		return report, fmt.Errorf("navigate %s: %w", url, err)
	}
	if err := p.WaitLoad(); err != nil {
		return report, fmt.Errorf("wait load: %w", err)
	}

	err = check(ctx, &rodPage{page: p}, targets, &report)
	return report, err
}

// rodPage drives a rod page.
type rodPage struct {
	page *rod.Page
}

func (r *rodPage) element(ctx context.Context, block string) (*rod.Element, error) {
	return r.page.Context(ctx).Element(selector(block))
}

func (r *rodPage) WaitReady(ctx context.Context) error {
	_, err := r.page.Context(ctx).Element("#app[data-ready]")
	return err
}

func (r *rodPage) State(ctx context.Context, block string) (string, error) {
	el, err := r.element(ctx, block)
	if err != nil {
		return "", err
	}
	v, err := el.Attribute("data-reveal")
	if err != nil {
		return "", err
	}
	if v == nil {
		return "", nil
	}
	return *v, nil
}

func (r *rodPage) WaitState(ctx context.Context, block, want string) error {
	el, err := r.element(ctx, block)
	if err != nil {
		return err
	}
	return el.Wait(rod.Eval(`(want) => this.dataset.reveal === want`, want))
}

func (r *rodPage) ScrollTo(ctx context.Context, block string) error {
	el, err := r.element(ctx, block)
	if err != nil {
		return err
	}
	return el.ScrollIntoView()
}

func (r *rodPage) WaitOpacity(ctx context.Context, block, want string) error {
	el, err := r.element(ctx, block)
	if err != nil {
		return err
	}
	return el.Wait(rod.Eval(`(want) => getComputedStyle(this).opacity === want`, want))
}

func (r *rodPage) TransitionDelay(ctx context.Context, block string) (time.Duration, error) {
	el, err := r.element(ctx, block)
	if err != nil {
		return 0, err
	}
	res, err := el.Eval(`() => getComputedStyle(this).transitionDelay`)
	if err != nil {
		return 0, err
	}
	return parseDelay(res.Value.Str())
}
