// Package binder drives the chapter pipeline: it fetches chapter pages
// one at a time, extracts their content, and bundles the results into
// numbered groups for the output writer.
package binder

import (
	"context"
	"fmt"
	"time"

	"github.com/avhrem/novelbind/internal/chapters"
	"github.com/avhrem/novelbind/internal/providers"
	"github.com/avhrem/novelbind/internal/ui"
)

// Logger is the slice of the ui logger the binder needs.
type Logger interface {
	Debugf(format string, args ...any)
	Warnf(format string, args ...any)
}

// Binder fetches chapters strictly sequentially. The throttle delay
// before every outbound request is a rate-limiting contract toward the
// source site, not a tuning knob: do not parallelize this loop.
type Binder struct {
	resolver   providers.Resolver
	log        Logger
	throttle   time.Duration
	skipBroken bool

	// sleep is swappable so tests do not wait out the throttle.
	sleep func(time.Duration)
}

func New(resolver providers.Resolver, throttle time.Duration, skipBroken bool, log Logger) *Binder {
	return &Binder{
		resolver:   resolver,
		log:        log,
		throttle:   throttle,
		skipBroken: skipBroken,
		sleep:      time.Sleep,
	}
}

// FetchAll populates content for every chapter in refs, in order.
// Chapters that already carry content (embedded in the landing page) are
// not fetched again. A failed fetch aborts the run unless skip-broken is
// set, in which case the chapter is dropped with a warning.
func (b *Binder) FetchAll(ctx context.Context, refs []chapters.Chapter, ph *ui.ProgressHandle) ([]chapters.Chapter, int64, error) {
	out := make([]chapters.Chapter, 0, len(refs))
	var bytes int64

	for i, ch := range refs {
		if err := ctx.Err(); err != nil {
			return out, bytes, err
		}

		if !ch.Fetched() {
			b.sleep(b.throttle)

			title, content, err := b.resolver.FetchChapter(ctx, ch.URL)
			if err != nil {
				if b.skipBroken {
					b.log.Warnf("skipping chapter %d (%s): %v\n", i+1, ch.URL, err)
					if ph != nil {
						ph.Update(i+1, len(refs), bytes)
					}
					continue
				}
				return out, bytes, fmt.Errorf("fetching chapter %d: %w", i+1, err)
			}

			// The page's own title wins over the list-derived name.
			if title != "" {
				ch.Title = title
			}
			ch.Content = content
		}

		bytes += int64(len(ch.Content))
		out = append(out, ch)

		if ph != nil {
			ph.Update(i+1, len(refs), bytes)
		}
	}

	return out, bytes, nil
}

// Bind partitions fetched chapters into output groups.
func (b *Binder) Bind(all []chapters.Chapter, groupSize, startNumber int) ([]chapters.Group, error) {
	groups, err := chapters.Paginate(all, groupSize, startNumber)
	if err != nil {
		return nil, err
	}

	b.log.Debugf("bound %d chapters into %d groups\n", len(all), len(groups))

	return groups, nil
}
