// Package location provides the geographic position used to compute the
// solar elevation. Sources are tried in order until one yields a location.
package location

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/saaga0h/nightshift/internal/shift"
)

// ErrNoLocation is returned by a source that has not received a location yet
var ErrNoLocation = errors.New("no location available")

// Source supplies the current location
type Source interface {
	Init() error
	Start(ctx context.Context) error
	Location(ctx context.Context) (shift.Location, error)
	SetOption(key, value string) error
	Name() string
	Close() error
}

// Waiter is implemented by sources whose location arrives asynchronously
type Waiter interface {
	// Wait blocks until a location is available or ctx ends
	Wait(ctx context.Context) (shift.Location, error)
}

// SourceError reports that no location could be obtained
type SourceError struct {
	Source string
	Err    error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("location source %s: %v", e.Source, e.Err)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

// Resolve starts each source in turn and returns the first valid location
// together with the name of the source that provided it. Asynchronous
// sources get up to wait to deliver. When every source fails the returned
// *SourceError names all of them and wraps their errors.
func Resolve(ctx context.Context, wait time.Duration, sources ...Source) (shift.Location, string, error) {
	if len(sources) == 0 {
		return shift.Location{}, "", &SourceError{Source: "none", Err: errors.New("no location sources configured")}
	}

	var (
		names []string
		errs  []error
	)
	for _, src := range sources {
		loc, err := resolveOne(ctx, wait, src)
		if err == nil {
			return loc, src.Name(), nil
		}
		names = append(names, src.Name())
		errs = append(errs, fmt.Errorf("%s: %w", src.Name(), err))

		if ctx.Err() != nil {
			break
		}
	}

	return shift.Location{}, "", &SourceError{Source: strings.Join(names, ","), Err: errors.Join(errs...)}
}

func resolveOne(ctx context.Context, wait time.Duration, src Source) (shift.Location, error) {
	if err := src.Init(); err != nil {
		return shift.Location{}, fmt.Errorf("init: %w", err)
	}
	if err := src.Start(ctx); err != nil {
		return shift.Location{}, fmt.Errorf("start: %w", err)
	}

	var (
		loc shift.Location
		err error
	)
	if w, ok := src.(Waiter); ok {
		waitCtx, cancel := context.WithTimeout(ctx, wait)
		loc, err = w.Wait(waitCtx)
		cancel()
	} else {
		loc, err = src.Location(ctx)
	}
	if err != nil {
		return shift.Location{}, err
	}

	if err := loc.Validate(); err != nil {
		return shift.Location{}, err
	}
	return loc, nil
}
