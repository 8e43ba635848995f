// Package drill keeps the ordered set of demonstrations and runs them one after another.
package drill

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"prepkit/internal/console"
)

var (
	// ErrUnknownDrill is returned when a requested name is not registered.
	ErrUnknownDrill = errors.New("unknown drill")
	// ErrDuplicateDrill is returned when a name is registered twice.
	ErrDuplicateDrill = errors.New("drill already registered")
)

// Drill is one self-contained demonstration.
type Drill struct {
	Name    string
	Summary string
	// Extra drills run only when asked for by name.
	Extra bool
	Run   func(ctx context.Context, p *console.Printer) error
}

// Registry keeps drills in registration order.
type Registry struct {
	drills []Drill
	index  map[string]int
}

// NewRegistry returns an empty registry; Standard fills one with the built-in drills.
func NewRegistry() *Registry {
	return &Registry{index: make(map[string]int)}
}

// Register appends d. Names must be unique and non-empty.
func (r *Registry) Register(d Drill) error {
	if d.Name == "" || d.Run == nil {
		return errors.New("drill needs a name and a run function")
	}
	if _, ok := r.index[d.Name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateDrill, d.Name)
	}
	r.index[d.Name] = len(r.drills)
	r.drills = append(r.drills, d)
	return nil
}

// Lookup finds a drill by name.
func (r *Registry) Lookup(name string) (Drill, bool) {
	i, ok := r.index[name]
	if !ok {
		return Drill{}, false
	}
	return r.drills[i], true
}

// All returns every drill, extras included, in registration order.
func (r *Registry) All() []Drill {
	out := make([]Drill, len(r.drills))
	copy(out, r.drills)
	return out
}

// Select resolves names to drills. No names means every non-extra drill.
// Any unknown name fails the whole selection.
func (r *Registry) Select(names []string) ([]Drill, error) {
	if len(names) == 0 {
		var out []Drill
		for _, d := range r.drills {
			if !d.Extra {
				out = append(out, d)
			}
		}
		return out, nil
	}
	out := make([]Drill, 0, len(names))
	for _, name := range names {
		d, ok := r.Lookup(name)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownDrill, name)
		}
		out = append(out, d)
	}
	return out, nil
}

// Runner executes drills sequentially against a single printer.
type Runner struct {
	registry *Registry
	printer  *console.Printer
	logger   *zap.Logger
}

// NewRunner accepts a nil logger for quiet callers such as tests.
func NewRunner(registry *Registry, printer *console.Printer, logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{registry: registry, printer: printer, logger: logger}
}

// Run executes the named drills, or the default set when names is empty.
// Nothing runs if any name is unknown.
func (r *Runner) Run(ctx context.Context, names ...string) error {
	drills, err := r.registry.Select(names)
	if err != nil {
		return err
	}

	for _, d := range drills {
		if err := ctx.Err(); err != nil {
			return err
		}
		r.logger.Debug("Running drill", zap.String("drill", d.Name))
		if err := d.Run(ctx, r.printer.ForDrill(d.Name)); err != nil {
			return fmt.Errorf("drill %s: %w", d.Name, err)
		}
		if err := r.printer.Err(); err != nil {
			return fmt.Errorf("write output for drill %s: %w", d.Name, err)
		}
	}
	r.logger.Debug("Drills finished", zap.Int("count", len(drills)))
	return nil
}
