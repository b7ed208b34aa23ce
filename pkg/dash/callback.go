package dash

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"
)

var (
	ErrCallbackNotFound = errors.New("no callback registered for output")
	ErrDuplicateOutput  = errors.New("output already has a callback")
	ErrMissingInput     = errors.New("missing callback input")
	ErrInvalidOutput    = errors.New("invalid output reference")
	ErrUnknownComponent = errors.New("callback references unknown component")
)

// Dependency addresses one property of one component, e.g. scatter-plot.figure.
type Dependency struct {
	ID       string `json:"id"`
	Property string `json:"property"`
}

func (d Dependency) String() string {
	return d.ID + "." + d.Property
}

// ParseDependency splits "id.property" at the last dot.
func ParseDependency(s string) (Dependency, error) {
	i := strings.LastIndex(s, ".")
	if i <= 0 || i == len(s)-1 {
		return Dependency{}, fmt.Errorf("%w: %q", ErrInvalidOutput, s)
	}
	return Dependency{ID: s[:i], Property: s[i+1:]}, nil
}

// HandlerFunc receives input values in the order the callback declared its inputs.
type HandlerFunc func(ctx context.Context, args []any) (any, error)

type Callback struct {
	Output  Dependency   `json:"output"`
	Inputs  []Dependency `json:"inputs"`
	Handler HandlerFunc  `json:"-"`
}

type InputValue struct {
	ID       string `json:"id" validate:"required"`
	Property string `json:"property" validate:"required"`
	Value    any    `json:"value"`
}

type UpdateRequest struct {
	Output         string       `json:"output" validate:"required"`
	Inputs         []InputValue `json:"inputs" validate:"dive"`
	ChangedPropIDs []string     `json:"changedPropIds,omitempty"`
}

type UpdateResponse struct {
	Response map[string]map[string]any `json:"response"`
}

// Observer is told about every dispatch, successful or not.
type Observer interface {
	Observe(output string, elapsed time.Duration, err error)
}

// Registry maps outputs to callbacks. Callbacks are registered before serving and
// the registry is only read afterwards.
type Registry struct {
	mu        sync.RWMutex
	callbacks map[string]*Callback
	order     []string
	observer  Observer
}

func NewRegistry() *Registry {
	return &Registry{callbacks: make(map[string]*Callback)}
}

func (r *Registry) SetObserver(o Observer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.observer = o
}

func (r *Registry) Register(cb Callback) error {
	if cb.Handler == nil {
		return fmt.Errorf("callback for %s has no handler", cb.Output)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := cb.Output.String()
	if _, exists := r.callbacks[key]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateOutput, key)
	}
	r.callbacks[key] = &cb
	r.order = append(r.order, key)
	return nil
}

// Dependencies lists callbacks in registration order.
func (r *Registry) Dependencies() []Callback {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Callback, 0, len(r.order))
	for _, key := range r.order {
		out = append(out, *r.callbacks[key])
	}
	return out
}

// Validate checks that every registered dependency names a component in layout.
func (r *Registry) Validate(layout *Component) error {
	for _, cb := range r.Dependencies() {
		deps := append([]Dependency{cb.Output}, cb.Inputs...)
		for _, d := range deps {
			if layout.Find(d.ID) == nil {
				return fmt.Errorf("%w: %s", ErrUnknownComponent, d)
			}
		}
	}
	return nil
}

func (r *Registry) Dispatch(ctx context.Context, req UpdateRequest) (*UpdateResponse, error) {
	start := time.Now()
	resp, err := r.dispatch(ctx, req)

	r.mu.RLock()
	observer := r.observer
	r.mu.RUnlock()
	if observer != nil {
		observer.Observe(req.Output, time.Since(start), err)
	}
	return resp, err
}

func (r *Registry) dispatch(ctx context.Context, req UpdateRequest) (*UpdateResponse, error) {
	out, err := ParseDependency(req.Output)
	if err != nil {
		return nil, err
	}

	r.mu.RLock()
	cb, ok := r.callbacks[out.String()]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrCallbackNotFound, out)
	}

	given := make(map[Dependency]any, len(req.Inputs))
	for _, in := range req.Inputs {
		given[Dependency{ID: in.ID, Property: in.Property}] = in.Value
	}

	args := make([]any, len(cb.Inputs))
	for i, dep := range cb.Inputs {
		v, ok := given[dep]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingInput, dep)
		}
		args[i] = v
	}

	value, err := cb.Handler(ctx, args)
	if err != nil {
		return nil, fmt.Errorf("callback %s: %w", out, err)
	}

	return &UpdateResponse{
		Response: map[string]map[string]any{
			out.ID: {out.Property: value},
		},
	}, nil
}
