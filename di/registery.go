package di

import (
	"errors"
	"fmt"
	"slices"
)

// ErrRegistryPanic is returned when a factory panics during Resolve.
var ErrRegistryPanic = errors.New("registry: panic during Resolve")

// ErrNilFactory is returned when Resolve finds a key registered with a nil
// factory.
var ErrNilFactory = errors.New("registry: nil factory")

// Factory builds a dependency from the configuration handed to Resolve.
type Factory func(cfg any) (any, error)

// Registry maps dependency keys to factories. It is the manual replacement
// for a container's lookup-by-type: the composition root registers how each
// piece is built, then resolves pieces explicitly in dependency order.
//
// Every Resolve calls the factory again, so two resolutions never share state
// unless the factory closes over it.
type Registry struct {
	factories map[DependencyKey]Factory
}

func NewRegistry() *Registry {
	return &Registry{factories: map[DependencyKey]Factory{}}
}

// Provide registers f under key, replacing any previous factory, and returns
// the registry for chaining.
func (r *Registry) Provide(key DependencyKey, f Factory) *Registry {
	r.factories[key] = f
	return r
}

// ProvideValue registers a factory that always returns v.
func (r *Registry) ProvideValue(key DependencyKey, v any) *Registry {
	return r.Provide(key, func(any) (any, error) { return v, nil })
}

// Keys returns the registered keys in sorted order.
func (r *Registry) Keys() []DependencyKey {
	keys := make([]DependencyKey, 0, len(r.factories))
	for k := range r.factories {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Resolve runs the factory registered under key. ok is false when nothing is
// registered. Factory panics come back as errors wrapping ErrRegistryPanic.
func (r *Registry) Resolve(cfg any, key DependencyKey) (val any, ok bool, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			val, ok = nil, false
			err = fmt.Errorf("%w: %v", ErrRegistryPanic, rec)
		}
	}()

	f, ok := r.factories[key]
	if !ok {
		return nil, false, nil
	}
	if f == nil {
		return nil, true, fmt.Errorf("%w for key %q", ErrNilFactory, key)
	}
	v, err := f(cfg)
	if err != nil {
		return nil, true, fmt.Errorf("registry: resolve %q: %w", key, err)
	}
	return v, true, nil
}

// MustGet resolves key with a nil config or panics.
func (r *Registry) MustGet(key DependencyKey) any {
	v, ok, err := r.Resolve(nil, key)
	if err != nil {
		panic(err)
	}
	if !ok {
		panic(fmt.Errorf("di: registry missing key %q", key))
	}
	return v
}

// ResolveAs resolves key and wraps the result in a Service, ready to be
// injected elsewhere or to receive injections itself.
//
// The factory must return *T; anything else is a WrongTypeDependencyError.
// An unregistered key is a MissingDependencyError.
func ResolveAs[T any](r *Registry, cfg any, key DependencyKey) (*Service[T], error) {
	raw, ok, err := r.Resolve(cfg, key)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, MissingDependencyError{Key: key}
	}
	v, ok := raw.(*T)
	if !ok {
		return nil, WrongTypeDependencyError{Key: key, GotType: fmt.Sprintf("%T", raw)}
	}
	if v == nil {
		return nil, NilDependencyServiceError{Key: key}
	}
	return Wrap(v), nil
}
