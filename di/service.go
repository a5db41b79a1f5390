package di

import (
	"errors"
	"maps"
	"reflect"
	"strconv"
)

var (
	// ErrNilTarget is returned when an injector runs against a nil service
	// or a service whose Val is nil.
	ErrNilTarget = errors.New("di: nil target service")

	// ErrNilDep is the generic form of a nil dependency. Injecting reports the
	// keyed NilDependencyServiceError instead, which matches it via errors.Is.
	ErrNilDep = errors.New("di: nil dependency service")

	// ErrNilBind is the generic form of a nil bind function. Injecting reports
	// the keyed NilBindError instead, which matches it via errors.Is.
	ErrNilBind = errors.New("di: nil bind function")
)

// DependencyKey names a dependency recorded in a Service's Deps bag and in a
// Registry.
//
//	const KeyCourse di.DependencyKey = "course"
type DependencyKey string

// Key converts a string into a DependencyKey.
func Key(name string) DependencyKey { return DependencyKey(name) }

// DuplicateKeyError is returned when a key is injected twice into the same
// service.
type DuplicateKeyError struct{ Key DependencyKey }

func (e DuplicateKeyError) Error() string {
	return "di: duplicate dependency key " + strconv.Quote(string(e.Key))
}

// MissingDependencyError is returned when a key is not present.
type MissingDependencyError struct{ Key DependencyKey }

func (e MissingDependencyError) Error() string {
	return "di: dependency " + strconv.Quote(string(e.Key)) + " missing"
}

// WrongTypeDependencyError is returned when a key is present but holds a
// value of another type.
type WrongTypeDependencyError struct {
	Key DependencyKey

	// GotType is the dynamic type of the stored value.
	GotType string
}

func (e WrongTypeDependencyError) Error() string {
	return "di: dependency " + strconv.Quote(string(e.Key)) + " has wrong type (" + e.GotType + ")"
}

// NilDependencyServiceError reports a nil dependency for a specific key.
type NilDependencyServiceError struct{ Key DependencyKey }

func (e NilDependencyServiceError) Error() string {
	return "di: nil dependency service for key " + strconv.Quote(string(e.Key))
}

// Is lets errors.Is(err, ErrNilDep) match the keyed form.
func (e NilDependencyServiceError) Is(target error) bool { return target == ErrNilDep }

// NilBindError reports a nil bind function for a specific key.
type NilBindError struct{ Key DependencyKey }

func (e NilBindError) Error() string {
	return "di: nil bind function for key " + strconv.Quote(string(e.Key))
}

// Is lets errors.Is(err, ErrNilBind) match the keyed form.
func (e NilBindError) Is(target error) bool { return target == ErrNilBind }

// Service holds a constructed value plus the dependencies injected into it.
//
// Deps is keyed by DependencyKey and stores the dependency pointers exactly as
// they were bound, so a test can check that a student received the very
// course instance the composition root built.
type Service[T any] struct {
	Val  *T
	Deps map[DependencyKey]any
}

// Init constructs a Service by calling ctor.
func Init[T any](ctor func() *T) *Service[T] {
	return &Service[T]{Val: ctor(), Deps: make(map[DependencyKey]any)}
}

// Wrap adopts an already constructed value.
func Wrap[T any](v *T) *Service[T] {
	return &Service[T]{Val: v, Deps: make(map[DependencyKey]any)}
}

// Value returns the constructed value.
func (s *Service[T]) Value() *T {
	if s == nil {
		return nil
	}
	return s.Val
}

// Injector mutates a Service in place.
type Injector[T any] func(*Service[T]) error

// With applies one injector. A nil injector is a no-op.
func (s *Service[T]) With(inj Injector[T]) (*Service[T], error) {
	if inj == nil {
		return s, nil
	}
	return s, inj(s)
}

// WithAll applies injectors in order and stops at the first error.
func (s *Service[T]) WithAll(injs ...Injector[T]) (*Service[T], error) {
	for _, inj := range injs {
		if _, err := s.With(inj); err != nil {
			return s, err
		}
	}
	return s, nil
}

// Injecting returns an Injector that records dep under key and hands it to
// bind, which attaches it to the target (usually through a setter).
//
//	di.Injecting(KeyCourse, courseSvc, (*student.Student).SetCourse)
func Injecting[T any, D any](key DependencyKey, dep *Service[D], bind func(target *T, dependency *D)) Injector[T] {
	return func(s *Service[T]) error {
		if s == nil || s.Val == nil {
			return ErrNilTarget
		}
		if dep == nil || dep.Val == nil {
			return NilDependencyServiceError{Key: key}
		}
		if bind == nil {
			return NilBindError{Key: key}
		}
		if s.Deps == nil {
			s.Deps = make(map[DependencyKey]any)
		}
		if _, exists := s.Deps[key]; exists {
			return DuplicateKeyError{Key: key}
		}

		s.Deps[key] = dep.Val
		bind(s.Val, dep.Val)
		return nil
	}
}

// Has reports whether a dependency was recorded under key.
func (s *Service[T]) Has(key DependencyKey) bool {
	_, ok := s.GetAny(key)
	return ok
}

// GetAny returns the raw recorded dependency.
func (s *Service[T]) GetAny(key DependencyKey) (any, bool) {
	if s == nil || s.Deps == nil {
		return nil, false
	}
	v, ok := s.Deps[key]
	return v, ok
}

// GetAs returns the dependency under key as *D.
func GetAs[T any, D any](s *Service[T], key DependencyKey) (*D, bool) {
	d, err := TryGetAs[T, D](s, key)
	return d, err == nil
}

// TryGetAs returns the dependency under key as *D, distinguishing a missing
// key from a value of the wrong type.
func TryGetAs[T any, D any](s *Service[T], key DependencyKey) (*D, error) {
	raw, ok := s.GetAny(key)
	if !ok || raw == nil {
		return nil, MissingDependencyError{Key: key}
	}
	d, ok := raw.(*D)
	if !ok {
		return nil, WrongTypeDependencyError{Key: key, GotType: reflect.TypeOf(raw).String()}
	}
	return d, nil
}

// MustGetAs is TryGetAs that panics on error.
func MustGetAs[T any, D any](s *Service[T], key DependencyKey) *D {
	d, err := TryGetAs[T, D](s, key)
	if err != nil {
		panic(err)
	}
	return d
}

// Clone returns a copy that shares Val but owns its Deps map, so further
// wiring on the clone does not leak into the original.
func (s *Service[T]) Clone() *Service[T] {
	if s == nil {
		return nil
	}
	cp := &Service[T]{Val: s.Val, Deps: make(map[DependencyKey]any, len(s.Deps))}
	maps.Copy(cp.Deps, s.Deps)
	return cp
}
