package di_test

import (
	"testing"

	"github.com/sghaida/studentdi/di"
)

func BenchmarkInit(b *testing.B) {
	for b.Loop() {
		_ = newEnrollment()
	}
}

func BenchmarkWith_SingleDependency(b *testing.B) {
	c := di.Init(func() *campus { return &campus{Name: "north"} })
	inj := di.Injecting(campusKey, c, (*enrollment).SetCampus)

	for b.Loop() {
		_, _ = newEnrollment().With(inj)
	}
}

func BenchmarkWithAll_TwoDependencies(b *testing.B) {
	c := di.Init(func() *campus { return &campus{Name: "north"} })
	a := di.Init(func() *advisor { return &advisor{Name: "Dr. Lee"} })
	injs := []di.Injector[enrollment]{
		di.Injecting(campusKey, c, (*enrollment).SetCampus),
		di.Injecting(advisorKey, a, (*enrollment).SetAdvisor),
	}

	for b.Loop() {
		_, _ = newEnrollment().WithAll(injs...)
	}
}

func BenchmarkTryGetAs_Missing(b *testing.B) {
	e := newEnrollment()

	for b.Loop() {
		_, _ = di.TryGetAs[enrollment, campus](e, campusKey)
	}
}

func BenchmarkRegistry_ResolveAs(b *testing.B) {
	reg := di.NewRegistry().Provide(campusKey, func(any) (any, error) { return &campus{Name: "north"}, nil })

	for b.Loop() {
		_, _ = di.ResolveAs[campus](reg, nil, campusKey)
	}
}
