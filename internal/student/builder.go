package student

import (
	"errors"

	"github.com/sghaida/studentdi/internal/course"
)

// ErrMissingCourse is returned by Build when InjectCourse was never called.
var ErrMissingCourse = errors.New("student builder not wired: missing required dep Course")

// Builder assembles a Student incrementally. Name and roll number are
// optional; the course is required and must be injected before Build.
//
//	s, err := student.NewBuilder().
//		Name("John Doe").
//		RollNumber(101).
//		InjectCourse(c).
//		Build()
type Builder struct {
	svc       *Student
	hasCourse bool
}

func NewBuilder() *Builder {
	return &Builder{svc: &Student{}}
}

func (b *Builder) Name(name string) *Builder {
	b.svc.SetName(name)
	return b
}

func (b *Builder) RollNumber(n int) *Builder {
	b.svc.SetRollNumber(n)
	return b
}

// InjectCourse sets the required course. A nil course does not count as
// wired.
func (b *Builder) InjectCourse(c *course.Course) *Builder {
	b.svc.SetCourse(c)
	b.hasCourse = c != nil
	return b
}

// Inject runs fn against the underlying Student for custom wiring.
func (b *Builder) Inject(fn func(*Student)) *Builder {
	if fn != nil {
		fn(b.svc)
		b.hasCourse = b.svc.HasCourse()
	}
	return b
}

func (b *Builder) Build() (*Student, error) {
	if !b.hasCourse {
		return nil, ErrMissingCourse
	}
	return b.svc, nil
}

func (b *Builder) MustBuild() *Student {
	s, err := b.Build()
	if err != nil {
		panic(err)
	}
	return s
}
