// Package bootstrap is the composition root: it builds the Course, injects it
// into the Student and prints the result.
package bootstrap

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/sghaida/studentdi/di"
	"github.com/sghaida/studentdi/internal/config"
	"github.com/sghaida/studentdi/internal/course"
	"github.com/sghaida/studentdi/internal/student"
)

const (
	KeyCourse  di.DependencyKey = "course"
	KeyStudent di.DependencyKey = "student"
)

const (
	Banner       = "====== Part A: Dependency Injection Demo ======"
	SuccessLine  = "Dependency Injection successful!"
	InjectedLine = "Course object was automatically injected into Student."
)

// Graph is the wired object graph.
type Graph struct {
	Course  *di.Service[course.Course]
	Student *di.Service[student.Student]
}

// NewRegistry registers the course and student factories. Both read their
// literals from the config.Config passed to Resolve. The student factory
// leaves the course unset; Wire injects it.
func NewRegistry() *di.Registry {
	return di.NewRegistry().
		Provide(KeyCourse, func(cfg any) (any, error) {
			c, err := asConfig(cfg)
			if err != nil {
				return nil, err
			}
			crs := course.New(c.Course.Title, c.Course.Code)
			return &crs, nil
		}).
		Provide(KeyStudent, func(cfg any) (any, error) {
			c, err := asConfig(cfg)
			if err != nil {
				return nil, err
			}
			return student.New(c.Student.Name, c.Student.RollNumber, nil), nil
		})
}

func asConfig(cfg any) (config.Config, error) {
	c, ok := cfg.(config.Config)
	if !ok {
		return config.Config{}, fmt.Errorf("bootstrap: want config.Config, got %T", cfg)
	}
	return c, nil
}

// Wire builds a fresh graph from reg. Nothing is cached between calls.
func Wire(reg *di.Registry, cfg config.Config, log zerolog.Logger) (*Graph, error) {
	courseSvc, err := di.ResolveAs[course.Course](reg, cfg, KeyCourse)
	if err != nil {
		return nil, fmt.Errorf("resolve course: %w", err)
	}
	log.Debug().Str("key", string(KeyCourse)).Stringer("course", courseSvc.Value()).Msg("resolved")

	studentSvc, err := di.ResolveAs[student.Student](reg, cfg, KeyStudent)
	if err != nil {
		return nil, fmt.Errorf("resolve student: %w", err)
	}
	log.Debug().Str("key", string(KeyStudent)).Str("name", studentSvc.Value().Name()).Msg("resolved")

	if _, err := studentSvc.With(di.Injecting(KeyCourse, courseSvc, (*student.Student).SetCourse)); err != nil {
		return nil, fmt.Errorf("inject course into student: %w", err)
	}
	log.Debug().Str("target", string(KeyStudent)).Str("dep", string(KeyCourse)).Msg("injected")

	return &Graph{Course: courseSvc, Student: studentSvc}, nil
}

// Run wires a fresh graph and writes the demo text to w.
func Run(w io.Writer, cfg config.Config, log zerolog.Logger) error {
	g, err := Wire(NewRegistry(), cfg, log)
	if err != nil {
		return err
	}
	if err := Print(w, g.Student.Value()); err != nil {
		return err
	}
	log.Info().Str("student", g.Student.Value().Name()).Msg("demo complete")
	return nil
}

// Print writes the banner, the student's info and the confirmation lines.
func Print(w io.Writer, s *student.Student) error {
	if _, err := fmt.Fprintln(w, Banner); err != nil {
		return fmt.Errorf("write banner: %w", err)
	}
	if err := s.DisplayInfo(w); err != nil {
		return err
	}
	if _, err := fmt.Fprint(w, "\n"+SuccessLine+"\n"+InjectedLine+"\n"); err != nil {
		return fmt.Errorf("write confirmation: %w", err)
	}
	return nil
}
