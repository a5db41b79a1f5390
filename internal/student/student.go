// Package student holds the Student value that receives a Course from the
// composition root.
package student

import (
	"fmt"
	"io"
	"strconv"

	"github.com/sghaida/studentdi/internal/course"
)

// NoCourse is shown in place of course details when none was assigned.
const NoCourse = "No course assigned"

// Student references a Course it does not own. The zero value is a usable
// student with an empty name, roll number 0 and no course.
//
// Nothing is validated: empty names and negative roll numbers are accepted.
type Student struct {
	name       string
	rollNumber int
	course     *course.Course
}

// New returns a Student holding c as given. c may be nil.
func New(name string, rollNumber int, c *course.Course) *Student {
	return &Student{name: name, rollNumber: rollNumber, course: c}
}

func (s *Student) Name() string { return s.name }

func (s *Student) SetName(name string) { s.name = name }

func (s *Student) RollNumber() int { return s.rollNumber }

func (s *Student) SetRollNumber(n int) { s.rollNumber = n }

// Course returns the assigned course, or nil.
func (s *Student) Course() *course.Course { return s.course }

func (s *Student) SetCourse(c *course.Course) { s.course = c }

// HasCourse reports whether a course was assigned.
func (s *Student) HasCourse() bool { return s.course != nil }

// CourseDetails returns the course text, or NoCourse.
func (s *Student) CourseDetails() string {
	if s.course == nil {
		return NoCourse
	}
	return s.course.String()
}

// DisplayInfo writes the name, roll number and course details, one per line.
func (s *Student) DisplayInfo(w io.Writer) error {
	_, err := io.WriteString(w,
		"Student Name: "+s.name+"\n"+
			"Roll Number: "+strconv.Itoa(s.rollNumber)+"\n"+
			"Course Details: "+s.CourseDetails()+"\n")
	if err != nil {
		return fmt.Errorf("display student %q: %w", s.name, err)
	}
	return nil
}
