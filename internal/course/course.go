// Package course holds the Course value injected into students.
package course

// Course is an immutable title/code pair. The code is an identifier by
// convention only; it is neither validated nor checked for uniqueness.
type Course struct {
	title string
	code  string
}

// New returns a Course. Values are stored as given.
func New(title, code string) Course {
	return Course{title: title, code: code}
}

func (c Course) Title() string { return c.title }

func (c Course) Code() string { return c.code }

// String renders "<title> (<code>)".
func (c Course) String() string {
	return c.title + " (" + c.code + ")"
}
