// Command studentdi builds a Course, injects it into a Student and prints the
// student.
//
// Usage:
//
//	studentdi [-config demo.yaml]
//
// Output on stdout with the built-in defaults:
//
//	====== Part A: Dependency Injection Demo ======
//	Student Name: John Doe
//	Roll Number: 101
//	Course Details: Advanced Java Programming (CSE-501)
//
//	Dependency Injection successful!
//	Course object was automatically injected into Student.
//
// The optional YAML file and ODI_* environment variables override the course,
// student and log settings (see internal/config). Logs go to stderr.
package main
