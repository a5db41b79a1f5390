// Package studentdi demonstrates explicit dependency injection: a Course is
// built once and handed to a Student by a composition root, then printed.
//
// Layout:
//   - di: reflection-free wiring helpers (Service, Injecting, Registry)
//   - internal/course, internal/student: the value types being wired
//   - internal/bootstrap: the composition root
//   - internal/config, internal/logger: configuration and structured logging
//   - cmd/studentdi: the runnable demo
package studentdi
