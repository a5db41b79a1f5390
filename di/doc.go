// Package di provides small, explicit dependency wiring helpers.
//
// There is no container and no reflection-driven injection. A composition
// root registers factories in a Registry, resolves them into Service values
// and connects them with Injecting:
//
//	reg := di.NewRegistry().
//		Provide(KeyCourse, newCourse).
//		Provide(KeyStudent, newStudent)
//
//	courseSvc, _ := di.ResolveAs[course.Course](reg, cfg, KeyCourse)
//	studentSvc, _ := di.ResolveAs[student.Student](reg, cfg, KeyStudent)
//	_, err := studentSvc.With(di.Injecting(KeyCourse, courseSvc, (*student.Student).SetCourse))
//
// Service records every injected dependency in its Deps bag so wiring can be
// asserted in tests (Has, GetAs, TryGetAs). Wiring mistakes come back as
// typed errors: DuplicateKeyError, MissingDependencyError,
// WrongTypeDependencyError, NilDependencyServiceError and NilBindError.
package di
