// Package storage defines the Storage interface, the contract that any
// directory backend must satisfy to work with this application.
//
// Handlers (the HTTP layer) should not know or care what holds the records.
// By depending only on this interface:
//
//   - Switching backends = implement the interface, change one line in
//     main.go. Zero handler changes.
//
//   - Writing tests = pass a fake that satisfies the interface.
package storage

import (
	"errors"

	"github.com/studentapp/student-directory/internal/types"
)

// Sentinel errors returned by Storage implementations. The HTTP layer
// matches on these with errors.Is to pick a status code.
var (
	// ErrStudentNotFound is returned when a lookup, update or delete
	// targets an id that is not in the directory.
	ErrStudentNotFound = errors.New("student not found")

	// ErrStudentExists is returned by CreateStudent when the id is
	// already taken. The directory is left unchanged.
	ErrStudentExists = errors.New("student already exists")
)

// Storage is the directory contract.
// Any concrete type that implements ALL of these methods automatically
// satisfies this interface; Go does this implicitly.
type Storage interface {
	// CreateStudent appends a new record to the directory.
	// Fails with ErrStudentExists if the id is already present; no other
	// field is validated here.
	CreateStudent(student types.Student) error

	// GetStudentByID fetches a single student by id.
	// Fails with ErrStudentNotFound if no record matches.
	GetStudentByID(id int64) (types.Student, error)

	// GetStudents returns every student in insertion order.
	// Returns an empty slice (not nil) when the directory is empty.
	GetStudents() ([]types.Student, error)

	// SearchStudentsByName returns the students whose full name contains
	// the term, case-insensitively, in insertion order. A blank or
	// whitespace-only term returns the whole directory.
	SearchStudentsByName(term string) ([]types.Student, error)

	// GetStudentsByMajor returns the students whose major equals the
	// argument, compared case-insensitively, in insertion order.
	GetStudentsByMajor(major string) ([]types.Student, error)

	// UpdateStudent replaces the record with the same id, keeping its
	// position in the directory. Full replacement, no partial patch.
	// Fails with ErrStudentNotFound if the id is absent.
	UpdateStudent(student types.Student) (types.Student, error)

	// DeleteStudentByID removes the record with the given id. The boolean
	// reports whether anything was removed; a miss is not an error.
	DeleteStudentByID(id int64) (bool, error)

	// TotalStudents returns the current directory size.
	TotalStudents() (int, error)

	// AverageGPA returns the arithmetic mean gpa across the directory,
	// or 0.0 when the directory is empty.
	AverageGPA() (float64, error)
}
