// Package types holds the shared data structures (models) used across
// the application. Keeping them in one place prevents import cycles:
// handlers, storage, and utils can all import types without depending
// on each other.
package types

import "strconv"

// Student represents a single student record in the directory.
//
// Struct tags serve two purposes:
//
//  1. json:"..." controls how the field appears on the wire. The camelCase
//     names match what the browser frontend expects.
//
//  2. validate:"..." rules are checked by the go-playground/validator
//     package when a record arrives over HTTP. Only id, firstName and
//     lastName are required; every other field is stored as-is, including
//     an unparsed enrollmentDate and an unchecked gpa.
type Student struct {
	ID             int64   `json:"id"        validate:"required"`
	FirstName      string  `json:"firstName" validate:"required"`
	LastName       string  `json:"lastName"  validate:"required"`
	Email          string  `json:"email"`
	Phone          string  `json:"phone"`
	Major          string  `json:"major"`
	Age            int     `json:"age"`
	Address        string  `json:"address"`
	GPA            float64 `json:"gpa"`
	EnrollmentDate string  `json:"enrollmentDate"`
}

// FullName returns the student's first and last name joined by a single
// space. It is derived on read and never stored.
func (s Student) FullName() string {
	return s.FirstName + " " + s.LastName
}

// Stats is the aggregate statistics payload returned by the stats endpoint.
type Stats struct {
	TotalStudents int `json:"totalStudents"`
	AverageGPA    GPA `json:"averageGPA"`
}

// GPA is a float64 that always renders with exactly two decimal places in
// JSON, so an average of 3.7 goes out as 3.70 rather than 3.7.
type GPA float64

// MarshalJSON implements json.Marshaler.
func (g GPA) MarshalJSON() ([]byte, error) {
	return strconv.AppendFloat(nil, float64(g), 'f', 2, 64), nil
}
