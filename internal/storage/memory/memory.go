// Package memory provides the in-memory implementation of storage.Storage.
//
// The directory is an ordered slice guarded by a single RWMutex: every
// operation takes the lock for its whole duration, so readers always see a
// consistent snapshot and writers are serialized against everything else.
// Lookups are linear scans; at this scale an index buys nothing.
//
// Records crossing the boundary are always copies. Student is a plain value
// struct, so copying the slice copies the records; callers can never mutate
// store state through a returned value.
package memory

import (
	"strings"
	"sync"

	"github.com/studentapp/student-directory/internal/storage"
	"github.com/studentapp/student-directory/internal/types"
)

// Memory is the concrete in-memory implementation of storage.Storage.
type Memory struct {
	mu       sync.RWMutex
	students []types.Student
}

// New returns an empty directory.
func New() *Memory {
	return &Memory{students: make([]types.Student, 0)}
}

// NewSeeded returns a directory populated with the reference seed set
// (eight records). All mutations are lost on restart; the seed is the
// whole world this service starts from.
func NewSeeded() *Memory {
	return &Memory{students: seedStudents()}
}

// CreateStudent appends the record, enforcing id uniqueness.
// The uniqueness invariant is checked only here; update and delete rely
// on it holding.
func (m *Memory) CreateStudent(student types.Student) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, s := range m.students {
		if s.ID == student.ID {
			return storage.ErrStudentExists
		}
	}

	m.students = append(m.students, student)
	return nil
}

// GetStudentByID scans for the first record with a matching id.
func (m *Memory) GetStudentByID(id int64) (types.Student, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, s := range m.students {
		if s.ID == id {
			return s, nil
		}
	}

	return types.Student{}, storage.ErrStudentNotFound
}

// GetStudents returns a copy of the full directory in insertion order.
func (m *Memory) GetStudents() ([]types.Student, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.snapshot(), nil
}

// SearchStudentsByName matches the term against each record's full name,
// case-insensitively. A blank term falls back to the full list, matching
// what the browser frontend does when its search box is empty.
func (m *Memory) SearchStudentsByName(term string) ([]types.Student, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if strings.TrimSpace(term) == "" {
		return m.snapshot(), nil
	}

	needle := strings.ToLower(term)
	matches := make([]types.Student, 0)
	for _, s := range m.students {
		if strings.Contains(strings.ToLower(s.FullName()), needle) {
			matches = append(matches, s)
		}
	}

	return matches, nil
}

// GetStudentsByMajor matches the major field exactly (not substring),
// ignoring case.
func (m *Memory) GetStudentsByMajor(major string) ([]types.Student, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	matches := make([]types.Student, 0)
	for _, s := range m.students {
		if strings.EqualFold(s.Major, major) {
			matches = append(matches, s)
		}
	}

	return matches, nil
}

// UpdateStudent replaces the record with the same id in place, preserving
// its position in the directory.
func (m *Memory) UpdateStudent(student types.Student) (types.Student, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, s := range m.students {
		if s.ID == student.ID {
			m.students[i] = student
			return student, nil
		}
	}

	return types.Student{}, storage.ErrStudentNotFound
}

// DeleteStudentByID removes the record with the given id if present.
// Deleting an absent id is a no-op, not an error.
func (m *Memory) DeleteStudentByID(id int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, s := range m.students {
		if s.ID == id {
			m.students = append(m.students[:i], m.students[i+1:]...)
			return true, nil
		}
	}

	return false, nil
}

// TotalStudents returns the current directory size.
func (m *Memory) TotalStudents() (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.students), nil
}

// AverageGPA returns the mean gpa, or 0.0 for an empty directory to avoid
// a division by zero.
func (m *Memory) AverageGPA() (float64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if len(m.students) == 0 {
		return 0.0, nil
	}

	var sum float64
	for _, s := range m.students {
		sum += s.GPA
	}

	return sum / float64(len(m.students)), nil
}

// snapshot copies the backing slice. Callers must hold at least the read
// lock.
func (m *Memory) snapshot() []types.Student {
	out := make([]types.Student, len(m.students))
	copy(out, m.students)
	return out
}
