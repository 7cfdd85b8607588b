package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studentapp/student-directory/internal/storage"
	"github.com/studentapp/student-directory/internal/types"
)

func TestSeededDirectory(t *testing.T) {
	store := NewSeeded()

	total, err := store.TotalStudents()
	require.NoError(t, err)
	assert.Equal(t, 8, total)

	// The average must equal the arithmetic mean of the seed GPAs.
	var sum float64
	for _, s := range seedStudents() {
		sum += s.GPA
	}
	avg, err := store.AverageGPA()
	require.NoError(t, err)
	assert.InDelta(t, sum/8, avg, 1e-9)
}

func TestGetStudentByID(t *testing.T) {
	store := NewSeeded()

	// Every seeded id resolves to a record carrying that id.
	for _, seeded := range seedStudents() {
		got, err := store.GetStudentByID(seeded.ID)
		require.NoError(t, err)
		assert.Equal(t, seeded.ID, got.ID)
		assert.Equal(t, seeded, got)
	}

	_, err := store.GetStudentByID(99)
	assert.ErrorIs(t, err, storage.ErrStudentNotFound)
}

func TestCreateStudent(t *testing.T) {
	store := NewSeeded()

	created := types.Student{
		ID: 9, FirstName: "Anna", LastName: "Taylor",
		Email: "anna.taylor@university.edu", Major: "History",
		Age: 22, GPA: 3.2, EnrollmentDate: "2023-09-01",
	}
	require.NoError(t, store.CreateStudent(created))

	got, err := store.GetStudentByID(9)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	total, _ := store.TotalStudents()
	assert.Equal(t, 9, total)
}

func TestCreateStudent_DuplicateIDLeavesDirectoryUnchanged(t *testing.T) {
	store := NewSeeded()

	err := store.CreateStudent(types.Student{
		ID: 1, FirstName: "Impostor", LastName: "Doe",
	})
	assert.ErrorIs(t, err, storage.ErrStudentExists)

	// Original record intact, size unchanged.
	got, err := store.GetStudentByID(1)
	require.NoError(t, err)
	assert.Equal(t, "John", got.FirstName)

	total, _ := store.TotalStudents()
	assert.Equal(t, 8, total)
}

func TestSearchStudentsByName(t *testing.T) {
	store := NewSeeded()

	// "jo" matches John Doe and Michael Johnson, nobody else.
	matches, err := store.SearchStudentsByName("jo")
	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.Equal(t, int64(1), matches[0].ID)
	assert.Equal(t, int64(3), matches[1].ID)

	// Case-insensitive and spans the first/last name join.
	matches, err = store.SearchStudentsByName("JANE SM")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, int64(2), matches[0].ID)

	matches, err = store.SearchStudentsByName("nobody")
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestSearchStudentsByName_BlankTermReturnsAll(t *testing.T) {
	store := NewSeeded()

	for _, term := range []string{"", "   ", "\t"} {
		matches, err := store.SearchStudentsByName(term)
		require.NoError(t, err)
		assert.Len(t, matches, 8)
	}
}

func TestGetStudentsByMajor(t *testing.T) {
	store := NewSeeded()

	// Exact match, ignoring case.
	matches, err := store.GetStudentsByMajor("computer science")
	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.Equal(t, int64(1), matches[0].ID)
	assert.Equal(t, int64(7), matches[1].ID)

	// Substrings must not match.
	matches, err = store.GetStudentsByMajor("computer")
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestUpdateStudent(t *testing.T) {
	store := NewSeeded()

	updated := types.Student{
		ID: 3, FirstName: "Michael", LastName: "Johnson",
		Email: "michael.johnson@university.edu", Phone: "555-0103",
		Major: "Computer Science", Age: 23,
		Address: "789 Pine Rd, Somerville, MA",
		GPA:     3.65, EnrollmentDate: "2020-09-01",
	}
	got, err := store.UpdateStudent(updated)
	require.NoError(t, err)
	assert.Equal(t, updated, got)

	// Count unchanged, position preserved, only the target changed.
	total, _ := store.TotalStudents()
	assert.Equal(t, 8, total)

	all, _ := store.GetStudents()
	assert.Equal(t, updated, all[2])
	assert.Equal(t, int64(2), all[1].ID)
	assert.Equal(t, int64(4), all[3].ID)
}

func TestUpdateStudent_NotFound(t *testing.T) {
	store := NewSeeded()

	_, err := store.UpdateStudent(types.Student{ID: 42, FirstName: "No", LastName: "One"})
	assert.ErrorIs(t, err, storage.ErrStudentNotFound)
}

func TestDeleteStudentByID(t *testing.T) {
	store := NewSeeded()

	deleted, err := store.DeleteStudentByID(5)
	require.NoError(t, err)
	assert.True(t, deleted)

	_, err = store.GetStudentByID(5)
	assert.ErrorIs(t, err, storage.ErrStudentNotFound)

	total, _ := store.TotalStudents()
	assert.Equal(t, 7, total)

	// Deleting an absent id is a no-op, not an error.
	deleted, err = store.DeleteStudentByID(5)
	require.NoError(t, err)
	assert.False(t, deleted)

	total, _ = store.TotalStudents()
	assert.Equal(t, 7, total)
}

func TestAverageGPA_EmptyDirectory(t *testing.T) {
	store := New()

	avg, err := store.AverageGPA()
	require.NoError(t, err)
	assert.Equal(t, 0.0, avg)

	total, err := store.TotalStudents()
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestGetStudents_ReturnsCopies(t *testing.T) {
	store := NewSeeded()

	all, err := store.GetStudents()
	require.NoError(t, err)

	// Mutating the returned slice must not reach the store.
	all[0].FirstName = "Mutated"

	got, err := store.GetStudentByID(1)
	require.NoError(t, err)
	assert.Equal(t, "John", got.FirstName)
}
