package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFullName(t *testing.T) {
	s := Student{FirstName: "John", LastName: "Doe"}
	assert.Equal(t, "John Doe", s.FullName())
}

func TestStatsMarshalTwoDecimals(t *testing.T) {
	cases := []struct {
		avg  float64
		want string
	}{
		{3.74375, `{"totalStudents":8,"averageGPA":3.74}`},
		{3.7, `{"totalStudents":8,"averageGPA":3.70}`},
		{0, `{"totalStudents":8,"averageGPA":0.00}`},
	}

	for _, tc := range cases {
		out, err := json.Marshal(Stats{TotalStudents: 8, AverageGPA: GPA(tc.avg)})
		require.NoError(t, err)
		assert.Equal(t, tc.want, string(out))
	}
}

func TestStudentJSONFieldNames(t *testing.T) {
	s := Student{
		ID: 1, FirstName: "John", LastName: "Doe",
		Email: "john.doe@university.edu", Phone: "555-0101",
		Major: "Computer Science", Age: 20,
		Address: "123 Main St, Boston, MA",
		GPA:     3.8, EnrollmentDate: "2022-09-01",
	}

	out, err := json.Marshal(s)
	require.NoError(t, err)

	// The wire names are the camelCase attributes the frontend expects.
	for _, key := range []string{
		`"id"`, `"firstName"`, `"lastName"`, `"email"`, `"phone"`,
		`"major"`, `"age"`, `"address"`, `"gpa"`, `"enrollmentDate"`,
	} {
		assert.Contains(t, string(out), key)
	}
}
