package memory

import "github.com/studentapp/student-directory/internal/types"

// seedStudents returns the fixed eight-record set the directory starts
// with. Returned fresh on every call so no two directories share a slice.
func seedStudents() []types.Student {
	return []types.Student{
		{
			ID: 1, FirstName: "John", LastName: "Doe",
			Email: "john.doe@university.edu", Phone: "555-0101",
			Major: "Computer Science", Age: 20,
			Address: "123 Main St, Boston, MA",
			GPA:     3.8, EnrollmentDate: "2022-09-01",
		},
		{
			ID: 2, FirstName: "Jane", LastName: "Smith",
			Email: "jane.smith@university.edu", Phone: "555-0102",
			Major: "Business Administration", Age: 21,
			Address: "456 Oak Ave, Cambridge, MA",
			GPA:     3.9, EnrollmentDate: "2021-09-01",
		},
		{
			ID: 3, FirstName: "Michael", LastName: "Johnson",
			Email: "m.johnson@university.edu", Phone: "555-0103",
			Major: "Engineering", Age: 22,
			Address: "789 Pine Rd, Somerville, MA",
			GPA:     3.6, EnrollmentDate: "2020-09-01",
		},
		{
			ID: 4, FirstName: "Emily", LastName: "Williams",
			Email: "emily.w@university.edu", Phone: "555-0104",
			Major: "Mathematics", Age: 19,
			Address: "321 Elm St, Newton, MA",
			GPA:     3.95, EnrollmentDate: "2023-09-01",
		},
		{
			ID: 5, FirstName: "David", LastName: "Brown",
			Email: "david.brown@university.edu", Phone: "555-0105",
			Major: "Physics", Age: 20,
			Address: "654 Maple Dr, Brookline, MA",
			GPA:     3.7, EnrollmentDate: "2022-09-01",
		},
		{
			ID: 6, FirstName: "Sarah", LastName: "Davis",
			Email: "sarah.davis@university.edu", Phone: "555-0106",
			Major: "Chemistry", Age: 21,
			Address: "987 Cedar Ln, Quincy, MA",
			GPA:     3.85, EnrollmentDate: "2021-09-01",
		},
		{
			ID: 7, FirstName: "James", LastName: "Miller",
			Email: "james.miller@university.edu", Phone: "555-0107",
			Major: "Computer Science", Age: 23,
			Address: "147 Birch Ct, Waltham, MA",
			GPA:     3.4, EnrollmentDate: "2019-09-01",
		},
		{
			ID: 8, FirstName: "Lisa", LastName: "Wilson",
			Email: "lisa.wilson@university.edu", Phone: "555-0108",
			Major: "Biology", Age: 20,
			Address: "258 Spruce Way, Medford, MA",
			GPA:     3.75, EnrollmentDate: "2022-09-01",
		},
	}
}
