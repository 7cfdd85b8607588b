// Package student contains all HTTP handlers for the student resource.
//
// HANDLER PATTERN USED HERE - THE CLOSURE / FACTORY PATTERN:
// Go's router expects handler functions with the signature
//
//	func(http.ResponseWriter, *http.Request)
//
// which has no room for extra parameters like a storage backend. Each
// function below is a factory: it accepts dependencies, and returns a
// handler that closes over them. The factory runs once at startup; the
// returned handler runs on every request.
//
// Error mapping is uniform across handlers: a missing record is 404, a body
// that cannot be parsed or validated is 400, an insert collision is 400,
// and anything unexpected is 500. Error bodies are always {"error": "..."}.
package student

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/studentapp/student-directory/internal/storage"
	"github.com/studentapp/student-directory/internal/types"
	"github.com/studentapp/student-directory/internal/utils/response"
)

// New handles POST /api/students.
// Creates a new student from the JSON request body. The id is caller
// supplied, not generated; a collision leaves the directory unchanged.
//
// Success response (201 Created): the stored record, echoed back.
//
// Error responses:
//
//	400 Bad Request - empty body, malformed JSON, failed validation,
//	                  or id already taken ("Failed to add student")
//	500 Internal    - storage error
func New(store storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slog.Info("creating a student")

		var student types.Student

		err := json.NewDecoder(r.Body).Decode(&student)
		if errors.Is(err, io.EOF) {
			// io.EOF means the body was completely empty.
			response.WriteJSON(w, http.StatusBadRequest,
				response.Error("request body is empty"))
			return
		}
		if err != nil {
			// Malformed JSON, wrong types, etc.
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}

		// Strict parse: id, firstName and lastName must be present. The
		// remaining fields are deliberately accepted as-is.
		if err := validator.New().Struct(student); err != nil {
			validateErrs := err.(validator.ValidationErrors)
			response.WriteJSON(w, http.StatusBadRequest,
				response.ValidationError(validateErrs))
			return
		}

		if err := store.CreateStudent(student); err != nil {
			if errors.Is(err, storage.ErrStudentExists) {
				response.WriteJSON(w, http.StatusBadRequest,
					response.Error("Failed to add student"))
				return
			}
			response.WriteJSON(w, http.StatusInternalServerError,
				response.GeneralError(err))
			return
		}

		slog.Info("student created", slog.Int64("id", student.ID))

		response.WriteJSON(w, http.StatusCreated, student)
	}
}

// GetList handles GET /api/students.
// Returns a JSON array of all students in insertion order. With a ?major=
// query parameter the list is narrowed to students whose major matches it
// exactly, ignoring case.
//
// Returns an empty array [] (not null) when nothing matches.
func GetList(store storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		major := r.URL.Query().Get("major")

		var (
			students []types.Student
			err      error
		)
		if major != "" {
			slog.Info("getting students by major", slog.String("major", major))
			students, err = store.GetStudentsByMajor(major)
		} else {
			slog.Info("getting all students")
			students, err = store.GetStudents()
		}
		if err != nil {
			slog.Error("error getting students", slog.String("error", err.Error()))
			response.WriteJSON(w, http.StatusInternalServerError,
				response.GeneralError(err))
			return
		}

		response.WriteJSON(w, http.StatusOK, students)
	}
}

// GetByID handles GET /api/students/{id}.
//
// Error responses:
//
//	400 Bad Request - id is not a valid integer
//	404 Not Found   - no student with that id
func GetByID(store storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// r.PathValue extracts the {id} segment; Go 1.22+ ServeMux
		// supports named path parameters in the pattern.
		id := r.PathValue("id")
		slog.Info("getting a student", slog.String("id", id))

		intID, err := strconv.ParseInt(id, 10, 64)
		if err != nil {
			response.WriteJSON(w, http.StatusBadRequest,
				response.Error("invalid id: must be an integer"))
			return
		}

		student, err := store.GetStudentByID(intID)
		if err != nil {
			if errors.Is(err, storage.ErrStudentNotFound) {
				response.WriteJSON(w, http.StatusNotFound,
					response.Error("Student not found"))
				return
			}
			slog.Error("error getting student",
				slog.String("id", id),
				slog.String("error", err.Error()))
			response.WriteJSON(w, http.StatusInternalServerError,
				response.GeneralError(err))
			return
		}

		response.WriteJSON(w, http.StatusOK, student)
	}
}

// Search handles GET /api/students/search?name=term.
// Matches the term against each student's full name (firstName + " " +
// lastName), case-insensitively. A blank term returns the whole directory,
// the same fallback the frontend search box uses.
func Search(store storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := r.URL.Query().Get("name")
		slog.Info("searching students", slog.String("name", name))

		students, err := store.SearchStudentsByName(name)
		if err != nil {
			slog.Error("error searching students", slog.String("error", err.Error()))
			response.WriteJSON(w, http.StatusInternalServerError,
				response.GeneralError(err))
			return
		}

		response.WriteJSON(w, http.StatusOK, students)
	}
}

// Stats handles GET /api/students/stats.
//
// Success response (200 OK):
//
//	{ "totalStudents": 8, "averageGPA": 3.72 }
//
// averageGPA is always formatted with exactly two decimal places.
func Stats(store storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slog.Info("getting student stats")

		total, err := store.TotalStudents()
		if err != nil {
			response.WriteJSON(w, http.StatusInternalServerError,
				response.GeneralError(err))
			return
		}

		avg, err := store.AverageGPA()
		if err != nil {
			response.WriteJSON(w, http.StatusInternalServerError,
				response.GeneralError(err))
			return
		}

		response.WriteJSON(w, http.StatusOK, types.Stats{
			TotalStudents: total,
			AverageGPA:    types.GPA(avg),
		})
	}
}

// Update handles PUT /api/students/{id}.
// Replaces ALL fields of an existing student; the record keeps its position
// in the directory. The id in the path wins over any id in the body.
//
// Error responses:
//
//	400 Bad Request - invalid id, empty body, or validation failure
//	404 Not Found   - no student with that id
func Update(store storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		slog.Info("updating a student", slog.String("id", id))

		intID, err := strconv.ParseInt(id, 10, 64)
		if err != nil {
			response.WriteJSON(w, http.StatusBadRequest,
				response.Error("invalid id: must be an integer"))
			return
		}

		var student types.Student
		err = json.NewDecoder(r.Body).Decode(&student)
		if errors.Is(err, io.EOF) {
			response.WriteJSON(w, http.StatusBadRequest,
				response.Error("request body is empty"))
			return
		}
		if err != nil {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}

		student.ID = intID

		if err := validator.New().Struct(student); err != nil {
			validateErrs := err.(validator.ValidationErrors)
			response.WriteJSON(w, http.StatusBadRequest,
				response.ValidationError(validateErrs))
			return
		}

		updated, err := store.UpdateStudent(student)
		if err != nil {
			if errors.Is(err, storage.ErrStudentNotFound) {
				response.WriteJSON(w, http.StatusNotFound,
					response.Error("Student not found"))
				return
			}
			slog.Error("error updating student",
				slog.String("id", id),
				slog.String("error", err.Error()))
			response.WriteJSON(w, http.StatusInternalServerError,
				response.GeneralError(err))
			return
		}

		slog.Info("student updated", slog.String("id", id))
		response.WriteJSON(w, http.StatusOK, updated)
	}
}

// Delete handles DELETE /api/students/{id}.
// Removing an id that is not present is not an error; the response just
// reports deleted: false.
//
// Success response (200 OK):
//
//	{ "deleted": true }
func Delete(store storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		slog.Info("deleting a student", slog.String("id", id))

		intID, err := strconv.ParseInt(id, 10, 64)
		if err != nil {
			response.WriteJSON(w, http.StatusBadRequest,
				response.Error("invalid id: must be an integer"))
			return
		}

		deleted, err := store.DeleteStudentByID(intID)
		if err != nil {
			slog.Error("error deleting student",
				slog.String("id", id),
				slog.String("error", err.Error()))
			response.WriteJSON(w, http.StatusInternalServerError,
				response.GeneralError(err))
			return
		}

		slog.Info("student deleted", slog.String("id", id), slog.Bool("deleted", deleted))
		response.WriteJSON(w, http.StatusOK, map[string]bool{"deleted": deleted})
	}
}
