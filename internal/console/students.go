package console

import (
	"io"
	"net/http"

	"jnv/console/internal/panels"
)

const maxUploadBytes = 32 << 20

func (c *Console) handleStudentsLoad(w http.ResponseWriter, r *http.Request) {
	class := r.FormValue("class")
	if class == "" {
		class = c.Students.Class()
	}
	c.Students.Load(r.Context(), class)
	redirectHome(w, r)
}

func (c *Console) handleStudentCreate(w http.ResponseWriter, r *http.Request) {
	c.Students.Create(r.Context(), panels.StudentForm{
		FullName:      r.FormValue("full_name"),
		ClassLabel:    r.FormValue("class_label"),
		RollNumber:    r.FormValue("roll_number"),
		DateOfBirth:   r.FormValue("date_of_birth"),
		House:         r.FormValue("house"),
		ParentPhone:   r.FormValue("parent_phone"),
		AdmissionYear: r.FormValue("admission_year"),
	})
	redirectHome(w, r)
}

func (c *Console) handleStudentUpload(w http.ResponseWriter, r *http.Request) {
	filename, file := formFile(r)
	if file != nil {
		defer file.Close()
	}
	c.Students.Upload(r.Context(), filename, file)
	redirectHome(w, r)
}

func (c *Console) handleStudentTemplate(w http.ResponseWriter, _ *http.Request) {
	filename, content := panels.StudentTemplate()
	serveCSV(w, filename, content)
}

// formFile pulls the uploaded "file" field; a missing file comes back
// as ("", nil) so the panel can report it.
func formFile(r *http.Request) (string, io.ReadCloser) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		return "", nil
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		return "", nil
	}
	return header.Filename, file
}

func serveCSV(w http.ResponseWriter, filename, content string) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	_, _ = io.WriteString(w, content)
}
