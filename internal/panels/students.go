package panels

import (
	"context"
	"errors"
	"io"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	"jnv/console/internal/api"
)

// Students manages the student master data panel: class-scoped
// listing, single creates, and bulk upload.
type Students struct {
	api      *api.Client
	status   *StatusLine
	validate *validator.Validate

	gate  loadGate
	mu    sync.Mutex
	class string
	items []api.Student
}

func NewStudents(client *api.Client, status *StatusLine) *Students {
	return &Students{
		api:      client,
		status:   status,
		validate: newValidator(),
		class:    "Class 10",
	}
}

// StudentForm is the raw create form. Roll and year stay strings until
// validation passes.
type StudentForm struct {
	FullName      string `validate:"required"`
	ClassLabel    string `validate:"required"`
	RollNumber    string `validate:"required,number"`
	DateOfBirth   string `validate:"required"`
	House         string
	ParentPhone   string `validate:"omitempty,parentphone"`
	AdmissionYear string
}

func (p *Students) Load(ctx context.Context, classLabel string) {
	ticket := p.gate.begin()
	p.status.Set("Loading students...")

	p.mu.Lock()
	p.class = classLabel
	p.mu.Unlock()

	items, err := p.api.ListStudents(ctx, classLabel)
	if !p.gate.stillCurrent(ticket) {
		return
	}
	if err != nil {
		p.setItems(nil)
		p.status.Fail(err)
		return
	}
	p.setItems(items)
	p.status.Set("Students loaded.")
}

func (p *Students) Create(ctx context.Context, form StudentForm) {
	if err := p.validate.Struct(form); err != nil {
		p.status.Set("%s", studentFormMessage(err))
		return
	}

	roll, _ := strconv.Atoi(strings.TrimSpace(form.RollNumber))
	year, err := strconv.Atoi(strings.TrimSpace(form.AdmissionYear))
	if err != nil || year <= 0 {
		year = time.Now().Year()
	}

	p.status.Set("Creating student...")
	_, err = p.api.CreateStudent(ctx, api.CreateStudentInput{
		FullName:      form.FullName,
		ClassLabel:    form.ClassLabel,
		RollNumber:    roll,
		DateOfBirth:   form.DateOfBirth,
		House:         form.House,
		ParentPhone:   strings.TrimSpace(form.ParentPhone),
		AdmissionYear: year,
	})
	if err != nil {
		p.status.Fail(err)
		return
	}
	p.status.Set("Student created.")
	p.Load(ctx, form.ClassLabel)
}

func (p *Students) Upload(ctx context.Context, filename string, file io.Reader) {
	if file == nil || filename == "" {
		p.status.Set("Please select a CSV/XLSX file for student upload.")
		return
	}

	p.status.Set("Uploading student master data...")
	summary, err := p.api.UploadStudents(ctx, filename, file)
	if err != nil {
		p.status.Fail(err)
		return
	}

	msg := "Student upload complete. Inserted: " + strconv.Itoa(summary.Inserted) +
		", Failed: " + strconv.Itoa(summary.Failed)
	if len(summary.Errors) > 0 {
		shown := summary.Errors
		if len(shown) > 5 {
			shown = shown[:5]
		}
		msg += ", Errors: " + strings.Join(shown, " | ")
	}
	p.status.Set("%s", msg)
	p.Load(ctx, p.Class())
}

func (p *Students) Class() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.class
}

func (p *Students) Items() []api.Student {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]api.Student, len(p.items))
	copy(out, p.items)
	return out
}

func (p *Students) setItems(items []api.Student) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.items = items
}

func studentFormMessage(err error) string {
	var fields validator.ValidationErrors
	if errors.As(err, &fields) {
		for _, field := range fields {
			switch field.Tag() {
			case "parentphone":
				return "Parent phone must be 10 digits, 91XXXXXXXXXX, or +91XXXXXXXXXX."
			case "number":
				return "Roll number must be a number."
			}
		}
	}
	return "Please fill required student fields."
}
