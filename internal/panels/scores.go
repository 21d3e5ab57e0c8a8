package panels

import (
	"context"
	"io"
	"strconv"
	"strings"

	"jnv/console/internal/api"
)

// Scores covers both score flows: bulk file upload and manual entry.
// Each submission creates its exam first; an exam left behind by a
// failed upload is a surfaced partial failure, never rolled back.
type Scores struct {
	api    *api.Client
	status *StatusLine
}

func NewScores(client *api.Client, status *StatusLine) *Scores {
	return &Scores{api: client, status: status}
}

type ScoreUploadForm struct {
	Class    string
	Exam     string
	Term     string
	Date     string
	Filename string
	File     io.Reader
}

func (p *Scores) UploadFile(ctx context.Context, form ScoreUploadForm) {
	if form.File == nil || form.Filename == "" {
		p.status.Set("Please select a CSV file.")
		return
	}
	if form.Date == "" {
		p.status.Set("Please select exam date for upload.")
		return
	}

	p.status.Set("Uploading CSV to server...")
	exam, err := p.api.CreateExam(ctx, api.CreateExamInput{
		Class: form.Class,
		Title: form.Exam,
		Term:  form.Term,
		Date:  form.Date,
	})
	if err != nil {
		p.status.Fail(err)
		return
	}

	summary, err := p.api.UploadScores(ctx, exam.ID, form.Filename, form.File)
	if err != nil {
		p.status.Fail(err)
		return
	}
	p.status.Set("Uploaded %d scores for approval.", summary.Inserted)
}

type ManualRow struct {
	Roll  string
	Name  string
	Score string
	Grade string
}

type ManualEntryForm struct {
	Class    string
	Subject  string
	Exam     string
	Term     string
	Date     string
	MaxMarks float64
	Rows     []ManualRow
}

// SubmitManual resolves each filled row by class+roll, then submits
// the whole batch against a fresh exam. Rows missing roll or score
// are skipped; any lookup failure aborts the entire submission.
func (p *Scores) SubmitManual(ctx context.Context, form ManualEntryForm) {
	if form.Date == "" {
		p.status.Set("Please select exam date for manual entry.")
		return
	}

	p.status.Set("Submitting manual scores...")
	exam, err := p.api.CreateExam(ctx, api.CreateExamInput{
		Class: form.Class,
		Title: form.Exam,
		Term:  form.Term,
		Date:  form.Date,
	})
	if err != nil {
		p.status.Fail(err)
		return
	}

	var scores []api.ScoreInput
	for _, row := range form.Rows {
		if row.Roll == "" || row.Score == "" {
			continue
		}
		roll, err := strconv.Atoi(strings.TrimSpace(row.Roll))
		if err != nil {
			p.status.Set("Error: invalid roll number %q", row.Roll)
			return
		}
		scoreValue, err := strconv.ParseFloat(strings.TrimSpace(row.Score), 64)
		if err != nil {
			p.status.Set("Error: invalid score %q for roll %s", row.Score, row.Roll)
			return
		}

		student, err := p.api.LookupStudent(ctx, form.Class, roll)
		if err != nil {
			p.status.Fail(err)
			return
		}
		scores = append(scores, api.ScoreInput{
			StudentID: student.ID,
			Subject:   form.Subject,
			Score:     scoreValue,
			MaxScore:  form.MaxMarks,
			Grade:     row.Grade,
		})
	}

	if err := p.api.SubmitScores(ctx, exam.ID, scores); err != nil {
		p.status.Fail(err)
		return
	}
	p.status.Set("Manual scores submitted for approval.")
}
