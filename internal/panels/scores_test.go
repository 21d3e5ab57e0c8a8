package panels

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jnv/console/internal/api"
)

func TestUploadScoresPreflight(t *testing.T) {
	backend := newBackend(t, nil)
	status := &StatusLine{}
	p := NewScores(backend.client(), status)
	ctx := context.Background()

	p.UploadFile(ctx, ScoreUploadForm{Date: "2025-03-01"})
	assert.Equal(t, "Please select a CSV file.", status.Text())

	p.UploadFile(ctx, ScoreUploadForm{Filename: "scores.csv", File: strings.NewReader("x")})
	assert.Equal(t, "Please select exam date for upload.", status.Text())

	assert.Zero(t, backend.total())
}

func TestUploadScoresCreatesExamFirst(t *testing.T) {
	var examPayload api.CreateExamInput
	backend := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/exams":
			require.NoError(t, json.NewDecoder(r.Body).Decode(&examPayload))
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"id":"exam-1"}`))
		case "/api/v1/exams/exam-1/scores/upload":
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(map[string]any{"inserted": 30})
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	})
	status := &StatusLine{}
	p := NewScores(backend.client(), status)

	p.UploadFile(context.Background(), ScoreUploadForm{
		Class:    "Class 10",
		Exam:     "Term 1 - Quarterly",
		Term:     "Term 1",
		Date:     "2025-03-01",
		Filename: "scores.csv",
		File:     strings.NewReader("subject,roll_no\nMath,12"),
	})

	assert.Equal(t, "Term 1 - Quarterly", examPayload.Title)
	assert.Equal(t, "Class 10", examPayload.Class)
	assert.Equal(t, "Uploaded 30 scores for approval.", status.Text())
}

func TestUploadScoresPartialFailureSurfaced(t *testing.T) {
	backend := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/exams":
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"id":"exam-1"}`))
		default:
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(map[string]any{"errors": []string{"row 2: invalid roll"}})
		}
	})
	status := &StatusLine{}
	p := NewScores(backend.client(), status)

	p.UploadFile(context.Background(), ScoreUploadForm{
		Date:     "2025-03-01",
		Filename: "scores.csv",
		File:     strings.NewReader("x"),
	})

	// The exam already exists server-side; the failure is surfaced,
	// not rolled back.
	assert.Equal(t, 1, backend.count("POST /api/v1/exams"))
	assert.Equal(t, "Error: row 2: invalid roll", status.Text())
}

func manualForm(rows ...ManualRow) ManualEntryForm {
	return ManualEntryForm{
		Class:    "Class 10",
		Subject:  "Mathematics",
		Exam:     "Term 1 - Quarterly",
		Term:     "Term 1",
		Date:     "2025-03-01",
		MaxMarks: 100,
		Rows:     rows,
	}
}

func TestManualEntryRequiresDate(t *testing.T) {
	backend := newBackend(t, nil)
	status := &StatusLine{}
	p := NewScores(backend.client(), status)

	form := manualForm(ManualRow{Roll: "12", Score: "95"})
	form.Date = ""
	p.SubmitManual(context.Background(), form)

	assert.Equal(t, "Please select exam date for manual entry.", status.Text())
	assert.Zero(t, backend.total())
}

func TestManualEntrySkipsIncompleteRows(t *testing.T) {
	var batch struct {
		Scores []api.ScoreInput `json:"scores"`
	}
	lookups := []string{}
	backend := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/api/v1/exams":
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"id":"exam-1"}`))
		case r.URL.Path == "/api/v1/students/lookup":
			lookups = append(lookups, r.URL.Query().Get("roll"))
			_, _ = w.Write([]byte(`{"id":"student-12","full_name":"Aarav Sharma","roll_number":12}`))
		case r.URL.Path == "/api/v1/exams/exam-1/scores":
			require.NoError(t, json.NewDecoder(r.Body).Decode(&batch))
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"status":"uploaded"}`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	})
	status := &StatusLine{}
	p := NewScores(backend.client(), status)

	p.SubmitManual(context.Background(), manualForm(
		ManualRow{Roll: "", Score: "90"},
		ManualRow{Roll: "12", Score: ""},
		ManualRow{Roll: "12", Score: "95", Grade: "A+"},
	))

	assert.Equal(t, []string{"12"}, lookups, "only complete rows are resolved")
	require.Len(t, batch.Scores, 1)
	assert.Equal(t, "student-12", batch.Scores[0].StudentID)
	assert.Equal(t, "Mathematics", batch.Scores[0].Subject)
	assert.Equal(t, float64(95), batch.Scores[0].Score)
	assert.Equal(t, float64(100), batch.Scores[0].MaxScore, "max_score carries the panel's max marks")
	assert.Equal(t, "A+", batch.Scores[0].Grade)
	assert.Equal(t, "Manual scores submitted for approval.", status.Text())
}

func TestManualEntryLookupFailureAborts(t *testing.T) {
	backend := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/exams":
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"id":"exam-1"}`))
		case "/api/v1/students/lookup":
			http.Error(w, `{"error":"student not found"}`, http.StatusNotFound)
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	})
	status := &StatusLine{}
	p := NewScores(backend.client(), status)

	p.SubmitManual(context.Background(), manualForm(
		ManualRow{Roll: "12", Score: "95"},
		ManualRow{Roll: "14", Score: "88"},
	))

	assert.Zero(t, backend.count("POST /api/v1/exams/exam-1/scores"), "nothing is submitted after a failed lookup")
	assert.Contains(t, status.Text(), "student not found")
}
