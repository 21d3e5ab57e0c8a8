package console

import (
	"net/http"
	"strconv"

	"jnv/console/internal/panels"
)

func (c *Console) handleScoreUpload(w http.ResponseWriter, r *http.Request) {
	filename, file := formFile(r)
	if file != nil {
		defer file.Close()
	}
	c.Scores.UploadFile(r.Context(), panels.ScoreUploadForm{
		Class:    r.FormValue("class"),
		Exam:     r.FormValue("exam"),
		Term:     r.FormValue("term"),
		Date:     r.FormValue("date"),
		Filename: filename,
		File:     file,
	})
	redirectHome(w, r)
}

func (c *Console) handleManualScores(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		c.Status.Fail(err)
		redirectHome(w, r)
		return
	}

	maxMarks, err := strconv.ParseFloat(r.FormValue("max_marks"), 64)
	if err != nil || maxMarks <= 0 {
		maxMarks = 100
	}

	rolls := r.PostForm["roll"]
	names := r.PostForm["name"]
	scores := r.PostForm["score"]
	grades := r.PostForm["grade"]
	rows := make([]panels.ManualRow, len(rolls))
	for i := range rolls {
		rows[i] = panels.ManualRow{
			Roll:  rolls[i],
			Name:  at(names, i),
			Score: at(scores, i),
			Grade: at(grades, i),
		}
	}

	c.Scores.SubmitManual(r.Context(), panels.ManualEntryForm{
		Class:    r.FormValue("class"),
		Subject:  r.FormValue("subject"),
		Exam:     r.FormValue("exam"),
		Term:     r.FormValue("term"),
		Date:     r.FormValue("date"),
		MaxMarks: maxMarks,
		Rows:     rows,
	})
	redirectHome(w, r)
}

func (c *Console) handleScoreTemplate(w http.ResponseWriter, _ *http.Request) {
	filename, content := panels.ScoreTemplate()
	serveCSV(w, filename, content)
}

func at(values []string, i int) string {
	if i < len(values) {
		return values[i]
	}
	return ""
}
