package api

import (
	"context"
	"fmt"
	"io"
	"net/url"
)

type CreateExamInput struct {
	Class string `json:"class"`
	Title string `json:"title"`
	Term  string `json:"term"`
	Date  string `json:"date"`
}

type ScoreInput struct {
	StudentID string  `json:"student_id"`
	Subject   string  `json:"subject"`
	Score     float64 `json:"score"`
	MaxScore  float64 `json:"max_score"`
	Grade     string  `json:"grade"`
}

func (c *Client) CreateExam(ctx context.Context, in CreateExamInput) (*Exam, error) {
	var created Exam
	if err := c.post(ctx, "/api/v1/exams", in, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// SubmitScores posts a manual score batch against an exam.
func (c *Client) SubmitScores(ctx context.Context, examID string, scores []ScoreInput) error {
	payload := struct {
		Scores []ScoreInput `json:"scores"`
	}{Scores: scores}
	return c.post(ctx, fmt.Sprintf("/api/v1/exams/%s/scores", url.PathEscape(examID)), payload, nil)
}

func (c *Client) UploadScores(ctx context.Context, examID, filename string, file io.Reader) (UploadSummary, error) {
	return c.upload(ctx, fmt.Sprintf("/api/v1/exams/%s/scores/upload", url.PathEscape(examID)), filename, file)
}
