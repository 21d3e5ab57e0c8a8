package api

import (
	"context"
	"io"
	"net/url"
	"strconv"
)

type CreateStudentInput struct {
	FullName      string `json:"full_name"`
	ClassLabel    string `json:"class_label"`
	RollNumber    int    `json:"roll_number"`
	DateOfBirth   string `json:"date_of_birth"`
	House         string `json:"house"`
	ParentPhone   string `json:"parent_phone"`
	AdmissionYear int    `json:"admission_year"`
}

// ListStudents is always scoped to one class; the backend filters on
// the class query parameter.
func (c *Client) ListStudents(ctx context.Context, classLabel string) ([]Student, error) {
	return getList(ctx, c, "/api/v1/students?class="+url.QueryEscape(classLabel), validStudent)
}

func (c *Client) CreateStudent(ctx context.Context, in CreateStudentInput) (*Student, error) {
	var created Student
	if err := c.post(ctx, "/api/v1/students", in, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UploadStudents(ctx context.Context, filename string, file io.Reader) (UploadSummary, error) {
	return c.upload(ctx, "/api/v1/students/upload", filename, file)
}

// LookupStudent resolves a student by class and roll number.
func (c *Client) LookupStudent(ctx context.Context, classLabel string, roll int) (*Student, error) {
	params := url.Values{}
	params.Set("class", classLabel)
	params.Set("roll", strconv.Itoa(roll))

	var student Student
	if err := c.get(ctx, "/api/v1/students/lookup?"+params.Encode(), &student); err != nil {
		return nil, err
	}
	return &student, nil
}
