// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Homework states reported by the API.
const (
	HomeworkPending   = "pending"
	HomeworkSubmitted = "submitted"
	HomeworkGraded    = "graded"
	HomeworkOverdue   = "overdue"
)

// Homework is an assignment issued for a class.
type Homework struct {
	ID          ID       `json:"id" validate:"required"`
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description,omitempty"`
	ClassName   string   `json:"className,omitempty"`
	ClassID     ID       `json:"classId,omitempty"`
	Teacher     string   `json:"teacher,omitempty"`
	DueDate     string   `json:"dueDate,omitempty"`
	DueTime     string   `json:"dueTime,omitempty"`
	Status      string   `json:"status,omitempty" validate:"omitempty,oneof=pending submitted graded overdue"`
	Submitted   bool     `json:"submitted,omitempty"`
	Grade       *float64 `json:"grade,omitempty"`
	MaxPoints   int      `json:"maxPoints,omitempty" validate:"gte=0"`
	Attachments []string `json:"attachments,omitempty"`
	IsOwner     bool     `json:"isOwner,omitempty"`
}

// HomeworkInput is the body of a create homework call.
type HomeworkInput struct {
	Title                string   `json:"title"`
	Description          string   `json:"description,omitempty"`
	Instructions         string   `json:"instructions,omitempty"`
	ClassID              ID       `json:"classId"`
	DueDate              string   `json:"dueDate,omitempty"`
	Points               int      `json:"points,omitempty"`
	AllowLateSubmissions bool     `json:"allowLateSubmissions,omitempty"`
	RequireFiles         bool     `json:"requireFiles,omitempty"`
	MultipleAttempts     bool     `json:"multipleAttempts,omitempty"`
	Attachments          []string `json:"attachments,omitempty"`
}

// Submission is a student's answer to a homework.
type Submission struct {
	Content     string   `json:"content,omitempty"`
	Attachments []string `json:"attachments,omitempty"`
}

// Grade is a teacher's assessment of a submission.
type Grade struct {
	StudentID ID      `json:"studentId,omitempty"`
	Score     float64 `json:"score"`
	Feedback  string  `json:"feedback,omitempty"`
}
