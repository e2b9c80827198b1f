// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the HTTP client of the ClassSync API.
//
// [ServerAdapter.Request] is the single place where requests are built: it
// merges default and caller headers, attaches the session's bearer token,
// encodes the JSON body and classifies the outcome as a transport failure
// ([ErrTransport]), a non-2xx status ([*HTTPError], matching [ErrHTTPStatus]
// and a per-status sentinel such as [ErrUnauthorized]) or a malformed body
// ([ErrMalformedResponse]). Every typed operation is a fixed method and path
// routed through it, with the decoded result validated before it is returned.
package adapter

import (
	"context"
	"encoding/json"
	"net/url"

	"github.com/MKhiriev/class-sync/models"
)

// RequestOptions tune a single [ServerAdapter.Request]. The zero value is a
// GET without a body.
type RequestOptions struct {
	// Method defaults to GET.
	Method string
	// Headers override the defaults. An empty value removes the header.
	Headers map[string]string
	// Query is appended to the path.
	Query url.Values
	// Body is JSON-encoded unless it is already []byte or json.RawMessage.
	Body any
}

// ServerAdapter talks to the ClassSync API on behalf of a session.
type ServerAdapter interface {
	// Request sends one request relative to the base URL and returns the JSON
	// body of a 2xx response. A 204 yields a nil body.
	Request(ctx context.Context, path string, opts RequestOptions) (json.RawMessage, error)

	// Login exchanges credentials for a token. The token is returned, not
	// stored; persisting it is up to the caller.
	Login(ctx context.Context, email, password string) (models.AuthResponse, error)
	Register(ctx context.Context, registration models.Registration) (models.AuthResponse, error)
	Logout(ctx context.Context) error

	ListClasses(ctx context.Context) ([]models.Class, error)
	CreateClass(ctx context.Context, input models.ClassInput) (models.Class, error)
	JoinClass(ctx context.Context, code string) (models.Class, error)
	LeaveClass(ctx context.Context, classID models.ID) error

	// ListNotes lists notes, restricted to one class when classID is set.
	ListNotes(ctx context.Context, classID models.ID) ([]models.Note, error)
	CreateNote(ctx context.Context, input models.NoteInput) (models.Note, error)
	UpdateNote(ctx context.Context, id models.ID, input models.NoteInput) (models.Note, error)
	DeleteNote(ctx context.Context, id models.ID) error
	ShareNote(ctx context.Context, id models.ID, share models.NoteShare) (models.Note, error)

	// ListHomework lists homework, restricted to one class when classID is set.
	ListHomework(ctx context.Context, classID models.ID) ([]models.Homework, error)
	CreateHomework(ctx context.Context, input models.HomeworkInput) (models.Homework, error)
	SubmitHomework(ctx context.Context, id models.ID, submission models.Submission) (models.Homework, error)
	GradeHomework(ctx context.Context, id models.ID, grade models.Grade) (models.Homework, error)

	TranscribeVideo(ctx context.Context, videoURL string) (models.Transcription, error)
	// SearchTranscripts searches every class when classID is empty.
	SearchTranscripts(ctx context.Context, query string, classID models.ID) (models.TranscriptSearchResult, error)

	// UploadFile stores file under the given server-side path.
	UploadFile(ctx context.Context, file models.FileUpload, path string) (models.UploadResult, error)
	UploadVideo(ctx context.Context, file models.FileUpload) (models.UploadResult, error)
	UploadDocument(ctx context.Context, file models.FileUpload) (models.UploadResult, error)
}
