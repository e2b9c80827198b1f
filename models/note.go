package models

// Sharing scopes of a note.
const (
	ShareWithPrivate = "private"
	ShareWithClass   = "class"
	ShareWithPublic  = "public"
)

// Note is a study note, optionally tied to a class.
type Note struct {
	ID         ID       `json:"id" validate:"required"`
	Title      string   `json:"title" validate:"required"`
	Content    string   `json:"content"`
	Author     string   `json:"author,omitempty"`
	AuthorID   ID       `json:"authorId,omitempty"`
	ClassName  string   `json:"className,omitempty"`
	ClassID    ID       `json:"classId,omitempty"`
	SharedWith string   `json:"sharedWith,omitempty" validate:"omitempty,oneof=private class public"`
	Tags       []string `json:"tags,omitempty"`
	CreatedAt  string   `json:"createdAt,omitempty"`
	UpdatedAt  string   `json:"updatedAt,omitempty"`
	IsOwner    bool     `json:"isOwner,omitempty"`
}

// NoteInput is the body of create and update note calls.
type NoteInput struct {
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	ClassID   ID       `json:"classId,omitempty"`
	ShareWith string   `json:"shareWith,omitempty"`
	Tags      []string `json:"tags,omitempty"`
}

// NoteShare is the body of a share note call.
type NoteShare struct {
	ShareWith string   `json:"shareWith"`
	UserIDs   []ID     `json:"userIds,omitempty"`
	Emails    []string `json:"emails,omitempty"`
}
