package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/MKhiriev/class-sync/models"
)

const notesPath = "/notes"

// classFilter builds the ?classId= query shared by the list calls.
func classFilter(classID models.ID) url.Values {
	if classID == "" {
		return nil
	}
	return url.Values{"classId": {classID.String()}}
}

func (h *httpServerAdapter) ListNotes(ctx context.Context, classID models.ID) ([]models.Note, error) {
	return doJSON[[]models.Note](ctx, h, notesPath, RequestOptions{Query: classFilter(classID)})
}

func (h *httpServerAdapter) CreateNote(ctx context.Context, input models.NoteInput) (models.Note, error) {
	return doJSON[models.Note](ctx, h, notesPath, RequestOptions{
		Method: http.MethodPost,
		Body:   input,
	})
}

// UpdateNote implements [ServerAdapter]. It PUTs input to /notes/{id}.
func (h *httpServerAdapter) UpdateNote(ctx context.Context, id models.ID, input models.NoteInput) (models.Note, error) {
	if id == "" {
		return models.Note{}, fmt.Errorf("%w: empty note id", ErrInvalidArgument)
	}

	return doJSON[models.Note](ctx, h, itemPath(notesPath, id.String()), RequestOptions{
		Method: http.MethodPut,
		Body:   input,
	})
}

func (h *httpServerAdapter) DeleteNote(ctx context.Context, id models.ID) error {
	if id == "" {
		return fmt.Errorf("%w: empty note id", ErrInvalidArgument)
	}

	_, err := h.Request(ctx, itemPath(notesPath, id.String()), RequestOptions{Method: http.MethodDelete})
	return err
}

func (h *httpServerAdapter) ShareNote(ctx context.Context, id models.ID, share models.NoteShare) (models.Note, error) {
	if id == "" {
		return models.Note{}, fmt.Errorf("%w: empty note id", ErrInvalidArgument)
	}

	return doJSON[models.Note](ctx, h, itemPath(notesPath, id.String(), "share"), RequestOptions{
		Method: http.MethodPost,
		Body:   share,
	})
}
