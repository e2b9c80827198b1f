package adapter

import (
	"context"
	"fmt"
	"net/http"

	"github.com/MKhiriev/class-sync/models"
)

const homeworkPath = "/homework"

func (h *httpServerAdapter) ListHomework(ctx context.Context, classID models.ID) ([]models.Homework, error) {
	return doJSON[[]models.Homework](ctx, h, homeworkPath, RequestOptions{Query: classFilter(classID)})
}

func (h *httpServerAdapter) CreateHomework(ctx context.Context, input models.HomeworkInput) (models.Homework, error) {
	return doJSON[models.Homework](ctx, h, homeworkPath, RequestOptions{
		Method: http.MethodPost,
		Body:   input,
	})
}

// SubmitHomework implements [ServerAdapter]. It POSTs the submission to
// /homework/{id}/submit.
func (h *httpServerAdapter) SubmitHomework(ctx context.Context, id models.ID, submission models.Submission) (models.Homework, error) {
	if id == "" {
		return models.Homework{}, fmt.Errorf("%w: empty homework id", ErrInvalidArgument)
	}

	return doJSON[models.Homework](ctx, h, itemPath(homeworkPath, id.String(), "submit"), RequestOptions{
		Method: http.MethodPost,
		Body:   submission,
	})
}

func (h *httpServerAdapter) GradeHomework(ctx context.Context, id models.ID, grade models.Grade) (models.Homework, error) {
	if id == "" {
		return models.Homework{}, fmt.Errorf("%w: empty homework id", ErrInvalidArgument)
	}

	return doJSON[models.Homework](ctx, h, itemPath(homeworkPath, id.String(), "grade"), RequestOptions{
		Method: http.MethodPost,
		Body:   grade,
	})
}
