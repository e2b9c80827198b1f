package adapter

import (
	"context"
	"fmt"
	"net/http"

	"github.com/MKhiriev/class-sync/models"
)

func (h *httpServerAdapter) ListClasses(ctx context.Context) ([]models.Class, error) {
	return doJSON[[]models.Class](ctx, h, "/classes", RequestOptions{})
}

func (h *httpServerAdapter) CreateClass(ctx context.Context, input models.ClassInput) (models.Class, error) {
	return doJSON[models.Class](ctx, h, "/classes", RequestOptions{
		Method: http.MethodPost,
		Body:   input,
	})
}

// JoinClass implements [ServerAdapter]. It POSTs {code} to /classes/join.
func (h *httpServerAdapter) JoinClass(ctx context.Context, code string) (models.Class, error) {
	return doJSON[models.Class](ctx, h, "/classes/join", RequestOptions{
		Method: http.MethodPost,
		Body:   models.JoinClassRequest{Code: code},
	})
}

func (h *httpServerAdapter) LeaveClass(ctx context.Context, classID models.ID) error {
	if classID == "" {
		return fmt.Errorf("%w: empty class id", ErrInvalidArgument)
	}

	_, err := h.Request(ctx, "/classes/leave", RequestOptions{
		Method: http.MethodPost,
		Body:   models.LeaveClassRequest{ClassID: classID},
	})
	return err
}
