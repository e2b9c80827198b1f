package adapter

import (
	"context"
	"fmt"
	"net/http"

	"github.com/MKhiriev/class-sync/internal/config"
	"github.com/MKhiriev/class-sync/models"
)

// TranscribeVideo implements [ServerAdapter]. It POSTs {videoUrl} to
// /transcribe.
func (h *httpServerAdapter) TranscribeVideo(ctx context.Context, videoURL string) (models.Transcription, error) {
	if !h.features.Transcription {
		return models.Transcription{}, fmt.Errorf("%w: %s", ErrFeatureDisabled, config.FeatureTranscription)
	}

	return doJSON[models.Transcription](ctx, h, "/transcribe", RequestOptions{
		Method: http.MethodPost,
		Body:   models.TranscribeRequest{VideoURL: videoURL},
	})
}

// SearchTranscripts implements [ServerAdapter]. It POSTs {query, classId} to
// /search/transcripts.
func (h *httpServerAdapter) SearchTranscripts(ctx context.Context, query string, classID models.ID) (models.TranscriptSearchResult, error) {
	if !h.features.Search {
		return models.TranscriptSearchResult{}, fmt.Errorf("%w: %s", ErrFeatureDisabled, config.FeatureSearch)
	}

	return doJSON[models.TranscriptSearchResult](ctx, h, "/search/transcripts", RequestOptions{
		Method: http.MethodPost,
		Body:   models.TranscriptSearchRequest{Query: query, ClassID: classID},
	})
}
