package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/class-sync/internal/config"
	"github.com/MKhiriev/class-sync/internal/logger"
	"github.com/MKhiriev/class-sync/internal/session"
	"github.com/MKhiriev/class-sync/internal/utils"
	"github.com/MKhiriev/class-sync/internal/validators"
)

const (
	headerContentType   = "Content-Type"
	headerAuthorization = "Authorization"
	headerRequestID     = "X-Request-Id"

	contentTypeJSON = "application/json"
)

type httpServerAdapter struct {
	client   *utils.HTTPClient
	session  *session.Session
	features config.Features

	validator validators.Validator
	ids       *utils.UUIDGenerator

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the HTTP implementation of [ServerAdapter].
//
// An empty adapterCfg.BaseURL falls back to [config.DefaultBaseURL]. The
// bearer token is read from sess at the start of every request; a nil sess
// behaves as a session without storage.
//
// Returns an error if the base URL cannot be parsed as an absolute URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, features config.Features, sess *session.Session, log *logger.Logger) (ServerAdapter, error) {
	if log == nil {
		log = logger.Nop()
	}

	raw := adapterCfg.BaseURL
	if strings.TrimSpace(raw) == "" {
		raw = config.DefaultBaseURL
	}
	baseURL, err := config.NormalizeBaseURL(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter base url: %w", err)
	}

	if sess == nil {
		sess = session.New(context.Background(), nil, log)
	}

	return &httpServerAdapter{
		client:    utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		session:   sess,
		features:  features,
		validator: validators.NewTagValidator(),
		ids:       utils.NewUUIDGenerator(),
		logger:    log.GetChildLogger("adapter"),
	}, nil
}

// Request implements [ServerAdapter].
func (h *httpServerAdapter) Request(ctx context.Context, path string, opts RequestOptions) (json.RawMessage, error) {
	req := h.newRequest(ctx, opts.Headers, true)

	if len(opts.Query) > 0 {
		req.SetQueryParamsFromValues(opts.Query)
	}
	if opts.Body != nil {
		body, err := encodeBody(opts.Body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		req.SetBody(body)
	}

	return h.execute(req, opts.Method, path)
}

// newRequest merges headers in order: the JSON content type (when jsonBody
// is set), the bearer token, the request id, then overrides. An override with
// an empty value deletes the header, and the transport is kept from adding it
// back.
func (h *httpServerAdapter) newRequest(ctx context.Context, overrides map[string]string, jsonBody bool) *resty.Request {
	headers := make(map[string]string, 3+len(overrides))
	if jsonBody {
		headers[headerContentType] = contentTypeJSON
	}
	if token := h.session.Token(); token != "" {
		headers[headerAuthorization] = "Bearer " + token
	}

	requestID, ok := utils.GetRequestIDFromContext(ctx)
	if !ok {
		requestID = h.ids.Generate()
	}
	headers[headerRequestID] = requestID

	var omitted []string
	for k, v := range overrides {
		k = http.CanonicalHeaderKey(k)
		if v == "" {
			delete(headers, k)
			omitted = append(omitted, k)
			continue
		}
		headers[k] = v
	}

	return h.client.R().
		SetContext(utils.WithOmittedHeaders(ctx, omitted...)).
		SetHeaders(headers)
}

func (h *httpServerAdapter) execute(req *resty.Request, method, path string) (json.RawMessage, error) {
	method = methodOrGet(method)

	log := h.logger.With().
		Str("method", method).
		Str("path", path).
		Str("request_id", req.Header.Get(headerRequestID)).
		Logger()

	resp, err := req.Execute(method, path)
	if err != nil {
		log.Error().Err(err).Msg("request failed")
		return nil, fmt.Errorf("%w: %s %s: %w", ErrTransport, method, path, err)
	}

	log.Debug().
		Int("status", resp.StatusCode()).
		Dur("duration", resp.Time()).
		Msg("request completed")

	if err = mapHTTPError(resp); err != nil {
		log.Error().Int("status", resp.StatusCode()).Msg("request rejected")
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}

	if resp.StatusCode() == http.StatusNoContent {
		return nil, nil
	}

	body := resp.Body()
	if !json.Valid(body) {
		log.Error().Int("status", resp.StatusCode()).Int("size", len(body)).Msg("response is not valid JSON")
		return nil, fmt.Errorf("%w: %s %s", ErrMalformedResponse, method, path)
	}

	return json.RawMessage(bytes.Clone(body)), nil
}

func methodOrGet(method string) string {
	if method == "" {
		return http.MethodGet
	}
	return strings.ToUpper(method)
}

func encodeBody(body any) ([]byte, error) {
	switch b := body.(type) {
	case json.RawMessage:
		return b, nil
	case []byte:
		return b, nil
	default:
		return json.Marshal(body)
	}
}

// doJSON runs a request and decodes the response into T, validating it
// against its struct tags.
func doJSON[T any](ctx context.Context, h *httpServerAdapter, path string, opts RequestOptions) (T, error) {
	var out T

	raw, err := h.Request(ctx, path, opts)
	if err != nil {
		return out, err
	}
	if err = h.decode(ctx, raw, &out); err != nil {
		return out, fmt.Errorf("%s %s: %w", methodOrGet(opts.Method), path, err)
	}
	return out, nil
}

func (h *httpServerAdapter) decode(ctx context.Context, raw json.RawMessage, out any) error {
	if raw == nil {
		return fmt.Errorf("%w: empty body", ErrInvalidResponse)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidResponse, err)
	}
	if err := h.validator.Validate(ctx, out); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidResponse, err)
	}
	return nil
}

// itemPath joins a collection path and an escaped id.
func itemPath(collection string, id string, suffix ...string) string {
	parts := append([]string{collection, url.PathEscape(id)}, suffix...)
	return strings.Join(parts, "/")
}
