package utils

import (
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
//
// Example usage:
//
//	client := utils.NewHTTPClient("http://localhost:3000/api", 30*time.Second)
//	resp, err := client.R().Get("/classes")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a resty client rooted at baseURL. A zero timeout
// leaves requests bounded only by their context.
//
// Retries stay disabled and resty never turns a status code into an error,
// so each call maps to exactly one round trip whose outcome the caller
// interprets. GET requests may carry a body. Headers named by
// WithOmittedHeaders in the request context are stripped right before
// sending, including a Content-Type resty derived from the body.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	c := resty.New().
		SetBaseURL(baseURL).
		SetRetryCount(0).
		SetAllowGetMethodPayload(true).
		SetPreRequestHook(stripOmittedHeaders)
	if timeout > 0 {
		c.SetTimeout(timeout)
	}
	return &HTTPClient{Client: c}
}

func stripOmittedHeaders(_ *resty.Client, req *http.Request) error {
	for _, name := range GetOmittedHeadersFromContext(req.Context()) {
		req.Header.Del(name)
	}
	return nil
}
