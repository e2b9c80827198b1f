package adapter

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/class-sync/internal/config"
	"github.com/MKhiriev/class-sync/internal/logger"
	"github.com/MKhiriev/class-sync/internal/session"
	"github.com/MKhiriev/class-sync/internal/store"
	"github.com/MKhiriev/class-sync/internal/testutil"
)

var allFeatures = config.Features{Transcription: true, Search: true, Uploads: true}

// captured is what the stub server saw of the last request.
type captured struct {
	Method      string
	EscapedPath string
	Query       url.Values
	Header      http.Header
	Body        []byte
}

// stubServer is an httptest server mounting API routes under /api and
// recording every request it receives.
type stubServer struct {
	*httptest.Server

	mu   sync.Mutex
	last captured
	hits atomic.Int32
}

func newStubServer(t *testing.T, mount func(r chi.Router)) *stubServer {
	t.Helper()

	s := &stubServer{}
	r := chi.NewRouter()
	r.Use(s.record)
	r.Route("/api", mount)

	s.Server = httptest.NewServer(r)
	t.Cleanup(s.Close)
	return s
}

func (s *stubServer) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		r.Body = io.NopCloser(bytes.NewReader(body))

		s.mu.Lock()
		s.last = captured{
			Method:      r.Method,
			EscapedPath: r.URL.EscapedPath(),
			Query:       r.URL.Query(),
			Header:      r.Header.Clone(),
			Body:        body,
		}
		s.mu.Unlock()
		s.hits.Add(1)

		next.ServeHTTP(w, r)
	})
}

func (s *stubServer) Last() captured {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}

func (s *stubServer) Hits() int {
	return int(s.hits.Load())
}

func (s *stubServer) APIURL() string {
	return s.URL + "/api"
}

func respond(status int, body any) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		_, _ = testutil.WriteJSON(w, body, status)
	}
}

func respondRaw(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}
}

// newTestAdapter builds an adapter for baseURL whose session is backed by
// storage.
func newTestAdapter(t *testing.T, baseURL string, storage store.Storage, features config.Features) (*httpServerAdapter, *session.Session) {
	t.Helper()

	sess := session.New(context.Background(), storage, logger.Nop())
	a, err := NewHTTPServerAdapter(config.ClientAdapter{BaseURL: baseURL, RequestTimeout: 5 * time.Second}, features, sess, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter), sess
}

// storageWithToken returns a memory storage holding token under the session
// key.
func storageWithToken(t *testing.T, token string) *store.MemoryStorage {
	t.Helper()

	s := store.NewMemoryStorage()
	require.NoError(t, s.Set(context.Background(), session.TokenKey, token))
	return s
}
