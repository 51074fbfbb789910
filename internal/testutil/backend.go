package testutil

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
)

type cannedResponse struct {
	status int
	body   string
	hang   bool
}

// FakeBackend is an in-process stand-in for the reporting backend. Paths are
// relative to BackendPrefix; unregistered paths answer 404.
type FakeBackend struct {
	srv *httptest.Server

	mu        sync.Mutex
	responses map[string]cannedResponse
	hits      map[string]int
	canceled  chan string
}

// NewFakeBackend starts a fake backend that is closed when the test ends.
func NewFakeBackend(t *testing.T) *FakeBackend {
	t.Helper()

	b := &FakeBackend{
		responses: make(map[string]cannedResponse),
		hits:      make(map[string]int),
		canceled:  make(chan string, 16),
	}

	r := chi.NewRouter()
	r.Get(BackendPrefix+"*", b.serve)
	b.srv = httptest.NewServer(r)
	t.Cleanup(b.srv.Close)

	return b
}

// BaseURL is the backend root the client should be pointed at.
func (b *FakeBackend) BaseURL() string {
	return b.srv.URL + BackendPrefix
}

// Respond registers a canned status and body for path.
func (b *FakeBackend) Respond(path string, status int, body string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.responses[path] = cannedResponse{status: status, body: body}
}

// Hang makes path block until the caller gives up on the request.
func (b *FakeBackend) Hang(path string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.responses[path] = cannedResponse{hang: true}
}

// Hits returns how many requests path has received.
func (b *FakeBackend) Hits(path string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.hits[path]
}

// Canceled delivers the path of every hanging request whose caller went away.
func (b *FakeBackend) Canceled() <-chan string {
	return b.canceled
}

func (b *FakeBackend) serve(w http.ResponseWriter, r *http.Request) {
	path := chi.URLParam(r, "*")

	b.mu.Lock()
	b.hits[path]++
	resp, ok := b.responses[path]
	b.mu.Unlock()

	if !ok {
		http.NotFound(w, r)
		return
	}
	if resp.hang {
		<-r.Context().Done()
		b.canceled <- path
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.status)
	_, _ = w.Write([]byte(resp.body))
}
