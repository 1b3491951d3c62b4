package api

import (
	"context"
	"net/http"
	"net/http/httptest"

	"github.com/MotionP/obsidian-english-words/app/lookup"
)

const (
	testJWTSecret = "tokentokentokentoken"
	testClient    = "obsidian"
)

// emptyHandler is a dummy handler for testing.
type emptyHandler struct{}

func (h *emptyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {}

// fakeRecorder returns preset values and remembers recorded words
type fakeRecorder struct {
	result   lookup.WordResult
	block    string
	err      error
	document string
	docErr   error
	words    []string
}

func (f *fakeRecorder) Record(_ context.Context, word string) (lookup.WordResult, string, error) {
	f.words = append(f.words, word)
	if f.err != nil {
		return lookup.WordResult{}, "", f.err
	}
	return f.result, f.block, nil
}

func (f *fakeRecorder) Document() (string, error) {
	return f.document, f.docErr
}

// getTestServer returns a test server.
func getTestServer(recorder WordRecorder) (*httptest.Server, func()) {
	if recorder == nil {
		recorder = &fakeRecorder{}
	}
	server := NewServer(recorder, testJWTSecret)
	srv := httptest.NewServer(server.router)
	return srv, srv.Close
}

// getTestJWT returns a test JWT signed with testJWTSecret
func getTestJWT() string {
	token, _ := CreateToken(testJWTSecret, testClient)
	return "Bearer " + token
}
