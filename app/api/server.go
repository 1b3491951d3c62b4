package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/MotionP/obsidian-english-words/app/lookup"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type ctxKey string

const ctxClientKey ctxKey = "client"

// WordRecorder records looked up words into the document
type WordRecorder interface {
	Record(ctx context.Context, word string) (lookup.WordResult, string, error)
	Document() (string, error)
}

type Server struct {
	router chi.Router
}

func (s *Server) Run(port int) error {
	return http.ListenAndServe(fmt.Sprintf(":%d", port), s.router)
}

func (s *Server) setJsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}

func health(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("ok"))
}

func NewServer(recorder WordRecorder, jwtSecret string) *Server {
	s := &Server{}
	words := wordsService{recorder: recorder}
	auth := authService{jwtSecret: []byte(jwtSecret)}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", health)
		r.Group(func(r chi.Router) {
			r.Use(auth.ClientCtx)
			r.With(s.setJsonContentType).Post("/words/{word}", words.AddWord)
			r.Get("/document", words.GetDocument)
		})
	})

	s.router = r
	return s
}
