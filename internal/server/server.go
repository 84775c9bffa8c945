// Package server exposes a cache over HTTP.
package server

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"

	"gocache/internal/cache"
)

// maxValueBytes bounds request bodies on PUT.
const maxValueBytes = 1 << 20

// Server serves put/get/delete/keys/search/stats for one cache.
type Server struct {
	cache *cache.Cache[string, string]
	log   logrus.FieldLogger
}

// New returns a Server over c. A nil log discards output.
func New(c *cache.Cache[string, string], log logrus.FieldLogger) *Server {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return &Server{cache: c, log: log}
}

// Handler returns the routed, CORS-wrapped handler.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/", s.health).Methods(http.MethodGet)
	r.HandleFunc("/keys", s.listKeys).Methods(http.MethodGet)
	r.HandleFunc("/keys/{key}", s.get).Methods(http.MethodGet)
	r.HandleFunc("/keys/{key}", s.put).Methods(http.MethodPut)
	r.HandleFunc("/keys/{key}", s.delete).Methods(http.MethodDelete)
	r.HandleFunc("/search", s.search).Methods(http.MethodGet).Queries("value", "{value}")
	r.HandleFunc("/stats", s.stats).Methods(http.MethodGet)

	return cors.New(cors.Options{
		AllowedMethods: []string{http.MethodGet, http.MethodPut, http.MethodDelete},
	}).Handler(r)
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	fmt.Fprintln(w, "gocache running")
}

func (s *Server) put(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["key"]
	body, err := io.ReadAll(io.LimitReader(r.Body, maxValueBytes+1))
	if err != nil {
		http.Error(w, "read body", http.StatusBadRequest)
		return
	}
	if len(body) > maxValueBytes {
		http.Error(w, "value too large", http.StatusRequestEntityTooLarge)
		return
	}

	s.cache.Put(key, string(body))
	s.log.WithFields(logrus.Fields{"key": key, "bytes": len(body)}).Info("put")
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) get(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["key"]
	v, ok := s.cache.Get(key)
	if !ok {
		http.Error(w, "key not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	io.WriteString(w, v)
}

func (s *Server) delete(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["key"]
	if !s.cache.Delete(key) {
		http.Error(w, "key not found", http.StatusNotFound)
		return
	}
	s.log.WithField("key", key).Info("delete")
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) listKeys(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, nonNil(s.cache.Keys()))
}

func (s *Server) search(w http.ResponseWriter, r *http.Request) {
	want := mux.Vars(r)["value"]
	s.writeJSON(w, nonNil(s.cache.Search(func(v string) bool { return v == want })))
}

func (s *Server) stats(w http.ResponseWriter, r *http.Request) {
	st := s.cache.Stats()
	s.writeJSON(w, struct {
		cache.Stats
		Len      int `json:"len"`
		Capacity int `json:"capacity"`
	}{st, s.cache.Len(), s.cache.Capacity()})
}

func (s *Server) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.WithError(err).Warn("encode response")
	}
}

// nonNil keeps empty results encoding as [] rather than null.
func nonNil(keys []string) []string {
	if keys == nil {
		return []string{}
	}
	return keys
}
