package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/steelworks/partsearch/internal/models"
)

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	sq := models.SearchQuery{Query: r.URL.Query().Get("q"), Page: 1}
	if v := r.URL.Query().Get("page"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			s.respondError(w, http.StatusBadRequest, "page must be an integer")
			return
		}
		sq.Page = n
	}
	sq.Normalize()

	s.logger.Debug("search request", zap.String("query", sq.Query), zap.Int("page", sq.Page))
	response, err := s.engine.Search(sq.Query, sq.Page)
	if err != nil {
		s.logger.Error("search failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.respondJSON(w, http.StatusOK, response)
}

func (s *Server) handleSuggestions(w http.ResponseWriter, r *http.Request) {
	partial := r.URL.Query().Get("q")
	limit := 5
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}
	suggestions := s.engine.Suggestions(partial, limit)
	if suggestions == nil {
		suggestions = []string{}
	}
	s.respondJSON(w, http.StatusOK, map[string]interface{}{"suggestions": suggestions})
}

func (s *Server) handleRecent(w http.ResponseWriter, r *http.Request) {
	recent := []string{}
	if searches := s.engine.RecentSearches(); searches != nil {
		recent = searches
	}
	s.respondJSON(w, http.StatusOK, map[string]interface{}{"recent": recent})
}

func (s *Server) handleReload(w http.ResponseWriter, r *http.Request) {
	s.logger.Debug("catalog reload request")
	if err := s.provider.Reload(r.Context()); err != nil {
		s.logger.Error("catalog reload failed", zap.Error(err))
		s.respondError(w, http.StatusBadGateway, err.Error())
		return
	}
	meta := s.provider.Meta()
	s.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "reloaded",
		"records": meta.RecordCount,
	})
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	meta := s.provider.Meta()
	resp := map[string]interface{}{
		"catalog": meta,
	}
	if s.tracker != nil {
		resp["analytics"] = s.tracker.Summary()
	}
	s.respondJSON(w, http.StatusOK, resp)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, map[string]string{"error": message})
}
