package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"strconv"

	"github.com/HananMiftah/TweetClassifier/internal/analysis"
	"github.com/HananMiftah/TweetClassifier/internal/models"
	"github.com/HananMiftah/TweetClassifier/internal/storage"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func (s *Server) handleClassify(w http.ResponseWriter, r *http.Request) {
	var req models.ClassifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Dataset == "" {
		s.respondError(w, http.StatusBadRequest, "dataset is required")
		return
	}
	s.logger.Debug("classify request", zap.String("query", req.Query), zap.String("dataset", req.Dataset))
	ds, err := s.engine.LoadDataset(req.Dataset)
	if err != nil {
		s.respondError(w, http.StatusNotFound, err.Error())
		return
	}
	report, err := s.engine.Classify(r.Context(), ds, &req)
	if err != nil {
		s.logger.Error("classification failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.respondJSON(w, http.StatusOK, report)
}

func (s *Server) handleCluster(w http.ResponseWriter, r *http.Request) {
	var req models.ClusterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	var ds *models.Dataset
	if req.Dataset != "" {
		loaded, err := s.engine.LoadDataset(req.Dataset)
		if err != nil {
			s.respondError(w, http.StatusNotFound, err.Error())
			return
		}
		ds = loaded
	} else {
		ds = analysis.DatasetFromInputs(req.Documents)
	}

	s.logger.Debug("cluster request",
		zap.String("dataset", ds.Name),
		zap.Int("documents", len(ds.Documents)),
		zap.Int("clusters", req.Clusters))
	report, err := s.engine.Cluster(r.Context(), ds, &req)
	if err != nil {
		s.logger.Error("clustering failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.respondJSON(w, http.StatusOK, report)
}

func (s *Server) handleListRuns(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			s.respondError(w, http.StatusBadRequest, "limit must be an integer")
			return
		}
		limit = parsed
	}
	runs, err := s.store.ListRuns(r.Context(), limit)
	if err != nil {
		s.logger.Error("list runs failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]interface{}{
		"runs":  runs,
		"count": len(runs),
	})
}

func (s *Server) handleGetRun(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	run, err := s.store.GetRun(r.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrRunNotFound) {
			s.respondError(w, http.StatusNotFound, "run not found")
			return
		}
		s.logger.Error("get run failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.respondJSON(w, http.StatusOK, run)
}

type datasetInfo struct {
	Name   string `json:"name"`
	Path   string `json:"path"`
	Exists bool   `json:"exists"`
}

func (s *Server) handleDatasets(w http.ResponseWriter, r *http.Request) {
	datasets := make([]datasetInfo, 0, len(s.config.Datasets))
	for _, ds := range s.config.Datasets {
		_, err := os.Stat(ds.Path)
		datasets = append(datasets, datasetInfo{
			Name:   ds.Name,
			Path:   ds.Path,
			Exists: err == nil,
		})
	}
	s.respondJSON(w, http.StatusOK, map[string]interface{}{
		"datasets": datasets,
		"count":    len(datasets),
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	runCount, err := s.store.CountRuns(r.Context())
	if err != nil {
		s.logger.Error("status: count runs failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	resp := map[string]interface{}{
		"runs":     runCount,
		"datasets": len(s.config.Datasets),
	}
	if dbBytes, err := storage.DatabaseSizeBytes(s.config.Storage.DatabasePath); err == nil {
		resp["database_size_bytes"] = dbBytes
	}

	resp["config"] = map[string]interface{}{
		"k":             s.config.Analysis.K,
		"vote":          s.config.Analysis.Vote,
		"metric":        s.config.Analysis.Metric,
		"method":        s.config.Analysis.Method,
		"clusters":      s.config.Analysis.Clusters,
		"max_documents": s.config.Analysis.MaxDocuments,
		"database_path": s.config.Storage.DatabasePath,
	}
	s.respondJSON(w, http.StatusOK, resp)
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, map[string]string{"error": message})
}
