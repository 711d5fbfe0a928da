// internal/api/http/job_handler.go
package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"job-board/internal/domain"
	"job-board/internal/usecase"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// JobHandler serves the JSON API under /api/.
type JobHandler struct {
	service *usecase.JobService
	logger  *slog.Logger
	tracer  trace.Tracer
	now     func() time.Time
}

// NewJobHandler creates a new JobHandler.
func NewJobHandler(service *usecase.JobService, logger *slog.Logger) *JobHandler {
	return &JobHandler{
		service: service,
		logger:  logger.With("component", "job-handler"),
		tracer:  otel.Tracer("job-board-api"),
		now:     time.Now,
	}
}

// RegisterRoutes registers the API routes to the http.ServeMux.
func (h *JobHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.Handle("/api/jobs", instrument(h.tracer, h.logger, apiPathLabel, h.handleJobs))
	mux.Handle("/api/jobs/", instrument(h.tracer, h.logger, apiPathLabel, h.handleJobs))
	mux.Handle("/api/view", instrument(h.tracer, h.logger, apiPathLabel, h.handleView))
}

func apiPathLabel(r *http.Request) string {
	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	switch {
	case len(parts) >= 2 && parts[1] == "view":
		return "/api/view"
	case len(parts) == 3:
		return "/api/jobs/{id}"
	case len(parts) == 4 && parts[3] == "apply":
		return "/api/jobs/{id}/apply"
	case len(parts) <= 2:
		return "/api/jobs"
	default:
		return "other"
	}
}

// handleJobs is a general dispatcher for the /api/jobs path.
func (h *JobHandler) handleJobs(w http.ResponseWriter, r *http.Request) {
	// e.g. /api/jobs/12/apply -> ["api", "jobs", "12", "apply"]
	pathParts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	if len(pathParts) < 2 || pathParts[1] != "jobs" || len(pathParts) > 4 {
		writeJSONError(w, http.StatusNotFound, "not found")
		return
	}

	var rawID, action string
	if len(pathParts) > 2 {
		rawID = pathParts[2]
	}
	if len(pathParts) > 3 {
		action = pathParts[3]
	}

	if rawID == "" {
		switch r.Method {
		case http.MethodGet:
			h.handleListJobs(w, r)
		case http.MethodPost:
			h.handlePostJob(w, r)
		default:
			writeJSONError(w, http.StatusMethodNotAllowed, "method not allowed")
		}
		return
	}

	id, err := parseJobID(rawID)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	switch {
	case action == "" && r.Method == http.MethodDelete:
		h.handleDeleteJob(w, r, id)
	case action == "apply" && r.Method == http.MethodPost:
		h.handleApplyJob(w, r, id)
	case action == "" || action == "apply":
		writeJSONError(w, http.StatusMethodNotAllowed, "method not allowed")
	default:
		writeJSONError(w, http.StatusNotFound, "not found")
	}
}

func (h *JobHandler) handleListJobs(w http.ResponseWriter, r *http.Request) {
	jobs := h.service.List(r.Context())
	writeJSON(w, http.StatusOK, JobListResponse{Count: len(jobs), Jobs: jobs})
}

func (h *JobHandler) handlePostJob(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "handler.PostJob")
	defer span.End()

	var req PostJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		span.SetStatus(codes.Error, "Failed to decode request body")
		span.RecordError(err)
		writeJSONError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	job, err := h.service.Post(ctx, req.ToDomainFields())
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			writeJSON(w, http.StatusUnprocessableEntity, ValidationErrorResponse{
				Error:  "Validation failed",
				Fields: verr.Fields,
			})
			return
		}
		span.SetStatus(codes.Error, "Failed to post job")
		span.RecordError(err)
		h.logger.Error("error posting job", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	span.SetAttributes(attribute.Int64("job.id", job.ID))
	writeJSON(w, http.StatusCreated, job)
}

func (h *JobHandler) handleApplyJob(w http.ResponseWriter, r *http.Request, id int64) {
	ctx, span := h.tracer.Start(r.Context(), "handler.ApplyJob")
	defer span.End()
	span.SetAttributes(attribute.Int64("job.id", id))

	job, changed, err := h.service.Apply(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrJobNotFound) {
			writeJSONError(w, http.StatusNotFound, err.Error())
			return
		}
		span.SetStatus(codes.Error, "Failed to apply")
		span.RecordError(err)
		h.logger.Error("error applying to job", "job_id", id, "error", err)
		writeJSONError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, ApplyResponse{Job: job, Changed: changed})
}

// handleDeleteJob answers 204 whether or not the job existed.
func (h *JobHandler) handleDeleteJob(w http.ResponseWriter, r *http.Request, id int64) {
	h.service.Delete(r.Context(), id)
	w.WriteHeader(http.StatusNoContent)
}

func (h *JobHandler) handleView(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSONError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	writeJSON(w, http.StatusOK, h.service.Board(r.Context(), h.now()))
}

func parseJobID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.New("invalid job id: " + raw)
	}
	return id, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
