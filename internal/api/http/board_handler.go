package http

import (
	"bytes"
	"embed"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"job-board/internal/domain"
	"job-board/internal/usecase"
	"job-board/internal/view"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

//go:embed templates/board.html
var templateFS embed.FS

var boardTemplate = template.Must(template.ParseFS(templateFS, "templates/board.html"))

// BoardHandler serves the HTML board and its form actions.
type BoardHandler struct {
	service *usecase.JobService
	logger  *slog.Logger
	tracer  trace.Tracer
	now     func() time.Time
}

// NewBoardHandler creates a new BoardHandler.
func NewBoardHandler(service *usecase.JobService, logger *slog.Logger) *BoardHandler {
	return &BoardHandler{
		service: service,
		logger:  logger.With("component", "board-handler"),
		tracer:  otel.Tracer("job-board-web"),
		now:     time.Now,
	}
}

type formState struct {
	Values domain.JobFields
	Errors domain.FieldErrors
}

type pageData struct {
	Board            view.Model
	Form             formState
	Toast            *domain.Notification
	JobTypes         []domain.JobType
	ExperienceLevels []domain.Experience
}

// RegisterRoutes registers the board routes to the http.ServeMux.
func (h *BoardHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.Handle("/", instrument(h.tracer, h.logger, boardPathLabel, h.handleBoard))
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
}

func boardPathLabel(r *http.Request) string {
	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	switch {
	case r.URL.Path == "/":
		return "/"
	case len(parts) == 1 && parts[0] == "jobs":
		return "/jobs"
	case len(parts) == 3 && parts[0] == "jobs" && isFormAction(parts[2]):
		return "/jobs/{id}/" + parts[2]
	default:
		return "other"
	}
}

func isFormAction(action string) bool {
	return action == "apply" || action == "delete"
}

// handleBoard dispatches the page and its form posts.
func (h *BoardHandler) handleBoard(w http.ResponseWriter, r *http.Request) {
	// e.g. /jobs/12/delete -> ["jobs", "12", "delete"]
	pathParts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")

	switch {
	case r.URL.Path == "/":
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h.renderPage(w, r, http.StatusOK, formState{})
	case len(pathParts) == 1 && pathParts[0] == "jobs":
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h.handlePostForm(w, r)
	case len(pathParts) == 3 && pathParts[0] == "jobs":
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		id, err := parseJobID(pathParts[1])
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		switch pathParts[2] {
		case "apply":
			h.handleApplyForm(w, r, id)
		case "delete":
			h.handleDeleteForm(w, r, id)
		default:
			http.NotFound(w, r)
		}
	default:
		http.NotFound(w, r)
	}
}

func (h *BoardHandler) handlePostForm(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "handler.PostForm")
	defer span.End()

	if err := r.ParseForm(); err != nil {
		span.RecordError(err)
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	fields := domain.JobFields{
		Title:       r.PostForm.Get("title"),
		Company:     r.PostForm.Get("company"),
		Location:    r.PostForm.Get("location"),
		Type:        domain.JobType(r.PostForm.Get("type")),
		Experience:  domain.Experience(r.PostForm.Get("experience")),
		Description: r.PostForm.Get("description"),
	}

	job, err := h.service.Post(ctx, fields)
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			h.renderPage(w, r.WithContext(ctx), http.StatusUnprocessableEntity, formState{Values: fields, Errors: verr.Fields})
			return
		}
		span.SetStatus(codes.Error, "Failed to post job")
		span.RecordError(err)
		h.logger.Error("error posting job", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	span.SetAttributes(attribute.Int64("job.id", job.ID))
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// handleApplyForm ignores missing jobs; the board simply re-renders.
func (h *BoardHandler) handleApplyForm(w http.ResponseWriter, r *http.Request, id int64) {
	if _, _, err := h.service.Apply(r.Context(), id); err != nil && !errors.Is(err, domain.ErrJobNotFound) {
		h.logger.Error("error applying to job", "job_id", id, "error", err)
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *BoardHandler) handleDeleteForm(w http.ResponseWriter, r *http.Request, id int64) {
	h.service.Delete(r.Context(), id)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *BoardHandler) renderPage(w http.ResponseWriter, r *http.Request, status int, form formState) {
	now := h.now()
	if form.Errors == nil {
		form.Errors = domain.FieldErrors{}
	}

	data := pageData{
		Board:            h.service.Board(r.Context(), now),
		Form:             form,
		JobTypes:         domain.JobTypes,
		ExperienceLevels: domain.ExperienceLevels,
	}
	if n, ok := h.service.Notification(now); ok {
		data.Toast = &n
	}

	var buf bytes.Buffer
	if err := boardTemplate.Execute(&buf, data); err != nil {
		h.logger.Error("error rendering board", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
