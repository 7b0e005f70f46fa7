package handler

import (
	"bytes"
	"net/http"
	"strconv"

	"github.com/matdash/matdash-backend/internal/materials/service"
	"github.com/matdash/matdash-backend/internal/materials/view"
	"github.com/matdash/matdash-backend/pkg/errors"
	"github.com/matdash/matdash-backend/pkg/httputil"
	"github.com/matdash/matdash-backend/pkg/logger"
)

// DashboardHandler serves the dashboard page and its JSON API.
type DashboardHandler struct {
	service *service.DashboardService
	view    *view.View
	logger  *logger.Logger
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(svc *service.DashboardService, v *view.View, log *logger.Logger) *DashboardHandler {
	return &DashboardHandler{
		service: svc,
		view:    v,
		logger:  log,
	}
}

// Page renders the HTML dashboard. Both aggregation queries and the template
// execution sit inside one error boundary: any failure yields a single
// full-page error message and nothing else.
func (h *DashboardHandler) Page(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	dash, err := h.service.Build(r.Context())
	if err != nil {
		h.renderError(w, err)
		return
	}

	// Render into a buffer so a template failure can still fall back to the
	// error page instead of a half-written response.
	var buf bytes.Buffer
	if err := h.view.RenderDashboard(&buf, dash); err != nil {
		h.renderError(w, err)
		return
	}

	buf.WriteTo(w)
}

func (h *DashboardHandler) renderError(w http.ResponseWriter, err error) {
	h.logger.Error().Err(err).Msg("dashboard render failed")

	message := err.Error()
	var appErr *errors.AppError
	if errors.As(err, &appErr) {
		message = appErr.Message
	}

	w.WriteHeader(http.StatusInternalServerError)
	if renderErr := h.view.RenderError(w, message); renderErr != nil {
		h.logger.Error().Err(renderErr).Msg("error page render failed")
	}
}

// Dashboard returns the full dashboard dataset as JSON.
func (h *DashboardHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	dash, err := h.service.Build(r.Context())
	if err != nil {
		httputil.Error(w, err)
		return
	}

	httputil.JSON(w, http.StatusOK, dash)
}

// Languages returns the per-language summary rows as JSON.
func (h *DashboardHandler) Languages(w http.ResponseWriter, r *http.Request) {
	languages, err := h.service.Languages(r.Context())
	if err != nil {
		httputil.Error(w, err)
		return
	}

	httputil.JSON(w, http.StatusOK, languages)
}

// materialTypesParams are the optional query parameters for MaterialTypes.
// Absent values fall back to the configured defaults.
type materialTypesParams struct {
	Language string `validate:"omitempty,min=1,max=2,alpha"`
	Limit    int    `validate:"omitempty,min=1,max=50"`
}

// MaterialTypes returns the top material type groups as JSON.
func (h *DashboardHandler) MaterialTypes(w http.ResponseWriter, r *http.Request) {
	params := materialTypesParams{
		Language: r.URL.Query().Get("language"),
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			httputil.Error(w, errors.BadRequest("limit must be an integer"))
			return
		}
		params.Limit = limit
	}

	if err := httputil.Validate(params); err != nil {
		httputil.Error(w, err)
		return
	}

	types, err := h.service.MaterialTypes(r.Context(), params.Language, params.Limit)
	if err != nil {
		httputil.Error(w, err)
		return
	}

	httputil.JSON(w, http.StatusOK, types)
}
