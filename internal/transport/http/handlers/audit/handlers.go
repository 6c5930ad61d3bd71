package audithandler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/oleeahmmed/UniworldHrm/internal/domain/audit"
	"github.com/oleeahmmed/UniworldHrm/internal/domain/auth"
	"github.com/oleeahmmed/UniworldHrm/internal/domain/hrm"
	"github.com/oleeahmmed/UniworldHrm/internal/platform/export"
	"github.com/oleeahmmed/UniworldHrm/internal/transport/http/api"
	"github.com/oleeahmmed/UniworldHrm/internal/transport/http/middleware"
	"github.com/oleeahmmed/UniworldHrm/internal/transport/http/shared"
)

const pageSize = 50

type EventLister interface {
	Count(ctx context.Context, filter audit.Filter) (int, error)
	List(ctx context.Context, filter audit.Filter, includeDetails bool, limit, offset int) ([]audit.Event, error)
	ListExport(ctx context.Context, filter audit.Filter) ([]audit.Event, error)
}

type Handler struct {
	Service EventLister
	Perms   middleware.PermissionStore
}

func NewHandler(service EventLister, perms middleware.PermissionStore) *Handler {
	return &Handler{Service: service, Perms: perms}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/audit", func(r chi.Router) {
		r.Use(middleware.RequirePermission(auth.PermAuditRead, h.Perms))
		r.Get("/events", h.handleListEvents)
		r.Get("/events/export", h.handleExportEvents)
	})
}

func (h *Handler) filter(w http.ResponseWriter, r *http.Request) (audit.Filter, bool) {
	var filter audit.Filter
	v := shared.NewValidator()
	v.Merge(shared.DecodeValues(r.URL.Query(), &filter)...)
	for _, issue := range hrm.Validate(filter) {
		v.Add(issue.Field, issue.Reason)
	}
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return filter, false
	}
	return filter, true
}

func (h *Handler) handleListEvents(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	filter, ok := h.filter(w, r)
	if !ok {
		return
	}

	total, err := h.Service.Count(r.Context(), filter)
	if err != nil {
		slog.Error("audit count failed", "err", err)
		api.Fail(w, http.StatusInternalServerError, "audit_list_failed", "failed to list audit events", reqID)
		return
	}
	page, err := shared.Paginate(r.URL.Query().Get("page"), pageSize, total)
	if err != nil {
		api.Fail(w, http.StatusNotFound, "not_found", "invalid page", reqID)
		return
	}

	includeDetails := r.URL.Query().Get("includeDetails") == "true"
	events, err := h.Service.List(r.Context(), filter, includeDetails, page.Size, page.Offset())
	if err != nil {
		slog.Error("audit list failed", "err", err)
		api.Fail(w, http.StatusInternalServerError, "audit_list_failed", "failed to list audit events", reqID)
		return
	}

	w.Header().Set("X-Total-Count", strconv.Itoa(total))
	api.Success(w, map[string]any{"items": events, "pagination": page}, reqID)
}

func (h *Handler) handleExportEvents(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	filter, ok := h.filter(w, r)
	if !ok {
		return
	}

	events, err := h.Service.ListExport(r.Context(), filter)
	if err != nil {
		slog.Error("audit export failed", "err", err)
		api.Fail(w, http.StatusInternalServerError, "audit_export_failed", "failed to export audit events", reqID)
		return
	}

	table := export.Table{
		Title:  "Audit Events",
		Header: []string{"id", "actor_user_id", "action", "entity_type", "entity_id", "request_id", "ip", "created_at"},
	}
	for _, evt := range events {
		table.Rows = append(table.Rows, []string{
			evt.ID, evt.ActorID, evt.Action, evt.EntityType, evt.EntityID, evt.RequestID, evt.IP,
			evt.CreatedAt.UTC().Format(time.RFC3339),
		})
	}

	w.Header().Set("Content-Type", export.CSV.ContentType())
	w.Header().Set("Content-Disposition", "attachment; filename="+export.Filename("audit-events", export.CSV, time.Now()))
	if err := export.Write(w, export.CSV, table); err != nil {
		slog.Warn("audit export write failed", "err", err)
	}
}
