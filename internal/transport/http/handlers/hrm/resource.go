package hrmhandler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/oleeahmmed/UniworldHrm/internal/domain/audit"
	"github.com/oleeahmmed/UniworldHrm/internal/domain/auth"
	"github.com/oleeahmmed/UniworldHrm/internal/domain/hrm"
	"github.com/oleeahmmed/UniworldHrm/internal/platform/export"
	"github.com/oleeahmmed/UniworldHrm/internal/platform/query"
	"github.com/oleeahmmed/UniworldHrm/internal/requestctx"
	"github.com/oleeahmmed/UniworldHrm/internal/transport/http/api"
	"github.com/oleeahmmed/UniworldHrm/internal/transport/http/forms"
	"github.com/oleeahmmed/UniworldHrm/internal/transport/http/middleware"
	"github.com/oleeahmmed/UniworldHrm/internal/transport/http/shared"
)

const (
	listPageSize = 10
	cardPageSize = 12
)

type record[T any] interface {
	*T
	Columns() query.Columns
	Key() string
}

type creatorStamper interface {
	StampCreator(userID string)
}

type updaterStamper interface {
	StampUpdater(userID string)
}

// resource serves the list, detail, form and mutation routes of one entity.
// F is the entity's query-string filter.
type resource[T any, P record[T], F hrm.Filter] struct {
	path   string
	entity string
	label  string
	base   string
	repo   hrm.Repository[T]
	perms  middleware.PermissionStore

	defaults func() *T
	header   []string
	row      func(item *T) []string

	// Optional behaviour.
	subject        func(item *T) string
	redirectDetail bool
	initial        func(ctx context.Context) *T
	detail         func(ctx context.Context, id string, hide func(*T)) (any, error)
	attach         func(r *http.Request, item, existing *T) error
	detach         func(stale, current *T)
	extra          func(r chi.Router)
	itemExtra      func(r chi.Router)

	// redact blanks the fields reserved for holders of the sensitive
	// capability.
	sensitive string
	redact    func(item *T)
}

type permissionFlags struct {
	CanCreate bool `json:"canCreate"`
	CanView   bool `json:"canView"`
	CanUpdate bool `json:"canUpdate"`
	CanDelete bool `json:"canDelete"`
}

type listResponse[T any, F any] struct {
	Items       []T             `json:"items"`
	Pagination  shared.Page     `json:"pagination"`
	Filters     F               `json:"filters"`
	Permissions permissionFlags `json:"permissions"`
}

type mutationResponse struct {
	ID       string `json:"id,omitempty"`
	Deleted  int64  `json:"deleted,omitempty"`
	Message  string `json:"message"`
	Redirect string `json:"redirect"`
}

type bulkDeleteRequest struct {
	IDs     []string `json:"ids" form:"ids"`
	Confirm bool     `json:"confirm" form:"confirm"`
}

func (res *resource[T, P, F]) capability(action auth.Action) string {
	return auth.Capability(action, res.entity)
}

func (res *resource[T, P, F]) mount(r chi.Router) {
	view := res.capability(auth.ActionView)
	add := res.capability(auth.ActionAdd)
	change := res.capability(auth.ActionChange)
	remove := res.capability(auth.ActionDelete)

	r.Route("/"+res.path, func(r chi.Router) {
		r.Get("/", middleware.Require(res.perms, view, res.paged(listPageSize)))
		r.Post("/", middleware.Require(res.perms, add, res.create))
		r.Get("/new", middleware.Require(res.perms, add, res.newForm))
		r.Get("/export", middleware.Require(res.perms, view, res.export))
		r.Post("/bulk-delete", middleware.Require(res.perms, remove, res.bulkDelete))
		if res.extra != nil {
			res.extra(r)
		}
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", middleware.Require(res.perms, view, res.show))
			r.Put("/", middleware.Require(res.perms, change, res.update))
			r.Post("/", middleware.Require(res.perms, change, res.update))
			r.Delete("/", middleware.Require(res.perms, remove, res.delete))
			r.Get("/edit", middleware.Require(res.perms, change, res.editForm))
			if res.itemExtra != nil {
				res.itemExtra(r)
			}
		})
	})
}

func (res *resource[T, P, F]) collection() string {
	return res.base + "/" + res.path
}

func (res *resource[T, P, F]) subjectOf(item *T) string {
	if res.subject != nil {
		return res.subject(item)
	}
	return res.label
}

// filtered decodes and validates the query-string filter and applies it.
func (res *resource[T, P, F]) filtered(w http.ResponseWriter, r *http.Request) (F, query.Query, bool) {
	var filter F
	v := shared.NewValidator()
	v.Merge(shared.DecodeValues(r.URL.Query(), &filter)...)
	v.Merge(validationIssues(hrm.Validate(filter))...)
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return filter, query.Query{}, false
	}
	return filter, filter.Apply(query.Query{}), true
}

func (res *resource[T, P, F]) paged(size int) middleware.PrincipalHandler {
	return func(w http.ResponseWriter, r *http.Request, p auth.Principal) {
		reqID := middleware.GetRequestID(r.Context())
		filter, q, ok := res.filtered(w, r)
		if !ok {
			return
		}

		total, err := res.repo.Count(r.Context(), q)
		if err != nil {
			res.fail(w, r, "list", err)
			return
		}
		page, err := shared.Paginate(r.URL.Query().Get("page"), size, total)
		if err != nil {
			api.Fail(w, http.StatusNotFound, "not_found", "invalid page", reqID)
			return
		}
		items, err := res.repo.List(r.Context(), q.Page(page.Size, page.Offset()))
		if err != nil {
			res.fail(w, r, "list", err)
			return
		}
		res.present(r.Context(), p, items)

		api.Success(w, listResponse[T, F]{
			Items:       items,
			Pagination:  page,
			Filters:     filter,
			Permissions: res.permissions(r.Context(), p),
		}, reqID)
	}
}

func (res *resource[T, P, F]) all(w http.ResponseWriter, r *http.Request, p auth.Principal) {
	_, q, ok := res.filtered(w, r)
	if !ok {
		return
	}
	items, err := res.repo.List(r.Context(), q)
	if err != nil {
		res.fail(w, r, "list", err)
		return
	}
	res.present(r.Context(), p, items)
	api.Success(w, map[string]any{"items": items, "total": len(items)}, middleware.GetRequestID(r.Context()))
}

// concealer returns the redaction to apply for p, or nil when p may see
// every field.
func (res *resource[T, P, F]) concealer(ctx context.Context, p auth.Principal) func(*T) {
	if res.redact == nil {
		return nil
	}
	ok, err := res.perms.HasPermission(ctx, p.RoleID, res.sensitive)
	if err != nil {
		slog.Warn("permission lookup failed", "err", err, "entity", res.entity)
	}
	if ok {
		return nil
	}
	return res.redact
}

func (res *resource[T, P, F]) present(ctx context.Context, p auth.Principal, items []T) {
	hide := res.concealer(ctx, p)
	if hide == nil {
		return
	}
	for i := range items {
		hide(&items[i])
	}
}

func (res *resource[T, P, F]) permissions(ctx context.Context, p auth.Principal) permissionFlags {
	has := func(action auth.Action) bool {
		ok, err := res.perms.HasPermission(ctx, p.RoleID, res.capability(action))
		if err != nil {
			slog.Warn("permission lookup failed", "err", err, "entity", res.entity)
		}
		return ok
	}
	return permissionFlags{
		CanCreate: has(auth.ActionAdd),
		CanView:   has(auth.ActionView),
		CanUpdate: has(auth.ActionChange),
		CanDelete: has(auth.ActionDelete),
	}
}

// pathID returns the {id} URL parameter, answering 404 when it is not a UUID.
func (res *resource[T, P, F]) pathID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := chi.URLParam(r, "id")
	if _, err := uuid.Parse(id); err != nil {
		api.Fail(w, http.StatusNotFound, "not_found", res.label+" not found", middleware.GetRequestID(r.Context()))
		return "", false
	}
	return id, true
}

func (res *resource[T, P, F]) show(w http.ResponseWriter, r *http.Request, p auth.Principal) {
	id, ok := res.pathID(w, r)
	if !ok {
		return
	}
	hide := res.concealer(r.Context(), p)
	if res.detail != nil {
		out, err := res.detail(r.Context(), id, hide)
		if err != nil {
			res.fail(w, r, "get", err)
			return
		}
		api.Success(w, out, middleware.GetRequestID(r.Context()))
		return
	}
	item, err := res.repo.Get(r.Context(), id)
	if err != nil {
		res.fail(w, r, "get", err)
		return
	}
	if hide != nil {
		hide(item)
	}
	api.Success(w, item, middleware.GetRequestID(r.Context()))
}

func (res *resource[T, P, F]) newForm(w http.ResponseWriter, r *http.Request, _ auth.Principal) {
	item := res.defaults()
	if res.initial != nil {
		item = res.initial(r.Context())
	}
	res.form(w, r, item)
}

func (res *resource[T, P, F]) editForm(w http.ResponseWriter, r *http.Request, _ auth.Principal) {
	id, ok := res.pathID(w, r)
	if !ok {
		return
	}
	item, err := res.repo.Get(r.Context(), id)
	if err != nil {
		res.fail(w, r, "get", err)
		return
	}
	res.form(w, r, item)
}

func (res *resource[T, P, F]) form(w http.ResponseWriter, r *http.Request, item *T) {
	schema, _ := forms.For(res.entity)
	api.Success(w, map[string]any{"schema": schema, "initial": item}, middleware.GetRequestID(r.Context()))
}

// decode reads the submitted record. Form bodies start from the zero value
// so an unticked checkbox means false; JSON bodies start from the defaults,
// or from the stored row on update.
func (res *resource[T, P, F]) decode(r *http.Request, existing *T) (*T, []shared.ValidationIssue, error) {
	if shared.IsFormBody(r) {
		item := new(T)
		issues, err := shared.DecodeForm(r, item)
		return item, issues, err
	}
	item := res.defaults()
	if existing != nil {
		item = query.Clone[T, P](existing)
	}
	return item, nil, shared.DecodeJSON(r, item)
}

func (res *resource[T, P, F]) event(r *http.Request, p auth.Principal, verb string, before any) audit.Entry {
	return audit.Entry{
		ActorID:    p.UserID,
		Action:     audit.Action(res.entity, verb),
		EntityType: res.entity,
		RequestID:  requestctx.RequestID(r.Context()),
		IP:         requestctx.ClientIP(r.Context()),
		Before:     before,
	}
}

func (res *resource[T, P, F]) create(w http.ResponseWriter, r *http.Request, p auth.Principal) {
	reqID := middleware.GetRequestID(r.Context())
	item, issues, err := res.decode(r, nil)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}
	v := shared.NewValidator()
	v.Merge(issues...)
	v.Merge(validationIssues(hrm.Validate(item))...)
	if v.Reject(w, reqID) {
		return
	}

	if res.attach != nil {
		if err := res.attach(r, item, nil); err != nil {
			res.fail(w, r, "create", err)
			return
		}
	}
	if s, ok := any(item).(creatorStamper); ok {
		s.StampCreator(p.UserID)
	}

	if err := res.repo.Create(r.Context(), item, res.event(r, p, "create", nil)); err != nil {
		if res.detach != nil {
			res.detach(item, nil)
		}
		res.fail(w, r, "create", err)
		return
	}

	id := P(item).Key()
	location := res.collection() + "/" + id
	redirect := res.collection()
	if res.redirectDetail {
		redirect = location
	}
	api.Created(w, location, mutationResponse{
		ID:       id,
		Message:  res.subjectOf(item) + " created successfully.",
		Redirect: redirect,
	}, reqID)
}

func (res *resource[T, P, F]) update(w http.ResponseWriter, r *http.Request, p auth.Principal) {
	reqID := middleware.GetRequestID(r.Context())
	id, ok := res.pathID(w, r)
	if !ok {
		return
	}
	existing, err := res.repo.Get(r.Context(), id)
	if err != nil {
		res.fail(w, r, "update", err)
		return
	}

	item, issues, err := res.decode(r, existing)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}
	cols := P(item).Columns()
	cols.CopyImmutable(P(existing).Columns())
	setKey(cols, id)

	v := shared.NewValidator()
	v.Merge(issues...)
	v.Merge(validationIssues(hrm.Validate(item))...)
	if v.Reject(w, reqID) {
		return
	}

	if res.attach != nil {
		if err := res.attach(r, item, existing); err != nil {
			res.fail(w, r, "update", err)
			return
		}
	}
	if s, ok := any(item).(updaterStamper); ok {
		s.StampUpdater(p.UserID)
	}

	if err := res.repo.Update(r.Context(), item, res.event(r, p, "update", existing)); err != nil {
		if res.detach != nil {
			res.detach(item, existing)
		}
		res.fail(w, r, "update", err)
		return
	}
	if res.detach != nil {
		res.detach(existing, item)
	}

	redirect := res.collection()
	if res.redirectDetail {
		redirect = res.collection() + "/" + id
	}
	api.Success(w, mutationResponse{
		ID:       id,
		Message:  res.subjectOf(item) + " updated successfully.",
		Redirect: redirect,
	}, reqID)
}

func (res *resource[T, P, F]) delete(w http.ResponseWriter, r *http.Request, p auth.Principal) {
	id, ok := res.pathID(w, r)
	if !ok {
		return
	}
	existing, err := res.repo.Get(r.Context(), id)
	if err != nil {
		res.fail(w, r, "delete", err)
		return
	}
	n, err := res.repo.Delete(r.Context(), []string{id}, res.event(r, p, "delete", existing))
	if err != nil {
		res.fail(w, r, "delete", err)
		return
	}
	api.Success(w, mutationResponse{
		Deleted:  n,
		Message:  res.subjectOf(existing) + " deleted successfully.",
		Redirect: res.collection(),
	}, middleware.GetRequestID(r.Context()))
}

// bulkDelete previews the selected records until the request confirms.
func (res *resource[T, P, F]) bulkDelete(w http.ResponseWriter, r *http.Request, p auth.Principal) {
	reqID := middleware.GetRequestID(r.Context())
	var payload bulkDeleteRequest
	if shared.IsFormBody(r) {
		issues, err := shared.DecodeForm(r, &payload)
		if err == nil && len(issues) > 0 {
			shared.FailValidation(w, reqID, issues)
			return
		}
		if err != nil {
			api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
			return
		}
	} else if err := shared.DecodeJSON(r, &payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}

	v := shared.NewValidator()
	if len(payload.IDs) == 0 {
		v.Add("ids", "select at least one record")
	}
	preds := make([]query.Predicate, 0, len(payload.IDs))
	keyColumn := keyColumnOf[T, P]()
	for _, id := range payload.IDs {
		if _, err := uuid.Parse(id); err != nil {
			v.Add("ids", "must contain valid ids")
			break
		}
		preds = append(preds, query.Eq(keyColumn, id))
	}
	if v.Reject(w, reqID) {
		return
	}

	items, err := res.repo.List(r.Context(), query.Query{}.Filter(query.Or(preds...)))
	if err != nil {
		res.fail(w, r, "bulk_delete", err)
		return
	}
	if !payload.Confirm {
		res.present(r.Context(), p, items)
		api.Success(w, map[string]any{
			"items":   items,
			"count":   len(items),
			"confirm": true,
			"message": "Confirm deletion of " + countLabel(len(items), res.label) + ".",
		}, reqID)
		return
	}

	ids := make([]string, 0, len(items))
	for i := range items {
		ids = append(ids, P(&items[i]).Key())
	}
	n, err := res.repo.Delete(r.Context(), ids, res.event(r, p, "bulk_delete", items))
	if err != nil {
		res.fail(w, r, "bulk_delete", err)
		return
	}
	api.Success(w, mutationResponse{
		Deleted:  n,
		Message:  "Deleted " + countLabel(int(n), res.label) + ".",
		Redirect: res.collection(),
	}, reqID)
}

func (res *resource[T, P, F]) export(w http.ResponseWriter, r *http.Request, p auth.Principal) {
	reqID := middleware.GetRequestID(r.Context())
	format, err := export.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		shared.FailValidation(w, reqID, []shared.ValidationIssue{{Field: "format", Reason: err.Error()}})
		return
	}
	_, q, ok := res.filtered(w, r)
	if !ok {
		return
	}
	items, err := res.repo.List(r.Context(), q)
	if err != nil {
		res.fail(w, r, "export", err)
		return
	}
	res.present(r.Context(), p, items)

	table := export.Table{Title: res.label + "s", Header: res.header}
	for i := range items {
		table.Rows = append(table.Rows, res.row(&items[i]))
	}
	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Disposition", "attachment; filename="+export.Filename(res.path, format, time.Now()))
	if err := export.Write(w, format, table); err != nil {
		slog.Warn("export write failed", "err", err, "entity", res.entity, "format", format)
	}
}

func (res *resource[T, P, F]) fail(w http.ResponseWriter, r *http.Request, op string, err error) {
	reqID := middleware.GetRequestID(r.Context())
	var constraint *hrm.ConstraintError
	switch {
	case errors.As(err, &constraint):
		shared.FailValidation(w, reqID, []shared.ValidationIssue{{Field: constraint.Field, Reason: constraint.Reason}})
	case errors.Is(err, hrm.ErrNotFound):
		api.Fail(w, http.StatusNotFound, "not_found", res.label+" not found", reqID)
	case errors.Is(err, hrm.ErrInUse):
		api.Fail(w, http.StatusConflict, "in_use", res.label+" is referenced by other records", reqID)
	default:
		slog.Error("hrm request failed", "err", err, "entity", res.entity, "op", op)
		api.Fail(w, http.StatusInternalServerError, res.entity+"_"+op+"_failed", "failed to "+strings.ReplaceAll(op, "_", " ")+" "+strings.ToLower(res.label), reqID)
	}
}

func validationIssues(in []hrm.FieldIssue) []shared.ValidationIssue {
	out := make([]shared.ValidationIssue, 0, len(in))
	for _, issue := range in {
		out = append(out, shared.ValidationIssue(issue))
	}
	return out
}

func setKey(cols query.Columns, id string) {
	for _, c := range cols {
		if !c.Has(query.Key) {
			continue
		}
		if ref, ok := c.Ref.(*string); ok {
			*ref = id
		}
	}
}

func keyColumnOf[T any, P record[T]]() string {
	var zero T
	for _, c := range P(&zero).Columns() {
		if c.Has(query.Key) {
			return c.Qualified()
		}
	}
	return "id"
}

func countLabel(n int, label string) string {
	noun := strings.ToLower(label)
	if n != 1 {
		noun += "s"
	}
	return strconv.Itoa(n) + " " + noun
}
