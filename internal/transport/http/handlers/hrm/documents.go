package hrmhandler

import (
	"io"
	"log/slog"
	"net/http"
	"os"
	"strconv"

	"github.com/pkg/errors"

	"github.com/oleeahmmed/UniworldHrm/internal/domain/auth"
	"github.com/oleeahmmed/UniworldHrm/internal/domain/hrm"
	"github.com/oleeahmmed/UniworldHrm/internal/platform/storage"
	"github.com/oleeahmmed/UniworldHrm/internal/transport/http/api"
	"github.com/oleeahmmed/UniworldHrm/internal/transport/http/middleware"
	"github.com/oleeahmmed/UniworldHrm/internal/transport/http/shared"
)

const documentFileField = "document_file"

// FileStore keeps uploaded document files.
type FileStore interface {
	Save(name string, r io.Reader) (storage.Stored, error)
	Open(path string) (*os.File, error)
	Remove(path string) error
}

// attachDocumentFile stores an uploaded file, or keeps the one the stored
// document already points at.
func (h *Handler) attachDocumentFile(r *http.Request, doc, existing *hrm.EmployeeDocument) error {
	file, header, ok := shared.FormFile(r, documentFileField)
	if !ok {
		if existing != nil {
			doc.AttachFile(existing.FileName, existing.FilePath, existing.ContentType, existing.FileSize)
		}
		return nil
	}
	defer file.Close()

	if h.Files == nil {
		return errors.New("file storage is not configured")
	}
	stored, err := h.Files.Save(header.Filename, file)
	if err != nil {
		return errors.Wrap(err, "store document file")
	}
	doc.AttachFile(stored.Name, stored.Path, stored.ContentType, stored.Size)
	return nil
}

// discardDocumentFile removes the file of stale unless current still uses it.
func (h *Handler) discardDocumentFile(stale, current *hrm.EmployeeDocument) {
	if h.Files == nil || stale == nil || !stale.HasFile() {
		return
	}
	if current != nil && current.FilePath == stale.FilePath {
		return
	}
	if err := h.Files.Remove(stale.FilePath); err != nil {
		slog.Warn("remove document file failed", "err", err, "path", stale.FilePath)
	}
}

func (h *Handler) documentFile(res *resource[hrm.EmployeeDocument, *hrm.EmployeeDocument, hrm.EmployeeDocumentFilter]) middleware.PrincipalHandler {
	return func(w http.ResponseWriter, r *http.Request, _ auth.Principal) {
		reqID := middleware.GetRequestID(r.Context())
		id, ok := res.pathID(w, r)
		if !ok {
			return
		}
		doc, err := res.repo.Get(r.Context(), id)
		if err != nil {
			res.fail(w, r, "get", err)
			return
		}
		if !doc.HasFile() || h.Files == nil {
			api.Fail(w, http.StatusNotFound, "not_found", "document has no file", reqID)
			return
		}

		f, err := h.Files.Open(doc.FilePath)
		if errors.Is(err, os.ErrNotExist) {
			api.Fail(w, http.StatusNotFound, "not_found", "document file is missing", reqID)
			return
		}
		if err != nil {
			res.fail(w, r, "download", err)
			return
		}
		defer f.Close()

		contentType := doc.ContentType
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Content-Disposition", "attachment; filename="+strconv.Quote(doc.FileName))
		if _, err := io.Copy(w, f); err != nil {
			slog.Warn("document download interrupted", "err", err, "document_id", id)
		}
	}
}
