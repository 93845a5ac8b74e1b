package rest

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/partsdb-backend/internal/domain"
	"github.com/heartmarshall/partsdb-backend/internal/service/part"
)

type partService interface {
	Create(ctx context.Context, input part.CreateInput) (domain.Part, error)
	Get(ctx context.Context, id uuid.UUID) (domain.Part, error)
	Update(ctx context.Context, input part.UpdateInput) (domain.Part, error)
	Delete(ctx context.Context, id uuid.UUID) (domain.Part, error)
	List(ctx context.Context, f domain.PartFilter) ([]domain.Part, error)
	Count(ctx context.Context, f domain.CountFilter) (int64, error)
	GetHistory(ctx context.Context, partID uuid.UUID) (domain.PartHistory, error)
	GetAttachment(ctx context.Context, id uuid.UUID) (domain.FileData, error)
	RequestDeletion(ctx context.Context, input part.RequestDeletionInput) (domain.PartDeletionRequest, error)
	ListDeletionRequests(ctx context.Context, f domain.DeletionRequestFilter) ([]domain.PartDeletionRequest, error)
}

// exporter renders a list of parts as a downloadable document.
type exporter interface {
	ContentType() string
	FileName() string
	Write(w io.Writer, parts []domain.Part) error
}

// PartHandler serves the part, attachment and deletion request endpoints.
type PartHandler struct {
	svc          partService
	export       exporter
	maxBodyBytes int64
	log          *slog.Logger
}

// NewPartHandler creates a PartHandler. Request bodies larger than
// maxBodyBytes are rejected; zero disables the limit.
func NewPartHandler(svc partService, export exporter, maxBodyBytes int64, logger *slog.Logger) *PartHandler {
	return &PartHandler{
		svc:          svc,
		export:       export,
		maxBodyBytes: maxBodyBytes,
		log:          logger.With("handler", "part"),
	}
}

// Create handles POST /api/part.
func (h *PartHandler) Create(w http.ResponseWriter, r *http.Request) {
	var form partForm
	if err := h.decode(w, r, &form); err != nil {
		writeMessageErr(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	input, err := form.toCreateInput()
	if err != nil {
		writeMessageErr(w, http.StatusBadRequest, "invalid attachment", err)
		return
	}

	p, err := h.svc.Create(r.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnauthorized):
			writeMessage(w, http.StatusUnauthorized, "require log in")
		case errors.Is(err, part.ErrUnregistered):
			writeMessageErr(w, http.StatusForbidden, "user is not registered", err)
		case errors.Is(err, domain.ErrValidation):
			writeMessageErr(w, http.StatusBadRequest, "invalid part", err)
		default:
			h.log.ErrorContext(r.Context(), "create part", slog.String("error", err.Error()))
			writeMessageErr(w, http.StatusInternalServerError, "unable to create part", err)
		}
		return
	}

	writeJSON(w, http.StatusOK, toPartResponse(p))
}

// Get handles GET /api/part/{id}.
func (h *PartHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeMessageErr(w, http.StatusNotFound, "part not found", err)
		return
	}

	p, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			h.log.ErrorContext(r.Context(), "get part", slog.String("error", err.Error()))
		}
		writeMessageErr(w, http.StatusNotFound, "part not found", err)
		return
	}

	writeJSON(w, http.StatusOK, toPartResponse(p))
}

// Update handles PUT /api/part/{id}.
func (h *PartHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeMessageErr(w, http.StatusNotFound, "part not found", err)
		return
	}

	var form partForm
	if err := h.decode(w, r, &form); err != nil {
		writeMessageErr(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	input, err := form.toUpdateInput(id)
	if err != nil {
		writeMessageErr(w, http.StatusUnauthorized, "unable to modify this part", err)
		return
	}

	if _, err := h.svc.Update(r.Context(), input); err != nil {
		switch {
		case errors.Is(err, part.ErrNotOwner),
			errors.Is(err, part.ErrAttachmentMissing),
			errors.Is(err, domain.ErrValidation):
			writeMessageErr(w, http.StatusUnauthorized, "unable to modify this part", err)
		case errors.Is(err, domain.ErrUnauthorized):
			writeMessage(w, http.StatusUnauthorized, "require log in")
		default:
			if !errors.Is(err, domain.ErrNotFound) {
				h.log.ErrorContext(r.Context(), "update part", slog.String("error", err.Error()))
			}
			writeMessageErr(w, http.StatusNotFound, "part not found", err)
		}
		return
	}

	writeMessage(w, http.StatusOK, "OK")
}

// Delete handles DELETE /api/part/{id}.
func (h *PartHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeMessage(w, http.StatusNotFound, "no this part")
		return
	}

	p, err := h.svc.Delete(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			writeMessage(w, http.StatusNotFound, "no this part")
		case errors.Is(err, part.ErrNotOwner):
			writeMessage(w, http.StatusUnauthorized, "unable to delete a part of others")
		case errors.Is(err, part.ErrTooOld):
			writeMessage(w, http.StatusUnauthorized, "unable to delete a part older than 1 week")
		case errors.Is(err, domain.ErrUnauthorized):
			writeMessage(w, http.StatusUnauthorized, "require log in")
		default:
			h.log.ErrorContext(r.Context(), "delete part", slog.String("error", err.Error()))
			writeMessageErr(w, http.StatusInternalServerError, "unable to delete part", err)
		}
		return
	}

	writeJSON(w, http.StatusOK, toPartResponse(p))
}

// List handles GET /api/parts?type=&skip=&limit=&user=&sortBy=&desc=&format=.
func (h *PartHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	f := domain.PartFilter{
		SortBy: domain.PartSortField(q.Get("sortBy")),
		Desc:   q.Get("desc") == "true",
	}
	var err error
	if f.SampleType, err = sampleTypeParam(q.Get("type")); err != nil {
		writeMessageErr(w, http.StatusBadRequest, "invalid query", err)
		return
	}
	if f.OwnerID, err = uuidParam("user", q.Get("user")); err != nil {
		writeMessageErr(w, http.StatusBadRequest, "invalid query", err)
		return
	}
	if f.Skip, err = intParam("skip", q.Get("skip")); err != nil {
		writeMessageErr(w, http.StatusBadRequest, "invalid query", err)
		return
	}
	if f.Limit, err = intParam("limit", q.Get("limit")); err != nil {
		writeMessageErr(w, http.StatusBadRequest, "invalid query", err)
		return
	}

	parts, err := h.svc.List(r.Context(), f)
	if err != nil {
		h.queryError(w, r, "list parts", err)
		return
	}

	if q.Get("format") == "xlsx" {
		h.writeExport(w, r, parts)
		return
	}

	writeJSON(w, http.StatusOK, toPartResponses(parts))
}

// Count handles GET /api/parts/count?type=&ownerId=.
func (h *PartHandler) Count(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var (
		f   domain.CountFilter
		err error
	)
	if f.SampleType, err = sampleTypeParam(q.Get("type")); err != nil {
		writeMessageErr(w, http.StatusBadRequest, "invalid query", err)
		return
	}
	if f.OwnerID, err = uuidParam("ownerId", q.Get("ownerId")); err != nil {
		writeMessageErr(w, http.StatusBadRequest, "invalid query", err)
		return
	}

	n, err := h.svc.Count(r.Context(), f)
	if err != nil {
		h.queryError(w, r, "count parts", err)
		return
	}

	writeJSON(w, http.StatusOK, countResponse{Count: n})
}

// History handles GET /api/part/{id}/history.
func (h *PartHandler) History(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeMessageErr(w, http.StatusNotFound, "part not found", err)
		return
	}

	hist, err := h.svc.GetHistory(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeMessageErr(w, http.StatusNotFound, "part not found", err)
			return
		}
		h.queryError(w, r, "get part history", err)
		return
	}

	writeJSON(w, http.StatusOK, historyResponse{
		ID:        hist.ID,
		PartID:    hist.PartID,
		Histories: toPartResponses(hist.Histories),
	})
}

// Attachment handles GET /api/attachment/{id}.
func (h *PartHandler) Attachment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeMessageErr(w, http.StatusNotFound, "attachment not found", err)
		return
	}

	f, err := h.svc.GetAttachment(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeMessageErr(w, http.StatusNotFound, "attachment not found", err)
			return
		}
		h.queryError(w, r, "get attachment", err)
		return
	}

	contentType := f.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(f.Data)))
	if f.FileName != "" {
		w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": f.FileName}))
	}
	w.WriteHeader(http.StatusOK)
	w.Write(f.Data) //nolint:errcheck
}

// RequestDeletion handles POST /api/part/{id}/deletionRequest.
func (h *PartHandler) RequestDeletion(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeMessage(w, http.StatusNotFound, "no this part")
		return
	}

	var form deletionRequestForm
	if err := h.decode(w, r, &form); err != nil && !errors.Is(err, io.EOF) {
		writeMessageErr(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	req, err := h.svc.RequestDeletion(r.Context(), part.RequestDeletionInput{PartID: id, Reason: form.Reason})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			writeMessage(w, http.StatusNotFound, "no this part")
		case errors.Is(err, part.ErrNotOwner):
			writeMessage(w, http.StatusUnauthorized, "unable to request deletion of a part of others")
		default:
			h.queryError(w, r, "request part deletion", err)
		}
		return
	}

	writeJSON(w, http.StatusOK, toDeletionRequestResponse(req))
}

// ListDeletionRequests handles GET /api/partDeletionRequests?skip=&limit=.
func (h *PartHandler) ListDeletionRequests(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var (
		f   domain.DeletionRequestFilter
		err error
	)
	if f.Skip, err = intParam("skip", q.Get("skip")); err != nil {
		writeMessageErr(w, http.StatusBadRequest, "invalid query", err)
		return
	}
	if f.Limit, err = intParam("limit", q.Get("limit")); err != nil {
		writeMessageErr(w, http.StatusBadRequest, "invalid query", err)
		return
	}

	reqs, err := h.svc.ListDeletionRequests(r.Context(), f)
	if err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			writeMessage(w, http.StatusUnauthorized, "require admin")
			return
		}
		h.queryError(w, r, "list deletion requests", err)
		return
	}

	out := make([]deletionRequestResponse, len(reqs))
	for i, req := range reqs {
		out[i] = toDeletionRequestResponse(req)
	}
	writeJSON(w, http.StatusOK, out)
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (h *PartHandler) decode(w http.ResponseWriter, r *http.Request, v any) error {
	body := r.Body
	if h.maxBodyBytes > 0 {
		body = http.MaxBytesReader(w, r.Body, h.maxBodyBytes)
	}
	return json.NewDecoder(body).Decode(v)
}

func (h *PartHandler) writeExport(w http.ResponseWriter, r *http.Request, parts []domain.Part) {
	w.Header().Set("Content-Type", h.export.ContentType())
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": h.export.FileName()}))
	if err := h.export.Write(w, parts); err != nil {
		// Headers are gone once the workbook starts streaming.
		h.log.ErrorContext(r.Context(), "export parts", slog.String("error", err.Error()))
	}
}

// queryError answers read endpoints: bad input is the caller's fault, the
// rest is logged and reported as a server error.
func (h *PartHandler) queryError(w http.ResponseWriter, r *http.Request, op string, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeMessageErr(w, http.StatusBadRequest, "invalid query", err)
	case errors.Is(err, domain.ErrUnauthorized):
		writeMessage(w, http.StatusUnauthorized, "require log in")
	default:
		h.log.ErrorContext(r.Context(), op, slog.String("error", err.Error()))
		writeMessageErr(w, http.StatusInternalServerError, "internal server error", err)
	}
}

func pathID(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(chi.URLParam(r, "id"))
}

func intParam(name, v string) (int, error) {
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0, domain.NewValidationError(name, "must be a non-negative integer")
	}
	return n, nil
}

func uuidParam(name, v string) (*uuid.UUID, error) {
	if v == "" {
		return nil, nil
	}
	id, err := uuid.Parse(v)
	if err != nil {
		return nil, domain.NewValidationError(name, "must be a valid id")
	}
	return &id, nil
}

func sampleTypeParam(v string) (*domain.SampleType, error) {
	if v == "" {
		return nil, nil
	}
	t := domain.SampleType(v)
	if !t.IsValid() {
		return nil, domain.NewValidationError("type", "unknown sample type")
	}
	return &t, nil
}
