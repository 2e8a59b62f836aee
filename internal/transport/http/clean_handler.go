// Package http contains the HTTP transport layer: request decoding,
// validation and response rendering around the clean service.
package http

import (
	"fmt"
	"log/slog"
	"mime/multipart"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	apierrors "voclab/internal/errors"
	"voclab/internal/exporter"
	"voclab/internal/services"
)

// combinedCSVName is the download file name for the combined table.
const combinedCSVName = "voc_clean_combined.csv"

// CleanHandler handles workbook upload and batch cleaning requests.
type CleanHandler struct {
	service       *services.CleanService
	logger        *slog.Logger
	validate      *validator.Validate
	maxFileBytes  int64
	maxBatchFiles int
}

// NewCleanHandler creates a new clean handler.
func NewCleanHandler(service *services.CleanService, logger *slog.Logger, maxFileBytes int64, maxBatchFiles int) *CleanHandler {
	return &CleanHandler{
		service:       service,
		logger:        logger.With(slog.String("component", "clean_handler")),
		validate:      validator.New(),
		maxFileBytes:  maxFileBytes,
		maxBatchFiles: maxBatchFiles,
	}
}

// cleanRequest carries the non-file parameters of a clean request.
type cleanRequest struct {
	Format string `validate:"omitempty,oneof=json csv"`
}

// Routes returns the clean routes.
func (h *CleanHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.CleanBatch)
	return r
}

// CleanBatch handles POST /api/clean: a multipart upload of one or more
// workbooks under the "files" field. The batch is processed synchronously
// and the combined result returned as JSON, or as a CSV attachment when
// format=csv is requested.
func (h *CleanHandler) CleanBatch(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetReqID(r.Context())

	req := cleanRequest{Format: r.URL.Query().Get("format")}
	if req.Format == "" {
		req.Format = "json"
	}
	if err := h.validate.Struct(req); err != nil {
		render.Render(w, r, apierrors.ErrValidation("format", "format must be json or csv"))
		return
	}

	if err := r.ParseMultipartForm(h.maxFileBytes); err != nil {
		render.Render(w, r, apierrors.InvalidRequestWithError(err))
		return
	}
	defer r.MultipartForm.RemoveAll()

	uploads := r.MultipartForm.File["files"]
	if len(uploads) == 0 {
		render.Render(w, r, apierrors.ErrValidation("files", "at least one workbook is required"))
		return
	}
	if len(uploads) > h.maxBatchFiles {
		render.Render(w, r, apierrors.ErrValidation("files",
			fmt.Sprintf("too many files in one batch (max %d)", h.maxBatchFiles)))
		return
	}

	files, closeAll, err := h.openUploads(uploads)
	if err != nil {
		render.Render(w, r, apierrors.InvalidRequestWithError(err))
		return
	}
	defer closeAll()

	h.logger.InfoContext(r.Context(), "cleaning uploaded batch",
		slog.String("request_id", reqID),
		slog.Int("file_count", len(files)),
		slog.String("format", req.Format))

	result := h.service.CleanBatch(r.Context(), files)

	if req.Format == "csv" {
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", combinedCSVName))
		if err := exporter.EncodeTable(w, result.Combined); err != nil {
			h.logger.ErrorContext(r.Context(), "failed to stream combined CSV",
				slog.String("request_id", reqID),
				slog.String("error", err.Error()))
		}
		return
	}

	render.JSON(w, r, map[string]interface{}{
		"status": "success",
		"data":   result,
	})
}

// openUploads opens every uploaded file, rejecting any that exceeds the
// per-file size limit. The returned closer releases all of them.
func (h *CleanHandler) openUploads(uploads []*multipart.FileHeader) ([]services.BatchFile, func(), error) {
	files := make([]services.BatchFile, 0, len(uploads))
	var opened []multipart.File

	closeAll := func() {
		for _, f := range opened {
			f.Close()
		}
	}

	for _, header := range uploads {
		if header.Size > h.maxFileBytes {
			closeAll()
			return nil, nil, fmt.Errorf("file %s exceeds the %d byte limit", header.Filename, h.maxFileBytes)
		}
		f, err := header.Open()
		if err != nil {
			closeAll()
			return nil, nil, fmt.Errorf("failed to open upload %s: %w", header.Filename, err)
		}
		opened = append(opened, f)
		files = append(files, services.BatchFile{Name: header.Filename, Reader: f})
	}

	return files, closeAll, nil
}
