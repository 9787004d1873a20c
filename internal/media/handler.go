package media

import (
	"errors"
	"net/http"

	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/op/go-logging"

	"github.com/mediabox/service/internal/response"
)

const (
	// Room for multipart boundaries, part headers and the folder field on
	// top of the file itself. The body cap trips while parsing, before the
	// file and extension checks, so any oversized body gets "File too large".
	multipartOverhead = 1 << 20
	// Parts beyond this are spooled to temporary files.
	multipartMemory = 32 << 20
)

// Handler holds HTTP handlers for the media endpoints.
type Handler struct {
	svc *Service
	log *logging.Logger
}

// NewHandler creates a new media Handler.
func NewHandler(svc *Service, log *logging.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

type uploadResponse struct {
	Success bool         `json:"success" example:"true"`
	Message string       `json:"message" example:"File uploaded successfully"`
	Data    UploadResult `json:"data"`
}

type listResponse struct {
	Success bool       `json:"success" example:"true"`
	Count   int        `json:"count"   example:"1"`
	Files   []FileInfo `json:"files"`
}

// Upload godoc
//
//	@Summary		Upload a file
//	@Description	Store a jpg, jpeg or mp4 file under a unique name and return a signed URL for it.
//	@Tags			files
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			file	formData	file	true	"File to upload (jpg, jpeg, mp4)"
//	@Param			folder	formData	string	false	"Folder inside the bucket, e.g. images/2024"
//	@Success		200		{object}	uploadResponse
//	@Failure		400		{object}	response.Envelope
//	@Failure		500		{object}	response.Envelope
//	@Router			/upload [post]
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.svc.MaxFileSize()+multipartOverhead)

	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			response.BadRequest(w, fileTooLarge(h.svc.MaxFileSize()).Message)
			return
		}
		response.BadRequest(w, errNoFile.Message)
		return
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	file, header, err := r.FormFile("file")
	if err != nil {
		response.BadRequest(w, errNoFile.Message)
		return
	}
	defer file.Close()

	result, err := h.svc.Upload(r.Context(), UploadInput{
		File:        file,
		Filename:    header.Filename,
		Size:        header.Size,
		ContentType: header.Header.Get("Content-Type"),
		Folder:      r.FormValue("folder"),
	})
	if err != nil {
		h.fail(w, r, err, "Failed to upload file")
		return
	}

	response.OK(w, "File uploaded successfully", result)
}

// List godoc
//
//	@Summary		List files
//	@Description	List every object stored in the bucket.
//	@Tags			files
//	@Produce		json
//	@Success		200	{object}	listResponse
//	@Failure		500	{object}	response.Envelope
//	@Router			/files [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	files, err := h.svc.List(r.Context())
	if err != nil {
		h.fail(w, r, err, "Failed to list files")
		return
	}

	response.JSON(w, http.StatusOK, listResponse{
		Success: true,
		Count:   len(files),
		Files:   files,
	})
}

// fail maps validation errors to 400 and anything else to 500. The cause
// of a 500 is logged, not returned.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error, message string) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		response.BadRequest(w, verr.Message)
		return
	}
	h.log.Errorf("request_id=%s %s: %v", chiMiddleware.GetReqID(r.Context()), message, err)
	response.InternalError(w, message)
}
