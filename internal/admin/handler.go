package admin

import (
	"errors"
	"log/slog"
	"net/http"

	"explore-india/internal/core"
	"explore-india/internal/storage"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service  *Service
	uploader storage.Uploader
}

// NewHandler builds the admin handler. uploader may be nil, in which case
// image uploads answer 503.
func NewHandler(service *Service, uploader storage.Uploader) *Handler {
	return &Handler{service: service, uploader: uploader}
}

func modeFor(c *gin.Context) Mode {
	if c.Request.Method == http.MethodPut {
		return ModeEdit
	}
	return ModeAdd
}

// --------------------------------------------------
// POST, PUT /admin/destinations
// --------------------------------------------------
func (h *Handler) Destination(c *gin.Context) {
	var form DestinationForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	res, err := h.service.SubmitDestination(c.Request.Context(), modeFor(c), form)
	h.respond(c, res, err)
}

// --------------------------------------------------
// POST, PUT /admin/destinations/:id/attractions
// --------------------------------------------------
func (h *Handler) Attraction(c *gin.Context) {
	var form AttractionForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	// path wins over body
	form.DestinationID = c.Param("id")

	res, err := h.service.SubmitAttraction(c.Request.Context(), modeFor(c), form)
	h.respond(c, res, err)
}

// --------------------------------------------------
// POST, PUT /admin/destinations/:id/transport
// --------------------------------------------------
func (h *Handler) Transport(c *gin.Context) {
	var form TransportForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	form.DestinationID = c.Param("id")

	res, err := h.service.SubmitTransport(c.Request.Context(), modeFor(c), form)
	h.respond(c, res, err)
}

// --------------------------------------------------
// POST, PUT /admin/destinations/:id/accommodations
// --------------------------------------------------
func (h *Handler) Accommodation(c *gin.Context) {
	var form AccommodationForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	form.DestinationID = c.Param("id")

	res, err := h.service.SubmitAccommodation(c.Request.Context(), modeFor(c), form)
	h.respond(c, res, err)
}

// --------------------------------------------------
// POST /admin/images
// --------------------------------------------------
func (h *Handler) UploadImage(c *gin.Context) {
	if h.uploader == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "image storage is not configured"})
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}

	url, err := storage.UploadMultipartFile(
		c.Request.Context(),
		h.uploader,
		c.PostForm("folder"),
		file,
	)
	if err != nil {
		if errors.Is(err, storage.ErrUnsupportedImage) || errors.Is(err, storage.ErrImageTooLarge) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		slog.Error("image upload failed", "filename", file.Filename, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to upload image"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"url": url})
}

func (h *Handler) respond(c *gin.Context, res *Result, err error) {
	var verr *ValidationError

	switch {
	case err == nil:
		status := http.StatusOK
		if res.Mode == ModeAdd {
			status = http.StatusCreated
		}
		c.JSON(status, res)
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "fields": verr.Fields})
	case errors.Is(err, ErrDuplicate):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, core.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		slog.Error("admin submission failed", "path", c.FullPath(), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to process submission"})
	}
}
