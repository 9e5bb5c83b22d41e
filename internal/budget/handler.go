package budget

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"explore-india/internal/destination"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// tripRequest leaves fields nil when omitted so DefaultTripParams can fill them.
type tripRequest struct {
	Days              *int    `json:"days"`
	People            *int    `json:"people"`
	AccommodationType *string `json:"accommodation_type"`
	IncludeTransport  *bool   `json:"include_transport"`
}

func (r tripRequest) params() (TripParams, error) {
	p := DefaultTripParams()

	if r.Days != nil {
		p.Days = *r.Days
	}
	if r.People != nil {
		p.People = *r.People
	}
	if r.AccommodationType != nil {
		tier, err := ParseTier(*r.AccommodationType)
		if err != nil {
			return p, err
		}
		p.Tier = tier
	}
	if r.IncludeTransport != nil {
		p.IncludeTransport = *r.IncludeTransport
	}

	return p, p.Validate()
}

type inlineRequest struct {
	tripRequest
	PriceProfile *PriceProfile `json:"price_profile"`
}

// bindOptionalJSON treats an empty body as an empty object.
func bindOptionalJSON(c *gin.Context, dst any) error {
	if err := c.ShouldBindJSON(dst); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// --------------------------------------------------
// POST /destinations/:id/budget
// --------------------------------------------------
func (h *Handler) EstimateDestination(c *gin.Context) {
	var req tripRequest
	if err := bindOptionalJSON(c, &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	params, err := req.params()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	estimate, err := h.service.EstimateForDestination(
		c.Request.Context(),
		c.Param("id"),
		params,
	)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, estimate)
}

// --------------------------------------------------
// POST /budget/estimate
// --------------------------------------------------
func (h *Handler) EstimateInline(c *gin.Context) {
	var req inlineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if req.PriceProfile == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "price_profile is required"})
		return
	}

	params, err := req.params()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	estimate, err := h.service.EstimateInline(*req.PriceProfile, params)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, estimate)
}

// --------------------------------------------------
// POST /budget/compare
// --------------------------------------------------
func (h *Handler) Compare(c *gin.Context) {
	var req tripRequest
	if err := bindOptionalJSON(c, &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	params, err := req.params()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rows, err := h.service.Compare(c.Request.Context(), params)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"params":       params,
		"destinations": rows,
	})
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, destination.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case IsValidationError(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		slog.Error("budget estimate failed", "path", c.FullPath(), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to estimate budget"})
	}
}
