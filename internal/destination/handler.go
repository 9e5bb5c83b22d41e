package destination

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// GET /destinations?q=
// --------------------------------------------------
func (h *Handler) List(c *gin.Context) {
	destinations, err := h.service.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		slog.Error("listing destinations failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch destinations"})
		return
	}

	summaries := make([]Summary, 0, len(destinations))
	for i := range destinations {
		summaries = append(summaries, destinations[i].Summary())
	}

	c.JSON(http.StatusOK, gin.H{
		"destinations": summaries,
		"count":        len(summaries),
	})
}

// --------------------------------------------------
// GET /destinations/:id
// --------------------------------------------------
func (h *Handler) Get(c *gin.Context) {
	d, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		slog.Error("fetching destination failed", "id", c.Param("id"), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch destination"})
		return
	}

	c.JSON(http.StatusOK, d)
}
