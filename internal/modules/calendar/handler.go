package calendar

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"travelhub/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/rooms/:id/availability", h.GetCalendar)
	rg.POST("/availability/import", h.Import)
	rg.GET("/availability/sample-csv", h.SampleCSV)
}

func (h *Handler) GetCalendar(c *gin.Context) {
	roomID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid room id")
		return
	}

	cal, err := h.service.Calendar(c.Request.Context(), roomID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load availability")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"room_id": roomID, "calendar": cal})
}

// Import accepts a multipart upload under "file". The optional "room_id"
// form field switches to the two-column per-room format.
func (h *Handler) Import(c *gin.Context) {
	var roomID int64
	if raw := c.PostForm("room_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "room_id must be numeric")
			return
		}
		roomID = id
	}

	file, _, err := c.Request.FormFile("file")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Missing csv file upload")
		return
	}
	defer file.Close()

	result, err := h.service.Import(c.Request.Context(), roomID, file)
	if err != nil {
		switch {
		case errors.Is(err, ErrNoValidRows):
			response.Error(c, http.StatusUnprocessableEntity, "NO_VALID_ROWS", ErrNoValidRows.Error())
		case errors.Is(err, gorm.ErrRecordNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Room not found")
		default:
			response.Error(c, http.StatusInternalServerError, "IMPORT_FAILED", "Failed to import availability")
		}
		return
	}
	response.Success(c, http.StatusOK, result)
}

func (h *Handler) SampleCSV(c *gin.Context) {
	var roomID int64
	if raw := c.Query("room_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "room_id must be numeric")
			return
		}
		roomID = id
	}

	c.Header("Content-Disposition", `attachment; filename="availability_sample.csv"`)
	c.Data(http.StatusOK, "text/csv", h.service.Sample(roomID))
}
