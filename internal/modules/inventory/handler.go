package inventory

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"travelhub/internal/pkg/response"
	"travelhub/internal/pkg/validator"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/inventories", h.ListInventories)
	rg.POST("/inventories", h.CreateInventory)
	rg.GET("/inventories/:id", h.GetInventory)
	rg.PUT("/inventories/:id", h.UpdateInventory)
}

func (h *Handler) ListInventories(c *gin.Context) {
	var hotelID int64
	if raw := c.Query("hotel_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "hotel_id must be numeric")
			return
		}
		hotelID = id
	}

	list, err := h.service.List(c.Request.Context(), hotelID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list inventories")
		return
	}
	response.Success(c, http.StatusOK, list)
}

func (h *Handler) CreateInventory(c *gin.Context) {
	h.save(c, uuid.Nil)
}

func (h *Handler) UpdateInventory(c *gin.Context) {
	id, ok := parseInventoryID(c)
	if !ok {
		return
	}
	h.save(c, id)
}

func (h *Handler) save(c *gin.Context, existingID uuid.UUID) {
	var payload Payload
	if err := c.ShouldBindJSON(&payload); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if errs := validator.Validate(payload); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body", errs)
		return
	}

	draft, err := Hydrate(&payload)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	draft.Status = StatusDraft

	id, err := h.service.Save(c.Request.Context(), draft, existingID)
	if err != nil {
		var verr *ValidationError
		switch {
		case errors.As(err, &verr):
			// first message leads, the full list rides along for diagnostics
			response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "INCOMPLETE_INVENTORY", verr.Error(), verr.Violations)
		case errors.Is(err, gorm.ErrRecordNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Inventory not found")
		default:
			response.Error(c, http.StatusInternalServerError, "SAVE_FAILED", "Failed to save inventory")
		}
		return
	}

	status := http.StatusCreated
	if existingID != uuid.Nil {
		status = http.StatusOK
	}
	response.Success(c, status, gin.H{"id": id, "status": draft.Status})
}

func (h *Handler) GetInventory(c *gin.Context) {
	id, ok := parseInventoryID(c)
	if !ok {
		return
	}

	payload, err := h.service.GetPayload(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Inventory not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load inventory")
		return
	}
	response.Success(c, http.StatusOK, payload)
}

func parseInventoryID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid inventory id")
		return uuid.Nil, false
	}
	return id, true
}
