package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"studenthub-backend/internal/domains/student/model"
	"studenthub-backend/internal/domains/student/service"
	"studenthub-backend/internal/shared/response"
)

// StudentHandler handles HTTP requests for the student domain
type StudentHandler struct {
	service service.ServiceInterface
}

// NewStudentHandler creates a new student handler instance
// Dependency injection pattern - receives service from container
func NewStudentHandler(service service.ServiceInterface) *StudentHandler {
	return &StudentHandler{service: service}
}

// parseID extracts the :id path param. A non-integer id is a 400, a
// missing record is a 404 - the two cases never mix.
func parseID(c *gin.Context) (int64, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		statusCode, message, code := model.GetErrorResponse(model.NewInvalidStudentID(raw))
		response.ErrorResponse(c, statusCode, code, message)
		return 0, false
	}
	return id, true
}

// List handles GET /students
func (h *StudentHandler) List(c *gin.Context) {
	result, err := h.service.List(c.Request.Context())
	if err != nil {
		statusCode, message, code := model.GetErrorResponse(err)
		response.ErrorResponse(c, statusCode, code, message)
		return
	}

	response.Success(c, http.StatusOK, result)
}

// Search handles GET /students/search
func (h *StudentHandler) Search(c *gin.Context) {
	query := model.SearchQuery{
		HoTen:    c.Query("ho_ten"),
		GioiTinh: c.Query("gioi_tinh"),
		DiaChi:   c.Query("dia_chi"),
		Thang:    c.Query("thang"),
	}

	result, err := h.service.Search(c.Request.Context(), query)
	if err != nil {
		statusCode, message, code := model.GetErrorResponse(err)
		response.ErrorResponse(c, statusCode, code, message)
		return
	}

	response.Success(c, http.StatusOK, result)
}

// Get handles GET /students/:id
func (h *StudentHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	result, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		statusCode, message, code := model.GetErrorResponse(err)
		response.ErrorResponse(c, statusCode, code, message)
		return
	}

	response.Success(c, http.StatusOK, result)
}

// Create handles POST /students
func (h *StudentHandler) Create(c *gin.Context) {
	var req model.StudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	result, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		statusCode, message, code := model.GetErrorResponse(err)
		response.ErrorResponse(c, statusCode, code, message)
		return
	}

	response.Success(c, http.StatusCreated, result)
}

// Update handles PUT /students/:id
func (h *StudentHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req model.StudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	result, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		statusCode, message, code := model.GetErrorResponse(err)
		response.ErrorResponse(c, statusCode, code, message)
		return
	}

	response.Success(c, http.StatusOK, result)
}

// Delete handles DELETE /students/:id
func (h *StudentHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		statusCode, message, code := model.GetErrorResponse(err)
		response.ErrorResponse(c, statusCode, code, message)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true, "id": id})
}
