package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/classtime-scheduler/internal/dto"
	"github.com/noah-isme/classtime-scheduler/internal/middleware"
	"github.com/noah-isme/classtime-scheduler/internal/service"
	appErrors "github.com/noah-isme/classtime-scheduler/pkg/errors"
	"github.com/noah-isme/classtime-scheduler/pkg/response"
)

// ScheduleHandler exposes the schedule generation and persistence
// endpoints.
type ScheduleHandler struct {
	service *service.ScheduleGeneratorService
}

// NewScheduleHandler constructs a schedule handler.
func NewScheduleHandler(svc *service.ScheduleGeneratorService) *ScheduleHandler {
	return &ScheduleHandler{service: svc}
}

// Generate godoc
// @Summary Generate ranked candidate schedules
// @Tags Schedules
// @Accept json
// @Produce json
// @Param payload body dto.GenerateRequest true "Generate request"
// @Success 200 {object} response.Envelope
// @Router /schedules/generate [post]
func (h *ScheduleHandler) Generate(c *gin.Context) {
	var req dto.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid request payload"))
		return
	}

	result, cacheHit, err := h.service.Generate(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	middleware.SetCacheHit(c, cacheHit)
	response.JSON(c, http.StatusOK, result, nil, middleware.ExtractMeta(c))
}

// Save godoc
// @Summary Save a generated schedule
// @Tags Schedules
// @Accept json
// @Produce json
// @Param payload body dto.SaveScheduleRequest true "Save request"
// @Success 201 {object} response.Envelope
// @Router /schedules [post]
func (h *ScheduleHandler) Save(c *gin.Context) {
	var req dto.SaveScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid request payload"))
		return
	}

	saved, err := h.service.Save(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, saved)
}

// List godoc
// @Summary List saved schedules for a student/term
// @Tags Schedules
// @Produce json
// @Param studentId query string true "Student ID"
// @Param term query string true "Term"
// @Success 200 {object} response.Envelope
// @Router /schedules [get]
func (h *ScheduleHandler) List(c *gin.Context) {
	var query dto.SavedScheduleQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid query parameters"))
		return
	}

	saved, err := h.service.List(c.Request.Context(), query.StudentID, query.Term)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, saved, nil)
}

// Delete godoc
// @Summary Delete a saved schedule
// @Tags Schedules
// @Param id path string true "Saved schedule ID"
// @Success 204
// @Router /schedules/{id} [delete]
func (h *ScheduleHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// RenderPDF godoc
// @Summary Render a saved schedule as a printable timetable PDF
// @Tags Schedules
// @Produce application/pdf
// @Param id path string true "Saved schedule ID"
// @Success 200 {file} binary
// @Router /schedules/{id}/pdf [get]
func (h *ScheduleHandler) RenderPDF(c *gin.Context) {
	doc, err := h.service.RenderPDF(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Data(http.StatusOK, "application/pdf", doc)
}
