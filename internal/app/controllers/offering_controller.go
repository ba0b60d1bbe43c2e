package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/atlasedu/accredia/internal/app/models"
	"github.com/atlasedu/accredia/internal/app/models/dto"
	"github.com/atlasedu/accredia/internal/app/services"
	"github.com/atlasedu/accredia/internal/middleware"
)

// OfferingController handles section scheduling endpoints
type OfferingController struct {
	offeringService services.OfferingService
}

// NewOfferingController creates a new OfferingController
func NewOfferingController(offeringService services.OfferingService) *OfferingController {
	return &OfferingController{
		offeringService: offeringService,
	}
}

// CreateSection schedules a section and assigns its instructor
func (c *OfferingController) CreateSection(ctx *gin.Context) {
	var req dto.CreateSectionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	section := &models.Section{
		SectionKey: models.SectionKey{
			CourseCode: req.CourseCode,
			SectionNum: req.SectionNum,
			Semester:   models.Semester(req.Semester),
			Year:       req.Year,
		},
		Enrollment: req.Enrollment,
	}
	if err := c.offeringService.CreateSection(ctx, section, req.InstructorID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(section))
}

// ListSections lists all sections, newest term first
func (c *OfferingController) ListSections(ctx *gin.Context) {
	sections, err := c.offeringService.ListSections(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(sections))
}

// GetSection returns one section
func (c *OfferingController) GetSection(ctx *gin.Context) {
	key, ok := sectionKeyParam(ctx)
	if !ok {
		return
	}

	section, err := c.offeringService.GetSection(ctx, key)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(section))
}

// GetSectionInstructor returns the instructor assigned to a section
func (c *OfferingController) GetSectionInstructor(ctx *gin.Context) {
	key, ok := sectionKeyParam(ctx)
	if !ok {
		return
	}

	instructor, err := c.offeringService.SectionInstructor(ctx, key)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(instructor))
}

// UpdateEnrollment changes a section's enrollment count
func (c *OfferingController) UpdateEnrollment(ctx *gin.Context) {
	key, ok := sectionKeyParam(ctx)
	if !ok {
		return
	}

	var req dto.UpdateEnrollmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	if err := c.offeringService.UpdateEnrollment(ctx, key, req.Enrollment); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Enrollment updated"))
}

// DeleteSection removes a section together with its evaluations and
// instructor assignment
func (c *OfferingController) DeleteSection(ctx *gin.Context) {
	key, ok := sectionKeyParam(ctx)
	if !ok {
		return
	}

	if err := c.offeringService.DeleteSection(ctx, key); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Section deleted"))
}

// EvaluationSelection lists the sections an instructor teaches in a term
// with how many evaluation rows each already has for the chosen degree
func (c *OfferingController) EvaluationSelection(ctx *gin.Context) {
	degree, ok := degreeKeyQuery(ctx)
	if !ok {
		return
	}
	year, ok := intQuery(ctx, "year")
	if !ok {
		return
	}
	semester := models.Semester(ctx.Query("semester"))
	instructorID := ctx.Query("instructorId")
	if instructorID == "" {
		badRequest(ctx, "instructorId is required", "instructorId")
		return
	}

	sections, err := c.offeringService.SectionsForEvaluation(ctx, degree, semester, year, instructorID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(sections))
}
