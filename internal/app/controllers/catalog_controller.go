package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/atlasedu/accredia/internal/app/models"
	"github.com/atlasedu/accredia/internal/app/models/dto"
	"github.com/atlasedu/accredia/internal/app/services"
	"github.com/atlasedu/accredia/internal/middleware"
)

// CatalogController handles degree, course and instructor endpoints
type CatalogController struct {
	catalogService services.CatalogService
}

// NewCatalogController creates a new CatalogController
func NewCatalogController(catalogService services.CatalogService) *CatalogController {
	return &CatalogController{
		catalogService: catalogService,
	}
}

// CreateDegree registers a new degree program
func (c *CatalogController) CreateDegree(ctx *gin.Context) {
	var req dto.CreateDegreeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	degree := &models.Degree{
		Name:        req.DegreeName,
		Level:       models.DegreeLevel(req.DegreeLevel),
		Description: req.Description,
	}
	if err := c.catalogService.CreateDegree(ctx, degree); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(degree))
}

// GetDegree returns one degree program
func (c *CatalogController) GetDegree(ctx *gin.Context) {
	key, ok := degreeKeyParam(ctx)
	if !ok {
		return
	}

	degree, err := c.catalogService.GetDegree(ctx, key)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(degree))
}

// ListDegrees lists degree programs. With ?all=true archived rows are
// included.
func (c *CatalogController) ListDegrees(ctx *gin.Context) {
	degrees, err := c.catalogService.ListDegrees(ctx, ctx.Query("all") != "true")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(degrees))
}

// DeleteDegree archives a referenced degree or deletes an unreferenced
// one, and reports which happened.
func (c *CatalogController) DeleteDegree(ctx *gin.Context) {
	key, ok := degreeKeyParam(ctx)
	if !ok {
		return
	}

	outcome, err := c.catalogService.ArchiveOrDeleteDegree(ctx, key)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.RemovalResponse{Outcome: string(outcome)}))
}

// ReactivateDegree flips an archived degree back to Active
func (c *CatalogController) ReactivateDegree(ctx *gin.Context) {
	key, ok := degreeKeyParam(ctx)
	if !ok {
		return
	}

	if err := c.catalogService.ReactivateDegree(ctx, key); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Degree reactivated"))
}

// CreateCourse registers a new course
func (c *CatalogController) CreateCourse(ctx *gin.Context) {
	var req dto.CreateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	course := &models.Course{
		Code: req.CourseCode,
		Name: req.CourseName,
	}
	if err := c.catalogService.CreateCourse(ctx, course); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(course))
}

// ListCourses lists courses, archived ones included with ?all=true
func (c *CatalogController) ListCourses(ctx *gin.Context) {
	courses, err := c.catalogService.ListCourses(ctx, ctx.Query("all") != "true")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(courses))
}

// DeleteCourse archives or deletes a course depending on references
func (c *CatalogController) DeleteCourse(ctx *gin.Context) {
	outcome, err := c.catalogService.ArchiveOrDeleteCourse(ctx, ctx.Param("code"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.RemovalResponse{Outcome: string(outcome)}))
}

// ReactivateCourse flips an archived course back to Active
func (c *CatalogController) ReactivateCourse(ctx *gin.Context) {
	if err := c.catalogService.ReactivateCourse(ctx, ctx.Param("code")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Course reactivated"))
}

// CreateInstructor registers a new instructor
func (c *CatalogController) CreateInstructor(ctx *gin.Context) {
	var req dto.CreateInstructorRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	instructor := &models.Instructor{
		ID:         req.InstructorID,
		FirstName:  req.FirstName,
		MiddleName: req.MiddleName,
		LastName:   req.LastName,
		Email:      req.Email,
		Phone:      req.Phone,
	}
	if err := c.catalogService.CreateInstructor(ctx, instructor); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(instructor))
}

// GetInstructor returns one instructor
func (c *CatalogController) GetInstructor(ctx *gin.Context) {
	instructor, err := c.catalogService.GetInstructor(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(instructor))
}

// ListInstructors lists instructors, archived ones included with ?all=true
func (c *CatalogController) ListInstructors(ctx *gin.Context) {
	instructors, err := c.catalogService.ListInstructors(ctx, ctx.Query("all") != "true")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(instructors))
}

// UpdateInstructor replaces an instructor's contact details
func (c *CatalogController) UpdateInstructor(ctx *gin.Context) {
	var req dto.UpdateInstructorRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	instructor := &models.Instructor{
		ID:         ctx.Param("id"),
		FirstName:  req.FirstName,
		MiddleName: req.MiddleName,
		LastName:   req.LastName,
		Email:      req.Email,
		Phone:      req.Phone,
	}
	if err := c.catalogService.UpdateInstructor(ctx, instructor); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(instructor))
}

// DeleteInstructor archives an instructor with teaching history and
// deletes one without
func (c *CatalogController) DeleteInstructor(ctx *gin.Context) {
	outcome, err := c.catalogService.ArchiveOrDeleteInstructor(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.RemovalResponse{Outcome: string(outcome)}))
}

// ReactivateInstructor flips an archived instructor back to Active
func (c *CatalogController) ReactivateInstructor(ctx *gin.Context) {
	if err := c.catalogService.ReactivateInstructor(ctx, ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Instructor reactivated"))
}
