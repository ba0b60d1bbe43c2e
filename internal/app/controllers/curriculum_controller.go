package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/atlasedu/accredia/internal/app/models"
	"github.com/atlasedu/accredia/internal/app/models/dto"
	"github.com/atlasedu/accredia/internal/app/services"
	"github.com/atlasedu/accredia/internal/middleware"
)

// CurriculumController handles objective and curriculum-link endpoints
type CurriculumController struct {
	curriculumService services.CurriculumService
}

// NewCurriculumController creates a new CurriculumController
func NewCurriculumController(curriculumService services.CurriculumService) *CurriculumController {
	return &CurriculumController{
		curriculumService: curriculumService,
	}
}

// CreateObjective registers a new learning objective
func (c *CurriculumController) CreateObjective(ctx *gin.Context) {
	var req dto.CreateObjectiveRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	objective := &models.Objective{
		Code:        req.ObjCode,
		Title:       req.Title,
		Description: req.Description,
	}
	if err := c.curriculumService.CreateObjective(ctx, objective); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(objective))
}

// ListObjectives lists all learning objectives
func (c *CurriculumController) ListObjectives(ctx *gin.Context) {
	objectives, err := c.curriculumService.ListObjectives(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(objectives))
}

// LinkDegreeCourse attaches a course to a degree's curriculum
func (c *CurriculumController) LinkDegreeCourse(ctx *gin.Context) {
	key, ok := degreeKeyParam(ctx)
	if !ok {
		return
	}

	var req dto.LinkDegreeCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	link := &models.DegreeCourse{
		Degree:     key,
		CourseCode: req.CourseCode,
		CourseName: req.CourseName,
		IsCore:     req.IsCore,
	}
	if err := c.curriculumService.LinkDegreeCourse(ctx, link); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(link))
}

// ListDegreeCourses lists the courses in a degree's curriculum, core
// courses first
func (c *CurriculumController) ListDegreeCourses(ctx *gin.Context) {
	key, ok := degreeKeyParam(ctx)
	if !ok {
		return
	}

	courses, err := c.curriculumService.DegreeCourses(ctx, key)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(courses))
}

// LinkDegreeObjective claims a learning objective for a degree
func (c *CurriculumController) LinkDegreeObjective(ctx *gin.Context) {
	key, ok := degreeKeyParam(ctx)
	if !ok {
		return
	}

	var req dto.LinkDegreeObjectiveRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	link := &models.DegreeObjective{
		Degree:  key,
		ObjCode: req.ObjCode,
	}
	if err := c.curriculumService.LinkDegreeObjective(ctx, link); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(link))
}

// ListDegreeObjectives lists the objectives a degree claims
func (c *CurriculumController) ListDegreeObjectives(ctx *gin.Context) {
	key, ok := degreeKeyParam(ctx)
	if !ok {
		return
	}

	objectives, err := c.curriculumService.DegreeObjectives(ctx, key)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(objectives))
}

// MapCourseObjective declares that a course assesses an objective within
// a degree
func (c *CurriculumController) MapCourseObjective(ctx *gin.Context) {
	key, ok := degreeKeyParam(ctx)
	if !ok {
		return
	}

	var req dto.MapCourseObjectiveRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	mapping := &models.CourseObjective{
		Degree:     key,
		CourseCode: req.CourseCode,
		ObjCode:    req.ObjCode,
	}
	if err := c.curriculumService.MapCourseObjective(ctx, mapping); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(mapping))
}

// ListCourseObjectives lists the objectives a course assesses within a
// degree
func (c *CurriculumController) ListCourseObjectives(ctx *gin.Context) {
	key, ok := degreeKeyParam(ctx)
	if !ok {
		return
	}

	objectives, err := c.curriculumService.CourseObjectives(ctx, key, ctx.Param("code"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(objectives))
}
