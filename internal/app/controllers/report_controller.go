package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/atlasedu/accredia/internal/app/models"
	"github.com/atlasedu/accredia/internal/app/models/dto"
	"github.com/atlasedu/accredia/internal/app/services"
	"github.com/atlasedu/accredia/internal/middleware"
)

// ReportController handles the read-only accreditation report endpoints
type ReportController struct {
	reportService services.ReportService
}

// NewReportController creates a new ReportController
func NewReportController(reportService services.ReportService) *ReportController {
	return &ReportController{
		reportService: reportService,
	}
}

// DegreeDetail returns the full accreditation view of a degree: courses,
// objectives, sections in a year range and the objective map
func (c *ReportController) DegreeDetail(ctx *gin.Context) {
	degree, ok := degreeKeyQuery(ctx)
	if !ok {
		return
	}
	yearFrom, ok := intQuery(ctx, "yearFrom")
	if !ok {
		return
	}
	yearTo, ok := intQuery(ctx, "yearTo")
	if !ok {
		return
	}

	detail, err := c.reportService.DegreeDetail(ctx, degree, yearFrom, yearTo)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(detail))
}

// PassingRate lists evaluated objectives in a term whose pass rate meets
// the threshold
func (c *ReportController) PassingRate(ctx *gin.Context) {
	year, ok := intQuery(ctx, "year")
	if !ok {
		return
	}
	threshold, err := strconv.ParseFloat(ctx.DefaultQuery("threshold", "0"), 64)
	if err != nil {
		badRequest(ctx, "threshold must be a valid number", "threshold")
		return
	}

	rows, err := c.reportService.PassingRate(ctx, models.Semester(ctx.Query("semester")), year, threshold)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(rows))
}

// CourseSections lists a course's sections within a term range
func (c *ReportController) CourseSections(ctx *gin.Context) {
	courseCode := ctx.Query("courseCode")
	if courseCode == "" {
		badRequest(ctx, "courseCode is required", "courseCode")
		return
	}
	termRange, ok := termRangeQuery(ctx)
	if !ok {
		return
	}

	rows, err := c.reportService.CourseSections(ctx, courseCode, termRange)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(rows))
}

// InstructorSections lists the sections an instructor taught within a
// term range
func (c *ReportController) InstructorSections(ctx *gin.Context) {
	instructorID := ctx.Query("instructorId")
	if instructorID == "" {
		badRequest(ctx, "instructorId is required", "instructorId")
		return
	}
	termRange, ok := termRangeQuery(ctx)
	if !ok {
		return
	}

	rows, err := c.reportService.InstructorSections(ctx, instructorID, termRange)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(rows))
}

// EvaluationStatus compares actual against expected evaluation rows per
// section in a term
func (c *ReportController) EvaluationStatus(ctx *gin.Context) {
	year, ok := intQuery(ctx, "year")
	if !ok {
		return
	}

	rows, err := c.reportService.EvaluationStatus(ctx, models.Semester(ctx.Query("semester")), year)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(rows))
}

func termRangeQuery(ctx *gin.Context) (models.TermRange, bool) {
	startYear, ok := intQuery(ctx, "startYear")
	if !ok {
		return models.TermRange{}, false
	}
	endYear, ok := intQuery(ctx, "endYear")
	if !ok {
		return models.TermRange{}, false
	}
	return models.TermRange{
		StartSemester: models.Semester(ctx.Query("startSemester")),
		StartYear:     startYear,
		EndSemester:   models.Semester(ctx.Query("endSemester")),
		EndYear:       endYear,
	}, true
}
