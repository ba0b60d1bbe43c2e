package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/atlasedu/accredia/internal/app/models"
	"github.com/atlasedu/accredia/internal/app/models/dto"
)

// Path and query parameter parsing shared by the controllers. Degrees are
// addressed by (name, level), sections by their full four-part key.

func degreeKeyParam(ctx *gin.Context) (models.DegreeKey, bool) {
	key := models.DegreeKey{
		Name:  ctx.Param("name"),
		Level: models.DegreeLevel(ctx.Param("level")),
	}
	if !key.Level.Valid() {
		badRequest(ctx, "Unknown degree level", "degreeLevel")
		return models.DegreeKey{}, false
	}
	return key, true
}

func degreeKeyQuery(ctx *gin.Context) (models.DegreeKey, bool) {
	key := models.DegreeKey{
		Name:  ctx.Query("degreeName"),
		Level: models.DegreeLevel(ctx.Query("degreeLevel")),
	}
	if key.Name == "" || !key.Level.Valid() {
		badRequest(ctx, "degreeName and a valid degreeLevel are required", "degree")
		return models.DegreeKey{}, false
	}
	return key, true
}

func sectionKeyParam(ctx *gin.Context) (models.SectionKey, bool) {
	num, err := strconv.Atoi(ctx.Param("num"))
	if err != nil {
		badRequest(ctx, "Section number must be a valid number", "sectionNum")
		return models.SectionKey{}, false
	}
	year, err := strconv.Atoi(ctx.Param("year"))
	if err != nil {
		badRequest(ctx, "Year must be a valid number", "year")
		return models.SectionKey{}, false
	}
	key := models.SectionKey{
		CourseCode: ctx.Param("course"),
		SectionNum: num,
		Semester:   models.Semester(ctx.Param("semester")),
		Year:       year,
	}
	if !key.Semester.Valid() {
		badRequest(ctx, "Unknown semester", "semester")
		return models.SectionKey{}, false
	}
	return key, true
}

func intQuery(ctx *gin.Context, name string) (int, bool) {
	value, err := strconv.Atoi(ctx.Query(name))
	if err != nil {
		badRequest(ctx, name+" must be a valid number", name)
		return 0, false
	}
	return value, true
}

func badRequest(ctx *gin.Context, message, field string) {
	detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, message).WithField(field)
	ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
}

func bindError(ctx *gin.Context, err error) {
	detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request data").
		WithDetails(err.Error())
	ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
}
