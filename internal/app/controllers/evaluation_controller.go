package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/atlasedu/accredia/internal/app/models/dto"
	"github.com/atlasedu/accredia/internal/app/services"
	"github.com/atlasedu/accredia/internal/middleware"
)

// EvaluationController handles grade-distribution entry endpoints
type EvaluationController struct {
	evaluationService services.EvaluationService
}

// NewEvaluationController creates a new EvaluationController
func NewEvaluationController(evaluationService services.EvaluationService) *EvaluationController {
	return &EvaluationController{
		evaluationService: evaluationService,
	}
}

// GetEvaluationForm returns the evaluation edit form for a section and
// degree: every mapped objective with any previously saved counts
func (c *EvaluationController) GetEvaluationForm(ctx *gin.Context) {
	key, ok := sectionKeyParam(ctx)
	if !ok {
		return
	}
	degree, ok := degreeKeyQuery(ctx)
	if !ok {
		return
	}

	form, err := c.evaluationService.GetEvaluationForm(ctx, key, degree)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(form))
}

// SaveEvaluation stores a full evaluation submission. A bad grade total
// for any objective rejects the whole submission; nothing is written
// partially.
func (c *EvaluationController) SaveEvaluation(ctx *gin.Context) {
	key, ok := sectionKeyParam(ctx)
	if !ok {
		return
	}

	var req dto.SaveEvaluationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	inputs := make([]services.ObjectiveInput, 0, len(req.Objectives))
	for _, obj := range req.Objectives {
		inputs = append(inputs, services.ObjectiveInput{
			ObjCode:      obj.ObjCode,
			CountA:       obj.CountA,
			CountB:       obj.CountB,
			CountC:       obj.CountC,
			CountF:       obj.CountF,
			Improvement:  obj.Improvement,
			Methods:      obj.Methods,
			OtherMethods: obj.OtherMethods,
		})
	}

	if err := c.evaluationService.SaveEvaluation(ctx, key, req.DegreeKey(), inputs, req.Duplicate); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Evaluation saved"))
}
