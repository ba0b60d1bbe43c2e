package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/atlasedu/accredia/internal/app/controllers"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	catalogController *controllers.CatalogController,
	curriculumController *controllers.CurriculumController,
	offeringController *controllers.OfferingController,
	evaluationController *controllers.EvaluationController,
	reportController *controllers.ReportController,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// Degree routes, including the curriculum links scoped to one degree
	degrees := v1.Group("/degrees")
	{
		degrees.POST("", catalogController.CreateDegree)
		degrees.GET("", catalogController.ListDegrees)
		degrees.GET("/:name/:level", catalogController.GetDegree)
		degrees.DELETE("/:name/:level", catalogController.DeleteDegree)
		degrees.POST("/:name/:level/reactivate", catalogController.ReactivateDegree)

		degrees.POST("/:name/:level/courses", curriculumController.LinkDegreeCourse)
		degrees.GET("/:name/:level/courses", curriculumController.ListDegreeCourses)
		degrees.GET("/:name/:level/courses/:code/objectives", curriculumController.ListCourseObjectives)
		degrees.POST("/:name/:level/objectives", curriculumController.LinkDegreeObjective)
		degrees.GET("/:name/:level/objectives", curriculumController.ListDegreeObjectives)
		degrees.POST("/:name/:level/course-objectives", curriculumController.MapCourseObjective)
	}

	courses := v1.Group("/courses")
	{
		courses.POST("", catalogController.CreateCourse)
		courses.GET("", catalogController.ListCourses)
		courses.DELETE("/:code", catalogController.DeleteCourse)
		courses.POST("/:code/reactivate", catalogController.ReactivateCourse)
	}

	instructors := v1.Group("/instructors")
	{
		instructors.POST("", catalogController.CreateInstructor)
		instructors.GET("", catalogController.ListInstructors)
		instructors.GET("/:id", catalogController.GetInstructor)
		instructors.PUT("/:id", catalogController.UpdateInstructor)
		instructors.DELETE("/:id", catalogController.DeleteInstructor)
		instructors.POST("/:id/reactivate", catalogController.ReactivateInstructor)
	}

	objectives := v1.Group("/objectives")
	{
		objectives.POST("", curriculumController.CreateObjective)
		objectives.GET("", curriculumController.ListObjectives)
	}

	// Section routes address offerings by their full four-part key
	sections := v1.Group("/sections")
	{
		sections.POST("", offeringController.CreateSection)
		sections.GET("", offeringController.ListSections)

		section := sections.Group("/:course/:num/:semester/:year")
		{
			section.GET("", offeringController.GetSection)
			section.DELETE("", offeringController.DeleteSection)
			section.GET("/instructor", offeringController.GetSectionInstructor)
			section.PUT("/enrollment", offeringController.UpdateEnrollment)
			section.GET("/evaluations", evaluationController.GetEvaluationForm)
			section.PUT("/evaluations", evaluationController.SaveEvaluation)
		}
	}

	v1.GET("/evaluation-selection", offeringController.EvaluationSelection)

	reports := v1.Group("/reports")
	{
		reports.GET("/degree-detail", reportController.DegreeDetail)
		reports.GET("/passing-rate", reportController.PassingRate)
		reports.GET("/course-sections", reportController.CourseSections)
		reports.GET("/instructor-sections", reportController.InstructorSections)
		reports.GET("/evaluation-status", reportController.EvaluationStatus)
	}
}
