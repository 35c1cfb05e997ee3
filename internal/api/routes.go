package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(
	router *gin.Engine,
	pageHandler *PageHandler,
	exerciseHandler *ExerciseHandler,
	mediaHandler *MediaHandler,
) {
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	// --- Pages ---
	router.GET("/", pageHandler.Home)
	router.GET("/about", pageHandler.About)
	router.GET("/search", pageHandler.Search)
	router.GET("/exercises/:type/:category", pageHandler.ExerciseList)
	router.GET("/exercise/:id", pageHandler.ExerciseDetail)

	apiV1 := router.Group("/api/v1")
	{
		// GET /api/v1/categories/{bodyPart|equipment} - configured browse categories
		apiV1.GET("/categories/:kind", exerciseHandler.ListCategories)
		// GET /api/v1/reference/{bodyPart|equipment} - reference API taxonomy
		apiV1.GET("/reference/:kind", exerciseHandler.GetReferenceData)

		apiV1.GET("/exercises/:type/:category", exerciseHandler.GetExercisesByCategory)
		apiV1.GET("/exercise/:id", exerciseHandler.GetExerciseByID)

		mediaGroup := apiV1.Group("/media")
		{
			mediaGroup.GET("/image", mediaHandler.ResolveImage)
			mediaGroup.GET("/animation", mediaHandler.ResolveAnimation)
		}
		apiV1.GET("/animations/:name", mediaHandler.GetAnimation)
	}
}
