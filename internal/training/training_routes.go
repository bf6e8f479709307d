package training

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	trainings := r.Group("/trainings")
	{
		trainings.GET("", handler.GetAll)
		trainings.GET("/:id", handler.GetById)
		trainings.POST("", handler.Create)
		trainings.PUT("/:id", handler.Update)
		trainings.DELETE("/:id", handler.Delete)
	}
}
