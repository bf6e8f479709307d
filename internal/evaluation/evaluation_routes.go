package evaluation

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	evals := r.Group("/evaluations")
	{
		evals.GET("", handler.GetAll)
		evals.GET("/:id", handler.GetById)
		evals.POST("", handler.Create)
		evals.PUT("/:id", handler.Update)
		evals.DELETE("/:id", handler.Delete)
	}
}
