package healthplan

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	plans := r.Group("/health-plans")
	{
		plans.GET("", handler.GetAll)
		plans.GET("/:id", handler.GetById)
		plans.POST("", handler.Create)
		plans.PUT("/:id", handler.Update)
		plans.DELETE("/:id", handler.Delete)
	}
}
