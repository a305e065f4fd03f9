package api

import (
	"alcyxob/workout-planner/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupRoutes(
	router *gin.Engine,
	allowedOrigin string,
	planService service.PlanService,
) {
	planHandler := NewPlanHandler(planService)

	router.Use(RequestIDMiddleware(), CORSMiddleware(allowedOrigin))

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	apiGroup := router.Group("/api")
	{
		// POST /api/generate
		apiGroup.POST("/generate", planHandler.GeneratePlan)
		for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodHead} {
			apiGroup.Handle(method, "/generate", methodNotAllowed(http.MethodPost))
		}
	}
}

// methodNotAllowed answers 405 advertising the allowed methods.
func methodNotAllowed(allowed ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, m := range allowed {
			c.Writer.Header().Add("Allow", m)
		}
		c.String(http.StatusMethodNotAllowed, "Method Not Allowed")
		c.Abort()
	}
}
