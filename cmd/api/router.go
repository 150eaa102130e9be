package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	authDelivery "github.com/gregschwartz/jobseeker-analytics/internal/auth/delivery"
	emailDelivery "github.com/gregschwartz/jobseeker-analytics/internal/email/delivery"
)

func SetupRoutes(r *gin.Engine, userHandler *authDelivery.UserHandler, emailHandler *emailDelivery.EmailHandler) {
	api := r.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		users := api.Group("/users")
		{
			users.POST("", userHandler.RegisterUser)
			users.GET("/:id", userHandler.GetUser)

			users.POST("/:id/emails/fetch", emailHandler.FetchEmails)
			users.GET("/:id/processing", emailHandler.GetProcessingStatus)
			users.GET("/:id/emails", emailHandler.GetEmails)
			users.POST("/:id/emails/:emailId/archive", emailHandler.ArchiveEmail)
		}
	}
}
