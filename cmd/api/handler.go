package api

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	authDelivery "github.com/gregschwartz/jobseeker-analytics/internal/auth/delivery"
	authUsecase "github.com/gregschwartz/jobseeker-analytics/internal/auth/usecase"
	emailDelivery "github.com/gregschwartz/jobseeker-analytics/internal/email/delivery"
	emailUsecase "github.com/gregschwartz/jobseeker-analytics/internal/email/usecase"
)

type Handler struct {
	userHandler  *authDelivery.UserHandler
	emailHandler *emailDelivery.EmailHandler
}

func NewHandler(userUc authUsecase.UserUsecase, emailUc emailUsecase.EmailUsecase, log zerolog.Logger) *Handler {
	return &Handler{
		userHandler:  authDelivery.NewUserHandler(userUc),
		emailHandler: emailDelivery.NewEmailHandler(emailUc, log),
	}
}

func (h *Handler) Start(addr string) error {
	r := gin.Default()
	gin.SetMode(gin.ReleaseMode)

	// CORS middleware
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	SetupRoutes(r, h.userHandler, h.emailHandler)

	return r.Run(addr)
}
