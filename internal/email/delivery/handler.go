package delivery

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	emaildto "github.com/gregschwartz/jobseeker-analytics/internal/email/dto"
	"github.com/gregschwartz/jobseeker-analytics/internal/email/usecase"
)

type EmailHandler struct {
	emailUsecase usecase.EmailUsecase
	log          zerolog.Logger
}

func NewEmailHandler(emailUsecase usecase.EmailUsecase, log zerolog.Logger) *EmailHandler {
	return &EmailHandler{
		emailUsecase: emailUsecase,
		log:          log.With().Str("component", "email_handler").Logger(),
	}
}

// FetchEmails kicks off the ingestion pipeline in the background and
// returns immediately. A second request while a run is in progress is
// accepted but does nothing.
func (h *EmailHandler) FetchEmails(c *gin.Context) {
	userID := c.Param("id")

	go func() {
		if err := h.emailUsecase.ProcessEmails(context.Background(), userID); err != nil {
			h.log.Error().Err(err).Str("user_id", userID).Msg("email processing failed")
		}
	}()

	c.JSON(http.StatusAccepted, gin.H{"message": "email processing started"})
}

func (h *EmailHandler) GetProcessingStatus(c *gin.Context) {
	userID := c.Param("id")

	run, err := h.emailUsecase.ProcessingStatus(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if run == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no processing run found"})
		return
	}

	c.JSON(http.StatusOK, emaildto.ProcessingResponse{
		Status:          string(run.Status),
		ProcessedEmails: run.ProcessedEmails,
		TotalEmails:     run.TotalEmails,
	})
}

func (h *EmailHandler) GetEmails(c *gin.Context) {
	userID := c.Param("id")

	limit := 20
	offset := 0

	if limitStr := c.Query("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	if offsetStr := c.Query("offset"); offsetStr != "" {
		if parsed, err := strconv.Atoi(offsetStr); err == nil && parsed >= 0 {
			offset = parsed
		}
	}

	emails, total, err := h.emailUsecase.ListEmails(userID, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, emaildto.EmailsResponse{
		Emails: emails,
		Limit:  limit,
		Offset: offset,
		Total:  total,
	})
}

func (h *EmailHandler) ArchiveEmail(c *gin.Context) {
	userID := c.Param("id")
	emailID := c.Param("emailId")

	if err := h.emailUsecase.ArchiveEmail(c.Request.Context(), userID, emailID); err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "email archived"})
}
