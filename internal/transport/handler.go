package transport

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/nilayfuladi/plant-identifier/internal/config"
	apperrors "github.com/nilayfuladi/plant-identifier/internal/errors"
	"github.com/nilayfuladi/plant-identifier/internal/logger"
	"github.com/nilayfuladi/plant-identifier/internal/messages"
	"github.com/nilayfuladi/plant-identifier/internal/service"
	"github.com/nilayfuladi/plant-identifier/pkg/models"
)

func validateImageURL(imageURL string) error {
	parsedURL, err := url.Parse(imageURL)
	if err != nil {
		return apperrors.NewValidationError("Invalid URL format", err)
	}
	if parsedURL.Host == "" {
		return apperrors.NewValidationError("URL must have a valid host", nil)
	}
	return nil
}

func NewHandler(identifier service.IdentificationService, loading *messages.LoadingMessages, cfg *config.Config) http.Handler {
	r := gin.Default()

	r.Use(requestSizeLimiter(cfg.MaxUploadSize))

	r.GET("/health", healthCheck)
	r.GET("/loading-messages", loadingMessages(loading))
	r.POST("/identify", identifyUpload(identifier, cfg))
	r.POST("/identify/url", identifyURL(identifier, cfg))

	return r
}

func identifyUpload(identifier service.IdentificationService, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		startTime := time.Now()
		ctx, cancel := context.WithTimeout(c.Request.Context(), cfg.RequestTimeout)
		defer cancel()

		logger.WithFields(logrus.Fields{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
			"ip":     c.ClientIP(),
		}).Info("Processing identification request")

		fileHeader, err := c.FormFile("image")
		if err != nil {
			respondError(c, http.StatusBadRequest, "missing image file", err)
			return
		}

		file, err := fileHeader.Open()
		if err != nil {
			respondError(c, http.StatusBadRequest, "could not open upload", err)
			return
		}
		defer file.Close()

		resp, err := identifier.IdentifyUpload(ctx, file)
		if err != nil {
			respondServiceError(c, err)
			return
		}

		logger.WithFields(logrus.Fields{
			"file":               fileHeader.Filename,
			"common_name":        resp.Plant.CommonName,
			"image_warnings":     len(resp.ImageWarnings),
			"processing_time_ms": time.Since(startTime).Milliseconds(),
		}).Info("Identification completed")

		c.JSON(http.StatusOK, resp)
	}
}

func identifyURL(identifier service.IdentificationService, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		startTime := time.Now()
		ctx, cancel := context.WithTimeout(c.Request.Context(), cfg.RequestTimeout)
		defer cancel()

		var req models.IdentifyURLRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "invalid request format", err)
			return
		}

		if err := validateImageURL(req.URL); err != nil {
			respondError(c, apperrors.GetStatusCode(err), "invalid image URL", err)
			return
		}

		var resp *models.IdentificationResponse
		var err error
		if c.Query("source") == "blob" {
			resp, err = identifier.IdentifyBlob(ctx, req.URL)
		} else {
			resp, err = identifier.IdentifyURL(ctx, req.URL)
		}
		if err != nil {
			respondServiceError(c, err)
			return
		}

		logger.WithFields(logrus.Fields{
			"url":                req.URL,
			"common_name":        resp.Plant.CommonName,
			"processing_time_ms": time.Since(startTime).Milliseconds(),
		}).Info("Identification completed")

		c.JSON(http.StatusOK, resp)
	}
}

func loadingMessages(loading *messages.LoadingMessages) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Query("random") == "true" {
			c.JSON(http.StatusOK, gin.H{"message": loading.Pick()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"messages": loading.All()})
	}
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "available",
		"version": "1.0.0",
		"time":    time.Now().UTC().Format(time.RFC3339),
	})
}

// Middleware and helper functions
func requestSizeLimiter(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

// respondServiceError maps a service failure onto the error taxonomy's
// status code, falling back to context-based classification.
func respondServiceError(c *gin.Context, err error) {
	code := apperrors.GetStatusCode(err)
	if _, ok := err.(*apperrors.AppError); !ok {
		switch {
		case errors.Is(err, context.DeadlineExceeded):
			code = http.StatusGatewayTimeout
		default:
			code = http.StatusInternalServerError
		}
	}
	respondError(c, code, "identification failed", err)
}

func respondError(c *gin.Context, code int, message string, err error) {
	logger.WithError(err).WithFields(logrus.Fields{
		"status_code": code,
		"message":     message,
		"path":        c.Request.URL.Path,
		"method":      c.Request.Method,
		"ip":          c.ClientIP(),
	}).Error("Request failed")

	c.AbortWithStatusJSON(code, models.ErrorResponse{
		Error:   http.StatusText(code),
		Message: fmt.Sprintf("%s: %v", message, err),
	})
}
