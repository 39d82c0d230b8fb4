package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/voice_journal_app/internal/apperrors"
	"github.com/SscSPs/voice_journal_app/internal/dto"
	"github.com/SscSPs/voice_journal_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

const (
	codeNotFound   = "NOT_FOUND"
	codeValidation = "VALIDATION_FAILED"
	codeBadRequest = "BAD_REQUEST"
	codeInternal   = "INTERNAL"
)

// errorStatus maps a service error to the HTTP status, message and envelope code returned to the client.
// Remote gateway bodies never reach the client.
func errorStatus(err error) (int, string, string, bool) {
	if pe, ok := apperrors.AsPipelineError(err); ok {
		code := string(pe.Code)
		switch pe.Code {
		case apperrors.CodeInvalidObjectReference:
			return http.StatusBadRequest, "Audio locator is not a recognized storage object", code, false
		case apperrors.CodeRetrievalFailed:
			return http.StatusBadGateway, "Could not retrieve the audio from storage", code, true
		case apperrors.CodeGatewayUnreachable:
			return http.StatusServiceUnavailable, "Transcription service is unavailable", code, true
		default:
			return http.StatusBadGateway, "Transcription failed", code, false
		}
	}

	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound, "Resource not found", codeNotFound, false
	case errors.Is(err, apperrors.ErrValidation):
		return http.StatusBadRequest, err.Error(), codeValidation, false
	}

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) && appErr.Code >= 400 && appErr.Code < 500 {
		return appErr.Code, appErr.Message, codeBadRequest, false
	}
	return http.StatusInternalServerError, "Internal server error", codeInternal, false
}

// respondError logs err and writes the error envelope.
func respondError(c *gin.Context, err error, logMsg string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	status, message, code, retryable := errorStatus(err)

	switch {
	case status >= http.StatusInternalServerError:
		logger.Error(logMsg, slog.Int("status", status), slog.String("error", err.Error()))
	case status == http.StatusNotFound:
		logger.Warn(logMsg, slog.Int("status", status))
	default:
		logger.Warn(logMsg, slog.Int("status", status), slog.String("error", err.Error()))
	}

	c.JSON(status, dto.NewErrorResponse(message, code, retryable))
}

func respondBadRequest(c *gin.Context, err error, message string) {
	middleware.GetLoggerFromCtx(c.Request.Context()).Warn(message, slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, dto.NewErrorResponse(message, codeBadRequest, false))
}

// requireUserID writes a 401 when the auth middleware did not run.
func requireUserID(c *gin.Context) (string, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Unauthorized", "UNAUTHORIZED", false))
	}
	return userID, ok
}
