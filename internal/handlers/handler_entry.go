package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/voice_journal_app/internal/core/ports/services"
	"github.com/SscSPs/voice_journal_app/internal/dto"
	"github.com/SscSPs/voice_journal_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// multipart headers and form fields besides the file
const multipartOverhead = 1 << 20

type entryHandler struct {
	entryService   portssvc.EntrySvcFacade
	uploadMaxBytes int64
}

// RegisterEntryRoutes registers the audio recording and entry routes.
// Uploads larger than uploadMaxBytes are rejected with 413.
func RegisterEntryRoutes(rg *gin.RouterGroup, entryService portssvc.EntrySvcFacade, uploadMaxBytes int64) {
	h := &entryHandler{entryService: entryService, uploadMaxBytes: uploadMaxBytes}

	rg.POST("/records", h.createRecord)

	entries := rg.Group("/entries")
	{
		entries.GET("/:entryID", h.getEntry)
		entries.DELETE("/:entryID", h.deleteEntry)
	}
}

// createRecord godoc
// @Summary Record an audio entry
// @Description Uploads an audio file to storage and adds it as an entry to one of the caller's journals.
// @Tags entries
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Audio file"
// @Param journalID formData string true "Journal ID"
// @Success 201 {object} dto.APIResponse{data=dto.EntryResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid upload"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Journal not found"
// @Failure 413 {object} dto.ErrorResponse "File too large"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /records [post]
func (h *entryHandler) createRecord(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.uploadMaxBytes+multipartOverhead)

	var req dto.CreateEntryRequest
	if err := c.ShouldBind(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			logger.Warn("Upload exceeds request limit", slog.Int64("limit", tooLarge.Limit))
			c.JSON(http.StatusRequestEntityTooLarge, dto.NewErrorResponse("File too large", "PAYLOAD_TOO_LARGE", false))
			return
		}
		respondBadRequest(c, err, "Invalid upload form")
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respondBadRequest(c, err, "Missing audio file")
		return
	}
	if fileHeader.Size > h.uploadMaxBytes {
		logger.Warn("Audio file too large", slog.Int64("size", fileHeader.Size), slog.Int64("limit", h.uploadMaxBytes))
		c.JSON(http.StatusRequestEntityTooLarge, dto.NewErrorResponse("File too large", "PAYLOAD_TOO_LARGE", false))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respondBadRequest(c, err, "Could not read audio file")
		return
	}
	defer file.Close()

	upload := dto.AudioUpload{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Size:        fileHeader.Size,
		Body:        file,
	}
	entry, err := h.entryService.CreateEntry(c.Request.Context(), userID, req, upload)
	if err != nil {
		respondError(c, err, "Failed to record entry")
		return
	}

	c.JSON(http.StatusCreated, dto.NewSuccessResponse("Entry recorded", dto.ToEntryResponse(entry)))
}

// getEntry godoc
// @Summary Get an entry
// @Tags entries
// @Produce json
// @Param entryID path string true "Entry ID"
// @Success 200 {object} dto.APIResponse{data=dto.EntryResponse}
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Entry not found"
// @Security BearerAuth
// @Router /entries/{entryID} [get]
func (h *entryHandler) getEntry(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	entry, err := h.entryService.GetEntry(c.Request.Context(), userID, c.Param("entryID"))
	if err != nil {
		respondError(c, err, "Failed to get entry")
		return
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse("Entry", dto.ToEntryResponse(entry)))
}

// deleteEntry godoc
// @Summary Delete an entry
// @Tags entries
// @Param entryID path string true "Entry ID"
// @Success 204 "No Content"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Entry not found"
// @Security BearerAuth
// @Router /entries/{entryID} [delete]
func (h *entryHandler) deleteEntry(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	if err := h.entryService.DeleteEntry(c.Request.Context(), userID, c.Param("entryID")); err != nil {
		respondError(c, err, "Failed to delete entry")
		return
	}
	c.Status(http.StatusNoContent)
}
