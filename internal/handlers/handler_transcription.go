package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/voice_journal_app/internal/core/ports/services"
	"github.com/SscSPs/voice_journal_app/internal/dto"
	"github.com/SscSPs/voice_journal_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

type transcriptionHandler struct {
	transcriptionService portssvc.TranscriptionSvc
}

// RegisterTranscriptionRoutes registers the transcription routes.
func RegisterTranscriptionRoutes(rg *gin.RouterGroup, transcriptionService portssvc.TranscriptionSvc) {
	h := &transcriptionHandler{transcriptionService: transcriptionService}

	rg.POST("/transcribe", h.transcribe)
	rg.POST("/entries/:entryID/transcription", h.transcribeEntry)
}

// transcribe godoc
// @Summary Transcribe recorded audio
// @Description Transcribes audio the caller has recorded, addressed by its storage locator. The response is the bare transcript.
// @Tags transcription
// @Accept json
// @Produce json
// @Param request body dto.TranscribeRequest true "Audio locator"
// @Success 200 {object} dto.TranscriptionResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid locator"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "No such recording"
// @Failure 502 {object} dto.ErrorResponse "Storage or transcription failure"
// @Failure 503 {object} dto.ErrorResponse "Transcription service unavailable"
// @Security BearerAuth
// @Router /transcribe [post]
func (h *transcriptionHandler) transcribe(c *gin.Context) {
	var req dto.TranscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err, "Invalid request format")
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	t, err := h.transcriptionService.TranscribeLocator(c.Request.Context(), userID, req.Locator())
	if err != nil {
		respondError(c, err, "Transcription failed")
		return
	}

	c.JSON(http.StatusOK, dto.ToTranscriptionResponse(t))
}

// transcribeEntry godoc
// @Summary Transcribe an entry
// @Description Transcribes an entry and stores the transcript on it. A stored transcript is returned without calling the transcription service unless force=true.
// @Tags transcription
// @Produce json
// @Param entryID path string true "Entry ID"
// @Param force query bool false "Transcribe again even if a transcript is stored"
// @Success 200 {object} dto.APIResponse{data=dto.EntryTranscriptionResponse}
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Entry not found"
// @Failure 502 {object} dto.ErrorResponse "Storage or transcription failure"
// @Failure 503 {object} dto.ErrorResponse "Transcription service unavailable"
// @Security BearerAuth
// @Router /entries/{entryID}/transcription [post]
func (h *transcriptionHandler) transcribeEntry(c *gin.Context) {
	var params dto.TranscribeEntryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBadRequest(c, err, "Invalid query parameters")
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	entryID := c.Param("entryID")

	result, err := h.transcriptionService.TranscribeEntry(c.Request.Context(), userID, entryID, params.Force)
	if err != nil {
		respondError(c, err, "Entry transcription failed")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Entry transcribed", slog.String("entry_id", entryID), slog.Bool("cached", result.Cached))
	c.JSON(http.StatusOK, dto.NewSuccessResponse("Entry transcribed", dto.ToEntryTranscriptionResponse(result)))
}
