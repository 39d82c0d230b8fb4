package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/voice_journal_app/internal/core/ports/services"
	"github.com/SscSPs/voice_journal_app/internal/dto"
	"github.com/SscSPs/voice_journal_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// journalHandler handles HTTP requests related to journals.
type journalHandler struct {
	journalService portssvc.JournalSvcFacade
}

// newJournalHandler creates a new journalHandler.
func newJournalHandler(js portssvc.JournalSvcFacade) *journalHandler {
	return &journalHandler{journalService: js}
}

// RegisterJournalRoutes registers journal specific routes
func RegisterJournalRoutes(rg *gin.RouterGroup, journalService portssvc.JournalSvcFacade) {
	h := newJournalHandler(journalService)

	journals := rg.Group("/journals")
	{
		journals.POST("", h.createJournal)
		journals.GET("", h.listJournals)
		journals.GET("/:journalID", h.getJournal)
		journals.PUT("/:journalID", h.updateJournal)
		journals.DELETE("/:journalID", h.deleteJournal)
	}
}

// createJournal godoc
// @Summary Create a journal
// @Description Creates a new journal owned by the caller. Journals are private unless isPrivate is false.
// @Tags journals
// @Accept json
// @Produce json
// @Param journal body dto.CreateJournalRequest true "Journal details"
// @Success 201 {object} dto.APIResponse{data=dto.JournalResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /journals [post]
func (h *journalHandler) createJournal(c *gin.Context) {
	var req dto.CreateJournalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err, "Invalid request format")
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	journal, err := h.journalService.CreateJournal(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err, "Failed to create journal")
		return
	}

	c.JSON(http.StatusCreated, dto.NewSuccessResponse("Journal created", dto.ToJournalResponse(journal)))
}

// listJournals godoc
// @Summary List journals
// @Description Lists the caller's journals newest first with entry counts. With top=true, returns the k journals with most entries instead (default 3).
// @Tags journals
// @Produce json
// @Param limit query int false "Page size" minimum(1) maximum(100)
// @Param nextToken query string false "Token from the previous page"
// @Param top query bool false "Rank by entry count"
// @Param k query int false "Number of journals when top=true" minimum(1) maximum(50)
// @Success 200 {object} dto.APIResponse{data=dto.ListJournalsResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid query parameters"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /journals [get]
func (h *journalHandler) listJournals(c *gin.Context) {
	var params dto.ListJournalsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBadRequest(c, err, "Invalid query parameters")
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	if params.Top {
		top, err := h.journalService.TopJournals(c.Request.Context(), userID, params.K)
		if err != nil {
			respondError(c, err, "Failed to rank journals")
			return
		}
		c.JSON(http.StatusOK, dto.NewSuccessResponse("Top journals", dto.ListJournalsResponse{
			Journals: dto.ToJournalSummaryResponses(top),
		}))
		return
	}

	resp, err := h.journalService.ListJournals(c.Request.Context(), userID, params)
	if err != nil {
		respondError(c, err, "Failed to list journals")
		return
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse("Journals", resp))
}

// getJournal godoc
// @Summary Get a journal
// @Description Retrieves one of the caller's journals with its entries.
// @Tags journals
// @Produce json
// @Param journalID path string true "Journal ID"
// @Success 200 {object} dto.APIResponse{data=dto.JournalDetailResponse}
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Journal not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /journals/{journalID} [get]
func (h *journalHandler) getJournal(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	journalID := c.Param("journalID")

	journal, err := h.journalService.GetJournal(c.Request.Context(), userID, journalID)
	if err != nil {
		respondError(c, err, "Failed to get journal")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Debug("Journal retrieved", slog.String("journal_id", journalID))
	c.JSON(http.StatusOK, dto.NewSuccessResponse("Journal", dto.ToJournalDetailResponse(journal)))
}

// updateJournal godoc
// @Summary Update a journal
// @Description Updates the title and/or content of one of the caller's journals.
// @Tags journals
// @Accept json
// @Produce json
// @Param journalID path string true "Journal ID"
// @Param journal body dto.UpdateJournalRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=dto.JournalResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Journal not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /journals/{journalID} [put]
func (h *journalHandler) updateJournal(c *gin.Context) {
	var req dto.UpdateJournalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err, "Invalid request format")
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	journal, err := h.journalService.UpdateJournal(c.Request.Context(), userID, c.Param("journalID"), req)
	if err != nil {
		respondError(c, err, "Failed to update journal")
		return
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse("Journal updated", dto.ToJournalResponse(journal)))
}

// deleteJournal godoc
// @Summary Delete a journal
// @Description Deletes one of the caller's journals and all of its entries.
// @Tags journals
// @Param journalID path string true "Journal ID"
// @Success 204 "No Content"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Journal not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /journals/{journalID} [delete]
func (h *journalHandler) deleteJournal(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	if err := h.journalService.DeleteJournal(c.Request.Context(), userID, c.Param("journalID")); err != nil {
		respondError(c, err, "Failed to delete journal")
		return
	}
	c.Status(http.StatusNoContent)
}
