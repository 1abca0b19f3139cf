package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/contabilidad_app/internal/core/ports/services"
	"github.com/SscSPs/contabilidad_app/internal/dto"
	"github.com/SscSPs/contabilidad_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// entryHandler handles posting entries and listing movements.
type entryHandler struct {
	movementService portssvc.MovementSvcFacade
}

func newEntryHandler(ms portssvc.MovementSvcFacade) *entryHandler {
	return &entryHandler{movementService: ms}
}

// RegisterEntryRoutes registers routes for entries and movements.
func RegisterEntryRoutes(rg *gin.RouterGroup, movementService portssvc.MovementSvcFacade) {
	registerValidators()
	h := newEntryHandler(movementService)

	rg.GET("/movements", h.listMovements)

	entries := rg.Group("/entries")
	{
		entries.POST("", h.postEntry)
		entries.GET("/next-number", h.getNextEntryNumber)
		entries.POST("/opening", h.postOpeningEntry)
		entries.GET("/opening", h.getOpeningEntryStatus)
	}
}

// postEntry godoc
// @Summary Post a regular entry
// @Description Records a balanced entry under the next entry number. Every line shares the date and description.
// @Tags entries
// @Accept json
// @Produce json
// @Param entry body dto.CreateEntryRequest true "Entry details"
// @Success 201 {object} dto.EntryResponse
// @Failure 400 {object} map[string]string "Invalid input or unbalanced entry"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to post entry"
// @Security BearerAuth
// @Router /entries [post]
func (h *entryHandler) postEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, logger, err)
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context for PostEntry")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	movements, err := h.movementService.PostEntry(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to post entry")
		return
	}

	resp := dto.ToEntryResponse(movements)
	logger.Info("Entry posted", slog.Int64("entry_number", resp.EntryNumber), slog.Int("lines", len(movements)))
	c.JSON(http.StatusCreated, resp)
}

// postOpeningEntry godoc
// @Summary Post the opening entry
// @Description Records the opening balances. Assets go to debit, liabilities and equity to credit. Allowed once per ledger.
// @Tags entries
// @Accept json
// @Produce json
// @Param entry body dto.CreateOpeningEntryRequest true "Opening balances"
// @Success 201 {object} dto.EntryResponse
// @Failure 400 {object} map[string]string "Invalid input or unbalanced entry"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Opening entry already recorded"
// @Failure 500 {object} map[string]string "Failed to post opening entry"
// @Security BearerAuth
// @Router /entries/opening [post]
func (h *entryHandler) postOpeningEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateOpeningEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, logger, err)
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context for PostOpeningEntry")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	movements, err := h.movementService.PostOpeningEntry(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to post opening entry")
		return
	}

	logger.Info("Opening entry posted", slog.Int("lines", len(movements)))
	c.JSON(http.StatusCreated, dto.ToEntryResponse(movements))
}

// getOpeningEntryStatus godoc
// @Summary Check whether the opening entry exists
// @Tags entries
// @Produce json
// @Success 200 {object} dto.OpeningEntryStatusResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to check opening entry"
// @Security BearerAuth
// @Router /entries/opening [get]
func (h *entryHandler) getOpeningEntryStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	recorded, err := h.movementService.OpeningEntryRecorded(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to check opening entry")
		return
	}
	c.JSON(http.StatusOK, dto.OpeningEntryStatusResponse{Recorded: recorded})
}

// getNextEntryNumber godoc
// @Summary Get the next entry number
// @Tags entries
// @Produce json
// @Success 200 {object} dto.NextEntryNumberResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to get next entry number"
// @Security BearerAuth
// @Router /entries/next-number [get]
func (h *entryHandler) getNextEntryNumber(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	next, err := h.movementService.NextEntryNumber(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to get next entry number")
		return
	}
	c.JSON(http.StatusOK, dto.NextEntryNumberResponse{NextEntryNumber: next})
}

// listMovements godoc
// @Summary List movements
// @Description Lists movements filtered by exact description, account and period, ordered by date.
// @Tags entries
// @Produce json
// @Param description query string false "Exact description"
// @Param fromDate query string false "Period start (YYYY-MM-DD)"
// @Param toDate query string false "Period end (YYYY-MM-DD)"
// @Param accountID query int false "Account ID"
// @Param limit query int false "Page size" default(100)
// @Param nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListMovementsResponse
// @Failure 400 {object} map[string]string "Invalid filter"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list movements"
// @Security BearerAuth
// @Router /movements [get]
func (h *entryHandler) listMovements(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListMovementsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindingError(c, logger, err)
		return
	}

	resp, err := h.movementService.ListMovements(c.Request.Context(), params)
	if err != nil {
		respondError(c, logger, err, "Failed to list movements")
		return
	}
	c.JSON(http.StatusOK, resp)
}
