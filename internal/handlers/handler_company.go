package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/contabilidad_app/internal/core/ports/services"
	"github.com/SscSPs/contabilidad_app/internal/dto"
	"github.com/SscSPs/contabilidad_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

type companyHandler struct {
	companyService portssvc.CompanySvc
}

func newCompanyHandler(cs portssvc.CompanySvc) *companyHandler {
	return &companyHandler{companyService: cs}
}

// RegisterCompanyRoutes registers the company name routes.
func RegisterCompanyRoutes(rg *gin.RouterGroup, companyService portssvc.CompanySvc) {
	h := newCompanyHandler(companyService)
	rg.GET("/company", h.getCompany)
	rg.PUT("/company", h.updateCompany)
}

// getCompany godoc
// @Summary Get the company printed on reports
// @Tags company
// @Produce json
// @Success 200 {object} dto.CompanyResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to get company"
// @Security BearerAuth
// @Router /company [get]
func (h *companyHandler) getCompany(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	company, err := h.companyService.GetCompany(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to get company")
		return
	}
	c.JSON(http.StatusOK, dto.ToCompanyResponse(company))
}

// updateCompany godoc
// @Summary Set the company name
// @Tags company
// @Accept json
// @Produce json
// @Param company body dto.UpdateCompanyRequest true "Company name"
// @Success 200 {object} dto.CompanyResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to update company"
// @Security BearerAuth
// @Router /company [put]
func (h *companyHandler) updateCompany(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, logger, err)
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context for UpdateCompany")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	company, err := h.companyService.SetCompanyName(c.Request.Context(), req.Name, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to update company")
		return
	}
	c.JSON(http.StatusOK, dto.ToCompanyResponse(company))
}
