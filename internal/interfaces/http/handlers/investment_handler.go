package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bizfundraiser.backend/internal/domain/entities"
	domainerrors "bizfundraiser.backend/internal/domain/errors"
	"bizfundraiser.backend/internal/interfaces/http/middleware"
	"bizfundraiser.backend/internal/interfaces/http/response"
	"bizfundraiser.backend/internal/usecases"
)

// InvestmentHandler handles investment endpoints
type InvestmentHandler struct {
	investmentUsecase *usecases.InvestmentUsecase
}

// NewInvestmentHandler creates a new investment handler
func NewInvestmentHandler(investmentUsecase *usecases.InvestmentUsecase) *InvestmentHandler {
	return &InvestmentHandler{
		investmentUsecase: investmentUsecase,
	}
}

// Invest debits the caller's wallet into an approved project
// POST /api/v1/investments
func (h *InvestmentHandler) Invest(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}

	var input entities.InvestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	investment, err := h.investmentUsecase.Invest(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, investment)
}

// List lists the caller's investments newest first
// GET /api/v1/investments
func (h *InvestmentHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}

	investments, err := h.investmentUsecase.ListMyInvestments(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, investments)
}
