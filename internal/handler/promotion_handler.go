package handler

import (
	"net/http"

	"agrisetu/internal/model"
	"agrisetu/internal/service"

	"github.com/gin-gonic/gin"
)

// PromotionHandler handles discount rewards
type PromotionHandler struct {
	service service.PromotionService
}

// NewPromotionHandler creates a new PromotionHandler
func NewPromotionHandler(s service.PromotionService) *PromotionHandler {
	return &PromotionHandler{service: s}
}

func (h *PromotionHandler) SubmitQuiz(c *gin.Context) {
	customerID, ok := authUserID(c)
	if !ok {
		return
	}

	var req model.QuizRewardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	promo, err := h.service.GrantQuizReward(c.Request.Context(), customerID, *req.CorrectAnswers)
	if err != nil {
		respondError(c, err, "granting quiz reward")
		return
	}
	c.JSON(http.StatusOK, promo)
}

func (h *PromotionHandler) GetMine(c *gin.Context) {
	customerID, ok := authUserID(c)
	if !ok {
		return
	}

	promo, err := h.service.GetPromotion(c.Request.Context(), customerID)
	if err != nil {
		respondError(c, err, "getting promotion")
		return
	}
	c.JSON(http.StatusOK, promo)
}

// RegisterPromotionRoutes registers promotion routes; all require an authenticated customer
func (h *PromotionHandler) RegisterPromotionRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc, customerMW gin.HandlerFunc) {
	promos := rg.Group("/promotions")
	promos.Use(authMW, customerMW)
	{
		promos.POST("/quiz", h.SubmitQuiz)
		promos.GET("/me", h.GetMine)
	}
}
