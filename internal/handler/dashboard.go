package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/agenciavortexia1-debug/Autocar/internal/dto"
	"github.com/agenciavortexia1-debug/Autocar/internal/service"
)

type DashboardHandler struct {
	svc      service.DashboardService
	insights service.InsightsService
}

func NewDashboardHandler(svc service.DashboardService, insights service.InsightsService) *DashboardHandler {
	return &DashboardHandler{svc: svc, insights: insights}
}

func (h *DashboardHandler) Metricas(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Metricas(c.Request.Context()))
}

// Insights nunca falha para o cliente: erros da geração externa viram o texto
// de fallback com status 200.
func (h *DashboardHandler) Insights(c *gin.Context) {
	texto := h.insights.GerarInsights(c.Request.Context())
	c.JSON(http.StatusOK, dto.InsightsResponse{Insights: texto})
}
