package dto

import (
	"github.com/shopspring/decimal"

	"github.com/agenciavortexia1-debug/Autocar/internal/model"
)

// ─── Dashboard ───────────────────────────────────────────────────────────────

// Metricas são os agregados financeiros e alertas derivados do snapshot.
// Nada aqui é persistido — tudo é recalculado a cada leitura.
type Metricas struct {
	LucroLiquido         decimal.Decimal `json:"netProfit"`
	LucroEstoque         decimal.Decimal `json:"stockProfit"`
	ReceitaLocacao       decimal.Decimal `json:"rentalRevenue"`
	LucroOficina         decimal.Decimal `json:"workshopProfit"`
	DespesasOperacionais decimal.Decimal `json:"operationalExpenses"`
	AlertasLocacao       []model.Locacao `json:"rentalAlerts"`
	AlertasEstoque       []model.Produto `json:"lowStockAlerts"`
	VeiculosNoPatio      int             `json:"assetsInStock"`
}

// InsightsResponse embala o texto de consultoria do dashboard.
type InsightsResponse struct {
	Insights string `json:"insights"`
}
