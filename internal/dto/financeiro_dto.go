package dto

import "github.com/shopspring/decimal"

// ─── Financeiro ──────────────────────────────────────────────────────────────

type AdicionarDespesaRequest struct {
	Nome      string          `json:"name"     validate:"required,min=2,max=120"`
	Valor     decimal.Decimal `json:"amount"   validate:"required"`
	Categoria string          `json:"category" validate:"required,oneof=Aluguel Energia Água Funcionários Marketing Outros"`
}
