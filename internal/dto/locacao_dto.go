package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ─── Locação ─────────────────────────────────────────────────────────────────

type ClienteRequest struct {
	Nome      string `json:"name"     validate:"required,min=2,max=120"`
	Documento string `json:"document" validate:"required,min=5,max=20"`
	Telefone  string `json:"phone"    validate:"required,min=8,max=20"`
}

// IniciarLocacaoRequest cria o contrato. O painel só oferece veículos
// disponíveis; aqui exigimos apenas que o veículo exista.
type IniciarLocacaoRequest struct {
	VeiculoID  string          `json:"carId"      validate:"required,uuid"`
	Cliente    ClienteRequest  `json:"customer"   validate:"required"`
	DataInicio time.Time       `json:"startDate"  validate:"required"`
	DataFim    time.Time       `json:"endDate"    validate:"required"`
	Diaria     decimal.Decimal `json:"dailyRate"  validate:"required"`
	ValorTotal decimal.Decimal `json:"totalValue" validate:"required"`
}
