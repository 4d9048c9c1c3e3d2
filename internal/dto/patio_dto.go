package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ─── Patio ───────────────────────────────────────────────────────────────────

type RegistrarVeiculoRequest struct {
	Tipo        string          `json:"type"          validate:"required,oneof=Carro Moto"`
	Marca       string          `json:"brand"         validate:"required,min=2,max=60"`
	Modelo      string          `json:"model"         validate:"required,min=1,max=60"`
	Ano         int             `json:"year"          validate:"required,min=1950,max=2100"`
	Placa       string          `json:"plate"         validate:"required,min=5,max=10"`
	PrecoCompra decimal.Decimal `json:"purchasePrice" validate:"required"`
	StatusDoc   string          `json:"docStatus"     validate:"omitempty,oneof=OK PENDENTE"`
	DetalhesDoc string          `json:"docDetails"`
}

// AtualizarVeiculoRequest substitui o registro inteiro (exceto id e data de
// compra). Qualquer status pode ser escrito — a legalidade da transição não é
// validada, espelhando o comportamento do painel.
type AtualizarVeiculoRequest struct {
	Tipo        string              `json:"type"          validate:"required,oneof=Carro Moto"`
	Marca       string              `json:"brand"         validate:"required,min=2,max=60"`
	Modelo      string              `json:"model"         validate:"required,min=1,max=60"`
	Ano         int                 `json:"year"          validate:"required,min=1950,max=2100"`
	Placa       string              `json:"plate"         validate:"required,min=5,max=10"`
	PrecoCompra decimal.Decimal     `json:"purchasePrice" validate:"required"`
	PrecoVenda  *decimal.Decimal    `json:"salePrice"`
	Status      string              `json:"status"        validate:"required,oneof='No Patio' 'Em Reparo' Vendido Locado"`
	Reparos     []ItemReparoRequest `json:"repairs"       validate:"dive"`
	DataVenda   *time.Time          `json:"soldDate"`
	StatusDoc   string              `json:"docStatus"     validate:"required,oneof=OK PENDENTE"`
	DetalhesDoc string              `json:"docDetails"`
}

type ItemReparoRequest struct {
	ID        *string         `json:"id"        validate:"omitempty,uuid"`
	Nome      string          `json:"name"      validate:"required"`
	Custo     decimal.Decimal `json:"cost"`
	Concluido bool            `json:"completed"`
}
