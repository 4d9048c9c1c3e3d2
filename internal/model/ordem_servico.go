package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PecaUtilizada registra uma peça consumida por uma ordem de serviço.
// Nome e preços são copiados do produto no momento do uso — alterações
// futuras no catálogo não mudam ordens já fechadas.
type PecaUtilizada struct {
	ProdutoID      uuid.UUID       `json:"productId"`
	Nome           string          `json:"name"`
	Quantidade     int             `json:"quantity"`
	CustoNoMomento decimal.Decimal `json:"costAtTime"`
	VendaNoMomento decimal.Decimal `json:"saleAtTime"`
}

// OrdemServico é um serviço de oficina para cliente externo.
// InfoVeiculo é texto livre: o veículo do cliente não faz parte do inventário.
type OrdemServico struct {
	ID              uuid.UUID       `json:"id"`
	NomeCliente     string          `json:"customerName"`
	TelefoneCliente string          `json:"customerPhone"`
	InfoVeiculo     string          `json:"vehicleInfo"`
	Descricao       string          `json:"description"`
	ValorServico    decimal.Decimal `json:"serviceValue"`
	Pecas           []PecaUtilizada `json:"usedParts"`
	Data            time.Time       `json:"date"`
}
