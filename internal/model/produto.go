package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Produto é uma peça ou insumo do estoque da oficina.
type Produto struct {
	ID               uuid.UUID       `json:"id"`
	Nome             string          `json:"name"`
	Quantidade       int             `json:"quantity"`
	QuantidadeMinima int             `json:"minQuantity"`
	PrecoCusto       decimal.Decimal `json:"costPrice"`
	PrecoVenda       decimal.Decimal `json:"salePrice"`
}

// EstoqueBaixo indica estoque igual ou abaixo do mínimo (limite inclusivo).
func (p *Produto) EstoqueBaixo() bool {
	return p.Quantidade <= p.QuantidadeMinima
}
