package dto

import "github.com/shopspring/decimal"

// ─── Oficina & Produtos ──────────────────────────────────────────────────────

type AdicionarProdutoRequest struct {
	Nome             string          `json:"name"        validate:"required,min=2,max=120"`
	Quantidade       int             `json:"quantity"    validate:"min=0"`
	QuantidadeMinima int             `json:"minQuantity" validate:"min=0"`
	PrecoCusto       decimal.Decimal `json:"costPrice"   validate:"required"`
	PrecoVenda       decimal.Decimal `json:"salePrice"   validate:"required"`
}

// AjustarEstoqueRequest define a quantidade absoluta (não é um delta).
type AjustarEstoqueRequest struct {
	Quantidade int `json:"quantity" validate:"min=0"`
}

// PecaRequest referencia um produto do estoque. Nome e preços são copiados
// do catálogo no fechamento da ordem — o cliente não os envia.
type PecaRequest struct {
	ProdutoID  string `json:"productId" validate:"required,uuid"`
	Quantidade int    `json:"quantity"  validate:"required,gt=0"`
}

type FecharOrdemRequest struct {
	NomeCliente     string          `json:"customerName"  validate:"required,min=2,max=120"`
	TelefoneCliente string          `json:"customerPhone" validate:"required,min=8,max=20"`
	InfoVeiculo     string          `json:"vehicleInfo"   validate:"required,min=2,max=120"`
	Descricao       string          `json:"description"   validate:"required"`
	ValorServico    decimal.Decimal `json:"serviceValue"  validate:"required"`
	Pecas           []PecaRequest   `json:"usedParts"     validate:"dive"`
}
