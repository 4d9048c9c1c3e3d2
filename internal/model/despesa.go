package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CategoriaDespesa é a enumeração fechada de categorias de custo fixo.
type CategoriaDespesa string

const (
	DespesaAluguel      CategoriaDespesa = "Aluguel"
	DespesaEnergia      CategoriaDespesa = "Energia"
	DespesaAgua         CategoriaDespesa = "Água"
	DespesaFuncionarios CategoriaDespesa = "Funcionários"
	DespesaMarketing    CategoriaDespesa = "Marketing"
	DespesaOutros       CategoriaDespesa = "Outros"
)

// CategoriasDespesa lista as categorias aceitas, na ordem exibida no painel.
var CategoriasDespesa = []CategoriaDespesa{
	DespesaAluguel,
	DespesaEnergia,
	DespesaAgua,
	DespesaFuncionarios,
	DespesaMarketing,
	DespesaOutros,
}

// Despesa é um custo operacional fixo. Não referencia nenhuma outra entidade.
type Despesa struct {
	ID        uuid.UUID        `json:"id"`
	Nome      string           `json:"name"`
	Valor     decimal.Decimal  `json:"amount"`
	Categoria CategoriaDespesa `json:"category"`
	Data      time.Time        `json:"date"`
}
