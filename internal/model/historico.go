package model

import (
	"time"

	"github.com/google/uuid"
)

// CategoriaHistorico agrupa as entradas de auditoria por área do negócio.
type CategoriaHistorico string

const (
	HistPatio      CategoriaHistorico = "Patio"
	HistFinanceiro CategoriaHistorico = "Financeiro"
	HistLocacao    CategoriaHistorico = "Locação"
	HistOficina    CategoriaHistorico = "Oficina"
	HistProdutos   CategoriaHistorico = "Produtos"
)

// TipoHistorico classifica a natureza da mutação registrada.
type TipoHistorico string

const (
	HistAdd    TipoHistorico = "ADD"
	HistUpdate TipoHistorico = "UPDATE"
	HistDelete TipoHistorico = "DELETE"
	HistFinish TipoHistorico = "FINISH"
)

// MaxHistorico limita o tamanho da trilha de auditoria. Inserções além do
// limite descartam a entrada mais antiga.
const MaxHistorico = 500

// Historico é uma entrada imutável da trilha de auditoria. É escrita por toda
// operação de mutação e lida apenas pela tela de histórico — nunca pela
// lógica de negócio.
type Historico struct {
	ID        uuid.UUID          `json:"id"`
	Timestamp time.Time          `json:"timestamp"`
	Categoria CategoriaHistorico `json:"category"`
	Descricao string             `json:"description"`
	Tipo      TipoHistorico      `json:"type"`
}

// PushHistorico insere a entrada no topo da trilha (mais recente primeiro)
// e aplica o limite de MaxHistorico. Retorna uma nova slice — a original
// nunca é modificada.
func PushHistorico(trilha []Historico, entrada Historico) []Historico {
	nova := make([]Historico, 0, len(trilha)+1)
	nova = append(nova, entrada)
	nova = append(nova, trilha...)
	if len(nova) > MaxHistorico {
		nova = nova[:MaxHistorico]
	}
	return nova
}
