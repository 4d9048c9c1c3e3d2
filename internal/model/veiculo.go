package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// StatusVeiculo é o ciclo de vida de um veículo dentro do pátio.
// Os valores são os rótulos exibidos (e persistidos) pelo painel.
type StatusVeiculo string

const (
	StatusNoPatio  StatusVeiculo = "No Patio"
	StatusEmReparo StatusVeiculo = "Em Reparo"
	StatusVendido  StatusVeiculo = "Vendido"
	StatusLocado   StatusVeiculo = "Locado"
)

// TipoVeiculo: "Carro" | "Moto"
type TipoVeiculo string

const (
	TipoCarro TipoVeiculo = "Carro"
	TipoMoto  TipoVeiculo = "Moto"
)

// StatusDoc indica a situação da documentação do veículo.
type StatusDoc string

const (
	DocOK       StatusDoc = "OK"
	DocPendente StatusDoc = "PENDENTE"
)

// ItemReparo é um item do checklist de preparação do veículo.
// Todo veículo nasce com o checklist completo, custo zero e itens pendentes.
type ItemReparo struct {
	ID        uuid.UUID       `json:"id"`
	Nome      string          `json:"name"`
	Custo     decimal.Decimal `json:"cost"`
	Concluido bool            `json:"completed"`
}

// Veiculo representa um veículo do inventário (compra para revenda ou locação).
// As tags JSON seguem o formato do documento persistido.
type Veiculo struct {
	ID          uuid.UUID        `json:"id"`
	Tipo        TipoVeiculo      `json:"type"`
	Marca       string           `json:"brand"`
	Modelo      string           `json:"model"`
	Ano         int              `json:"year"`
	Placa       string           `json:"plate"`
	PrecoCompra decimal.Decimal  `json:"purchasePrice"`
	PrecoVenda  *decimal.Decimal `json:"salePrice,omitempty"`
	Status      StatusVeiculo    `json:"status"`
	Reparos     []ItemReparo     `json:"repairs"`
	DataCompra  time.Time        `json:"purchaseDate"`
	DataVenda   *time.Time       `json:"soldDate,omitempty"`
	StatusDoc   StatusDoc        `json:"docStatus"`
	DetalhesDoc string           `json:"docDetails,omitempty"`
}

// ChecklistPadrao é o template de preparação aplicado a todo veículo
// recém-registrado.
var ChecklistPadrao = []string{
	"Revisão básica (óleo + filtros)",
	"Freios em condição segura",
	"Suspensão sem batidas",
	"Alinhamento / balanceamento",
	"Higienização",
	"Documentação",
	"Pintura Externa",
	"Pintura de para-choque",
	"Martelinho de ouro",
	"Polimento",
	"Revitalização de banco / volante",
	"Ar-condicionado funcionando 100%",
	"Multimídia melhor",
	"Pneus",
}

// NovoChecklist instancia o template com custo zero e todos os itens pendentes.
func NovoChecklist() []ItemReparo {
	itens := make([]ItemReparo, 0, len(ChecklistPadrao))
	for _, nome := range ChecklistPadrao {
		itens = append(itens, ItemReparo{
			ID:    uuid.New(),
			Nome:  nome,
			Custo: decimal.Zero,
		})
	}
	return itens
}

// CustoReparos soma o custo de todos os itens do checklist do veículo.
func (v *Veiculo) CustoReparos() decimal.Decimal {
	total := decimal.Zero
	for _, r := range v.Reparos {
		total = total.Add(r.Custo)
	}
	return total
}
