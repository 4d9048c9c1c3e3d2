package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Cliente é uma cópia dos dados do locatário feita no momento do contrato —
// não há cadastro de clientes, então o snapshot é a fonte da verdade.
type Cliente struct {
	Nome      string `json:"name"`
	Documento string `json:"document"`
	Telefone  string `json:"phone"`
}

// Locacao é um contrato de aluguel de um veículo do pátio.
type Locacao struct {
	ID         uuid.UUID       `json:"id"`
	VeiculoID  uuid.UUID       `json:"carId"`
	Cliente    Cliente         `json:"customer"`
	DataInicio time.Time       `json:"startDate"`
	DataFim    time.Time       `json:"endDate"`
	Diaria     decimal.Decimal `json:"dailyRate"`
	ValorTotal decimal.Decimal `json:"totalValue"`
	Ativa      bool            `json:"active"`
}
