package model

import "github.com/google/uuid"

// Snapshot é o agregado completo das seis coleções do sistema. É a unidade de
// persistência (o documento inteiro é serializado a cada mudança) e a unidade
// de substituição atômica no store. As tags JSON preservam o formato do
// documento persistido pelas versões anteriores do painel.
type Snapshot struct {
	Veiculos  []Veiculo      `json:"inventory"`
	Despesas  []Despesa      `json:"expenses"`
	Locacoes  []Locacao      `json:"rentals"`
	Produtos  []Produto      `json:"products"`
	Ordens    []OrdemServico `json:"serviceOrders"`
	Historico []Historico    `json:"history"`
}

// NovoSnapshot retorna o estado inicial de primeira execução: as seis
// coleções vazias (não-nil, para que o round-trip JSON seja estrutural).
func NovoSnapshot() *Snapshot {
	return &Snapshot{
		Veiculos:  []Veiculo{},
		Despesas:  []Despesa{},
		Locacoes:  []Locacao{},
		Produtos:  []Produto{},
		Ordens:    []OrdemServico{},
		Historico: []Historico{},
	}
}

// AcharVeiculo retorna o índice do veículo na coleção, ou -1.
func (s *Snapshot) AcharVeiculo(id uuid.UUID) int {
	for i := range s.Veiculos {
		if s.Veiculos[i].ID == id {
			return i
		}
	}
	return -1
}

// AcharLocacao retorna o índice da locação na coleção, ou -1.
func (s *Snapshot) AcharLocacao(id uuid.UUID) int {
	for i := range s.Locacoes {
		if s.Locacoes[i].ID == id {
			return i
		}
	}
	return -1
}

// AcharProduto retorna o índice do produto na coleção, ou -1.
func (s *Snapshot) AcharProduto(id uuid.UUID) int {
	for i := range s.Produtos {
		if s.Produtos[i].ID == id {
			return i
		}
	}
	return -1
}

// AcharDespesa retorna o índice da despesa na coleção, ou -1.
func (s *Snapshot) AcharDespesa(id uuid.UUID) int {
	for i := range s.Despesas {
		if s.Despesas[i].ID == id {
			return i
		}
	}
	return -1
}
