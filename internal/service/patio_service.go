package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/agenciavortexia1-debug/Autocar/internal/dto"
	"github.com/agenciavortexia1-debug/Autocar/internal/model"
	"github.com/agenciavortexia1-debug/Autocar/internal/store"
)

// PatioService gerencia o inventário de veículos.
type PatioService interface {
	RegistrarVeiculo(ctx context.Context, req dto.RegistrarVeiculoRequest) (*model.Veiculo, error)
	AtualizarVeiculo(ctx context.Context, id uuid.UUID, req dto.AtualizarVeiculoRequest) (*model.Veiculo, error)
	ListarVeiculos(ctx context.Context) []model.Veiculo
}

type patioService struct{ st *store.Store }

func NewPatioService(st *store.Store) PatioService { return &patioService{st: st} }

// RegistrarVeiculo cria o veículo com status "No Patio", data de compra
// corrente e o checklist de preparação completo (custo zero, tudo pendente).
func (s *patioService) RegistrarVeiculo(_ context.Context, req dto.RegistrarVeiculoRequest) (*model.Veiculo, error) {
	statusDoc := model.StatusDoc(req.StatusDoc)
	if statusDoc == "" {
		statusDoc = model.DocOK
	}

	v := model.Veiculo{
		ID:          uuid.New(),
		Tipo:        model.TipoVeiculo(req.Tipo),
		Marca:       req.Marca,
		Modelo:      req.Modelo,
		Ano:         req.Ano,
		Placa:       req.Placa,
		PrecoCompra: req.PrecoCompra,
		Status:      model.StatusNoPatio,
		Reparos:     model.NovoChecklist(),
		DataCompra:  time.Now(),
		StatusDoc:   statusDoc,
		DetalhesDoc: req.DetalhesDoc,
	}

	s.st.Apply(func(snap model.Snapshot) model.Snapshot {
		snap.Veiculos = prepend(snap.Veiculos, v)
		snap.Historico = pushLog(snap.Historico, model.HistPatio, model.HistAdd,
			fmt.Sprintf("Novo veículo registrado: %s %s (%s)", v.Marca, v.Modelo, strings.ToUpper(v.Placa)))
		return snap
	})

	return &v, nil
}

// AtualizarVeiculo substitui o registro inteiro pelo conteúdo do request.
// Só gera entrada de histórico quando o status muda — alterações em outros
// campos são silenciosas.
func (s *patioService) AtualizarVeiculo(_ context.Context, id uuid.UUID, req dto.AtualizarVeiculoRequest) (*model.Veiculo, error) {
	var atualizado *model.Veiculo

	s.st.Apply(func(snap model.Snapshot) model.Snapshot {
		i := snap.AcharVeiculo(id)
		if i < 0 {
			return snap
		}
		antigo := snap.Veiculos[i]

		novo := antigo
		novo.Tipo = model.TipoVeiculo(req.Tipo)
		novo.Marca = req.Marca
		novo.Modelo = req.Modelo
		novo.Ano = req.Ano
		novo.Placa = req.Placa
		novo.PrecoCompra = req.PrecoCompra
		novo.PrecoVenda = req.PrecoVenda
		novo.Status = model.StatusVeiculo(req.Status)
		novo.DataVenda = req.DataVenda
		novo.StatusDoc = model.StatusDoc(req.StatusDoc)
		novo.DetalhesDoc = req.DetalhesDoc
		if req.Reparos != nil {
			novo.Reparos = reparosDoRequest(req.Reparos)
		}

		snap.Veiculos = replaceAt(snap.Veiculos, i, novo)
		if antigo.Status != novo.Status {
			snap.Historico = pushLog(snap.Historico, model.HistPatio, model.HistUpdate,
				fmt.Sprintf("Status do veículo %s alterado para %s", novo.Placa, novo.Status))
		}
		atualizado = &novo
		return snap
	})

	if atualizado == nil {
		return nil, ErrNaoEncontrado
	}
	return atualizado, nil
}

func (s *patioService) ListarVeiculos(_ context.Context) []model.Veiculo {
	return s.st.Current().Veiculos
}

// reparosDoRequest converte o checklist enviado, preservando os ids de itens
// existentes e atribuindo novos ids aos itens adicionados.
func reparosDoRequest(itens []dto.ItemReparoRequest) []model.ItemReparo {
	out := make([]model.ItemReparo, 0, len(itens))
	for _, item := range itens {
		id := uuid.New()
		if item.ID != nil {
			if parsed, err := uuid.Parse(*item.ID); err == nil {
				id = parsed
			}
		}
		out = append(out, model.ItemReparo{
			ID:        id,
			Nome:      item.Nome,
			Custo:     item.Custo,
			Concluido: item.Concluido,
		})
	}
	return out
}
