package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/agenciavortexia1-debug/Autocar/internal/dto"
	"github.com/agenciavortexia1-debug/Autocar/internal/model"
	"github.com/agenciavortexia1-debug/Autocar/internal/store"
)

// LocacaoService gerencia os contratos de aluguel de veículos do pátio.
type LocacaoService interface {
	IniciarLocacao(ctx context.Context, req dto.IniciarLocacaoRequest) (*model.Locacao, error)
	EncerrarLocacao(ctx context.Context, id uuid.UUID) (*model.Locacao, error)
	ListarLocacoes(ctx context.Context) []model.Locacao
	BuscarLocacao(ctx context.Context, id uuid.UUID) (*model.Locacao, *model.Veiculo, error)
}

type locacaoService struct{ st *store.Store }

func NewLocacaoService(st *store.Store) LocacaoService { return &locacaoService{st: st} }

// IniciarLocacao cria o contrato ativo e muda o status do veículo para
// "Locado". Não valida que o veículo estava disponível — o painel só oferece
// veículos no pátio, e a devolução restaura o status incondicionalmente.
func (s *locacaoService) IniciarLocacao(_ context.Context, req dto.IniciarLocacaoRequest) (*model.Locacao, error) {
	vid, err := uuid.Parse(req.VeiculoID)
	if err != nil {
		return nil, fmt.Errorf("carId inválido: %w", err)
	}

	loc := model.Locacao{
		ID:        uuid.New(),
		VeiculoID: vid,
		Cliente: model.Cliente{
			Nome:      req.Cliente.Nome,
			Documento: req.Cliente.Documento,
			Telefone:  req.Cliente.Telefone,
		},
		DataInicio: req.DataInicio,
		DataFim:    req.DataFim,
		Diaria:     req.Diaria,
		ValorTotal: req.ValorTotal,
		Ativa:      true,
	}

	achou := false
	s.st.Apply(func(snap model.Snapshot) model.Snapshot {
		i := snap.AcharVeiculo(vid)
		if i < 0 {
			return snap
		}
		achou = true

		v := snap.Veiculos[i]
		v.Status = model.StatusLocado
		snap.Veiculos = replaceAt(snap.Veiculos, i, v)
		snap.Locacoes = prepend(snap.Locacoes, loc)
		snap.Historico = pushLog(snap.Historico, model.HistLocacao, model.HistAdd,
			fmt.Sprintf("Início de contrato: %s - Cliente: %s", v.Modelo, loc.Cliente.Nome))
		return snap
	})

	if !achou {
		return nil, ErrNaoEncontrado
	}
	return &loc, nil
}

// EncerrarLocacao desativa o contrato e devolve o veículo ao pátio,
// qualquer que seja o status corrente dele (sem re-validação).
func (s *locacaoService) EncerrarLocacao(_ context.Context, id uuid.UUID) (*model.Locacao, error) {
	var encerrada *model.Locacao

	s.st.Apply(func(snap model.Snapshot) model.Snapshot {
		i := snap.AcharLocacao(id)
		if i < 0 {
			return snap
		}

		loc := snap.Locacoes[i]
		loc.Ativa = false
		snap.Locacoes = replaceAt(snap.Locacoes, i, loc)

		modelo := "veículo"
		if j := snap.AcharVeiculo(loc.VeiculoID); j >= 0 {
			v := snap.Veiculos[j]
			v.Status = model.StatusNoPatio
			snap.Veiculos = replaceAt(snap.Veiculos, j, v)
			modelo = v.Modelo
		}

		snap.Historico = pushLog(snap.Historico, model.HistLocacao, model.HistFinish,
			fmt.Sprintf("Devolução processada: %s - Cliente: %s", modelo, loc.Cliente.Nome))
		encerrada = &loc
		return snap
	})

	if encerrada == nil {
		return nil, ErrNaoEncontrado
	}
	return encerrada, nil
}

func (s *locacaoService) ListarLocacoes(_ context.Context) []model.Locacao {
	return s.st.Current().Locacoes
}

// BuscarLocacao devolve o contrato e o veículo referenciado (para o contrato
// em PDF).
func (s *locacaoService) BuscarLocacao(_ context.Context, id uuid.UUID) (*model.Locacao, *model.Veiculo, error) {
	snap := s.st.Current()
	i := snap.AcharLocacao(id)
	if i < 0 {
		return nil, nil, ErrNaoEncontrado
	}
	loc := snap.Locacoes[i]

	j := snap.AcharVeiculo(loc.VeiculoID)
	if j < 0 {
		return nil, nil, ErrNaoEncontrado
	}
	v := snap.Veiculos[j]
	return &loc, &v, nil
}
