package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/agenciavortexia1-debug/Autocar/internal/dto"
	"github.com/agenciavortexia1-debug/Autocar/internal/model"
	"github.com/agenciavortexia1-debug/Autocar/internal/store"
)

// OficinaService gerencia o estoque de peças e as ordens de serviço para
// clientes externos.
type OficinaService interface {
	AdicionarProduto(ctx context.Context, req dto.AdicionarProdutoRequest) (*model.Produto, error)
	AjustarEstoque(ctx context.Context, id uuid.UUID, req dto.AjustarEstoqueRequest) (*model.Produto, error)
	FecharOrdemServico(ctx context.Context, req dto.FecharOrdemRequest) (*model.OrdemServico, error)
	ListarProdutos(ctx context.Context) []model.Produto
	ListarOrdens(ctx context.Context) []model.OrdemServico
}

type oficinaService struct{ st *store.Store }

func NewOficinaService(st *store.Store) OficinaService { return &oficinaService{st: st} }

func (s *oficinaService) AdicionarProduto(_ context.Context, req dto.AdicionarProdutoRequest) (*model.Produto, error) {
	p := model.Produto{
		ID:               uuid.New(),
		Nome:             req.Nome,
		Quantidade:       req.Quantidade,
		QuantidadeMinima: req.QuantidadeMinima,
		PrecoCusto:       req.PrecoCusto,
		PrecoVenda:       req.PrecoVenda,
	}

	s.st.Apply(func(snap model.Snapshot) model.Snapshot {
		// Produtos entram no fim da lista (ordem de cadastro)
		produtos := make([]model.Produto, 0, len(snap.Produtos)+1)
		produtos = append(produtos, snap.Produtos...)
		snap.Produtos = append(produtos, p)
		snap.Historico = pushLog(snap.Historico, model.HistProdutos, model.HistAdd,
			fmt.Sprintf("Novo item no estoque de peças: %s (%d un)", p.Nome, p.Quantidade))
		return snap
	})

	return &p, nil
}

// AjustarEstoque define a quantidade absoluta do produto. Se o produto não
// existe, nada muda e nenhuma entrada de histórico é registrada.
func (s *oficinaService) AjustarEstoque(_ context.Context, id uuid.UUID, req dto.AjustarEstoqueRequest) (*model.Produto, error) {
	var ajustado *model.Produto

	s.st.Apply(func(snap model.Snapshot) model.Snapshot {
		i := snap.AcharProduto(id)
		if i < 0 {
			return snap
		}

		p := snap.Produtos[i]
		p.Quantidade = req.Quantidade
		snap.Produtos = replaceAt(snap.Produtos, i, p)
		snap.Historico = pushLog(snap.Historico, model.HistProdutos, model.HistUpdate,
			fmt.Sprintf("Ajuste de estoque: %s alterado para %d un", p.Nome, p.Quantidade))
		ajustado = &p
		return snap
	})

	if ajustado == nil {
		return nil, ErrNaoEncontrado
	}
	return ajustado, nil
}

// FecharOrdemServico registra a O.S. e dá baixa no estoque de cada peça
// usada, tudo na mesma mutação. Nome e preços das peças são copiados do
// catálogo neste momento; a baixa não trava em zero — o estoque pode ficar
// negativo se o aviso da tela de montagem foi ignorado.
func (s *oficinaService) FecharOrdemServico(_ context.Context, req dto.FecharOrdemRequest) (*model.OrdemServico, error) {
	var ordem *model.OrdemServico
	var faltando string

	s.st.Apply(func(snap model.Snapshot) model.Snapshot {
		produtos := make([]model.Produto, len(snap.Produtos))
		copy(produtos, snap.Produtos)

		pecas := make([]model.PecaUtilizada, 0, len(req.Pecas))
		for _, peca := range req.Pecas {
			pid, err := uuid.Parse(peca.ProdutoID)
			if err != nil {
				faltando = peca.ProdutoID
				return snap
			}
			i := snap.AcharProduto(pid)
			if i < 0 {
				// Aborta a mutação inteira: nada é gravado parcialmente
				faltando = peca.ProdutoID
				return snap
			}
			prod := produtos[i]
			pecas = append(pecas, model.PecaUtilizada{
				ProdutoID:      pid,
				Nome:           prod.Nome,
				Quantidade:     peca.Quantidade,
				CustoNoMomento: prod.PrecoCusto,
				VendaNoMomento: prod.PrecoVenda,
			})
			produtos[i].Quantidade -= peca.Quantidade
		}

		nova := model.OrdemServico{
			ID:              uuid.New(),
			NomeCliente:     req.NomeCliente,
			TelefoneCliente: req.TelefoneCliente,
			InfoVeiculo:     req.InfoVeiculo,
			Descricao:       req.Descricao,
			ValorServico:    req.ValorServico,
			Pecas:           pecas,
			Data:            time.Now(),
		}

		snap.Produtos = produtos
		snap.Ordens = prepend(snap.Ordens, nova)
		snap.Historico = pushLog(snap.Historico, model.HistOficina, model.HistAdd,
			fmt.Sprintf("O.S. finalizada: %s - Veículo: %s", nova.NomeCliente, nova.InfoVeiculo))
		ordem = &nova
		return snap
	})

	if faltando != "" {
		return nil, fmt.Errorf("%w: produto %s", ErrNaoEncontrado, faltando)
	}
	return ordem, nil
}

func (s *oficinaService) ListarProdutos(_ context.Context) []model.Produto {
	return s.st.Current().Produtos
}

func (s *oficinaService) ListarOrdens(_ context.Context) []model.OrdemServico {
	return s.st.Current().Ordens
}
