package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/agenciavortexia1-debug/Autocar/internal/dto"
	"github.com/agenciavortexia1-debug/Autocar/internal/model"
	"github.com/agenciavortexia1-debug/Autocar/internal/store"
)

// janelaAlertaLocacao: locações ativas que vencem em até 2 dias entram no
// alerta do dashboard (limite inclusivo).
const janelaAlertaLocacaoDias = 2

// DashboardService expõe os agregados derivados do snapshot. Leitura pura —
// nenhuma operação aqui muta estado.
type DashboardService interface {
	Metricas(ctx context.Context) *dto.Metricas
}

type dashboardService struct{ st *store.Store }

func NewDashboardService(st *store.Store) DashboardService {
	return &dashboardService{st: st}
}

func (s *dashboardService) Metricas(_ context.Context) *dto.Metricas {
	return CalcularMetricas(s.st.Current(), time.Now())
}

// CalcularMetricas deriva todos os agregados financeiros e alertas a partir
// do snapshot. Função pura: recalculada a cada chamada, nada é persistido.
func CalcularMetricas(snap model.Snapshot, agora time.Time) *dto.Metricas {
	// Lucro de estoque: só veículos vendidos contribuem.
	// lucro = venda - (compra + soma dos reparos)
	lucroEstoque := decimal.Zero
	noPatio := 0
	for i := range snap.Veiculos {
		v := &snap.Veiculos[i]
		if v.Status != model.StatusVendido {
			noPatio++
			continue
		}
		venda := decimal.Zero
		if v.PrecoVenda != nil {
			venda = *v.PrecoVenda
		}
		lucroEstoque = lucroEstoque.Add(venda.Sub(v.PrecoCompra.Add(v.CustoReparos())))
	}

	// Receita de locação: todos os contratos, ativos e encerrados.
	receitaLocacao := decimal.Zero
	for i := range snap.Locacoes {
		receitaLocacao = receitaLocacao.Add(snap.Locacoes[i].ValorTotal)
	}

	// Oficina: mão de obra + margem das peças (venda - custo, aos preços
	// copiados no fechamento da ordem).
	lucroOficina := decimal.Zero
	for i := range snap.Ordens {
		so := &snap.Ordens[i]
		margemPecas := decimal.Zero
		for _, p := range so.Pecas {
			qtd := decimal.NewFromInt(int64(p.Quantidade))
			margemPecas = margemPecas.Add(p.VendaNoMomento.Sub(p.CustoNoMomento).Mul(qtd))
		}
		lucroOficina = lucroOficina.Add(so.ValorServico.Add(margemPecas))
	}

	// Despesas: total geral, sem filtro de categoria ou período.
	despesas := decimal.Zero
	for i := range snap.Despesas {
		despesas = despesas.Add(snap.Despesas[i].Valor)
	}

	// Alertas de locação: contratos ativos vencendo em até 48h.
	limite := agora.AddDate(0, 0, janelaAlertaLocacaoDias)
	alertasLocacao := []model.Locacao{}
	for i := range snap.Locacoes {
		r := snap.Locacoes[i]
		if r.Ativa && !r.DataFim.After(limite) {
			alertasLocacao = append(alertasLocacao, r)
		}
	}

	// Alertas de estoque: quantidade igual ou abaixo do mínimo.
	alertasEstoque := []model.Produto{}
	for i := range snap.Produtos {
		if snap.Produtos[i].EstoqueBaixo() {
			alertasEstoque = append(alertasEstoque, snap.Produtos[i])
		}
	}

	return &dto.Metricas{
		LucroLiquido:         lucroEstoque.Add(receitaLocacao).Add(lucroOficina).Sub(despesas),
		LucroEstoque:         lucroEstoque,
		ReceitaLocacao:       receitaLocacao,
		LucroOficina:         lucroOficina,
		DespesasOperacionais: despesas,
		AlertasLocacao:       alertasLocacao,
		AlertasEstoque:       alertasEstoque,
		VeiculosNoPatio:      noPatio,
	}
}
