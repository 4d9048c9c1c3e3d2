package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/agenciavortexia1-debug/Autocar/internal/infra"
	"github.com/agenciavortexia1-debug/Autocar/internal/model"
	"github.com/agenciavortexia1-debug/Autocar/internal/store"
)

// FallbackInsights é devolvido sempre que a geração externa falha ou não
// está configurada. Nunca propagamos o erro — insights são consultivos.
const FallbackInsights = "Não foi possível gerar insights no momento. Verifique sua conexão e tente novamente."

// InsightsService produz o texto de consultoria do dashboard a partir do
// snapshot corrente. Somente leitura: nunca muta o estado e nunca é
// pré-requisito de nenhuma operação de mutação.
type InsightsService interface {
	GerarInsights(ctx context.Context) string
}

type insightsService struct {
	st     *store.Store
	client *infra.InsightsClient
	cb     *infra.CircuitBreaker
}

func NewInsightsService(st *store.Store, client *infra.InsightsClient, cb *infra.CircuitBreaker) InsightsService {
	return &insightsService{st: st, client: client, cb: cb}
}

func (s *insightsService) GerarInsights(ctx context.Context) string {
	if !s.client.Configurado() {
		return FallbackInsights
	}

	prompt := montarPrompt(s.st.Current())

	var texto string
	err := s.cb.Execute(func() error {
		gerado, err := s.client.Gerar(ctx, prompt)
		texto = gerado
		return err
	})
	if err != nil {
		log.Warn().Err(err).Msg("insights: geração falhou, usando fallback")
		return FallbackInsights
	}
	return texto
}

// resumoVeiculo é a visão compacta do inventário enviada no prompt:
// modelo, custo total (compra + reparos) e status.
type resumoVeiculo struct {
	Modelo string          `json:"model"`
	Custo  decimal.Decimal `json:"cost"`
	Status string          `json:"status"`
}

func montarPrompt(snap model.Snapshot) string {
	resumo := make([]resumoVeiculo, 0, len(snap.Veiculos))
	for i := range snap.Veiculos {
		v := &snap.Veiculos[i]
		resumo = append(resumo, resumoVeiculo{
			Modelo: v.Marca + " " + v.Modelo,
			Custo:  v.PrecoCompra.Add(v.CustoReparos()),
			Status: string(v.Status),
		})
	}
	inventarioJSON, _ := json.Marshal(resumo)

	totalDespesas := decimal.Zero
	for i := range snap.Despesas {
		totalDespesas = totalDespesas.Add(snap.Despesas[i].Valor)
	}

	return fmt.Sprintf(`Como um consultor sênior de gestão automotiva, analise os seguintes dados da minha loja de carros:
Inventário: %s
Despesas Operacionais Totais: R$ %s

Forneça 3 insights estratégicos curtos sobre:
1. Rentabilidade do estoque.
2. Gestão de custos de reparo.
3. Sugestão de precificação baseada no volume de despesas.

Retorne em português, de forma executiva e profissional.`,
		inventarioJSON, totalDespesas.StringFixed(2))
}
