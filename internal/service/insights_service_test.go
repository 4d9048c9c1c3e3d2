package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agenciavortexia1-debug/Autocar/internal/dto"
	"github.com/agenciavortexia1-debug/Autocar/internal/infra"
)

func TestGerarInsights_SemChaveUsaFallback(t *testing.T) {
	st := novoStore()
	client := infra.NewInsightsClient("http://localhost", "", "gemini-3-flash-preview")
	cb := infra.NewCircuitBreaker(infra.DefaultCBConfig())
	svc := NewInsightsService(st, client, cb)

	assert.Equal(t, FallbackInsights, svc.GerarInsights(context.Background()))
}

func TestGerarInsights_FalhaDaAPIUsaFallbackSemMutarEstado(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	st := novoStore()
	client := infra.NewInsightsClient(srv.URL, "chave-teste", "gemini-3-flash-preview")
	cb := infra.NewCircuitBreaker(infra.DefaultCBConfig())
	svc := NewInsightsService(st, client, cb)

	antes := st.Current()
	assert.Equal(t, FallbackInsights, svc.GerarInsights(context.Background()))
	assert.Equal(t, antes, st.Current())
}

func TestGerarInsights_PromptIncluiInventarioEDespesas(t *testing.T) {
	var recebido string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Contents []struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"contents"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		recebido = body.Contents[0].Parts[0].Text

		resp := map[string]any{
			"candidates": []map[string]any{{
				"content": map[string]any{
					"parts": []map[string]any{{"text": "1. Gire o estoque mais rápido."}},
				},
			}},
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	st := novoStore()
	patio := NewPatioService(st)
	registrarOnix(t, patio)
	fin := NewFinanceiroService(st)
	_, err := fin.AdicionarDespesa(context.Background(), dto.AdicionarDespesaRequest{
		Nome: "Energia", Valor: decimal.NewFromInt(400), Categoria: "Energia",
	})
	require.NoError(t, err)

	client := infra.NewInsightsClient(srv.URL, "chave-teste", "gemini-3-flash-preview")
	cb := infra.NewCircuitBreaker(infra.DefaultCBConfig())
	svc := NewInsightsService(st, client, cb)

	texto := svc.GerarInsights(context.Background())
	assert.Equal(t, "1. Gire o estoque mais rápido.", texto)
	assert.True(t, strings.Contains(recebido, "Chevrolet Onix"))
	assert.True(t, strings.Contains(recebido, "400.00"))
	assert.True(t, strings.Contains(recebido, "consultor sênior"))
}
