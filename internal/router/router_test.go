package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agenciavortexia1-debug/Autocar/internal/config"
	"github.com/agenciavortexia1-debug/Autocar/internal/infra"
	"github.com/agenciavortexia1-debug/Autocar/internal/model"
	"github.com/agenciavortexia1-debug/Autocar/internal/service"
	"github.com/agenciavortexia1-debug/Autocar/internal/store"
)

func setupServer(t *testing.T) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		Env:            "production", // sem swagger no teste
		StorageBackend: "file",
		PDFStoragePath: t.TempDir(),
	}
	st := store.New(model.NovoSnapshot())
	cb := infra.NewCircuitBreaker(infra.DefaultCBConfig())

	srv := httptest.NewServer(New(cfg, st, nil, cb))
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, srv *httptest.Server, path string, body any) *http.Response {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := srv.Client().Post(srv.URL+path, "application/json", bytes.NewReader(raw))
	require.NoError(t, err)
	return resp
}

func getJSON(t *testing.T, srv *httptest.Server, path string, dest any) *http.Response {
	t.Helper()
	resp, err := srv.Client().Get(srv.URL + path)
	require.NoError(t, err)
	if dest != nil {
		defer resp.Body.Close()
		require.NoError(t, json.NewDecoder(resp.Body).Decode(dest))
	}
	return resp
}

func TestHealth(t *testing.T) {
	srv := setupServer(t)

	var body map[string]any
	resp := getJSON(t, srv, "/health", &body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["ok"])
}

func TestFluxoCompleto_PatioLocacaoDashboard(t *testing.T) {
	srv := setupServer(t)

	// registra um veículo
	resp := postJSON(t, srv, "/v1/veiculos", map[string]any{
		"type":          "Carro",
		"brand":         "Chevrolet",
		"model":         "Onix",
		"year":          2020,
		"plate":         "ABC1D23",
		"purchasePrice": "48000",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var veiculo model.Veiculo
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&veiculo))
	resp.Body.Close()
	assert.Equal(t, model.StatusNoPatio, veiculo.Status)

	// inicia uma locação
	resp = postJSON(t, srv, "/v1/locacoes", map[string]any{
		"carId": veiculo.ID.String(),
		"customer": map[string]any{
			"name":     "Maria Souza",
			"document": "123.456.789-00",
			"phone":    "(75) 99999-0000",
		},
		"startDate":  "2026-03-01T10:00:00Z",
		"endDate":    "2026-03-08T10:00:00Z",
		"dailyRate":  "60",
		"totalValue": "420",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var loc model.Locacao
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&loc))
	resp.Body.Close()

	// o veículo agora aparece como locado
	var veiculos []model.Veiculo
	getJSON(t, srv, "/v1/veiculos", &veiculos)
	require.Len(t, veiculos, 1)
	assert.Equal(t, model.StatusLocado, veiculos[0].Status)

	// dashboard contabiliza a receita e zero veículos vendidos
	var metricas map[string]any
	getJSON(t, srv, "/v1/dashboard", &metricas)
	assert.Equal(t, "420", metricas["rentalRevenue"])
	assert.Equal(t, float64(1), metricas["assetsInStock"])

	// devolução restaura o pátio
	resp = postJSON(t, srv, "/v1/locacoes/"+loc.ID.String()+"/devolucao", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	getJSON(t, srv, "/v1/veiculos", &veiculos)
	assert.Equal(t, model.StatusNoPatio, veiculos[0].Status)

	// histórico registra as três operações, mais recente primeiro
	var historico []model.Historico
	getJSON(t, srv, "/v1/historico", &historico)
	require.Len(t, historico, 3)
	assert.Equal(t, model.HistFinish, historico[0].Tipo)
}

func TestValidacao_RegistroInvalido(t *testing.T) {
	srv := setupServer(t)

	resp := postJSON(t, srv, "/v1/veiculos", map[string]any{
		"type":  "Bicicleta",
		"brand": "X",
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestLocacao_VeiculoInexistenteRetorna404(t *testing.T) {
	srv := setupServer(t)

	resp := postJSON(t, srv, "/v1/locacoes", map[string]any{
		"carId": "6f1f2b0a-9a74-4f5e-bb8e-111111111111",
		"customer": map[string]any{
			"name":     "Maria Souza",
			"document": "123.456.789-00",
			"phone":    "(75) 99999-0000",
		},
		"startDate":  "2026-03-01T10:00:00Z",
		"endDate":    "2026-03-08T10:00:00Z",
		"dailyRate":  "60",
		"totalValue": "420",
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestInsights_SemChaveDevolveFallback(t *testing.T) {
	srv := setupServer(t)

	var body map[string]string
	resp := getJSON(t, srv, "/v1/dashboard/insights", &body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, service.FallbackInsights, body["insights"])
}
