package gateway

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agenciavortexia1-debug/Autocar/internal/model"
)

func snapshotDeExemplo() *model.Snapshot {
	snap := model.NovoSnapshot()
	venda := decimal.NewFromInt(52000)
	dataVenda := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	snap.Veiculos = []model.Veiculo{{
		ID:          uuid.New(),
		Tipo:        model.TipoCarro,
		Marca:       "Chevrolet",
		Modelo:      "Onix",
		Ano:         2020,
		Placa:       "ABC1D23",
		PrecoCompra: decimal.NewFromInt(48000),
		PrecoVenda:  &venda,
		Status:      model.StatusVendido,
		Reparos:     []model.ItemReparo{{ID: uuid.New(), Nome: "Freios", Custo: decimal.NewFromInt(350), Concluido: true}},
		DataCompra:  time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC),
		DataVenda:   &dataVenda,
		StatusDoc:   model.DocOK,
	}}
	snap.Produtos = []model.Produto{{
		ID: uuid.New(), Nome: "Óleo 10W40", Quantidade: 12, QuantidadeMinima: 4,
		PrecoCusto: decimal.NewFromFloat(28.50), PrecoVenda: decimal.NewFromInt(55),
	}}
	snap.Historico = []model.Historico{{
		ID: uuid.New(), Timestamp: time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC),
		Categoria: model.HistPatio, Tipo: model.HistAdd, Descricao: "Novo veículo registrado",
	}}
	return snap
}

func TestFileGateway_ArquivoAusente(t *testing.T) {
	g := NewFileGateway(filepath.Join(t.TempDir(), "estado.json"))

	_, err := g.Load(context.Background())
	assert.ErrorIs(t, err, ErrSemSnapshot)
}

func TestFileGateway_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "estado.json")
	g := NewFileGateway(path)
	original := snapshotDeExemplo()

	require.NoError(t, g.Save(context.Background(), original))

	carregado, err := g.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, original.Veiculos[0].ID, carregado.Veiculos[0].ID)
	assert.True(t, carregado.Veiculos[0].PrecoVenda.Equal(*original.Veiculos[0].PrecoVenda))
	assert.Len(t, carregado.Produtos, 1)
	assert.True(t, carregado.Produtos[0].PrecoCusto.Equal(decimal.NewFromFloat(28.50)))
	// coleções vazias sobrevivem como slices vazias, não nil
	assert.NotNil(t, carregado.Locacoes)
	assert.NotNil(t, carregado.Ordens)
}

func TestFileGateway_SaveSobrescreveAtomicamente(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "estado.json")
	g := NewFileGateway(path)

	require.NoError(t, g.Save(context.Background(), snapshotDeExemplo()))

	segundo := model.NovoSnapshot()
	require.NoError(t, g.Save(context.Background(), segundo))

	carregado, err := g.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, carregado.Veiculos)

	// nenhum arquivo temporário ficou para trás
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "estado.json", entries[0].Name())
}

func TestFileGateway_CriaDiretorioNoSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aninhado", "estado.json")
	g := NewFileGateway(path)

	require.NoError(t, g.Save(context.Background(), model.NovoSnapshot()))
	_, err := g.Load(context.Background())
	assert.NoError(t, err)
}
