package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agenciavortexia1-debug/Autocar/internal/dto"
	"github.com/agenciavortexia1-debug/Autocar/internal/model"
)

func locacaoDoOnix(veiculoID string) dto.IniciarLocacaoRequest {
	return dto.IniciarLocacaoRequest{
		VeiculoID: veiculoID,
		Cliente: dto.ClienteRequest{
			Nome:      "Maria Souza",
			Documento: "123.456.789-00",
			Telefone:  "(75) 99999-0000",
		},
		DataInicio: time.Now(),
		DataFim:    time.Now().AddDate(0, 0, 7),
		Diaria:     decimal.NewFromInt(100),
		ValorTotal: decimal.NewFromInt(700),
	}
}

func TestIniciarLocacao_MarcaVeiculoComoLocado(t *testing.T) {
	st := novoStore()
	patio := NewPatioService(st)
	svc := NewLocacaoService(st)
	v := registrarOnix(t, patio)

	loc, err := svc.IniciarLocacao(context.Background(), locacaoDoOnix(v.ID.String()))
	require.NoError(t, err)
	assert.True(t, loc.Ativa)
	assert.Equal(t, v.ID, loc.VeiculoID)

	snap := st.Current()
	assert.Equal(t, model.StatusLocado, snap.Veiculos[0].Status)
	assert.Equal(t, model.HistLocacao, snap.Historico[0].Categoria)
	assert.Contains(t, snap.Historico[0].Descricao, "Maria Souza")
}

func TestIniciarLocacao_VeiculoInexistenteNaoGravaNada(t *testing.T) {
	st := novoStore()
	svc := NewLocacaoService(st)

	_, err := svc.IniciarLocacao(context.Background(), locacaoDoOnix(uuid.NewString()))

	assert.ErrorIs(t, err, ErrNaoEncontrado)
	snap := st.Current()
	assert.Empty(t, snap.Locacoes)
	assert.Empty(t, snap.Historico)
}

func TestEncerrarLocacao_DevolveVeiculoAoPatio(t *testing.T) {
	st := novoStore()
	patio := NewPatioService(st)
	svc := NewLocacaoService(st)
	v := registrarOnix(t, patio)

	loc, err := svc.IniciarLocacao(context.Background(), locacaoDoOnix(v.ID.String()))
	require.NoError(t, err)

	encerrada, err := svc.EncerrarLocacao(context.Background(), loc.ID)
	require.NoError(t, err)
	assert.False(t, encerrada.Ativa)

	snap := st.Current()
	assert.Equal(t, model.StatusNoPatio, snap.Veiculos[0].Status)
	assert.False(t, snap.Locacoes[0].Ativa)
	assert.Equal(t, model.HistFinish, snap.Historico[0].Tipo)
}

func TestEncerrarLocacao_Inexistente(t *testing.T) {
	st := novoStore()
	svc := NewLocacaoService(st)

	_, err := svc.EncerrarLocacao(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrNaoEncontrado)
	assert.Empty(t, st.Current().Historico)
}

func TestBuscarLocacao_DevolveContratoEVeiculo(t *testing.T) {
	st := novoStore()
	patio := NewPatioService(st)
	svc := NewLocacaoService(st)
	v := registrarOnix(t, patio)

	loc, err := svc.IniciarLocacao(context.Background(), locacaoDoOnix(v.ID.String()))
	require.NoError(t, err)

	achada, veiculo, err := svc.BuscarLocacao(context.Background(), loc.ID)
	require.NoError(t, err)
	assert.Equal(t, loc.ID, achada.ID)
	assert.Equal(t, v.ID, veiculo.ID)

	_, _, err = svc.BuscarLocacao(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrNaoEncontrado)
}
