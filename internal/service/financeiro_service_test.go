package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agenciavortexia1-debug/Autocar/internal/dto"
	"github.com/agenciavortexia1-debug/Autocar/internal/model"
)

func TestAdicionarDespesa_GravaEAudita(t *testing.T) {
	st := novoStore()
	svc := NewFinanceiroService(st)

	d, err := svc.AdicionarDespesa(context.Background(), dto.AdicionarDespesaRequest{
		Nome:      "Aluguel do galpão",
		Valor:     decimal.NewFromFloat(2500.50),
		Categoria: "Aluguel",
	})
	require.NoError(t, err)
	assert.Equal(t, model.DespesaAluguel, d.Categoria)
	assert.False(t, d.Data.IsZero())

	snap := st.Current()
	require.Len(t, snap.Despesas, 1)
	require.Len(t, snap.Historico, 1)
	assert.Equal(t, model.HistFinanceiro, snap.Historico[0].Categoria)
	assert.Contains(t, snap.Historico[0].Descricao, "R$ 2500.50")
}

func TestRemoverDespesa_ExistenteGeraEntradaDelete(t *testing.T) {
	st := novoStore()
	svc := NewFinanceiroService(st)

	d, err := svc.AdicionarDespesa(context.Background(), dto.AdicionarDespesaRequest{
		Nome: "Energia", Valor: decimal.NewFromInt(400), Categoria: "Energia",
	})
	require.NoError(t, err)

	require.NoError(t, svc.RemoverDespesa(context.Background(), d.ID))

	snap := st.Current()
	assert.Empty(t, snap.Despesas)
	require.Len(t, snap.Historico, 2)
	assert.Equal(t, model.HistDelete, snap.Historico[0].Tipo)
	assert.Contains(t, snap.Historico[0].Descricao, "Energia")
}

func TestRemoverDespesa_InexistenteNaoGravaNada(t *testing.T) {
	st := novoStore()
	svc := NewFinanceiroService(st)

	err := svc.RemoverDespesa(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrNaoEncontrado)
	assert.Empty(t, st.Current().Historico)
}
