package store

import (
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/agenciavortexia1-debug/Autocar/internal/model"
)

func TestApply_SubstituiSnapshotAtomicamente(t *testing.T) {
	st := New(model.NovoSnapshot())

	novo := st.Apply(func(snap model.Snapshot) model.Snapshot {
		snap.Veiculos = append([]model.Veiculo{{ID: uuid.New(), Modelo: "Onix"}}, snap.Veiculos...)
		return snap
	})

	assert.Len(t, novo.Veiculos, 1)
	assert.Len(t, st.Current().Veiculos, 1)
	assert.Equal(t, "Onix", st.Current().Veiculos[0].Modelo)
}

func TestApply_ChamaOnChangeComNovoEstado(t *testing.T) {
	st := New(model.NovoSnapshot())

	var recebido model.Snapshot
	st.OnChange(func(snap model.Snapshot) { recebido = snap })

	st.Apply(func(snap model.Snapshot) model.Snapshot {
		snap.Produtos = append([]model.Produto{{ID: uuid.New(), Nome: "Óleo"}}, snap.Produtos...)
		return snap
	})

	assert.Len(t, recebido.Produtos, 1)
	assert.Equal(t, "Óleo", recebido.Produtos[0].Nome)
}

func TestApply_MutacoesConcorrentesNaoSePerdem(t *testing.T) {
	st := New(model.NovoSnapshot())

	const n = 100
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			st.Apply(func(snap model.Snapshot) model.Snapshot {
				snap.Despesas = append([]model.Despesa{{ID: uuid.New()}}, snap.Despesas...)
				return snap
			})
		}()
	}
	wg.Wait()

	assert.Len(t, st.Current().Despesas, n)
}
