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

// FinanceiroService gerencia os custos operacionais fixos.
type FinanceiroService interface {
	AdicionarDespesa(ctx context.Context, req dto.AdicionarDespesaRequest) (*model.Despesa, error)
	RemoverDespesa(ctx context.Context, id uuid.UUID) error
	ListarDespesas(ctx context.Context) []model.Despesa
}

type financeiroService struct{ st *store.Store }

func NewFinanceiroService(st *store.Store) FinanceiroService {
	return &financeiroService{st: st}
}

func (s *financeiroService) AdicionarDespesa(_ context.Context, req dto.AdicionarDespesaRequest) (*model.Despesa, error) {
	d := model.Despesa{
		ID:        uuid.New(),
		Nome:      req.Nome,
		Valor:     req.Valor,
		Categoria: model.CategoriaDespesa(req.Categoria),
		Data:      time.Now(),
	}

	s.st.Apply(func(snap model.Snapshot) model.Snapshot {
		snap.Despesas = prepend(snap.Despesas, d)
		snap.Historico = pushLog(snap.Historico, model.HistFinanceiro, model.HistAdd,
			fmt.Sprintf("Nova despesa fixada: %s - R$ %s", d.Nome, d.Valor.StringFixed(2)))
		return snap
	})

	return &d, nil
}

// RemoverDespesa apaga a despesa por id. Se não existe, nada muda e nenhuma
// entrada de histórico é registrada.
func (s *financeiroService) RemoverDespesa(_ context.Context, id uuid.UUID) error {
	achou := false
	s.st.Apply(func(snap model.Snapshot) model.Snapshot {
		i := snap.AcharDespesa(id)
		if i < 0 {
			return snap
		}
		achou = true

		d := snap.Despesas[i]
		snap.Despesas = removeAt(snap.Despesas, i)
		snap.Historico = pushLog(snap.Historico, model.HistFinanceiro, model.HistDelete,
			fmt.Sprintf("Despesa removida: %s", d.Nome))
		return snap
	})

	if !achou {
		return ErrNaoEncontrado
	}
	return nil
}

func (s *financeiroService) ListarDespesas(_ context.Context) []model.Despesa {
	return s.st.Current().Despesas
}
