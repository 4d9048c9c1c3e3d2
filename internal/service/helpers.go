package service

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/agenciavortexia1-debug/Autocar/internal/model"
)

// ErrNaoEncontrado sinaliza referência a uma entidade inexistente. A mutação
// é suprimida por inteiro: nenhuma mudança de estado e nenhuma entrada de
// histórico.
var ErrNaoEncontrado = errors.New("registro não encontrado")

// pushLog cria a entrada de auditoria e a insere no topo da trilha
// (limite de model.MaxHistorico aplicado na inserção).
func pushLog(trilha []model.Historico, cat model.CategoriaHistorico, tipo model.TipoHistorico, descricao string) []model.Historico {
	return model.PushHistorico(trilha, model.Historico{
		ID:        uuid.New(),
		Timestamp: time.Now(),
		Categoria: cat,
		Descricao: descricao,
		Tipo:      tipo,
	})
}

// Os mutators nunca alteram as slices do snapshot corrente: coleções que
// mudam são reconstruídas com os helpers abaixo.

func prepend[T any](xs []T, x T) []T {
	out := make([]T, 0, len(xs)+1)
	out = append(out, x)
	return append(out, xs...)
}

func replaceAt[T any](xs []T, i int, x T) []T {
	out := make([]T, len(xs))
	copy(out, xs)
	out[i] = x
	return out
}

func removeAt[T any](xs []T, i int) []T {
	out := make([]T, 0, len(xs)-1)
	out = append(out, xs[:i]...)
	return append(out, xs[i+1:]...)
}
