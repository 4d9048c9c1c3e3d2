// Package store guarda o snapshot corrente do sistema e é o único ponto de
// mutação do estado. Toda alteração substitui o snapshot inteiro de forma
// atômica — leitores nunca observam aplicação parcial.
package store

import (
	"sync"

	"github.com/agenciavortexia1-debug/Autocar/internal/model"
)

// Mutator recebe o snapshot corrente e devolve o próximo. Não deve modificar
// as slices do snapshot recebido — coleções alteradas são reconstruídas.
type Mutator func(model.Snapshot) model.Snapshot

// Store mantém exatamente um snapshot. O mutex serializa as mutações vindas
// do servidor HTTP, preservando a semântica de ator único do modelo original.
type Store struct {
	mu       sync.RWMutex
	snap     model.Snapshot
	onChange func(model.Snapshot)
}

// New cria o store a partir do snapshot inicial (carregado do gateway de
// persistência, ou vazio na primeira execução).
func New(inicial *model.Snapshot) *Store {
	return &Store{snap: *inicial}
}

// OnChange registra o hook chamado após cada Apply com o novo snapshot.
// Usado para disparar a persistência fire-and-forget; o hook não deve
// bloquear.
func (s *Store) OnChange(fn func(model.Snapshot)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onChange = fn
}

// Apply substitui o snapshot pelo resultado do mutator e retorna o novo
// estado. A troca é atômica: nenhuma validação ou erro acontece aqui — as
// operações de mutação validam antes de chamar Apply.
func (s *Store) Apply(mut Mutator) model.Snapshot {
	s.mu.Lock()
	novo := mut(s.snap)
	s.snap = novo
	hook := s.onChange
	s.mu.Unlock()

	if hook != nil {
		hook(novo)
	}
	return novo
}

// Current retorna o snapshot corrente. As slices retornadas são
// compartilhadas — tratá-las como somente leitura.
func (s *Store) Current() model.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}
