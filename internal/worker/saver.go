// Package worker executa a persistência assíncrona do snapshot.
// As operações de mutação nunca bloqueiam em I/O: o store publica o novo
// snapshot aqui e segue em frente (fire-and-forget).
package worker

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/agenciavortexia1-debug/Autocar/internal/gateway"
	"github.com/agenciavortexia1-debug/Autocar/internal/model"
)

const saveTimeout = 5 * time.Second

// Saver consome snapshots de um canal latest-wins e os grava via gateway.
// Se várias mutações chegam enquanto uma gravação está em curso, apenas o
// snapshot mais recente é persistido — gravar estados intermediários não
// agrega nada, o documento é sempre substituído por inteiro.
type Saver struct {
	gw gateway.Gateway
	ch chan model.Snapshot
}

func NewSaver(gw gateway.Gateway) *Saver {
	return &Saver{
		gw: gw,
		ch: make(chan model.Snapshot, 1),
	}
}

// Enqueue publica o snapshot para gravação sem bloquear. Um snapshot ainda
// não gravado é descartado em favor do mais novo.
func (s *Saver) Enqueue(snap model.Snapshot) {
	for {
		select {
		case s.ch <- snap:
			return
		default:
			// Canal cheio: descarta o pendente e tenta de novo
			select {
			case <-s.ch:
			default:
			}
		}
	}
}

// Run consome o canal até o contexto ser cancelado. Falhas de gravação são
// registradas como warning e nunca afetam o estado em memória — o sistema
// continua operando sem durabilidade até a próxima gravação bem-sucedida.
func (s *Saver) Run(ctx context.Context) {
	log.Info().Msg("saver: started")
	for {
		select {
		case <-ctx.Done():
			// Última chance: grava o snapshot pendente antes de sair
			select {
			case snap := <-s.ch:
				s.save(context.Background(), snap)
			default:
			}
			log.Info().Msg("saver: shutting down")
			return
		case snap := <-s.ch:
			s.save(ctx, snap)
		}
	}
}

func (s *Saver) save(ctx context.Context, snap model.Snapshot) {
	saveCtx, cancel := context.WithTimeout(ctx, saveTimeout)
	defer cancel()
	if err := s.gw.Save(saveCtx, &snap); err != nil {
		log.Warn().Err(err).Msg("saver: falha ao persistir snapshot")
	}
}
