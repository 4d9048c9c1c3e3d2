// Package gateway persiste o snapshot completo do sistema. O documento
// inteiro é serializado a cada mudança e recarregado na inicialização — o
// equivalente da única chave de localStorage do painel original.
package gateway

import (
	"context"
	"errors"

	"github.com/agenciavortexia1-debug/Autocar/internal/model"
)

// ErrSemSnapshot sinaliza primeira execução: nenhum snapshot foi persistido.
var ErrSemSnapshot = errors.New("nenhum snapshot persistido")

// Gateway é o contrato de persistência consumido pelo núcleo.
// Contrato de round-trip: Load imediatamente após Save(S), sem escritas
// intermediárias, devolve um snapshot estruturalmente igual a S.
type Gateway interface {
	Load(ctx context.Context) (*model.Snapshot, error)
	Save(ctx context.Context, snap *model.Snapshot) error
}
