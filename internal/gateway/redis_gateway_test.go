//go:build integration

package gateway

// Integração com Redis real via testcontainers.
// Rode com: go test -tags integration ./internal/gateway/... -v

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tcRedis "github.com/testcontainers/testcontainers-go/modules/redis"

	"github.com/agenciavortexia1-debug/Autocar/internal/model"
)

func setupRedis(t *testing.T) *redis.Client {
	t.Helper()
	ctx := context.Background()

	container, err := tcRedis.Run(ctx, "redis:7-alpine")
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	uri, err := container.ConnectionString(ctx)
	require.NoError(t, err)

	opts, err := redis.ParseURL(uri)
	require.NoError(t, err)
	return redis.NewClient(opts)
}

func TestRedisGateway_ChaveAusente(t *testing.T) {
	rdb := setupRedis(t)
	g := NewRedisGateway(rdb, "autocar:teste")

	_, err := g.Load(context.Background())
	assert.ErrorIs(t, err, ErrSemSnapshot)
}

func TestRedisGateway_RoundTrip(t *testing.T) {
	rdb := setupRedis(t)
	g := NewRedisGateway(rdb, "autocar:teste")
	original := snapshotDeExemplo()

	require.NoError(t, g.Save(context.Background(), original))

	carregado, err := g.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, original.Veiculos[0].ID, carregado.Veiculos[0].ID)
	assert.Len(t, carregado.Historico, 1)

	// a chave não tem TTL: o snapshot é estado, não cache
	ttl, err := rdb.TTL(context.Background(), "autocar:teste").Result()
	require.NoError(t, err)
	assert.Equal(t, time.Duration(-1), ttl)
}

func TestRedisGateway_SaveSobrescreve(t *testing.T) {
	rdb := setupRedis(t)
	g := NewRedisGateway(rdb, "autocar:teste")

	require.NoError(t, g.Save(context.Background(), snapshotDeExemplo()))
	require.NoError(t, g.Save(context.Background(), model.NovoSnapshot()))

	carregado, err := g.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, carregado.Veiculos)
}
