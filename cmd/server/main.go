package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/agenciavortexia1-debug/Autocar/internal/config"
	"github.com/agenciavortexia1-debug/Autocar/internal/gateway"
	"github.com/agenciavortexia1-debug/Autocar/internal/infra"
	"github.com/agenciavortexia1-debug/Autocar/internal/model"
	"github.com/agenciavortexia1-debug/Autocar/internal/router"
	"github.com/agenciavortexia1-debug/Autocar/internal/store"
	"github.com/agenciavortexia1-debug/Autocar/internal/worker"
)

func main() {
	// Logger estruturado — dev: legível, prod: JSON
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("falha ao carregar configuração")
	}

	// Backend de persistência do snapshot
	var gw gateway.Gateway
	var rdb *redis.Client
	switch cfg.StorageBackend {
	case "redis":
		rdb, err = infra.NewRedis(cfg.RedisURL)
		if err != nil {
			log.Fatal().Err(err).Msg("falha ao conectar no redis")
		}
		gw = gateway.NewRedisGateway(rdb, cfg.SnapshotKey)
	case "file":
		if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
			log.Fatal().Err(err).Str("dir", cfg.DataDir).Msg("falha ao criar diretório de dados")
		}
		gw = gateway.NewFileGateway(filepath.Join(cfg.DataDir, "estado.json"))
	default:
		log.Fatal().Str("backend", cfg.StorageBackend).Msg("STORAGE_BACKEND desconhecido (use redis ou file)")
	}

	// Carrega o snapshot inicial; primeira execução começa vazia
	loadCtx, loadCancel := context.WithTimeout(context.Background(), 10*time.Second)
	snap, err := gw.Load(loadCtx)
	loadCancel()
	switch {
	case errors.Is(err, gateway.ErrSemSnapshot):
		log.Info().Msg("nenhum snapshot persistido, iniciando com estado vazio")
		snap = model.NovoSnapshot()
	case err != nil:
		log.Fatal().Err(err).Msg("falha ao carregar snapshot")
	}

	st := store.New(snap)

	// Persistência assíncrona: cada mutação enfileira o snapshot resultante;
	// o saver grava sempre a versão mais recente.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	saver := worker.NewSaver(gw)
	st.OnChange(saver.Enqueue)
	saverDone := make(chan struct{})
	go func() {
		defer close(saverDone)
		saver.Run(ctx)
	}()

	insightsCB := infra.NewCircuitBreaker(infra.DefaultCBConfig())

	r := router.New(cfg, st, rdb, insightsCB)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Shutdown gracioso em SIGINT / SIGTERM
	go func() {
		log.Info().Msgf("Auto Car Chapada backend ouvindo em :%d", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("erro no servidor")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("encerrando servidor…")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("shutdown forçado")
	}

	// Cancela o saver e espera a gravação final drenar
	cancel()
	<-saverDone
	log.Info().Msg("servidor finalizado")
}
