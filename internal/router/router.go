package router

import (
	"time"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/agenciavortexia1-debug/Autocar/internal/config"
	"github.com/agenciavortexia1-debug/Autocar/internal/handler"
	"github.com/agenciavortexia1-debug/Autocar/internal/infra"
	"github.com/agenciavortexia1-debug/Autocar/internal/middleware"
	"github.com/agenciavortexia1-debug/Autocar/internal/service"
	"github.com/agenciavortexia1-debug/Autocar/internal/store"
)

// New monta todas as dependências e devolve o engine Gin configurado.
// Grafo: Handler ← Service ← Store (snapshot em memória)
func New(cfg *config.Config, st *store.Store, rdb *redis.Client, insightsCB *infra.CircuitBreaker) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Cadeia global de middleware (a ordem importa)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute))

	// ── Infraestrutura ───────────────────────────────────────────────────────
	insightsClient := infra.NewInsightsClient(cfg.GeminiAPIURL, cfg.GeminiAPIKey, cfg.GeminiModel)

	// ── Services ─────────────────────────────────────────────────────────────
	patioSvc := service.NewPatioService(st)
	locacaoSvc := service.NewLocacaoService(st)
	financeiroSvc := service.NewFinanceiroService(st)
	oficinaSvc := service.NewOficinaService(st)
	dashboardSvc := service.NewDashboardService(st)
	insightsSvc := service.NewInsightsService(st, insightsClient, insightsCB)

	// ── Handlers ─────────────────────────────────────────────────────────────
	patioH := handler.NewPatioHandler(patioSvc)
	locacaoH := handler.NewLocacaoHandler(locacaoSvc, cfg.PDFStoragePath)
	financeiroH := handler.NewFinanceiroHandler(financeiroSvc)
	oficinaH := handler.NewOficinaHandler(oficinaSvc)
	dashboardH := handler.NewDashboardHandler(dashboardSvc, insightsSvc)
	historicoH := handler.NewHistoricoHandler(st)

	// ── Rotas ────────────────────────────────────────────────────────────────

	r.GET("/health", handler.Health(cfg.StorageBackend, rdb))

	v1 := r.Group("/v1")
	{
		veiculos := v1.Group("/veiculos")
		{
			veiculos.GET("", patioH.Listar)
			veiculos.POST("", patioH.Registrar)
			veiculos.PUT("/:id", patioH.Atualizar)
		}

		locacoes := v1.Group("/locacoes")
		{
			locacoes.GET("", locacaoH.Listar)
			locacoes.POST("", locacaoH.Iniciar)
			locacoes.POST("/:id/devolucao", locacaoH.Devolucao)
			locacoes.GET("/:id/contrato", locacaoH.Contrato)
		}

		despesas := v1.Group("/despesas")
		{
			despesas.GET("", financeiroH.Listar)
			despesas.POST("", financeiroH.Adicionar)
			despesas.DELETE("/:id", financeiroH.Remover)
		}

		produtos := v1.Group("/produtos")
		{
			produtos.GET("", oficinaH.ListarProdutos)
			produtos.POST("", oficinaH.AdicionarProduto)
			produtos.PATCH("/:id/estoque", oficinaH.AjustarEstoque)
		}

		ordens := v1.Group("/ordens-servico")
		{
			ordens.GET("", oficinaH.ListarOrdens)
			ordens.POST("", oficinaH.FecharOrdem)
		}

		v1.GET("/dashboard", dashboardH.Metricas)
		v1.GET("/dashboard/insights", dashboardH.Insights)

		v1.GET("/historico", historicoH.Listar)
	}

	// Swagger UI — habilitado só fora de produção
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
