// cmd/seeddemo/main.go — Grava um snapshot de demonstração no backend
// configurado. Uso: go run ./cmd/seeddemo
package main

import (
	"context"
	"fmt"
	stdlog "log"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/agenciavortexia1-debug/Autocar/internal/config"
	"github.com/agenciavortexia1-debug/Autocar/internal/gateway"
	"github.com/agenciavortexia1-debug/Autocar/internal/infra"
	"github.com/agenciavortexia1-debug/Autocar/internal/model"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		stdlog.Fatalf("config: %v", err)
	}

	var gw gateway.Gateway
	switch cfg.StorageBackend {
	case "redis":
		rdb, err := infra.NewRedis(cfg.RedisURL)
		if err != nil {
			stdlog.Fatalf("redis: %v", err)
		}
		gw = gateway.NewRedisGateway(rdb, cfg.SnapshotKey)
	case "file":
		if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
			stdlog.Fatalf("data dir: %v", err)
		}
		gw = gateway.NewFileGateway(filepath.Join(cfg.DataDir, "estado.json"))
	default:
		stdlog.Fatalf("STORAGE_BACKEND desconhecido: %s", cfg.StorageBackend)
	}

	snap := demoSnapshot()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := gw.Save(ctx, snap); err != nil {
		stdlog.Fatalf("save: %v", err)
	}
	fmt.Printf("✅ Snapshot de demo gravado (%d veículos, %d produtos, %d locações)\n",
		len(snap.Veiculos), len(snap.Produtos), len(snap.Locacoes))
}

func demoSnapshot() *model.Snapshot {
	agora := time.Now()
	snap := model.NovoSnapshot()

	onix := model.Veiculo{
		ID:          uuid.New(),
		Tipo:        model.TipoCarro,
		Marca:       "Chevrolet",
		Modelo:      "Onix LT 1.0",
		Ano:         2020,
		Placa:       "ABC1D23",
		PrecoCompra: decimal.NewFromInt(48000),
		Status:      model.StatusNoPatio,
		Reparos:     model.NovoChecklist(),
		DataCompra:  agora.AddDate(0, -2, 0),
		StatusDoc:   model.DocOK,
	}
	biz := model.Veiculo{
		ID:          uuid.New(),
		Tipo:        model.TipoMoto,
		Marca:       "Honda",
		Modelo:      "Biz 125",
		Ano:         2022,
		Placa:       "XYZ4E56",
		PrecoCompra: decimal.NewFromInt(11500),
		Status:      model.StatusLocado,
		Reparos:     model.NovoChecklist(),
		DataCompra:  agora.AddDate(0, -1, 0),
		StatusDoc:   model.DocPendente,
		DetalhesDoc: "Transferência em andamento",
	}
	snap.Veiculos = []model.Veiculo{onix, biz}

	snap.Locacoes = []model.Locacao{{
		ID:        uuid.New(),
		VeiculoID: biz.ID,
		Cliente: model.Cliente{
			Nome:      "Maria Souza",
			Documento: "123.456.789-00",
			Telefone:  "(75) 99999-0000",
		},
		DataInicio: agora.AddDate(0, 0, -5),
		DataFim:    agora.AddDate(0, 0, 1),
		Diaria:     decimal.NewFromInt(60),
		ValorTotal: decimal.NewFromInt(360),
		Ativa:      true,
	}}

	snap.Produtos = []model.Produto{
		{
			ID:               uuid.New(),
			Nome:             "Óleo 10W40 (litro)",
			Quantidade:       12,
			QuantidadeMinima: 4,
			PrecoCusto:       decimal.NewFromFloat(28.50),
			PrecoVenda:       decimal.NewFromFloat(55),
		},
		{
			ID:               uuid.New(),
			Nome:             "Pastilha de freio",
			Quantidade:       2,
			QuantidadeMinima: 3,
			PrecoCusto:       decimal.NewFromFloat(45),
			PrecoVenda:       decimal.NewFromFloat(95),
		},
	}

	snap.Despesas = []model.Despesa{{
		ID:        uuid.New(),
		Nome:      "Aluguel do galpão",
		Valor:     decimal.NewFromInt(2500),
		Categoria: model.DespesaAluguel,
		Data:      agora.AddDate(0, 0, -10),
	}}

	snap.Historico = []model.Historico{{
		ID:        uuid.New(),
		Timestamp: agora,
		Categoria: model.HistPatio,
		Tipo:      model.HistAdd,
		Descricao: "Snapshot de demonstração gerado",
	}}

	return snap
}
