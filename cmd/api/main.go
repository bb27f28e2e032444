package main

import (
	"context"
	"log/slog"
	"os"

	"app/internal/config"
	"app/internal/handler"
	"app/internal/infra/db"
	infraRepo "app/internal/infra/repository"
	"app/internal/server"
	"app/internal/usecase"

	"github.com/joho/godotenv"
)

func main() {
	// .envは無ければ無いでよい（ローカル用）
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg := config.Load()

	//DB接続
	gormDB, err := db.Connect(cfg)
	if err != nil {
		logger.Error("db connect failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	//Repository（GORM実装）生成。スキーマ作成＋初期データ投入
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	if err := productRepo.Init(context.Background()); err != nil {
		logger.Error("db init failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	//Usecase生成
	productUC := usecase.NewProductUsecase(productRepo)

	//Handler生成（HTML / HTMX / JSON）
	pageH := handler.NewProductPageHandler(productUC)
	htmxH := handler.NewProductHtmxHandler(productUC)
	apiH := handler.NewProductAPIHandler(productUC)

	//Server起動
	addr := ":" + cfg.Port
	logger.Info("server starting",
		slog.String("addr", addr),
		slog.String("env", cfg.GoEnv),
	)

	if err := server.Start(addr, pageH, htmxH, apiH); err != nil {
		logger.Error("server stopped", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
