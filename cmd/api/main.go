package main

import (
	"database/sql"
	"net/http"

	_ "github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	server "github.com/Mr-Neutr0n/travel-agent-ai/internal/adapters/http_server"
	"github.com/Mr-Neutr0n/travel-agent-ai/internal/adapters/observability"
	redisad "github.com/Mr-Neutr0n/travel-agent-ai/internal/adapters/redis"
	"github.com/Mr-Neutr0n/travel-agent-ai/internal/adapters/research"
	"github.com/Mr-Neutr0n/travel-agent-ai/internal/app"
	"github.com/Mr-Neutr0n/travel-agent-ai/internal/domain"
	"github.com/Mr-Neutr0n/travel-agent-ai/internal/guide"
	"github.com/Mr-Neutr0n/travel-agent-ai/internal/shared"
	mysqlrepo "github.com/Mr-Neutr0n/travel-agent-ai/internal/storage/mysql"
)

func main() {
	_ = godotenv.Load()
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv, "api")

	observability.Serve()

	// db
	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("database connection ok")

	// deps
	repo := mysqlrepo.New(db)
	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	demo := research.NewDemoSource()
	var src domain.RecommendationSource = demo
	if cfg.ResearchKey != "" {
		client, err := research.New(cfg.ResearchBase, cfg.ResearchKey, cfg.ResearchRPS)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize research client")
		}
		src = client
	}

	gen := guide.NewGenerator(cfg.OutputDir)
	p := app.NewPlanService(src, demo, repo, cache, gen, int(cfg.CacheTTL.Seconds()))
	q := app.NewQueryService(repo, cache, cfg.CacheTTL)

	// http
	srv := server.New()
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{P: p, Q: q})

	log.Info().Str("addr", cfg.HTTPAddr).Str("output_dir", cfg.OutputDir).Msg("API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}
