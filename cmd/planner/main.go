package main

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"
	"sync"

	_ "github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

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
	ctx := context.Background()
	_ = godotenv.Load()
	cfg := shared.Load()

	// 1) initialize global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv, "planner")

	log.Info().
		Str("base", cfg.ResearchBase).
		Int("workers", cfg.Workers).
		Str("output_dir", cfg.OutputDir).
		Msg("planner starting")

	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("db ping ok")

	repo := mysqlrepo.New(db)
	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	defer cache.Close()

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
	svc := app.NewPlanService(src, demo, repo, cache, gen, int(cfg.CacheTTL.Seconds()))

	if len(os.Args) > 1 {
		runBatch(ctx, svc, os.Args[1:], cfg.Workers)
		return
	}
	runInteractive(ctx, svc)
}

func runBatch(ctx context.Context, svc *app.PlanService, destinations []string, workers int) {
	sem := semaphore.NewWeighted(int64(workers))
	var wg sync.WaitGroup

	for _, dest := range destinations {
		dest := dest

		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, int64(1)); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}

		wg.Add(1)
		go func(destination string) {
			defer wg.Done()
			defer sem.Release(int64(1))

			path, err := svc.GenerateGuide(ctx, destination)
			if err != nil {
				log.Warn().Str("destination", destination).Err(err).Msg("guide failed")
				return
			}
			log.Info().Str("destination", destination).Str("path", path).Msg("guide ok")
		}(dest)
	}

	wg.Wait()
	log.Info().Msg("batch completed")
}

func runInteractive(ctx context.Context, svc *app.PlanService) {
	fmt.Println("Where would you like to go? Type a destination, or 'quit' to exit.")
	sc := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !sc.Scan() {
			break
		}
		dest := strings.TrimSpace(sc.Text())
		if dest == "" {
			continue
		}
		if strings.EqualFold(dest, "quit") || strings.EqualFold(dest, "exit") {
			break
		}
		path, err := svc.GenerateGuide(ctx, dest)
		if err != nil {
			fmt.Printf("could not build a guide for %s: %v\n", dest, err)
			continue
		}
		fmt.Printf("saved %s\n", path)
	}
	if err := sc.Err(); err != nil {
		log.Warn().Err(err).Msg("stdin read failed")
	}
}
