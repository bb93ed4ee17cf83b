// README: Entry point; loads config, runs migrations, wires services, starts
// the HTTP server and the ANTT ingestion scheduler.
package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/sirupsen/logrus"

	"rotaclick/internal/ai"
	"rotaclick/internal/config"
	httptransport "rotaclick/internal/http"
	"rotaclick/internal/infra"
	"rotaclick/internal/maps"
	"rotaclick/internal/migrations"
	"rotaclick/internal/modules/aiquota"
	"rotaclick/internal/modules/antt"
	"rotaclick/internal/modules/compliance"
	"rotaclick/internal/modules/pricing"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Firebase.ProjectID == "" {
		log.Fatal("ROTACLICK_FIREBASE_PROJECT_ID is required")
	}
	verifier, err := infra.NewFirebaseVerifier(ctx, cfg.Firebase.ProjectID, cfg.Firebase.CredentialsFile)
	if err != nil {
		log.Fatalf("firebase init: %v", err)
	}

	migrationDB, err := sql.Open("pgx", cfg.DB.DSN)
	if err != nil {
		log.Fatalf("open migration connection: %v", err)
	}
	if err := migrations.Up(migrationDB, cfg.DB.MigrationsDir); err != nil {
		log.Fatalf("migrate: %v", err)
	}
	migrationDB.Close()

	dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
	if err != nil {
		log.Fatal(err)
	}

	redisClient := infra.NewRedis(cfg.Redis.Addr)

	ingestLog := logrus.New()
	anttStore := antt.NewStore(dbPool, redisClient)
	anttSvc := antt.NewService(anttStore, nil, cfg.Antt, ingestLog)

	complianceStore := compliance.NewStore(dbPool)

	pricingStore := pricing.NewStore(dbPool)
	pricingSvc := pricing.NewService(pricingStore, anttStore, complianceStore)

	quotaSvc := aiquota.NewService(aiquota.NewStore(dbPool))

	var routeSvc *maps.RouteService
	if cfg.Maps.APIKey != "" {
		routeSvc, err = maps.NewRouteService(cfg.Maps.APIKey)
		if err != nil {
			log.Fatalf("maps init: %v", err)
		}
	}

	var summaryProvider ai.SummaryProvider
	if cfg.AI.GeminiKey != "" {
		gemini, err := ai.NewGeminiProvider(ctx, cfg.AI.GeminiKey)
		if err != nil {
			log.Fatalf("gemini init: %v", err)
		}
		defer gemini.Close()
		summaryProvider = gemini
	}

	handler := httptransport.NewRouter(httptransport.RouterDeps{
		Pricing:  pricingSvc,
		Antt:     anttSvc,
		Quota:    quotaSvc,
		Routes:   routeSvc,
		Summary:  summaryProvider,
		Verifier: verifier,
	})

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: handler}

	go anttSvc.RunScheduler(ctx)

	go func() {
		<-ctx.Done()
		_ = server.Shutdown(context.Background())
	}()

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
