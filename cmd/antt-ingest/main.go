// README: One-shot ANTT ingestion run, for cron jobs and manual refreshes.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"rotaclick/internal/config"
	"rotaclick/internal/infra"
	"rotaclick/internal/modules/antt"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
	if err != nil {
		log.Fatal(err)
	}
	defer dbPool.Close()

	store := antt.NewStore(dbPool, infra.NewRedis(cfg.Redis.Addr))
	svc := antt.NewService(store, nil, cfg.Antt, logrus.New())

	run, err := svc.RunOnce(ctx)
	if err != nil {
		log.Fatalf("ingestion failed (source=%s): %v", run.Source, err)
	}
	log.Printf("ingested %d records from %s source", run.RecordCount, run.Source)
}
