// README: Ingestion service; refreshes the ANTT reference snapshot from the
// CKAN feed with an HTML-page fallback, on a timer and on demand.
package antt

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"rotaclick/internal/config"
	"rotaclick/internal/modules/compliance"
)

type Service struct {
	store  *Store
	client *http.Client
	cfg    config.AnttConfig
	log    *logrus.Logger
}

func NewService(store *Store, client *http.Client, cfg config.AnttConfig, log *logrus.Logger) *Service {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &Service{store: store, client: client, cfg: cfg, log: log}
}

// RunOnce performs a single ingestion attempt. The CSV feed is authoritative;
// when it fails and a resolution page is configured, only the diesel reference
// price is scraped and merged over the previous snapshot. Every attempt is
// logged to the run table, success or not.
func (s *Service) RunOnce(ctx context.Context) (IngestionRun, error) {
	run := IngestionRun{Source: SourceCSV, StartedAt: time.Now()}

	snap, count, err := s.ingestFeed(ctx)
	if err != nil && s.cfg.PageURL != "" {
		s.log.WithError(err).Warn("antt: feed ingestion failed, falling back to page heuristics")
		run.Source = SourceHTML
		snap, count, err = s.ingestPage(ctx)
	}

	if err == nil {
		err = s.store.InsertSnapshot(ctx, snap)
	}

	run.FinishedAt = time.Now()
	if err != nil {
		msg := err.Error()
		run.Status = RunFailure
		run.Error = &msg
	} else {
		run.Status = RunSuccess
		run.RecordCount = count
	}

	if logErr := s.store.LogRun(ctx, &run); logErr != nil {
		s.log.WithError(logErr).Error("antt: failed to record ingestion run")
	}

	if err != nil {
		s.log.WithError(err).WithField("source", run.Source).Error("antt: ingestion failed")
		return run, err
	}
	s.log.WithFields(logrus.Fields{
		"source":  run.Source,
		"records": run.RecordCount,
		"version": snap.Version,
	}).Info("antt: reference snapshot ingested")
	return run, nil
}

// RunScheduler ingests immediately and then on every tick until ctx is done.
func (s *Service) RunScheduler(ctx context.Context) {
	if _, err := s.RunOnce(ctx); err != nil {
		s.log.WithError(err).Warn("antt: initial ingestion failed, keeping previous snapshot")
	}

	ticker := time.NewTicker(s.cfg.RefreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			_, _ = s.RunOnce(ctx)
		}
	}
}

// Runs exposes the ingestion log for the admin screen.
func (s *Service) Runs(ctx context.Context, limit int) ([]IngestionRun, error) {
	return s.store.ListRuns(ctx, limit)
}

// Latest exposes the current snapshot.
func (s *Service) Latest(ctx context.Context) (*compliance.ReferenceSnapshot, error) {
	return s.store.Latest(ctx)
}

func (s *Service) ingestFeed(ctx context.Context) (*compliance.ReferenceSnapshot, int, error) {
	if s.cfg.FeedURL == "" {
		return nil, 0, fmt.Errorf("no feed URL configured")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.cfg.FeedURL, nil)
	if err != nil {
		return nil, 0, err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("fetch feed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, 0, fmt.Errorf("fetch feed: unexpected status %d", resp.StatusCode)
	}
	return ParseCSVFeed(resp.Body, s.cfg.FeedURL)
}

// ingestPage degrades gracefully: it only refreshes the diesel reference price
// on top of the previous snapshot, since the page layout is not a contract.
func (s *Service) ingestPage(ctx context.Context) (*compliance.ReferenceSnapshot, int, error) {
	prev, err := s.store.Latest(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("page fallback needs a previous snapshot: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.cfg.PageURL, nil)
	if err != nil {
		return nil, 0, err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("fetch page: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, 0, fmt.Errorf("fetch page: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 2<<20))
	if err != nil {
		return nil, 0, fmt.Errorf("read page: %w", err)
	}

	diesel, ok := ParseDieselFromHTML(string(body))
	if !ok {
		return nil, 0, fmt.Errorf("diesel price not found on page")
	}

	snap := *prev
	snap.SourceURL = s.cfg.PageURL
	snap.DieselReferencePrice = &diesel
	snap.Version = fmt.Sprintf("%s+diesel-%s", prev.Version, time.Now().Format("20060102"))
	return &snap, 1, nil
}
