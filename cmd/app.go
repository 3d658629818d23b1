package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/misterclayt0n/ironflow/internal/config"
	"github.com/misterclayt0n/ironflow/internal/models"
	"github.com/misterclayt0n/ironflow/internal/notify"
	"github.com/misterclayt0n/ironflow/internal/records"
	"github.com/misterclayt0n/ironflow/internal/storage"
)

func openStorage(ctx context.Context) (*storage.Storage, error) {
	return storage.NewStorage(ctx, cfg.DB.ConnectionString)
}

// recordStore picks where PR state lives according to [records] backend.
func recordStore(st *storage.Storage) (records.Store, error) {
	if cfg.Records.Backend != config.RecordsBackendFile {
		return st, nil
	}

	path := cfg.Records.File
	if path == "" {
		p, err := storage.DefaultRecordsPath()
		if err != nil {
			return nil, err
		}
		path = p
	}
	return storage.NewFileStore(path), nil
}

func newTracker(ctx context.Context, st *storage.Storage, notifier records.Notifier) (*records.Tracker, error) {
	store, err := recordStore(st)
	if err != nil {
		return nil, err
	}
	return records.NewTracker(ctx, store, notifier, time.Now)
}

// prNotifier prints every detection and also delivers it on a hub. The
// returned summary reports totals once stop has been called.
func prNotifier(ctx context.Context) (records.Notifier, *notify.Summary, func()) {
	hub := notify.NewHub[models.PRDetection]()
	ch, _ := hub.Subscribe(256)
	summary := notify.Collect(ch)

	notifier := notify.Multi{notify.NewConsole(os.Stdout), notify.NewReliableBroadcast(ctx, hub)}
	return notifier, summary, hub.Close
}

func printPRSummary(summary *notify.Summary) {
	n, exercises := summary.Wait()
	if n == 0 {
		fmt.Println("No new personal records.")
		return
	}
	fmt.Printf("🏆 %d new records across %d exercises\n", n, exercises)
}

func profile() models.Profile {
	return models.Profile{Goal: cfg.Analysis.Goal}
}
