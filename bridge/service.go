package bridge

import (
	"context"
	"fmt"
	"time"

	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/worker"

	"encore.dev/rlog"
	"encore.dev/storage/sqldb"

	"readarrbridge.app/bridge/business/ledger"
	"readarrbridge.app/bridge/business/pipeline"
	"readarrbridge.app/bridge/cache"
	"readarrbridge.app/bridge/catalog"
	"readarrbridge.app/bridge/domain"
	"readarrbridge.app/bridge/middleware/idempotency"
	"readarrbridge.app/bridge/repository"
	"readarrbridge.app/bridge/workflow"
)

var bridgeDB = sqldb.NewDatabase("readarr_bridge", sqldb.DatabaseConfig{
	Migrations: "./db/migrations",
})

var secrets struct {
	ReadarrAPIKey string
}

//encore:service
type Service struct {
	settings settings
	ledger   ledger.Business
	pipeline pipeline.Business
	caches   *cache.Manager
	temporal client.Client
	worker   worker.Worker
}

func initService() (*Service, error) {
	s, err := loadSettings(cfg, secrets.ReadarrAPIKey)
	if err != nil {
		rlog.Error("invalid configuration", "error", err)
		return nil, err
	}

	pgxdb := sqldb.Driver(bridgeDB)
	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := pgxdb.Ping(pingCtx); err != nil {
		rlog.Error("database unreachable", "error", err)
		return nil, fmt.Errorf("ping database: %w", err)
	}

	repo := repository.NewRepository(pgxdb)
	ledgerBusiness := ledger.NewLedgerBusiness(repo.Requests, domain.NewRequestStateMachine(repo.Tx))

	readarrCache := cache.New(cache.Readarr, "Readarr catalog",
		cache.WithTTL(s.CacheTTL),
		cache.WithCheckPeriod(s.CacheCheckPeriod),
	)
	readarr, err := catalog.NewReadarrClient(s.ReadarrURL, s.APIKey, catalog.WithTimeout(s.CatalogTimeout))
	if err != nil {
		return nil, err
	}

	pipelineBusiness := pipeline.NewPipelineBusiness(ledgerBusiness, catalog.NewCachedClient(readarr, readarrCache), pipeline.Options{
		RootFolderPath:        s.RootFolderPath,
		QualityProfileID:      s.QualityProfileID,
		MetadataProfileID:     s.MetadataProfileID,
		SearchOnAdd:           s.SearchOnAdd,
		ProbeMetadataProfiles: s.ProbeMetadataProfiles,
	})

	idempotency.SetCompletedTTL(s.IdempotencyTTL)

	svc := &Service{
		settings: s,
		ledger:   ledgerBusiness,
		pipeline: pipelineBusiness,
		caches:   cache.NewManager(readarrCache),
	}

	if s.Dispatch == DispatchWorkflow {
		if err := svc.startWorker(); err != nil {
			return nil, err
		}
	}

	rlog.Info("readarr bridge ready", "readarr_url", s.ReadarrURL, "dispatch", s.Dispatch)
	return svc, nil
}

// startWorker connects to Temporal and runs the resolution worker in this process
func (s *Service) startWorker() error {
	c, err := client.Dial(client.Options{
		HostPort:  s.settings.TemporalHostPort,
		Namespace: s.settings.TemporalNamespace,
	})
	if err != nil {
		return fmt.Errorf("create temporal client: %w", err)
	}

	workflow.SetActivityDependencies(s.pipeline, s.ledger)

	w := worker.New(c, workflow.TaskQueue, worker.Options{})
	w.RegisterWorkflow(workflow.ResolveRequest)
	w.RegisterActivity(workflow.ResolveRequestActivity)
	w.RegisterActivity(workflow.FailRequestActivity)

	if err := w.Start(); err != nil {
		c.Close()
		return fmt.Errorf("start temporal worker: %w", err)
	}

	s.temporal = c
	s.worker = w
	return nil
}

// Shutdown stops the resolution worker and the Temporal client.
func (s *Service) Shutdown(force context.Context) {
	if s.worker != nil {
		s.worker.Stop()
	}
	if s.temporal != nil {
		s.temporal.Close()
	}
}
