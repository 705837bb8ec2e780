package workers

import (
	"context"

	"github.com/mbastos/acervo/internal/config"
	"github.com/mbastos/acervo/internal/logger"
	"github.com/mbastos/acervo/internal/store"
)

type Workers struct {
	workers []Worker
}

// NewWorkers assembles every background worker the service runs. A zero
// sweep interval disables the reconciliation sweeper.
func NewWorkers(storages *store.Storages, cfg config.Workers, logger *logger.Logger) *Workers {
	workers := &Workers{}

	if cfg.SweepInterval > 0 {
		workers.workers = append(workers.workers,
			NewOrphanSweeper(storages.MemberRepository, storages.AssetStorage, cfg.SweepInterval, logger))
	}

	return workers
}

// Run starts every worker. Cancelling ctx stops them all.
func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Run(ctx)
	}
}
