package workers

import (
	"context"
	"time"

	"github.com/mbastos/acervo/internal/logger"
	"github.com/mbastos/acervo/internal/store"
	"github.com/mbastos/acervo/models"
)

// OrphanSweeper periodically reconciles the asset storage areas against the
// member table. Registration does not roll uploads back when the database
// insert fails, and late failures can leave files no account references;
// the sweeper reclaims them.
//
// A file is an orphan when its name appears in a category's storage area
// but in no member row for that category. Registration saves files before
// the member row commits, so a file written moments ago may be referenced
// by a row that is not visible yet; files younger than one sweep interval
// are therefore left alone and picked up by a later pass. The sweep
// tolerates per-category failures: an error in one area is logged and the
// loop moves on.
type OrphanSweeper struct {
	memberRepository store.MemberRepository
	assetStorage     store.AssetStorage
	interval         time.Duration
	logger           *logger.Logger
}

func NewOrphanSweeper(memberRepository store.MemberRepository, assetStorage store.AssetStorage, interval time.Duration, logger *logger.Logger) *OrphanSweeper {
	return &OrphanSweeper{
		memberRepository: memberRepository,
		assetStorage:     assetStorage,
		interval:         interval,
		logger:           logger,
	}
}

// Run starts the periodic sweep in a background goroutine and returns
// immediately. Cancelling ctx stops the goroutine; a pass already in
// flight finishes first.
func (s *OrphanSweeper) Run(ctx context.Context) {
	s.logger.Info().Dur("interval", s.interval).Msg("orphaned asset sweeper started")

	go func() {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				s.logger.Info().Msg("orphaned asset sweeper stopped")
				return
			case <-ticker.C:
				s.Sweep(ctx)
			}
		}
	}()
}

// Sweep runs one reconciliation pass over both storage areas.
func (s *OrphanSweeper) Sweep(ctx context.Context) {
	for _, category := range []models.AssetCategory{models.CategoryDocument, models.CategoryResidenceProof} {
		if err := s.sweepCategory(ctx, category); err != nil {
			s.logger.Err(err).Str("category", string(category)).Msg("error occured during sweeping storage area")
		}
	}
}

func (s *OrphanSweeper) sweepCategory(ctx context.Context, category models.AssetCategory) error {
	referenced, err := s.memberRepository.ListAssetNames(ctx, category)
	if err != nil {
		return err
	}

	referencedSet := make(map[string]struct{}, len(referenced))
	for _, name := range referenced {
		referencedSet[name] = struct{}{}
	}

	stored, err := s.assetStorage.List(ctx, category)
	if err != nil {
		return err
	}

	cutoff := time.Now().Add(-s.interval)

	var removed int
	for _, asset := range stored {
		if _, ok := referencedSet[asset.Name]; ok {
			continue
		}

		// A file saved by a registration still in flight is unreferenced
		// until the member row commits; leave young files for a later pass.
		if asset.ModTime.After(cutoff) {
			continue
		}

		if err := s.assetStorage.Remove(ctx, category, asset.Name); err != nil {
			s.logger.Err(err).Str("category", string(category)).Str("stored_name", asset.Name).Msg("error occured during removing orphaned file")
			continue
		}
		removed++
	}

	if removed > 0 {
		s.logger.Info().Str("category", string(category)).Int("removed", removed).Msg("orphaned files reclaimed")
	}

	return nil
}
