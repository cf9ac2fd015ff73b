// Package pipeline orchestrates one full batch run: read the staged
// snapshot, transform to canonical entities, assemble the dimensional
// views, and atomically publish the result. Every run recomputes everything
// from the current bronze snapshot; there is no incremental path.
package pipeline

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mesh-intelligence/medallion/internal/dimensional"
	"github.com/mesh-intelligence/medallion/internal/sqlite"
	"github.com/mesh-intelligence/medallion/internal/transform"
	"github.com/mesh-intelligence/medallion/pkg/types"
)

// Pipeline wires the transformation engine and dimensional layer to the
// warehouse store.
type Pipeline struct {
	store  *sqlite.Store
	engine *transform.Engine
	log    zerolog.Logger
}

// New creates a Pipeline over an attached store.
func New(store *sqlite.Store, maps types.Mappings, log zerolog.Logger) *Pipeline {
	return &Pipeline{
		store:  store,
		engine: transform.NewEngine(maps),
		log:    log,
	}
}

// Run executes one full recomputation and returns its report. The silver
// and gold layers are replaced atomically: a failure at any stage leaves
// the previously published snapshot intact. Every run, failed or not, is
// recorded in run history.
func (p *Pipeline) Run(ctx context.Context) (types.RunReport, error) {
	report := types.RunReport{
		RunID:     newRunID(),
		StartedAt: time.Now().UTC(),
		Status:    types.RunFailed,
		Counts:    map[string]int{},
	}

	err := p.run(ctx, &report)
	report.FinishedAt = time.Now().UTC()
	if err == nil {
		report.Status = types.RunSucceeded
	} else {
		var entityErr *types.EntityError
		if errors.As(err, &entityErr) {
			report.FailedEntity = entityErr.Entity
		}
		report.FailureReason = err.Error()
	}

	if recErr := p.store.RecordRun(report); recErr != nil {
		p.log.Warn().Err(recErr).Str("run_id", report.RunID).Msg("recording run history failed")
	}

	if err != nil {
		p.log.Error().Err(err).
			Str("run_id", report.RunID).
			Str("entity", report.FailedEntity).
			Msg("run failed")
		return report, err
	}

	p.log.Info().
		Str("run_id", report.RunID).
		Dur("elapsed", report.Duration()).
		Interface("counts", report.Counts).
		Msg("run succeeded")
	return report, nil
}

func (p *Pipeline) run(ctx context.Context, report *types.RunReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	raw, err := p.store.RawSnapshot()
	if err != nil {
		return err
	}
	if raw.Empty() {
		return types.ErrRawSetMissing
	}
	p.log.Debug().Str("run_id", report.RunID).Msg("staged snapshot read")

	canon := p.engine.Transform(raw)
	p.log.Debug().Str("run_id", report.RunID).Msg("canonical entities derived")

	if err := ctx.Err(); err != nil {
		return err
	}

	gold := dimensional.Build(canon)
	p.log.Debug().Str("run_id", report.RunID).Msg("dimensional views assembled")

	if err := p.store.Publish(canon, gold, time.Now().UTC()); err != nil {
		return err
	}

	report.Counts[types.SilverCustomers] = len(canon.Customers)
	report.Counts[types.SilverProducts] = len(canon.Products)
	report.Counts[types.SilverSales] = len(canon.Sales)
	report.Counts[types.SilverErpCustomers] = len(canon.ErpCustomers)
	report.Counts[types.SilverErpLocations] = len(canon.ErpLocations)
	report.Counts[types.SilverErpCategories] = len(canon.ErpCategories)
	report.Counts[types.GoldDimCustomers] = len(gold.Customers)
	report.Counts[types.GoldDimProducts] = len(gold.Products)
	report.Counts[types.GoldFactSales] = len(gold.Sales)
	return nil
}

// newRunID generates a UUID v7 run id, falling back to v4 if v7 generation
// fails.
func newRunID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}
