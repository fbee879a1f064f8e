package worker

import (
	"context"
	"log/slog"
	"time"

	"dispatch/config"
	"dispatch/internal/usecase"

	"go.uber.org/fx"
)

const defaultSweepInterval = time.Minute

// Sweeper periodically expires pending offers older than the configured TTL.
// A zero TTL disables sweeping and offers stay pending until superseded.
type Sweeper struct {
	logger     *slog.Logger
	dispatchUC usecase.DispatchUsecase
	ttl        time.Duration
	interval   time.Duration

	cancel context.CancelFunc
	done   chan struct{}
}

// SweeperParams holds dependencies for the Sweeper
type SweeperParams struct {
	fx.In

	Lc         fx.Lifecycle
	Config     *config.Config
	Logger     *slog.Logger
	DispatchUC usecase.DispatchUsecase
}

// NewSweeper creates the stale-offer sweeper and registers its lifecycle.
func NewSweeper(params SweeperParams) *Sweeper {
	var ttl, interval time.Duration
	if params.Config.Dispatch != nil {
		ttl = params.Config.Dispatch.OfferTTL
		interval = params.Config.Dispatch.SweepInterval
	}
	if interval <= 0 {
		interval = defaultSweepInterval
	}

	sweeper := &Sweeper{
		logger:     params.Logger,
		dispatchUC: params.DispatchUC,
		ttl:        ttl,
		interval:   interval,
		done:       make(chan struct{}),
	}

	params.Lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			sweeper.start()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			return sweeper.stop(ctx)
		},
	})

	return sweeper
}

func (s *Sweeper) start() {
	if s.ttl <= 0 {
		s.logger.Info("Offer expiry disabled, sweeper not started")
		close(s.done)

		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	s.logger.Info("Starting offer sweeper",
		slog.Duration("ttl", s.ttl),
		slog.Duration("interval", s.interval),
	)

	go s.run(ctx)
}

func (s *Sweeper) run(ctx context.Context) {
	defer close(s.done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *Sweeper) sweep(ctx context.Context) {
	expired, err := s.dispatchUC.ExpireStaleOffers(ctx, s.ttl)
	if err != nil {
		s.logger.Error("Offer sweep failed", slog.Any("error", err))

		return
	}

	if expired > 0 {
		s.logger.Info("Expired stale offers", slog.Int64("count", expired))
	}
}

func (s *Sweeper) stop(ctx context.Context) error {
	if s.cancel != nil {
		s.cancel()
	}

	select {
	case <-s.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
