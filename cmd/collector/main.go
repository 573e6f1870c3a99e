package main

import (
	"context"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/munilab/transit-sampler-go/internal/api"
	"github.com/munilab/transit-sampler-go/internal/automation"
	"github.com/munilab/transit-sampler-go/internal/collector"
	"github.com/munilab/transit-sampler-go/internal/config"
	"github.com/munilab/transit-sampler-go/internal/database"
	"github.com/munilab/transit-sampler-go/internal/geocode"
	"github.com/munilab/transit-sampler-go/internal/handler"
	"github.com/munilab/transit-sampler-go/internal/logger"
	"github.com/munilab/transit-sampler-go/internal/repository"
	"github.com/munilab/transit-sampler-go/internal/sampler"
)

func main() {
	cfg := config.Load()

	log, err := logger.New(cfg.Debug)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	db, err := database.Open(database.Config{Path: cfg.DBPath})
	if err != nil {
		log.Fatal("failed to open database", zap.Error(err))
	}
	defer db.Close()

	recorder, err := repository.NewBufferedRecorder(db, cfg.BufferSize, log)
	if err != nil {
		log.Fatal("failed to create recorder", zap.Error(err))
	}

	boundary := sampler.SanFrancisco()
	if cfg.BoundaryPath != "" {
		boundary, err = sampler.LoadBoundary(cfg.BoundaryPath)
		if err != nil {
			log.Fatal("failed to load boundary", zap.Error(err))
		}
	}
	smp := sampler.New(boundary, rand.New(rand.NewSource(time.Now().UnixNano())))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	session, err := automation.NewRodSession(ctx, cfg.MapsURL, cfg.Headless, log)
	if err != nil {
		log.Fatal("failed to start browser session", zap.Error(err))
	}
	defer session.Close()

	// whatever is still buffered goes to the store on the way out
	defer func() {
		if err := recorder.Flush(); err != nil {
			log.Error("final flush failed", zap.Error(err))
		}
	}()

	directions := automation.NewDirections(session, log)
	geocoder := geocode.NewNominatim(cfg.NominatimURL, cfg.UserAgent, cfg.GeocodeTimeout)
	col := collector.New(smp, geocoder, directions, log)

	if cfg.StatusPort != "" {
		status := handler.NewStatusHandler(boundary, recorder, log)
		router := api.SetupRouter(status, log)
		go func() {
			if err := router.Run(cfg.StatusPort); err != nil {
				log.Error("status server stopped", zap.Error(err))
			}
		}()
	}

	log.Info("starting collection",
		zap.String("db", cfg.DBPath),
		zap.Int("buffer_size", cfg.BufferSize),
		zap.Int("cycles", cfg.Cycles),
		zap.Float64("acceptance_rate", boundary.AcceptanceRate()),
	)

	runLoop(ctx, cfg, col, recorder, directions, log)

	log.Info("collection stopped")
}

// runLoop runs collection cycles until the context is cancelled or the cycle
// budget is spent. Consecutive cycle failures past the configured threshold
// trigger a browser session restart.
func runLoop(ctx context.Context, cfg *config.Config, col *collector.Collector,
	recorder *repository.BufferedRecorder, directions *automation.Directions, log *zap.Logger) {

	failures := 0
	for cycle := 0; cfg.Cycles == 0 || cycle < cfg.Cycles; cycle++ {
		if ctx.Err() != nil {
			return
		}

		records, err := col.CollectCycle(ctx)
		if err != nil {
			failures++
			log.Warn("cycle failed", zap.Int("cycle", cycle),
				zap.Int("consecutive_failures", failures), zap.Error(err))

			if failures >= cfg.MaxCycleFailures {
				if err := directions.Restart(ctx); err != nil {
					log.Error("session restart failed, giving up", zap.Error(err))
					return
				}
				failures = 0
			}
		} else {
			failures = 0
			for _, rec := range records {
				recorder.Record(rec)
			}
		}

		// fixed delay between cycles keeps the external service happy
		select {
		case <-ctx.Done():
			return
		case <-time.After(cfg.CycleDelay):
		}
	}
}
