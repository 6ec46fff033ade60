package jobs

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jasonlvhit/gocron"

	portssvc "github.com/planwerk/planwerk_app/internal/core/ports/services"
	"github.com/planwerk/planwerk_app/internal/middleware"
)

// ActivationJob runs the daily activation pass: approved plans whose
// activation date has arrived become active, expired plans are settled.
type ActivationJob struct {
	planService portssvc.PlanSvcFacade
	logger      *slog.Logger
	hour        int
}

func NewActivationJob(ps portssvc.PlanSvcFacade, logger *slog.Logger, hour int) *ActivationJob {
	return &ActivationJob{
		planService: ps,
		logger:      logger.With(slog.String("job", "synchronized_activation")),
		hour:        hour,
	}
}

// Start schedules the daily run and blocks until the scheduler stops.
// Callers run it in its own goroutine.
func (j *ActivationJob) Start() {
	s := gocron.NewScheduler()
	at := fmt.Sprintf("%02d:00:00", j.hour)
	if err := s.Every(1).Day().At(at).Do(j.run); err != nil {
		j.logger.Error("Failed to schedule activation job", slog.String("error", err.Error()))
		return
	}
	j.logger.Info("Activation job scheduled", slog.String("at", at))
	<-s.Start()
}

func (j *ActivationJob) run() {
	ctx := middleware.WithLogger(context.Background(), j.logger)

	resp, err := j.planService.SynchronizedActivation(ctx)
	if err != nil {
		j.logger.Error("Activation pass failed", slog.String("error", err.Error()))
		return
	}

	j.logger.Info("Activation pass completed",
		slog.Int("activated_plans", resp.ActivatedPlans),
		slog.Int("expired_plans", resp.ExpiredPlans))
}
