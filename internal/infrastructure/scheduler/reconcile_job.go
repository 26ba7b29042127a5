package scheduler

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// cronParser uses standard 5-field cron expressions (minute, hour, dom, month, dow)
// plus descriptors such as "@every 10m".
var cronParser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)

// Reconciler recomputes order status from stage rows.
type Reconciler interface {
	ReconcileAll(ctx context.Context) (int, error)
}

// ReconcileJob runs the order/stage reconciliation on a cron schedule inside
// the API process. Overlapping runs are skipped.
type ReconcileJob struct {
	reconciler Reconciler
	timeout    time.Duration
	cron       *cron.Cron
}

func NewReconcileJob(reconciler Reconciler, timeout time.Duration) *ReconcileJob {
	return &ReconcileJob{
		reconciler: reconciler,
		timeout:    timeout,
		cron: cron.New(
			cron.WithParser(cronParser),
			cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)),
		),
	}
}

// Start schedules the job. An empty spec disables it.
func (j *ReconcileJob) Start(spec string) error {
	if spec == "" {
		log.Printf("[reconcile][scheduler] disabled")
		return nil
	}
	if _, err := j.cron.AddFunc(spec, j.Run); err != nil {
		return fmt.Errorf("invalid reconcile schedule %q: %w", spec, err)
	}
	j.cron.Start()
	log.Printf("[reconcile][scheduler] started spec=%q", spec)
	return nil
}

// Stop waits for a running reconciliation to finish.
func (j *ReconcileJob) Stop() {
	<-j.cron.Stop().Done()
}

// Run performs one reconciliation pass.
func (j *ReconcileJob) Run() {
	ctx := context.Background()
	if j.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, j.timeout)
		defer cancel()
	}

	start := time.Now()
	promoted, err := j.reconciler.ReconcileAll(ctx)
	if err != nil {
		log.Printf("[reconcile][scheduler] run failed err=%v", err)
		return
	}
	log.Printf("[reconcile][scheduler] run done promoted=%d took=%s", promoted, time.Since(start))
}
