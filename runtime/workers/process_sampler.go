package workers

import (
	"context"
	"log/slog"
	"os"
	"runtime"
	"time"

	"speech-x-text/observability"

	"github.com/shirou/gopsutil/process"
)

// ProcessSampler pushes CPU, memory and OS status of this process into the
// monitor every interval.
type ProcessSampler struct {
	log      *slog.Logger
	monitor  *observability.Monitor
	interval time.Duration
}

func NewProcessSampler(log *slog.Logger, monitor *observability.Monitor, interval time.Duration) *ProcessSampler {
	return &ProcessSampler{log: log, monitor: monitor, interval: interval}
}

func (w *ProcessSampler) Run(ctx context.Context) error {
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return err
	}
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.sample(p)
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			w.sample(p)
		}
	}
}

func (w *ProcessSampler) sample(p *process.Process) {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	sample := observability.Process{
		PID:        p.Pid,
		Goroutines: runtime.NumGoroutine(),
		AllocMemMb: mem.Alloc / 1024 / 1024,
		NumGC:      mem.NumGC,
	}
	rss, cpu, status, err := selfStats(p)
	if err != nil {
		w.log.Debug("Failed to collect self stats", "error", err)
	} else {
		sample.RSSBytes = rss
		sample.CPUPercent = cpu
		sample.Status = status
	}
	w.monitor.UpdateProcess(sample)
}

func selfStats(p *process.Process) (uint64, float64, string, error) {
	memInfo, err := p.MemoryInfo()
	if err != nil {
		return 0, 0, "", err
	}
	cpuPercent, err := p.CPUPercent()
	if err != nil {
		return 0, 0, "", err
	}
	status, err := p.Status()
	if err != nil {
		return 0, 0, "", err
	}
	return memInfo.RSS, cpuPercent, status, nil
}
