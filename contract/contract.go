//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"fmt"
	"strings"
)

// ISupervisor keeps background workers alive until its context ends.
type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Stop()
}

// Worker is a long running background task such as the process sampler.
// It may fail or panic, the supervisor restarts it.
type Worker interface {
	Run(ctx context.Context) error
}

// WorkerFunc adapts a plain function to a Worker.
type WorkerFunc func(ctx context.Context) error

func (f WorkerFunc) Run(ctx context.Context) error {
	return f(ctx)
}

// WorkerName is the bare type name of w, used as the "worker" log attribute.
func WorkerName(w Worker) string {
	if w == nil {
		return "nil"
	}
	name := strings.TrimLeft(fmt.Sprintf("%T", w), "*")
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}
	return name
}
