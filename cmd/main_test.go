package main

import (
	"context"
	"testing"
	"time"

	"speech-x-text/mocks"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestStartWorkers(t *testing.T) {
	ctrl := gomock.NewController(t)
	supervisor := mocks.NewMockISupervisor(ctrl)
	sampler := mocks.NewMockWorker(ctrl)
	reporter := mocks.NewMockWorker(ctrl)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	running := make(chan struct{})
	gomock.InOrder(
		supervisor.EXPECT().Add(sampler, reporter).Return(supervisor),
		supervisor.EXPECT().Run(ctx).Do(func(context.Context) { close(running) }),
	)

	startWorkers(ctx, supervisor, sampler, reporter)

	select {
	case <-running:
	case <-time.After(time.Second):
		require.Fail(t, "should run the supervisor in the background")
	}
}
