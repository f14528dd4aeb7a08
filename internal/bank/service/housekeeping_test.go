package service_test

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/aussiebroadwan/bankgate/internal/bank/service"
	"github.com/stretchr/testify/require"
)

func TestHousekeepingRunOnce(t *testing.T) {
	var calls atomic.Int32
	svc := service.NewHousekeepingService(map[string]service.Sweeper{
		"a": service.SweeperFunc(func(context.Context) (int, error) {
			calls.Add(1)
			return 3, nil
		}),
		"broken": service.SweeperFunc(func(context.Context) (int, error) {
			calls.Add(1)
			return 0, errors.New("boom")
		}),
		"b": service.SweeperFunc(func(context.Context) (int, error) {
			calls.Add(1)
			return 2, nil
		}),
	}, slog.Default(), 0)

	require.Equal(t, time.Minute, svc.Interval)
	require.Equal(t, 5, svc.RunOnce(context.Background()))
	require.Equal(t, int32(3), calls.Load(), "a failing sweeper does not stop the others")
}

func TestHousekeepingStartStop(t *testing.T) {
	var calls atomic.Int32
	svc := service.NewHousekeepingService(map[string]service.Sweeper{
		"counter": service.SweeperFunc(func(context.Context) (int, error) {
			calls.Add(1)
			return 0, nil
		}),
	}, slog.Default(), 10*time.Millisecond)

	svc.Start()
	require.Eventually(t, func() bool { return calls.Load() >= 2 }, time.Second, 5*time.Millisecond)
	svc.Stop()

	after := calls.Load()
	time.Sleep(30 * time.Millisecond)
	require.Equal(t, after, calls.Load(), "no sweeps after Stop")
}
