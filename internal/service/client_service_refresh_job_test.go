// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-chat-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// spyEngine считает вызовы Refresh.
type spyEngine struct {
	refreshCalls atomic.Int64
}

func (s *spyEngine) Start(_ context.Context, _ models.User) {}
func (s *spyEngine) Stop()                                  {}
func (s *spyEngine) Refresh()                               { s.refreshCalls.Add(1) }
func (s *spyEngine) Send(_ string) error                    { return nil }
func (s *spyEngine) Snapshot() FeedSnapshot                 { return FeedSnapshot{} }
func (s *spyEngine) Updates() <-chan struct{}               { return nil }

// ── NewRefreshJob ────────────────────────────────────────────────────────────

func TestNewRefreshJob_ReturnsInterface(t *testing.T) {
	spy := &spyEngine{}
	job := NewRefreshJob(spy)
	require.NotNil(t, job)

	var _ RefreshJob = job
}

// ── Start / Stop ─────────────────────────────────────────────────────────────

func TestRefreshJob_Start_CallsRefresh(t *testing.T) {
	spy := &spyEngine{}
	job := NewRefreshJob(spy)
	ctx := context.Background()

	// Интервал 10ms — за 55ms должно быть ~5 тиков
	job.Start(ctx, 10*time.Millisecond)
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	got := spy.refreshCalls.Load()
	assert.GreaterOrEqual(t, got, int64(3), "Refresh должен быть вызван несколько раз, вызвано: %d", got)
}

func TestRefreshJob_Stop_StopsGoroutine(t *testing.T) {
	spy := &spyEngine{}
	job := NewRefreshJob(spy)
	ctx := context.Background()

	job.Start(ctx, 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	callsAfterStop := spy.refreshCalls.Load()
	time.Sleep(30 * time.Millisecond)
	callsLater := spy.refreshCalls.Load()

	assert.Equal(t, callsAfterStop, callsLater, "после Stop новых вызовов быть не должно")
}

func TestRefreshJob_Stop_BeforeStart_NoPanic(t *testing.T) {
	job := NewRefreshJob(&spyEngine{})
	assert.NotPanics(t, func() { job.Stop() })
}

func TestRefreshJob_DoubleStop_NoPanic(t *testing.T) {
	job := NewRefreshJob(&spyEngine{})
	ctx := context.Background()

	job.Start(ctx, 10*time.Millisecond)
	job.Stop()

	assert.NotPanics(t, func() { job.Stop() })
}

func TestRefreshJob_Start_DefaultInterval(t *testing.T) {
	spy := &spyEngine{}
	job := NewRefreshJob(spy)
	ctx, cancel := context.WithCancel(context.Background())

	// interval <= 0 → дефолт 10 секунд, за 20ms вызовов быть не должно
	job.Start(ctx, 0)
	time.Sleep(20 * time.Millisecond)
	cancel()
	job.Stop()

	assert.Equal(t, int64(0), spy.refreshCalls.Load())
}

func TestRefreshJob_ContextCancel_StopsJob(t *testing.T) {
	spy := &spyEngine{}
	job := NewRefreshJob(spy)
	ctx, cancel := context.WithCancel(context.Background())

	job.Start(ctx, 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	cancel()

	done := make(chan struct{})
	go func() {
		job.Stop()
		close(done)
	}()

	select {
	case <-done:
		// ok
	case <-time.After(1 * time.Second):
		t.Fatal("Stop завис после отмены контекста")
	}
}

func TestRefreshJob_Restart_KeepsTicking(t *testing.T) {
	spy := &spyEngine{}
	job := NewRefreshJob(spy)
	ctx := context.Background()

	job.Start(ctx, 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)

	callsBefore := spy.refreshCalls.Load()
	assert.Greater(t, callsBefore, int64(0))

	// Start повторно на том же job — внутри вызовет Stop()
	job.Start(ctx, 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	assert.Greater(t, spy.refreshCalls.Load(), callsBefore, "второй Start должен продолжить генерировать вызовы")
}
