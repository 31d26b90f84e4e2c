package app

import (
	"sync"
	"time"
)

// Task is a handle to a recurring callback. Cancel is idempotent and never blocks.
type Task interface {
	Cancel()
}

// Scheduler runs fn every interval until the returned task is cancelled.
type Scheduler interface {
	Every(interval time.Duration, fn func()) Task
}

// TickerScheduler runs callbacks on time.Ticker goroutines.
type TickerScheduler struct{}

func NewTickerScheduler() TickerScheduler {
	return TickerScheduler{}
}

func (TickerScheduler) Every(interval time.Duration, fn func()) Task {
	task := &tickerTask{stop: make(chan struct{})}
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-task.stop:
				return
			case <-ticker.C:
				// A tick may race with Cancel; prefer the stop signal.
				select {
				case <-task.stop:
					return
				default:
				}
				fn()
			}
		}
	}()
	return task
}

type tickerTask struct {
	once sync.Once
	stop chan struct{}
}

func (t *tickerTask) Cancel() {
	t.once.Do(func() { close(t.stop) })
}

// ManualScheduler fires callbacks only when Tick is called. Used by tests
// and anything that wants to drive countdowns explicitly.
type ManualScheduler struct {
	mu    sync.Mutex
	tasks []*manualTask
}

func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

func (m *ManualScheduler) Every(_ time.Duration, fn func()) Task {
	m.mu.Lock()
	defer m.mu.Unlock()
	task := &manualTask{fn: fn}
	m.tasks = append(m.tasks, task)
	return task
}

// Tick fires every live task once.
func (m *ManualScheduler) Tick() {
	m.mu.Lock()
	live := make([]*manualTask, 0, len(m.tasks))
	for _, t := range m.tasks {
		if !t.cancelled() {
			live = append(live, t)
		}
	}
	m.tasks = live
	m.mu.Unlock()

	for _, t := range live {
		if !t.cancelled() {
			t.fn()
		}
	}
}

// Active returns the number of tasks that have not been cancelled.
func (m *ManualScheduler) Active() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, t := range m.tasks {
		if !t.cancelled() {
			n++
		}
	}
	return n
}

type manualTask struct {
	mu   sync.Mutex
	done bool
	fn   func()
}

func (t *manualTask) Cancel() {
	t.mu.Lock()
	t.done = true
	t.mu.Unlock()
}

func (t *manualTask) cancelled() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.done
}
