// Package statuswatch polls the SkyEncoder status service until a caller
// decides the watched tasks are finished.
package statuswatch

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/skyencoder/skyencoder-go/skyencoder"
)

const DefaultInterval = 5 * time.Second

var (
	ErrAlreadyRunning = errors.New("statuswatch: watcher is already running")
	ErrNoTasks        = errors.New("statuswatch: no task IDs to watch")
	ErrNoHandler      = errors.New("statuswatch: no status handler")
)

// StatusFetcher is satisfied by *skyencoder.Client.
type StatusFetcher interface {
	GetStatus(ctx context.Context, taskIDs ...string) *skyencoder.Response
}

var _ StatusFetcher = (*skyencoder.Client)(nil)

// Handler receives every status response, failed ones included. Returning
// true ends the watch.
type Handler func(ctx context.Context, resp *skyencoder.Response) bool

type Watcher struct {
	fetcher     StatusFetcher
	taskIDs     []string
	handler     Handler
	interval    time.Duration
	pollTimeout time.Duration
	logger      zerolog.Logger

	mu      sync.Mutex
	running bool
	cancel  context.CancelFunc
	done    chan struct{}
	err     error
}

type Option func(*Watcher)

func WithInterval(interval time.Duration) Option {
	return func(w *Watcher) {
		if interval > 0 {
			w.interval = interval
		}
	}
}

// WithPollTimeout bounds each status request.
func WithPollTimeout(timeout time.Duration) Option {
	return func(w *Watcher) {
		if timeout > 0 {
			w.pollTimeout = timeout
		}
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(w *Watcher) {
		w.logger = logger
	}
}

func New(fetcher StatusFetcher, taskIDs []string, handler Handler, opts ...Option) *Watcher {
	watcher := &Watcher{
		fetcher:     fetcher,
		taskIDs:     append([]string(nil), taskIDs...),
		handler:     handler,
		interval:    DefaultInterval,
		pollTimeout: 0,
		logger:      log.Logger,
		mu:          sync.Mutex{},
		running:     false,
		cancel:      nil,
		done:        nil,
		err:         nil,
	}

	for _, opt := range opts {
		opt(watcher)
	}

	return watcher
}

// Start polls once immediately and then on every interval until the handler
// returns true, ctx ends or Stop is called.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.running {
		return ErrAlreadyRunning
	}

	if len(w.taskIDs) == 0 {
		return ErrNoTasks
	}

	if w.handler == nil {
		return ErrNoHandler
	}

	watchCtx, cancel := context.WithCancel(ctx)

	w.running = true
	w.cancel = cancel
	w.done = make(chan struct{})
	w.err = nil

	w.logger.Info().
		Strs("task_ids", w.taskIDs).
		Dur("interval", w.interval).
		Dur("poll_timeout", w.pollTimeout).
		Msg("Status watcher is starting.")

	go w.loop(watchCtx, w.done)

	return nil
}

func (w *Watcher) Stop() error {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()

		return nil
	}

	cancel := w.cancel
	done := w.done
	w.mu.Unlock()

	w.logger.Info().Msg("Status watcher is stopping.")

	cancel()
	<-done

	return nil
}

// Run starts the watcher and blocks until it finishes.
func (w *Watcher) Run(ctx context.Context) error {
	if err := w.Start(ctx); err != nil {
		return err
	}

	<-w.Done()

	return w.Err()
}

// Done is closed when the current watch ends. It is nil before Start.
func (w *Watcher) Done() <-chan struct{} {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.done
}

// Err is nil when the handler ended the watch and the context error when the
// watch was stopped or canceled.
func (w *Watcher) Err() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.err
}

func (w *Watcher) loop(ctx context.Context, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		if w.poll(ctx) {
			w.finish(nil)
			w.logger.Info().Strs("task_ids", w.taskIDs).Msg("Status watcher has finished.")

			return
		}

		select {
		case <-ctx.Done():
			w.finish(ctx.Err())
			w.logger.Info().Msg("Status watcher has stopped.")

			return
		case <-ticker.C:
		}
	}
}

func (w *Watcher) poll(ctx context.Context) bool {
	pollCtx, cancel := ctx, context.CancelFunc(func() {})
	if w.pollTimeout > 0 {
		pollCtx, cancel = context.WithTimeout(ctx, w.pollTimeout)
	}
	defer cancel()

	resp := w.fetcher.GetStatus(pollCtx, w.taskIDs...)
	if resp.Failed() {
		w.logger.Warn().
			Err(resp.AsError()).
			Int("status_code", resp.Meta.StatusCode).
			Msg("Status poll failed.")
	}

	return w.handler(ctx, resp)
}

func (w *Watcher) finish(err error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.running = false
	w.err = err
	w.cancel()
}
