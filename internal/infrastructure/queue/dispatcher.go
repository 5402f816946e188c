// Package queue runs tracking refreshes in the background.
package queue

import (
	"context"
	"errors"
	"hash/fnv"
	"strconv"
	"sync"

	"github.com/rs/zerolog"

	"github.com/99minutos/fedex-carrier/internal/api/metrics"
	"github.com/99minutos/fedex-carrier/internal/core/ports"
)

const (
	defaultWorkers = 8
	channelBuffer  = 256
)

// ErrQueueFull is returned by Enqueue when the worker owning a tracking number
// has no room left.
var ErrQueueFull = errors.New("refresh queue full")

// Dispatcher routes refresh jobs to a fixed set of workers using consistent
// hashing on the tracking number, so that refreshes of one shipment never run
// concurrently.
type Dispatcher struct {
	workers []chan ports.TrackInput
	service ports.TrackingService
	log     zerolog.Logger
	wg      sync.WaitGroup
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, service ports.TrackingService, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan ports.TrackInput, numWorkers),
		service: service,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.TrackInput, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		d.wg.Add(1)
		go d.runWorker(ctx, i, ch)
	}
}

// Wait blocks until every worker has stopped.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

// Enqueue hands a refresh job to the worker responsible for its tracking
// number without blocking.
func (d *Dispatcher) Enqueue(job ports.TrackInput) error {
	idx := d.shardIndex(job.TrackingNumber)
	select {
	case d.workers[idx] <- job:
		metrics.RefreshQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
		return nil
	default:
		return ErrQueueFull
	}
}

// shardIndex maps a tracking number deterministically to a worker index.
func (d *Dispatcher) shardIndex(trackingNumber string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(trackingNumber))
	return int(h.Sum32() % uint32(len(d.workers)))
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.TrackInput) {
	defer d.wg.Done()
	label := strconv.Itoa(id)
	for {
		select {
		case <-ctx.Done():
			return
		case job, ok := <-ch:
			if !ok {
				return
			}
			metrics.RefreshQueueDepth.WithLabelValues(label).Set(float64(len(ch)))
			res, err := d.service.Refresh(ctx, job)
			if err != nil {
				d.log.Error().Err(err).
					Str("tracking_number", job.TrackingNumber).
					Int("worker_id", id).
					Msg("tracking refresh failed")
				continue
			}
			d.log.Debug().
				Str("tracking_number", job.TrackingNumber).
				Int("worker_id", id).
				Int("recorded", res.Recorded).
				Msg("tracking refresh done")
		}
	}
}
