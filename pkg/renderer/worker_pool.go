package renderer

import (
	"runtime"
	"sync"
)

// TileTask is one tile's worth of work for a single Render call: sample
// every pixel in Tile.Bounds Samples times against the renderer's current
// rays/hits and accumulate into the shared rad buffer.
type TileTask struct {
	TaskID  int
	Tile    *Tile
	Samples int
}

// TileResult reports a completed (or failed) TileTask.
type TileResult struct {
	TaskID int
	Error  error
}

// Worker drains tasks from the shared queue and writes into its parent
// renderer's rad buffer. Each tile owns a persistent RNG stream (see
// Tile.Sampler), so a worker carries no per-pixel state of its own and is
// safe to share across tiles.
type Worker struct {
	ID     int
	render *ProgressiveRenderer

	taskQueue   chan TileTask
	resultQueue chan TileResult
}

// WorkerPool manages parallel tile rendering across the pixel grid, per
// spec.md §5's "parallel across pixels/tiles with per-worker RNG streams"
// scheduling model — here realized as per-tile RNG streams so a tile's
// samples are reproducible regardless of which worker happens to draw it.
type WorkerPool struct {
	taskQueue   chan TileTask
	resultQueue chan TileResult
	workers     []*Worker
	numWorkers  int
	wg          sync.WaitGroup
}

// NewWorkerPool creates a worker pool sized for render's current tile
// grid. numWorkers <= 0 auto-detects via runtime.NumCPU().
func NewWorkerPool(render *ProgressiveRenderer, numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	maxTiles := len(render.tiles)
	wp := &WorkerPool{
		taskQueue:   make(chan TileTask, maxTiles),
		resultQueue: make(chan TileResult, maxTiles),
		numWorkers:  numWorkers,
	}

	for i := 0; i < numWorkers; i++ {
		wp.workers = append(wp.workers, &Worker{
			ID:          i,
			render:      render,
			taskQueue:   wp.taskQueue,
			resultQueue: wp.resultQueue,
		})
	}

	return wp
}

// Start spawns one goroutine per worker.
func (wp *WorkerPool) Start() {
	for _, worker := range wp.workers {
		wp.wg.Add(1)
		go worker.run(&wp.wg)
	}
}

// Stop closes the task queue, waits for workers to drain it, and closes
// the result queue. Called from Close and from regenerate whenever the
// tile grid is rebuilt; otherwise the pool stays warm across Render calls.
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue)
	wp.wg.Wait()
	close(wp.resultQueue)
}

func (wp *WorkerPool) SubmitTask(task TileTask) { wp.taskQueue <- task }

func (wp *WorkerPool) GetResult() (TileResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

func (wp *WorkerPool) NumWorkers() int { return wp.numWorkers }

// run is the main worker loop: one renderTile call per task, until the
// queue closes.
func (w *Worker) run(wg *sync.WaitGroup) {
	defer wg.Done()
	for task := range w.taskQueue {
		w.resultQueue <- TileResult{TaskID: task.TaskID, Error: w.renderTile(task)}
	}
}

// renderTile draws task.Samples new estimates for every pixel in the
// tile's bounds and adds them into the renderer's shared rad buffer. Every
// tile's bounds are disjoint, so concurrent workers never write the same
// index (spec.md §5's mutation discipline).
func (w *Worker) renderTile(task TileTask) error {
	r := w.render
	bounds := task.Tile.Bounds
	sampler := task.Tile.Sampler

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		row := y * r.width
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			idx := row + x
			sum := r.rad[idx]
			for s := 0; s < task.Samples; s++ {
				sum = sum.Add(r.tracer.Sample(sampler, r.rays[idx], r.hits[idx], r.pathSpace, r.mats, r.lights))
			}
			r.rad[idx] = sum
		}
	}
	return nil
}
