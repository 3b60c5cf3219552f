package services

import (
	"context"
	"log"
	"sync"
)

type Worker interface {
	Start(ctx context.Context)
	Stop()
	EnqueueJob(job *UploadJob) error
}

type worker struct {
	jobQueue    chan *UploadJob
	concurrency int
	recorder    Recorder
	wg          sync.WaitGroup
	stopChan    chan struct{}

	// mu orders EnqueueJob against Stop so no job lands in the queue
	// after it has been drained.
	mu      sync.Mutex
	stopped bool
}

func NewWorker(concurrency, queueSize int, recorder Recorder) Worker {
	if concurrency <= 0 {
		concurrency = 1
	}
	if queueSize <= 0 {
		queueSize = 100
	}
	return &worker{
		jobQueue:    make(chan *UploadJob, queueSize),
		concurrency: concurrency,
		recorder:    recorderOrNoop(recorder),
		stopChan:    make(chan struct{}),
	}
}

// Start implements Worker.
func (w *worker) Start(ctx context.Context) {
	log.Printf("🚀 Starting upload worker with %d concurrent workers\n", w.concurrency)

	for i := 0; i < w.concurrency; i++ {
		w.wg.Add(1)
		go w.processJobs(ctx, i+1)
	}
}

// Stop implements Worker. Uploads already running finish; queued ones are
// aborted so their sessions leave the processing state.
func (w *worker) Stop() {
	w.mu.Lock()
	if w.stopped {
		w.mu.Unlock()
		return
	}
	w.stopped = true
	close(w.stopChan)
	w.mu.Unlock()

	log.Println("🛑 Stopping upload worker...")
	w.wg.Wait()

	for {
		select {
		case job := <-w.jobQueue:
			job.Abort(ErrWorkerStopped)
		default:
			w.recorder.SetQueueDepth(0)
			log.Println("✅ Upload worker stopped")
			return
		}
	}
}

// EnqueueJob implements Worker. It never blocks: a full queue is reported
// as ErrQueueFull.
func (w *worker) EnqueueJob(job *UploadJob) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.stopped {
		log.Printf("⚠️  Worker stopped, cannot enqueue job %s\n", job.ID)
		return ErrWorkerStopped
	}

	select {
	case w.jobQueue <- job:
		w.recorder.SetQueueDepth(len(w.jobQueue))
		log.Printf("📥 Job %s enqueued for session %s\n", job.ID, job.SessionID)
		return nil
	default:
		log.Printf("⚠️  Queue full, cannot enqueue job %s\n", job.ID)
		return ErrQueueFull
	}
}

func (w *worker) processJobs(ctx context.Context, workerID int) {
	defer w.wg.Done()

	for {
		select {
		case <-w.stopChan:
			log.Printf("👷 Worker #%d stopped\n", workerID)
			return
		case job := <-w.jobQueue:
			w.recorder.SetQueueDepth(len(w.jobQueue))
			log.Printf("👷 Worker #%d processing job %s\n", workerID, job.ID)
			if err := job.session.FinishResumeUpload(ctx, job); err != nil {
				log.Printf("❌ Worker #%d failed job %s: %v\n", workerID, job.ID, err)
			} else {
				log.Printf("✅ Worker #%d completed job %s\n", workerID, job.ID)
			}
		}
	}
}
