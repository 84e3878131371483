package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/msouga/VerificacionCrediticia-sub001/internal/domain/model"
	"github.com/msouga/VerificacionCrediticia-sub001/internal/domain/port"
)

// ---------------------------------------------------------------------------
// Document processing pipeline
// ---------------------------------------------------------------------------

// Task identifies one document awaiting extraction.
type Task struct {
	TenantID   string
	DocumentID string
}

// DocumentPipeline runs OCR extraction over uploaded documents on a fixed
// pool of workers fed by an unbounded FIFO queue. Enqueue never blocks the
// caller; ordering is preserved queue-wide, not per worker.
//
// Each task is processed at most twice in a run: one extraction attempt plus
// one retry. Retries re-fetch the bytes from the store rather than reusing
// the first download.
type DocumentPipeline struct {
	docs      port.DocumentRepository
	store     port.DocumentStore
	extractor port.DocumentExtractor
	publisher port.EventPublisher
	logger    *slog.Logger
	workers   int

	mu      sync.Mutex
	cond    *sync.Cond
	queue   []Task
	stopped bool

	wg sync.WaitGroup
}

// NewDocumentPipeline creates a pipeline with the given worker count.
func NewDocumentPipeline(
	docs port.DocumentRepository,
	store port.DocumentStore,
	extractor port.DocumentExtractor,
	publisher port.EventPublisher,
	workers int,
	logger *slog.Logger,
) *DocumentPipeline {
	p := &DocumentPipeline{
		docs:      docs,
		store:     store,
		extractor: extractor,
		publisher: publisher,
		logger:    logger,
		workers:   workers,
	}
	p.cond = sync.NewCond(&p.mu)
	return p
}

// Start launches the worker pool and blocks until ctx is cancelled and all
// workers have drained their in-flight task.
func (p *DocumentPipeline) Start(ctx context.Context) {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker(ctx, i)
	}

	<-ctx.Done()

	p.mu.Lock()
	p.stopped = true
	p.cond.Broadcast()
	p.mu.Unlock()

	p.wg.Wait()
}

// Enqueue appends a task to the queue. Safe for concurrent use; tasks
// submitted after shutdown are dropped.
func (p *DocumentPipeline) Enqueue(task Task) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.stopped {
		return
	}
	p.queue = append(p.queue, task)
	p.cond.Signal()
}

// EnqueueDocument implements port.DocumentQueue.
func (p *DocumentPipeline) EnqueueDocument(tenantID, documentID string) {
	p.Enqueue(Task{TenantID: tenantID, DocumentID: documentID})
}

// QueueDepth reports the number of tasks waiting for a worker.
func (p *DocumentPipeline) QueueDepth() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.queue)
}

// Recover re-enqueues every document left in a non-terminal state, once, in
// upload order. Called on startup before serving traffic so work interrupted
// by a crash is not lost.
func (p *DocumentPipeline) Recover(ctx context.Context) error {
	pending, err := p.docs.FindUnprocessed(ctx)
	if err != nil {
		return fmt.Errorf("pipeline recovery: %w", err)
	}
	for _, doc := range pending {
		p.Enqueue(Task{TenantID: doc.TenantID(), DocumentID: doc.ID()})
	}
	if len(pending) > 0 {
		p.logger.Info("re-enqueued unprocessed documents", "count", len(pending))
	}
	return nil
}

func (p *DocumentPipeline) worker(ctx context.Context, id int) {
	defer p.wg.Done()
	for {
		task, ok := p.next()
		if !ok {
			return
		}
		if err := p.process(ctx, task); err != nil {
			p.logger.Error("document processing failed",
				"worker", id,
				"document_id", task.DocumentID,
				"error", err,
			)
		}
	}
}

// next blocks until a task is available or the pipeline is stopped.
func (p *DocumentPipeline) next() (Task, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for len(p.queue) == 0 && !p.stopped {
		p.cond.Wait()
	}
	if p.stopped {
		return Task{}, false
	}
	task := p.queue[0]
	p.queue = p.queue[1:]
	return task, true
}

// process runs the fetch-extract-persist cycle for one document.
func (p *DocumentPipeline) process(ctx context.Context, task Task) error {
	doc, err := p.docs.FindByID(ctx, task.TenantID, task.DocumentID)
	if err != nil {
		return fmt.Errorf("load document: %w", err)
	}
	if doc.Status().IsTerminal() {
		return nil
	}

	doc, err = doc.MarkProcessing(time.Now().UTC())
	if err != nil {
		return err
	}
	if err := p.docs.Save(ctx, doc); err != nil {
		return fmt.Errorf("mark processing: %w", err)
	}

	fields, extractErr := p.extract(ctx, doc)
	now := time.Now().UTC()
	if extractErr != nil {
		// Shutdown is not an extraction failure. Leave the document in
		// PROCESSING so startup recovery re-enqueues it.
		if errors.Is(extractErr, context.Canceled) || errors.Is(extractErr, context.DeadlineExceeded) || ctx.Err() != nil {
			return extractErr
		}
		failed, err := doc.MarkFailed(extractErr.Error(), now)
		if err != nil {
			return err
		}
		return p.persist(ctx, failed)
	}

	processed, err := doc.MarkProcessed(fields, now)
	if err != nil {
		return err
	}
	return p.persist(ctx, processed)
}

// extract fetches the bytes and runs the extractor, retrying the whole cycle
// once on failure. The retry fetches fresh bytes from the store.
func (p *DocumentPipeline) extract(ctx context.Context, doc model.Document) (map[string]string, error) {
	var lastErr error
	for attempt := 0; attempt < 2; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		data, err := p.store.Fetch(ctx, doc.StorageKey())
		if err != nil {
			lastErr = err
			continue
		}
		fields, err := p.extractor.Extract(ctx, doc.Kind(), data)
		if err != nil {
			lastErr = err
			continue
		}
		return fields, nil
	}
	return nil, lastErr
}

func (p *DocumentPipeline) persist(ctx context.Context, doc model.Document) error {
	events := doc.DomainEvents()
	if err := p.docs.Save(ctx, doc.ClearEvents()); err != nil {
		return fmt.Errorf("save document: %w", err)
	}
	if err := p.publisher.Publish(ctx, events...); err != nil {
		p.logger.Error("publish document events", "document_id", doc.ID(), "error", err)
	}
	return nil
}
