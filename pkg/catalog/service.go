package catalog

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

// queueTimeout bounds how long a caller waits on the owner goroutine.
const queueTimeout = 2 * time.Second

// query asks the owner goroutine for a view of the catalog.
type query struct {
	action   string
	category string
	item     string
	reply    chan queryResult
}

// queryResult carries whichever view was requested.
type queryResult struct {
	catalog Catalog
	entries []Entry
	price   int
	err     error
}

// Service owns the loaded catalog in a single goroutine; callers only ever get copies.
type Service struct {
	catalog   Catalog
	queries   chan query
	quit      chan struct{}
	done      chan struct{}
	closeOnce sync.Once
}

// NewService takes a private copy of c and starts the owner goroutine.
func NewService(c Catalog) *Service {
	svc := &Service{
		catalog: c.Clone(),
		queries: make(chan query),
		quit:    make(chan struct{}),
		done:    make(chan struct{}),
	}
	go svc.loop()
	return svc
}

// loop answers queries one at a time.
func (s *Service) loop() {
	defer close(s.done)
	for {
		select {
		case q := <-s.queries:
			q.reply <- s.answer(q)
		case <-s.quit:
			return
		}
	}
}

// answer runs on the owner goroutine, so it may read s.catalog directly.
func (s *Service) answer(q query) queryResult {
	switch q.action {
	case "snapshot":
		return queryResult{catalog: s.catalog.Clone()}
	case "entries":
		return queryResult{entries: s.catalog.Entries()}
	case "price":
		price, ok := s.catalog.Lookup(q.category, q.item)
		if !ok {
			return queryResult{err: fmt.Errorf("%w: %s/%s", ErrNotFound, q.category, q.item)}
		}
		return queryResult{price: price}
	default:
		return queryResult{err: errors.New("unknown catalog query")}
	}
}

// ask hands q to the owner goroutine and waits for its answer.
func (s *Service) ask(ctx context.Context, q query) (queryResult, error) {
	// Buffered so the loop never blocks on a caller that gave up.
	q.reply = make(chan queryResult, 1)

	select {
	case s.queries <- q:
	case <-s.quit:
		return queryResult{}, ErrServiceClosed
	case <-ctx.Done():
		return queryResult{}, ctx.Err()
	case <-time.After(queueTimeout):
		return queryResult{}, errors.New("catalog queue is busy")
	}

	select {
	case res := <-q.reply:
		return res, res.err
	case <-ctx.Done():
		return queryResult{}, ctx.Err()
	case <-time.After(queueTimeout):
		return queryResult{}, errors.New("catalog query timed out")
	}
}

// Snapshot returns a deep copy of the whole catalog.
func (s *Service) Snapshot(ctx context.Context) (Catalog, error) {
	res, err := s.ask(ctx, query{action: "snapshot"})
	if err != nil {
		return nil, err
	}
	return res.catalog, nil
}

// Entries returns every item in document order.
func (s *Service) Entries(ctx context.Context) ([]Entry, error) {
	res, err := s.ask(ctx, query{action: "entries"})
	if err != nil {
		return nil, err
	}
	return res.entries, nil
}

// Price looks up a single item.
func (s *Service) Price(ctx context.Context, category, item string) (int, error) {
	res, err := s.ask(ctx, query{action: "price", category: category, item: item})
	if err != nil {
		return 0, err
	}
	return res.price, nil
}

// Close stops the owner goroutine and waits for it to exit. Safe to call twice.
func (s *Service) Close() {
	s.closeOnce.Do(func() {
		close(s.quit)
	})
	<-s.done
}
