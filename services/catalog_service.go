package services

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/MK-1512/gadget-galaxy/models"
)

// FetchStatus tracks the catalog manager's last fetch:
// idle -> loading -> succeeded | failed. There is no retry policy; a new
// fetch is the only recovery path.
type FetchStatus string

const (
	StatusIdle      FetchStatus = "idle"
	StatusLoading   FetchStatus = "loading"
	StatusSucceeded FetchStatus = "succeeded"
	StatusFailed    FetchStatus = "failed"
)

// CatalogService serves the static mock catalog behind a fixed simulated
// latency. Fetches always resolve; there is no cancellation of an issued
// fetch.
type CatalogService struct {
	mu       sync.Mutex
	products []models.Product
	delay    time.Duration
	log      *zap.Logger
	status   FetchStatus
	lastErr  string
}

func NewCatalogService(products []models.Product, delay time.Duration, log *zap.Logger) *CatalogService {
	return &CatalogService{
		products: products,
		delay:    delay,
		log:      log,
		status:   StatusIdle,
	}
}

// FetchAll re-delivers the full catalog after the simulated latency.
func (s *CatalogService) FetchAll(ctx context.Context) []models.Product {
	s.setStatus(StatusLoading, "")
	s.wait()

	out := make([]models.Product, len(s.products))
	copy(out, s.products)
	s.setStatus(StatusSucceeded, "")
	return out
}

// FetchByID looks the product up by id after the simulated latency.
func (s *CatalogService) FetchByID(ctx context.Context, id int) (models.Product, error) {
	s.setStatus(StatusLoading, "")
	s.wait()

	for _, p := range s.products {
		if p.ID == id {
			s.setStatus(StatusSucceeded, "")
			return p, nil
		}
	}

	s.setStatus(StatusFailed, ErrProductNotFound.Error())
	s.log.Debug("catalog lookup missed", zap.Int("id", id))
	return models.Product{}, ErrProductNotFound
}

// Categories returns the distinct category names in first-seen order.
func (s *CatalogService) Categories(ctx context.Context) []string {
	s.setStatus(StatusLoading, "")
	s.wait()

	seen := make(map[string]bool)
	var out []string
	for _, p := range s.products {
		if !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	s.setStatus(StatusSucceeded, "")
	return out
}

// Status reports the last fetch outcome and, for failures, its message.
func (s *CatalogService) Status() (FetchStatus, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status, s.lastErr
}

func (s *CatalogService) setStatus(status FetchStatus, errMsg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = status
	s.lastErr = errMsg
}

func (s *CatalogService) wait() {
	if s.delay <= 0 {
		return
	}
	timer := time.NewTimer(s.delay)
	defer timer.Stop()
	<-timer.C
}
