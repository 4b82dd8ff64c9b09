package service

import (
	"context"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/focusguard/focusguard/internal/domain"
	"github.com/focusguard/focusguard/internal/repository"
)

// scanApplyTimeout bounds how long the worker may spend applying one scan.
const scanApplyTimeout = 10 * time.Second

// ScanService owns the tag registry and the scan dispatch pipeline.
// Scans flow through a single-producer single-consumer channel: Submit
// publishes a matched ScanResult and a worker goroutine applies the
// profile toggle. At most one scan is outstanding at a time; a second
// scan while one is being processed is rejected with ErrScanInFlight.
type ScanService struct {
	tagRepo     repository.TagRepository
	profileRepo repository.ProfileRepository
	userRepo    repository.UserRepository
	sessions    SessionService

	results  chan domain.ScanResult
	inFlight atomic.Bool
	stop     chan struct{}
	wg       sync.WaitGroup
}

// NewScanService creates the service and starts the dispatch worker.
func NewScanService(tagRepo repository.TagRepository, profileRepo repository.ProfileRepository, userRepo repository.UserRepository, sessions SessionService) *ScanService {
	s := &ScanService{
		tagRepo:     tagRepo,
		profileRepo: profileRepo,
		userRepo:    userRepo,
		sessions:    sessions,
		results:     make(chan domain.ScanResult, 1),
		stop:        make(chan struct{}),
	}
	s.wg.Add(1)
	go s.dispatch()
	return s
}

// Close stops the dispatch worker and waits for an in-progress scan to
// finish applying.
func (s *ScanService) Close() {
	close(s.stop)
	s.wg.Wait()
}

// Register stores a new tag bound to one of the user's profiles.
func (s *ScanService) Register(ctx context.Context, userID uuid.UUID, req *domain.RegisterTagRequest) (*domain.ScanTag, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	profile, err := s.profileRepo.GetByID(ctx, req.ProfileID)
	if err != nil {
		return nil, err
	}
	if profile.UserID != userID {
		return nil, domain.ErrNotFound
	}

	// One tag per UID per user.
	existing, err := s.tagRepo.GetByUID(ctx, userID, req.TagUID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrConflict
	}

	tag := &domain.ScanTag{
		UserID:    userID,
		ProfileID: req.ProfileID,
		Label:     req.Label,
		TagUID:    req.TagUID,
		URL:       req.URL,
	}
	if err := s.tagRepo.Create(ctx, tag); err != nil {
		return nil, err
	}
	return tag, nil
}

// List returns the user's registered tags.
func (s *ScanService) List(ctx context.Context, userID uuid.UUID) ([]domain.ScanTag, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}
	return s.tagRepo.ListByUser(ctx, userID)
}

// Submit reports a hardware scan. The tag is matched synchronously; the
// toggle it triggers is applied asynchronously by the worker.
func (s *ScanService) Submit(ctx context.Context, userID uuid.UUID, req *domain.ScanRequest) (*domain.ScanResult, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	tag, err := s.tagRepo.GetByUID(ctx, userID, req.TagUID)
	if err != nil {
		return nil, err
	}
	if tag == nil {
		return nil, domain.ErrUnknownTag
	}

	if !s.inFlight.CompareAndSwap(false, true) {
		return nil, domain.ErrScanInFlight
	}

	result := domain.ScanResult{
		TagID:     tag.ID,
		UserID:    tag.UserID,
		ProfileID: tag.ProfileID,
		TagUID:    tag.TagUID,
		URL:       tag.URL,
	}
	s.results <- result
	return &result, nil
}

// Idle reports whether no scan is currently outstanding.
func (s *ScanService) Idle() bool {
	return !s.inFlight.Load()
}

func (s *ScanService) dispatch() {
	defer s.wg.Done()
	for {
		select {
		case result := <-s.results:
			s.apply(result)
		case <-s.stop:
			// Drain the one result that may have been published before stop.
			select {
			case result := <-s.results:
				s.apply(result)
			default:
			}
			return
		}
	}
}

func (s *ScanService) apply(result domain.ScanResult) {
	defer s.inFlight.Store(false)

	ctx, cancel := context.WithTimeout(context.Background(), scanApplyTimeout)
	defer cancel()

	origin := domain.OriginScan + ":" + result.TagUID
	if _, _, err := s.sessions.Toggle(ctx, result.UserID, result.ProfileID, origin); err != nil {
		log.Printf("scan %s: failed to toggle profile %s: %v", result.TagUID, result.ProfileID, err)
	}
}
