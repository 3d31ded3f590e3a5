package canvases

import (
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Service runs the save/fork decision flow over an injected Store.
type Service struct {
	store Store
	log   zerolog.Logger

	mu       sync.Mutex
	inflight map[string]struct{}
}

func NewService(store Store, log zerolog.Logger) *Service {
	return &Service{
		store:    store,
		log:      log.With().Str("component", "canvases").Logger(),
		inflight: make(map[string]struct{}),
	}
}

// IsValidUserID reports whether id is a well-formed UUID. User ids are
// validated before they reach the store layer; malformed session state is
// rejected locally without a round trip.
func IsValidUserID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// begin marks canvasID as having a save in flight. It reports false when one
// is already running, in which case the caller must reject immediately.
func (s *Service) begin(canvasID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.inflight[canvasID]; busy {
		return false
	}
	s.inflight[canvasID] = struct{}{}
	return true
}

func (s *Service) end(canvasID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inflight, canvasID)
}
