package checkout

import (
	"sync"

	"kinscreen-backend/checkout"

	"github.com/google/uuid"
)

// store holds the in-flight checkout sessions. A session lives only for the
// duration of one checkout attempt and is dropped on completion; there is
// no draft-order recovery. Each session is driven by a single client, the
// lock only protects the map itself.
type store struct {
	mu       sync.Mutex
	sessions map[string]*checkout.Orchestrator
}

func newStore() *store {
	return &store{sessions: make(map[string]*checkout.Orchestrator)}
}

func (s *store) add(o *checkout.Orchestrator) string {
	id := uuid.NewString()
	s.mu.Lock()
	s.sessions[id] = o
	s.mu.Unlock()
	return id
}

func (s *store) get(id string) (*checkout.Orchestrator, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.sessions[id]
	return o, ok
}

func (s *store) remove(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}
