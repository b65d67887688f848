package session

import (
	"sync"
	"time"

	"github.com/klokku/familyhub/internal/utils"
	"github.com/klokku/familyhub/pkg/calendar"
	"github.com/klokku/familyhub/pkg/shopping"
	log "github.com/sirupsen/logrus"
)

// Board is the data of one family organizer session: its calendar and its
// shopping list. Nothing survives the board being discarded.
type Board struct {
	Id        string
	Events    *calendar.Store
	Shopping  *shopping.Store
	CreatedAt time.Time
}

type Registry struct {
	mu       sync.Mutex
	boards   map[string]*Board
	lastUsed map[string]time.Time
	clock    utils.Clock
}

func NewRegistry(clock utils.Clock) *Registry {
	return &Registry{
		boards:   make(map[string]*Board),
		lastUsed: make(map[string]time.Time),
		clock:    clock,
	}
}

// Open returns the board with id, creating an empty one on first use.
func (r *Registry) Open(id string) *Board {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.clock.Now()
	r.lastUsed[id] = now
	if b, ok := r.boards[id]; ok {
		return b
	}
	b := &Board{
		Id:        id,
		Events:    calendar.NewStore(),
		Shopping:  shopping.NewStore(),
		CreatedAt: now,
	}
	r.boards[id] = b
	log.Debugf("opened new board %s", id)
	return b
}

func (r *Registry) Get(id string) (*Board, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.boards[id]
	return b, ok
}

// Discard drops the board with id and everything on it.
func (r *Registry) Discard(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.boards[id]; !ok {
		return false
	}
	delete(r.boards, id)
	delete(r.lastUsed, id)
	log.Debugf("discarded board %s", id)
	return true
}

// Sweep discards boards not opened for longer than maxIdle and returns how
// many were dropped. A non-positive maxIdle disables sweeping.
func (r *Registry) Sweep(maxIdle time.Duration) int {
	if maxIdle <= 0 {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := r.clock.Now().Add(-maxIdle)
	swept := 0
	for id, used := range r.lastUsed {
		if used.Before(cutoff) {
			delete(r.boards, id)
			delete(r.lastUsed, id)
			swept++
		}
	}
	return swept
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.boards)
}
