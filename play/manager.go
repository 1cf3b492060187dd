package play

import (
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/exp/maps"
)

// Manager keeps the games of one process, keyed by a random UUID.
type Manager struct {
	mu    sync.RWMutex
	games map[string]*Game
	opts  Options
}

// NewManager creates games with opts unless a call overrides them.
func NewManager(opts Options) *Manager {
	return &Manager{
		games: make(map[string]*Game),
		opts:  opts,
	}
}

func (m *Manager) logf(format string, args ...interface{}) {
	if m.opts.Logger != nil {
		m.opts.Logger.Printf(format, args...)
	}
}

// Create starts a game with the manager's options.
func (m *Manager) Create() (*Game, error) {
	return m.CreateWith(m.opts)
}

// CreateFromFEN starts a game from a custom position.
func (m *Manager) CreateFromFEN(fen string) (*Game, error) {
	opts := m.opts
	opts.FEN = fen
	return m.CreateWith(opts)
}

// CreateWith starts a game with explicit options.
func (m *Manager) CreateWith(opts Options) (*Game, error) {
	g, err := NewGame(opts)
	if err != nil {
		return nil, err
	}
	g.id = uuid.New().String()

	m.mu.Lock()
	m.games[g.id] = g
	m.mu.Unlock()

	m.logf("created game %s", g.id)
	return g, nil
}

// Get looks a game up by ID.
func (m *Manager) Get(id string) (*Game, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	g, ok := m.games[id]
	if !ok {
		return nil, errors.Wrapf(ErrGameNotFound, "id %q", id)
	}
	return g, nil
}

// Remove forgets a game.
func (m *Manager) Remove(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.games[id]; !ok {
		return errors.Wrapf(ErrGameNotFound, "id %q", id)
	}
	delete(m.games, id)
	m.logf("removed game %s", id)
	return nil
}

// List returns the IDs of all games, sorted.
func (m *Manager) List() []string {
	m.mu.RLock()
	ids := maps.Keys(m.games)
	m.mu.RUnlock()
	sort.Strings(ids)
	return ids
}

// Len is the number of games held.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.games)
}
