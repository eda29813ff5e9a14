package engine

import (
	"fmt"
	"sync/atomic"
)

// Engine serves the fixed set of domain queries against the active
// snapshot. The snapshot is held behind an atomic pointer: Load swaps
// the whole graph at once, so in-flight readers always see a
// consistent view and queries need no locking.
type Engine struct {
	snap atomic.Pointer[Snapshot]
}

func New() *Engine {
	return &Engine{}
}

// Load installs a snapshot as the active graph. It may be called again
// later with a freshly built snapshot to replace the dataset; the swap
// is atomic.
func (e *Engine) Load(snap *Snapshot) {
	e.snap.Store(snap)
}

func (e *Engine) Ready() bool {
	return e.snap.Load() != nil
}

func (e *Engine) snapshot() (*Snapshot, error) {
	snap := e.snap.Load()
	if snap == nil {
		return nil, ErrNotReady
	}
	return snap, nil
}

// Player returns the player with the given id.
func (e *Engine) Player(id string) (*Player, error) {
	snap, err := e.snapshot()
	if err != nil {
		return nil, err
	}
	p, ok := snap.players[id]
	if !ok {
		return nil, fmt.Errorf("player %s: %w", id, ErrNotFound)
	}
	return p, nil
}

// Team returns the team with the given id.
func (e *Engine) Team(id string) (*Team, error) {
	snap, err := e.snapshot()
	if err != nil {
		return nil, err
	}
	t, ok := snap.teams[id]
	if !ok {
		return nil, fmt.Errorf("team %s: %w", id, ErrNotFound)
	}
	return t, nil
}

// Match returns the match with the given id.
func (e *Engine) Match(id string) (*Match, error) {
	snap, err := e.snapshot()
	if err != nil {
		return nil, err
	}
	m, ok := snap.matches[id]
	if !ok {
		return nil, fmt.Errorf("match %s: %w", id, ErrNotFound)
	}
	return m, nil
}

// Competition returns the competition with the given id.
func (e *Engine) Competition(id string) (*Competition, error) {
	snap, err := e.snapshot()
	if err != nil {
		return nil, err
	}
	c, ok := snap.competitions[id]
	if !ok {
		return nil, fmt.Errorf("competition %s: %w", id, ErrNotFound)
	}
	return c, nil
}

// ContractsOf returns the player's contract edges ordered by start date.
func (e *Engine) ContractsOf(playerID string) ([]Contract, error) {
	snap, err := e.snapshot()
	if err != nil {
		return nil, err
	}
	if _, ok := snap.players[playerID]; !ok {
		return nil, fmt.Errorf("player %s: %w", playerID, ErrNotFound)
	}
	return append([]Contract{}, snap.contractsByPlayer[playerID]...), nil
}

// AppearancesOf returns the player's appearance edges.
func (e *Engine) AppearancesOf(playerID string) ([]Appearance, error) {
	snap, err := e.snapshot()
	if err != nil {
		return nil, err
	}
	if _, ok := snap.players[playerID]; !ok {
		return nil, fmt.Errorf("player %s: %w", playerID, ErrNotFound)
	}
	return append([]Appearance{}, snap.appearancesByPlayer[playerID]...), nil
}

// AppearancesInMatch returns the appearance edges recorded for a match.
func (e *Engine) AppearancesInMatch(matchID string) ([]Appearance, error) {
	snap, err := e.snapshot()
	if err != nil {
		return nil, err
	}
	if _, ok := snap.matches[matchID]; !ok {
		return nil, fmt.Errorf("match %s: %w", matchID, ErrNotFound)
	}
	return append([]Appearance{}, snap.appearancesByMatch[matchID]...), nil
}
