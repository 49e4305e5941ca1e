package core

import (
	"maps"
	"sync"
)

// Prefs is the persistence contract games use for small named values:
// currency balances, upgrade levels, level completion flags.
// Missing keys read as the supplied default.
type Prefs interface {
	Int(key string, def int) int
	SetInt(key string, value int) error
	Float(key string, def float64) float64
	SetFloat(key string, value float64) error
}

// MemoryPrefs is an in-process Prefs implementation.
// Used when no database is available and in tests.
type MemoryPrefs struct {
	mu     sync.RWMutex
	values map[string]float64
}

// NewMemoryPrefs creates an empty MemoryPrefs.
func NewMemoryPrefs() *MemoryPrefs {
	return &MemoryPrefs{values: make(map[string]float64)}
}

// Int returns the value stored under key truncated to an int, or def.
func (m *MemoryPrefs) Int(key string, def int) int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.values[key]
	if !ok {
		return def
	}
	return int(v)
}

// SetInt stores an integer value.
func (m *MemoryPrefs) SetInt(key string, value int) error {
	return m.SetFloat(key, float64(value))
}

// Float returns the value stored under key, or def.
func (m *MemoryPrefs) Float(key string, def float64) float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.values[key]
	if !ok {
		return def
	}
	return v
}

// SetFloat stores a float value.
func (m *MemoryPrefs) SetFloat(key string, value float64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.values[key] = value
	return nil
}

// PrefsUpdater is implemented by Prefs shared between concurrent players.
// AddInt and Update apply a read-modify-write as one step.
type PrefsUpdater interface {
	Prefs
	// AddInt adds delta to the value under key (missing reads as 0) and
	// returns the new value.
	AddInt(key string, delta int) (int, error)
	// Update runs fn against a view of the prefs. Writes made through the
	// view are kept only if fn returns nil; no other update interleaves.
	Update(fn func(p Prefs) error) error
}

// AddInt implements PrefsUpdater.
func (m *MemoryPrefs) AddInt(key string, delta int) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	v := int(m.values[key]) + delta
	m.values[key] = float64(v)
	return v, nil
}

// Update implements PrefsUpdater.
func (m *MemoryPrefs) Update(fn func(p Prefs) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	view := &memoryView{values: maps.Clone(m.values)}
	if err := fn(view); err != nil {
		return err
	}
	m.values = view.values
	return nil
}

// memoryView is the unlocked Prefs handed to Update callbacks.
type memoryView struct {
	values map[string]float64
}

func (v *memoryView) Int(key string, def int) int {
	return int(v.Float(key, float64(def)))
}

func (v *memoryView) SetInt(key string, value int) error {
	return v.SetFloat(key, float64(value))
}

func (v *memoryView) Float(key string, def float64) float64 {
	if x, ok := v.values[key]; ok {
		return x
	}
	return def
}

func (v *memoryView) SetFloat(key string, value float64) error {
	v.values[key] = value
	return nil
}

var _ PrefsUpdater = (*MemoryPrefs)(nil)
