// Package difficulty defines the AI opponent profiles and a registry of
// named presets. The registry keeps presets ordered from easiest to hardest
// and refuses tables where a harder preset is not strictly faster and more
// precise than the one before it.
package difficulty

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// Preset names.
const (
	Easy   = "easy"
	Normal = "normal"
	Hard   = "hard"
)

var (
	ErrUnknownPreset   = errors.New("difficulty: unknown preset")
	ErrDuplicatePreset = errors.New("difficulty: preset already registered")
	ErrInvalidProfile  = errors.New("difficulty: invalid profile")
	ErrOrdering        = errors.New("difficulty: presets out of order")
)

// Profile fixes how well the CPU paddle plays.
type Profile struct {
	Name     string
	MaxSpeed float64 // paddle speed cap, units/s
	Reaction float64 // seconds between re-predictions
	Jitter   float64 // prediction noise, ± units
	Miss     float64 // probability per step of a deliberate misjudgment
}

// Validate checks that the profile values are usable.
func (p Profile) Validate() error {
	switch {
	case p.Name == "":
		return fmt.Errorf("%w: empty name", ErrInvalidProfile)
	case p.MaxSpeed <= 0:
		return fmt.Errorf("%w: %s: max speed must be positive", ErrInvalidProfile, p.Name)
	case p.Reaction < 0:
		return fmt.Errorf("%w: %s: reaction must not be negative", ErrInvalidProfile, p.Name)
	case p.Jitter < 0:
		return fmt.Errorf("%w: %s: jitter must not be negative", ErrInvalidProfile, p.Name)
	case p.Miss < 0 || p.Miss > 1:
		return fmt.Errorf("%w: %s: miss probability must be within [0, 1]", ErrInvalidProfile, p.Name)
	}
	return nil
}

// harder reports whether p is strictly faster and more precise than q.
func (p Profile) harder(q Profile) bool {
	return p.MaxSpeed > q.MaxSpeed &&
		p.Reaction < q.Reaction &&
		p.Jitter < q.Jitter &&
		p.Miss < q.Miss
}

// Builtin returns the stock profiles, easiest first.
func Builtin() []Profile {
	return []Profile{
		{Name: Easy, MaxSpeed: 360, Reaction: 0.24, Jitter: 42, Miss: 0.12},
		{Name: Normal, MaxSpeed: 540, Reaction: 0.12, Jitter: 18, Miss: 0.05},
		{Name: Hard, MaxSpeed: 900, Reaction: 0.03, Jitter: 7, Miss: 0.015},
	}
}

// Registry holds named profiles.
type Registry struct {
	mu       sync.RWMutex
	profiles map[string]Profile
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{profiles: make(map[string]Profile)}
}

// NewBuiltinRegistry creates a registry holding the stock profiles.
func NewBuiltinRegistry() *Registry {
	r := NewRegistry()
	for _, p := range Builtin() {
		// Builtin values are known to be valid and unique
		_ = r.Register(p)
	}
	return r
}

// Register adds a profile. Names must be unique.
func (r *Registry) Register(p Profile) error {
	if err := p.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.profiles[p.Name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicatePreset, p.Name)
	}
	r.profiles[p.Name] = p
	return nil
}

// Lookup returns the profile registered under name.
func (r *Registry) Lookup(name string) (Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.profiles[name]
	if !ok {
		return Profile{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	return p, nil
}

// Exists checks if a profile with the given name is registered.
func (r *Registry) Exists(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.profiles[name]
	return ok
}

// List returns all profiles ordered from easiest to hardest (by max speed,
// then name).
func (r *Registry) List() []Profile {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Profile, 0, len(r.profiles))
	for _, p := range r.profiles {
		result = append(result, p)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].MaxSpeed != result[j].MaxSpeed {
			return result[i].MaxSpeed < result[j].MaxSpeed
		}
		return result[i].Name < result[j].Name
	})

	return result
}

// CheckOrdering verifies that the stock names that are registered run
// easy, normal, hard from easiest to hardest, and that each preset in List
// order is strictly harder than the previous one.
func (r *Registry) CheckOrdering() error {
	var named []Profile
	for _, name := range []string{Easy, Normal, Hard} {
		if p, err := r.Lookup(name); err == nil {
			named = append(named, p)
		}
	}
	if err := checkChain(named); err != nil {
		return err
	}
	return checkChain(r.List())
}

func checkChain(list []Profile) error {
	for i := 1; i < len(list); i++ {
		if !list[i].harder(list[i-1]) {
			return fmt.Errorf("%w: %q must be faster and more precise than %q",
				ErrOrdering, list[i].Name, list[i-1].Name)
		}
	}
	return nil
}
