package session

import (
	"math/rand/v2"
	"strings"
	"sync"

	"legal-storefront/internal/pkg/errs"
)

// PersistencePolicy decides whether a stored session is reported on a
// session read, emulating a session that may not survive a reload.
type PersistencePolicy string

const (
	PersistAlways PersistencePolicy = "always"
	PersistNever  PersistencePolicy = "never"
	PersistRandom PersistencePolicy = "random"
)

var ErrInvalidPolicy = errs.New("invalid session persistence policy")

func ParsePersistencePolicy(s string) (PersistencePolicy, error) {
	switch p := PersistencePolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case PersistAlways, PersistNever, PersistRandom:
		return p, nil
	case "":
		return PersistAlways, nil
	default:
		return "", errs.Wrapf(ErrInvalidPolicy, "%q", s)
	}
}

type Persistence struct {
	policy PersistencePolicy

	mu  sync.Mutex
	rng *rand.Rand
}

// NewPersistence returns a checker for policy. The random policy draws from a
// PRNG seeded with seed, so runs with the same seed report the same sequence.
func NewPersistence(policy PersistencePolicy, seed uint64) *Persistence {
	return &Persistence{
		policy: policy,
		rng:    rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

func (p *Persistence) Policy() PersistencePolicy { return p.policy }

// Survives reports whether the stored session is visible on this read.
func (p *Persistence) Survives() bool {
	switch p.policy {
	case PersistNever:
		return false
	case PersistRandom:
		p.mu.Lock()
		defer p.mu.Unlock()
		return p.rng.IntN(2) == 1
	default:
		return true
	}
}
