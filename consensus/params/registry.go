package params

import (
	"github.com/bittube/tube-params/consensus/tube"
	"github.com/bittube/tube-params/consensus/utils"
)

// Registry is the read-only source of a validated Set. It has no setters;
// a different configuration is a different Registry.
type Registry struct {
	set Set
}

// Default is built from TubeParams during package initialization, before any
// consumer can read it.
var Default = MustNewRegistry(TubeParams)

// Get returns the parameter set of Default.
func Get() Set {
	return Default.Get()
}

func NewRegistry(s Set) (*Registry, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &Registry{set: s}, nil
}

func MustNewRegistry(s Set) *Registry {
	r, err := NewRegistry(s)
	if err != nil {
		utils.Panicf("invalid parameter set: %s", err)
	}
	return r
}

func (r *Registry) Get() Set {
	return r.set
}

// WithNetwork derives a registry selecting network n. The receiver is left as is.
func (r *Registry) WithNetwork(n tube.NetworkType) (*Registry, error) {
	s := r.set
	s.NetworkType = n
	return NewRegistry(s)
}
