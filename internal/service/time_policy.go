package service

import (
	"moodgarden/internal/registry"
	"moodgarden/internal/timesource"
)

// TimePolicyService is the thin reconfiguration surface over the registry.
// Configure calls are serialized by the registry itself; embeddings with
// several reconfiguring actors still need one owning coordinator.
type TimePolicyService struct {
	reg *registry.Registry
}

func NewTimePolicyService(reg *registry.Registry) *TimePolicyService {
	return &TimePolicyService{reg: reg}
}

func (s *TimePolicyService) Configure(p registry.Patch) {
	s.reg.Configure(p)
}

func (s *TimePolicyService) Resolved() map[string]timesource.Config {
	return s.reg.Resolved()
}
