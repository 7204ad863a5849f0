package server

import (
	"context"

	"github.com/katalvlaran/campusnav/campus"
)

// HealthService defines behaviour for readiness probes.
type HealthService interface {
	Probe(ctx context.Context) error
}

// RouterHealthService verifies that the engine answers a full tree query.
type RouterHealthService struct {
	Router *campus.Router
}

// Probe implements the HealthService interface.
func (s RouterHealthService) Probe(ctx context.Context) error {
	if s.Router == nil {
		return nil
	}
	_, err := s.Router.Engine().Tree(ctx, 0)
	return err
}
