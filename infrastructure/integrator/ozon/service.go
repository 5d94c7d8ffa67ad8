package ozon

import (
	"github.com/ozmetrics/ozon-performance-sync/infrastructure/integrator/ozon/ozonclient"
	"github.com/ozmetrics/ozon-performance-sync/internal/config"
	"github.com/ozmetrics/ozon-performance-sync/internal/domain"
)

// Integrator hands out one API client per credential. Workers never
// share clients: the bearer token and the rate-limit budget are both
// account scoped.
type Integrator interface {
	NewClient(cred domain.Credential) ozonclient.Client
}

type Service struct {
	cfg *config.Config
}

func New(cfg *config.Config) *Service {
	return &Service{cfg: cfg}
}

func (s *Service) NewClient(cred domain.Credential) ozonclient.Client {
	return ozonclient.NewClient(s.cfg.Ozon, cred)
}
