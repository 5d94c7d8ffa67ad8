package collector

import (
	"context"
	"fmt"
	"sync"

	"github.com/ozmetrics/ozon-performance-sync/infrastructure/integrator/ozon"
	"github.com/ozmetrics/ozon-performance-sync/internal/config"
	"github.com/ozmetrics/ozon-performance-sync/internal/domain"
	"github.com/sirupsen/logrus"
)

// Dispatcher fans out one worker per collectable credential and joins
// on all of them. Workers share nothing mutable; a failing or panicking
// account never takes a sibling down with it.
type Dispatcher struct {
	integrator ozon.Integrator
	ozonCfg    config.Ozon
	flags      config.CollectionSync
}

func NewDispatcher(integrator ozon.Integrator, ozonCfg config.Ozon, flags config.CollectionSync) *Dispatcher {
	return &Dispatcher{
		integrator: integrator,
		ozonCfg:    ozonCfg,
		flags:      flags,
	}
}

// Run blocks until every spawned worker reached a terminal state and
// returns the per-account results in credential order. Credentials with
// an empty client id are skipped without spawning anything.
func (d *Dispatcher) Run(ctx context.Context, creds []domain.Credential, period domain.DateRange, runDir string) []*domain.CollectionResult {
	results := make([]*domain.CollectionResult, 0, len(creds))
	slots := make([]*domain.CollectionResult, len(creds))

	var wg sync.WaitGroup
	for i, cred := range creds {
		if cred.Skip() {
			logrus.WithField("account_id", cred.AccountID).Info("Account has no performance client id, skipping")
			continue
		}

		wg.Add(1)
		go func(i int, cred domain.Credential) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					logrus.WithFields(logrus.Fields{
						"account_id": cred.AccountID,
						"panic":      r,
					}).Error("Account worker panicked")
					slots[i] = &domain.CollectionResult{
						AccountID: cred.AccountID,
						ClientID:  cred.ClientID,
						State:     domain.StateFailed,
						Err:       fmt.Errorf("worker panic: %v", r),
					}
				}
			}()

			worker := NewWorker(cred, d.integrator.NewClient(cred), d.ozonCfg, d.flags, runDir)
			slots[i] = worker.Run(ctx, period)
		}(i, cred)
	}
	wg.Wait()

	for _, res := range slots {
		if res != nil {
			results = append(results, res)
		}
	}

	return results
}
