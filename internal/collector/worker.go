package collector

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ozmetrics/ozon-performance-sync/infrastructure/integrator/ozon/ozonclient"
	"github.com/ozmetrics/ozon-performance-sync/internal/config"
	"github.com/ozmetrics/ozon-performance-sync/internal/domain"
	"github.com/sirupsen/logrus"
)

// Worker drives the collection of every requested report kind for one
// account: authenticate, enumerate campaigns, request and fetch reports
// batch by batch, save whatever succeeded. All its network calls are
// sequential; the per-account rate limits leave no room for intra-account
// concurrency.
type Worker struct {
	cred    domain.Credential
	client  ozonclient.Client
	ozonCfg config.Ozon
	flags   config.CollectionSync
	runDir  string
}

func NewWorker(
	cred domain.Credential,
	client ozonclient.Client,
	ozonCfg config.Ozon,
	flags config.CollectionSync,
	runDir string,
) *Worker {
	return &Worker{
		cred:    cred,
		client:  client,
		ozonCfg: ozonCfg,
		flags:   flags,
		runDir:  runDir,
	}
}

// pendingReport is an async handle waiting to be polled and saved.
type pendingReport struct {
	kind   domain.ReportKind
	label  string
	handle domain.ReportHandle
}

// syncReport is an already-downloaded synchronous report body.
type syncReport struct {
	kind  domain.ReportKind
	label string
	data  []byte
}

// Run walks the worker through its states and always returns a terminal
// CollectionResult. Only authentication and campaign enumeration fail
// the account as a whole; everything later degrades per report.
func (w *Worker) Run(ctx context.Context, period domain.DateRange) *domain.CollectionResult {
	result := &domain.CollectionResult{
		AccountID: w.cred.AccountID,
		ClientID:  w.cred.ClientID,
	}

	log := logrus.WithFields(logrus.Fields{
		"account_id": w.cred.AccountID,
		"client_id":  w.cred.ClientID,
	})

	result.State = domain.StateAuthenticating
	if err := w.client.Authenticate(); err != nil {
		log.WithError(err).Error("Authentication failed, skipping account")
		result.State = domain.StateFailed
		result.Err = fmt.Errorf("authenticating: %w", err)
		return result
	}

	result.State = domain.StateEnumeratingCampaigns
	objects, err := w.enumerateCampaigns()
	if err != nil {
		log.WithError(err).Error("Campaign enumeration failed, skipping account")
		result.State = domain.StateFailed
		result.Err = fmt.Errorf("enumerating campaigns: %w", err)
		return result
	}
	result.Campaigns = len(objects)
	log.WithField("campaigns", len(objects)).Info("Campaigns enumerated")

	result.State = domain.StateCollecting
	pending, ready := w.collect(result, objects, period)

	result.State = domain.StateSaving
	w.save(ctx, result, pending, ready)

	result.State = domain.StateDone
	log.WithFields(logrus.Fields{
		"saved":  result.SavedReports(),
		"failed": result.FailedReports(),
	}).Info("Account collection finished")

	return result
}

func (w *Worker) enumerateCampaigns() ([]domain.CampaignObjects, error) {
	campaigns, err := w.client.ListCampaigns()
	if err != nil {
		return nil, err
	}

	objects := make([]domain.CampaignObjects, 0, len(campaigns))
	for _, campaign := range campaigns {
		ids, err := w.client.ListCampaignObjects(campaign.ID)
		if err != nil {
			return nil, fmt.Errorf("listing objects of campaign %s: %w", campaign.ID, err)
		}
		objects = append(objects, domain.CampaignObjects{CampaignID: campaign.ID, ObjectIDs: ids})
	}

	return objects, nil
}

// collect requests every configured report. Async kinds yield handles to
// poll later; media/product/daily answer with content directly. A failed
// batch is recorded as a failed outcome and never aborts its siblings.
func (w *Worker) collect(result *domain.CollectionResult, objects []domain.CampaignObjects, period domain.DateRange) ([]pendingReport, []syncReport) {
	batches := SplitObjects(objects, w.ozonCfg.CampaignLimit)
	ranges, err := SplitTime(period.From, period.To, w.ozonCfg.DayLimit)
	if err != nil {
		// The pipeline validates the range before dispatch; reaching this
		// point means a caller bug, not an account problem.
		result.Reports = append(result.Reports, domain.ReportOutcome{
			Kind: domain.ReportKindStatistics, Label: "batching", Err: err,
		})
		return nil, nil
	}

	var pending []pendingReport
	for bi, batch := range batches {
		for ti, sub := range ranges {
			if w.flags.Statistics {
				handle, err := w.client.RequestStatistics(domain.CampaignIDs(batch), sub)
				pending = w.track(result, pending, domain.ReportKindStatistics,
					fmt.Sprintf("campaigns_%d_%d", bi, ti), handle, err)
			}

			if w.flags.Phrases {
				for ci, co := range batch {
					if len(co.ObjectIDs) == 0 {
						continue
					}
					handle, err := w.client.RequestPhrases(co.CampaignID, co.ObjectIDs, sub)
					pending = w.track(result, pending, domain.ReportKindPhrases,
						fmt.Sprintf("phrases_%d_%d_%d", bi, ti, ci), handle, err)
				}
			}

			if w.flags.Attribution {
				handle, err := w.client.RequestAttribution(domain.CampaignIDs(batch), sub)
				pending = w.track(result, pending, domain.ReportKindAttribution,
					fmt.Sprintf("attr_%d_%d", bi, ti), handle, err)
			}
		}
	}

	allCampaigns := domain.CampaignIDs(objects)
	var ready []syncReport
	syncKinds := []struct {
		kind    domain.ReportKind
		enabled bool
		fetch   func([]string, domain.DateRange) ([]byte, error)
	}{
		{domain.ReportKindMedia, w.flags.Media, w.client.MediaReport},
		{domain.ReportKindProduct, w.flags.Product, w.client.ProductReport},
		{domain.ReportKindDaily, w.flags.Daily, w.client.DailyReport},
	}
	for _, sk := range syncKinds {
		if !sk.enabled {
			continue
		}
		label := fmt.Sprintf("%s_%s", sk.kind, period)
		data, err := sk.fetch(allCampaigns, period)
		if err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"account_id": w.cred.AccountID,
				"kind":       sk.kind,
			}).Warn("Synchronous report failed")
			result.Reports = append(result.Reports, domain.ReportOutcome{Kind: sk.kind, Label: label, Err: err})
			continue
		}
		ready = append(ready, syncReport{kind: sk.kind, label: label, data: data})
	}

	return pending, ready
}

// track records a failed request immediately and queues a successful one
// for polling.
func (w *Worker) track(result *domain.CollectionResult, pending []pendingReport, kind domain.ReportKind, label string, handle *domain.ReportHandle, err error) []pendingReport {
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"account_id": w.cred.AccountID,
			"kind":       kind,
			"label":      label,
		}).Warn("Report request failed for batch")
		result.Reports = append(result.Reports, domain.ReportOutcome{Kind: kind, Label: label, Err: err})
		return pending
	}

	return append(pending, pendingReport{kind: kind, label: label, handle: *handle})
}

// save polls the pending handles and writes everything that arrived to
// the per-account directory tree. One write failure skips that report
// only.
func (w *Worker) save(ctx context.Context, result *domain.CollectionResult, pending []pendingReport, ready []syncReport) {
	accountDir := filepath.Join(w.runDir, fmt.Sprintf("%d-%s", w.cred.AccountID, w.cred.ClientID))

	interval := time.Duration(w.ozonCfg.PollIntervalSeconds) * time.Second

	for _, sr := range ready {
		path := filepath.Join(accountDir, string(sr.kind), sr.label+".csv")
		result.Reports = append(result.Reports, w.writeReport(sr.kind, sr.label, path, sr.data))
	}

	for _, pr := range pending {
		data, err := awaitReport(ctx, w.client, pr.handle, interval, w.ozonCfg.PollMaxAttempts)
		if err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"account_id": w.cred.AccountID,
				"kind":       pr.kind,
				"label":      pr.label,
				"uuid":       pr.handle.UUID,
			}).Warn("Report never became available")
			result.Reports = append(result.Reports, domain.ReportOutcome{Kind: pr.kind, Label: pr.label, Err: err})
			continue
		}

		path := filepath.Join(accountDir, string(pr.kind), fmt.Sprintf("%s.%s", pr.label, pr.handle.Format))
		result.Reports = append(result.Reports, w.writeReport(pr.kind, pr.label, path, data))
	}
}

func (w *Worker) writeReport(kind domain.ReportKind, label, path string, data []byte) domain.ReportOutcome {
	outcome := domain.ReportOutcome{Kind: kind, Label: label}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		outcome.Err = fmt.Errorf("creating report directory: %w", err)
		return outcome
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		outcome.Err = fmt.Errorf("writing report file: %w", err)
		return outcome
	}

	outcome.Path = path
	logrus.WithFields(logrus.Fields{
		"account_id": w.cred.AccountID,
		"path":       path,
	}).Debug("Report saved")

	return outcome
}
