package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/ozmetrics/ozon-performance-sync/internal/scheduler"
	"github.com/ozmetrics/ozon-performance-sync/pkg/utils"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// TriggerCollectionRun starts a collection pass outside the cron
// schedule. Optional date_from/date_to query parameters override the
// automatic date-range resolution. A 409 means a run is already in
// flight.
func TriggerCollectionRun(service *scheduler.CollectionSyncService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - TriggerCollectionRun")

		dateFrom, err := utils.ParseDate(r.URL.Query().Get("date_from"))
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"date_from": r.URL.Query().Get("date_from"),
				"error":     err.Error(),
			}).Warn("runs: invalid date_from parameter")

			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		dateTo, err := utils.ParseDate(r.URL.Query().Get("date_to"))
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"date_to": r.URL.Query().Get("date_to"),
				"error":   err.Error(),
			}).Warn("runs: invalid date_to parameter")

			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if !service.TriggerManualSync(r.Context(), dateFrom, dateTo) {
			w.WriteHeader(http.StatusConflict)
			_ = json.NewEncoder(w).Encode(map[string]any{
				"message": "collection run already in progress",
			})
			return
		}

		w.WriteHeader(http.StatusAccepted)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"message": "collection run started",
		})
	}
}

// GetCollectionStatus reports the scheduler state and the outcome of the
// last run.
func GetCollectionStatus(service *scheduler.CollectionSyncService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCollectionStatus")

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(service.GetStatus())
	}
}
