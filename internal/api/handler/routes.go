package handler

import (
	"net/http"

	"github.com/ozmetrics/ozon-performance-sync/internal/api/handler/router"
	"github.com/ozmetrics/ozon-performance-sync/internal/scheduler"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func CollectionRuns(service *scheduler.CollectionSyncService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/runs/collection",
			Method:  http.MethodPost,
			Handler: TriggerCollectionRun(service),
		},
		{
			Path:    "/v1/runs/status",
			Method:  http.MethodGet,
			Handler: GetCollectionStatus(service),
		},
	}
}
