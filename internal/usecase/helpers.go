package usecase

import (
	"context"
	"strings"
	"time"

	"staffing_service/internal/domain/entities"
	"staffing_service/internal/infrastructure/logger"
	"staffing_service/internal/usecase/interfaces"

	"github.com/sirupsen/logrus"
)

// Resource names used when notifying the provider catalog.
const (
	CatalogResourceServiceOrders = "service-orders"
	CatalogResourceExtensions    = "service-order-extensions"
	CatalogResourceSubstitutions = "service-order-substitutions"
	CatalogResourceServiceOffers = "service-offers"
)

const (
	collaboratorCatalog  = "catalog"
	collaboratorWorkflow = "workflow_engine"
)

func utcNow() time.Time {
	return time.Now().UTC()
}

type noopRecorder struct{}

func (noopRecorder) Transition(string, string, string) {}
func (noopRecorder) RemoteFailure(string, string)      {}

func recorderOrNoop(r interfaces.IMetricsRecorder) interfaces.IMetricsRecorder {
	if r == nil {
		return noopRecorder{}
	}
	return r
}

func resultLabel(err error) string {
	if err == nil {
		return "ok"
	}
	if kind := entities.KindOf(err); kind != "" {
		return string(kind)
	}
	return "error"
}

func normalizeID(id string) string {
	return strings.TrimSpace(id)
}

// notifyCatalog runs after the local commit. Failures are logged and counted
// but never returned.
func notifyCatalog(ctx context.Context, catalog interfaces.ICatalogNotifier, rec interfaces.IMetricsRecorder, resource, externalID, status string) {
	if catalog == nil || externalID == "" {
		return
	}
	if err := catalog.NotifyStatusChange(ctx, resource, externalID, status); err != nil {
		rec.RemoteFailure(collaboratorCatalog, "notify_status")
		logger.Log.WithFields(logrus.Fields{
			"resource":    resource,
			"external_id": externalID,
			"status":      status,
		}).WithError(err).Warn("[catalog][usecase] status notification failed")
	}
}
