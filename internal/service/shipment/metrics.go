package shipment

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	QuotesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shipment_quotes_total",
			Help: "Total number of price previews by destination",
		},
		[]string{"destination", "known"},
	)

	StatusChangesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shipment_status_changes_total",
			Help: "Total number of status changes applied by administrators",
		},
		[]string{"from", "to"},
	)
)
