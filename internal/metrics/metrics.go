package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	TransfersInitiatedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lendery_transfers_initiated_total",
		Help: "Total number of pending transfers created, by type.",
	},
		[]string{"type"},
	)

	TransfersCompletedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lendery_transfers_completed_total",
		Help: "Total number of transfers that reached completed, by type.",
	},
		[]string{"type"},
	)

	TransfersExpiredTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lendery_transfers_expired_total",
		Help: "Total number of pending transfers expired by the stale sweep.",
	})

	WaitlistJoinsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lendery_waitlist_joins_total",
		Help: "Total number of successful waitlist joins.",
	})

	OperationErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lendery_operation_errors_total",
		Help: "Total number of errors encountered during specific operations.",
	},
		[]string{"operation"},
	)

	NoticesPublishedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lendery_notices_published_total",
		Help: "Total number of handoff notices published to the broker.",
	})
)
