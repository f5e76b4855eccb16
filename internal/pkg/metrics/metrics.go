package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var reg *prometheus.Registry
var re sync.Once

var (
	notificationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "relay_notifications_received_total",
			Help: "Total number of notification requests accepted for dispatch.",
		},
		[]string{"type"},
	)

	dispatchesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "relay_dispatches_total",
			Help: "Total number of webhook dispatch attempts by platform and outcome.",
		},
		[]string{"platform", "status"},
	)
)

func Reg() *prometheus.Registry {
	re.Do(func() {
		reg = prometheus.NewPedanticRegistry()
		reg.MustRegister(notificationsTotal, dispatchesTotal)
	})

	return reg
}

func IncNotificationReceived(notificationType string) {
	Reg()
	notificationsTotal.WithLabelValues(notificationType).Inc()
}

func IncDispatch(platform, status string) {
	Reg()
	dispatchesTotal.WithLabelValues(platform, status).Inc()
}
