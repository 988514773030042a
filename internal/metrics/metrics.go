package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var Registry = prometheus.NewRegistry()

var (
	Submissions = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "groupmart",
		Name:      "submissions_total",
		Help:      "Accepted seller submissions by kind.",
	}, []string{"kind"})

	Decisions = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "groupmart",
		Name:      "decisions_total",
		Help:      "Approver commands by kind and result.",
	}, []string{"command", "result"})

	Credited = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "groupmart",
		Name:      "credited_amount_total",
		Help:      "Sum credited to sellers on settlement.",
	})

	Debited = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "groupmart",
		Name:      "debited_amount_total",
		Help:      "Sum debited by approved withdrawals.",
	})

	Abandoned = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "groupmart",
		Name:      "abandoned_total",
		Help:      "Drafts and batches abandoned by the expiry worker.",
	}, []string{"entity"})

	NotificationFailures = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "groupmart",
		Name:      "notification_failures_total",
		Help:      "Outbound notifications that could not be delivered.",
	})

	SaveFailures = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "groupmart",
		Name:      "save_failures_total",
		Help:      "Commits rolled back because the document could not be saved.",
	})
)

func init() {
	Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		Submissions,
		Decisions,
		Credited,
		Debited,
		Abandoned,
		NotificationFailures,
		SaveFailures,
	)
}

func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}
