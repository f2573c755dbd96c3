package app

import "github.com/prometheus/client_golang/prometheus"

var (
	wsActiveConnections = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "gamevault_chat_ws_active_connections",
			Help: "Number of open chat websocket connections.",
		},
	)
	wsActionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gamevault_chat_ws_actions_total",
			Help: "Websocket requests handled, by action and result.",
		},
		[]string{"action", "result"},
	)
	messagesSentTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "gamevault_chat_messages_sent_total",
			Help: "Chat messages stored.",
		},
	)
	fanoutErrorsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "gamevault_chat_fanout_errors_total",
			Help: "Failed redis publishes to member channels.",
		},
	)
)

func init() {
	prometheus.MustRegister(wsActiveConnections, wsActionsTotal, messagesSentTotal, fanoutErrorsTotal)
}

func observeAction(action string, ok bool) {
	result := "ok"
	if !ok {
		result = "error"
	}
	wsActionsTotal.WithLabelValues(action, result).Inc()
}
