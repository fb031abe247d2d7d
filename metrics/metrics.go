package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTP
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"route", "method", "status"},
	)

	// Games
	GamesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "games_total",
			Help: "Total resolved game rounds",
		},
		[]string{"game", "result"},
	)
	PayoutCoinsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "payout_coins_total",
			Help: "Total coins paid out, by game",
		},
		[]string{"game"},
	)
	DailyClaimsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "daily_claims_total",
			Help: "Total granted daily rewards",
		},
	)

	// Chat fallback
	ChatFallbacksTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "chat_fallbacks_total",
			Help: "Total messages forwarded to the chat responder",
		},
	)
	ChatFailuresTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "chat_failures_total",
			Help: "Total failed chat responder calls",
		},
	)
)

// Handler serves the /metrics endpoint.
var Handler = promhttp.Handler

func Init() {
	prometheus.MustRegister(RequestsTotal)
	prometheus.MustRegister(GamesTotal)
	prometheus.MustRegister(PayoutCoinsTotal)
	prometheus.MustRegister(DailyClaimsTotal)
	prometheus.MustRegister(ChatFallbacksTotal)
	prometheus.MustRegister(ChatFailuresTotal)
}
