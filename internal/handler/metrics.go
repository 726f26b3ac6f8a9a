package handler

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	signupsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "car_rental_signups_total",
		Help: "Total number of successful user signups.",
	})

	loginsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "car_rental_logins_total",
			Help: "Total number of login attempts by status.",
		},
		[]string{"status"},
	)

	tokenVerificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "car_rental_token_verifications_total",
			Help: "Total number of bearer token verifications by status.",
		},
		[]string{"status"},
	)

	bookingMutationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "car_rental_booking_mutations_total",
			Help: "Total number of successful booking mutations by operation.",
		},
		[]string{"operation"},
	)
)
