package device

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	commandsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "keyportd_commands_total",
		Help: "Total number of device commands handled, by command.",
	}, []string{"command"})

	statusWordsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "keyportd_status_words_total",
		Help: "Total number of responses sent, by terminal status word.",
	}, []string{"status"})
)
