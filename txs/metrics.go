package txs

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/tickledger/go-tickledger/metrics"
)

const (
	namespace = "txs"

	saved               = "saved"
	duplicate           = "duplicate"
	cantParse           = "cant_parse"
	invalid             = "invalid"
	cantVerify          = "cant_verify"
	badTick             = "bad_tick"
	throttled           = "throttled"
	rejectedInternalErr = "rejected_internal_error"
)

var (
	gossipTxCount = metrics.NewCounter(
		"gossip_txs",
		namespace,
		"Number of broadcast transactions by outcome",
		[]string{"outcome"},
	)
	currentTick = metrics.NewGauge(
		"current_tick",
		namespace,
		"Tick used to bound the tick window of incoming transactions",
		[]string{},
	).WithLabelValues()
	decodeLatency = metrics.NewHistogramWithBuckets(
		"decode_seconds",
		namespace,
		"Time spent decoding and verifying a transaction",
		[]string{},
		prometheus.ExponentialBuckets(0.00001, 2, 12),
	).WithLabelValues()
)
