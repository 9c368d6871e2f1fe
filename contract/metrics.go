package contract

import "github.com/tickledger/go-tickledger/metrics"

const namespace = "contract"

var capacityExceeded = metrics.NewCounter(
	"action_capacity_exceeded",
	namespace,
	"Number of actions refused because the tracker was full",
	[]string{},
).WithLabelValues()
