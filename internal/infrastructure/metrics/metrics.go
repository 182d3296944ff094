// Package metrics defines the Prometheus metrics for the career registry.
// It is the single source of truth for metric names, labels, and help
// strings. Metrics register with the default registry at init; the embedding
// shell decides whether and how to expose them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "career_registry"

// RecordsLoadedTotal counts records that resolved into the store, by entity
// kind (user, review, posting).
var RecordsLoadedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "records_loaded_total",
		Help:      "Total number of persisted records resolved into the store.",
	},
	[]string{"kind"},
)

// RecordsDroppedTotal counts records dropped during load.
// Labels:
//   - kind: entity kind of the dropped record
//   - reason: "decode" (malformed/missing field), "dangling" (unresolvable
//     reference), or "conflict" (duplicate identifier or uniqueness clash)
var RecordsDroppedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "records_dropped_total",
		Help:      "Total number of persisted records dropped during load.",
	},
	[]string{"kind", "reason"},
)

// StoreEntities tracks current store contents by kind, removed entities
// included.
var StoreEntities = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "store_entities",
		Help:      "Current number of entities held by the store, by kind.",
	},
	[]string{"kind"},
)

// SavesTotal counts completed whole-set persistence writes.
var SavesTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "saves_total",
		Help:      "Total number of completed record-set writes.",
	},
)

// AuthAttemptsTotal counts authentication attempts by result ("ok" or
// "rejected"). Rejections are not broken down further: the caller is never
// told which credential was wrong, and neither is the operator.
var AuthAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_attempts_total",
		Help:      "Total number of authentication attempts, by result.",
	},
	[]string{"result"},
)
