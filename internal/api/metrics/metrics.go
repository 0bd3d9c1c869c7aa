// Package metrics defines and registers all custom Prometheus metrics for the
// inventory API. It is the single source of truth for metric names, labels,
// and help strings. Metrics register themselves with the default registry via
// promauto at package init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "inventory"

// ProductsCreatedTotal counts products added to the catalog.
// Label:
//   - category: catalog category (e.g. "Surgical")
var ProductsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "products_created_total",
		Help:      "Total number of products added to the catalog, by category.",
	},
	[]string{"category"},
)

// StockAdjustmentsTotal counts stock adjustment attempts.
// Labels:
//   - direction: "reduce" or "increase"
//   - result: "ok", "insufficient", "not_found", or "error"
var StockAdjustmentsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "stock_adjustments_total",
		Help:      "Total number of stock adjustment attempts, by direction and result.",
	},
	[]string{"direction", "result"},
)

// ProductCacheTotal counts product cache lookups.
// Label:
//   - result: "hit" or "miss"
var ProductCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "product_cache_total",
		Help:      "Total number of product cache lookups, labelled by result (hit/miss).",
	},
	[]string{"result"},
)
