package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// PaymentVerifications counts coordinator outcomes by result
	// (confirmed, already_processed, failed, error).
	PaymentVerifications = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "creditcore_payment_verifications_total",
		Help: "Payment verification outcomes.",
	}, []string{"result"})

	// CreditMutations counts successful balance mutations by operation (add, deduct).
	CreditMutations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "creditcore_credit_mutations_total",
		Help: "Successful credit balance mutations.",
	}, []string{"op"})

	// WebhookDeliveries counts inbound chain webhook deliveries.
	WebhookDeliveries = promauto.NewCounter(prometheus.CounterOpts{
		Name: "creditcore_webhook_deliveries_total",
		Help: "Inbound chain webhook deliveries, including replays.",
	})

	// RPCRequests counts chain RPC calls by outcome (ok, error).
	RPCRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "creditcore_chain_rpc_requests_total",
		Help: "Chain RPC requests.",
	}, []string{"outcome"})
)
