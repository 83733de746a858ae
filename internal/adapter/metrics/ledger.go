package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"nova-fund/internal/core/domain"
)

// Ledger counts contract calls. A nil *Ledger is valid and records
// nothing, which keeps metrics optional for tests and tooling.
type Ledger struct {
	campaigns   prometheus.Counter
	donations   *prometheus.CounterVec
	withdrawals prometheus.Counter
	transfers   *prometheus.CounterVec
	rejected    *prometheus.CounterVec
}

// NewLedger registers the ledger collectors with registry. A nil registry
// creates unregistered collectors.
func NewLedger(registry prometheus.Registerer) *Ledger {
	factory := promauto.With(registry)
	return &Ledger{
		campaigns: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "novafund",
			Name:      "campaigns_created_total",
			Help:      "Campaigns created in the registry",
		}),
		donations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "novafund",
			Name:      "donations_total",
			Help:      "Accepted donations by contract",
		}, []string{"contract"}),
		withdrawals: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "novafund",
			Name:      "escrow_withdrawals_total",
			Help:      "Successful escrow withdrawals, including zero amount ones",
		}),
		transfers: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "novafund",
			Name:      "token_operations_total",
			Help:      "Token mints and transfers requested by account holders",
		}, []string{"operation"}),
		rejected: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "novafund",
			Name:      "calls_rejected_total",
			Help:      "Calls aborted with an error, by operation and error kind",
		}, []string{"operation", "kind"}),
	}
}

func (m *Ledger) CampaignCreated() {
	if m == nil {
		return
	}
	m.campaigns.Inc()
}

func (m *Ledger) Donation(contract string) {
	if m == nil {
		return
	}
	m.donations.WithLabelValues(contract).Inc()
}

func (m *Ledger) Withdrawal() {
	if m == nil {
		return
	}
	m.withdrawals.Inc()
}

func (m *Ledger) TokenOperation(op string) {
	if m == nil {
		return
	}
	m.transfers.WithLabelValues(op).Inc()
}

// Rejected records a failed call under its error kind.
func (m *Ledger) Rejected(op string, err error) {
	if m == nil || err == nil {
		return
	}
	m.rejected.WithLabelValues(op, domain.Kind(err)).Inc()
}
