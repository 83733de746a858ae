package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"nova-fund/internal/core/domain"
)

func TestLedgerCounters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewLedger(reg)

	m.CampaignCreated()
	m.Donation("escrow")
	m.Donation("escrow")
	m.Rejected("escrow_withdraw", domain.ErrTargetNotMet)
	m.Rejected("escrow_withdraw", nil)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.campaigns))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.donations.WithLabelValues("escrow")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.rejected.WithLabelValues("escrow_withdraw", "TargetNotMet")))
}

func TestNilLedgerIsNoop(t *testing.T) {
	var m *Ledger
	assert.NotPanics(t, func() {
		m.CampaignCreated()
		m.Donation("registry")
		m.Withdrawal()
		m.TokenOperation("mint")
		m.Rejected("x", domain.ErrNotFound)
	})
}
