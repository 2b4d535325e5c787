package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPaymentStatusTransitions(t *testing.T) {
	t.Parallel()

	allowed := map[PaymentStatus][]PaymentStatus{
		PaymentStatusPending:   {PaymentStatusCompleted, PaymentStatusFailed},
		PaymentStatusCompleted: {PaymentStatusRefunded},
		PaymentStatusFailed:    {},
		PaymentStatusRefunded:  {},
	}

	all := []PaymentStatus{
		PaymentStatusPending,
		PaymentStatusCompleted,
		PaymentStatusFailed,
		PaymentStatusRefunded,
	}

	for from, nexts := range allowed {
		ok := make(map[PaymentStatus]bool, len(nexts))
		for _, next := range nexts {
			ok[next] = true
		}
		for _, to := range all {
			require.Equal(t, ok[to], from.CanTransitionTo(to), "%s -> %s", from, to)
		}
	}
}
