package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdvancePaymentStatus(t *testing.T) {
	const (
		dpAmount = Money(480000)
		total    = Money(1600000)
	)

	tests := []struct {
		name          string
		current       PaymentStatus
		verifiedTotal Money
		want          PaymentStatus
	}{
		{"below deposit stays pending", PaymentDPPending, 100000, PaymentDPPending},
		{"deposit reached", PaymentDPPending, 480000, PaymentDPReceived},
		{"above deposit below total", PaymentDPPending, 500000, PaymentDPReceived},
		{"total reached", PaymentDPPending, 1600000, PaymentFullyPaid},
		{"overpayment", PaymentDPReceived, 1700000, PaymentFullyPaid},
		{"already fully paid never downgrades", PaymentFullyPaid, 100000, PaymentFullyPaid},
		{"dp received never downgrades", PaymentDPReceived, 0, PaymentDPReceived},
		{"refunded never downgrades", PaymentRefunded, 1600000, PaymentRefunded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AdvancePaymentStatus(tt.current, tt.verifiedTotal, dpAmount, total))
		})
	}
}

func TestBooking_CanAcceptPayment(t *testing.T) {
	tests := []struct {
		name          string
		status        BookingStatus
		paymentStatus PaymentStatus
		want          bool
	}{
		{"pending verification", StatusPendingVerification, PaymentDPPending, true},
		{"confirmed", StatusConfirmed, PaymentDPReceived, true},
		{"checked in", StatusCheckedIn, PaymentDPReceived, true},
		{"checked out", StatusCheckedOut, PaymentDPReceived, false},
		{"cancelled", StatusCancelled, PaymentDPPending, false},
		{"no show", StatusNoShow, PaymentDPPending, false},
		{"refunded", StatusConfirmed, PaymentRefunded, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &Booking{Status: tt.status, PaymentStatus: tt.paymentStatus}
			assert.Equal(t, tt.want, b.CanAcceptPayment())
		})
	}
}

func TestBooking_IsBlocking(t *testing.T) {
	for _, status := range []BookingStatus{StatusPendingVerification, StatusConfirmed, StatusCheckedIn, StatusCheckedOut} {
		b := &Booking{Status: status}
		assert.True(t, b.IsBlocking(), "status %s", status)
	}
	for _, status := range NonBlockingStatuses {
		b := &Booking{Status: status}
		assert.False(t, b.IsBlocking(), "status %s", status)
	}
}
