package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentGroupTotal(t *testing.T) {
	l := NewPaymentLedger()
	for i, f := range PaymentFields {
		_, err := l.SetField(Group1, f, []string{"100", "200.50", "3", "4", "5", "6"}[i])
		require.NoError(t, err)
	}
	assertDecimal(t, "318.5", l.Group1.GroupTotal())
	assertDecimal(t, "0", l.Group2.GroupTotal())
	assertDecimal(t, "318.5", l.Total())
}

func TestPaymentSetFieldErrors(t *testing.T) {
	l := NewPaymentLedger()

	g, err := l.SetField(Group2, FieldUPI, "oops")
	require.NoError(t, err)
	assert.True(t, g.UPI.IsZero())

	_, err = l.SetField(CashierGroup("group3"), FieldUPI, "1")
	assert.ErrorIs(t, err, ErrUnknownGroup)

	_, err = l.SetField(Group1, PaymentField("cheque"), "1")
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestCashGroupTotal(t *testing.T) {
	tests := []struct {
		name  string
		group CashGroup
		want  string
	}{
		{"scenario", CashGroup{Rs500: 2, Rs100: 3, Coins: dec("45.50")}, "1345.5"},
		{"every note", CashGroup{Rs500: 1, Rs200: 1, Rs100: 1, Rs50: 1, Rs20: 1, Rs10: 1, Coins: dec("1")}, "881"},
		{"empty", NewCashGroup(), "0"},
		{"large count does not wrap", CashGroup{Rs500: 20000000000000000}, "10000000000000000000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertDecimal(t, tt.want, tt.group.GroupTotal())
		})
	}
}

func TestCashSetField(t *testing.T) {
	l := NewCashLedger()

	g, err := l.SetField(Group1, FieldRs200, "7.8")
	require.NoError(t, err)
	assert.Equal(t, int64(7), g.Rs200)

	g, err = l.SetField(Group1, FieldCoins, "12.75")
	require.NoError(t, err)
	assertDecimal(t, "12.75", g.Coins)

	_, err = l.SetField(Group1, CashField("rs_2000"), "1")
	assert.ErrorIs(t, err, ErrUnknownField)

	_, err = l.SetField(CashierGroup(""), FieldRs10, "1")
	assert.ErrorIs(t, err, ErrUnknownGroup)

	assert.True(t, l.Group2.GroupTotal().IsZero())
}

func TestCashFieldLabel(t *testing.T) {
	assert.Equal(t, "₹500 Notes", FieldRs500.Label())
	assert.Equal(t, "₹10 Notes", FieldRs10.Label())
	assert.Equal(t, "Coins", FieldCoins.Label())
}
