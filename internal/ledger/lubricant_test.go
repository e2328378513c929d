package ledger

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemoveLastItemIsNoop(t *testing.T) {
	l := NewLubricantLedger()
	require.Len(t, l.Items, 1)

	assert.False(t, l.RemoveItem(0))
	assert.Len(t, l.Items, 1)
}

func TestAddThenRemoveRestores(t *testing.T) {
	l := NewLubricantLedger()
	_, err := l.SetItemField(0, FieldItemName, "Servo 4T")
	require.NoError(t, err)
	before := append([]LubricantItem(nil), l.Items...)

	assert.Equal(t, 2, l.AddItem())
	assert.True(t, l.RemoveItem(1))
	assert.Equal(t, before, l.Items)
}

func TestRemoveItemOutOfRange(t *testing.T) {
	l := NewLubricantLedger()
	l.AddItem()
	assert.False(t, l.RemoveItem(5))
	assert.False(t, l.RemoveItem(-1))
	assert.Len(t, l.Items, 2)
}

func TestRemoveItemKeepsOrder(t *testing.T) {
	l := NewLubricantLedger()
	l.AddItem()
	l.AddItem()
	_, _ = l.SetItemField(0, FieldItemName, "a")
	_, _ = l.SetItemField(1, FieldItemName, "b")
	_, _ = l.SetItemField(2, FieldItemName, "c")

	require.True(t, l.RemoveItem(1))
	require.Len(t, l.Items, 2)
	assert.Equal(t, "a", l.Items[0].Name)
	assert.Equal(t, "c", l.Items[1].Name)
}

func TestSetItemField(t *testing.T) {
	l := NewLubricantLedger()

	item, err := l.SetItemField(0, FieldItemCount, "3")
	require.NoError(t, err)
	assert.Equal(t, int64(3), item.Count)

	item, err = l.SetItemField(0, FieldItemUnitPrice, "120.50")
	require.NoError(t, err)
	assertDecimal(t, "361.5", item.LineAmount())

	item, err = l.SetItemField(0, FieldItemCount, "x")
	require.NoError(t, err)
	assert.Equal(t, int64(0), item.Count)

	item, err = l.SetItemField(0, FieldItemCount, "1e20")
	require.NoError(t, err)
	assert.Equal(t, int64(0), item.Count)

	item = LubricantItem{Count: math.MaxInt64, UnitPrice: dec("2")}
	assertDecimal(t, "18446744073709551614", item.LineAmount())

	_, err = l.SetItemField(2, FieldItemCount, "1")
	assert.ErrorIs(t, err, ErrUnknownField)

	_, err = l.SetItemField(0, LubricantItemField("brand"), "1")
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestTotalLitresDerivesAmount(t *testing.T) {
	l := NewLubricantLedger()

	require.NoError(t, l.SetAggregateField(FieldTotalLitres, "2.5"))
	assertDecimal(t, "825", l.TotalAmount)

	require.NoError(t, l.SetAggregateField(FieldTotalAmount, "800"))
	assertDecimal(t, "800", l.TotalAmount)
	assertDecimal(t, "2.5", l.TotalLitres)

	require.NoError(t, l.SetAggregateField(FieldWaste, "15"))
	assertDecimal(t, "800", l.TotalAmount)

	assert.ErrorIs(t, l.SetAggregateField(LubricantField("grease"), "1"), ErrUnknownField)
}

func TestLubricantAmountForLitres(t *testing.T) {
	assertDecimal(t, "330", LubricantAmountForLitres(dec("1")))
	assertDecimal(t, "0", LubricantAmountForLitres(dec("0")))
}

func TestLubricantRevenue(t *testing.T) {
	l := NewLubricantLedger()
	l.AddItem()
	_, _ = l.SetItemField(0, FieldItemCount, "2")
	_, _ = l.SetItemField(0, FieldItemUnitPrice, "100")
	_, _ = l.SetItemField(1, FieldItemCount, "1")
	_, _ = l.SetItemField(1, FieldItemUnitPrice, "50.25")
	_ = l.SetAggregateField(FieldTotalLitres, "1")
	_ = l.SetAggregateField(FieldDistilledWater, "20")
	_ = l.SetAggregateField(FieldWaste, "5")

	assertDecimal(t, "250.25", l.ItemsTotal())
	assertDecimal(t, "605.25", l.Revenue())
}
