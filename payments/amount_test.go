package payments

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestToMinorUnits(t *testing.T) {
	assert.Equal(t, int64(500), ToMinorUnits(decimal.RequireFromString("5")))
	assert.Equal(t, int64(2999), ToMinorUnits(decimal.RequireFromString("29.99")))
	assert.Equal(t, int64(0), ToMinorUnits(decimal.Zero))
	// Half cents round away from zero.
	assert.Equal(t, int64(501), ToMinorUnits(decimal.RequireFromString("5.005")))
	assert.Equal(t, int64(-501), ToMinorUnits(decimal.RequireFromString("-5.005")))
}

func TestParseDisplayPrice(t *testing.T) {
	price, err := ParseDisplayPrice("$5")
	assert.NoError(t, err)
	assert.True(t, price.Equal(decimal.NewFromInt(5)))

	price, err = ParseDisplayPrice("$29.99")
	assert.NoError(t, err)
	assert.True(t, price.Equal(decimal.RequireFromString("29.99")))

	price, err = ParseDisplayPrice(" $0 ")
	assert.NoError(t, err)
	assert.True(t, price.IsZero())
}

func TestParseDisplayPrice_Invalid(t *testing.T) {
	_, err := ParseDisplayPrice("")
	assert.Error(t, err)

	_, err = ParseDisplayPrice("$")
	assert.Error(t, err)

	_, err = ParseDisplayPrice("$abc")
	assert.Error(t, err)

	_, err = ParseDisplayPrice("$-5")
	assert.Error(t, err)
}
