package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrder_AmountOrZero(t *testing.T) {
	assert.Equal(t, int64(0), Order{}.AmountOrZero())

	amount := int64(5000)
	assert.Equal(t, int64(5000), Order{Amount: &amount}.AmountOrZero())
}

func TestOrder_Summary(t *testing.T) {
	assert.Equal(t, "CRM система", Order{ProductName: "CRM система", Description: "long"}.Summary())

	desc := "Нужен сайт для пекарни с онлайн-заказами, доставкой и личным кабинетом"
	got := Order{Description: desc}.Summary()
	assert.Equal(t, 50, len([]rune(got)))
}

func TestExpectationRoundTrip(t *testing.T) {
	for _, e := range []Expectation{ExpectNone, ExpectOrder, ExpectSupport} {
		assert.Equal(t, e, ParseExpectation(e.String()))
	}
	assert.Equal(t, ExpectNone, ParseExpectation("garbage"))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "абв", Truncate("абв", 3, "..."))
	assert.Equal(t, "аб...", Truncate("абв", 2, "..."))
}
