package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBTC_PlainDivision(t *testing.T) {
	assert.Equal(t, 0.007, BTC(700000))
	assert.Equal(t, 1.0, BTC(100_000_000))
	assert.Equal(t, 0.00000001, BTC(1))
	assert.Equal(t, 0.0, BTC(0))
}

func TestBTCString(t *testing.T) {
	assert.Equal(t, "0.007", BTCString(BTC(700000)))
	assert.Equal(t, "0", BTCString(0))
}

func TestPrice(t *testing.T) {
	assert.Contains(t, Price(100, "USD"), "100")
	assert.Regexp(t, `1,?234\.5`, Price(1234.5, "EUR"))
	assert.Equal(t, "12.50 XYZ1", Price(12.5, "xyz1"))
}

func TestDate(t *testing.T) {
	d := time.Date(2024, time.March, 5, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, "March 5, 2024", Date(d))
	assert.Equal(t, "", Date(time.Time{}))
	assert.Equal(t, "", DatePtr(nil))
	assert.Equal(t, "March 5, 2024", DatePtr(&d))
}

func TestLines(t *testing.T) {
	assert.Equal(t, "1 Main St<br>Springfield", Lines([]string{"1 Main St", "Springfield"}))
	assert.Equal(t, "", Lines(nil))
}

func TestLines_Escapes(t *testing.T) {
	assert.Equal(t, "a &amp; b<br>&lt;c&gt;", Lines([]string{"a & b", "<c>"}))
}
