package fedex

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConvertWeight_Imperial(t *testing.T) {
	for _, cc := range []string{"US", "LR", "MM"} {
		w := ConvertWeight(5, cc)
		assert.Equal(t, "LB", w.Units, cc)
		assert.Equal(t, decimal(5), w.Value, cc)
	}
}

func TestConvertWeight_Metric(t *testing.T) {
	pounds := 5.0
	for _, cc := range []string{"CA", "GB", "DE", "MX", ""} {
		w := ConvertWeight(pounds, cc)
		assert.Equal(t, "KG", w.Units, cc)
		assert.Equal(t, decimal(pounds/poundsPerKilogram), w.Value, cc)
	}
	assert.Equal(t, "2.2727272727272725", formatDecimal(float64(ConvertWeight(pounds, "CA").Value)))
}

func TestFormatDecimal(t *testing.T) {
	tests := map[float64]string{
		5:    "5.0",
		0:    "0.0",
		12.5: "12.5",
		100:  "100.0",
	}
	for in, want := range tests {
		assert.Equal(t, want, formatDecimal(in))
	}
}
