package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance(t *testing.T) {
	tests := []struct {
		a        string
		b        string
		expected int
	}{
		{"", "", 0},
		{"hello", "hello", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"a", "b", 1},
		{"a", "ab", 1},
		{"kitten", "sitting", 3},
		{"saturday", "sunday", 3},
		{"ABC", "abc", 3},
		// Runes, not bytes.
		{"straße", "strasse", 2},
		{"über", "uber", 1},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.expected, Distance(tt.a, tt.b))
			assert.Equal(t, tt.expected, Distance(tt.b, tt.a), "symmetry")
		})
	}
}

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"OrderID", "orderid"},
		{"order_id", "orderid"},
		{"order-id", "orderid"},
		{"@version", "version"},
		{"a.b c", "abc"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeName(tt.input))
		})
	}
}

func TestSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, Similarity("", ""), 1e-9)
	assert.InDelta(t, 1.0, Similarity("Order_ID", "orderId"), 1e-9)
	assert.InDelta(t, 0.0, Similarity("abc", "xyz"), 1e-9)
	assert.InDelta(t, 0.8, Similarity("total", "totel"), 1e-9)
}

func TestSuggest(t *testing.T) {
	candidates := []string{"customerName", "customerId", "orderDate", "total", "customerName"}

	assert.Equal(t, []string{"customerName", "customerId"}, Suggest("customer_nam", candidates, 0))
	assert.Equal(t, []string{"customerName"}, Suggest("customer_nam", candidates, 1))
	assert.Equal(t, []string{"total"}, Suggest("totl", candidates, 3))
	assert.Empty(t, Suggest("zzz", candidates, 3))
}
