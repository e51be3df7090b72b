package sizing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimateSunHours(t *testing.T) {
	for _, tc := range []struct {
		latitude float64
		expected float64
	}{
		{0, 6.0},
		{10, 6.0},
		{-19.9, 6.0},
		{20, 5.0},
		{-35, 5.0},
		{39.99, 5.0},
		{40, 4.0},
		{-52.5, 4.0},
		{89, 4.0},
	} {
		assert.Equal(t, tc.expected, EstimateSunHours(tc.latitude), "latitude=%v", tc.latitude)
	}
}
