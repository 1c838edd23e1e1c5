package motion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApproach(t *testing.T) {
	for _, tc := range []struct {
		name                string
		v, target, maxDelta float64
		want                float64
	}{
		{"moves up", 0, 10, 3, 3},
		{"moves down", 10, 0, 3, 7},
		{"clamps to target going up", 9, 10, 3, 10},
		{"clamps to target going down", 1, 0, 3, 0},
		{"already there", 5, 5, 3, 5},
		{"crosses zero", -2, 10, 5, 3},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Approach(tc.v, tc.target, tc.maxDelta))
		})
	}
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 5.0, Clamp(7, 0, 5))
	assert.Equal(t, 0.0, Clamp(-2, 0, 5))
	assert.Equal(t, 3.0, Clamp(3, 0, 5))
}
