package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageClamp(t *testing.T) {
	tests := []struct {
		in   Page
		want Page
	}{
		{Page{Offset: 0, Limit: 10}, Page{Offset: 0, Limit: 10}},
		{Page{Offset: 5, Limit: 250}, Page{Offset: 5, Limit: MaxPageLimit}},
		{Page{Offset: -3, Limit: -1}, Page{Offset: 0, Limit: 0}},
		{Page{Offset: 7, Limit: 100}, Page{Offset: 7, Limit: 100}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.in.Clamp())
	}
}
