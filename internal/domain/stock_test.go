package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanAdd(t *testing.T) {
	tests := []struct {
		name       string
		current    int
		requested  int
		available  int
		wantOK     bool
		wantReason Reason
		wantMax    int
	}{
		{
			name:      "empty cart within stock",
			current:   0,
			requested: 1,
			available: 5,
			wantOK:    true,
			wantMax:   5,
		},
		{
			name:      "allowed is capped by max quantity",
			current:   0,
			requested: 2,
			available: 20,
			wantOK:    true,
			wantMax:   10,
		},
		{
			name:      "allowed accounts for current quantity",
			current:   3,
			requested: 2,
			available: 20,
			wantOK:    true,
			wantMax:   7,
		},
		{
			name:       "out of stock",
			current:    0,
			requested:  1,
			available:  0,
			wantReason: ReasonOutOfStock,
			wantMax:    0,
		},
		{
			name:       "out of stock reported before bad minimum",
			current:    0,
			requested:  0,
			available:  0,
			wantReason: ReasonOutOfStock,
			wantMax:    0,
		},
		{
			name:       "below minimum quantity",
			current:    0,
			requested:  0,
			available:  5,
			wantReason: ReasonBelowMinimum,
			wantMax:    5,
		},
		{
			name:       "negative requested quantity",
			current:    2,
			requested:  -1,
			available:  5,
			wantReason: ReasonBelowMinimum,
			wantMax:    5,
		},
		{
			name:       "cap exceeded even with plenty of stock",
			current:    0,
			requested:  11,
			available:  20,
			wantReason: ReasonCapExceeded,
			wantMax:    10,
		},
		{
			name:       "cap exceeded by merge",
			current:    8,
			requested:  3,
			available:  20,
			wantReason: ReasonCapExceeded,
			wantMax:    2,
		},
		{
			name:       "cap checked before stock ceiling",
			current:    8,
			requested:  3,
			available:  9,
			wantReason: ReasonCapExceeded,
			wantMax:    2,
		},
		{
			name:       "insufficient stock",
			current:    2,
			requested:  1,
			available:  2,
			wantReason: ReasonInsufficientStock,
			wantMax:    0,
		},
		{
			name:       "insufficient stock on first add",
			current:    0,
			requested:  4,
			available:  3,
			wantReason: ReasonInsufficientStock,
			wantMax:    3,
		},
		{
			name:      "exactly at stock ceiling",
			current:   1,
			requested: 2,
			available: 3,
			wantOK:    true,
			wantMax:   2,
		},
		{
			name:      "exactly at cap",
			current:   5,
			requested: 5,
			available: 15,
			wantOK:    true,
			wantMax:   5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CanAdd(tt.current, tt.requested, tt.available)

			assert.Equal(t, tt.wantOK, got.OK)
			assert.Equal(t, tt.wantMax, got.MaxAllowed)
			if !tt.wantOK {
				assert.Equal(t, tt.wantReason, got.Reason)
				assert.NotEmpty(t, got.Message)
			}
		})
	}
}
