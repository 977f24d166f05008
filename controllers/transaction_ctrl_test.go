package controllers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		raw      string
		want     string
		fieldErr bool
	}{
		{raw: "50.00", want: "50.00"},
		{raw: "0.01", want: "0.01"},
		{raw: "7", want: "7.00"},
		{raw: "99999999.99", want: "99999999.99"},
		{raw: "0", fieldErr: true},
		{raw: "0.00", fieldErr: true},
		{raw: "-10.00", fieldErr: true},
		{raw: "10.001", fieldErr: true},
		{raw: "100000000.00", fieldErr: true},
		{raw: "ten", fieldErr: true},
		{raw: "", fieldErr: true},
	}

	for _, tt := range tests {
		amount, fieldErr := parseAmount(tt.raw)
		if tt.fieldErr {
			assert.NotEmpty(t, fieldErr, "amount %q should be rejected", tt.raw)
			continue
		}
		assert.Empty(t, fieldErr, "amount %q should be accepted", tt.raw)
		assert.Equal(t, tt.want, amount.StringFixed(2))
	}
}
