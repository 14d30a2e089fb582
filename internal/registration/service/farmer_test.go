package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "farmgate/pkg/domain-errors"
)

func TestNormalizePhone(t *testing.T) {
	svc := &Service{countryDialPrefix: "91"}

	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "formatted with country prefix", input: "+91 98765 43210", want: "9876543210"},
		{name: "bare 10 digits", input: "9876543210", want: "9876543210"},
		{name: "dashes and spaces", input: "98765-432 10", want: "9876543210"},
		{name: "prefix without plus", input: "919876543210", want: "9876543210"},
		{name: "empty means no phone", input: "", want: ""},
		{name: "punctuation only means no phone", input: "+- ()", want: ""},
		{name: "nine digits fails", input: "987654321", wantErr: true},
		{name: "eleven digits fails", input: "98765432109", wantErr: true},
		{name: "twelve digits without prefix fails", input: "129876543210", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.normalizePhone(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizePhoneCustomPrefix(t *testing.T) {
	svc := &Service{countryDialPrefix: "44"}

	got, err := svc.normalizePhone("+44 7911 123456")
	require.NoError(t, err)
	assert.Equal(t, "7911123456", got)
}
