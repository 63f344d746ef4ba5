package unit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"kabataan-backend/internal/service/sms"
)

func TestNormalizeE164(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "local 09 format", input: "09171234567", want: "+639171234567"},
		{name: "already e164", input: "+639171234567", want: "+639171234567"},
		{name: "63 prefix without plus", input: "639171234567", want: "+639171234567"},
		{name: "spaces and dashes stripped", input: "0917-123-4567", want: "+639171234567"},
		{name: "too short", input: "0917123", wantErr: true},
		{name: "landline", input: "028881234", wantErr: true},
		{name: "foreign number", input: "+14155551234", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := sms.NormalizeE164(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, sms.ErrInvalidNumber)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeGateway(t *testing.T) {
	got, err := sms.NormalizeGateway("09171234567")
	assert.NoError(t, err)
	assert.Equal(t, "639171234567", got)

	_, err = sms.NormalizeGateway("not a number")
	assert.ErrorIs(t, err, sms.ErrInvalidNumber)
}
