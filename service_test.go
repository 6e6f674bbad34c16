package extsvc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseService(t *testing.T) {
	tests := []struct {
		name   string
		expect Service
		ok     bool
	}{
		{"S3", S3, true},
		{"SMTP", SMTP, true},
		{"SMS", SMS, true},
		{"NOTIFICATION", Notification, true},
		{"s3", 0, false},
		{"Notification", 0, false},
		{"SMS ", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, ok := ParseService(tt.name)
			assert.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, tt.expect, svc)
				assert.Equal(t, tt.name, svc.String())
			}
		})
	}
}

func TestServices(t *testing.T) {
	assert.Equal(t, []Service{S3, SMTP, SMS, Notification}, Services())
	for _, svc := range Services() {
		assert.True(t, svc.Valid())
	}
	assert.False(t, Service(-1).Valid())
	assert.False(t, numServices.Valid())
	assert.Equal(t, "Service(9)", Service(9).String())
}
