package s3_test

import (
	"testing"

	"pms/infras/s3"

	"github.com/stretchr/testify/assert"
)

func TestObjectKeyFromURL(t *testing.T) {
	tests := []struct {
		name   string
		domain string
		url    string
		want   string
	}{
		{name: "under domain", domain: "https://cdn.hotel.test", url: "https://cdn.hotel.test/receipts/exp-1.pdf", want: "receipts/exp-1.pdf"},
		{name: "domain with slash", domain: "https://cdn.hotel.test/", url: "https://cdn.hotel.test/staff/a.png", want: "staff/a.png"},
		{name: "foreign url", domain: "https://cdn.hotel.test", url: "https://elsewhere.test/a.png", want: ""},
		{name: "no domain configured", domain: "", url: "https://cdn.hotel.test/a.png", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s3.ObjectKeyFromURL(tt.domain, tt.url))
		})
	}
}
