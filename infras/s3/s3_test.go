package s3

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"resort/config"
)

func TestGetObjectNameFromURL(t *testing.T) {
	cfg := &config.Config{}
	cfg.External.S3.PublicDomain = "https://cdn.example.com/"
	cfg.External.S3.APIEndpoint = "https://storage.example.com"
	cfg.External.S3.BucketName = "resort"

	svc := &s3Impl{Config: cfg}

	tests := []struct {
		name      string
		directory string
		url       string
		want      string
	}{
		{name: "public domain", directory: "accommodation", url: "https://cdn.example.com/accommodation/a.png", want: "a.png"},
		{name: "api endpoint", directory: "packages", url: "https://storage.example.com/resort/packages/b.jpg", want: "b.jpg"},
		{name: "other directory", directory: "packages", url: "https://cdn.example.com/accommodation/a.png", want: ""},
		{name: "foreign host", directory: "accommodation", url: "https://elsewhere.example.com/accommodation/a.png", want: ""},
		{name: "directory only", directory: "accommodation", url: "https://cdn.example.com/accommodation/", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, svc.GetObjectNameFromURL(tt.directory, tt.url))
		})
	}
}
