package s3

import (
	"context"
	"cowork/config"
	"cowork/infras/otel/mocks"
	"errors"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
)

type fakePutter struct {
	input *s3.PutObjectInput
	body  []byte
	err   error
}

func (f *fakePutter) PutObject(_ context.Context, params *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.input = params
	f.body, _ = io.ReadAll(params.Body)

	return &s3.PutObjectOutput{}, f.err
}

func TestUploadFileBytes(t *testing.T) {
	tests := []struct {
		name         string
		publicDomain string
		err          error
		wantURL      string
		wantErr      bool
	}{
		{
			name:         "public domain",
			publicDomain: "https://cdn.example.com/",
			wantURL:      "https://cdn.example.com/reports/guests/2026-10.csv",
		},
		{
			name:    "path style fallback",
			wantURL: "https://s3.example.com/cowork/reports/guests/2026-10.csv",
		},
		{
			name:    "upload failure",
			err:     errors.New("access denied"),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{}
			cfg.External.S3.BucketName = "cowork"
			cfg.External.S3.APIEndpoint = "https://s3.example.com"
			cfg.External.S3.PublicDomain = tt.publicDomain

			putter := &fakePutter{err: tt.err}
			svc := newWithClient(putter, cfg, mocks.NewOtel())

			url, err := svc.UploadFileBytes(context.Background(), "reports/guests", "2026-10.csv", "text/csv", []byte("a,b\n"))

			if tt.wantErr {
				assert.Error(t, err)
				assert.Empty(t, url)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantURL, url)
			assert.Equal(t, "cowork", *putter.input.Bucket)
			assert.Equal(t, "reports/guests/2026-10.csv", *putter.input.Key)
			assert.Equal(t, "text/csv", *putter.input.ContentType)
			assert.Equal(t, []byte("a,b\n"), putter.body)
		})
	}
}
