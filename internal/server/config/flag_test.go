package config

import (
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	os.Args = []string{"server",
		"-c", "ignored.json",
		"-a", "127.0.0.1:9090", "-d", "postgres://db", "-s", "s3cret",
		"-t", "90s", "-r", "48h", "-w", "3s",
		"-u", "minio", "-p", "minio123", "-b", "img", "-g", "eu-west-1", "-e", "http://minio:9000",
		"-l", "debug",
	}

	var got Config
	got.LoadDefaults()
	require.NotPanics(t, func() { parseFlags(&got) })

	want := Config{
		EndpointAddr:                 "127.0.0.1:9090",
		DatabaseDSN:                  "postgres://db",
		SecretKey:                    "s3cret",
		AccessTokenValidityDuration:  90 * time.Second,
		RefreshTokenValidityDuration: 48 * time.Hour,
		S3RootUser:                   "minio",
		S3RootPassword:               "minio123",
		S3Bucket:                     "img",
		S3Region:                     "eu-west-1",
		S3BaseEndpoint:               "http://minio:9000",
		ShutdownTimeout:              3 * time.Second,
		LogLevel:                     "debug",
	}
	assert.Empty(t, cmp.Diff(want, got))
}

func TestParseFlags_KeepsUnsetValues(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"server", "-a", ":1"}

	var got Config
	got.LoadDefaults()
	parseFlags(&got)

	assert.Equal(t, ":1", got.EndpointAddr)
	assert.Equal(t, 15*time.Minute, got.AccessTokenValidityDuration)
	assert.Equal(t, "info", got.LogLevel)
}

func TestParseFlags_BadDuration(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"server", "-t", "15"}

	require.Panics(t, func() { parseFlags(&Config{}) })
}
