package config

import (
	"flag"
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{name: "all flags", args: []string{"cmd",
			"-a", "127.0.0.1:9090", "-r", "postgres", "-f", "/var/lib/inkwell",
			"-q", "local.db", "-d", "dsn", "-s", "secret",
			"-t", "12", "-w", "10",
			"-u", "user", "-p", "password", "-b", "bucket", "-g", "us-west-1", "-e", "http://endpoint",
		}, expectPanic: false,
			expected: &Config{
				Addr:           "127.0.0.1:9090",
				StoreDriver:    "postgres",
				DataDir:        "/var/lib/inkwell",
				SQLitePath:     "local.db",
				DatabaseDSN:    "dsn",
				SecretKey:      "secret",
				SessionTTL:     12 * time.Hour,
				CacheWindow:    10 * time.Second,
				S3RootUser:     "user",
				S3RootPassword: "password",
				S3Bucket:       "bucket",
				S3Region:       "us-west-1",
				S3BaseEndpoint: "http://endpoint",
			}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.PanicOnError)

			oldArgs := os.Args
			defer func() { os.Args = oldArgs }()
			os.Args = tt.args

			config := &Config{}

			if !tt.expectPanic {
				require.NotPanics(t, func() { parseFlags(config) })
				assert.Empty(t, cmp.Diff(config, tt.expected))
			} else {
				require.Panics(t, func() { parseFlags(config) })
			}
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	c := &Config{}
	c.LoadDefaults()

	assert.Equal(t, ":8080", c.Addr)
	assert.Equal(t, DriverFile, c.StoreDriver)
	assert.Equal(t, 24*time.Hour, c.SessionTTL)
	assert.Equal(t, 5*time.Second, c.CacheWindow)
	assert.Equal(t, 100, c.MessageCap)
	assert.Equal(t, 10, c.HistoryCap)
	assert.Equal(t, 1000, c.MaxMessageLen)
	assert.Equal(t, 1000, c.MaxContentLen)
}
