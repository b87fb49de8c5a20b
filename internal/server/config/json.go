package config

import (
	"encoding/json"
	"os"

	"inkwell/internal/flagx"
	"inkwell/internal/timex"
)

// JsonConfig is the JSON-file shape of Config. Duration fields use
// timex.Duration so both "24h" strings and integer nanoseconds parse.
// It is only an intermediate DTO; values are copied into Config.
type JsonConfig struct {
	Addr        string `json:"addr"`
	StoreDriver string `json:"store_driver"`
	DataDir     string `json:"data_dir"`
	SQLitePath  string `json:"sqlite_path"`
	DatabaseDSN string `json:"database_dsn"`

	SecretKey   string         `json:"secret_key"`
	SessionTTL  timex.Duration `json:"session_ttl"`
	CacheWindow timex.Duration `json:"cache_window"`

	MessageCap int `json:"message_cap"`
	PostCap    int `json:"post_cap"`
	HistoryCap int `json:"history_cap"`

	MaxMessageLen int `json:"max_message_len"`
	MaxTitleLen   int `json:"max_title_len"`
	MaxPostLen    int `json:"max_post_len"`
	MaxContentLen int `json:"max_content_len"`

	S3RootUser     string `json:"s3_root_user"`
	S3RootPassword string `json:"s3_root_password"`
	S3Bucket       string `json:"s3_bucket"`
	S3Region       string `json:"s3_region"`
	S3BaseEndpoint string `json:"s3_base_endpoint"`
}

// parseJson overlays configuration values from a JSON file whose path is
// given via the -c or -config flags. Without the flag nothing is loaded.
// Unreadable or invalid files panic: a requested config file that cannot be
// honored should stop startup.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.Addr != "" {
		config.Addr = c.Addr
	}
	if c.StoreDriver != "" {
		config.StoreDriver = c.StoreDriver
	}
	if c.DataDir != "" {
		config.DataDir = c.DataDir
	}
	if c.SQLitePath != "" {
		config.SQLitePath = c.SQLitePath
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.SecretKey != "" {
		config.SecretKey = c.SecretKey
	}
	if c.SessionTTL.Duration != 0 {
		config.SessionTTL = c.SessionTTL.Duration
	}
	if c.CacheWindow.Duration != 0 {
		config.CacheWindow = c.CacheWindow.Duration
	}
	if c.MessageCap != 0 {
		config.MessageCap = c.MessageCap
	}
	if c.PostCap != 0 {
		config.PostCap = c.PostCap
	}
	if c.HistoryCap != 0 {
		config.HistoryCap = c.HistoryCap
	}
	if c.MaxMessageLen != 0 {
		config.MaxMessageLen = c.MaxMessageLen
	}
	if c.MaxTitleLen != 0 {
		config.MaxTitleLen = c.MaxTitleLen
	}
	if c.MaxPostLen != 0 {
		config.MaxPostLen = c.MaxPostLen
	}
	if c.MaxContentLen != 0 {
		config.MaxContentLen = c.MaxContentLen
	}
	if c.S3RootUser != "" {
		config.S3RootUser = c.S3RootUser
	}
	if c.S3RootPassword != "" {
		config.S3RootPassword = c.S3RootPassword
	}
	if c.S3Bucket != "" {
		config.S3Bucket = c.S3Bucket
	}
	if c.S3Region != "" {
		config.S3Region = c.S3Region
	}
	if c.S3BaseEndpoint != "" {
		config.S3BaseEndpoint = c.S3BaseEndpoint
	}
}
