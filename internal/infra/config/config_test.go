package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadFromFileWithEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
http:
  address: ":9090"
  cors:
    allowedOrigins: ["https://app.example.com"]
upstream:
  baseUrl: "https://faq.example.com"
  faqEndpoint: "/v1/faqs"
  timeout: 5s
`), 0o600))

	t.Setenv("CONFIG_PATH", path)
	t.Setenv("UPSTREAM_TIMEOUT", "2s")
	t.Setenv("HTTP_RATE_LIMIT_ENABLED", "false")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, ":9090", cfg.HTTP.Address)
	require.Equal(t, []string{"https://app.example.com"}, cfg.HTTP.CORS.AllowedOrigins)
	require.Equal(t, "https://faq.example.com", cfg.Upstream.BaseURL)
	require.Equal(t, "/v1/faqs", cfg.Upstream.FAQEndpoint)
	require.Equal(t, 2*time.Second, cfg.Upstream.Timeout)
	require.False(t, cfg.HTTP.RateLimit.Enabled)
}

func TestLoadRequiresUpstreamBaseURL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("http:\n  address: \":8080\"\n"), 0o600))
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("UPSTREAM_BASE_URL", "")

	_, err := Load()
	require.ErrorContains(t, err, "upstream.baseUrl")
}

func TestApplyEnvOverridesCORSList(t *testing.T) {
	t.Setenv("HTTP_CORS_ALLOWED_ORIGINS", " https://a.example.com , ,https://b.example.com")
	t.Setenv("HTTP_ADDRESS", "")
	t.Setenv("PORT", "7000")

	cfg := defaultConfig()
	applyEnvOverrides(cfg)

	require.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.HTTP.CORS.AllowedOrigins)
	require.Equal(t, ":7000", cfg.HTTP.Address)
}

func TestValidate(t *testing.T) {
	cfg := defaultConfig()
	cfg.Upstream.BaseURL = "https://faq.example.com"
	require.NoError(t, cfg.Validate())

	cfg.Upstream.BaseURL = "faq.example.com"
	require.Error(t, cfg.Validate())

	cfg.Upstream.BaseURL = "https://faq.example.com"
	cfg.HTTP.RateLimit.Burst = 0
	require.Error(t, cfg.Validate())
}
