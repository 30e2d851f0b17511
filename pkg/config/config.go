package config

import (
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/spf13/viper"
)

var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds all application configuration values
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`
	StyleVariant      string `mapstructure:"STYLE_VARIANT"`
	CORSOrigins       string `mapstructure:"CORS_ORIGINS"`
	TrustedProxies    string `mapstructure:"TRUSTED_PROXIES"`

	// Lead submission.
	SubmissionMode string        `mapstructure:"SUBMISSION_MODE"`
	ConciergeEmail string        `mapstructure:"CONCIERGE_EMAIL"`
	LeadSource     string        `mapstructure:"LEAD_SOURCE"`
	SubmitTimeout  time.Duration `mapstructure:"SUBMIT_TIMEOUT"`

	FormspreeEndpoint string `mapstructure:"FORMSPREE_ENDPOINT"`
	WebhookEndpoint   string `mapstructure:"WEBHOOK_ENDPOINT"`

	HubSpotBaseURL  string `mapstructure:"HUBSPOT_BASE_URL"`
	HubSpotPortalID string `mapstructure:"HUBSPOT_PORTAL_ID"`
	HubSpotFormGUID string `mapstructure:"HUBSPOT_FORM_GUID"`
	HubSpotPageName string `mapstructure:"HUBSPOT_PAGE_NAME"`

	AirtableBaseURL    string `mapstructure:"AIRTABLE_BASE_URL"`
	AirtableAPIKey     string `mapstructure:"AIRTABLE_API_KEY"`
	AirtableBaseID     string `mapstructure:"AIRTABLE_BASE_ID"`
	AirtableLeadsTable string `mapstructure:"AIRTABLE_LEADS_TABLE"`
}

var defaults = map[string]any{
	"APP_PORT":             "8080",
	"ENV":                  "development",
	"LOG_LEVEL":            "info",
	"MAX_REQUESTS_PER_MIN": 20,
	"STYLE_VARIANT":        "inline",
	"CORS_ORIGINS":         "*",
	"TRUSTED_PROXIES":      "",
	"SUBMISSION_MODE":      "mailto",
	"CONCIERGE_EMAIL":      "concierge@huntluxuryinvestments.com",
	"LEAD_SOURCE":          "HLI Landing",
	"SUBMIT_TIMEOUT":       "10s",
	"FORMSPREE_ENDPOINT":   "",
	"WEBHOOK_ENDPOINT":     "",
	"HUBSPOT_BASE_URL":     "https://api.hsforms.com",
	"HUBSPOT_PORTAL_ID":    "",
	"HUBSPOT_FORM_GUID":    "",
	"HUBSPOT_PAGE_NAME":    "Hunt Luxury Investments Landing",
	"AIRTABLE_BASE_URL":    "https://api.airtable.com",
	"AIRTABLE_API_KEY":     "",
	"AIRTABLE_BASE_ID":     "",
	"AIRTABLE_LEADS_TABLE": "",
}

// LoadConfig reads configuration from an optional config.yaml in the given
// directories (defaulting to "." and "./config"), overlaid with environment
// variables.
func LoadConfig(paths ...string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if len(paths) == 0 {
		paths = []string{".", "./config"}
	}
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	v.AutomaticEnv()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}
	cfg.SubmissionMode = strings.ToLower(strings.TrimSpace(cfg.SubmissionMode))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that the selected submission mode has what it needs.
func (c *Config) Validate() error {
	switch c.SubmissionMode {
	case "mailto":
		if c.ConciergeEmail == "" {
			return fmt.Errorf("%w: CONCIERGE_EMAIL is required for mailto mode", ErrInvalidConfig)
		}
	case "formspree":
		if c.FormspreeEndpoint == "" {
			return fmt.Errorf("%w: FORMSPREE_ENDPOINT is required for formspree mode", ErrInvalidConfig)
		}
	case "webhook":
		if c.WebhookEndpoint == "" {
			return fmt.Errorf("%w: WEBHOOK_ENDPOINT is required for webhook mode", ErrInvalidConfig)
		}
	case "hubspot":
		if c.HubSpotPortalID == "" || c.HubSpotFormGUID == "" {
			return fmt.Errorf("%w: HUBSPOT_PORTAL_ID and HUBSPOT_FORM_GUID are required for hubspot mode", ErrInvalidConfig)
		}
	case "airtable":
		if c.AirtableAPIKey == "" || c.AirtableBaseID == "" || c.AirtableLeadsTable == "" {
			return fmt.Errorf("%w: AIRTABLE_API_KEY, AIRTABLE_BASE_ID and AIRTABLE_LEADS_TABLE are required for airtable mode", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown SUBMISSION_MODE %q", ErrInvalidConfig, c.SubmissionMode)
	}

	switch c.StyleVariant {
	case "inline", "linked":
	default:
		return fmt.Errorf("%w: unknown STYLE_VARIANT %q", ErrInvalidConfig, c.StyleVariant)
	}

	if c.MaxRequestsPerMin <= 0 {
		return fmt.Errorf("%w: MAX_REQUESTS_PER_MIN must be positive", ErrInvalidConfig)
	}
	if c.SubmitTimeout <= 0 {
		return fmt.Errorf("%w: SUBMIT_TIMEOUT must be positive", ErrInvalidConfig)
	}
	for _, o := range c.AllowedOrigins() {
		if o != "*" && !strings.HasPrefix(o, "http://") && !strings.HasPrefix(o, "https://") {
			return fmt.Errorf("%w: CORS origin %q must be * or start with http:// or https://", ErrInvalidConfig, o)
		}
	}
	for _, p := range c.TrustedProxyList() {
		if net.ParseIP(p) == nil {
			if _, _, err := net.ParseCIDR(p); err != nil {
				return fmt.Errorf("%w: TRUSTED_PROXIES entry %q is not an IP or CIDR", ErrInvalidConfig, p)
			}
		}
	}
	return nil
}

// IsProduction checks if the environment is production
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// AllowedOrigins splits CORS_ORIGINS on commas.
func (c *Config) AllowedOrigins() []string {
	return splitList(c.CORSOrigins)
}

// TrustedProxyList splits TRUSTED_PROXIES on commas. An empty list means no
// proxy is trusted and the client IP is always the connection's address.
func (c *Config) TrustedProxyList() []string {
	return splitList(c.TrustedProxies)
}

func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
