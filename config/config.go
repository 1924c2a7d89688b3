package config

import (
	"os"
	"strconv"
	"strings"
)

// Site is the centralized content the core consumes: property identity,
// contact numbers and the default pricing policy. Everything can be
// overridden from the environment.
type Site struct {
	Name     string
	Tagline  string
	Address  string
	Email    string
	Phone    string
	// WhatsApp destination: digits only, country code included, no leading +.
	WhatsAppNumber string

	Currency           string
	DefaultNightlyRate int
	GSTPercent         int
}

func LoadSite() Site {
	return Site{
		Name:               EnvOrDefault("SITE_NAME", "Sri Hari Home Stay"),
		Tagline:            EnvOrDefault("SITE_TAGLINE", "Your home away from home in Tirupati"),
		Address:            EnvOrDefault("SITE_ADDRESS", "Mangalam, Tirupati, Andhra Pradesh"),
		Email:              EnvOrDefault("SITE_EMAIL", "stay@srihari.com"),
		Phone:              EnvOrDefault("SITE_PHONE", "+91 8639058016"),
		WhatsAppNumber:     EnvOrDefault("SITE_WHATSAPP", "918639058016"),
		Currency:           EnvOrDefault("SITE_CURRENCY", "₹"),
		DefaultNightlyRate: envIntOrDefault("SITE_NIGHTLY_RATE", 4000),
		GSTPercent:         envIntOrDefault("SITE_GST_PERCENT", 5),
	}
}

func EnvOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func envIntOrDefault(key string, def int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}
