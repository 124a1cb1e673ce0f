package config

import (
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// Analytics holds the settings read by the analytics endpoints and the
// report CLI.
type Analytics struct {
	Port           string
	AllowedOrigins []string
	CacheTTL       time.Duration
	Locale         string
	Currency       string
	PDFEngine      string
}

// LoadAnalytics reads the analytics settings from the environment.
func LoadAnalytics() Analytics {
	ttl := 5 * time.Minute
	if raw := os.Getenv("ANALYTICS_CACHE_TTL"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil || parsed < 0 {
			logrus.Warnf("⚠️ invalid ANALYTICS_CACHE_TTL %q, using %s", raw, ttl)
		} else {
			ttl = parsed
		}
	}

	origins := []string{"http://localhost:3000", "http://localhost:3001"}
	if raw := os.Getenv("ALLOWED_ORIGINS"); raw != "" {
		origins = origins[:0]
		for _, o := range strings.Split(raw, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
	}

	return Analytics{
		Port:           getEnv("PORT", "8081"),
		AllowedOrigins: origins,
		CacheTTL:       ttl,
		Locale:         getEnv("ANALYTICS_LOCALE", "en"),
		Currency:       strings.ToUpper(getEnv("ANALYTICS_CURRENCY", "USD")),
		PDFEngine:      getEnv("REPORT_PDF_ENGINE", "minimal"),
	}
}

// JWTSecret returns JWT_SECRET. Outside production a development secret is
// used when it is unset.
func JWTSecret() string {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		if IsProduction() {
			logrus.Fatal("❌ JWT_SECRET environment variable not set")
		}
		logrus.Warn("⚠️ JWT_SECRET not set, using development secret")
		secret = "dev-secret-key-change-in-production"
	}
	return secret
}
