package config

import (
	"github.com/google/uuid"
	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Logger    LoggerConfig
	Audit     AuditConfig
	Dashboard DashboardConfig
	Demo      DemoConfig
	NATS      NATSConfig
}

type ServerConfig struct {
	Host string
	Port int
}

type LoggerConfig struct {
	Level  string
	Format string
}

type AuditConfig struct {
	// DemoFairnessScore is applied to every completed audit until a real
	// scorer is plugged into the tracker seam.
	DemoFairnessScore float64
}

type DashboardConfig struct {
	// RiskThreshold is the fairness score under which a completed audit
	// counts as a risk alert.
	RiskThreshold float64
}

type DemoConfig struct {
	OwnerID  uuid.UUID
	SeedData bool
}

type NATSConfig struct {
	Enabled       bool
	URL           string
	SubjectPrefix string
}

const defaultDemoOwnerID = "a81bc81b-dead-4e5d-abff-90865d1e13b1"

func Load() (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", 8080)
	v.SetDefault("LOGGER_LEVEL", "info")
	v.SetDefault("LOGGER_FORMAT", "json")
	v.SetDefault("AUDIT_DEMO_FAIRNESS_SCORE", 0.82)
	v.SetDefault("DASHBOARD_RISK_THRESHOLD", 0.8)
	v.SetDefault("DEMO_OWNER_ID", defaultDemoOwnerID)
	v.SetDefault("SEED_DEMO_DATA", true)
	v.SetDefault("NATS_ENABLED", false)
	v.SetDefault("NATS_URL", "nats://localhost:4222")
	v.SetDefault("NATS_SUBJECT_PREFIX", "biasaudit")

	// Env
	v.AutomaticEnv()

	ownerID, err := uuid.Parse(v.GetString("DEMO_OWNER_ID"))
	if err != nil {
		ownerID = uuid.MustParse(defaultDemoOwnerID)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: v.GetString("SERVER_HOST"),
			Port: v.GetInt("SERVER_PORT"),
		},
		Logger: LoggerConfig{
			Level:  v.GetString("LOGGER_LEVEL"),
			Format: v.GetString("LOGGER_FORMAT"),
		},
		Audit: AuditConfig{
			DemoFairnessScore: v.GetFloat64("AUDIT_DEMO_FAIRNESS_SCORE"),
		},
		Dashboard: DashboardConfig{
			RiskThreshold: v.GetFloat64("DASHBOARD_RISK_THRESHOLD"),
		},
		Demo: DemoConfig{
			OwnerID:  ownerID,
			SeedData: v.GetBool("SEED_DEMO_DATA"),
		},
		NATS: NATSConfig{
			Enabled:       v.GetBool("NATS_ENABLED"),
			URL:           v.GetString("NATS_URL"),
			SubjectPrefix: v.GetString("NATS_SUBJECT_PREFIX"),
		},
	}

	return cfg, nil
}
