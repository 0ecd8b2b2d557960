package config

import (
	"fmt"
	"os"
	"strings"
	"unicode"

	"taller_xpto/internal/domain/entities"
	"taller_xpto/internal/domain/lifecycle"

	"github.com/spf13/viper"
)

const (
	StoreDynamoDB = "dynamodb"
	StoreMemory   = "memory"
)

type Config struct {
	Port        string
	Environment string
	StoreDriver string
	Log         LogConfig
	AWS         AWSConfig
	Tables      TablesConfig
	Payments    PaymentsConfig
	// PhaseRoles replaces the allowed roles of the listed phases in the default policy table.
	PhaseRoles map[entities.Phase][]entities.Role
}

type LogConfig struct {
	Level  string
	Format string
}

type AWSConfig struct {
	Region           string
	AccessKeyID      string
	SecretAccessKey  string
	DynamoDBEndpoint string
}

type TablesConfig struct {
	Orders              string
	Catalog             string
	Suppliers           string
	LostSales           string
	AuthorizationAudits string
	InvoiceLineItems    string
	Sequences           string
	DeliveryPayments    string
}

type PaymentsConfig struct {
	AccessToken     string
	Mock            bool
	TestPayerEmail  string
	TestPayerUserID string
}

func Load() (*Config, error) {
	viper.SetConfigType("env")
	viper.SetConfigName(".env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")
	viper.AddConfigPath("../..")

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_FORMAT", "console")
	viper.SetDefault("STORE_DRIVER", StoreDynamoDB)
	viper.SetDefault("AWS_REGION", "us-east-1")

	viper.AutomaticEnv()

	// .env is optional
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{
		Port:        getEnvOrViper("PORT", "8080"),
		Environment: getEnvOrViper("ENVIRONMENT", "development"),
		StoreDriver: strings.ToLower(getEnvOrViper("STORE_DRIVER", StoreDynamoDB)),
		Log: LogConfig{
			Level:  strings.ToLower(getEnvOrViper("LOG_LEVEL", "info")),
			Format: strings.ToLower(getEnvOrViper("LOG_FORMAT", "console")),
		},
		AWS: AWSConfig{
			Region:           getEnvOrViper("AWS_REGION", "us-east-1"),
			AccessKeyID:      getEnvOrViper("AWS_ACCESS_KEY_ID", "local"),
			SecretAccessKey:  getEnvOrViper("AWS_SECRET_ACCESS_KEY", "local"),
			DynamoDBEndpoint: getEnvOrViper("DYNAMODB_ENDPOINT", ""),
		},
		Tables: TablesConfig{
			Orders:              getEnvOrViper("ORDERS_TABLE", "orders"),
			Catalog:             getEnvOrViper("CATALOG_TABLE", "catalog"),
			Suppliers:           getEnvOrViper("SUPPLIERS_TABLE", "suppliers"),
			LostSales:           getEnvOrViper("LOST_SALES_TABLE", "lost_sales"),
			AuthorizationAudits: getEnvOrViper("AUTHORIZATION_AUDITS_TABLE", "authorization_audits"),
			InvoiceLineItems:    getEnvOrViper("INVOICE_LINE_ITEMS_TABLE", "invoice_line_items"),
			Sequences:           getEnvOrViper("SEQUENCES_TABLE", "sequences"),
			DeliveryPayments:    getEnvOrViper("DELIVERY_PAYMENTS_TABLE", "delivery_payments"),
		},
		Payments: PaymentsConfig{
			AccessToken:     getEnvOrViper("MERCADOPAGO_ACCESS_TOKEN", ""),
			Mock:            isTruthy(getEnvOrViper("PAYMENT_GATEWAY_MOCK", "")) || isTruthy(getEnvOrViper("MERCADOPAGO_MOCK", "")),
			TestPayerEmail:  getEnvOrViper("MERCADOPAGO_TEST_PAYER_EMAIL", ""),
			TestPayerUserID: getEnvOrViper("MERCADOPAGO_TEST_PAYER_USER_ID", ""),
		},
	}

	if cfg.StoreDriver != StoreDynamoDB && cfg.StoreDriver != StoreMemory {
		return nil, fmt.Errorf("STORE_DRIVER must be %q or %q, got %q", StoreDynamoDB, StoreMemory, cfg.StoreDriver)
	}

	phaseRoles, err := loadPhaseRoles()
	if err != nil {
		return nil, err
	}
	cfg.PhaseRoles = phaseRoles

	return cfg, nil
}

// PhaseRolesKey is the variable overriding the allowed roles of phase, e.g.
// PHASE_ROLES_INVOICE_UPLOAD for InvoiceUpload.
func PhaseRolesKey(phase entities.Phase) string {
	var b strings.Builder
	b.WriteString("PHASE_ROLES_")
	for i, r := range string(phase) {
		if i > 0 && unicode.IsUpper(r) {
			b.WriteByte('_')
		}
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}

func loadPhaseRoles() (map[entities.Phase][]entities.Role, error) {
	out := map[entities.Phase][]entities.Role{}
	for _, phase := range lifecycle.Phases() {
		key := PhaseRolesKey(phase)
		raw := strings.TrimSpace(getEnvOrViper(key, ""))
		if raw == "" {
			continue
		}
		roles, err := ParseRoles(raw)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", key, err)
		}
		out[phase] = roles
	}
	return out, nil
}

// ParseRoles splits a comma-separated role list, rejecting unknown roles.
func ParseRoles(raw string) ([]entities.Role, error) {
	var roles []entities.Role
	for _, part := range strings.Split(raw, ",") {
		role := entities.Role(strings.ToLower(strings.TrimSpace(part)))
		if role == "" {
			continue
		}
		if !role.IsValid() {
			return nil, fmt.Errorf("unknown role %q", role)
		}
		roles = append(roles, role)
	}
	if len(roles) == 0 {
		return nil, fmt.Errorf("no roles listed")
	}
	return roles, nil
}

func isTruthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}

func getEnvOrViper(key, defaultValue string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	if viper.IsSet(key) {
		return viper.GetString(key)
	}
	return defaultValue
}
