package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

const (
	BackendFirestore = "firestore"
	BackendMongo     = "mongo"

	ProviderFirebase = "firebase"
	ProviderLocal    = "local"
)

type Config struct {
	Port      string        `env:"PORT,      default=8080"`
	Env       string        `env:"ENV,       default=development"`
	JWTSecret string        `env:"JWT_SECRET, required"`
	TokenTTL  time.Duration `env:"TOKEN_TTL, default=12h"`
	LogLevel  string        `env:"LOG_LEVEL, default=info"`

	StoreBackend          string        `env:"STORE_BACKEND,           default=firestore"`
	AuthProvider          string        `env:"AUTH_PROVIDER,           default=firebase"`
	StoreTimeout          time.Duration `env:"STORE_TIMEOUT,           default=10s"`
	RoleLookupConcurrency int           `env:"ROLE_LOOKUP_CONCURRENCY, default=16"`

	LoginRatePerSecond float64  `env:"LOGIN_RATE_PER_SECOND, default=0.5"`
	LoginBurst         int      `env:"LOGIN_BURST,           default=5"`
	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS,  default=http://localhost:3000"`

	Firebase FirebaseConfig
	Mongo    MongoConfig
	Redis    RedisConfig
}

type FirebaseConfig struct {
	ProjectID       string `env:"FIREBASE_PROJECT_ID"`
	CredentialsFile string `env:"FIREBASE_CREDENTIALS_FILE"`
	CredentialsJSON string `env:"FIREBASE_CREDENTIALS_JSON"`
	APIKey          string `env:"FIREBASE_API_KEY"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=iskate_admin"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR,     default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,       default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	cfg, err := LoadWith(context.Background(), envconfig.OsLookuper())
	if err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return cfg
}

// LoadWith reads configuration from an arbitrary lookuper and validates it.
func LoadWith(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: l}); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects unknown backends and combinations that cannot be wired.
func (c *Config) Validate() error {
	switch c.StoreBackend {
	case BackendFirestore, BackendMongo:
	default:
		return fmt.Errorf("unknown STORE_BACKEND %q", c.StoreBackend)
	}

	switch c.AuthProvider {
	case ProviderFirebase:
		if c.Firebase.APIKey == "" {
			return fmt.Errorf("FIREBASE_API_KEY is required when AUTH_PROVIDER=firebase")
		}
	case ProviderLocal:
		// Local credentials live in Mongo.
		if c.StoreBackend != BackendMongo {
			return fmt.Errorf("AUTH_PROVIDER=local requires STORE_BACKEND=mongo")
		}
	default:
		return fmt.Errorf("unknown AUTH_PROVIDER %q", c.AuthProvider)
	}

	if c.LoginRatePerSecond <= 0 || c.LoginBurst <= 0 {
		return fmt.Errorf("login rate limit must be positive")
	}
	return nil
}

// UsesFirebase reports whether any component needs the Firebase app.
func (c *Config) UsesFirebase() bool {
	return c.StoreBackend == BackendFirestore || c.AuthProvider == ProviderFirebase
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
