package config

import (
	"time"

	"github.com/ipfs-force-community/metrics"
)

type Config struct {
	DB          DbConfig               `toml:"db"`
	JWT         JWTConfig              `toml:"jwt"`
	Log         LogConfig              `toml:"log"`
	API         APIConfig              `toml:"api"`
	App         AppConfig              `toml:"app"`
	FeeContract FeeContractConfig      `toml:"feeContract"`
	RateFeed    RateFeedConfig         `toml:"rateFeed"`
	Pricing     PricingConfig          `toml:"pricing"`
	Trace       *metrics.TraceConfig   `toml:"tracing"`
	Metrics     *metrics.MetricsConfig `toml:"metrics"`
}

type LogConfig struct {
	Path  string `toml:"path"`
	Level string `toml:"level"`
}

type APIConfig struct {
	Address string `toml:"address"`
}

// AppConfig identifies the application on the ledger. Every protected call
// charges the protocol fee against this account.
type AppConfig struct {
	Address string `toml:"address"`
}

// FeeContractConfig locates the fee contract service and its ledger account.
type FeeContractConfig struct {
	Url     string `toml:"url"`
	Token   string `toml:"token"`
	Address string `toml:"address"`
}

type RateFeedConfig struct {
	Url   string `toml:"url"`
	Token string `toml:"token"`

	RefreshInterval time.Duration `toml:"refreshInterval"`

	// cache lifetime and cleanup interval of the latest reading, in seconds
	DefaultExpiration, CleanupInterval int
}

// PricingConfig carries the five per-length unit prices in USD atto-units
// per second, and the premium strategy applied on top of the base price.
type PricingConfig struct {
	Price1Letter string `toml:"price1Letter"`
	Price2Letter string `toml:"price2Letter"`
	Price3Letter string `toml:"price3Letter"`
	Price4Letter string `toml:"price4Letter"`
	Price5Letter string `toml:"price5Letter"`

	Premium PremiumConfig `toml:"premium"`
}

type PremiumConfig struct {
	// zero or exponential
	Type string `toml:"type"`

	StartPremium string `toml:"startPremium"`
	TotalDays    int    `toml:"totalDays"`
}

type DbConfig struct {
	Type   string       `toml:"type"`
	MySql  MySqlConfig  `toml:"mysql"`
	Sqlite SqliteConfig `toml:"sqlite"`
}

type SqliteConfig struct {
	Path  string `toml:"path"`
	Debug bool   `toml:"debug"`
}

type MySqlConfig struct {
	ConnectionString string        `toml:"connectionString"`
	MaxOpenConn      int           `toml:"maxOpenConn"`
	MaxIdleConn      int           `toml:"maxIdleConn"`
	ConnMaxLifeTime  time.Duration `toml:"connMaxLifeTime"`
	Debug            bool          `toml:"debug"`
}

type JWTConfig struct {
	AuthURL string         `toml:"authURL"`
	Local   LocalJWTConfig `toml:"local"`
}

type LocalJWTConfig struct {
	Secret string `toml:"secret"`
	Token  string `toml:"token"`
}

func DefaultConfig() *Config {
	return &Config{
		DB: DbConfig{
			Type: "sqlite",
			MySql: MySqlConfig{
				ConnectionString: "",
				MaxOpenConn:      10,
				MaxIdleConn:      10,
				ConnMaxLifeTime:  time.Second * 60,
				Debug:            false,
			},
			Sqlite: SqliteConfig{Debug: false},
		},
		JWT: JWTConfig{
			AuthURL: "",
		},
		Log: LogConfig{
			Path:  "pricer.log",
			Level: "info",
		},
		API: APIConfig{
			Address: "/ip4/0.0.0.0/tcp/39911",
		},
		App: AppConfig{
			Address: "0x0000000000000000000000000000000000000a11",
		},
		FeeContract: FeeContractConfig{
			Url:     "/ip4/127.0.0.1/tcp/8545",
			Token:   "",
			Address: "0x0000000000000000000000000000000000000fee",
		},
		RateFeed: RateFeedConfig{
			Url:               "/ip4/127.0.0.1/tcp/8547",
			Token:             "",
			RefreshInterval:   time.Second * 30,
			DefaultExpiration: 60,
			CleanupInterval:   120,
		},
		Pricing: PricingConfig{
			// per-second prices matching ENS mainnet annual pricing bands
			Price1Letter: "158548959918",
			Price2Letter: "158548959918",
			Price3Letter: "20294266869",
			Price4Letter: "5073566717",
			Price5Letter: "158443692",
			Premium: PremiumConfig{
				Type:         "zero",
				StartPremium: "100000000000000000000000000",
				TotalDays:    21,
			},
		},
		Trace:   &metrics.TraceConfig{},
		Metrics: &metrics.MetricsConfig{},
	}
}
