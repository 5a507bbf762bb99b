package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App           App           `mapstructure:",squash"`
	Server        Server        `mapstructure:",squash"`
	Database      Database      `mapstructure:",squash"`
	Redis         Redis         `mapstructure:",squash"`
	NATS          NATS          `mapstructure:",squash"`
	Auth          Auth          `mapstructure:",squash"`
	Publishing    Publishing    `mapstructure:",squash"`
	Simulator     Simulator     `mapstructure:",squash"`
	Vendors       Vendors       `mapstructure:",squash"`
	Twitch        Twitch        `mapstructure:",squash"`
	GoogleAds     GoogleAds     `mapstructure:",squash"`
	AdMetricsSync AdMetricsSync `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	LogFile  string `mapstructure:"log_file"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

// Enabled indica se há banco configurado; sem banco os registros ficam apenas em log
func (d Database) Enabled() bool {
	return d.URL != ""
}

type Redis struct {
	URL      string        `mapstructure:"redis_url"`
	CacheTTL time.Duration `mapstructure:"redis_cache_ttl"`
}

type NATS struct {
	URL     string `mapstructure:"nats_url"`
	Subject string `mapstructure:"nats_attribution_subject"`
}

type Auth struct {
	Enabled  bool          `mapstructure:"auth_enabled"`
	Secret   string        `mapstructure:"auth_secret"`
	TokenTTL time.Duration `mapstructure:"auth_token_ttl"`
}

type Publishing struct {
	CallTimeout       time.Duration `mapstructure:"publish_call_timeout"`
	MaxConcurrent     int           `mapstructure:"publish_max_concurrent"`
	TrackingWebsite   string        `mapstructure:"publish_tracking_website_url"`
	TrackingTimeout   time.Duration `mapstructure:"publish_tracking_timeout"`
	VendorHTTPTimeout time.Duration `mapstructure:"vendor_http_timeout"`
}

type Simulator struct {
	ThreadsFailureRate float64       `mapstructure:"threads_simulator_failure_rate"`
	ThreadsDelay       time.Duration `mapstructure:"threads_simulator_delay"`
}

type Vendors struct {
	GraphURL          string `mapstructure:"graph_api_url"`
	LinkedInURL       string `mapstructure:"linkedin_api_url"`
	TikTokShareURL    string `mapstructure:"tiktok_share_api_url"`
	YouTubeURL        string `mapstructure:"youtube_api_url"`
	YouTubeUploadURL  string `mapstructure:"youtube_upload_url"`
	TwitterURL        string `mapstructure:"twitter_api_url"`
	PinterestURL      string `mapstructure:"pinterest_api_url"`
	GoogleBusinessURL string `mapstructure:"google_business_api_url"`
	BlueskyURL        string `mapstructure:"bluesky_api_url"`
	TwitchURL         string `mapstructure:"twitch_api_url"`
	GoogleAdsURL      string `mapstructure:"google_ads_api_url"`
	TikTokBusinessURL string `mapstructure:"tiktok_business_api_url"`
}

type Twitch struct {
	ClientID string `mapstructure:"twitch_client_id"`
}

type GoogleAds struct {
	DeveloperToken  string `mapstructure:"google_ads_developer_token"`
	LoginCustomerID string `mapstructure:"google_ads_login_customer_id"`
}

type AdMetricsSync struct {
	CronSchedule      string `mapstructure:"ad_metrics_sync_cron"`
	DateRange         string `mapstructure:"ad_metrics_sync_date_range"`
	MaxConcurrentJobs int    `mapstructure:"ad_metrics_sync_max_concurrent_jobs"`
	Enabled           bool   `mapstructure:"ad_metrics_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("REDIS_URL", "")
	viper.SetDefault("REDIS_CACHE_TTL", "15m")

	viper.SetDefault("NATS_URL", "")
	viper.SetDefault("NATS_ATTRIBUTION_SUBJECT", "social.traffic.tracked")

	viper.SetDefault("AUTH_ENABLED", false)
	viper.SetDefault("AUTH_SECRET", "your_secret_key")
	viper.SetDefault("AUTH_TOKEN_TTL", "24h")

	viper.SetDefault("PUBLISH_CALL_TIMEOUT", "30s")         // Tempo máximo por chamada de plataforma
	viper.SetDefault("PUBLISH_MAX_CONCURRENT", 8)           // Contas publicadas em paralelo
	viper.SetDefault("PUBLISH_TRACKING_WEBSITE_URL", "https://your-website.com")
	viper.SetDefault("PUBLISH_TRACKING_TIMEOUT", "10s")
	viper.SetDefault("VENDOR_HTTP_TIMEOUT", "60s")

	viper.SetDefault("THREADS_SIMULATOR_FAILURE_RATE", 0.1)
	viper.SetDefault("THREADS_SIMULATOR_DELAY", "1s")

	viper.SetDefault("GRAPH_API_URL", "https://graph.facebook.com/v18.0")
	viper.SetDefault("LINKEDIN_API_URL", "https://api.linkedin.com/v2")
	viper.SetDefault("TIKTOK_SHARE_API_URL", "https://open-api.tiktok.com")
	viper.SetDefault("YOUTUBE_API_URL", "https://www.googleapis.com/youtube/v3")
	viper.SetDefault("YOUTUBE_UPLOAD_URL", "https://www.googleapis.com/upload/youtube/v3")
	viper.SetDefault("TWITTER_API_URL", "https://api.twitter.com/2")
	viper.SetDefault("PINTEREST_API_URL", "https://api.pinterest.com/v5")
	viper.SetDefault("GOOGLE_BUSINESS_API_URL", "https://mybusiness.googleapis.com/v4")
	viper.SetDefault("BLUESKY_API_URL", "https://bsky.social/xrpc")
	viper.SetDefault("TWITCH_API_URL", "https://api.twitch.tv/helix")
	viper.SetDefault("GOOGLE_ADS_API_URL", "https://googleads.googleapis.com/v15")
	viper.SetDefault("TIKTOK_BUSINESS_API_URL", "https://business-api.tiktok.com/open_api/v1.3")

	viper.SetDefault("TWITCH_CLIENT_ID", "")
	viper.SetDefault("GOOGLE_ADS_DEVELOPER_TOKEN", "")
	viper.SetDefault("GOOGLE_ADS_LOGIN_CUSTOMER_ID", "")

	viper.SetDefault("AD_METRICS_SYNC_CRON", "0 3 * * *") // Todos os dias às 3h da manhã
	viper.SetDefault("AD_METRICS_SYNC_DATE_RANGE", "YESTERDAY")
	viper.SetDefault("AD_METRICS_SYNC_MAX_CONCURRENT_JOBS", 3)
	viper.SetDefault("AD_METRICS_SYNC_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
	viper.SetDefault("LOG_FILE", "")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if config.Publishing.MaxConcurrent <= 0 {
		config.Publishing.MaxConcurrent = 1
	}

	if config.Database.Enabled() {
		config.Database.DSN = fmt.Sprintf(
			"%s://%s:%s@%s",
			config.Database.Driver,
			config.Database.User,
			config.Database.Password,
			config.Database.URL,
		)
	}

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
