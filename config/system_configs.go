package config

import (
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"strings"
	"sync/atomic"

	"sentinance/model"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

const (
	ProviderYahoo        = "yahoo"
	ProviderAlphaVantage = "alphavantage"
	ProviderNewsApi      = "newsapi"
	ProviderYahooRss     = "yahoorss"
)

// DefaultWatchList is the fixed symbol set behind movers, most-active and the heatmap.
var DefaultWatchList = []string{"AAPL", "TSLA", "NVDA", "MSFT", "GOOGL", "AMZN", "META", "NFLX", "AMD", "INTC"}

type SystemConfigs struct {
	Config *model.EnvConfig
}

// LoadConfigs layers, lowest priority first: an optional YAML file named by
// CONFIG_PATH, the JSON blob in the `config` variable, then the individual
// credential variables.
func LoadConfigs() (*SystemConfigs, error) {
	godotenv.Load()

	raw := map[string]any{}

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse config YAML: %w", err)
		}
	}

	if rawJson := os.Getenv("config"); rawJson != "" {
		overlay := map[string]any{}
		if err := json.Unmarshal([]byte(rawJson), &overlay); err != nil {
			return nil, fmt.Errorf("failed to parse config JSON: %w", err)
		}
		maps.Copy(raw, overlay)
	}

	envCfg, err := Decode(raw)
	if err != nil {
		return nil, err
	}

	applyEnvOverrides(envCfg)
	ApplyDefaults(envCfg)

	if err := Validate(envCfg); err != nil {
		return nil, err
	}

	return &SystemConfigs{
		Config: envCfg,
	}, nil
}

// Decode maps loosely typed settings onto EnvConfig, so "true" and "8080"
// are accepted where a bool or string is expected.
func Decode(raw map[string]any) (*model.EnvConfig, error) {
	var envCfg model.EnvConfig
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: true,
		Result:           &envCfg,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build config decoder: %w", err)
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	return &envCfg, nil
}

func applyEnvOverrides(cfg *model.EnvConfig) {
	overrides := map[string]*string{
		"PORT":                  &cfg.Port,
		"REDDIT_CLIENT_ID":      &cfg.RedditClientId,
		"REDDIT_CLIENT_SECRET":  &cfg.RedditClientSecret,
		"REDDIT_USER_AGENT":     &cfg.RedditUserAgent,
		"NEWS_API_KEY":          &cfg.NewsApiKey,
		"ALPHA_VANTAGE_API_KEY": &cfg.AlphaVantageApiKey,
		"HF_API_TOKEN":          &cfg.HuggingFaceToken,
		"REDIS_URL":             &cfg.RedisUrl,
	}
	for key, target := range overrides {
		if v := os.Getenv(key); v != "" {
			*target = v
		}
	}
}

func ApplyDefaults(cfg *model.EnvConfig) {
	if cfg.Port == "" {
		cfg.Port = "8000"
	}
	if cfg.MarketProvider == "" {
		cfg.MarketProvider = ProviderYahoo
	}
	if cfg.NewsProvider == "" {
		cfg.NewsProvider = ProviderNewsApi
	}
	if cfg.RedditUserAgent == "" {
		cfg.RedditUserAgent = "sentinance-app"
	}
	if cfg.ClassifierUrl == "" {
		cfg.ClassifierUrl = "https://api-inference.huggingface.co/models"
	}
	if cfg.ClassifierModel == "" {
		cfg.ClassifierModel = "ProsusAI/finbert"
	}
	if cfg.TickersFile == "" {
		cfg.TickersFile = "data/tickers.json"
	}
	if len(cfg.WatchList) == 0 {
		cfg.WatchList = append([]string(nil), DefaultWatchList...)
	}
	for i, s := range cfg.WatchList {
		cfg.WatchList[i] = strings.ToUpper(strings.TrimSpace(s))
	}
	if cfg.RateLimitRps <= 0 {
		cfg.RateLimitRps = 5
	}
	if cfg.RateBurst <= 0 {
		cfg.RateBurst = 15
	}
	if len(cfg.FrontendUrls) == 0 {
		cfg.FrontendUrls = []string{"*"}
	}
}

func Validate(cfg *model.EnvConfig) error {
	switch cfg.MarketProvider {
	case ProviderYahoo:
	case ProviderAlphaVantage:
		if cfg.AlphaVantageApiKey == "" {
			return fmt.Errorf("marketProvider %q requires alphaVantageApiKey", cfg.MarketProvider)
		}
	default:
		return fmt.Errorf("unknown marketProvider %q", cfg.MarketProvider)
	}

	switch cfg.NewsProvider {
	case ProviderNewsApi, ProviderYahooRss:
	default:
		return fmt.Errorf("unknown newsProvider %q", cfg.NewsProvider)
	}
	return nil
}

// ConfigManager holds the active config for middleware that reads it per request.
type ConfigManager struct {
	value atomic.Value
}

func NewConfigManager(initial *model.EnvConfig) *ConfigManager {
	cm := &ConfigManager{}
	cm.value.Store(initial)
	return cm
}

func (cm *ConfigManager) GetConfig() *model.EnvConfig {
	return cm.value.Load().(*model.EnvConfig)
}

func (cm *ConfigManager) UpdateConfig(newCfg *model.EnvConfig) {
	cm.value.Store(newCfg)
}
