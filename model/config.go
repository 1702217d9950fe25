package model

// EnvConfig holds the process configuration. Secrets come from the environment,
// everything else has a default applied by config.LoadConfigs.
type EnvConfig struct {
	Port        string `json:"port" yaml:"port"`
	Environment string `json:"environment" yaml:"environment"`

	MarketProvider     string `json:"marketProvider" yaml:"marketProvider"`
	AlphaVantageApiKey string `json:"alphaVantageApiKey" yaml:"alphaVantageApiKey"`

	NewsProvider string `json:"newsProvider" yaml:"newsProvider"`
	NewsApiKey   string `json:"newsApiKey" yaml:"newsApiKey"`

	RedditClientId     string `json:"redditClientId" yaml:"redditClientId"`
	RedditClientSecret string `json:"redditClientSecret" yaml:"redditClientSecret"`
	RedditUserAgent    string `json:"redditUserAgent" yaml:"redditUserAgent"`

	HuggingFaceToken string `json:"huggingFaceToken" yaml:"huggingFaceToken"`
	ClassifierUrl    string `json:"classifierUrl" yaml:"classifierUrl"`
	ClassifierModel  string `json:"classifierModel" yaml:"classifierModel"`

	TickersFile string   `json:"tickersFile" yaml:"tickersFile"`
	WatchList   []string `json:"watchList" yaml:"watchList"`
	WarmupCron  string   `json:"warmupCron" yaml:"warmupCron"`

	RedisUrl     string   `json:"redisUrl" yaml:"redisUrl"`
	RateLimiter  bool     `json:"rateLimiter" yaml:"rateLimiter"`
	RateLimitRps float64  `json:"rateLimitRps" yaml:"rateLimitRps"`
	RateBurst    int      `json:"rateBurst" yaml:"rateBurst"`
	FrontendUrls []string `json:"frontendUrls" yaml:"frontendUrls"`
	Tracing      bool     `json:"tracing" yaml:"tracing"`
}

func (c *EnvConfig) IsProduction() bool {
	return c.Environment == "production"
}
