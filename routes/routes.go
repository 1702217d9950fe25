package routes

import (
	"sentinance/cache"
	"sentinance/client"
	"sentinance/config"
	"sentinance/controller"
	"sentinance/middleware"
	"sentinance/model"
	"sentinance/service"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humagin"
	"github.com/gin-gonic/gin"
)

// Services is the dependency graph behind the HTTP layer.
type Services struct {
	Tickers   service.TickerService
	Market    service.MarketService
	Movers    service.MoversService
	Sentiment service.SentimentService
}

// NewServices wires provider clients into services. store caches market data.
func NewServices(cfg *model.EnvConfig, store cache.Store) *Services {
	// --- 1. Clients ---
	var marketProvider service.MarketDataProvider
	switch cfg.MarketProvider {
	case config.ProviderAlphaVantage:
		marketProvider = client.NewAlphaVantageClient("", cfg.AlphaVantageApiKey)
	default:
		marketProvider = client.NewYahooClient("")
	}

	var newsProvider service.TextProvider
	switch cfg.NewsProvider {
	case config.ProviderYahooRss:
		newsProvider = client.NewYahooRssClient("")
	default:
		newsProvider = client.NewNewsApiClient("", cfg.NewsApiKey)
	}

	redditClient := client.NewRedditClient(client.RedditConfig{
		ClientID:     cfg.RedditClientId,
		ClientSecret: cfg.RedditClientSecret,
		UserAgent:    cfg.RedditUserAgent,
	})
	classifier := client.NewHuggingFaceClient(cfg.ClassifierUrl, cfg.ClassifierModel, cfg.HuggingFaceToken)

	// --- 2. Services ---
	tickerSvc := service.NewTickerService(cfg.TickersFile)
	marketSvc := service.NewMarketService(service.NewCachedProvider(marketProvider, store), tickerSvc)
	moversSvc := service.NewMoversService(marketSvc, cfg.WatchList)
	textSvc := service.NewTextService(redditClient, newsProvider)
	sentimentSvc := service.NewSentimentService(textSvc, classifier, cfg.WatchList)

	return &Services{
		Tickers:   tickerSvc,
		Market:    marketSvc,
		Movers:    moversSvc,
		Sentiment: sentimentSvc,
	}
}

func SetupRouter(cm *config.ConfigManager, svcs *Services) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RecoveryMiddleware)
	r.Use(middleware.ZerologMiddleware())
	r.Use(middleware.CORS(cm))
	r.Use(middleware.RateLimiter(cm))

	controller.ConfigureErrors()
	api := humagin.New(r, huma.DefaultConfig("Sentinance Backend", "1.0.0"))

	// --- Routes & Controllers ---
	apiGroup := r.Group("/api")
	{
		// Health Check
		controller.NewHealthController().RegisterRoutes(apiGroup)
	}

	controller.NewStockController(svcs.Tickers, svcs.Market, svcs.Movers).RegisterRoutes(api)
	controller.NewSentimentController(svcs.Sentiment).RegisterRoutes(api)

	return r
}
