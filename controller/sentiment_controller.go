package controller

import (
	"context"
	"net/http"
	"strings"

	"sentinance/model"
	"sentinance/service"
	"sentinance/validator"

	"github.com/danielgtaylor/huma/v2"
	"github.com/rs/zerolog/log"
)

type SentimentController struct {
	sentimentSvc service.SentimentService
}

func NewSentimentController(s service.SentimentService) *SentimentController {
	return &SentimentController{sentimentSvc: s}
}

func (ctrl *SentimentController) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "sentiment-heatmap",
		Method:      http.MethodGet,
		Path:        "/sentiment/heatmap",
		Summary:     "Reddit sentiment across the watch-list",
		Tags:        []string{"Sentiment"},
	}, ctrl.Heatmap)

	huma.Register(api, huma.Operation{
		OperationID: "get-sentiment",
		Method:      http.MethodGet,
		Path:        "/sentiment/{ticker}",
		Summary:     "Scored mentions for a ticker",
		Description: "Fetches recent reddit posts or news articles and scores each with the classifier.",
		Tags:        []string{"Sentiment"},
	}, ctrl.GetSentiment)
}

func (ctrl *SentimentController) GetSentiment(ctx context.Context, input *model.SentimentInput) (*model.SentimentOutput, error) {
	req := *input
	req.Ticker = normalizeTicker(req.Ticker)
	req.Source = strings.ToLower(strings.TrimSpace(req.Source))

	if errs := validator.SentimentQuery.Validate(&req); errs != nil {
		log.Debug().Interface("issues", errs).Msg("sentiment query rejected")
		return nil, huma.Error400BadRequest("invalid query: source must be reddit or news")
	}

	source, _ := model.ParseTextSource(req.Source)
	summary, err := ctrl.sentimentSvc.Analyze(ctx, req.Ticker, source, req.Limit)
	if err != nil {
		return nil, toHumaError(err)
	}
	return &model.SentimentOutput{Body: *summary}, nil
}

func (ctrl *SentimentController) Heatmap(ctx context.Context, input *struct{}) (*model.HeatmapOutput, error) {
	heatmap, err := ctrl.sentimentSvc.Heatmap(ctx)
	if err != nil {
		return nil, toHumaError(err)
	}
	return &model.HeatmapOutput{Body: *heatmap}, nil
}
