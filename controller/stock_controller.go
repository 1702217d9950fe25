package controller

import (
	"context"
	"net/http"

	"sentinance/model"
	"sentinance/service"

	"github.com/danielgtaylor/huma/v2"
)

type StockController struct {
	tickerSvc service.TickerService
	marketSvc service.MarketService
	moversSvc service.MoversService
}

func NewStockController(ts service.TickerService, ms service.MarketService, mv service.MoversService) *StockController {
	return &StockController{tickerSvc: ts, marketSvc: ms, moversSvc: mv}
}

func (ctrl *StockController) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "root",
		Method:      http.MethodGet,
		Path:        "/",
		Summary:     "Service banner",
		Tags:        []string{"System"},
	}, ctrl.Root)

	huma.Register(api, huma.Operation{
		OperationID: "list-stocks",
		Method:      http.MethodGet,
		Path:        "/stocks/list",
		Summary:     "List supported tickers",
		Tags:        []string{"Stocks"},
	}, ctrl.ListStocks)

	huma.Register(api, huma.Operation{
		OperationID: "top-movers",
		Method:      http.MethodGet,
		Path:        "/stocks/top-movers",
		Summary:     "Top gainers and losers in the watch-list",
		Tags:        []string{"Stocks"},
	}, ctrl.TopMovers)

	huma.Register(api, huma.Operation{
		OperationID: "most-active",
		Method:      http.MethodGet,
		Path:        "/stocks/most-active",
		Summary:     "Highest volume symbols in the watch-list",
		Tags:        []string{"Stocks"},
	}, ctrl.MostActive)

	huma.Register(api, huma.Operation{
		OperationID: "get-quote",
		Method:      http.MethodGet,
		Path:        "/stocks/{ticker}",
		Summary:     "Latest quote",
		Tags:        []string{"Stocks"},
	}, ctrl.GetQuote)

	huma.Register(api, huma.Operation{
		OperationID: "get-history",
		Method:      http.MethodGet,
		Path:        "/stocks/{ticker}/history",
		Summary:     "Daily price history",
		Description: "Daily OHLCV bars, oldest first. days is clamped to 1..100.",
		Tags:        []string{"Stocks"},
	}, ctrl.GetHistory)
}

func (ctrl *StockController) Root(ctx context.Context, input *struct{}) (*model.DefaultResponse, error) {
	return NewResponse(nil, RootMessage), nil
}

func (ctrl *StockController) ListStocks(ctx context.Context, input *struct{}) (*model.TickerListOutput, error) {
	listings, err := ctrl.tickerSvc.Listings(ctx)
	if err != nil {
		return nil, toHumaError(err)
	}
	return &model.TickerListOutput{Body: listings}, nil
}

func (ctrl *StockController) GetQuote(ctx context.Context, input *model.TickerInput) (*model.QuoteOutput, error) {
	ticker := normalizeTicker(input.Ticker)
	if ticker == "" {
		return nil, huma.Error400BadRequest("ticker is required")
	}

	quote, err := ctrl.marketSvc.GetQuote(ctx, ticker)
	if err != nil {
		return nil, toHumaError(err)
	}
	return &model.QuoteOutput{Body: *quote}, nil
}

func (ctrl *StockController) GetHistory(ctx context.Context, input *model.HistoryInput) (*model.HistoryOutput, error) {
	ticker := normalizeTicker(input.Ticker)
	if ticker == "" {
		return nil, huma.Error400BadRequest("ticker is required")
	}

	points, err := ctrl.marketSvc.GetHistory(ctx, ticker, input.Days)
	if err != nil {
		return nil, toHumaError(err)
	}
	return &model.HistoryOutput{Body: points}, nil
}

func (ctrl *StockController) TopMovers(ctx context.Context, input *struct{}) (*model.MoversOutput, error) {
	movers, err := ctrl.moversSvc.TopMovers(ctx)
	if err != nil {
		return nil, toHumaError(err)
	}
	return &model.MoversOutput{Body: movers}, nil
}

func (ctrl *StockController) MostActive(ctx context.Context, input *struct{}) (*model.MostActiveOutput, error) {
	active, err := ctrl.moversSvc.MostActive(ctx)
	if err != nil {
		return nil, toHumaError(err)
	}
	return &model.MostActiveOutput{Body: active}, nil
}
