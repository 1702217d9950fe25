package client

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"sentinance/model"
	"sentinance/util"

	"github.com/go-resty/resty/v2"
)

const SP500ConstituentsURL = "https://raw.githubusercontent.com/datasets/s-and-p-500-companies/main/data/constituents.csv"

type SP500Client struct {
	client *resty.Client
	url    string
}

func NewSP500Client(url string) *SP500Client {
	if url == "" {
		url = SP500ConstituentsURL
	}
	return &SP500Client{
		client: resty.New().SetTimeout(30 * time.Second),
		url:    url,
	}
}

func (s *SP500Client) FetchConstituents(ctx context.Context) ([]model.TickerRecord, error) {
	resp, err := s.client.R().SetContext(ctx).Get(s.url)
	if err != nil {
		return nil, fmt.Errorf("failed to download constituents: %w", err)
	}
	if !resp.IsSuccess() {
		return nil, fmt.Errorf("constituents download failed (status %d)", resp.StatusCode())
	}
	return util.ReadConstituents(bytes.NewReader(resp.Body()))
}
