package client

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"sentinance/customerrors"
	"sentinance/model"

	"github.com/go-resty/resty/v2"
)

// HuggingFaceClient classifies text through the hosted inference API.
type HuggingFaceClient struct {
	client *resty.Client
	model  string
}

type inferenceRequest struct {
	Inputs  string           `json:"inputs"`
	Options inferenceOptions `json:"options"`
}

type inferenceOptions struct {
	WaitForModel bool `json:"wait_for_model"`
}

type inferenceError struct {
	Error string `json:"error"`
}

func NewHuggingFaceClient(baseURL, modelName, token string) *HuggingFaceClient {
	client := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(30*time.Second).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")
	if token != "" {
		client.SetAuthToken(token)
	}
	return &HuggingFaceClient{client: client, model: modelName}
}

// Classify returns the highest scoring label for text.
func (h *HuggingFaceClient) Classify(ctx context.Context, text string) (model.Classification, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(inferenceRequest{Inputs: text, Options: inferenceOptions{WaitForModel: true}}).
		Post("/" + h.model)
	if err != nil {
		return model.Classification{}, customerrors.Upstream("classifier", err)
	}
	if !resp.IsSuccess() {
		var apiErr inferenceError
		_ = json.Unmarshal(resp.Body(), &apiErr)
		return model.Classification{}, fmt.Errorf("classifier: status %d %s: %w", resp.StatusCode(), apiErr.Error, customerrors.ErrUpstream)
	}

	labels, err := decodeLabels(resp.Body())
	if err != nil {
		return model.Classification{}, fmt.Errorf("classifier: %w: %v", customerrors.ErrUpstream, err)
	}

	best := labels[0]
	for _, l := range labels[1:] {
		if l.Confidence > best.Confidence {
			best = l
		}
	}
	best.Label = strings.ToLower(best.Label)
	return best, nil
}

// decodeLabels accepts both the nested [[...]] shape returned for a single
// input and the flat [...] shape.
func decodeLabels(body []byte) ([]model.Classification, error) {
	var nested [][]model.Classification
	if err := json.Unmarshal(body, &nested); err == nil && len(nested) > 0 && len(nested[0]) > 0 {
		return nested[0], nil
	}
	var flat []model.Classification
	if err := json.Unmarshal(body, &flat); err == nil && len(flat) > 0 {
		return flat, nil
	}
	return nil, fmt.Errorf("unexpected inference payload: %s", truncate(string(body), 120))
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
