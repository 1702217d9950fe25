package service

import (
	"context"
	"errors"
	"testing"

	"sentinance/customerrors"
	"sentinance/model"
)

func TestTextServiceRouting(t *testing.T) {
	reddit := &stubText{items: []model.TextItem{{Source: model.SourceReddit, RawText: "r"}}}
	news := &stubText{items: []model.TextItem{{Source: model.SourceNews, RawText: "n"}}}
	svc := NewTextService(reddit, news)

	items, err := svc.Fetch(context.Background(), "AAPL", model.SourceNews, 20)
	if err != nil || items[0].RawText != "n" {
		t.Fatalf("expected news item, got %v, %v", items, err)
	}

	if _, err := svc.Fetch(context.Background(), "AAPL", "twitter", 20); !errors.Is(err, customerrors.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}

func TestTextServiceErrors(t *testing.T) {
	tests := []struct {
		name     string
		provider TextProvider
		want     error
	}{
		{"empty", &stubText{}, customerrors.ErrNoData},
		{"upstream", &stubText{err: errors.New("timeout")}, customerrors.ErrUpstream},
		{"unconfigured", nil, customerrors.ErrUpstream},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTextService(tt.provider, nil).Fetch(context.Background(), "AAPL", model.SourceReddit, 20)
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestClampLimit(t *testing.T) {
	if ClampLimit(0) != 1 || ClampLimit(1000) != 100 || ClampLimit(20) != 20 {
		t.Error("unexpected ClampLimit result")
	}
}
