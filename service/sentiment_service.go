package service

import (
	"context"
	"strings"
	"sync"

	"sentinance/customerrors"
	"sentinance/model"
	"sentinance/tracing"

	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel/attribute"
)

const (
	// ConfidenceThreshold is inclusive: a label scored exactly 0.6 counts.
	ConfidenceThreshold = 0.6
	// MaxClassifierChars bounds classifier input, counted in runes.
	MaxClassifierChars = 512

	scoringWorkers = 4
	heatmapLimit   = 20
)

// Classifier returns the top label and its confidence for a piece of text.
type Classifier interface {
	Classify(ctx context.Context, text string) (model.Classification, error)
}

type SentimentService interface {
	Score(ctx context.Context, text string) (float64, error)
	Analyze(ctx context.Context, ticker string, source model.TextSource, limit int) (*model.SentimentSummary, error)
	Heatmap(ctx context.Context) (*model.HeatmapResponse, error)
}

type SentimentServiceImpl struct {
	texts      TextService
	classifier Classifier
	watchList  []string
}

func NewSentimentService(texts TextService, classifier Classifier, watchList []string) SentimentService {
	return &SentimentServiceImpl{
		texts:      texts,
		classifier: classifier,
		watchList:  watchList,
	}
}

// ScoreClassification maps a label and confidence onto [-1, 1]. Anything
// below the threshold, and any label other than positive or negative, is 0.
func ScoreClassification(c model.Classification) float64 {
	if c.Confidence < ConfidenceThreshold {
		return 0
	}
	switch strings.ToLower(c.Label) {
	case model.LabelPositive:
		return c.Confidence
	case model.LabelNegative:
		return -c.Confidence
	default:
		return 0
	}
}

func truncateRunes(text string, n int) string {
	runes := []rune(text)
	if len(runes) <= n {
		return text
	}
	return string(runes[:n])
}

func (s *SentimentServiceImpl) Score(ctx context.Context, text string) (float64, error) {
	c, err := s.classifier.Classify(ctx, truncateRunes(text, MaxClassifierChars))
	if err != nil {
		return 0, customerrors.Upstream("classifier", err)
	}
	return ScoreClassification(c), nil
}

func (s *SentimentServiceImpl) Analyze(ctx context.Context, ticker string, source model.TextSource, limit int) (*model.SentimentSummary, error) {
	ctx, span := tracing.StartSpan(ctx, "sentiment.analyze")
	span.SetAttributes(
		attribute.String("ticker", ticker),
		attribute.String("source", string(source)),
		attribute.Int("limit", limit),
	)

	items, err := s.texts.Fetch(ctx, ticker, source, limit)
	if err != nil {
		tracing.End(span, err)
		return nil, err
	}

	mentions, err := s.scoreAll(ctx, items)
	if err != nil {
		tracing.End(span, err)
		return nil, err
	}

	summary, err := BuildSentimentSummary(ticker, source, mentions)
	tracing.End(span, err)
	return summary, err
}

// scoreAll classifies items with a small worker pool. Output order matches input.
func (s *SentimentServiceImpl) scoreAll(ctx context.Context, items []model.TextItem) ([]model.SentimentMention, error) {
	mentions := make([]model.SentimentMention, len(items))
	errs := make([]error, len(items))

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < min(scoringWorkers, len(items)); w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				score, err := s.Score(ctx, items[i].RawText)
				mentions[i] = model.SentimentMention{TextItem: items[i], Sentiment: score}
				errs[i] = err
			}
		}()
	}

	for i := range items {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return mentions, nil
}

// Heatmap scores recent reddit mentions for every watch-list ticker. A ticker
// that cannot be fetched or scored gets an empty cell.
func (s *SentimentServiceImpl) Heatmap(ctx context.Context) (*model.HeatmapResponse, error) {
	if len(s.watchList) == 0 {
		return nil, customerrors.ErrDataUnavailable
	}

	cells := make([]model.HeatmapCell, len(s.watchList))
	var wg sync.WaitGroup
	for i, ticker := range s.watchList {
		wg.Add(1)
		go func(i int, ticker string) {
			defer wg.Done()
			summary, err := s.Analyze(ctx, ticker, model.SourceReddit, heatmapLimit)
			if err != nil {
				log.Warn().Err(err).Str("ticker", ticker).Msg("heatmap cell degraded")
				cells[i] = BuildHeatmapCell(ticker, nil)
				return
			}
			cells[i] = BuildHeatmapCell(ticker, summary.Mentions)
		}(i, ticker)
	}
	wg.Wait()

	return &model.HeatmapResponse{Cells: cells}, nil
}
