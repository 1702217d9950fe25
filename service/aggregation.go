package service

import (
	"fmt"
	"sort"
	"time"

	"sentinance/customerrors"
	"sentinance/model"
	"sentinance/util"
)

const (
	TopMoversCount  = 3
	MostActiveCount = 5

	// Scores inside (-heatmapBand, heatmapBand) count as neither positive nor negative.
	heatmapBand = 0.1
)

// BuildSentimentSummary keeps mention order and splits timestamps and scores
// into index-aligned columns.
func BuildSentimentSummary(ticker string, source model.TextSource, mentions []model.SentimentMention) (*model.SentimentSummary, error) {
	if len(mentions) == 0 {
		return nil, fmt.Errorf("no mentions for %s: %w", ticker, customerrors.ErrNoData)
	}

	summary := &model.SentimentSummary{
		Ticker:     ticker,
		Source:     source,
		Timestamps: make([]time.Time, len(mentions)),
		Scores:     make([]float64, len(mentions)),
		Mentions:   mentions,
	}
	for i, m := range mentions {
		summary.Timestamps[i] = m.CreatedAt
		summary.Scores[i] = m.Sentiment
	}
	return summary, nil
}

// RankMovers picks the biggest gainers and losers. Ties keep watch-list order.
func RankMovers(entries []model.MoverEntry) model.MoversResponse {
	gainers := append([]model.MoverEntry(nil), entries...)
	sort.SliceStable(gainers, func(i, j int) bool {
		return gainers[i].ChangePercent > gainers[j].ChangePercent
	})

	losers := append([]model.MoverEntry(nil), entries...)
	sort.SliceStable(losers, func(i, j int) bool {
		return losers[i].ChangePercent < losers[j].ChangePercent
	})

	return model.MoversResponse{
		Gainers: head(gainers, TopMoversCount),
		Losers:  head(losers, TopMoversCount),
	}
}

func RankMostActive(entries []model.MoverEntry) model.MostActiveResponse {
	active := append([]model.MoverEntry(nil), entries...)
	sort.SliceStable(active, func(i, j int) bool {
		return active[i].Volume > active[j].Volume
	})
	return model.MostActiveResponse{MostActive: head(active, MostActiveCount)}
}

func BuildHeatmapCell(ticker string, mentions []model.SentimentMention) model.HeatmapCell {
	cell := model.HeatmapCell{Ticker: ticker, Mentions: len(mentions)}
	if len(mentions) == 0 {
		return cell
	}

	var total float64
	for _, m := range mentions {
		total += m.Sentiment
		switch {
		case m.Sentiment > heatmapBand:
			cell.Positive++
		case m.Sentiment < -heatmapBand:
			cell.Negative++
		}
	}
	cell.AverageSentiment = util.RoundToTwo(total / float64(len(mentions)))
	return cell
}

func head(entries []model.MoverEntry, n int) []model.MoverEntry {
	if len(entries) > n {
		return entries[:n]
	}
	return entries
}
