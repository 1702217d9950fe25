package validator

import (
	"sentinance/model"

	"github.com/Oudwins/zog"
)

var TickerShape = zog.Shape{
	"Ticker": zog.String().Required().Max(12),
}

var SourceShape = zog.Shape{
	"Source": zog.String().Required().OneOf([]string{string(model.SourceReddit), string(model.SourceNews)}),
}

// SentimentQuery validates the normalized sentiment request.
var SentimentQuery = zog.Struct(TickerShape).Extend(SourceShape)
