package util

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"sentinance/model"
)

// ReadConstituents parses an index constituents CSV. Only the Symbol and
// Security columns are used; rows missing either are skipped.
func ReadConstituents(r io.Reader) ([]model.TickerRecord, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	headerMap := make(map[string]int)
	for i, name := range header {
		headerMap[strings.TrimSpace(name)] = i
	}

	symbolIdx, hasSymbol := headerMap["Symbol"]
	nameIdx, hasName := headerMap["Security"]
	if !hasSymbol || !hasName {
		return nil, fmt.Errorf("missing required columns: Symbol or Security")
	}

	var records []model.TickerRecord
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading csv record: %w", err)
		}
		if symbolIdx >= len(record) || nameIdx >= len(record) {
			continue
		}

		symbol := strings.TrimSpace(record[symbolIdx])
		name := strings.TrimSpace(record[nameIdx])
		if symbol == "" || name == "" {
			continue
		}
		records = append(records, model.TickerRecord{Symbol: symbol, Name: name})
	}

	return records, nil
}
