package ingest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanAcceptsValidLines(t *testing.T) {
	input := "1\thttp://a\tTitle A\tosmanlı imparatorluğu tarih\n" +
		"2\thttp://b\tTitle B\tosmanlı devleti\r\n"

	var records []Record
	stats, err := Scan(strings.NewReader(input), func(r Record) {
		records = append(records, r)
	})
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Processed)
	assert.Equal(t, 0, stats.Errors)
	require.Len(t, records, 2)
	assert.Equal(t, uint32(1), records[0].DocID)
	assert.Equal(t, "Title B", records[1].Title)
}

func TestScanRejectsMissingFields(t *testing.T) {
	input := "1\thttp://a\tTitle A\n" // missing content field
	stats, err := Scan(strings.NewReader(input), func(Record) {})
	require.NoError(t, err)
	assert.Equal(t, 0, stats.Processed)
	assert.Equal(t, 1, stats.Errors)
}

func TestScanRejectsZeroDocID(t *testing.T) {
	input := "0\thttp://a\tT\tcontent\n"
	stats, err := Scan(strings.NewReader(input), func(Record) {})
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Errors)
}

func TestScanRejectsEmptyURLOrContent(t *testing.T) {
	input := "1\t\tT\tcontent\n2\thttp://b\tT\t\n"
	stats, err := Scan(strings.NewReader(input), func(Record) {})
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Errors)
}

func TestScanAllowsEmptyTitle(t *testing.T) {
	input := "1\thttp://a\t\tcontent\n"
	var records []Record
	stats, err := Scan(strings.NewReader(input), func(r Record) {
		records = append(records, r)
	})
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Processed)
	require.Len(t, records, 1)
	assert.Equal(t, "", records[0].Title)
}

func TestScanTruncatesOverlongFields(t *testing.T) {
	longURL := "http://" + strings.Repeat("a", 600)
	input := "1\t" + longURL + "\tT\tcontent\n"
	var records []Record
	_, err := Scan(strings.NewReader(input), func(r Record) {
		records = append(records, r)
	})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.LessOrEqual(t, len(records[0].URL), maxURLLen)
}
