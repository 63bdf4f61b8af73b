package handler

import (
	"github.com/tonynagyeurope/news-ai-agent/internal/model"
	"github.com/tonynagyeurope/news-ai-agent/internal/summary"
)

type SummarizeRequest struct {
	Items        []model.NewsItem `json:"items"`
	Lang         string           `json:"lang"`
	MaxItems     int              `json:"maxItems"`
	Mode         string           `json:"mode"`
	SummaryStyle string           `json:"summaryStyle"`
}

type SummarizeResponse struct {
	OK     bool `json:"ok"`
	Cached bool `json:"cached"`
	model.SummaryPayload
}

type BatchRequest struct {
	Items []model.NewsItem `json:"items"`
	Lang  string           `json:"lang"`
	Mode  string           `json:"mode"`
}

type BatchResponse struct {
	OK    bool                `json:"ok"`
	Count int                 `json:"count"`
	Items []summary.BatchItem `json:"items"`
}

type SearchRequest struct {
	Topic string `json:"topic"`
	Lang  string `json:"lang"`
	Limit int    `json:"limit"`
}

type SearchResponse struct {
	OK       bool             `json:"ok"`
	Cached   bool             `json:"cached"`
	Provider string           `json:"provider"`
	Count    int              `json:"count"`
	Items    []model.NewsItem `json:"items"`
}
