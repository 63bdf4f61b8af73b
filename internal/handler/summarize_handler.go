package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tonynagyeurope/news-ai-agent/internal/model"
	"github.com/tonynagyeurope/news-ai-agent/internal/summary"
)

type Summarizer interface {
	Summarize(ctx context.Context, req summary.Request) (*summary.Result, error)
	SummarizeEach(ctx context.Context, items []model.NewsItem, lang, mode string) []summary.BatchItem
}

type SummarizeHandler struct {
	svc Summarizer
}

func NewSummarizeHandler(svc Summarizer) *SummarizeHandler {
	return &SummarizeHandler{svc: svc}
}

var exampleBody = gin.H{
	"items": []gin.H{{
		"title":       "Example headline",
		"url":         "https://example.com/article",
		"source":      "Example Wire",
		"publishedAt": "2026-01-15T08:30:00Z",
	}},
	"lang":         "en",
	"mode":         "quality",
	"summaryStyle": "balanced",
}

func (h *SummarizeHandler) PostSummarize(c *gin.Context) {
	var req SummarizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"ok":      false,
			"error":   "invalid request body",
			"hint":    "send a JSON object with an items array",
			"example": exampleBody,
		})
		return
	}

	result, err := h.svc.Summarize(c.Request.Context(), summary.Request{
		Items:    req.Items,
		Lang:     req.Lang,
		MaxItems: req.MaxItems,
		Mode:     req.Mode,
		Style:    model.NormalizeStyle(req.SummaryStyle),
	})
	if err != nil {
		switch {
		case errors.Is(err, summary.ErrNoItems):
			c.JSON(http.StatusBadRequest, gin.H{
				"ok":      false,
				"error":   "no items provided — fetch articles via /search and pass them here",
				"example": exampleBody,
			})
		case errors.Is(err, summary.ErrNoUsableItems):
			c.JSON(http.StatusBadRequest, gin.H{
				"ok":    false,
				"error": "no usable items after normalization",
				"hint":  "every item needs non-empty title, url, source and publishedAt fields",
			})
		default:
			slog.Error("summarize failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, SummarizeResponse{
		OK:             true,
		Cached:         result.Cached,
		SummaryPayload: result.Payload,
	})
}

func (h *SummarizeHandler) PostSummarizeBatch(c *gin.Context) {
	var req BatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid request body"})
		return
	}
	if len(req.Items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "no items provided — fetch articles via /search and pass them here"})
		return
	}

	items := h.svc.SummarizeEach(c.Request.Context(), req.Items, req.Lang, req.Mode)

	c.JSON(http.StatusOK, BatchResponse{
		OK:    true,
		Count: len(items),
		Items: items,
	})
}
