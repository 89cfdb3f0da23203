package config

import (
	"path/filepath"
	"testing"
)

func TestLoadOverlaysDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join("testdata", "param.toml"))
	if err != nil {
		t.Fatalf("Load returned an unexpected error: %v", err)
	}

	if cfg.Board.BaseURL != "https://example.ac.kr/board/notice.do" {
		t.Errorf("base_url not applied: %s", cfg.Board.BaseURL)
	}
	if cfg.Board.ArticleLimit != 10 {
		t.Errorf("article_limit not applied: %d", cfg.Board.ArticleLimit)
	}
	if cfg.Board.ArticleOffset != 0 {
		t.Errorf("article_offset should keep its default: %d", cfg.Board.ArticleOffset)
	}
	if cfg.Board.Encoding != "euc-kr" {
		t.Errorf("encoding not applied: %s", cfg.Board.Encoding)
	}
	if cfg.Selectors.Row != "table.other-board > tbody > tr" {
		t.Errorf("selector override not applied: %s", cfg.Selectors.Row)
	}
	if cfg.Watermark.Backend != "redis" {
		t.Errorf("watermark backend not applied: %s", cfg.Watermark.Backend)
	}
	if cfg.Webhook.Endpoint != "https://hooks.example.com/crawling" {
		t.Errorf("webhook endpoint not applied: %s", cfg.Webhook.Endpoint)
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join("testdata", "does_not_exist.toml"))
	if err != nil {
		t.Fatalf("a missing config file must not be an error: %v", err)
	}

	if cfg.Board.BaseURL != "http://media.ajou.ac.kr/media/board/notice.do" {
		t.Errorf("default base_url wrong: %s", cfg.Board.BaseURL)
	}
	if cfg.Board.ArticleLimit != 30 {
		t.Errorf("default article_limit wrong: %d", cfg.Board.ArticleLimit)
	}
	if cfg.Watermark.Backend != "file" {
		t.Errorf("default watermark backend wrong: %s", cfg.Watermark.Backend)
	}
}
