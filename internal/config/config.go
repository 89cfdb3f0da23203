package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

type BoardConfig struct {
	BaseURL       string `toml:"base_url"`
	ArticleLimit  int    `toml:"article_limit"`
	ArticleOffset int    `toml:"article_offset"`
	// Encoding selects an optional body transcoding step. Empty means the
	// body is already UTF-8; "euc-kr" decodes legacy Korean boards.
	Encoding string `toml:"encoding"`
}

type SelectorConfig struct {
	Row       string `toml:"row"`
	Index     string `toml:"index"`
	Category  string `toml:"category"`
	Title     string `toml:"title"`
	Link      string `toml:"link"`
	Author    string `toml:"author"`
	ExpiredAt string `toml:"expired_at"`
}

type WatermarkConfig struct {
	Backend string `toml:"backend"`
}

type WebhookConfig struct {
	Endpoint string `toml:"endpoint"`
}

type Config struct {
	Board     BoardConfig     `toml:"board"`
	Selectors SelectorConfig  `toml:"selectors"`
	Watermark WatermarkConfig `toml:"watermark"`
	Webhook   WebhookConfig   `toml:"webhook"`
}

// Default reproduces the constants the program ran with before it was
// configurable: the media department board, one page of 30 notices.
func Default() *Config {
	return &Config{
		Board: BoardConfig{
			BaseURL:       "http://media.ajou.ac.kr/media/board/notice.do",
			ArticleLimit:  30,
			ArticleOffset: 0,
		},
		Watermark: WatermarkConfig{
			Backend: "file",
		},
	}
}

// Load reads a TOML config file on top of the defaults. A missing file is not
// an error so the binary keeps working standalone next to its watermark file.
func Load(path string) (*Config, error) {
	config := Default()

	_, err := toml.DecodeFile(path, config)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return nil, fmt.Errorf("decoding config %s: %w", path, err)
	}

	return config, nil
}
