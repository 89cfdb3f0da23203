package main

import (
	"log"
	"os"
	"strconv"

	. "MediaNotifier/internal/utils"
	"MediaNotifier/internal/config"
	"MediaNotifier/internal/notifier"
	"MediaNotifier/internal/watermark"
)

const configPath = "configs/param.toml"

func main() {
	CreateDir("logs")

	sentNoticeLog := OpenLogFile("logs/sentNoticeLog.txt")
	defer sentNoticeLog.Close()

	watermarkLog := OpenLogFile("logs/watermarkLog.txt")
	defer watermarkLog.Close()

	ErrorLogger = log.New(os.Stderr, "", log.Ldate|log.Ltime|log.Lshortfile)
	SentNoticeLogger = CreateLogger(sentNoticeLog)
	WatermarkLogger = CreateLogger(watermarkLog)

	if len(os.Args) < 2 {
		ErrorLogger.Fatal("usage: MediaNotifier <previous_index> [xml|md|cm]")
	}
	previousIndex, err := strconv.Atoi(os.Args[1])
	if err != nil {
		ErrorLogger.Fatalf("previous index must be an integer: %v", err)
	}

	mode := "xml"
	if len(os.Args) > 2 {
		mode = os.Args[2]
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		ErrorLogger.Fatal(err)
	}

	store, err := watermark.New(cfg.Watermark)
	if err != nil {
		ErrorLogger.Fatal(err)
	}

	n := &notifier.Notifier{
		Config:  cfg,
		Store:   store,
		Out:     os.Stdout,
		Diag:    log.New(os.Stderr, "", 0),
		Sent:    SentNoticeLogger,
		Advance: WatermarkLogger,
	}

	err = n.Run(previousIndex, mode)
	if err != nil {
		ErrorLogger.Fatal(err)
	}
}
