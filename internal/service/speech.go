package service

import (
	"context"
	"log/slog"

	"go_5_vocab_path/internal/config"
	"go_5_vocab_path/internal/middleware"
)

// Speaker は音声出力コラボレータのポートです。テキストを受け取って
// 音声を生成するだけで、コアが消費する戻り値はありません
type Speaker interface {
	Speak(ctx context.Context, text string) error
}

// --- LogSpeaker ---
type LogSpeaker struct{}

func (s *LogSpeaker) Speak(ctx context.Context, text string) error {
	logger := middleware.GetLogger(ctx)
	logger.Info("--- Speaking (LogSpeaker) ---", "text", text)
	return nil
}

// --- NewSpeaker ファクトリ関数 ---
func NewSpeaker(cfg *config.Config) Speaker {
	logger := slog.Default()
	switch cfg.Speech.Type {
	case "polly":
		logger.Info("Initializing Polly speaker...")
		return NewPollySpeaker(cfg)
	case "log":
		logger.Info("Initializing Log speaker...")
		return &LogSpeaker{}
	default:
		logger.Warn("Unknown speaker type, defaulting to LogSpeaker", "type", cfg.Speech.Type)
		return &LogSpeaker{}
	}
}
