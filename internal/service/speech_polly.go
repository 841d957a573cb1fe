package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"go_5_vocab_path/internal/config"
	"go_5_vocab_path/internal/middleware"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/polly"
	"github.com/aws/aws-sdk-go-v2/service/polly/types"
)

// PollySpeaker は AWS Polly で音声を合成する実装です。
// 再生は表示層の責務なので、合成結果はファイルに書き出すだけです
type PollySpeaker struct {
	client *polly.Client
	cfg    *config.SpeechConfig
}

// NewPollySpeaker は設定に応じて認証方法を切り替えてPollyクライアントを生成します
func NewPollySpeaker(cfg *config.Config) Speaker {
	var awsCfgOpts []func(*awsconfig.LoadOptions) error

	awsCfgOpts = append(awsCfgOpts, awsconfig.WithRegion(cfg.Speech.Region))

	switch cfg.Speech.AuthType {
	case "static_credentials":
		slog.Info("Configuring Polly with static credentials.")
		if cfg.Speech.AccessKeyID == "" || cfg.Speech.SecretAccessKey == "" {
			slog.Error("Speech auth_type is 'static_credentials' but access_key_id or secret_access_key is missing in config.")
			// 起動時にpanicさせることで、設定ミスに即座に気づけるようにする
			panic("missing static credentials for Polly")
		}
		creds := credentials.NewStaticCredentialsProvider(
			cfg.Speech.AccessKeyID,
			cfg.Speech.SecretAccessKey,
			"",
		)
		awsCfgOpts = append(awsCfgOpts, awsconfig.WithCredentialsProvider(creds))

	case "iam_role":
		slog.Info("Configuring Polly with IAM Role credentials.")

	default:
		slog.Warn("Unknown speech auth_type specified, defaulting to IAM Role.", "type", cfg.Speech.AuthType)
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsCfgOpts...)
	if err != nil {
		slog.Error("Failed to load AWS config for Polly", slog.Any("error", err))
		panic("failed to load AWS config for Polly")
	}

	return &PollySpeaker{
		client: polly.NewFromConfig(awsCfg),
		cfg:    &cfg.Speech,
	}
}

func (s *PollySpeaker) Speak(ctx context.Context, text string) error {
	logger := middleware.GetLogger(ctx)

	voice := s.cfg.VoiceID
	if voice == "" {
		voice = "Ewa"
	}

	out, err := s.client.SynthesizeSpeech(ctx, &polly.SynthesizeSpeechInput{
		Text:         aws.String(text),
		OutputFormat: types.OutputFormatMp3,
		VoiceId:      types.VoiceId(voice),
	})
	if err != nil {
		logger.Error("Failed to synthesize speech", "error", err, "voice", voice)
		return err
	}
	defer out.AudioStream.Close()

	outputDir := s.cfg.OutputDir
	if outputDir == "" {
		outputDir = "data/speech"
	}
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		logger.Error("Failed to create speech output directory", "error", err, "dir", outputDir)
		return err
	}

	path := filepath.Join(outputDir, fmt.Sprintf("speech-%d.mp3", time.Now().UnixNano()))
	f, err := os.Create(path)
	if err != nil {
		logger.Error("Failed to create speech output file", "error", err, "path", path)
		return err
	}
	defer f.Close()

	if _, err := io.Copy(f, out.AudioStream); err != nil {
		logger.Error("Failed to write speech output", "error", err, "path", path)
		return err
	}

	logger.Info("Speech synthesized", "path", path, "voice", voice)
	return nil
}
