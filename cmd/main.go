package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	awsssm "github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/joho/godotenv"

	"finance-assistant/handler"
	"finance-assistant/internal/integrations/finbert"
	"finance-assistant/internal/integrations/openai"
	"finance-assistant/internal/integrations/paramstore"
	"finance-assistant/internal/intent"
	"finance-assistant/internal/knowledge"
	"finance-assistant/internal/repository"
	"finance-assistant/internal/responder"
	"finance-assistant/internal/sentiment"
	"finance-assistant/internal/session"
	"finance-assistant/internal/usecase"
)

const (
	providerLocal   = "local"
	providerFinBERT = "finbert"
	providerOpenAI  = "openai"
)

func main() {
	ctx := context.Background()

	// A .env file is optional; deployed functions use real environment variables.
	_ = godotenv.Load()

	logger := slog.Default()
	knowledge.MustValidate()

	// ---- Configuration (read only here) ----
	transcriptTable := os.Getenv("TRANSCRIPT_TABLE")
	provider := strings.ToLower(envString("SENTIMENT_PROVIDER", providerLocal))
	sentimentTimeout := envDuration("SENTIMENT_TIMEOUT", 5*time.Second)
	sentimentRPS := envInt("SENTIMENT_RPS", 5)
	memoryCapacity := envInt("MEMORY_CAPACITY", 10)
	maxMessageLen := envInt("MAX_MESSAGE_LENGTH", 2000)
	maxSessions := envInt("MAX_SESSIONS", session.DefaultMaxSessions)

	// AWS is only needed for the transcript and for scorer credentials.
	var cfg aws.Config
	if transcriptTable != "" || provider != providerLocal {
		var err error
		cfg, err = config.LoadDefaultConfig(ctx)
		if err != nil {
			logger.Error("failed to load AWS config", "err", err)
			os.Exit(1)
		}
	}

	// ---- Sentiment ----
	analyzerOpts := []sentiment.Option{sentiment.WithLogger(logger)}
	if provider != providerLocal {
		scorer, err := newScorer(provider, cfg)
		if err != nil {
			logger.Error("failed to create sentiment scorer", "provider", provider, "err", err)
			os.Exit(1)
		}
		analyzerOpts = append(analyzerOpts,
			sentiment.WithScorer(provider, scorer),
			sentiment.WithTimeout(sentimentTimeout),
			sentiment.WithRateLimit(float64(sentimentRPS), sentimentRPS),
		)
	}
	analyzer := sentiment.NewAnalyzer(analyzerOpts...)

	generator, err := responder.NewGenerator(analyzer)
	if err != nil {
		logger.Error("failed to create response generator", "err", err)
		os.Exit(1)
	}

	sessions, err := session.NewStore(maxSessions, memoryCapacity, session.WithLogger(logger))
	if err != nil {
		logger.Error("failed to create session store", "err", err)
		os.Exit(1)
	}

	// ---- Use case ----
	chatOpts := []usecase.Option{
		usecase.WithMaxMessageLength(maxMessageLen),
		usecase.WithLogger(logger),
	}
	if transcriptTable != "" {
		transcript, err := repository.New(awsdynamodb.NewFromConfig(cfg), transcriptTable)
		if err != nil {
			logger.Error("failed to create transcript client", "err", err)
			os.Exit(1)
		}
		chatOpts = append(chatOpts, usecase.WithTranscript(transcript))
	}
	chatService, err := usecase.NewChatService(intent.NewClassifier(), generator, sessions, chatOpts...)
	if err != nil {
		logger.Error("failed to create chat service", "err", err)
		os.Exit(1)
	}

	h, err := handler.NewHandler(chatService, logger)
	if err != nil {
		logger.Error("failed to create handler", "err", err)
		os.Exit(1)
	}

	logger.Info("finance assistant starting", "sentiment_provider", analyzer.Provider(), "transcript", transcriptTable != "")
	lambda.Start(h.Handle)
}

func newScorer(provider string, cfg aws.Config) (sentiment.Scorer, error) {
	store, err := paramstore.New(awsssm.NewFromConfig(cfg), mustEnv("PARAM_PREFIX"))
	if err != nil {
		return nil, err
	}

	switch provider {
	case providerFinBERT:
		var tokens finbert.TokenSource
		if envBool("FINBERT_AUTH", true) {
			tok, err := store.Token(paramstore.FinBERTToken)
			if err != nil {
				return nil, err
			}
			tokens = tok
		}
		return finbert.NewClient(tokens, finbert.WithURL(os.Getenv("FINBERT_URL"))), nil
	case providerOpenAI:
		tok, err := store.Token(paramstore.OpenAIToken)
		if err != nil {
			return nil, err
		}
		client, err := openai.NewClient(tok,
			openai.WithBaseURL(os.Getenv("OPENAI_BASE_URL")),
			openai.WithModel(os.Getenv("OPENAI_MODEL")),
		)
		if err != nil {
			return nil, err
		}
		return client, nil
	default:
		return nil, fmt.Errorf("unknown sentiment provider %q", provider)
	}
}

func mustEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		slog.Error("required environment variable is not set", "key", key)
		os.Exit(1)
	}
	return v
}

func envString(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func envBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

func envDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}
