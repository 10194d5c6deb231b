package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/vat-advisor-poc/server/internal/advisor"
	"github.com/vat-advisor-poc/server/internal/advisor/classify"
	"github.com/vat-advisor-poc/server/internal/advisor/model"
	"github.com/vat-advisor-poc/server/internal/advisor/repo"
	"github.com/vat-advisor-poc/server/internal/core"
	"github.com/vat-advisor-poc/server/internal/taxcalc"
	logx "github.com/vat-advisor-poc/server/pkg/logger"
	pkgredis "github.com/vat-advisor-poc/server/pkg/redis"
)

// AppConfig defines all configurable parameters for the advisor demo,
// sourced from environment variables (loaded from .env for local runs).
type AppConfig struct {
	Environment string `envconfig:"APP_ENV" default:"development"`

	// Infrastructure
	Redis pkgredis.Config

	// LLM provider (only needed for CLASSIFIER_MODE=gemini)
	APIKey  string `envconfig:"GEMINI_API_KEY"`
	BaseURL string `envconfig:"GEMINI_BASE_URL"`

	// Advisor configs
	Classifier model.ClassifierConfig
	Session    model.SessionConfig
}

func main() {
	fmt.Println("VAT vehicle-deduction advisor demo")
	ctx := context.Background()

	// Load .env file
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Warning: Could not load .env file: %v", err)
	}

	var envCfg AppConfig
	if err := envconfig.Process("", &envCfg); err != nil {
		log.Fatalf("Failed to process environment config: %v", err)
	}

	logx.Init(logx.LoggerOpts{Environment: core.ParseEnvironment(envCfg.Environment)})

	ttl, err := time.ParseDuration(envCfg.Session.TTL)
	if err != nil {
		log.Fatalf("Invalid SESSION_TTL '%s': %v", envCfg.Session.TTL, err)
	}

	sessions := buildSessionRepository(envCfg, ttl)

	classifier, err := classify.New(ctx, envCfg.APIKey, envCfg.BaseURL, envCfg.Classifier)
	if err != nil {
		log.Fatalf("Failed to build classifier: %v", err)
	}

	adv := advisor.New(sessions, classifier)

	scenarios := []struct {
		description string
		utterances  []string
	}{
		{
			description: "Taxi operator, industry alone decides",
			utterances:  []string{"택시 운송업"},
		},
		{
			description: "Manufacturer with a sedan",
			utterances:  []string{"제조업", "소나타"},
		},
		{
			description: "Manufacturer with a van, seat count asked",
			utterances:  []string{"제조업", "스타렉스", "9"},
		},
	}

	for i, sc := range scenarios {
		fmt.Printf("\nScenario %d: %s\n", i+1, sc.description)

		turn, err := adv.Reset(ctx, "")
		if err != nil {
			log.Fatalf("Failed to reset session: %v", err)
		}
		printMessages(turn.Messages)

		for _, utterance := range sc.utterances {
			turn, err = adv.HandleMessage(ctx, turn.SessionID, utterance)
			if err != nil {
				log.Fatalf("Failed to handle utterance %q: %v", utterance, err)
			}
			printMessages(turn.Messages)
		}
		fmt.Printf("final step: %s\n", turn.Snapshot.Step)
	}

	// The companion calculators, for good measure.
	assessment := taxcalc.IncomeTax(55_000_000)
	fmt.Printf("\nIncome %d KRW -> %s, estimated tax %.0f KRW\n",
		assessment.Income, assessment.Level, assessment.Tax)

	elapsed, err := taxcalc.ElapsedPeriods(
		taxcalc.PeriodIndex(2023, taxcalc.FirstHalf),
		taxcalc.PeriodIndex(2025, taxcalc.SecondHalf),
		true,
	)
	if err != nil {
		log.Fatalf("Failed to compute elapsed periods: %v", err)
	}
	res := taxcalc.ResidualValue(10_000_000, taxcalc.AssetOther, elapsed)
	fmt.Printf("Residual value after %d periods: %.0f KRW\n", res.Elapsed, res.ResidualValue)
}

// buildSessionRepository prefers Redis and falls back to the in-memory
// store when no usable Redis is configured, so the demo runs anywhere.
func buildSessionRepository(cfg AppConfig, ttl time.Duration) model.SessionRepository {
	if cfg.Redis.URL == "" {
		logx.Warn().Msg("REDIS_URL not set, using in-memory session store")
		return repo.NewMemorySessionRepository()
	}
	rdb, err := cfg.Redis.New()
	if err != nil {
		logx.Warn().Err(err).Msg("Redis unavailable, using in-memory session store")
		return repo.NewMemorySessionRepository()
	}
	fmt.Println("Connected to Redis successfully")
	return repo.NewRedisSessionRepository(rdb, ttl)
}

func printMessages(msgs []model.Message) {
	for _, m := range msgs {
		fmt.Printf("[%s] %s\n", m.Role, m.Content)
	}
}
