// Package hilow parses game command flags and plays one game session.
package hilow

import (
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"

	"github.com/google/uuid"

	"github.com/louisbranch/hilow/internal/core/guess"
	"github.com/louisbranch/hilow/internal/core/session"
	"github.com/louisbranch/hilow/internal/platform/config"
	"github.com/louisbranch/hilow/internal/platform/logging"
	"github.com/louisbranch/hilow/internal/platform/random"
)

// Config holds game command configuration.
type Config struct {
	MinValue   int    `env:"HILOW_MIN_VALUE" envDefault:"1"`
	MaxValue   int    `env:"HILOW_MAX_VALUE" envDefault:"100"`
	MaxGuesses int    `env:"HILOW_MAX_GUESSES" envDefault:"10"`
	Seed       int64  `env:"HILOW_SEED" envDefault:"0"`
	LogLevel   string `env:"HILOW_LOG_LEVEL" envDefault:"disabled"`
}

// ParseConfig parses environment defaults and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	fs.IntVar(&cfg.MinValue, "min-value", cfg.MinValue, "minimum value for the target range")
	fs.IntVar(&cfg.MaxValue, "max-value", cfg.MaxValue, "maximum value for the target range")
	fs.IntVar(&cfg.MaxGuesses, "max-guesses", cfg.MaxGuesses, "maximum number of guesses allowed")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed for reproducible games (0 draws a random seed)")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "stderr diagnostic level (disabled, debug, info, warn, error)")
	if args == nil {
		args = []string{}
	}
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run draws a target and plays one game session. Guesses are read from in
// and outcome labels are written to out, followed by exactly one verdict
// line, "You won" or "You lost". A lost game is not an error.
func Run(cfg Config, in io.Reader, out io.Writer) error {
	logger, err := logging.New(os.Stderr, cfg.LogLevel)
	if err != nil {
		return err
	}
	logger = logger.With().Str("session_id", uuid.NewString()).Logger()

	seed := cfg.Seed
	if seed == 0 {
		seed, err = random.NewSeed()
		if err != nil {
			return err
		}
	}
	rng := rand.New(rand.NewSource(seed))

	logger.Debug().
		Int("min_value", cfg.MinValue).
		Int("max_value", cfg.MaxValue).
		Int("max_guesses", cfg.MaxGuesses).
		Int64("seed", seed).
		Msg("session configured")

	target, err := guess.NewTarget(rng, cfg.MinValue, cfg.MaxValue)
	if err != nil {
		return err
	}
	// The drawn target must honor the declared bounds before play starts.
	if err := guess.ValidateTarget(target, cfg.MinValue, cfg.MaxValue); err != nil {
		return err
	}
	logger.Debug().Int("target", target).Msg("target drawn")

	result, err := session.Play(target, cfg.MaxGuesses, in, out)
	if err != nil {
		return fmt.Errorf("play session: %w", err)
	}

	logger.Info().
		Bool("won", result.Won).
		Int("guesses_used", result.GuessesUsed).
		Msg("session finished")

	verdict := "You lost"
	if result.Won {
		verdict = "You won"
	}
	if _, err := fmt.Fprintln(out, verdict); err != nil {
		return fmt.Errorf("write verdict: %w", err)
	}
	return nil
}
