// Command pedersen-demo commits to a message with toy parameters, then checks
// the opening and a tampered one.
package main

import (
	"crypto/rand"
	"errors"
	"flag"
	"fmt"
	"io"
	mrand "math/rand"
	"os"

	"github.com/rs/zerolog"
	"github.com/taurusgroup/pedersen/pkg/math/sample"
	"github.com/taurusgroup/pedersen/pkg/pedersen"
)

const redactedPlaceholder = "[redacted]"

type config struct {
	g, h, p     uint64
	message     uint64
	seed        int64
	blindingMax uint64
	verbose     bool
}

func parseFlags(args []string, output io.Writer) (*config, error) {
	var cfg config
	fs := flag.NewFlagSet("pedersen-demo", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Uint64Var(&cfg.g, "g", 5, "generator for the message")
	fs.Uint64Var(&cfg.h, "h", 7, "generator for the blinding factor")
	fs.Uint64Var(&cfg.p, "p", 101, "modulus")
	fs.Uint64Var(&cfg.message, "message", 9, "message to commit to")
	fs.Int64Var(&cfg.seed, "seed", 0, "seed for a deterministic blinding factor, 0 uses crypto/rand")
	fs.Uint64Var(&cfg.blindingMax, "blinding-max", 1000, "blinding factors are drawn from [1, blinding-max)")
	fs.BoolVar(&cfg.verbose, "v", false, "log at debug level")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if cfg.blindingMax < 2 {
		return nil, errors.New("blinding-max must be at least 2")
	}
	return &cfg, nil
}

func (cfg *config) randomness() io.Reader {
	if cfg.seed == 0 {
		return rand.Reader
	}
	return mrand.New(mrand.NewSource(cfg.seed))
}

func run(args []string, stdout, stderr io.Writer) error {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	level := zerolog.InfoLevel
	if cfg.verbose {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: stderr, NoColor: true}).Level(level).With().
		Timestamp().
		Logger()

	ped, err := pedersen.New(cfg.g, cfg.h, cfg.p)
	if err != nil {
		return fmt.Errorf("parameters: %w", err)
	}
	log = log.With().
		Uint64("g", ped.G()).
		Uint64("h", ped.H()).
		Uint64("p", ped.P()).
		Logger()
	if err := ped.Validate(); err != nil {
		log.Warn().Err(err).Msg("parameters are not fit for binding or hiding")
	}

	blinding, err := sample.Uint64(cfg.randomness(), 1, cfg.blindingMax)
	if err != nil {
		return fmt.Errorf("blinding: %w", err)
	}
	log.Debug().Str("blinding", redactedPlaceholder).Msg("sampled blinding factor")

	c := ped.Commit(cfg.message, blinding)
	log.Info().Uint64("commitment", uint64(c)).Msg("committed")

	ok := ped.Verify(c, cfg.message, blinding)
	log.Info().Bool("valid", ok).Msg("verified opening")

	tampered := ped.Verify(c, cfg.message, blinding+1)
	log.Info().Bool("valid", tampered).Msg("verified tampered opening")

	fmt.Fprintf(stdout, "commitment: %d\n", c)
	fmt.Fprintf(stdout, "opening valid: %t\n", ok)
	fmt.Fprintf(stdout, "tampered opening valid: %t\n", tampered)
	return nil
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "pedersen-demo: %v\n", err)
		os.Exit(1)
	}
}
