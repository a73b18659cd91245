package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/k0kubun/pp"
	"github.com/kotaroooo0/eojeol"
	"github.com/spf13/cobra"
)

// loadConfig reads the --config file (or the defaults) and applies the
// persistent flags the user set on top of it.
func loadConfig(cmd *cobra.Command) (*eojeol.Config, error) {
	flags := cmd.Flags()

	cfg := eojeol.DefaultConfig()
	path, err := flags.GetString("config")
	if err != nil {
		return nil, err
	}
	if path != "" {
		cfg, err = eojeol.LoadConfigFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	for name, dst := range map[string]*string{
		"dicdir":    &cfg.DicDir,
		"userdic":   &cfg.UserDic,
		"backend":   &cfg.Backend,
		"mecab-bin": &cfg.MeCabBin,
	} {
		if !flags.Changed(name) {
			continue
		}
		if *dst, err = flags.GetString(name); err != nil {
			return nil, err
		}
	}
	if flags.Changed("workers") {
		if cfg.Workers, err = flags.GetInt("workers"); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration error: %w", err)
	}
	return cfg, nil
}

// setupLogger creates a structured logger based on verbosity setting.
func setupLogger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelWarn
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
	return logger
}

// readPhrases returns the arguments, or the non-empty lines of stdin when
// there are none.
func readPhrases(cmd *cobra.Command, args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}

	var phrases []string
	scanner := bufio.NewScanner(cmd.InOrStdin())
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		phrases = append(phrases, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read stdin: %w", err)
	}
	return phrases, nil
}

func newBatchTagger(cfg *eojeol.Config, logger *slog.Logger) *eojeol.BatchTagger {
	return eojeol.NewBatchTagger(func() (*eojeol.Tagger, error) {
		return cfg.NewTagger(eojeol.WithLogger(logger))
	}, eojeol.WithWorkers(cfg.Workers), eojeol.WithBatchLogger(logger))
}

// writeJSON prints one JSON document per value.
func writeJSON[T any](cmd *cobra.Command, values ...T) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetEscapeHTML(false)
	for _, v := range values {
		if err := enc.Encode(v); err != nil {
			return err
		}
	}
	dump(cmd, values)
	return nil
}

func dump(cmd *cobra.Command, v any) {
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		pp.Fprintln(cmd.ErrOrStderr(), v)
	}
}

func init() {
	if os.Getenv("NO_COLOR") != "" {
		pp.ColoringEnabled = false
	}
}
