package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jeffpalmeri/abi/internal/config"
	"github.com/jeffpalmeri/abi/pkg/robotbyte"
)

type cliFlags struct {
	configPath string
	maskHex    string
	format     string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	var flags cliFlags
	cmd := &cobra.Command{
		Use:   "robotbyte-analyze [hex]",
		Short: "Decode single-byte robot headers",
		Long:  "robotbyte-analyze decodes robot header bytes (gender, version, active, gigahertz code) given as hex.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, flags)
			if err != nil {
				return err
			}
			opts := robotbyte.AnalyzeOptions{MaskHex: cfg.MaskHex}
			ctx := cmd.Context()
			if len(args) == 0 {
				return runInteractive(ctx, cmd.InOrStdin(), cmd.OutOrStdout(), opts, cfg.Format)
			}
			return runAnalyze(ctx, cmd.OutOrStdout(), opts, cfg.Format, args[0])
		},
	}
	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "path to a TOML config file")
	cmd.PersistentFlags().StringVar(&flags.maskHex, "mask", "", "hex-encoded 1-byte XOR mask applied to the input (2 hex chars)")
	cmd.PersistentFlags().StringVar(&flags.format, "format", config.FormatJSON, "output format: json or text")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "info", "logrus level")
	return cmd
}

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	ctx := context.Background()
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		logrus.Fatal(err)
	}
}

// resolveConfig layers explicitly set flags over the config file and applies
// the resulting log level.
func resolveConfig(cmd *cobra.Command, f cliFlags) (config.Config, error) {
	cfg := config.Default()
	if f.configPath != "" {
		loaded, err := config.Load(f.configPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}
	set := cmd.Flags()
	if f.configPath == "" || set.Changed("format") {
		cfg.Format = strings.ToLower(strings.TrimSpace(f.format))
	}
	if set.Changed("mask") {
		cfg.MaskHex = f.maskHex
	}
	if f.configPath == "" || set.Changed("log-level") {
		lvl, err := logrus.ParseLevel(f.logLevel)
		if err != nil {
			return config.Config{}, fmt.Errorf("parse --log-level: %w", err)
		}
		cfg.LogLevel = lvl
	}
	if err := config.Validate(cfg); err != nil {
		return config.Config{}, err
	}
	logrus.SetLevel(cfg.LogLevel)
	logrus.WithFields(logrus.Fields{
		"config": f.configPath,
		"format": cfg.Format,
		"masked": cfg.MaskHex != "",
	}).Debug("configuration resolved")
	return cfg, nil
}

func runInteractive(ctx context.Context, in io.Reader, out io.Writer, opts robotbyte.AnalyzeOptions, format string) error {
	scanner := bufio.NewScanner(in)
	logrus.Info("robotbyte analyze mode. Paste hex bytes and press Enter (Ctrl+D to exit).")
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := runAnalyze(ctx, out, opts, format, line); err != nil {
			logrus.WithError(err).Error("failed to decode input")
		}
	}
	return scanner.Err()
}

func runAnalyze(ctx context.Context, out io.Writer, opts robotbyte.AnalyzeOptions, format, hex string) error {
	result, err := robotbyte.AnalyzeWithOptions(ctx, hex, opts)
	if err != nil {
		return err
	}
	logrus.WithField("bytes", result.ByteCount).Debug("decoded input")
	if format == config.FormatText {
		fmt.Fprintln(out, result.Text())
		return nil
	}
	fmt.Fprintln(out, result.String())
	return nil
}
