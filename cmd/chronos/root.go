package main

import (
	"errors"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/JesseCoretta/go-chronos"
	"github.com/JesseCoretta/go-chronos/config"
	"github.com/JesseCoretta/go-chronos/serde"
)

// app holds the state shared by the subcommands of a single execution.
type app struct {
	kit *config.Kit
	log *slog.Logger

	configPath string
	output     string
	format     string
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "chronos",
		Short:         "Calendar arithmetic on dates, times and offsets",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML configuration file")
	pf.StringVarP(&a.output, "output", "o", "", "output form: text, yaml or json")
	pf.StringVarP(&a.format, "format", "f", "", "well-known format of input and output")

	root.AddCommand(
		newDateCmd(a),
		newShiftCmd(a, "add", "Advance an instant by a duration", chronos.OffsetDateTime.CheckedAdd),
		newShiftCmd(a, "sub", "Move an instant back by a duration", chronos.OffsetDateTime.CheckedSub),
		newDiffCmd(a),
		newConvertCmd(a),
		newNowCmd(a),
		newRandomCmd(a),
		newEnvCmd(),
	)
	return root
}

/*
setup loads the configuration, applies the persistent flags over it
and builds the logger and kit.
*/
func (r *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(r.configPath)
	if err != nil {
		// flags may yet repair an invalid setting
		if !errors.Is(err, config.ErrInvalid) || !flagsSet(cmd, "output", "format") {
			return err
		}
	}
	if cmd.Flags().Changed("output") {
		cfg.Output = r.output
	}
	if cmd.Flags().Changed("format") {
		cfg.Format = r.format
	}

	r.log = newLogger(cfg.Level(), cmd.ErrOrStderr())
	if r.kit, err = config.NewKit(cfg); err != nil {
		r.log.Error("invalid configuration", "error", err)
		return err
	}
	r.log.Debug("configured",
		"output", cfg.Output,
		"format", cfg.Format,
		"local_offset", cfg.Features.LocalOffset.String())
	return nil
}

func flagsSet(cmd *cobra.Command, names ...string) bool {
	for _, n := range names {
		if cmd.Flags().Changed(n) {
			return true
		}
	}
	return false
}

/*
newLogger returns a JSON logger writing to w at the given level, and
installs it as the default.
*/
func newLogger(level slog.Level, w io.Writer) *slog.Logger {
	h := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	logger := slog.New(h)
	slog.SetDefault(logger)
	return logger
}

func (r *app) textOutput() bool { return strings.EqualFold(r.kit.Config().Output, "text") }

func (r *app) emit(cmd *cobra.Command, v any) error {
	b, err := r.kit.Render(v)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(b)
	return err
}

func (r *app) emitInstant(cmd *cobra.Command, odt chronos.OffsetDateTime) error {
	if r.textOutput() {
		return r.emit(cmd, odt)
	}
	return r.emit(cmd, instantView{Instant: serde.OffsetDateTime{OffsetDateTime: odt}})
}
