package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/JesseCoretta/go-chronos"
	"github.com/JesseCoretta/go-chronos/config"
	"github.com/JesseCoretta/go-chronos/serde"
)

var errOutOfRange = errors.New("result out of range")

func newDateCmd(a *app) *cobra.Command {
	var names []string
	cmd := &cobra.Command{
		Use:   "date <value>",
		Short: "Show the calendar views of a date",
		Long: `Show the calendar, ordinal and ISO week views of a date given
as YYYY-MM-DD, YYYY-DDD or YYYY-Www-D.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			group, err := chronos.NamedConstraints[chronos.Date](names...)
			if err != nil {
				return err
			}
			d, err := chronos.NewDate(args[0], group...)
			if err != nil {
				a.log.Warn("rejected date", "input", args[0], "error", err)
				return err
			}
			return a.emit(cmd, newDateView(d))
		},
	}
	cmd.Flags().StringSliceVarP(&names, "constraint", "c", nil, "named constraints the date must satisfy")
	return cmd
}

func newShiftCmd(a *app, use, short string, shift func(chronos.OffsetDateTime, chronos.Duration) (chronos.OffsetDateTime, bool)) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <datetime> <duration>",
		Short: short,
		Long: short + `. The duration is given in ISO 8601 form,
such as P1DT6H. A negative duration must follow --, as in
"chronos ` + use + ` -- 2021-01-01T00:00:00Z -PT90M".`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			odt, err := a.kit.ParseInstant(args[0])
			if err != nil {
				return err
			}
			d, err := chronos.NewDuration(args[1])
			if err != nil {
				return err
			}
			res, ok := shift(odt, d)
			if !ok {
				a.log.Warn("arithmetic overflow", "op", use, "instant", odt.String(), "duration", d.String())
				return errOutOfRange
			}
			a.log.Debug(use, "instant", odt.String(), "duration", d.String(), "result", res.String())
			return a.emitInstant(cmd, res)
		},
	}
}

func newDiffCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "diff <datetime> <datetime>",
		Short: "Show the duration from the second instant to the first",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var odt [2]chronos.OffsetDateTime
			for i := range odt {
				var err error
				if odt[i], err = a.kit.ParseInstant(args[i]); err != nil {
					return err
				}
			}
			d := odt[0].Since(odt[1])
			if a.textOutput() {
				return a.emit(cmd, d)
			}
			return a.emit(cmd, durationView{
				Duration: serde.Duration{Duration: d},
				Compact:  serde.CompactDuration{Duration: d},
			})
		},
	}
}

func newConvertCmd(a *app) *cobra.Command {
	var to string
	cmd := &cobra.Command{
		Use:   "convert <datetime> --to <offset>",
		Short: "Show an instant in another UTC offset",
		Long: `Show an instant in another UTC offset, given as Z or ±HH:MM[:SS].
West-of-UTC offsets are accepted as --to -05:00 or --to=-05:00.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			odt, err := a.kit.ParseInstant(args[0])
			if err != nil {
				return err
			}
			offset, err := chronos.NewUtcOffset(to)
			if err != nil {
				return err
			}
			res, ok := odt.CheckedToOffset(offset)
			if !ok {
				return errOutOfRange
			}
			return a.emitInstant(cmd, res)
		},
	}
	cmd.Flags().StringVarP(&to, "to", "t", "", "target UTC offset")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}

func newNowCmd(a *app) *cobra.Command {
	var local bool
	cmd := &cobra.Command{
		Use:   "now",
		Short: "Show the current instant",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !local {
				return a.emitInstant(cmd, chronos.NowUTC())
			}
			src, err := a.kit.Offsets()
			if err != nil {
				return err
			}
			now, err := src.NowLocal()
			if err != nil {
				a.log.Warn("local offset unavailable", "error", err)
				return err
			}
			return a.emitInstant(cmd, now)
		},
	}
	cmd.Flags().BoolVarP(&local, "local", "l", false, "show the instant in the host's local offset")
	return cmd
}

// maxDraws bounds the attempts to satisfy the constraints of random.
const maxDraws = 10_000

func newRandomCmd(a *app) *cobra.Command {
	var (
		count    int
		names    []string
		from, to string
	)
	cmd := &cobra.Command{
		Use:   "random",
		Short: "Generate random instants",
		Long: `Generate random instants between two dates inclusive, in the
default offset.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if count < 1 {
				return fmt.Errorf("count %d: must be positive", count)
			}
			gen, err := a.kit.Rand()
			if err != nil {
				return err
			}
			group, err := chronos.NamedConstraints[chronos.Date](names...)
			if err != nil {
				return err
			}
			lo, err := chronos.NewDate(from)
			if err != nil {
				return err
			}
			hi, err := chronos.NewDate(to)
			if err != nil {
				return err
			}
			a.log.Debug("random", "seed", gen.Seed(), "count", count)

			var out []serde.OffsetDateTime
			for draws := 0; len(out) < count; draws++ {
				if draws == maxDraws {
					return fmt.Errorf("no value satisfying %v after %d draws", names, maxDraws)
				}
				odt := gen.DateBetween(lo, hi).WithTime(gen.Time()).AssumeOffset(a.kit.DefaultOffset())
				if group.Constrain(odt.Date()) != nil {
					continue
				}
				if a.textOutput() {
					if err = a.emit(cmd, odt); err != nil {
						return err
					}
				}
				out = append(out, serde.OffsetDateTime{OffsetDateTime: odt})
			}
			if a.textOutput() {
				return nil
			}
			return a.emit(cmd, out)
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of instants")
	cmd.Flags().StringSliceVarP(&names, "constraint", "c", nil, "named constraints the date of each instant must satisfy")
	cmd.Flags().StringVar(&from, "from", "1970-01-01", "earliest date")
	cmd.Flags().StringVar(&to, "to", "2099-12-31", "latest date")
	return cmd
}

func newEnvCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "env",
		Short: "Describe the environment variables read at start-up",
		Args:  cobra.NoArgs,
		// runs without a configuration
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), config.Usage())
			return err
		},
	}
}
