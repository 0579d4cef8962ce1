/*
Command chronos performs calendar arithmetic from the command line.

	chronos date 2021-060
	chronos add 2021-01-31T12:00:00Z P1DT6H
	chronos diff 2021-03-01T00:00:00Z 2021-02-01T00:00:00Z
	chronos convert 2021-01-01T00:00:00Z --to -05:00
	chronos now --local
	chronos random --count 3 --constraint workday

Settings are read from the environment, or from the YAML file named by
--config; see "chronos env".
*/
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/JesseCoretta/go-chronos"
)

func init() {
	chronos.RegisterNamedConstraint("workday", chronos.WeekdayConstraint(
		chronos.Monday, chronos.Tuesday, chronos.Wednesday, chronos.Thursday, chronos.Friday))
	chronos.RegisterNamedConstraint("weekend", chronos.WeekdayConstraint(
		chronos.Saturday, chronos.Sunday))
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "chronos:", err)
		os.Exit(1)
	}
}
