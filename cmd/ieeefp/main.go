// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Command ieeefp inspects IEEE-754 bit patterns and verifies the ieee754 package.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const envPrefix = "IEEEFP_"

var options struct {
	logLevel string
	jsonLog  bool
}

var rootCmd = &cobra.Command{
	Use:   "ieeefp",
	Short: "IEEE-754 sign and adjacent-value toolbox",
	Long: `
Inspects floating-point bit patterns and steps values to their neighbours
for binary32, binary64, extended80 and binary128 formats.

Values are Go floating-point literals, "inf", "nan", or raw bit patterns
with the "bits:" prefix, like bits:0x3ff0000000000000.
Every flag can also be set with an IEEEFP_<FLAG> environment variable.
`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&options.logLevel, "log-level", "info", "log level: debug, info, warn, error")
	flags.BoolVar(&options.jsonLog, "json-log", false, "write logs in json format")

	rootCmd.AddCommand(nextCmd, copysignCmd, signbitCmd, inspectCmd, verifyCmd)
}

func setup(cmd *cobra.Command, args []string) error {
	if err := applyEnv(cmd.Flags()); err != nil {
		return err
	}
	level, err := log.ParseLevel(options.logLevel)
	if err != nil {
		return err
	}
	log.SetLevel(level)
	log.SetOutput(os.Stderr)
	if options.jsonLog {
		log.SetFormatter(&log.JSONFormatter{})
	}
	return nil
}

// applyEnv sets every flag that was not given on the command line
// from its environment variable, if present.
func applyEnv(flags *pflag.FlagSet) error {
	var err error
	flags.VisitAll(func(f *pflag.Flag) {
		if err != nil || f.Changed {
			return
		}
		name := envPrefix + strings.ToUpper(strings.ReplaceAll(f.Name, "-", "_"))
		value, ok := os.LookupEnv(name)
		if !ok {
			return
		}
		if setErr := flags.Set(f.Name, value); setErr != nil {
			err = fmt.Errorf("bad value of %s: %w", name, setErr)
		}
	})
	return err
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		log.WithError(err).Error("command failed")
		os.Exit(1)
	}
}
