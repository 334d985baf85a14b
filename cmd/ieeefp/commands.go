// Copyright 2020 Aleksandr Demakin. All rights reserved.

package main

import (
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var inspectOptions struct {
	exact bool
}

var nextCmd = &cobra.Command{
	Use:   "next <format> <x> <y>",
	Short: "prints the next representable value after x towards y",
	Args:  cobra.ExactArgs(3),
	RunE:  runNext,
}

var copysignCmd = &cobra.Command{
	Use:   "copysign <format> <x> <y>",
	Short: "prints a value with the magnitude of x and the sign of y",
	Args:  cobra.ExactArgs(3),
	RunE:  runCopysign,
}

var signbitCmd = &cobra.Command{
	Use:   "signbit <format> <x>",
	Short: "prints whether the sign bit of x is set",
	Args:  cobra.ExactArgs(2),
	RunE:  runSignbit,
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <format> <x>",
	Short: "prints the class and the bit pattern of x",
	Args:  cobra.ExactArgs(2),
	RunE:  runInspect,
}

func init() {
	inspectCmd.Flags().BoolVar(&inspectOptions.exact, "exact", false, "also print the exact decimal expansion")
}

// parseOperands parses args[1:] in the format named by args[0].
func parseOperands(args []string) ([]operand, error) {
	parse, err := lookupParser(args[0])
	if err != nil {
		return nil, err
	}
	result := make([]operand, 0, len(args)-1)
	for _, arg := range args[1:] {
		v, err := parse(arg)
		if err != nil {
			return nil, fmt.Errorf("bad operand %q: %w", arg, err)
		}
		result = append(result, v)
	}
	return result, nil
}

func printValue(w io.Writer, v operand) {
	fmt.Fprintf(w, "%s\t%s\t%s\n", v, v.Bits(), v.Class())
}

func runNext(cmd *cobra.Command, args []string) error {
	ops, err := parseOperands(args)
	if err != nil {
		return err
	}
	r, st := ops[0].Next(ops[1])
	log.WithFields(log.Fields{"x": ops[0].Bits(), "y": ops[1].Bits(), "status": st}).Debug("step")
	printValue(cmd.OutOrStdout(), r)
	fmt.Fprintf(cmd.OutOrStdout(), "status\t%s\n", st)
	return nil
}

func runCopysign(cmd *cobra.Command, args []string) error {
	ops, err := parseOperands(args)
	if err != nil {
		return err
	}
	printValue(cmd.OutOrStdout(), ops[0].Copysign(ops[1]))
	return nil
}

func runSignbit(cmd *cobra.Command, args []string) error {
	ops, err := parseOperands(args)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), ops[0].Signbit())
	return nil
}

func runInspect(cmd *cobra.Command, args []string) error {
	ops, err := parseOperands(args)
	if err != nil {
		return err
	}
	v, w := ops[0], cmd.OutOrStdout()
	fmt.Fprintf(w, "value\t%s\n", v)
	fmt.Fprintf(w, "bits\t%s\n", v.Bits())
	fmt.Fprintf(w, "class\t%s\n", v.Class())
	fmt.Fprintf(w, "signbit\t%v\n", v.Signbit())
	if inspectOptions.exact {
		if d, ok := exactDecimal(v.Big()); ok {
			fmt.Fprintf(w, "exact\t%s\n", d.String())
		}
	}
	return nil
}
