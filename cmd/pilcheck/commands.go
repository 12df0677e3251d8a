// The MIT License (MIT)
//
// Copyright (c) 2019 West Damron
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/wdamron/pilcheck"
	"github.com/wdamron/pilcheck/ast"
	"github.com/wdamron/pilcheck/internal/typeutil"
	"github.com/wdamron/pilcheck/types"
)

func newRootCmd() *cobra.Command {
	var verbose bool
	root := &cobra.Command{
		Use:   "pilcheck",
		Short: "Inspect the type-system of the polynomial-identity language",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
		},
		SilenceUsage: true,
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.AddCommand(newSchemeCmd(), newUnifyCmd(), newBuiltinsCmd())
	return root
}

// pilcheck scheme --vars "A, B: Add" --name f "B, A -> B"
func newSchemeCmd() *cobra.Command {
	var vars, name string
	cmd := &cobra.Command{
		Use:   "scheme TYPE",
		Short: "Print a type scheme in canonical form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ts, err := types.ParseTypeScheme(vars, args[0])
			if err != nil {
				return errors.Wrap(err, "invalid type scheme")
			}
			canonical := ts.SimplifyTypeVars()
			slog.Debug("canonicalized", "input", ts, "output", canonical)
			if name != "" {
				fmt.Fprintln(cmd.OutOrStdout(), types.FormatSchemeAroundName(name, canonical))
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), canonical)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&vars, "vars", "", "quantified type-variables with their bounds, e.g. \"T1: Add, T2\"")
	cmd.Flags().StringVar(&name, "name", "", "print the scheme as the declaration of a symbol")
	return cmd
}

// pilcheck unify "int -> T" "A -> fe"
//
// Identifiers which are not elementary types are parsed as enum references, so free variables
// are declared with --vars.
func newUnifyCmd() *cobra.Command {
	var vars string
	cmd := &cobra.Command{
		Use:   "unify A B",
		Short: "Unify two types and print the unified type",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := types.ParseTypeScheme(vars, args[0])
			if err != nil {
				return errors.Wrapf(err, "invalid type %s", args[0])
			}
			b, err := types.ParseTypeScheme(vars, args[1])
			if err != nil {
				return errors.Wrapf(err, "invalid type %s", args[1])
			}
			// both sides share the declared variables
			u := typeutil.NewUnifier()
			scheme := &types.TypeScheme{Vars: a.Vars, Type: &types.Tuple{Items: []types.Type{a.Type, b.Type}}}
			inst, _ := u.Instantiate(scheme, false)
			pair := inst.(*types.Tuple)
			if err := u.Unify(pair.Items[0], pair.Items[1]); err != nil {
				return err
			}
			slog.Debug("unified", "bindings", u.Substitution().Len())
			fmt.Fprintln(cmd.OutOrStdout(), u.Generalize(pair.Items[0]))
			return nil
		},
	}
	cmd.Flags().StringVar(&vars, "vars", "", "type-variables with their bounds, e.g. \"T: Add\"")
	return cmd
}

func newBuiltinsCmd() *cobra.Command {
	var operators bool
	cmd := &cobra.Command{
		Use:   "builtins",
		Short: "List the builtin symbols and enums",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			for _, name := range pilcheck.BuiltinNames() {
				ts, _ := pilcheck.BuiltinScheme(name)
				fmt.Fprintln(out, types.FormatSchemeAroundName(name, ts))
			}
			for _, e := range pilcheck.BuiltinEnums() {
				fmt.Fprintln(out, e)
			}
			if operators {
				printOperators(out)
			}
		},
	}
	cmd.Flags().BoolVar(&operators, "operators", false, "also list the schemes of the operators")
	return cmd
}

// Operators are printed as symbols: `<T: Add> (+): T, T -> T`
func printOperators(out io.Writer) {
	for op := ast.Add; op <= ast.IdentityOp; op++ {
		fmt.Fprintln(out, types.FormatSchemeAroundName("("+op.String()+")", pilcheck.BinaryOperatorScheme(op)))
	}
	for op := ast.Minus; op <= ast.Next; op++ {
		fmt.Fprintln(out, types.FormatSchemeAroundName("("+op.String()+")", pilcheck.UnaryOperatorScheme(op)))
	}
	fmt.Fprintln(out, types.FormatSchemeAroundName("([])", pilcheck.IndexAccessScheme()))
}
