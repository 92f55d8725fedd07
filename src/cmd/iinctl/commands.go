package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/api-sage/pension-payment-processor/src/internal/iin"
)

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [iin...]",
		Short: "Verify the control digit of one or more IINs",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			invalid := 0
			for _, arg := range args {
				value := iin.Clean(arg)
				status := "valid"
				if !iin.Validate(value) {
					status = "invalid"
					invalid++
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", iin.Format(value), status)
			}

			if invalid > 0 {
				return fmt.Errorf("%d of %d IINs are invalid", invalid, len(args))
			}
			return nil
		},
	}
}

func birthDateCmd() *cobra.Command {
	var entered string

	cmd := &cobra.Command{
		Use:   "birthdate [iin]",
		Short: "Derive the birth date encoded in an IIN",
		Long: `Derive the birth date from the first seven digits of an IIN.

With --entered the derived date is compared with a known birth date and a
warning is printed when they are more than a day apart.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value := iin.Clean(args[0])

			derived, ok := iin.BirthDate(value)
			if !ok {
				return fmt.Errorf("no birth date can be derived from %q", args[0])
			}
			century, _ := iin.Century(value)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Birth date: %s\n", derived.Format("2006-01-02"))
			fmt.Fprintf(out, "Century:    %d\n", century)

			if entered == "" {
				return nil
			}
			date, err := time.Parse("2006-01-02", entered)
			if err != nil {
				return fmt.Errorf("--entered must be in YYYY-MM-DD format: %w", err)
			}
			if iin.BirthDateMismatch(value, date) {
				fmt.Fprintf(out, "WARNING: entered birth date %s does not match the IIN\n", entered)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&entered, "entered", "e", "", "Birth date to cross-check (YYYY-MM-DD)")

	return cmd
}

func formatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "format [iin]",
		Short: "Print an IIN grouped as XXX XXX XXX XXX",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), iin.Format(args[0]))
			return nil
		},
	}
}

func controlCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "control [first 11 digits]",
		Short: "Compute the control digit and print the complete IIN",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			first11 := iin.Clean(args[0])

			control, err := iin.ControlDigit(first11)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s%d\n", first11, control)
			return nil
		},
	}
}
