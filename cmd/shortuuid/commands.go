package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/vdparikh/shortuuid"
)

func (a *app) shortenCmd() *cobra.Command {
	var pad bool

	cmd := &cobra.Command{
		Use:   "shorten <uuid>...",
		Short: "Print the short form of each UUID",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			alphabet, err := a.alphabet()
			if err != nil {
				return err
			}
			for _, arg := range args {
				id, err := uuid.Parse(arg)
				if err != nil {
					return fmt.Errorf("invalid UUID %q: %w", arg, err)
				}
				short, err := shortuuid.Shorten(id, alphabet)
				if err != nil {
					return err
				}
				if pad {
					if short, err = shortuuid.PadShort(short, alphabet); err != nil {
						return err
					}
				}
				a.logger.Debugw("Shortened UUID", "uuid", id, "short", short)
				fmt.Fprintln(cmd.OutOrStdout(), short)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&pad, "pad", false, "left-pad to the alphabet's fixed width")
	return cmd
}

func (a *app) expandCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "expand <short>...",
		Short: "Print the UUID each short form was made from",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			alphabet, err := a.alphabet()
			if err != nil {
				return err
			}
			for _, arg := range args {
				id, err := shortuuid.Expand(arg, alphabet)
				if err != nil {
					return err
				}
				a.logger.Debugw("Expanded short form", "short", arg, "uuid", id)
				fmt.Fprintln(cmd.OutOrStdout(), id)
			}
			return nil
		},
	}
}

func (a *app) convertCmd() *cobra.Command {
	var from, to string

	cmd := &cobra.Command{
		Use:   "convert <value>...",
		Short: "Convert values between two alphabets",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := shortuuid.LookupAlphabet(from)
			if err != nil {
				return fmt.Errorf("--from: %w", err)
			}
			dst, err := shortuuid.LookupAlphabet(to)
			if err != nil {
				return fmt.Errorf("--to: %w", err)
			}
			c := shortuuid.NewConverter(src, dst)
			for _, arg := range args {
				out, err := c.Convert(arg)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), out)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "hex", "source alphabet")
	cmd.Flags().StringVar(&to, "to", "base62", "target alphabet")
	return cmd
}

func (a *app) newCmd() *cobra.Command {
	var (
		count int
		v7    bool
		pad   bool
	)

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Generate UUIDs and print their short forms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 1 {
				return fmt.Errorf("--count must be positive, got %d", count)
			}
			alphabet, err := a.alphabet()
			if err != nil {
				return err
			}
			generate := shortuuid.NewShort
			if v7 {
				generate = shortuuid.NewShortV7
			}
			for i := 0; i < count; i++ {
				short, err := generate(alphabet)
				if err != nil {
					return err
				}
				if pad {
					if short, err = shortuuid.PadShort(short, alphabet); err != nil {
						return err
					}
				}
				fmt.Fprintln(cmd.OutOrStdout(), short)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of UUIDs to generate")
	cmd.Flags().BoolVar(&v7, "v7", false, "generate time-ordered version 7 UUIDs")
	cmd.Flags().BoolVar(&pad, "pad", false, "left-pad to the alphabet's fixed width")
	return cmd
}
