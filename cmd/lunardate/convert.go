package main

import (
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/golunar/lunardate"
	"github.com/golunar/lunardate/internal/httpapi"
)

func (c *cli) newSolarCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "solar YYYY-MM-DD",
		Short: "Convert a Gregorian date to a lunar date",
		Example: `  lunardate solar 2023-01-22
  lunardate -c chinese solar 2023-03-22 -f json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := c.variant()
			if err != nil {
				return err
			}
			sd, err := lunardate.ParseSolarDate(args[0])
			if err != nil {
				return errors.WithHint(err, "solar dates are written YYYY-MM-DD")
			}
			ld, err := c.converter().SolarToLunar(sd, v)
			if err != nil {
				return withRangeHint(err, v)
			}
			res := httpapi.ConversionResponse{Calendar: v, Solar: sd, Lunar: ld, Display: ld.String()}
			return c.emit(res, func(w io.Writer) error {
				_, err := fmt.Fprintln(w, ld)
				return err
			})
		},
	}
}

func (c *cli) newLunarCmd() *cobra.Command {
	var leap bool
	cmd := &cobra.Command{
		Use:   "lunar YYYY-MM-DD[L]",
		Short: "Convert a lunar date to a Gregorian date",
		Example: `  lunardate lunar 2023-01-01
  lunardate lunar 2023-02-01L
  lunardate lunar 2020-04-01 --leap`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := c.variant()
			if err != nil {
				return err
			}
			ld, err := lunardate.ParseLunarDate(args[0])
			if err != nil {
				return errors.WithHint(err, "lunar dates are written YYYY-MM-DD, with a trailing L for a leap month")
			}
			if leap && !ld.IsLeapMonth() {
				if ld, err = lunardate.NewLunarDate(ld.Year(), ld.Month(), ld.Day(), true); err != nil {
					return err
				}
			}
			sd, err := c.converter().LunarToSolar(ld, v)
			if err != nil {
				return withRangeHint(err, v)
			}
			res := httpapi.ConversionResponse{Calendar: v, Solar: sd, Lunar: ld, Display: sd.String()}
			return c.emit(res, func(w io.Writer) error {
				_, err := fmt.Fprintln(w, sd)
				return err
			})
		},
	}
	cmd.Flags().BoolVar(&leap, "leap", false, "the date is in the leap month")
	return cmd
}

// withRangeHint adds the supported range to out-of-range and leap month
// failures.
func withRangeHint(err error, v lunardate.Variant) error {
	switch {
	case errors.Is(err, lunardate.ErrOutOfRange):
		if r, rerr := lunardate.SupportedRange(v); rerr == nil {
			return errors.WithHintf(err, "%s covers lunar years %d..%d (solar %s..%s)",
				v, r.FirstYear, r.LastYear, r.First, r.Last)
		}
	case errors.Is(err, lunardate.ErrLeapMonthNotPresent):
		return errors.WithHint(err, "run 'lunardate year' to list the months of a year")
	}
	return err
}
