package main

import (
	"fmt"
	"io"
	"runtime/debug"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/golunar/lunardate"
)

func (c *cli) newYearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "year YYYY",
		Short: "Show the months of a lunar year",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := c.variant()
			if err != nil {
				return err
			}
			year, err := strconv.Atoi(args[0])
			if err != nil {
				return errors.Wrapf(err, "parse year %q", args[0])
			}
			info, err := c.converter().YearInfo(year, v)
			if err != nil {
				return withRangeHint(err, v)
			}
			return c.emit(info, func(w io.Writer) error { return writeYear(w, info) })
		},
	}
}

func writeYear(w io.Writer, info lunardate.YearInfo) error {
	leap := "no leap month"
	if info.HasLeapMonth() {
		leap = fmt.Sprintf("leap month %d", info.LeapMonth)
	}
	if _, err := fmt.Fprintf(w, "%s lunar year %d: %d days, %s, new year %s\n",
		info.Variant, info.Year, info.Days, leap, info.NewYear); err != nil {
		return err
	}
	for _, m := range info.Months {
		label := strconv.Itoa(m.Month)
		if m.Leap {
			label += "L"
		}
		if _, err := fmt.Fprintf(w, "  %-3s %d\n", label, m.Days); err != nil {
			return err
		}
	}
	return nil
}

func (c *cli) newRangeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "range",
		Short: "Show the dates covered by the calendar tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := c.variant()
			if err != nil {
				return err
			}
			r, err := lunardate.SupportedRange(v)
			if err != nil {
				return err
			}
			return c.emit(r, func(w io.Writer) error {
				_, err := fmt.Fprintf(w, "%s: lunar years %d..%d, solar %s..%s\n",
					r.Variant, r.FirstYear, r.LastYear, r.First, r.Last)
				return err
			})
		},
	}
}

type versionInfo struct {
	Version      string `json:"version" yaml:"version"`
	TableVersion int    `json:"table_version" yaml:"table_version"`
}

func (c *cli) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			vi := versionInfo{Version: "(devel)", TableVersion: lunardate.TableVersion()}
			if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
				vi.Version = info.Main.Version
			}
			return c.emit(vi, func(w io.Writer) error {
				_, err := fmt.Fprintf(w, "lunardate %s (tables v%d)\n", vi.Version, vi.TableVersion)
				return err
			})
		},
	}
}
