package main

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/golunar/lunardate"
	"github.com/golunar/lunardate/cmd/internal/cliutil"
)

type cli struct {
	v          *viper.Viper
	configFile string
	outputFile string
	verbose    int
	stdout     io.Writer
	stderr     io.Writer
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	c := &cli{v: newViper(), stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:   "lunardate",
		Short: "Convert between Gregorian and Korean or Chinese lunar dates",
		Long: `lunardate converts dates between the Gregorian calendar and the Korean
or Chinese lunisolar calendar for lunar years 1900..2050.

Lunar dates are written YYYY-MM-DD, with a trailing L for a leap month
(2023-02-01L).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.loadConfig()
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringP("calendar", "c", "korean", "calendar variant: korean or chinese")
	pf.StringP("format", "f", "text", "output format: text, json or yaml")
	pf.StringVar(&c.configFile, "config", "", "config file (default $HOME/.config/lunardate/lunardate.yaml)")
	pf.StringVarP(&c.outputFile, "output", "o", "", "write output to file instead of stdout")
	pf.CountVarP(&c.verbose, "verbose", "v", "debug logging (-vv for trace)")
	_ = c.v.BindPFlag("calendar", pf.Lookup("calendar"))
	_ = c.v.BindPFlag("format", pf.Lookup("format"))

	root.AddCommand(
		c.newSolarCmd(),
		c.newLunarCmd(),
		c.newYearCmd(),
		c.newRangeCmd(),
		c.newServeCmd(),
		c.newVersionCmd(),
	)
	return root
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("LUNARDATE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

func (c *cli) loadConfig() error {
	if c.configFile != "" {
		c.v.SetConfigFile(c.configFile)
	} else {
		c.v.SetConfigName("lunardate")
		c.v.SetConfigType("yaml")
		if home, err := os.UserHomeDir(); err == nil {
			c.v.AddConfigPath(filepath.Join(home, ".config", "lunardate"))
		}
		c.v.AddConfigPath(".")
	}

	if err := c.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if c.configFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return errors.Wrap(err, "read config")
	}
	return nil
}

// variant returns the configured calendar.
func (c *cli) variant() (lunardate.Variant, error) {
	name := c.v.GetString("calendar")
	v, err := lunardate.ParseVariant(name)
	if err != nil {
		return v, errors.WithHint(err, "use --calendar korean or --calendar chinese")
	}
	return v, nil
}

func (c *cli) format() (cliutil.Format, error) {
	return cliutil.ParseFormat(c.v.GetString("format"))
}

func (c *cli) setupLogger() *slog.Logger {
	if c.verbose == 0 {
		return nil
	}
	level := slog.LevelDebug
	if c.verbose >= 2 {
		level = lunardate.LevelTrace
	}
	return slog.New(slog.NewTextHandler(c.stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

func (c *cli) converter() *lunardate.Converter {
	if logger := c.setupLogger(); logger != nil {
		return lunardate.New(lunardate.WithLogger(logger))
	}
	return lunardate.New()
}

// emit writes v in the configured format, to stdout or --output.
func (c *cli) emit(v any, text func(io.Writer) error) error {
	f, err := c.format()
	if err != nil {
		return err
	}
	w, done, err := cliutil.GetOutput(c.outputFile, c.stdout)
	if err != nil {
		return err
	}
	defer done()
	return cliutil.Write(w, f, v, text)
}
