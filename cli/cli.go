// Package cli implements the date wrangling subcommands.
package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"formtools/config"
	"formtools/datetime"
)

var ParseCmd *cobra.Command
var ParseTimeCmd *cobra.Command
var ResolveCmd *cobra.Command
var FormatCmd *cobra.Command

func init() {
	var dateLayout string
	ParseCmd = &cobra.Command{
		Use:   "parse [input]",
		Short: "Parse a freeform date and print it in the configured layout",
		Args:  cobra.MinimumNArgs(1),
		Run: func(_ *cobra.Command, args []string) {
			input := strings.Join(args, " ")
			date, err := datetime.ParseDateAt(input, datetime.Now())
			if err != nil {
				fail(err)
			}
			fmt.Println(datetime.Format(date, layoutOr(dateLayout, config.Cfg.DateLayout)))
		},
	}
	ParseCmd.Flags().StringVar(&dateLayout, "layout", "", "output layout")

	var timeLayout string
	ParseTimeCmd = &cobra.Command{
		Use:   "parse-time [input]",
		Short: "Parse a freeform time of day",
		Args:  cobra.MinimumNArgs(1),
		Run: func(_ *cobra.Command, args []string) {
			input := strings.Join(args, " ")
			formatted, err := datetime.SanitizeTime(
				input, layoutOr(timeLayout, config.Cfg.TimeLayout), datetime.Now(),
			)
			if err != nil {
				fail(err)
			}
			fmt.Println(formatted)
		},
	}
	ParseTimeCmd.Flags().StringVar(&timeLayout, "layout", "", "output layout")

	var resolveLayout string
	ResolveCmd = &cobra.Command{
		Use:   "resolve [spec]",
		Short: "Resolve a date or a relative offset like +1y-1w+1d against today",
		Args:  cobra.MinimumNArgs(1),
		Run: func(_ *cobra.Command, args []string) {
			spec := strings.Join(args, " ")
			now := datetime.Now()
			date := datetime.ResolveRelative(spec, now, now)
			fmt.Println(datetime.Format(date, layoutOr(resolveLayout, config.Cfg.DateLayout)))
		},
	}
	ResolveCmd.Flags().StringVar(&resolveLayout, "layout", "", "output layout")

	var formatDate string
	FormatCmd = &cobra.Command{
		Use:   "format [layout]",
		Short: "Print a date in the given layout",
		Args:  cobra.ExactArgs(1),
		Run: func(_ *cobra.Command, args []string) {
			date := datetime.Now()
			if formatDate != "" {
				var err error
				date, err = time.Parse(time.RFC3339, formatDate)
				if err != nil {
					fail(err)
				}
			}
			fmt.Println(datetime.Format(date, args[0]))
		},
	}
	FormatCmd.Flags().StringVar(&formatDate, "date", "", "RFC 3339 date to format instead of now")
}

func layoutOr(layout string, fallback string) string {
	if layout != "" {
		return layout
	}
	return fallback
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
