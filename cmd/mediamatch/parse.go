package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/vmunix/mediamatch/pkg/mediafile"
	"github.com/vmunix/mediamatch/pkg/medianame"
)

var parseCmd = &cobra.Command{
	Use:   "parse <filename>...",
	Short: "Parse media filenames (local, no providers needed)",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	rows := make([][]string, 0, len(args))
	for _, name := range args {
		rows = append(rows, parseRow(name))
	}
	fmt.Println(renderTable([]string{"File", "Class", "Title", "Numbering", "Year", "Part"}, rows))
	return nil
}

func parseRow(name string) []string {
	class := mediafile.ClassOf(name).String()

	title := medianame.SeriesName(name)
	var numbering string
	if info, ok := medianame.ParseEpisode(name); ok {
		switch {
		case info.HasNumbers():
			parts := make([]string, len(info.Episodes))
			for i, ep := range info.Episodes {
				parts[i] = fmt.Sprintf("%02d", ep)
			}
			numbering = fmt.Sprintf("S%02dE%s", info.Season, strings.Join(parts, "E"))
		case !info.AirDate.IsZero():
			numbering = info.AirDate.Format("2006-01-02")
		case info.Absolute > 0:
			numbering = fmt.Sprintf("#%03d", info.Absolute)
		}
	}
	if title == "" {
		title, _ = medianame.MovieQuery(name)
	}

	year := ""
	if y := medianame.Year(name); y > 0 {
		year = strconv.Itoa(y)
	}
	part := ""
	if p := medianame.PartIndex(name); p > 0 {
		part = strconv.Itoa(p)
	}

	return []string{name, class, title, numbering, year, part}
}
