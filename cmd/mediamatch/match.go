package main

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/vmunix/mediamatch/internal/catalog"
	"github.com/vmunix/mediamatch/internal/config"
	"github.com/vmunix/mediamatch/internal/match"
	"github.com/vmunix/mediamatch/internal/memory"
	"github.com/vmunix/mediamatch/pkg/mediafile"
	"github.com/vmunix/mediamatch/pkg/mediainfo"
)

var (
	matchCatalogPath string
	matchStrict      bool
	matchRecursive   bool
)

var matchCmd = &cobra.Command{
	Use:   "match <file|dir>...",
	Short: "Match files against a local catalog (dry run, no renames)",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runMatch,
}

func init() {
	matchCmd.Flags().StringVar(&matchCatalogPath, "catalog", "", "Catalog file (TOML)")
	matchCmd.Flags().BoolVar(&matchStrict, "strict", false, "Accept only high-confidence matches")
	matchCmd.Flags().BoolVarP(&matchRecursive, "recursive", "r", false, "Descend into directories")
	matchCmd.MarkFlagRequired("catalog")
	rootCmd.AddCommand(matchCmd)
}

func runMatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	cat, err := catalog.Load(matchCatalogPath)
	if err != nil {
		return err
	}

	files, err := collectFiles(args, matchRecursive)
	if err != nil {
		return err
	}

	log := newLogger(cfg)

	// Autodetect runs consult and update the persistent selection memory.
	var store *memory.Store
	if cfg.Matching.Autodetect {
		s, db, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer db.Close()
		store = s
	}

	episodes := match.NewEpisodeMatcher(cat.SeriesProvider(), nil, store, nil, log)
	movies := match.NewMovieMatcher(cat.MovieProvider(), nil, store, log)

	dispatcher := match.NewDispatcher(nil, log)
	dispatcher.Register(mediafile.TypeSeries, episodes)
	dispatcher.Register(mediafile.TypeAnime, episodes)
	dispatcher.Register(mediafile.TypeMovie, movies)

	opts := match.Options{
		Strict:          matchStrict || cfg.Matching.Strict,
		SortOrder:       parseSortOrder(cfg.Matching.SortOrder),
		Locale:          cfg.Matching.Locale,
		Autodetect:      cfg.Matching.Autodetect,
		Concurrency:     cfg.Matching.Concurrency,
		AcceptThreshold: cfg.Matching.AcceptThreshold,
	}

	results, err := dispatcher.Match(cmd.Context(), files, opts)
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(results))
	for _, m := range results {
		rows = append(rows, []string{m.File, recordLabel(m.Record)})
	}
	fmt.Println(renderTable([]string{"File", "Match"}, rows))
	return nil
}

// collectFiles expands directory arguments into their contained files.
func collectFiles(args []string, recursive bool) ([]string, error) {
	var files []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			files = append(files, arg)
			continue
		}
		if recursive {
			err = filepath.WalkDir(arg, func(path string, d fs.DirEntry, err error) error {
				if err != nil {
					return err
				}
				if !d.IsDir() {
					files = append(files, path)
				}
				return nil
			})
			if err != nil {
				return nil, err
			}
			continue
		}
		entries, err := os.ReadDir(arg)
		if err != nil {
			return nil, err
		}
		for _, e := range entries {
			if !e.IsDir() {
				files = append(files, filepath.Join(arg, e.Name()))
			}
		}
	}
	return files, nil
}

func recordLabel(r mediainfo.Record) string {
	switch rec := r.(type) {
	case nil:
		return "(unmatched)"
	case *mediainfo.Episode:
		return fmt.Sprintf("%s - S%02dE%02d - %s", rec.SeriesName(), rec.Season, rec.Episode, rec.Title)
	case *mediainfo.Movie:
		label := candidateTitle(rec.Name, rec.Year)
		if rec.PartCount > 1 {
			label = fmt.Sprintf("%s (part %d of %d)", label, rec.PartIndex, rec.PartCount)
		}
		return label
	default:
		return rec.RecordName()
	}
}

func candidateTitle(name string, year int) string {
	if year > 0 {
		return fmt.Sprintf("%s (%d)", name, year)
	}
	return name
}

func parseSortOrder(s string) mediainfo.SortOrder {
	switch s {
	case "dvd":
		return mediainfo.OrderDVD
	case "absolute":
		return mediainfo.OrderAbsolute
	default:
		return mediainfo.OrderAirdate
	}
}

// newLogger builds the CLI logger at the configured level.
func newLogger(cfg *config.Config) *slog.Logger {
	var level slog.Level
	switch cfg.Log.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
