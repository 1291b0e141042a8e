package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/vmunix/mediamatch/internal/config"
	"github.com/vmunix/mediamatch/internal/memory"

	_ "modernc.org/sqlite"
)

var (
	cacheProvider string
	cacheMaxAge   time.Duration
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect the persistent selection memory",
}

var cacheListCmd = &cobra.Command{
	Use:   "list",
	Short: "List remembered selections",
	RunE:  runCacheList,
}

var cachePruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Remove selections older than --max-age",
	RunE:  runCachePrune,
}

func init() {
	cacheListCmd.Flags().StringVar(&cacheProvider, "provider", "", "Filter by provider")
	cachePruneCmd.Flags().DurationVar(&cacheMaxAge, "max-age", 90*24*time.Hour, "Maximum selection age")
	cacheCmd.AddCommand(cacheListCmd, cachePruneCmd)
	rootCmd.AddCommand(cacheCmd)
}

func openStore(cfg *config.Config) (*memory.Store, *sql.DB, error) {
	if dir := filepath.Dir(cfg.Database.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, fmt.Errorf("create database directory: %w", err)
		}
	}
	db, err := sql.Open("sqlite", cfg.Database.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}
	store, err := memory.NewStore(db)
	if err != nil {
		db.Close()
		return nil, nil, err
	}
	return store, db, nil
}

func runCacheList(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store, db, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	selections, err := store.List(context.Background(), cacheProvider)
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(selections))
	for _, sel := range selections {
		value := string(sel.Value)
		if value == "" {
			value = "(skip)"
		}
		rows = append(rows, []string{
			sel.Provider, sel.Query, value, sel.UpdatedAt.Format(time.DateOnly),
		})
	}
	fmt.Println(renderTable([]string{"Provider", "Query", "Selection", "Updated"}, rows))
	return nil
}

func runCachePrune(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store, db, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	n, err := store.Prune(context.Background(), cacheMaxAge)
	if err != nil {
		return err
	}
	fmt.Printf("pruned %d selection(s)\n", n)
	return nil
}
