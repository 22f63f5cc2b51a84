package cmd

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/perfgate/perfgate/core"
	"github.com/perfgate/perfgate/internal/baselinestore"
	"github.com/perfgate/perfgate/internal/contract"
	"github.com/perfgate/perfgate/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// baselineSetup loads minimal configuration needed for baseline store
// operations, without requiring a log directory or full shared setup.
func baselineSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	backend := schema.StoreBackend(viper.GetString("backend"))
	if _, ok := schema.ValidStoreBackends[backend]; !ok {
		return fmt.Errorf("invalid store backend: %s", backend)
	}

	cfg.Backend = backend
	cfg.BaselinePath = viper.GetString("baseline")
	cfg.DBConnect = viper.GetString("db-connect")

	if err := baselinestore.InitStore(cfg.Backend, cfg.BaselinePath, cfg.DBConnect); err != nil {
		return fmt.Errorf("failed to initialize baseline store: %w", err)
	}
	return nil
}

// baselineSetupWrapper wraps baselineSetup to provide PreRunE for baseline commands.
func baselineSetupWrapper(_ *cobra.Command, _ []string) error {
	return baselineSetup()
}

// baselineMigrateSetup loads configuration for migrations without opening
// the store, so migrations can run against a fresh database.
func baselineMigrateSetup(_ *cobra.Command, _ []string) error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	backend := schema.StoreBackend(viper.GetString("backend"))
	if _, ok := schema.ValidStoreBackends[backend]; !ok {
		return fmt.Errorf("invalid store backend: %s", backend)
	}
	if backend == schema.JSONBackend {
		return fmt.Errorf("migrations only apply to database backends, not %s", backend)
	}

	cfg.Backend = backend
	cfg.DBConnect = viper.GetString("db-connect")
	return nil
}

// baselineCmd focused on baseline document management.
var baselineCmd = &cobra.Command{
	Use:   "baseline",
	Short: "Manage the stored performance baseline",
	Long: `Manage the persisted baseline that check compares against.

The baseline is a versioned document of per-test timing statistics
(mean, median, p95, stddev, sample count) captured on a known-good run.
Updating it replaces the whole document; entries are never merged.

Supported backends: JSON file (default), SQLite, MySQL, PostgreSQL

Subcommands:
  update  - Rebuild the baseline from current timing logs
  show    - Print the stored baseline document
  status  - Show backend, location and entry count
  clear   - Remove the stored baseline
  migrate - Run database schema migrations`,
}

// baselineUpdateCmd rebuilds the baseline from current logs.
var baselineUpdateCmd = &cobra.Command{
	Use:   "update [log-dir]",
	Short: "Rebuild the baseline from current timing logs (full replace)",
	Long: `Aggregate current timing logs into per-test statistics and persist them
as the new baseline, replacing the previous document entirely.

Tests absent from the current logs are dropped from the baseline. Run this
on a trusted branch after verifying a performance change is intentional.

Examples:
  # Rebuild from the default log directory
  perfgate baseline update

  # Rebuild from a custom directory into a custom file
  perfgate baseline update build/test-logs --baseline ci/baseline.json`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetup,
	Run: func(_ *cobra.Command, _ []string) {
		doc, warnings, err := core.GetBaselineUpdateResults(cfg, baselinestore.GetStore())
		if err != nil {
			contract.LogFatal("Baseline update failed", err)
		}
		for _, w := range warnings {
			contract.LogWarn(w, nil)
		}
		fmt.Printf("Baseline updated: %d tests (platform %s)\n", len(doc.Tests), doc.Platform)
	},
}

// baselineShowCmd prints the stored baseline document.
var baselineShowCmd = &cobra.Command{
	Use:     "show",
	Short:   "Print the stored baseline entries",
	PreRunE: baselineSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		baselines, err := baselinestore.GetStore().Load()
		if err != nil {
			contract.LogFatal("Failed to load baseline", err)
		}
		if len(baselines) == 0 {
			fmt.Println("No baseline stored.")
			return
		}

		names := make([]string, 0, len(baselines))
		for name := range baselines {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			data, _ := json.Marshal(struct {
				TestName string `json:"test_name"`
				schema.TestBaseline
			}{name, baselines[name]})
			fmt.Println(string(data))
		}
	},
}

// baselineStatusCmd shows store status.
var baselineStatusCmd = &cobra.Command{
	Use:     "status",
	Short:   "Display baseline backend, location and entry count",
	PreRunE: baselineSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		status, err := baselinestore.GetStore().Status()
		if err != nil {
			contract.LogFatal("Failed to read baseline status", err)
		}
		fmt.Printf("Backend:   %s\n", status.Backend)
		fmt.Printf("Location:  %s\n", status.Location)
		fmt.Printf("Connected: %t\n", status.Connected)
		fmt.Printf("Tests:     %d\n", status.TestCount)
		if status.Platform != "" {
			fmt.Printf("Platform:  %s\n", status.Platform)
		}
		if status.UpdatedAt != "" {
			fmt.Printf("Updated:   %s\n", status.UpdatedAt)
		}
	},
}

// baselineClearCmd removes the stored baseline.
var baselineClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove the stored baseline",
	Long: `Delete the persisted baseline document.

Use this when the baseline was captured on the wrong platform or from a
bad run. The next check will report every test as new until a baseline
is rebuilt with 'perfgate baseline update'.`,
	PreRunE: baselineSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := baselinestore.ClearStore(); err != nil {
			contract.LogFatal("Failed to clear baseline", err)
		}
		fmt.Println("Baseline cleared successfully.")
	},
}

// baselineMigrateCmd runs schema migrations for database backends.
var baselineMigrateCmd = &cobra.Command{
	Use:     "migrate",
	Short:   "Run baseline database schema migrations",
	PreRunE: baselineMigrateSetup,
	Run: func(_ *cobra.Command, _ []string) {
		targetVersion := viper.GetInt("target-version")
		if err := baselinestore.MigrateTo(cfg.Backend, cfg.DBConnect, targetVersion); err != nil {
			contract.LogFatal("Migration failed", err)
		}
		if targetVersion < 0 {
			fmt.Println("Migrated to latest version.")
		} else {
			fmt.Printf("Migrated to version %d.\n", targetVersion)
		}
	},
}
