// Package cli implements the sktplan command-line interface: the TUI plan
// editor plus non-interactive pull, export, and directory commands.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Kael-Dean/SKT-sub000/internal/api"
	"github.com/Kael-Dean/SKT-sub000/internal/prefs"
	"github.com/Kael-Dean/SKT-sub000/internal/refdata"
	"github.com/Kael-Dean/SKT-sub000/pkg/planning"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
}

var flags rootFlags

// NewRootCmd creates the top-level "sktplan" command with global flags and
// all subcommands registered.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "sktplan",
		Short: "Budget planning client for the cooperative back office",
		Long: "Sktplan edits, inspects, and exports the cooperative's budget\n" +
			"plans: cost and revenue grids distributed across the organizational\n" +
			"units of a branch.",
		// Do not print usage on errors returned by subcommands.
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&flags.configDir, "config-dir", "", "configuration directory (default: .sktplan)")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newEditCmd())
	root.AddCommand(newPullCmd())
	root.AddCommand(newExportCmd())
	root.AddCommand(newUnitsCmd())

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		os.Exit(exitUserError)
	}
}

// resolveConfigDir returns the config directory from flag, env, or default.
func resolveConfigDir() string {
	if flags.configDir != "" {
		return flags.configDir
	}
	if v := os.Getenv("SKTPLAN_CONFIG_DIR"); v != "" {
		return v
	}
	return ".sktplan"
}

// session bundles the collaborators and engine state of one table
// selection, built once per command invocation.
type session struct {
	store       *api.PlanService
	unitDir     *api.UnitService
	grid        *planning.Grid
	gateway     *planning.Gateway
	table       planning.TableKind
	maxDecimals int
	prefs       *prefs.Store
}

// newSession wires config, HTTP collaborators, reference data, grid, and
// gateway for the given table.
func newSession(tableName string) (*session, error) {
	table, err := planning.ParseTableKind(tableName)
	if err != nil {
		return nil, err
	}

	configDir := resolveConfigDir()
	cfg, err := loadConfig(configDir)
	if err != nil {
		return nil, err
	}

	client := api.NewClient(api.Config{
		BaseURL: cfg.GetString(cfgKeyBaseURL),
		Token:   cfg.GetString(cfgKeyToken),
		Timeout: cfg.GetDuration(cfgKeyTimeout),
	})

	pstore, err := prefs.Open(filepath.Join(configDir, "prefs.db"))
	if err != nil {
		return nil, err
	}

	maxDecimals := cfg.GetInt(cfgKeyMaxDecimals)
	grid := planning.NewGrid(refdata.Taxonomy(table), nil)
	store := api.NewPlanService(client, table)

	return &session{
		store:       store,
		unitDir:     api.NewUnitService(client),
		grid:        grid,
		gateway:     planning.NewGateway(store, refdata.Resolver(table), grid, maxDecimals),
		table:       table,
		maxDecimals: maxDecimals,
		prefs:       pstore,
	}, nil
}

// close releases session resources.
func (s *session) close() {
	if s.prefs != nil {
		s.prefs.Close()
	}
}

// resolvePlan fills plan and branch from flags, falling back to the last
// used selection, and remembers the result for the next invocation.
func (s *session) resolvePlan(planID, branchID, period string) (planning.Plan, error) {
	if planID == "" {
		planID, _ = s.prefs.Get(prefs.KeyLastPlan)
	}
	if branchID == "" {
		branchID, _ = s.prefs.Get(prefs.KeyLastBranch)
	}
	if planID == "" || branchID == "" {
		return planning.Plan{}, fmt.Errorf("both --plan and --branch are required (no previous selection remembered)")
	}
	s.prefs.Set(prefs.KeyLastPlan, planID)
	s.prefs.Set(prefs.KeyLastBranch, branchID)
	s.prefs.Set(prefs.KeyLastTable, string(s.table))
	return planning.Plan{PlanID: planID, BranchID: branchID, Period: period}, nil
}
