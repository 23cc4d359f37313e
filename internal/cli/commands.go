package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/merkabah-engine/merkabah-install/internal/version"
	"github.com/merkabah-engine/merkabah-install/pkg/config"
	"github.com/merkabah-engine/merkabah-install/pkg/filesystem"
	"github.com/merkabah-engine/merkabah-install/pkg/installer"
	"github.com/merkabah-engine/merkabah-install/pkg/logging"
	"github.com/merkabah-engine/merkabah-install/pkg/manifest"
	"github.com/merkabah-engine/merkabah-install/pkg/paths"
	"github.com/merkabah-engine/merkabah-install/pkg/shell"
	"github.com/merkabah-engine/merkabah-install/pkg/status"
	"github.com/merkabah-engine/merkabah-install/pkg/style"
	"github.com/merkabah-engine/merkabah-install/pkg/types"
)

// NewRootCmd creates and returns the root command. Invoking the tool with
// no arguments performs the full install sequence.
func NewRootCmd() *cobra.Command {
	var (
		verbosity    int
		dryRun       bool
		configFile   string
		manifestFile string
	)

	rootCmd := &cobra.Command{
		Use:   "merkabah-install",
		Short: "Install the Merkabah Engine tools",
		Long: `merkabah-install places the four Merkabah Engine commands into your
~/bin directory, marks them executable, and ensures ~/bin is on your PATH
via a single line in ~/.bashrc.

The procedure is idempotent: re-running it is always safe and never
duplicates the PATH entry.`,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInstall(configFile, manifestFile, dryRun)
		},
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Config file (default: XDG config dir)")
	rootCmd.PersistentFlags().StringVar(&manifestFile, "manifest", "", "Payload manifest file (default: built-in)")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Preview changes without executing them")

	rootCmd.AddCommand(newStatusCmd(&configFile, &manifestFile))
	rootCmd.AddCommand(newGenConfigCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// setup resolves config, paths, and manifest shared by install and status
func setup(configFile, manifestFile string) (types.FS, *paths.Paths, *manifest.Manifest, *config.Config, error) {
	if configFile == "" {
		configFile = paths.DefaultConfigFile()
	}
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	style.ApplyColorMode(cfg.Output.Color)

	p, err := paths.New(paths.Options{
		BinDir:      cfg.Install.BinDir,
		StartupFile: cfg.Install.StartupFile,
		SourceDir:   cfg.Install.SourceDir,
	})
	if err != nil {
		return nil, nil, nil, nil, err
	}

	fs := filesystem.NewOS()

	var m *manifest.Manifest
	if manifestFile != "" {
		m, err = manifest.Load(fs, manifestFile)
	} else {
		m, err = manifest.Default()
	}
	if err != nil {
		return nil, nil, nil, nil, err
	}

	return fs, p, m, cfg, nil
}

func runInstall(configFile, manifestFile string, dryRun bool) error {
	fs, p, m, _, err := setup(configFile, manifestFile)
	if err != nil {
		return err
	}

	fmt.Println(style.RenderBanner(version.Version))
	fmt.Println()

	log.Info().
		Str("binDir", p.BinDir()).
		Str("sourceDir", p.SourceDir()).
		Bool("dryRun", dryRun).
		Msg("Installing Merkabah Engine tools")

	result, err := installer.New(fs, p, m).Run(dryRun)
	if len(result.Operations) > 0 {
		fmt.Println(style.RenderOperations(result.Operations, dryRun))
	}
	if err != nil {
		return err
	}

	fmt.Println()
	if dryRun {
		fmt.Println(style.MutedStyle.Sprint("Dry run, no changes were made."))
		return nil
	}

	fmt.Println(style.RenderSummary(m, p.BinDir(), shell.ActivationHint(p.StartupFile())))
	return nil
}

func newStatusCmd(configFile, manifestFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Report installation status",
		Long: `Status checks each installed command and the PATH entry without
modifying anything, and reports an overall COMPLETE, PARTIAL, or MISSING
verdict.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fs, p, m, _, err := setup(*configFile, *manifestFile)
			if err != nil {
				return err
			}
			report := status.Check(fs, p, m)
			fmt.Println(style.RenderStatus(report))
			return nil
		},
	}
}

func newGenConfigCmd() *cobra.Command {
	var write bool
	cmd := &cobra.Command{
		Use:   "gen-config",
		Short: "Generate the default configuration file",
		Long:  "Output the default configuration to stdout, or write it to the XDG config directory with -w.",
		Example: `  # Output to stdout
  merkabah-install gen-config

  # Write to the config directory
  merkabah-install gen-config -w`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Default()
			if err != nil {
				return err
			}
			out, err := config.GenerateTOML(cfg)
			if err != nil {
				return err
			}

			if !write {
				fmt.Print(out)
				return nil
			}

			target := paths.DefaultConfigFile()
			if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
				return fmt.Errorf("failed to create config directory: %w", err)
			}
			if err := os.WriteFile(target, []byte(out), 0644); err != nil {
				return fmt.Errorf("failed to write config: %w", err)
			}
			fmt.Printf("Wrote %s\n", target)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&write, "write", "w", false, "Write config to file instead of stdout")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including commit hash and build date`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("merkabah-install version %s\n", version.Version)
			if version.Commit != "" {
				fmt.Printf("Commit: %s\n", version.Commit)
			}
			if version.Date != "" {
				fmt.Printf("Built:  %s\n", version.Date)
			}
		},
	}
}
