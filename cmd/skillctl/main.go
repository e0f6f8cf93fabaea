package main

import (
	"context"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jingkaihe/skillctl/pkg/logger"
	"github.com/jingkaihe/skillctl/pkg/presenter"
	"github.com/jingkaihe/skillctl/pkg/skills"
)

// out is the presenter every command writes user-facing output to
var out presenter.Presenter = presenter.New()

func init() {
	// Environment variables
	viper.SetEnvPrefix("SKILLCTL")
	viper.AutomaticEnv()

	// Config file support
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("$HOME/.skillctl")
	viper.AddConfigPath(".")

	viper.SetDefault("log_level", "warn")
	viper.SetDefault("log_format", "text")

	// Load config file if it exists (ignore errors if it doesn't)
	_ = viper.ReadInConfig()

	cobra.EnableCaseInsensitive = true
}

var rootCmd = &cobra.Command{
	Use:   "skillctl",
	Short: "Enable, disable and list local skills",
	Long: `skillctl toggles skill directories between the active skills directory
and its .disabled subdirectory, and lists what is in each.

  skillctl list              List active skills
  skillctl disabled          List disabled skills
  skillctl enable SKILL      Enable a skill
  skillctl disable SKILL     Disable a skill`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		out.SetQuiet(viper.GetBool("quiet"))
		return logger.Configure(viper.GetString("log_level"), viper.GetString("log_format"))
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		cmd.Help()
		return reported(errNoCommand)
	},
}

var errNoCommand = errors.New("no command given")

func init() {
	rootCmd.PersistentFlags().String("root", "", "Installation root containing the skills directory (default: current directory)")
	rootCmd.PersistentFlags().String("skills-dir", "", "Active skills directory (overrides --root)")
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level (panic, fatal, error, warn, info, debug, trace)")
	rootCmd.PersistentFlags().String("log-format", "text", "Log format (text or json)")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "Only print errors")

	viper.BindPFlag("root", rootCmd.PersistentFlags().Lookup("root"))
	viper.BindPFlag("skills_dir", rootCmd.PersistentFlags().Lookup("skills-dir"))
	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("log_format", rootCmd.PersistentFlags().Lookup("log-format"))
	viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(disabledCmd)
	rootCmd.AddCommand(enableCmd)
	rootCmd.AddCommand(disableCmd)
	rootCmd.AddCommand(versionCmd)
}

// newRegistry builds the registry from --skills-dir, or from --root
// falling back to the working directory.
func newRegistry() (*skills.Registry, error) {
	if skillsDir := viper.GetString("skills_dir"); skillsDir != "" {
		return skills.NewRegistry(skills.ConfigForSkillsDir(skillsDir))
	}

	root := viper.GetString("root")
	if root == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "failed to get current working directory")
		}
		root = wd
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to resolve root '%s'", root)
	}
	return skills.NewRegistry(skills.DefaultConfig(abs))
}

// loadRegistry returns the registry, reporting a failure to build it
func loadRegistry() (*skills.Registry, error) {
	registry, err := newRegistry()
	if err != nil {
		out.Error(err, "Failed to locate skills directory")
		return nil, reported(err)
	}
	return registry, nil
}

// run dispatches args and returns the process exit code. Errors that a
// command has already shown are not printed again; anything else (unknown
// command, missing or extra arguments) is printed with the usage text.
func run(ctx context.Context, args []string) int {
	rootCmd.SetArgs(args)

	cmd, err := rootCmd.ExecuteContextC(ctx)
	if err == nil {
		return 0
	}

	if !isReported(err) {
		out.Error(err, "")
		cmd.Usage()
	}
	return 1
}

func main() {
	ctx := logger.WithLogger(context.Background(), logger.L.WithField("app", "skillctl"))
	os.Exit(run(ctx, os.Args[1:]))
}
