// Package cli implements the elevage command-line interface: the root
// command that runs the interactive menu, plus the init and version
// subcommands.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mesh-intelligence/elevage/internal/ctxlog"
	"github.com/mesh-intelligence/elevage/internal/elevage"
	"github.com/mesh-intelligence/elevage/internal/shell"
	"github.com/mesh-intelligence/elevage/internal/store"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// ExitError carries the process exit code for an error returned by a command.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string { return e.Err.Error() }

func (e *ExitError) Unwrap() error { return e.Err }

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
}

// NewRootCmd creates the top-level "elevage" command with its flags and
// subcommands. Each call returns an independent command tree.
func NewRootCmd() *cobra.Command {
	var flags rootFlags
	v := viper.New()

	root := &cobra.Command{
		Use:   "elevage",
		Short: "Raise a small collection of Pokemon from a text menu",
		Long: "elevage runs an interactive menu to add, show, train, breed and sort Pokemon.\n" +
			"The collection is saved to a text file after every change.",
		Args:          cobra.NoArgs,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			configDir, err := resolveConfigDir(flags.configDir)
			if err != nil {
				return &ExitError{Code: exitSysError, Err: err}
			}
			if err := loadConfig(v, configDir); err != nil {
				return &ExitError{Code: exitUserError, Err: err}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(cmd, v)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&flags.configDir, "config-dir", "", "configuration directory (default: $(CWD)/.elevage)")
	pf.String("log-level", defaultLogLevel, "log level: debug, info, warn, error")
	pf.String("log-format", defaultLogFormat, "log format: text or json")
	root.Flags().String("file", store.DefaultPath, "file the collection is saved to")

	// Flags take precedence over env and config.yaml once set.
	_ = v.BindPFlag(cfgKeyLogLevel, pf.Lookup("log-level"))
	_ = v.BindPFlag(cfgKeyLogFormat, pf.Lookup("log-format"))
	_ = v.BindPFlag(cfgKeyFile, root.Flags().Lookup("file"))

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd(&flags))

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "elevage:", err)
		os.Exit(exitCode(err))
	}
	os.Exit(exitSuccess)
}

// exitCode maps a command error to a process exit code. Errors that carry
// no code are usage errors.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return exitUserError
}

// runShell starts the interactive menu over a new, empty collection.
func runShell(cmd *cobra.Command, v *viper.Viper) error {
	logger := newLogger(v.GetString(cfgKeyLogLevel), v.GetString(cfgKeyLogFormat), cmd.ErrOrStderr()).
		With("session", newSessionID())
	ctx := ctxlog.WithLogger(cmd.Context(), logger)

	path := v.GetString(cfgKeyFile)
	logger.Debug("starting menu", "file", path, "config", v.ConfigFileUsed())

	sh := shell.New(cmd.InOrStdin(), cmd.OutOrStdout(), elevage.New(), path)
	if err := sh.Run(ctx); err != nil {
		return &ExitError{Code: exitSysError, Err: err}
	}
	return nil
}

// newSessionID returns a UUID v7 that tags every log line of one run.
func newSessionID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to UUID v4 if v7 generation fails
		return uuid.New().String()
	}
	return id.String()
}
