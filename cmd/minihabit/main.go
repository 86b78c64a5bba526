// Copyright (C) ConfigHub, Inc.
// SPDX-License-Identifier: MIT

// Command minihabit walks you through a minimal habit plan one question at a time.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/monadic/minihabit/internal/clierr"
	"github.com/spf13/cobra"
)

var (
	// BuildTag is set during build
	BuildTag = "dev"
	// BuildDate is set during build
	BuildDate = "unknown"
)

var runOpts Options

var rootCmd = &cobra.Command{
	Use:   "minihabit",
	Short: "Design a habit you can actually start",
	Long: `minihabit - design a habit you can actually start

minihabit asks one question at a time:

  - What habit you want to build, and the smallest first step
  - Which existing habit it can follow
  - Whether the time and place can be fixed
  - What to prepare, and how to reward yourself

At the end it shows a summary. Start over at any time and your answers
are kept as defaults.

Environment Variables:
  MINIHABIT_LOG_DIR       Directory for session logs (default: .minihabit/logs)
  MINIHABIT_ACCESSIBLE    Use line-by-line prompts instead of the full-screen UI
`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := resolveOptions(runOpts, cmd.Flags().Changed, os.Getenv)
		return newRunner(opts, cmd.OutOrStdout()).run(cmd.Context())
	},
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		cancel()
		fmt.Fprintln(os.Stderr, clierr.Pretty(err))
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolVar(&runOpts.Accessible, "accessible", false, "Use line-by-line prompts (screen readers, no TTY)")
	rootCmd.Flags().StringVarP(&runOpts.Output, "output", "o", "", "Save the finished plan as YAML to this file")
	rootCmd.Flags().StringVar(&runOpts.LogDir, "log-dir", DefaultLogDir, "Directory for the session log")
	rootCmd.Flags().BoolVar(&runOpts.NoLog, "no-log", false, "Do not write a session log")

	// Add version command
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "minihabit version %s (built %s)\n", BuildTag, BuildDate)
		},
	})

	// Add completion command
	rootCmd.AddCommand(&cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion script",
		Long: `Generate shell completion script for minihabit.

Bash:
  $ source <(minihabit completion bash)

Zsh:
  $ minihabit completion zsh > "${fpath[1]}/_minihabit"

Fish:
  $ minihabit completion fish | source

PowerShell:
  PS> minihabit completion powershell | Out-String | Invoke-Expression
`,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.ExactArgs(1),
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			default:
				return fmt.Errorf("unsupported shell: %s", args[0])
			}
		},
	})
}
