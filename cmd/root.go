package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"wiper/internal/app/common"
	"wiper/internal/domain/safety"
	"wiper/internal/infra/config"
	"wiper/internal/infra/console"
	"wiper/internal/infra/logging"
)

const (
	exitError         = 1
	exitNotAuthorized = 2
)

var opts common.GlobalOptions

var rootCmd = &cobra.Command{
	Use:           "wiper",
	Short:         "Wiper plans and gates destructive disk wipes",
	Long:          "Wiper builds dd, blkdiscard, hdparm and nvme wipe commands for a device. It runs in dry-run mode unless --execute is given, " + safety.AllowExecuteEnv + "=1 is set and the device is confirmed interactively.",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func Execute() error {
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		appCtx, err := buildAppContext(ctx)
		if err != nil {
			return err
		}
		cmd.SetContext(context.WithValue(ctx, common.ContextKeyApp, appCtx))
		return nil
	}

	return rootCmd.Execute()
}

// ExitCode maps a command error to the process exit status.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	if errors.Is(err, safety.ErrNotAuthorized) {
		return exitNotAuthorized
	}
	return exitError
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&opts.DryRun, "dry-run", false, "Only show commands, never execute (wins over --execute)")
	rootCmd.PersistentFlags().BoolVar(&opts.Debug, "debug", false, "Enable debug output")
	rootCmd.PersistentFlags().BoolVar(&opts.JSON, "json", false, "Output as JSON")
	rootCmd.PersistentFlags().BoolVar(&opts.NoOpLog, "no-oplog", false, "Disable operation log")

	rootCmd.AddCommand(wipeCmd)
	rootCmd.AddCommand(methodsCmd)
	rootCmd.AddCommand(interactiveCmd)
	rootCmd.AddCommand(versionCmd)
}

func printResult(v any) error {
	if opts.JSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}

	if line, ok := v.(fmt.Stringer); ok {
		fmt.Println(line.String())
		return nil
	}

	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(b))
	return nil
}

func buildAppContext(ctx context.Context) (*common.AppContext, error) {
	store := config.NewStore()
	cfg, err := store.Load(ctx)
	if err != nil {
		return nil, err
	}

	oplogDisabled := opts.NoOpLog || os.Getenv("WIPER_NO_OPLOG") == "1" || !cfg.OpLogEnabled()
	oplog, err := logging.NewOperationLogger(ctx, oplogDisabled)
	if err != nil {
		if opts.Debug {
			fmt.Fprintf(os.Stderr, "debug: operation log unavailable: %v\n", err)
		}
		oplog = logging.NewNoopLogger()
	}

	return &common.AppContext{
		Options:  opts,
		Config:   cfg,
		Logger:   oplog,
		Prompter: console.NewPrompter(os.Stdin, os.Stderr),
	}, nil
}
