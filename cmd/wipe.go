package cmd

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"wiper/internal/app/common"
	"wiper/internal/app/wipe"
)

var (
	wipeDevice  string
	wipeMethod  string
	wipePasses  int
	wipeExecute bool
)

var wipeCmd = &cobra.Command{
	Use:   "wipe",
	Short: "Plan a device wipe and run it when explicitly authorized",
	Long: `Plan the wipe commands for a device. Without --execute every command is only shown.

A live wipe requires all of:
  --execute
  WIPER_ALLOW_EXECUTE=1 in the environment
  retyping the device path, then ERASE twice`,
	Example: `  wiper wipe --device /dev/sdb --method dd --passes 2
  WIPER_ALLOW_EXECUTE=1 wiper wipe -d /dev/sdb -m blkdiscard --execute`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := common.FromCommand(cmd)
		if err != nil {
			return err
		}

		method := wipeMethod
		if strings.TrimSpace(method) == "" {
			method = app.Config.DefaultMethod
		}
		passes := wipePasses
		if !cmd.Flags().Changed("passes") {
			passes = app.Config.DefaultPasses
		}
		if err := validateWipeFlags(wipeDevice, passes); err != nil {
			return err
		}

		svc := wipe.NewService()
		result, err := svc.Run(cmd.Context(), app, wipe.Options{
			Device:  wipeDevice,
			Method:  method,
			Passes:  passes,
			Execute: wipeExecute,
		})
		if err != nil {
			if len(result.Items) > 0 {
				_ = printResult(result)
			}
			return err
		}
		return printResult(result)
	},
}

func validateWipeFlags(device string, passes int) error {
	if strings.TrimSpace(device) == "" {
		return errors.New("--device is required for wipe operations")
	}
	if passes < 1 {
		return errors.New("--passes must be >= 1")
	}
	return nil
}

func init() {
	wipeCmd.Flags().StringVarP(&wipeDevice, "device", "d", "", `Device to wipe (e.g. /dev/sdb, \\.\PhysicalDrive1 or E:)`)
	wipeCmd.Flags().StringVarP(&wipeMethod, "method", "m", "", "Method: dd|blkdiscard|hdparm|nvme (default from config, dd)")
	wipeCmd.Flags().IntVarP(&wipePasses, "passes", "n", 1, "Number of random passes (dd only)")
	wipeCmd.Flags().BoolVarP(&wipeExecute, "execute", "e", false, "Actually execute (requires WIPER_ALLOW_EXECUTE=1 and confirmation)")
}
