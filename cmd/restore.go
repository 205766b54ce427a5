package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/codeweft/weft/internal/backup"
	"github.com/codeweft/weft/internal/config"
)

var restoreCmd = &cobra.Command{
	Use:   "restore [file]",
	Short: "Restore a file from its most recent snapshot",
	Long: `Restore rewrites a file from the newest on-disk snapshot taken before a
previous insert. In-process rollback only lives as long as the process;
snapshots are what restore works from afterwards.`,
	Args: cobra.ExactArgs(1),
	RunE: runRestore,
}

func init() {
	rootCmd.AddCommand(restoreCmd)
	restoreCmd.Flags().String("snapshot", "", "restore a specific snapshot instead of the newest")
	restoreCmd.Flags().Bool("list", false, "list snapshots instead of restoring")
}

func runRestore(cmd *cobra.Command, args []string) error {
	target := args[0]

	cfgPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	mgr := backup.NewManager(cfg.Backup.Dir)

	if list, _ := cmd.Flags().GetBool("list"); list {
		ids, err := mgr.List(target)
		if err != nil {
			return err
		}
		if len(ids) == 0 {
			fmt.Println("no snapshots")
			return nil
		}
		for _, id := range ids {
			fmt.Println(id)
		}
		return nil
	}

	wanted, _ := cmd.Flags().GetString("snapshot")
	if wanted == "" {
		ids, err := mgr.List(target)
		if err != nil {
			return err
		}
		if len(ids) == 0 {
			return fmt.Errorf("no snapshots exist for %s", target)
		}
		wanted = string(ids[len(ids)-1])
	}

	if err := mgr.Restore(target, backup.SnapshotID(wanted)); err != nil {
		return err
	}
	fmt.Printf("restored %s from %s\n", target, wanted)
	return nil
}
