package commands

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/danielmarass/webmark/internal/folders"
	"github.com/danielmarass/webmark/internal/logger"
)

var foldersCmd = &cobra.Command{
	Use:   "folders",
	Short: "List recently used output folders",
	Long:  "List up to five recently used output folders, most recent first.",
	RunE:  runFolders,
}

func init() {
	rootCmd.AddCommand(foldersCmd)
}

func runFolders(cmd *cobra.Command, args []string) error {
	logger.Init(logger.Options{
		Debug: viper.GetBool("debug"),
		Quiet: viper.GetBool("quiet"),
	})

	store, err := folders.NewStore()
	if err != nil {
		return err
	}

	recent, err := store.Recent()
	if err != nil {
		return err
	}

	if len(recent) == 0 {
		cmd.Println("no recent folders")
		return nil
	}
	for _, p := range recent {
		cmd.Println(p)
	}
	return nil
}
