package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"voicebrief/cmd/voicebrief/cmd/serve"
	"voicebrief/cmd/voicebrief/cmd/version"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "voicebrief",
	Short: "A web application that transcribes and summarizes audio uploads",
	Long: `voicebrief runs a web application where users sign up, log in and
upload audio recordings. Each recording is transcribed with a local
offline speech model and summarized through a remote inference API.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serve.Cmd)
	rootCmd.AddCommand(version.Cmd)
}
