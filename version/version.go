//nolint
package version

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// GitCommit is the current HEAD set using ldflags.
	GitCommit         string
	CosmosRelease     string
	TendermintRelease string

	Version string
)

const NodeVersion = "0.1.0"

func init() {
	Version = fmt.Sprintf("NFT Market Release: %s;", NodeVersion)
	if GitCommit != "" {
		Version += fmt.Sprintf("NFT Market Commit: %s;", GitCommit)
	}
	if CosmosRelease != "" {
		Version += fmt.Sprintf(" Cosmos Release: %s;", CosmosRelease)
	}
	if TendermintRelease != "" {
		Version += fmt.Sprintf(" Tendermint Release: %s;", TendermintRelease)
	}
}

// VersionCmd prints the release information compiled into the binary.
var VersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the app version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(Version)
	},
}
