package cmd

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/gaze-network/nft-minter/common/errs"
	nftmodule "github.com/gaze-network/nft-minter/modules/nft"
)

const version = "v0.1.0"

var versions = map[string]string{
	"":    version,
	"nft": nftmodule.Version,
}

type versionCmdOptions struct {
	Module string
}

func NewVersionCommand() *cobra.Command {
	opts := &versionCmdOptions{}

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show nft-minter version",
		RunE: func(cmd *cobra.Command, args []string) error {
			return versionHandler(opts, cmd, args)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.Module, "module", "", `Show version of a specific module. E.g. "nft"`)

	return cmd
}

func versionHandler(opts *versionCmdOptions, _ *cobra.Command, _ []string) error {
	v, ok := versions[opts.Module]
	if !ok {
		return errors.Wrap(errs.Unsupported, "Invalid module name")
	}
	fmt.Println(v)
	return nil
}
