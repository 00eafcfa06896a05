package cli

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"signassist/internal/config"
	"signassist/internal/videourl"
)

func newURLCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "url <term>",
		Short: "Print the video link for a word",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No provider is needed, so only the config file is read
			cfg, err := loadConfig(flags, cmd.Flags(), nil, false, zerolog.Nop())
			if err != nil {
				return err
			}
			builder, err := videourl.NewBuilder(cfg.Video.URLTemplate)
			if err != nil {
				return fmt.Errorf("%w: %v", config.ErrInvalidConfig, err)
			}
			url, err := builder.Build(strings.Join(args, " "))
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), url)
			return err
		},
	}
}
