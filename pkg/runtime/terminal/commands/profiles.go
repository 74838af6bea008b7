package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pp-tools/pizza-pulse/pkg/services/config"
)

type ProfilesCmd struct {
	profilePath string
}

func NewProfilesCmd(defaultProfilePath string) *cobra.Command {
	pc := &ProfilesCmd{}
	cmd := &cobra.Command{
		Use:   "profiles",
		Short: "List configured dataset profiles",
		RunE:  pc.run,
	}

	cmd.Flags().StringVar(&pc.profilePath, "profiles-path", defaultProfilePath, "Path to the profiles file")

	return cmd
}

func (pc *ProfilesCmd) run(cmd *cobra.Command, _ []string) error {
	registry, err := config.NewRegistry(pc.profilePath)
	if err != nil {
		return fmt.Errorf("failed to load profiles from %s: %w", pc.profilePath, err)
	}

	profiles, err := registry.GetProfiles(cmd.Context())
	if err != nil {
		return err
	}

	for _, p := range profiles {
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", p.Name, p.Type, p.Path)
	}
	return nil
}
