package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

type roadmapOutput struct {
	RoadmapPoints string   `json:"roadmap_points"`
	Steps         []string `json:"steps"`
	Fallback      bool     `json:"fallback"`
}

var roadmapCmd = &cobra.Command{
	Use:   "roadmap <job title>",
	Short: "Print the learning roadmap for a job",
	Args:  cobra.ExactArgs(1),
	RunE:  runRoadmap,
}

func init() {
	rootCmd.AddCommand(roadmapCmd)

	roadmapCmd.Flags().BoolP("mermaid", "m", false, "print only the Mermaid flowchart")
}

func runRoadmap(cmd *cobra.Command, args []string) error {
	d, err := newDeps()
	if err != nil {
		return err
	}
	defer func() { _ = d.logger.Sync() }()

	r, err := d.roadmap().GenerateRoadmap(cmd.Context(), args[0], "")
	if err != nil {
		return err
	}

	if mermaid, _ := cmd.Flags().GetBool("mermaid"); mermaid {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), r.Mermaid())
		return err
	}
	return writeJSON(cmd.OutOrStdout(), roadmapOutput{
		RoadmapPoints: r.Mermaid(),
		Steps:         r.Steps,
		Fallback:      r.Fallback,
	})
}
