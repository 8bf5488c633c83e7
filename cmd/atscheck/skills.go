package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"alfredoptarigan/ats-checker/internal/services"
)

var skillsCmd = &cobra.Command{
	Use:   "skills",
	Short: "Print the skills list used for matching",
	Long:  "Print the skills list, creating it with the default skills first if the file does not exist.",
	Args:  cobra.NoArgs,
	RunE:  runSkills,
}

func init() {
	rootCmd.AddCommand(skillsCmd)
}

func runSkills(cmd *cobra.Command, _ []string) error {
	store := services.NewSkillStore(resolveSkillsFile())
	skills, err := store.Load()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, skill := range skills {
		fmt.Fprintln(out, skill)
	}
	return nil
}
