package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Umidjon1990/tolovnazorat-bot/internal/screens"
)

// courses: print the catalogue in backend order.
func coursesCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "courses",
		Short: "List available courses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			courses, err := c.app.Gateway.ListCourses(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(courses) == 0 {
				fmt.Fprintln(out, "no courses")
				return nil
			}
			for i, course := range courses {
				ch := screens.Choice{Course: course, Premium: course.Premium()}
				fmt.Fprintf(out, "%d) %s\n", i+1, ch.Label())
			}
			return nil
		},
	}
}
