package commands

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/kutbudev/agri-api/internal/api"
)

func NewTagsCommand() *cli.Command {
	return &cli.Command{
		Name:  "tags",
		Usage: "List all tags",
		Action: func(c *cli.Context) error {
			client := api.NewClient()
			tags, err := client.ListTags()
			if err != nil {
				return fmt.Errorf("could not list tags: %w", err)
			}

			if len(tags) == 0 {
				fmt.Println("No tags yet")
				return nil
			}

			for _, tag := range tags {
				fmt.Println(tagStyle.Render("#" + tag.Name))
			}
			return nil
		},
	}
}
