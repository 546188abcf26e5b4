package commands

import (
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/urfave/cli/v2"

	"github.com/kutbudev/agri-api/internal/api"
	"github.com/kutbudev/agri-api/internal/config"
	"github.com/kutbudev/agri-api/pkg/models"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	metaStyle  = lipgloss.NewStyle().Faint(true)
	tagStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("63"))
	draftStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

func NewPostCommand() *cli.Command {
	return &cli.Command{
		Name:  "post",
		Usage: "Create, list, and manage your posts",
		Subcommands: []*cli.Command{
			newPostCreateCommand(),
			newPostListCommand(),
			newPostShowCommand(),
			newPostEditCommand(),
			newPostDeleteCommand(),
		},
	}
}

func newPostCreateCommand() *cli.Command {
	return &cli.Command{
		Name:  "create",
		Usage: "Publish a new post",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "title", Aliases: []string{"t"}, Usage: "Post title"},
			&cli.StringFlag{Name: "summary", Aliases: []string{"s"}, Usage: "Short summary"},
			&cli.StringFlag{Name: "content", Aliases: []string{"c"}, Usage: "Post body"},
			&cli.StringFlag{Name: "tags", Usage: "Comma-separated tag names"},
			&cli.BoolFlag{Name: "draft", Usage: "Create as unpublished draft"},
			&cli.BoolFlag{Name: "interactive", Aliases: []string{"i"}, Usage: "Prompt for all fields"},
		},
		Action: func(c *cli.Context) error {
			req := api.CreatePostRequest{
				Title:   c.String("title"),
				Summary: c.String("summary"),
				Content: c.String("content"),
				Tags:    splitTags(c.String("tags")),
			}

			if c.Bool("interactive") || req.Title == "" {
				if err := promptPostFields(&req); err != nil {
					return err
				}
			}

			if c.Bool("draft") {
				published := false
				req.IsPublished = &published
			}

			client := api.NewClient()
			post, err := client.CreatePost(req)
			if err != nil {
				return fmt.Errorf("could not create post: %w", err)
			}

			fmt.Printf("✅ Created post: %s\n", post.Title)
			fmt.Printf("✅ Post ID: %s\n", post.ID)
			return nil
		},
	}
}

func promptPostFields(req *api.CreatePostRequest) error {
	qs := []*survey.Question{}
	if req.Title == "" {
		qs = append(qs, &survey.Question{
			Name:     "title",
			Prompt:   &survey.Input{Message: "Title:"},
			Validate: survey.Required,
		})
	}
	if req.Summary == "" {
		qs = append(qs, &survey.Question{
			Name:     "summary",
			Prompt:   &survey.Input{Message: "Summary:"},
			Validate: survey.Required,
		})
	}
	if req.Content == "" {
		qs = append(qs, &survey.Question{
			Name:     "content",
			Prompt:   &survey.Multiline{Message: "Content (markdown):"},
			Validate: survey.Required,
		})
	}
	if len(req.Tags) == 0 {
		qs = append(qs, &survey.Question{
			Name:   "tags",
			Prompt: &survey.Input{Message: "Tags (comma separated, optional):"},
		})
	}
	if len(qs) == 0 {
		return nil
	}

	var answers struct {
		Title   string
		Summary string
		Content string
		Tags    string
	}
	if err := survey.Ask(qs, &answers); err != nil {
		return err
	}

	if answers.Title != "" {
		req.Title = answers.Title
	}
	if answers.Summary != "" {
		req.Summary = answers.Summary
	}
	if answers.Content != "" {
		req.Content = answers.Content
	}
	if answers.Tags != "" {
		req.Tags = splitTags(answers.Tags)
	}
	return nil
}

func newPostListCommand() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List posts",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "all", Aliases: []string{"a"}, Usage: "Include unpublished posts"},
			&cli.BoolFlag{Name: "mine", Aliases: []string{"m"}, Usage: "Only your own posts"},
			&cli.StringFlag{Name: "search", Usage: "Filter by a search term"},
		},
		Action: func(c *cli.Context) error {
			opts := api.ListOptions{
				IncludeUnpublished: c.Bool("all"),
				Search:             c.String("search"),
			}

			if c.Bool("mine") {
				cfg, err := config.LoadConfig()
				if err != nil {
					return err
				}
				if cfg.User == nil {
					fmt.Println("❌ Not logged in")
					fmt.Println("💡 Use 'agri login' to authenticate")
					return nil
				}
				opts.AuthorID = cfg.User.ID
			}

			client := api.NewClient()
			posts, err := client.ListPosts(opts)
			if err != nil {
				return fmt.Errorf("could not list posts: %w", err)
			}

			if len(posts) == 0 {
				fmt.Println("No posts found")
				return nil
			}

			for _, post := range posts {
				printPostLine(post)
			}
			return nil
		},
	}
}

func printPostLine(post models.PostDTO) {
	title := titleStyle.Render(post.Title)
	if !post.IsPublished {
		title += " " + draftStyle.Render("[draft]")
	}
	fmt.Println(title)

	meta := fmt.Sprintf("  %s · by %s · %s",
		post.ID, post.Author.DisplayName, post.CreatedAt.Format("2006-01-02"))
	fmt.Println(metaStyle.Render(meta))

	if len(post.Tags) > 0 {
		fmt.Println("  " + tagStyle.Render("#"+strings.Join(post.Tags, " #")))
	}
	fmt.Println("  " + truncateString(post.Summary, 100))
	fmt.Println()
}

func newPostShowCommand() *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     "Show a single post",
		ArgsUsage: "<post-id>",
		Action: func(c *cli.Context) error {
			if c.NArg() < 1 {
				return fmt.Errorf("post id is required")
			}

			client := api.NewClient()
			post, err := client.GetPost(c.Args().First())
			if err != nil {
				return fmt.Errorf("could not load post: %w", err)
			}

			fmt.Println(titleStyle.Render(post.Title))
			fmt.Println(metaStyle.Render(fmt.Sprintf("by %s · updated %s",
				post.Author.DisplayName, post.UpdatedAt.Format("2006-01-02 15:04"))))
			if len(post.Tags) > 0 {
				fmt.Println(tagStyle.Render("#" + strings.Join(post.Tags, " #")))
			}
			fmt.Println()

			renderer, err := glamour.NewTermRenderer(
				glamour.WithAutoStyle(),
				glamour.WithWordWrap(100),
			)
			if err != nil {
				fmt.Println(post.Content)
				return nil
			}
			out, err := renderer.Render(post.Content)
			if err != nil {
				fmt.Println(post.Content)
				return nil
			}
			fmt.Print(out)
			return nil
		},
	}
}

func newPostEditCommand() *cli.Command {
	return &cli.Command{
		Name:      "edit",
		Usage:     "Edit one of your posts",
		ArgsUsage: "<post-id>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "title", Aliases: []string{"t"}},
			&cli.StringFlag{Name: "summary", Aliases: []string{"s"}},
			&cli.StringFlag{Name: "content", Aliases: []string{"c"}},
			&cli.StringFlag{Name: "tags", Usage: "Comma-separated tag names; empty value clears all tags"},
			&cli.BoolFlag{Name: "publish", Usage: "Mark the post published"},
			&cli.BoolFlag{Name: "unpublish", Usage: "Mark the post unpublished"},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() < 1 {
				return fmt.Errorf("post id is required")
			}

			var req api.UpdatePostRequest
			if c.IsSet("title") {
				req.Title = stringPtr(c.String("title"))
			}
			if c.IsSet("summary") {
				req.Summary = stringPtr(c.String("summary"))
			}
			if c.IsSet("content") {
				req.Content = stringPtr(c.String("content"))
			}
			if c.IsSet("tags") {
				tags := splitTags(c.String("tags"))
				req.Tags = &tags
			}
			if c.Bool("publish") {
				published := true
				req.IsPublished = &published
			}
			if c.Bool("unpublish") {
				published := false
				req.IsPublished = &published
			}

			client := api.NewClient()
			post, err := client.UpdatePost(c.Args().First(), req)
			if err != nil {
				return fmt.Errorf("could not update post: %w", err)
			}

			fmt.Printf("✅ Updated post: %s\n", post.Title)
			return nil
		},
	}
}

func newPostDeleteCommand() *cli.Command {
	return &cli.Command{
		Name:      "delete",
		Usage:     "Delete one of your posts",
		ArgsUsage: "<post-id>",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "yes", Aliases: []string{"y"}, Usage: "Skip confirmation"},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() < 1 {
				return fmt.Errorf("post id is required")
			}
			id := c.Args().First()

			if !c.Bool("yes") {
				confirmed := false
				prompt := &survey.Confirm{Message: fmt.Sprintf("Delete post %s?", id)}
				if err := survey.AskOne(prompt, &confirmed); err != nil {
					return err
				}
				if !confirmed {
					fmt.Println("Aborted")
					return nil
				}
			}

			client := api.NewClient()
			if err := client.DeletePost(id); err != nil {
				return fmt.Errorf("could not delete post: %w", err)
			}

			fmt.Println("✅ Post deleted")
			return nil
		},
	}
}
