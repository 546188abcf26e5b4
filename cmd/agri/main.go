package main

import (
	"log"
	"os"

	"github.com/kutbudev/agri-api/internal/cli/commands"
	"github.com/urfave/cli/v2"
)

// Version will be set during build with ldflags
var Version = "1.0.0"

func main() {
	app := &cli.App{
		Name:    "agri",
		Usage:   "Community tutorial sharing from the terminal",
		Version: Version,
		Commands: []*cli.Command{
			// Session
			commands.NewRegisterCommand(),
			commands.NewLoginCommand(),
			commands.NewLogoutCommand(),
			commands.NewWhoamiCommand(),

			// Content
			commands.NewPostCommand(),
			commands.NewTagsCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
