package commands

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/AlecAivazis/survey/v2"
	"github.com/urfave/cli/v2"
	"golang.org/x/term"

	"github.com/kutbudev/agri-api/internal/api"
	"github.com/kutbudev/agri-api/internal/config"
	"github.com/kutbudev/agri-api/pkg/models"
)

func NewRegisterCommand() *cli.Command {
	return &cli.Command{
		Name:  "register",
		Usage: "Register a new account",
		Action: func(c *cli.Context) error {
			return handleRegister()
		},
	}
}

func NewLoginCommand() *cli.Command {
	return &cli.Command{
		Name:  "login",
		Usage: "Login with existing credentials",
		Action: func(c *cli.Context) error {
			return handleLogin()
		},
	}
}

func NewLogoutCommand() *cli.Command {
	return &cli.Command{
		Name:  "logout",
		Usage: "Forget the local session",
		Action: func(c *cli.Context) error {
			if err := config.ClearToken(); err != nil {
				return fmt.Errorf("could not clear credential: %w", err)
			}

			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			cfg.User = nil
			if err := config.SaveConfig(cfg); err != nil {
				return err
			}

			fmt.Println("✅ Logged out")
			return nil
		},
	}
}

func NewWhoamiCommand() *cli.Command {
	return &cli.Command{
		Name:  "whoami",
		Usage: "Show the currently logged-in account",
		Action: func(c *cli.Context) error {
			client := api.NewClient()
			if client.Token == "" {
				fmt.Println("❌ Not logged in")
				fmt.Println("💡 Use 'agri login' to authenticate")
				return nil
			}

			account, err := client.CurrentUser()
			if err != nil {
				return fmt.Errorf("could not load account: %w", err)
			}

			fmt.Printf("👤 %s (@%s)\n", account.DisplayName, account.Username)
			fmt.Printf("📧 %s\n", account.Email)
			return nil
		},
	}
}

func handleRegister() error {
	qs := []*survey.Question{
		{
			Name:     "email",
			Prompt:   &survey.Input{Message: "Email:"},
			Validate: survey.Required,
		},
		{
			Name:     "username",
			Prompt:   &survey.Input{Message: "Username:"},
			Validate: survey.Required,
		},
		{
			Name:   "displayName",
			Prompt: &survey.Input{Message: "Display name (optional):"},
		},
		{
			Name:   "bio",
			Prompt: &survey.Input{Message: "Bio (optional):"},
		},
		{
			Name:     "password",
			Prompt:   &survey.Password{Message: "Password:"},
			Validate: survey.MinLength(8),
		},
	}

	var answers struct {
		Email       string
		Username    string
		DisplayName string
		Bio         string
		Password    string
	}
	if err := survey.Ask(qs, &answers); err != nil {
		return err
	}

	client := api.NewClient()
	account, err := client.Register(api.RegisterRequest{
		Email:       answers.Email,
		Password:    answers.Password,
		Username:    answers.Username,
		DisplayName: answers.DisplayName,
		Bio:         answers.Bio,
	})
	if err != nil {
		return fmt.Errorf("registration failed: %w", err)
	}

	if err := saveSession(account); err != nil {
		return err
	}

	fmt.Printf("✅ Registered and logged in as %s\n", account.Username)
	return nil
}

func handleLogin() error {
	reader := bufio.NewReader(os.Stdin)

	fmt.Print("Enter your email: ")
	email, err := reader.ReadString('\n')
	if err != nil {
		return fmt.Errorf("could not read email: %w", err)
	}
	email = strings.TrimSpace(email)

	fmt.Print("Enter your password: ")
	passwordBytes, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return fmt.Errorf("could not read password: %w", err)
	}

	client := api.NewClient()
	account, err := client.Login(email, string(passwordBytes))
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	if err := saveSession(account); err != nil {
		return err
	}

	fmt.Printf("✅ Logged in as %s\n", account.Username)
	return nil
}

// saveSession stores the credential in the keyring and caches the user in
// the config file so later commands can attach both without re-prompting.
func saveSession(account *models.Account) error {
	if err := config.StoreToken(account.Token); err != nil {
		return fmt.Errorf("could not save credential: %w", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	cfg.User = &config.CachedUser{
		ID:          account.ID.String(),
		Username:    account.Username,
		DisplayName: account.DisplayName,
		Email:       account.Email,
	}
	if err := config.SaveConfig(cfg); err != nil {
		return fmt.Errorf("could not save config: %w", err)
	}
	return nil
}
