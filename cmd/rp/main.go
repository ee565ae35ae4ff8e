package main

import (
	"fmt"
	"net/http"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/yourusername/repopitch/internal/adapter/ai"
	"github.com/yourusername/repopitch/internal/adapter/config"
	"github.com/yourusername/repopitch/internal/adapter/github"
	"github.com/yourusername/repopitch/internal/server"
	"github.com/yourusername/repopitch/internal/ui"
	"github.com/yourusername/repopitch/internal/usecase"
)

var (
	version    = "0.1.0"
	cfgManager *config.Manager
)

func main() {
	// Initialize config manager
	var err error
	cfgManager, err = config.NewManager()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: Failed to initialize config: %v\n", err)
		os.Exit(1)
	}

	rootCmd := &cobra.Command{
		Use:   "rp",
		Short: "RepoPitch - turn a GitHub repository into a pitch deck",
		Long: `RepoPitch (rp) analyzes a public GitHub repository and generates an
investor-style pitch deck with AI, right in your terminal. Decks can be
presented full-screen or exported as a PowerPoint file.`,
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPitch()
		},
	}

	rootCmd.AddCommand(pitchCmd())
	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(configCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func pitchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pitch",
		Short: "Run the interactive pitch deck wizard",
		Long: `Walks you through generating a pitch deck: paste a GitHub repository URL,
pick a visual theme, tune generation settings, and present or export the
result. This is also the default command when rp is run without arguments.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPitch()
		},
	}

	return cmd
}

func serveCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		Long: `Starts an HTTP server exposing the collection, generation and export
pipeline as a JSON API for other frontends.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(addr)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", "", "Listen address (defaults to configured server_addr)")

	return cmd
}

func configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Configure RepoPitch defaults",
		Long:  `Interactive wizard to set default theme, tone and server address.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfig()
		},
	}

	return cmd
}

func runPitch() error {
	// Load preferences
	prefs, err := cfgManager.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if cfgManager.GroqAPIKey() == "" {
		ui.PrintWarning("GROQ_API_KEY is not set; decks will use built-in fallback content.")
	}
	if cfgManager.GitHubToken() == "" {
		ui.PrintSubtle("GITHUB_TOKEN is not set; API rate limits will be lower.")
	}

	// The wizard owns the terminal, so adapters log nowhere
	logger := zap.NewNop()

	collector := github.NewClient(cfgManager.GitHubToken(), github.ClientConfig{}, logger)
	provider := ai.NewGroqProvider(cfgManager.GroqAPIKey(), ai.ProviderConfig{}, logger)
	uc := usecase.NewGenerateDeckUseCase(collector, provider, logger)

	model := ui.NewWizardModel(uc, prefs)
	p := tea.NewProgram(model, tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("UI error: %w", err)
	}

	wizard := finalModel.(ui.WizardModel)
	if wizard.Cancelled() {
		fmt.Println("\nCancelled.")
	}

	return nil
}

func runServe(addr string) error {
	prefs, err := cfgManager.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if addr == "" {
		addr = prefs.ServerAddr
	}

	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()

	collector := github.NewClient(cfgManager.GitHubToken(), github.ClientConfig{}, logger)
	provider := ai.NewGroqProvider(cfgManager.GroqAPIKey(), ai.ProviderConfig{}, logger)

	srv := server.New(collector, provider, logger)

	logger.Info("starting server", zap.String("addr", addr))
	if err := http.ListenAndServe(addr, srv); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

func runConfig() error {
	fmt.Println("╔══════════════════════════════════════════════════════════════╗")
	fmt.Println("║              RepoPitch Configuration Wizard                  ║")
	fmt.Println("╚══════════════════════════════════════════════════════════════╝")
	fmt.Println()

	// Load existing config
	cfg, err := cfgManager.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Default theme
	fmt.Println("Default theme:")
	fmt.Println("  1. modern (clean, light)")
	fmt.Println("  2. classic (warm, serif feel)")
	fmt.Println("  3. bold (dark, high contrast)")
	fmt.Printf("  Current: %s\n", cfg.DefaultTheme)
	fmt.Print("  Select (1-3) or press Enter to keep current: ")

	var themeChoice string
	fmt.Scanln(&themeChoice)
	switch themeChoice {
	case "1":
		cfg.DefaultTheme = "modern"
	case "2":
		cfg.DefaultTheme = "classic"
	case "3":
		cfg.DefaultTheme = "bold"
	}

	// Default tone
	fmt.Println()
	fmt.Println("Default tone:")
	fmt.Println("  1. professional (formal, investor-ready)")
	fmt.Println("  2. balanced (default)")
	fmt.Println("  3. technical (developer-focused)")
	fmt.Printf("  Current: %s\n", cfg.DefaultTone)
	fmt.Print("  Select (1-3) or press Enter to keep current: ")

	var toneChoice string
	fmt.Scanln(&toneChoice)
	switch toneChoice {
	case "1":
		cfg.DefaultTone = "professional"
	case "2":
		cfg.DefaultTone = "balanced"
	case "3":
		cfg.DefaultTone = "technical"
	}

	// Server address
	fmt.Println()
	fmt.Println("Server address (for 'rp serve'):")
	fmt.Printf("  Current: %s\n", cfg.ServerAddr)
	fmt.Print("  Press Enter to keep current or type a new address: ")

	var serverAddr string
	fmt.Scanln(&serverAddr)
	if serverAddr != "" {
		cfg.ServerAddr = serverAddr
	}

	// Save configuration
	if err := cfgManager.Save(cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Println()
	ui.PrintSuccess(fmt.Sprintf("Configuration saved to: %s", cfgManager.ConfigPath()))
	fmt.Println()
	fmt.Println("API keys are read from the environment:")
	fmt.Printf("  %s  %s\n", config.EnvGroqAPIKey, keyStatus(cfgManager.GroqAPIKey()))
	fmt.Printf("  %s  %s\n", config.EnvGitHubToken, keyStatus(cfgManager.GitHubToken()))
	fmt.Println()
	fmt.Println("You're all set! Run 'rp' to generate your first pitch deck.")

	return nil
}

func keyStatus(key string) string {
	if key == "" {
		return ui.FormatValue("not set")
	}
	return ui.FormatValue("set")
}
