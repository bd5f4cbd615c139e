package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"slices"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/rshep3087/ledgerly/api"
	"github.com/rshep3087/ledgerly/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// authAPI is the part of api.AuthService the commands use.
type authAPI interface {
	Login(ctx context.Context, req api.LoginRequest) (*api.AuthResponse, error)
	Register(ctx context.Context, req api.RegisterRequest) (*api.AuthResponse, error)
	Verify(ctx context.Context) (*api.VerifyResponse, error)
}

// transactionsAPI is the part of api.TransactionService the commands use.
type transactionsAPI interface {
	categoriesGetter
	List(ctx context.Context, filters api.TransactionFilters) (*api.TransactionPage, error)
	Get(ctx context.Context, id string) (*api.Transaction, error)
	Create(ctx context.Context, in api.TransactionInput) (*api.Transaction, error)
	Update(ctx context.Context, id string, in api.TransactionInput) (*api.Transaction, error)
	Delete(ctx context.Context, id string) error
	CheckBudget(ctx context.Context, category string, amount float64) (*api.BudgetCheck, error)
}

// deps is filled in by the root command before any subcommand runs.
type deps struct {
	cfg          config.Config
	auth         authAPI
	transactions transactionsAPI
	recommender  *AIRecommender
}

var (
	cfgFile string
	app     = &deps{cfg: config.Default()}
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "ledgerly",
	Short: "A terminal client for the ledgerly personal-finance API",
	Long: `ledgerly validates and submits transactions to a ledgerly backend,
lists and edits them, and checks spending against budgets.`,
	SilenceUsage:      true,
	PersistentPreRunE: app.setup,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := fang.Execute(context.Background(), rootCmd); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	defaults := config.Default()

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.ledgerly.toml)")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	rootCmd.PersistentFlags().String("token", "", "the API bearer token")
	rootCmd.PersistentFlags().String("base-url", defaults.BaseURL, "root URL of the ledgerly API")
	rootCmd.PersistentFlags().Duration("timeout", defaults.Timeout, "HTTP request timeout")
	rootCmd.PersistentFlags().String("currency", defaults.Currency, "currency used to display amounts")

	// Bind flags to viper
	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("token", rootCmd.PersistentFlags().Lookup("token"))
	_ = viper.BindPFlag("base_url", rootCmd.PersistentFlags().Lookup("base-url"))
	_ = viper.BindPFlag("timeout", rootCmd.PersistentFlags().Lookup("timeout"))
	_ = viper.BindPFlag("currency", rootCmd.PersistentFlags().Lookup("currency"))

	// Bind environment variables
	_ = viper.BindEnv("token", "LEDGERLY_TOKEN")
	_ = viper.BindEnv("base_url", "LEDGERLY_BASE_URL")
	_ = viper.BindEnv("anthropic_api_key", "ANTHROPIC_API_KEY")

	// Add subcommands
	rootCmd.AddCommand(newAuthCmd(app))
	rootCmd.AddCommand(newTransactionCmd(app))
	rootCmd.AddCommand(newValidateCmd())
	rootCmd.AddCommand(newConfigCmd(app))
}

// initConfig reads in .env, the config file and ENV variables if set.
func initConfig() {
	// A missing .env file is normal.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warn("Could not read .env file", "error", err)
	}

	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("ledgerly")
		viper.SetConfigType("toml")

		// Search config in multiple locations (in order of precedence)
		viper.AddConfigPath(".")
		if configDir, err := os.UserConfigDir(); err == nil {
			viper.AddConfigPath(filepath.Join(configDir, "ledgerly"))
		}
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
			viper.AddConfigPath(filepath.Join(home, ".config", "ledgerly"))
		}
		viper.AddConfigPath("/etc/ledgerly")
	}

	viper.SetEnvPrefix("ledgerly")
	viper.AutomaticEnv() // read in environment variables that match

	if err := viper.ReadInConfig(); err != nil {
		log.Debug("Config file not found or error reading", "error", err)
		return
	}

	log.Debug("Using config file", "file", viper.ConfigFileUsed())
}

// loadConfig merges flags, environment, config file and defaults.
func loadConfig(v *viper.Viper) config.Config {
	cfg := config.Default()

	cfg.Debug = v.GetBool("debug")
	if s := v.GetString("base_url"); s != "" {
		cfg.BaseURL = s
	}
	cfg.Token = v.GetString("token")
	if d := v.GetDuration("timeout"); d > 0 {
		cfg.Timeout = d
	}
	if s := v.GetString("currency"); s != "" {
		cfg.Currency = s
	}
	cfg.AnthropicAPIKey = v.GetString("anthropic_api_key")

	return cfg
}

// setup builds the API services from the loaded configuration.
func (d *deps) setup(_ *cobra.Command, _ []string) error {
	d.cfg = loadConfig(viper.GetViper())

	log.SetLevel(log.InfoLevel)
	if d.cfg.Debug {
		log.SetLevel(log.DebugLevel)
		log.Debug("Debug logging enabled")
	}

	client, err := newAPIClient(d.cfg)
	if err != nil {
		return err
	}

	d.auth = api.NewAuthService(client)
	d.transactions = api.NewTransactionService(client)

	if d.cfg.SuggestionsEnabled() {
		d.recommender = NewAIRecommender(NewAnthropicProvider(d.cfg.AnthropicAPIKey))
	} else {
		d.recommender = NewAIRecommender(nil)
	}

	return nil
}

func newAPIClient(cfg config.Config) (*api.Client, error) {
	httpClient := &http.Client{
		Timeout:   cfg.Timeout,
		Transport: newLoggingTransport(http.DefaultTransport, log.Default()),
	}

	client, err := api.NewClient(cfg.BaseURL,
		api.WithHTTPClient(httpClient),
		api.WithToken(cfg.Token),
		api.WithUserAgent(userAgent),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create API client: %w", err)
	}

	return client, nil
}

// authHint adds a login hint to 401 errors.
func authHint(err error) error {
	if api.IsUnauthorized(err) {
		return fmt.Errorf("%w (log in with `ledgerly auth login` and set LEDGERLY_TOKEN)", err)
	}
	return err
}

// Utility functions for output formatting.
func addOutputFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("output", "o", tableOutputFormat, "Output format: table or json")
}

func validateOutputFormat(cmd *cobra.Command) (string, error) {
	outputFormat, _ := cmd.Flags().GetString("output")

	validFormats := []string{tableOutputFormat, jsonOutputFormat}
	if !slices.Contains(validFormats, outputFormat) {
		return "", fmt.Errorf("invalid output format: %s (must be one of %v)", outputFormat, validFormats)
	}

	return outputFormat, nil
}

func outputJSON(w io.Writer, data any) error {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	fmt.Fprintln(w, string(jsonData))
	return nil
}

func createStyledTable(headers ...string) *table.Table {
	var (
		purple    = lipgloss.Color("99")
		gray      = lipgloss.Color("245")
		lightGray = lipgloss.Color("241")

		headerStyle  = lipgloss.NewStyle().Foreground(purple).Bold(true).Align(lipgloss.Center)
		cellStyle    = lipgloss.NewStyle().Padding(0, 1)
		oddRowStyle  = cellStyle.Foreground(gray)
		evenRowStyle = cellStyle.Foreground(lightGray)
	)

	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(purple)).
		StyleFunc(func(row, _ int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case row%2 == 0:
				return evenRowStyle
			default:
				return oddRowStyle
			}
		}).
		Headers(headers...)
}
