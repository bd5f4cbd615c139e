package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
	"github.com/rshep3087/ledgerly/api"
	"github.com/rshep3087/ledgerly/validation"
	"github.com/spf13/cobra"
)

// authCommand encapsulates the dependencies of the auth subcommands.
type authCommand struct {
	d *deps
}

// newAuthCmd creates the auth command tree.
func newAuthCmd(d *deps) *cobra.Command {
	c := authCommand{d: d}

	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Authentication commands",
		Long:  `Log in, register and check the current session against the ledgerly API.`,
	}

	loginCmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and print a bearer token",
		Long: `Log in with email and password. The token is printed so it can be
stored in LEDGERLY_TOKEN or the config file; it is not saved by ledgerly.`,
		RunE: c.login,
	}
	loginCmd.Flags().String("email", "", "account email (required)")
	loginCmd.Flags().String("password", "", "account password (prompted when omitted on a terminal)")
	addOutputFlag(loginCmd)

	registerCmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and print a bearer token",
		RunE:  c.register,
	}
	registerCmd.Flags().String("name", "", "display name (required)")
	registerCmd.Flags().String("email", "", "account email (required)")
	registerCmd.Flags().String("password", "", "account password (prompted when omitted on a terminal)")
	addOutputFlag(registerCmd)

	verifyCmd := &cobra.Command{
		Use:   "verify",
		Short: "Check that the configured token is valid",
		RunE:  c.verify,
	}
	addOutputFlag(verifyCmd)

	cmd.AddCommand(loginCmd, registerCmd, verifyCmd)
	return cmd
}

func (c authCommand) login(cmd *cobra.Command, _ []string) error {
	outputFormat, err := validateOutputFormat(cmd)
	if err != nil {
		return err
	}

	email, _ := cmd.Flags().GetString("email")
	password, err := passwordFlag(cmd)
	if err != nil {
		return err
	}

	result := validation.ValidateLoginForm(validation.Fields{
		validation.FieldEmail:    email,
		validation.FieldPassword: password,
	})
	if !result.IsValid() {
		return result.Err()
	}

	resp, err := c.d.auth.Login(cmd.Context(), api.LoginRequest{Email: email, Password: password})
	if err != nil {
		return fmt.Errorf("failed to log in: %w", err)
	}

	log.Debug("logged in", "user", resp.User.ID)
	return outputAuth(cmd, outputFormat, resp)
}

func (c authCommand) register(cmd *cobra.Command, _ []string) error {
	outputFormat, err := validateOutputFormat(cmd)
	if err != nil {
		return err
	}

	name, _ := cmd.Flags().GetString("name")
	email, _ := cmd.Flags().GetString("email")
	password, err := passwordFlag(cmd)
	if err != nil {
		return err
	}

	result := validation.ValidateRegisterForm(validation.Fields{
		validation.FieldName:     name,
		validation.FieldEmail:    email,
		validation.FieldPassword: password,
	})
	if !result.IsValid() {
		return result.Err()
	}

	resp, err := c.d.auth.Register(cmd.Context(), api.RegisterRequest{
		Name:     name,
		Email:    email,
		Password: password,
	})
	if err != nil {
		return fmt.Errorf("failed to register: %w", err)
	}

	return outputAuth(cmd, outputFormat, resp)
}

func (c authCommand) verify(cmd *cobra.Command, _ []string) error {
	outputFormat, err := validateOutputFormat(cmd)
	if err != nil {
		return err
	}

	resp, err := c.d.auth.Verify(cmd.Context())
	if err != nil {
		return authHint(fmt.Errorf("failed to verify session: %w", err))
	}
	if !resp.Valid {
		return errors.New("session is not valid")
	}

	switch outputFormat {
	case jsonOutputFormat:
		return outputJSON(cmd.OutOrStdout(), resp)
	default:
		return outputUserTable(cmd.OutOrStdout(), resp.User)
	}
}

// passwordFlag returns --password, prompting for it when the flag is empty
// and input is a terminal.
func passwordFlag(cmd *cobra.Command) (string, error) {
	password, _ := cmd.Flags().GetString("password")
	if password != "" || !isTerminal(cmd.InOrStdin()) {
		return password, nil
	}

	err := huh.NewInput().
		Title("Password").
		EchoMode(huh.EchoModePassword).
		Validate(func(s string) error {
			if r := validation.ValidatePassword(s); !r.IsValid() {
				return errors.New(r.Error)
			}
			return nil
		}).
		Value(&password).
		Run()
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}

	return password, nil
}

// isTerminal reports whether r is an interactive terminal.
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func outputAuth(cmd *cobra.Command, outputFormat string, resp *api.AuthResponse) error {
	if outputFormat == jsonOutputFormat {
		return outputJSON(cmd.OutOrStdout(), resp)
	}

	if err := outputUserTable(cmd.OutOrStdout(), resp.User); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "\nexport LEDGERLY_TOKEN=%s\n", resp.Token)
	return nil
}

func outputUserTable(w io.Writer, user api.User) error {
	t := createStyledTable("FIELD", "VALUE")

	if user.ID != "" {
		t.Row("User ID", user.ID)
	}
	if user.Name != "" {
		t.Row("Name", user.Name)
	}
	if user.Email != "" {
		t.Row("Email", user.Email)
	}

	fmt.Fprintln(w, t)
	return nil
}
