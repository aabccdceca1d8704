package cmd

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/sabhahq/sabha/internal/session"
)

// loginCmd signs a member in and persists the session
var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in with your member credentials",
	Long: `Sign in to the association backend with your member number and
password. The session token is stored in ~/.sabha/session.json and
reused by every other command until it expires or you log out.

Examples:
  sabha login
  sabha login --member-no M-1042`,
	RunE: func(cmd *cobra.Command, args []string) error {
		memberNo, _ := cmd.Flags().GetString("member-no")
		password, _ := cmd.Flags().GetString("password")

		if memberNo == "" {
			if err := promptInput("Member number", &memberNo, false); err != nil {
				return err
			}
		}
		if password == "" {
			if err := promptInput("Password", &password, true); err != nil {
				return err
			}
		}
		if memberNo == "" || password == "" {
			return fmt.Errorf("member number and password are required")
		}

		app, err := newApp()
		if err != nil {
			return err
		}

		resp, err := app.client.Login(cmd.Context(), memberNo, password)
		if err != nil {
			return err
		}

		if err := app.store.Login(resp.Token, resp.User); err != nil {
			return err
		}

		snap := app.store.Snapshot()
		fmt.Printf("Signed in as %s (%s)\n", resp.User.Name, snap.Role())
		if resp.IsFirstLogin {
			fmt.Println("This is your first login. Change your password with 'sabha password change'.")
		}
		return nil
	},
}

// logoutCmd clears the persisted session
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and forget the stored session",
	Long: `Remove the stored session token and user identity. Safe to run
when already signed out.

Examples:
  sabha logout`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}

		app.store.Restore()
		if err := app.store.Logout(); err != nil {
			return err
		}

		fmt.Println("Signed out.")
		return nil
	},
}

// statusCmd shows the current session state
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current session status",
	Long: `Show who is signed in, the token expiry, and whether the backend
still accepts the session.

Examples:
  sabha status`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}

		snap := app.store.Restore()
		if snap.Token == "" {
			fmt.Println("Not logged in.")
			fmt.Println("Use 'sabha login' to authenticate.")
			return nil
		}

		if claims, err := session.ParseTokenClaims(snap.Token); err == nil && !claims.ExpiresAt.IsZero() {
			if claims.Expired() {
				fmt.Printf("Token expired at %s\n", claims.ExpiresAt.Format("2006-01-02 15:04"))
			} else {
				fmt.Printf("Token valid until %s\n", claims.ExpiresAt.Format("2006-01-02 15:04"))
			}
		}

		if err := app.store.Verify(cmd.Context()); err != nil {
			fmt.Println("Session rejected by the server.")
			fmt.Println("Use 'sabha login' to re-authenticate.")
			return nil
		}

		snap = app.store.Snapshot()
		if snap.User == nil {
			fmt.Println("Not logged in.")
			return nil
		}

		fmt.Println("Logged in")
		fmt.Printf("Member no: %s\n", snap.User.MemberNo)
		fmt.Printf("Name:      %s\n", snap.User.Name)
		fmt.Printf("Role:      %s\n", snap.Role())
		fmt.Printf("Email:     %s\n", snap.User.Email)
		return nil
	},
}

// promptInput displays an interactive prompt for a single value
func promptInput(title string, value *string, secret bool) error {
	input := huh.NewInput().
		Title(title).
		Value(value)
	if secret {
		input = input.EchoMode(huh.EchoModePassword)
	}

	form := huh.NewForm(huh.NewGroup(input))
	if err := form.Run(); err != nil {
		return fmt.Errorf("prompt failed: %w", err)
	}
	return nil
}

func init() {
	loginCmd.Flags().String("member-no", "", "Member number")
	loginCmd.Flags().String("password", "", "Password (prompted when omitted)")

	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(statusCmd)
}
