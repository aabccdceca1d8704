package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sabhahq/sabha/internal/role"
)

var passwordCmd = &cobra.Command{
	Use:   "password",
	Short: "Manage your account password",
}

// passwordChangeCmd changes the password of the signed-in member
var passwordChangeCmd = &cobra.Command{
	Use:   "change",
	Short: "Change your password",
	Long: `Change the password of the signed-in member. Prompts for the
current and new password when not given as flags.

Examples:
  sabha password change`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}

		// Any signed-in member may change their own password.
		if _, err := app.requireAccess(cmd.Context(), role.DestOfficeDashboard); err != nil {
			return err
		}

		oldPassword, _ := cmd.Flags().GetString("current")
		newPassword, _ := cmd.Flags().GetString("new")
		if oldPassword == "" {
			if err := promptInput("Current password", &oldPassword, true); err != nil {
				return err
			}
		}
		if newPassword == "" {
			if err := promptInput("New password", &newPassword, true); err != nil {
				return err
			}
		}
		if oldPassword == "" || newPassword == "" {
			return fmt.Errorf("current and new password are required")
		}

		if err := app.client.ChangePassword(cmd.Context(), oldPassword, newPassword); err != nil {
			return err
		}

		fmt.Println("Password changed.")
		return nil
	},
}

// passwordForgotCmd starts the OTP-based reset flow
var passwordForgotCmd = &cobra.Command{
	Use:   "forgot",
	Short: "Request a password reset code",
	Long: `Ask the backend to send a one-time reset code to the contact
details on file for a member number.

Examples:
  sabha password forgot --member-no M-1042`,
	RunE: func(cmd *cobra.Command, args []string) error {
		memberNo, _ := cmd.Flags().GetString("member-no")
		if memberNo == "" {
			if err := promptInput("Member number", &memberNo, false); err != nil {
				return err
			}
		}
		if memberNo == "" {
			return fmt.Errorf("member number is required")
		}

		app, err := newApp()
		if err != nil {
			return err
		}

		if err := app.client.ForgotPassword(cmd.Context(), memberNo); err != nil {
			return err
		}

		fmt.Println("Reset code sent. Complete the reset with 'sabha password reset'.")
		return nil
	},
}

// passwordResetCmd completes the OTP-based reset flow
var passwordResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset your password with a one-time code",
	Long: `Exchange the one-time code from 'sabha password forgot' for a
reset token and set a new password.

Examples:
  sabha password reset --member-no M-1042 --otp 482913`,
	RunE: func(cmd *cobra.Command, args []string) error {
		memberNo, _ := cmd.Flags().GetString("member-no")
		otp, _ := cmd.Flags().GetString("otp")
		if memberNo == "" {
			if err := promptInput("Member number", &memberNo, false); err != nil {
				return err
			}
		}
		if otp == "" {
			if err := promptInput("One-time code", &otp, false); err != nil {
				return err
			}
		}
		if memberNo == "" || otp == "" {
			return fmt.Errorf("member number and one-time code are required")
		}

		app, err := newApp()
		if err != nil {
			return err
		}

		resetToken, err := app.client.VerifyOTP(cmd.Context(), memberNo, otp)
		if err != nil {
			return err
		}

		var newPassword string
		if err := promptInput("New password", &newPassword, true); err != nil {
			return err
		}
		if newPassword == "" {
			return fmt.Errorf("new password is required")
		}

		if err := app.client.ResetPassword(cmd.Context(), resetToken, newPassword); err != nil {
			return err
		}

		fmt.Println("Password reset. Sign in with 'sabha login'.")
		return nil
	},
}

func init() {
	passwordChangeCmd.Flags().String("current", "", "Current password (prompted when omitted)")
	passwordChangeCmd.Flags().String("new", "", "New password (prompted when omitted)")
	passwordForgotCmd.Flags().String("member-no", "", "Member number")
	passwordResetCmd.Flags().String("member-no", "", "Member number")
	passwordResetCmd.Flags().String("otp", "", "One-time code")

	passwordCmd.AddCommand(passwordChangeCmd)
	passwordCmd.AddCommand(passwordForgotCmd)
	passwordCmd.AddCommand(passwordResetCmd)
	rootCmd.AddCommand(passwordCmd)
}
