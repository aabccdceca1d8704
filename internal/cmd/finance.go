package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/sabhahq/sabha/internal/errors"
	"github.com/sabhahq/sabha/internal/role"
)

var fundsCmd = &cobra.Command{
	Use:   "funds",
	Short: "Inspect association funds",
}

// fundsListCmd lists the association's funds and balances
var fundsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List funds and balances",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		if _, err := app.requireAccess(cmd.Context(), role.DestFunds); err != nil {
			return err
		}

		funds, err := app.client.Funds(cmd.Context())
		if err != nil {
			return err
		}
		if len(funds) == 0 {
			fmt.Println("No funds found.")
			return nil
		}

		fmt.Printf("%-26s %14s %14s\n", "FUND", "BALANCE", "TARGET")
		for _, fund := range funds {
			fmt.Printf("%-26s %14.2f %14.2f\n", fund.Name, fund.Balance, fund.Target)
		}
		return nil
	},
}

var expensesCmd = &cobra.Command{
	Use:   "expenses",
	Short: "Inspect recorded expenses",
}

// expensesListCmd lists recorded expenses
var expensesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded expenses",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		if _, err := app.requireAccess(cmd.Context(), role.DestExpenses); err != nil {
			return err
		}

		expenses, err := app.client.Expenses(cmd.Context())
		if err != nil {
			return err
		}
		if len(expenses) == 0 {
			fmt.Println("No expenses recorded.")
			return nil
		}

		fmt.Printf("%-12s %-12s %-30s %-14s %12s\n", "ID", "DATE", "DESCRIPTION", "CATEGORY", "AMOUNT")
		for _, expense := range expenses {
			fmt.Printf("%-12s %-12s %-30s %-14s %12.2f\n",
				expense.ID,
				expense.SpentAt.Format("2006-01-02"),
				expense.Description,
				expense.Category,
				expense.Amount,
			)
		}
		return nil
	},
}

// expensesReceiptCmd attaches a receipt image or PDF to an expense
var expensesReceiptCmd = &cobra.Command{
	Use:   "receipt <expense-id> <file>",
	Short: "Attach a receipt to an expense",
	Long: `Upload a receipt file (image or PDF) for a recorded expense.

Examples:
  sabha expenses receipt exp-301 ./receipts/paint.pdf`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		if _, err := app.requireAccess(cmd.Context(), role.DestExpenses); err != nil {
			return err
		}

		expenseID, path := args[0], args[1]
		file, err := os.Open(path)
		if err != nil {
			return errors.Wrap(errors.ErrCodeFileReadFailed, "failed to open receipt file", err)
		}
		defer func() { _ = file.Close() }()

		if err := app.client.UploadReceipt(cmd.Context(), expenseID, filepath.Base(path), file); err != nil {
			return err
		}

		fmt.Printf("Receipt attached to expense %s\n", expenseID)
		return nil
	},
}

var contributionsCmd = &cobra.Command{
	Use:   "contributions",
	Short: "Inspect member contributions",
}

// contributionsListCmd lists member contributions
var contributionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List member contributions",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		if _, err := app.requireAccess(cmd.Context(), role.DestContributions); err != nil {
			return err
		}

		contributions, err := app.client.Contributions(cmd.Context())
		if err != nil {
			return err
		}
		if len(contributions) == 0 {
			fmt.Println("No contributions recorded.")
			return nil
		}

		fmt.Printf("%-12s %-10s %-10s %12s\n", "DATE", "MEMBER", "MODE", "AMOUNT")
		for _, contribution := range contributions {
			fmt.Printf("%-12s %-10s %-10s %12.2f\n",
				contribution.PaidAt.Format("2006-01-02"),
				contribution.MemberNo,
				contribution.Mode,
				contribution.Amount,
			)
		}
		return nil
	},
}

// reportsCmd prints the headline summary figures
var reportsCmd = &cobra.Command{
	Use:   "reports",
	Short: "Show summary figures",
	Long: `Print the association's headline figures: membership, fund
balances, contributions, expenses, and open items.

Examples:
  sabha reports`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		if _, err := app.requireAccess(cmd.Context(), role.DestReports); err != nil {
			return err
		}

		summary, err := app.client.Reports(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Printf("Members:           %d (%d active)\n", summary.TotalMembers, summary.ActiveMembers)
		fmt.Printf("Funds:             %.2f\n", summary.TotalFunds)
		fmt.Printf("Contributions:     %.2f\n", summary.TotalContributions)
		fmt.Printf("Expenses:          %.2f\n", summary.TotalExpenses)
		fmt.Printf("Open complaints:   %d\n", summary.OpenComplaints)
		fmt.Printf("Upcoming meetings: %d\n", summary.UpcomingMeetings)
		return nil
	},
}

func init() {
	fundsCmd.AddCommand(fundsListCmd)
	expensesCmd.AddCommand(expensesListCmd)
	expensesCmd.AddCommand(expensesReceiptCmd)
	contributionsCmd.AddCommand(contributionsListCmd)

	rootCmd.AddCommand(fundsCmd)
	rootCmd.AddCommand(expensesCmd)
	rootCmd.AddCommand(contributionsCmd)
	rootCmd.AddCommand(reportsCmd)
}
