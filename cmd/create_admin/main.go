// Command create_admin seeds an administrator account directly in the
// database. The create-admin API endpoint requires a valid token, so the
// very first admin must be created with this tool.
package main

import (
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/hrushi52/LoonC-R1/config"
	"github.com/hrushi52/LoonC-R1/repositories"
	"github.com/hrushi52/LoonC-R1/utils"
)

var password string

var rootCmd = &cobra.Command{
	Use:   "create_admin <email>",
	Short: "Create a LoonCamp administrator account",
	Long: `Create an administrator account for the LoonCamp admin console.

Reads database settings from the environment (or a .env file) the same
way the server does. When --password is not given, the password is
prompted for without echo.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		email := strings.TrimSpace(args[0])
		if email == "" {
			return fmt.Errorf("email must not be empty")
		}

		if password == "" {
			var err error
			password, err = readPassword("Enter password: ")
			if err != nil {
				return fmt.Errorf("failed to read password: %w", err)
			}
			confirm, err := readPassword("Confirm password: ")
			if err != nil {
				return fmt.Errorf("failed to read password: %w", err)
			}
			if password != confirm {
				return fmt.Errorf("passwords do not match")
			}
		}
		if password == "" {
			return fmt.Errorf("password must not be empty")
		}

		cfg := config.LoadConfig()
		db, err := gorm.Open(mysql.Open(cfg.DSN()), &gorm.Config{})
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}

		hash, err := utils.HashPassword(password)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}

		admin, err := repositories.NewAdminRepository(db).Create(email, hash)
		if err != nil {
			return fmt.Errorf("failed to create admin: %w", err)
		}

		fmt.Printf("Admin created: %s (ID: %d)\n", admin.Email, admin.ID)
		return nil
	},
}

// readPassword securely reads a password with masking
func readPassword(prompt string) (string, error) {
	fmt.Print(prompt)
	bytePassword, err := term.ReadPassword(int(syscall.Stdin))
	if err != nil {
		return "", err
	}
	fmt.Println()
	return strings.TrimSpace(string(bytePassword)), nil
}

func main() {
	rootCmd.Flags().StringVarP(&password, "password", "p", "", "password for the new admin (prompted when omitted)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
