package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/me/campus/internal/api"
)

func newWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in account",
		RunE: func(cmd *cobra.Command, args []string) error {
			creds, err := loadCredentials()
			if err != nil || creds.Token == "" {
				return fmt.Errorf("not signed in; run 'campus login'")
			}

			role := creds.Role
			if r, ok := api.RoleFromToken(creds.Token); ok {
				role = string(r)
			}

			fmt.Printf("Email: %s\n", creds.Email)
			fmt.Printf("Role:  %s\n", role)

			if exp := api.TokenExpiry(creds.Token); !exp.IsZero() {
				if exp.Before(time.Now()) {
					fmt.Println("Token: expired")
				} else {
					fmt.Printf("Token: valid until %s\n", exp.Format(time.RFC3339))
				}
			}
			return nil
		},
	}
}
