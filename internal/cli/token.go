package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"business-catalog-api/internal/middleware"
)

func (a *app) newTokenCmd() *cobra.Command {
	var subject string
	var roles []string
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Sign a bearer token for the snapshot API with JWT_SECRET",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !a.cfg.AuthEnabled() {
				return fmt.Errorf("JWT_SECRET is not set, authentication is disabled")
			}
			for _, role := range roles {
				if role != string(middleware.RolePublisher) && role != string(middleware.RoleReader) {
					return fmt.Errorf("unknown role %q", role)
				}
			}
			c, err := a.catalog()
			if err != nil {
				return err
			}
			token, err := c.AuthService.GenerateToken(subject, roles)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
			return err
		},
	}
	cmd.Flags().StringVar(&subject, "subject", "catalogctl", "Token subject")
	cmd.Flags().StringSliceVar(&roles, "role", []string{string(middleware.RolePublisher)}, "Roles granted by the token")
	return cmd
}
