package cmd

import (
	"github.com/spf13/cobra"

	"portfolio-cms/models"
)

var grantAdminCmd = &cobra.Command{
	Use:   "grant-admin",
	Short: "Give an existing user the admin role",
	RunE: func(cmd *cobra.Command, args []string) error {
		email, _ := cmd.Flags().GetString("email")

		a, err := bootstrap()
		if err != nil {
			return err
		}
		defer a.db.Close()

		if err := a.svcs.Auth.GrantRole(cmd.Context(), email, models.RoleAdmin); err != nil {
			return err
		}
		a.log.Info().Str("email", email).Msg("Admin role granted")
		return nil
	},
}

func init() {
	grantAdminCmd.Flags().String("email", "", "user email")
	_ = grantAdminCmd.MarkFlagRequired("email")
}
