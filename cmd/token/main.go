package main

import (
	"cowork/config"
	"cowork/infras/jwt"
	"cowork/infras/otel"
	"cowork/shared/constant"
	"cowork/shared/logger"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// token mints access tokens signed with the configured secret, for local
// environments that have no identity provider in front of them.
func main() {
	cfg := config.Get()

	logger.InitLogger(cfg.Server.Env)
	logger.SetLogLevel(cfg)

	if err := newRootCmd(cfg).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(cfg *config.Config) *cobra.Command {
	var userID, email, role string

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a development access token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			signed, err := jwt.New(cfg, otel.New(cfg)).Issue(userID, email, role)
			if err != nil {
				return fmt.Errorf("issue token: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), signed)

			return nil
		},
	}

	cmd.Flags().StringVarP(&userID, "user", "u", "", "member id placed in the token")
	cmd.Flags().StringVarP(&email, "email", "e", "", "member email")
	cmd.Flags().StringVarP(&role, "role", "r", constant.RoleMember, "member, staff, admin or superadmin")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}
