package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/deppfellow/reqschema/internal/schema"
	"github.com/deppfellow/reqschema/internal/username"
)

func newUsernameCmd() *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "username <email>",
		Short: "Generate default usernames for an email address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			email := args[0]
			if !schema.IsEmail(email) {
				return fmt.Errorf("%q is not a valid email", email)
			}
			if count < 1 {
				return fmt.Errorf("count must be at least 1")
			}
			for i := 0; i < count; i++ {
				fmt.Fprintln(cmd.OutOrStdout(), username.Generate(email))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of usernames to generate")
	return cmd
}
