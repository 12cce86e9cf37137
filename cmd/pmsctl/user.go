package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"pms/internal/domains/user/model/dto"
	"pms/shared/constant"
	"pms/shared/validator"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var errPasswordMismatch = errors.New("passwords do not match")

func userCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage console and API users",
	}

	cmd.AddCommand(userCreateCmd())

	return cmd
}

func userCreateCmd() *cobra.Command {
	var req dto.CreateUserRequest

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a user, prompting for the password",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			password, err := promptPassword()
			if err != nil {
				return err
			}

			req.Password = password

			if err := validator.ValidateStruct(&req); err != nil {
				return fmt.Errorf("invalid user: %w", err)
			}

			user, err := console.User.Create(operatorContext(cmd.Context()), req)
			if err != nil {
				return fmt.Errorf("failed to create user: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "created %s (%s) with role %s\n", user.Email, user.ID, user.Role)

			return nil
		},
	}

	cmd.Flags().StringVar(&req.Email, "email", "", "login email")
	cmd.Flags().StringVar(&req.Name, "name", "", "display name")
	cmd.Flags().StringVar(&req.Role, "role", constant.RoleStaff, "admin, manager or staff")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func promptPassword() (string, error) {
	fd := int(os.Stdin.Fd())

	fmt.Fprint(os.Stderr, "Password: ")

	first, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)

	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}

	fmt.Fprint(os.Stderr, "Repeat password: ")

	second, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)

	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}

	password := strings.TrimSpace(string(first))
	if password != strings.TrimSpace(string(second)) {
		return "", errPasswordMismatch
	}

	return password, nil
}
