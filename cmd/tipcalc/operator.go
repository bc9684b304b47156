package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mmynk/tipcalc/internal/auth"
)

var (
	operatorName     string
	operatorPassword string
)

// operatorCmd is the parent command for operator management
var operatorCmd = &cobra.Command{
	Use:   "operator",
	Short: "Manage operators allowed to edit tip presets",
}

// operatorAddCmd registers a new operator
var operatorAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Register a new operator",
	RunE:  runOperatorAdd,
}

func init() {
	operatorAddCmd.Flags().StringVar(&operatorName, "name", "", "Operator name")
	operatorAddCmd.Flags().StringVar(&operatorPassword, "password", "", "Operator password (at least 8 characters)")
	operatorAddCmd.MarkFlagRequired("name")
	operatorAddCmd.MarkFlagRequired("password")

	operatorCmd.AddCommand(operatorAddCmd)
}

func runOperatorAdd(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store, err := openStore(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	operator, err := auth.NewPasswordAuthenticator(store).Register(cmd.Context(), operatorName, operatorPassword)
	if errors.Is(err, auth.ErrOperatorExists) {
		return fmt.Errorf("operator %q already exists", operatorName)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Registered operator %s (%s)\n", operator.Name, operator.ID)
	return nil
}
