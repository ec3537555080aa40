package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oba-ldap/nacm/internal/config"
	"github.com/oba-ldap/nacm/internal/policyio"
)

var validatePolicyRecoveryUser string

var validatePolicyCmd = &cobra.Command{
	Use:   "validate-policy <file>",
	Short: "Parse and validate a NACM policy YAML document without evaluating any request",
	Args:  cobra.ExactArgs(1),
	RunE:  runValidatePolicy,
}

func init() {
	validatePolicyCmd.Flags().StringVar(&validatePolicyRecoveryUser, "recovery-user", "", "recovery user name, overriding config")
}

func runValidatePolicy(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	recoveryUser := cfg.RecoveryUser
	if validatePolicyRecoveryUser != "" {
		recoveryUser = validatePolicyRecoveryUser
	}

	_, err = policyio.LoadFile(args[0], recoveryUser)
	if err != nil {
		var joined interface{ Unwrap() []error }
		if errors.As(err, &joined) {
			for _, e := range joined.Unwrap() {
				fmt.Println("-", e)
			}
		}
		return err
	}

	fmt.Println("valid")
	return nil
}
