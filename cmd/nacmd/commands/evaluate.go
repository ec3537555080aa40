package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/oba-ldap/nacm/internal/config"
	"github.com/oba-ldap/nacm/internal/logging"
	"github.com/oba-ldap/nacm/internal/policyio"
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Evaluate a single NACM request against a policy document",
}

// commonEvaluateFlags are the flags shared by every evaluate subcommand.
type commonEvaluateFlags struct {
	policyFile     string
	user           string
	recoveryUser   string
	externalGroups string
}

func (f *commonEvaluateFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.policyFile, "policy", "", "path to the NACM policy YAML document (required)")
	cmd.Flags().StringVar(&f.user, "user", "", "authenticated user name (required)")
	cmd.Flags().StringVar(&f.recoveryUser, "recovery-user", "", "recovery user name, overriding config")
	cmd.Flags().StringVar(&f.externalGroups, "external-groups", "", "comma-separated external group names")
	cmd.MarkFlagRequired("policy")
	cmd.MarkFlagRequired("user")
}

func (f *commonEvaluateFlags) groups() []string {
	if f.externalGroups == "" {
		return nil
	}
	return strings.Split(f.externalGroups, ",")
}

// loadManager loads process configuration and the policy document, honoring
// a --recovery-user override of the config file's value.
func loadManager(f *commonEvaluateFlags) (*policyio.Manager, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	recoveryUser := cfg.RecoveryUser
	if f.recoveryUser != "" {
		recoveryUser = f.recoveryUser
	}

	logger := logging.New(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	})

	return policyio.NewManager(policyio.ManagerConfig{
		FilePath:     f.policyFile,
		RecoveryUser: recoveryUser,
		Logger:       logger,
	})
}

func init() {
	evaluateCmd.AddCommand(evaluateRPCCmd)
	evaluateCmd.AddCommand(evaluateWriteCmd)
	evaluateCmd.AddCommand(evaluateReadCmd)
}
