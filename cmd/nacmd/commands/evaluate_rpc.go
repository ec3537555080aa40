package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/oba-ldap/nacm/internal/errorpayload"
	"github.com/oba-ldap/nacm/internal/nacm"
)

var evalRPCFlags commonEvaluateFlags

var (
	rpcModule    string
	rpcOperation string
)

var evaluateRPCCmd = &cobra.Command{
	Use:   "rpc",
	Short: "Evaluate an evaluate_rpc request",
	Long: `Evaluate whether a user may invoke an RPC, per RFC 8341 §3.4.4.

Example:
  nacmd evaluate rpc --policy nacm.yaml --user alice --module ietf-netconf --operation get-config`,
	RunE: runEvaluateRPC,
}

func init() {
	evalRPCFlags.register(evaluateRPCCmd)
	evaluateRPCCmd.Flags().StringVar(&rpcModule, "module", "", "RPC's YANG module name (required)")
	evaluateRPCCmd.Flags().StringVar(&rpcOperation, "operation", "", "RPC name (required)")
	evaluateRPCCmd.MarkFlagRequired("module")
	evaluateRPCCmd.MarkFlagRequired("operation")
}

func runEvaluateRPC(cmd *cobra.Command, args []string) error {
	mgr, err := loadManager(&evalRPCFlags)
	if err != nil {
		return err
	}
	defer mgr.Close()

	req := nacm.RPCRequest{Module: rpcModule, Operation: rpcOperation}
	verdict, err := nacm.EvaluateRPC(req, evalRPCFlags.user, mgr.View(), evalRPCFlags.groups())
	if err != nil {
		return err
	}

	if verdict.Denied() {
		fmt.Println("deny")
		if err := errorpayload.AccessDenied(os.Stdout, verdict.Error.AppTag, verdict.Error.Message); err != nil {
			return err
		}
		fmt.Println()
		os.Exit(1)
	}

	fmt.Println("permit")
	return nil
}
