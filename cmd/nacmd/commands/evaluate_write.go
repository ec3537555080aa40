package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/oba-ldap/nacm/internal/datatree"
	"github.com/oba-ldap/nacm/internal/errorpayload"
	"github.com/oba-ldap/nacm/internal/nacm"
)

var evalWriteFlags commonEvaluateFlags

var (
	writeTreeFile   string
	writeModuleMap  string
	writeAccess     string
	writeRootPath   string
)

var evaluateWriteCmd = &cobra.Command{
	Use:   "write",
	Short: "Evaluate an evaluate_write request",
	Long: `Evaluate whether a user may create, update, or delete a subtree, per
RFC 8341 §3.4.5 and its descendant-deny semantics.

Example:
  nacmd evaluate write --policy nacm.yaml --user alice --access update \
      --tree config.xml --module-map modules.yaml --root interfaces.interface`,
	RunE: runEvaluateWrite,
}

func init() {
	evalWriteFlags.register(evaluateWriteCmd)
	evaluateWriteCmd.Flags().StringVar(&writeTreeFile, "tree", "", "path to the XML data tree (required)")
	evaluateWriteCmd.Flags().StringVar(&writeModuleMap, "module-map", "", "path to the namespace-to-module YAML map (required)")
	evaluateWriteCmd.Flags().StringVar(&writeAccess, "access", "update", "one of create, update, delete")
	evaluateWriteCmd.Flags().StringVar(&writeRootPath, "root", "", "dot-separated child path from the tree root to the write target")
	evaluateWriteCmd.MarkFlagRequired("tree")
	evaluateWriteCmd.MarkFlagRequired("module-map")
}

func parseAccessMode(s string) (nacm.AccessMode, error) {
	switch s {
	case "create":
		return nacm.ModeCreate, nil
	case "update":
		return nacm.ModeUpdate, nil
	case "delete":
		return nacm.ModeDelete, nil
	default:
		return 0, fmt.Errorf("invalid --access %q: must be create, update, or delete", s)
	}
}

func runEvaluateWrite(cmd *cobra.Command, args []string) error {
	mgr, err := loadManager(&evalWriteFlags)
	if err != nil {
		return err
	}
	defer mgr.Close()

	access, err := parseAccessMode(writeAccess)
	if err != nil {
		return err
	}

	root, err := loadTree(writeTreeFile)
	if err != nil {
		return err
	}
	reg, err := loadModuleMap(writeModuleMap)
	if err != nil {
		return err
	}

	tree := datatree.New()
	target, err := findByPath(tree, root, splitDotPath(writeRootPath))
	if err != nil {
		return err
	}

	verdict, err := nacm.EvaluateWrite(access, target, root, evalWriteFlags.user, mgr.View(), tree, reg, evalWriteFlags.groups(), nil)
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

func splitDotPath(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ".")
}
