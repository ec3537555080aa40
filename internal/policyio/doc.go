// Package policyio loads NACM policy documents from YAML, validates
// them, and optionally hot-reloads them from disk. It plays the role
// spec.md §1 calls "the policy loader ... obtaining the policy tree from
// a persistent store" — an external collaborator the engine itself does
// not depend on, but that any host needs to actually run the engine.
//
// # Loading
//
//	policy, err := policyio.LoadFile("nacm.yaml", "admin")
//
// # Hot reload
//
//	mgr, err := policyio.NewManager(policyio.ManagerConfig{
//		FilePath:     "nacm.yaml",
//		RecoveryUser: "admin",
//		Logger:       logger,
//	})
//	view := mgr.View() // safe for concurrent use; swapped atomically on reload
package policyio
