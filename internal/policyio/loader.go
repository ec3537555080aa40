package policyio

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/oba-ldap/nacm/internal/nacm"
)

// Loader errors.
var (
	ErrFileNotFound = errors.New("policyio: file not found")
	ErrInvalidYAML  = errors.New("policyio: invalid YAML")
)

// LoadFile loads and validates a NACM policy document from a YAML file.
// recoveryUser is the host-configured recovery user (spec.md §9); it is
// not read from the file.
func LoadFile(path, recoveryUser string) (*nacm.Policy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrFileNotFound
		}
		return nil, fmt.Errorf("policyio: read %s: %w", path, err)
	}
	return Parse(data, recoveryUser)
}

// Parse decodes a NACM policy document from YAML bytes and validates it.
func Parse(data []byte, recoveryUser string) (*nacm.Policy, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}

	policy, err := doc.toPolicy(recoveryUser)
	if err != nil {
		return nil, err
	}

	if errs := Validate(policy); len(errs) > 0 {
		return nil, fmt.Errorf("policyio: invalid policy: %w", errors.Join(errs...))
	}

	return policy, nil
}
