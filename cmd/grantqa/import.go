package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/grantqa"
	"gopkg.in/yaml.v3"
)

// Run executes the import command.
func (c *ImportCmd) Run(deps *Dependencies) error {
	grants, err := readGrants(c.File)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", err)
		return err
	}

	var imported, skipped int
	for i, g := range grants {
		err := deps.Grants.CreateGrant(deps.Ctx, g)
		switch grantqa.ErrorCode(err) {
		case "":
			imported++
		case grantqa.ECONFLICT:
			skipped++
		default:
			fmt.Fprintf(deps.Stderr, "error: grant %d (%q): %s\n", i+1, g.Name, grantqa.ErrorMessage(err))
			return err
		}
	}

	fmt.Fprintf(deps.Stdout, "Imported %d grants (%d duplicates skipped).\n", imported, skipped)
	return nil
}

// readGrants decodes a list of grants from a YAML (.yaml, .yml) or JSON file.
func readGrants(path string) ([]*grantqa.Grant, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var grants []*grantqa.Grant
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &grants)
	default:
		err = json.Unmarshal(data, &grants)
	}
	if err != nil {
		return nil, grantqa.Errorf(grantqa.EINVALID, "cannot parse %s: %v", filepath.Base(path), err)
	}

	for i, g := range grants {
		if g == nil {
			return nil, grantqa.Errorf(grantqa.EINVALID, "grant %d is empty", i+1)
		}
	}

	return grants, nil
}
