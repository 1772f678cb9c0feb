// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// prefs_cmd.go - Handler for the prefs command.
package cli

import (
	"fmt"

	"github.com/jeranaias/statgraph-tui/internal/prefs"
)

// HandlePrefs inspects or edits the persisted graph preferences.
func HandlePrefs(args Args) error {
	switch args.Subcommand {
	case "show":
		return prefsShow()
	case "path":
		return prefsPath()
	case "set":
		return prefsSet(args.Key, args.Value)
	default:
		return fmt.Errorf("unknown prefs subcommand %q", args.Subcommand)
	}
}

func prefsShow() error {
	p, err := prefs.Load()
	if err != nil {
		return err
	}
	for _, key := range prefs.Keys() {
		v, err := p.Get(key)
		if err != nil {
			return err
		}
		fmt.Printf("%-26s %s\n", key, v)
	}
	return nil
}

func prefsPath() error {
	path, err := prefs.PathTOML()
	if err != nil {
		return err
	}
	fmt.Println(path)
	return nil
}

func prefsSet(key, value string) error {
	p, err := prefs.Load()
	if err != nil {
		return err
	}
	if err := p.Set(key, value); err != nil {
		return err
	}
	if err := prefs.EnsureAppDir(); err != nil {
		return err
	}
	if err := prefs.Save(p); err != nil {
		return err
	}
	v, _ := p.Get(key)
	fmt.Printf("%s = %s\n", key, v)
	return nil
}
