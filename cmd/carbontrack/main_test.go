package main

import (
	"testing"

	"github.com/carbontrack/carbontrack/internal/cli"
	"github.com/carbontrack/carbontrack/pkg/version"
)

func TestMainComponents(t *testing.T) {
	t.Run("version available", func(t *testing.T) {
		if version.GetVersion() == "" {
			t.Error("expected version to be non-empty")
		}
	})

	t.Run("cli root command", func(t *testing.T) {
		root := cli.NewRootCmd(version.GetVersion())
		if root == nil {
			t.Fatal("expected root command to be non-nil")
		}
		if root.Use == "" {
			t.Error("expected root command to have a use string")
		}
		for _, name := range []string{"compute", "activities", "insights", "recommend"} {
			found := false
			for _, sub := range root.Commands() {
				if sub.Name() == name {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("expected %q subcommand to be registered", name)
			}
		}
	})
}
