package cli

import "testing"

func TestRootCommandRegistration(t *testing.T) {
	want := []string{"low", "high", "suffix", "strip", "auto", "batch", "undo", "history", "shell", "nodes", "version"}

	registered := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		registered[c.Name()] = true
	}
	for _, name := range want {
		if !registered[name] {
			t.Errorf("command %q is not registered", name)
		}
	}
}

func TestSetVersion(t *testing.T) {
	defer SetVersion("dev")

	SetVersion("1.2.3")
	if rootCmd.Version != "1.2.3" {
		t.Errorf("Version = %q, want 1.2.3", rootCmd.Version)
	}

	// Empty version keeps the previous one.
	SetVersion("")
	if rootCmd.Version != "1.2.3" {
		t.Errorf("Version after SetVersion(\"\") = %q, want 1.2.3", rootCmd.Version)
	}
}

func TestRenameCommandsAreGrouped(t *testing.T) {
	for _, name := range []string{"low", "high", "suffix", "strip", "auto", "batch"} {
		for _, c := range rootCmd.Commands() {
			if c.Name() == name && c.GroupID != "rename-operations" {
				t.Errorf("command %q GroupID = %q, want rename-operations", name, c.GroupID)
			}
		}
	}
}
