package main

import "testing"

func TestRootCommandName(t *testing.T) {
	if rootCmd.Use != "focus" {
		t.Fatalf("expected root command name focus, got %q", rootCmd.Use)
	}
}
