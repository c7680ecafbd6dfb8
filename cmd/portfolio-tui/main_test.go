package main

import "testing"

func TestRootCmd_Flags(t *testing.T) {
	cmd := newRootCmd()
	if err := cmd.ParseFlags([]string{"--mouse=false", "--style", "notty"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	mouse, err := cmd.Flags().GetBool("mouse")
	if err != nil || mouse {
		t.Fatalf("mouse flag: %v, %v", mouse, err)
	}
	alt, err := cmd.Flags().GetBool("alt-screen")
	if err != nil || !alt {
		t.Fatalf("alt-screen default: %v, %v", alt, err)
	}
	style, err := cmd.Flags().GetString("style")
	if err != nil || style != "notty" {
		t.Fatalf("style flag: %q, %v", style, err)
	}
}

func TestRootCmd_RejectsArgs(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"extra"})
	if err := cmd.Execute(); err == nil {
		t.Fatalf("expected error for positional args")
	}
}
