// ABOUTME: Integration tests for the beastmode CLI.
// ABOUTME: Builds the binary and runs a full profile-to-cycle workflow.
package test

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

func TestFullWorkflow(t *testing.T) {
	// Build the binary
	projectRoot, _ := filepath.Abs("..")
	binary := filepath.Join(projectRoot, "beastmode")

	buildCmd := exec.Command("go", "build", "-o", binary, "./cmd/beastmode")
	buildCmd.Dir = projectRoot
	if output, err := buildCmd.CombinedOutput(); err != nil {
		t.Fatalf("Failed to build: %v\n%s", err, output)
	}
	defer os.Remove(binary)

	// Point XDG dirs at temp dirs so the run is hermetic
	dataDir := t.TempDir()
	configDir := t.TempDir()

	run := func(args ...string) (string, error) {
		cmd := exec.Command(binary, args...)
		cmd.Env = append(os.Environ(),
			"XDG_DATA_HOME="+dataDir,
			"XDG_CONFIG_HOME="+configDir,
		)
		output, err := cmd.CombinedOutput()
		return string(output), err
	}

	// Plans need a profile first
	output, err := run("plan", "training")
	if err == nil {
		t.Errorf("Expected plan to fail without a profile, got: %s", output)
	}

	// Set the profile
	output, err = run("profile", "set",
		"--name", "Carlos", "--age", "30",
		"--weight", "80", "--height", "180",
		"--gender", "male", "--goal", "gain-muscle", "--level", "intermediate")
	if err != nil {
		t.Fatalf("Failed to set profile: %v\n%s", err, output)
	}

	// Show derived targets
	output, err = run("profile", "show")
	if err != nil {
		t.Fatalf("Failed to show profile: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Carlos") {
		t.Errorf("Expected 'Carlos' in profile output, got: %s", output)
	}
	if !strings.Contains(output, "3173") {
		t.Errorf("Expected daily calories 3173 in profile output, got: %s", output)
	}

	// Generate plans
	for _, sub := range []string{"training", "meals", "supplements"} {
		output, err = run("plan", sub)
		if err != nil {
			t.Fatalf("Failed to generate %s plan: %v\n%s", sub, err, output)
		}
	}

	// Log water and check status
	output, err = run("water", "log", "750")
	if err != nil {
		t.Fatalf("Failed to log water: %v\n%s", err, output)
	}
	output, err = run("water", "status")
	if err != nil {
		t.Fatalf("Failed to get water status: %v\n%s", err, output)
	}
	if !strings.Contains(output, "750") {
		t.Errorf("Expected '750' in water status, got: %s", output)
	}

	// Cycle tracking is VIP-gated
	output, err = run("cycle", "list")
	if err == nil {
		t.Errorf("Expected cycle list to fail without VIP, got: %s", output)
	}

	output, err = run("vip")
	if err != nil {
		t.Fatalf("Failed to unlock VIP: %v\n%s", err, output)
	}

	output, err = run("cycle", "add",
		"--compound", "Testosterone Enanthate",
		"--dosage", "250mg",
		"--frequency", "2x per week",
		"--start", "2026-02-01",
		"--weeks", "10")
	if err != nil {
		t.Fatalf("Failed to add cycle: %v\n%s", err, output)
	}

	output, err = run("cycle", "list")
	if err != nil {
		t.Fatalf("Failed to list cycles: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Testosterone Enanthate") {
		t.Errorf("Expected compound in cycle list, got: %s", output)
	}

	// Export everything
	exportPath := filepath.Join(t.TempDir(), "backup.json")
	output, err = run("export", "json", "-o", exportPath)
	if err != nil {
		t.Fatalf("Failed to export: %v\n%s", err, output)
	}
	data, err := os.ReadFile(exportPath)
	if err != nil {
		t.Fatalf("Export file not written: %v", err)
	}
	if !strings.Contains(string(data), "beastmode") {
		t.Errorf("Expected tool marker in export, got: %s", data)
	}
}
