// ABOUTME: Tests for CLI helper functions and command execution.
// ABOUTME: Runs commands end-to-end against a temp XDG data directory.
package main

import (
	"os"
	"testing"
)

// setupTestCLI redirects XDG paths to temp dirs so commands run against
// a fresh sqlite store and config.
func setupTestCLI(t *testing.T) {
	t.Helper()

	t.Setenv("XDG_DATA_HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	// Reset flag state leaked by earlier tests.
	profileName, profileAge, profileWeight, profileHeight = "", 0, 0, 0
	profileGender, profileGoal, profileLevel, profileDays = "", "", "", 4
	cycleCompound, cycleDosage, cycleFrequency, cycleStart, cycleNotes = "", "", "", "", ""
	cycleWeeks = 0
	exportOutput = ""
	migrateTo = ""
	migrateDryRun = false
}

func runCLI(t *testing.T, args ...string) error {
	t.Helper()
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func setReferenceProfile(t *testing.T) {
	t.Helper()
	err := runCLI(t, "profile", "set",
		"--name", "Carlos", "--age", "30",
		"--weight", "80", "--height", "180",
		"--gender", "male", "--goal", "gain-muscle", "--level", "intermediate")
	if err != nil {
		t.Fatalf("profile set failed: %v", err)
	}
}

func TestProfileSetAndShow(t *testing.T) {
	setupTestCLI(t)
	setReferenceProfile(t)

	if err := runCLI(t, "profile", "show"); err != nil {
		t.Fatalf("profile show failed: %v", err)
	}
}

func TestProfileSetRejectsInvalidGoal(t *testing.T) {
	setupTestCLI(t)

	err := runCLI(t, "profile", "set",
		"--name", "Carlos", "--age", "30",
		"--weight", "80", "--height", "180",
		"--gender", "male", "--goal", "bulk", "--level", "beginner")
	if err == nil {
		t.Fatal("Expected error for invalid goal")
	}
}

func TestProfileShowWithoutProfile(t *testing.T) {
	setupTestCLI(t)

	if err := runCLI(t, "profile", "show"); err == nil {
		t.Fatal("Expected error without a saved profile")
	}
}

func TestPlanCommands(t *testing.T) {
	setupTestCLI(t)
	setReferenceProfile(t)

	for _, sub := range []string{"training", "meals", "supplements"} {
		if err := runCLI(t, "plan", sub); err != nil {
			t.Errorf("plan %s failed: %v", sub, err)
		}
	}
}

func TestWaterLogAndStatus(t *testing.T) {
	setupTestCLI(t)
	setReferenceProfile(t)

	if err := runCLI(t, "water", "log", "500"); err != nil {
		t.Fatalf("water log failed: %v", err)
	}
	if err := runCLI(t, "water", "log", "250"); err != nil {
		t.Fatalf("water log failed: %v", err)
	}
	if err := runCLI(t, "water", "status"); err != nil {
		t.Fatalf("water status failed: %v", err)
	}
	if err := runCLI(t, "water", "schedule"); err != nil {
		t.Fatalf("water schedule failed: %v", err)
	}
}

func TestWaterLogRejectsJunk(t *testing.T) {
	setupTestCLI(t)
	setReferenceProfile(t)

	if err := runCLI(t, "water", "log", "lots"); err == nil {
		t.Fatal("Expected error for non-numeric amount")
	}
}

func TestCycleCommandsRequireVIP(t *testing.T) {
	setupTestCLI(t)
	setReferenceProfile(t)

	if err := runCLI(t, "cycle", "list"); err == nil {
		t.Fatal("Expected VIP gate to block cycle list")
	}
	if err := runCLI(t, "education"); err == nil {
		t.Fatal("Expected VIP gate to block education")
	}
}

func TestVIPUnlocksCycleAndEducation(t *testing.T) {
	setupTestCLI(t)
	setReferenceProfile(t)

	if err := runCLI(t, "vip"); err != nil {
		t.Fatalf("vip failed: %v", err)
	}
	if err := runCLI(t, "education"); err != nil {
		t.Fatalf("education failed after vip: %v", err)
	}

	err := runCLI(t, "cycle", "add",
		"--compound", "Testosterone Enanthate",
		"--dosage", "250mg",
		"--frequency", "2x per week",
		"--start", "2026-02-01",
		"--weeks", "10")
	if err != nil {
		t.Fatalf("cycle add failed: %v", err)
	}
	if err := runCLI(t, "cycle", "list"); err != nil {
		t.Fatalf("cycle list failed: %v", err)
	}
}

func TestVIPSurvivesProfileReset(t *testing.T) {
	setupTestCLI(t)
	setReferenceProfile(t)

	if err := runCLI(t, "vip"); err != nil {
		t.Fatalf("vip failed: %v", err)
	}

	// Re-set the profile; VIP must stick.
	setReferenceProfile(t)

	if err := runCLI(t, "education"); err != nil {
		t.Fatalf("education failed after profile re-set: %v", err)
	}
}

func TestCycleAddRejectsBadDate(t *testing.T) {
	setupTestCLI(t)
	setReferenceProfile(t)
	if err := runCLI(t, "vip"); err != nil {
		t.Fatalf("vip failed: %v", err)
	}

	err := runCLI(t, "cycle", "add",
		"--compound", "Test", "--dosage", "250mg",
		"--frequency", "weekly", "--start", "02/01/2026", "--weeks", "10")
	if err == nil {
		t.Fatal("Expected error for invalid date format")
	}
}

func TestExportJSONToFile(t *testing.T) {
	setupTestCLI(t)
	setReferenceProfile(t)

	out := t.TempDir() + "/backup.json"
	if err := runCLI(t, "export", "json", "-o", out); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("export file not written: %v", err)
	}
	if len(data) == 0 {
		t.Error("export file is empty")
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	setupTestCLI(t)
	setReferenceProfile(t)

	out := t.TempDir() + "/backup.json"
	if err := runCLI(t, "export", "json", "-o", out); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	// Fresh store, then restore.
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	if err := runCLI(t, "import", out); err != nil {
		t.Fatalf("import failed: %v", err)
	}
	if err := runCLI(t, "profile", "show"); err != nil {
		t.Fatalf("profile show after import failed: %v", err)
	}
}

func TestMigrateToMarkdown(t *testing.T) {
	setupTestCLI(t)
	setReferenceProfile(t)

	if err := runCLI(t, "migrate", "--to", "markdown"); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}

	// The markdown backend is now configured and holds the profile.
	if err := runCLI(t, "profile", "show"); err != nil {
		t.Fatalf("profile show on markdown backend failed: %v", err)
	}
}

func TestProgressBar(t *testing.T) {
	tests := []struct {
		name    string
		current int
		total   int
		width   int
		want    string
	}{
		{"empty", 0, 100, 4, "░░░░"},
		{"half", 50, 100, 4, "██░░"},
		{"full", 100, 100, 4, "████"},
		{"over full clamps", 150, 100, 4, "████"},
		{"zero total", 10, 0, 4, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := progressBar(tt.current, tt.total, tt.width); got != tt.want {
				t.Errorf("progressBar(%d, %d, %d) = %q, want %q", tt.current, tt.total, tt.width, got, tt.want)
			}
		})
	}
}
