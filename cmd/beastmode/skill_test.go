// ABOUTME: Tests for the install-skill command.
// ABOUTME: Validates embedded skill content and installation mechanics.

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestSkillFSReadEmbeddedContent verifies the embedded filesystem can read
// the SKILL.md file correctly.
func TestSkillFSReadEmbeddedContent(t *testing.T) {
	content, err := skillFS.ReadFile("skill/SKILL.md")
	if err != nil {
		t.Fatalf("Failed to read embedded skill/SKILL.md: %v", err)
	}

	if len(content) == 0 {
		t.Error("Embedded SKILL.md is empty")
	}

	contentStr := string(content)

	// Verify it's a valid SKILL.md with frontmatter
	if !strings.HasPrefix(contentStr, "---") {
		t.Error("Expected SKILL.md to start with YAML frontmatter (---)")
	}

	// Verify required frontmatter fields
	if !strings.Contains(contentStr, "name: beastmode") {
		t.Error("Expected frontmatter to contain 'name: beastmode'")
	}
	if !strings.Contains(contentStr, "description:") {
		t.Error("Expected frontmatter to contain 'description:'")
	}
}

// TestSkillEmbeddedContentReferencesTools verifies the embedded content
// documents the MCP tool surface.
func TestSkillEmbeddedContentReferencesTools(t *testing.T) {
	content, err := skillFS.ReadFile("skill/SKILL.md")
	if err != nil {
		t.Fatalf("Failed to read embedded skill: %v", err)
	}

	expectedTools := []string{
		"mcp__beastmode__set_profile",
		"mcp__beastmode__get_profile",
		"mcp__beastmode__generate_training_plan",
		"mcp__beastmode__generate_meal_plan",
		"mcp__beastmode__generate_supplement_plan",
		"mcp__beastmode__water_schedule",
		"mcp__beastmode__log_water",
		"mcp__beastmode__add_cycle",
		"mcp__beastmode__list_cycles",
		"mcp__beastmode__delete_cycle",
	}

	contentStr := string(content)
	for _, tool := range expectedTools {
		if !strings.Contains(contentStr, tool) {
			t.Errorf("Expected embedded SKILL.md to reference %q", tool)
		}
	}

	// Verify the enums are documented
	for _, value := range []string{"lose-weight", "gain-muscle", "cut", "general-health", "beginner", "intermediate", "advanced"} {
		if !strings.Contains(contentStr, value) {
			t.Errorf("Expected embedded SKILL.md to document %q", value)
		}
	}
}

// TestSkillInstallCreatesDirectory verifies that the skill directory is created
// when it doesn't exist.
func TestSkillInstallCreatesDirectory(t *testing.T) {
	tmpHome := t.TempDir()

	skillDir := filepath.Join(tmpHome, ".claude", "skills", "beastmode")
	skillPath := filepath.Join(skillDir, "SKILL.md")

	content, err := skillFS.ReadFile("skill/SKILL.md")
	if err != nil {
		t.Fatalf("Failed to read embedded skill: %v", err)
	}

	// Create directory and write skill file (simulating what installSkill does)
	if err := os.MkdirAll(skillDir, 0750); err != nil {
		t.Fatalf("Failed to create skill directory: %v", err)
	}
	if err := os.WriteFile(skillPath, content, 0600); err != nil {
		t.Fatalf("Failed to write skill file: %v", err)
	}

	info, err := os.Stat(skillDir)
	if err != nil {
		t.Fatalf("Skill directory not created: %v", err)
	}
	if !info.IsDir() {
		t.Error("Expected skill path to be a directory")
	}
	if _, err := os.Stat(skillPath); err != nil {
		t.Fatalf("Skill file not created: %v", err)
	}
}

// TestSkillInstallOverwritesExistingFile verifies that an existing skill file
// is properly overwritten.
func TestSkillInstallOverwritesExistingFile(t *testing.T) {
	tmpHome := t.TempDir()

	skillDir := filepath.Join(tmpHome, ".claude", "skills", "beastmode")
	skillPath := filepath.Join(skillDir, "SKILL.md")

	if err := os.MkdirAll(skillDir, 0750); err != nil {
		t.Fatalf("Failed to create skill directory: %v", err)
	}

	oldContent := []byte("# Old Skill\nThis is stale content that should be replaced.")
	if err := os.WriteFile(skillPath, oldContent, 0600); err != nil {
		t.Fatalf("Failed to write old skill file: %v", err)
	}

	content, err := skillFS.ReadFile("skill/SKILL.md")
	if err != nil {
		t.Fatalf("Failed to read embedded skill: %v", err)
	}
	if err := os.WriteFile(skillPath, content, 0600); err != nil {
		t.Fatalf("Failed to overwrite skill file: %v", err)
	}

	newData, err := os.ReadFile(skillPath)
	if err != nil {
		t.Fatalf("Failed to read new skill file: %v", err)
	}
	if strings.Contains(string(newData), "stale content") {
		t.Error("Old content should have been replaced")
	}
	if !strings.Contains(string(newData), "name: beastmode") {
		t.Error("Expected new content to contain 'name: beastmode'")
	}
}

// TestSkillSkipConfirmFlag verifies the flag exists and has correct defaults.
func TestSkillSkipConfirmFlag(t *testing.T) {
	flag := installSkillCmd.Flags().Lookup("yes")
	if flag == nil {
		t.Fatal("Expected --yes flag to be defined")
	}
	if flag.Shorthand != "y" {
		t.Errorf("Expected shorthand 'y', got %q", flag.Shorthand)
	}
	if flag.DefValue != "false" {
		t.Errorf("Expected default value 'false', got %q", flag.DefValue)
	}
}
