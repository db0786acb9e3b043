package tree

import (
	"testing"
)

func TestValidateSchemaFile_Valid(t *testing.T) {
	for _, file := range []string{
		"valid-backend.yaml",
		"valid-null-folder.yaml",
		"valid-numeric-names.yaml",
		"valid-aliases.yaml",
	} {
		t.Run(file, func(t *testing.T) {
			result, err := ValidateSchemaFile(testPath(file))
			if err != nil {
				t.Fatalf("ValidateSchemaFile(%s) error: %v", file, err)
			}
			if !result.Valid {
				t.Errorf("expected valid, got issues: %s", result.Summary())
			}
		})
	}
}

func TestValidateSchemaFile_Invalid(t *testing.T) {
	invalidFiles := []struct {
		file string
		desc string
	}{
		{"invalid-missing-tree.yaml", "missing required tree field"},
		{"invalid-nested-path.yaml", "folder name with a separator"},
		{"invalid-files-not-list.yaml", "_files is a scalar"},
		{"invalid-unknown-field.yaml", "unknown top-level field"},
	}

	for _, tt := range invalidFiles {
		t.Run(tt.file, func(t *testing.T) {
			result, err := ValidateSchemaFile(testPath(tt.file))
			if err != nil {
				t.Fatalf("ValidateSchemaFile(%s) unexpected error: %v", tt.file, err)
			}
			if result.Valid {
				t.Errorf("expected invalid for %s (%s), but got valid", tt.file, tt.desc)
			}
			if len(result.Issues) == 0 {
				t.Errorf("expected at least one issue for %s (%s)", tt.file, tt.desc)
			}
		})
	}
}

func TestValidateSchema_IssueFields(t *testing.T) {
	result, err := ValidateSchemaFile(testPath("invalid-missing-tree.yaml"))
	if err != nil {
		t.Fatalf("ValidateSchemaFile error: %v", err)
	}
	if result.Valid {
		t.Fatal("expected invalid result")
	}
	for _, issue := range result.Issues {
		if issue.Message == "" {
			t.Errorf("issue has empty message: %+v", issue)
		}
	}
}

func TestValidateSchema_InvalidYAML(t *testing.T) {
	if _, err := ValidateSchemaFile(testPath("invalid-not-yaml.yaml")); err == nil {
		t.Fatal("expected error for invalid YAML, got nil")
	}
}
