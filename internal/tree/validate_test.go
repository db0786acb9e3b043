package tree

import (
	"strings"
	"testing"
)

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		wantErr bool
	}{
		{"app.ts", false},
		{".env.example", false},
		{"Dockerfile", false},
		{"", true},
		{".", true},
		{"..", true},
		{"a/b", true},
		{`a\b`, true},
		{"/etc", true},
	}

	for _, tt := range tests {
		err := ValidateName(tt.name)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateName(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
		}
	}
}

func TestValidate(t *testing.T) {
	t.Run("valid tree", func(t *testing.T) {
		if err := Validate(sample()); err != nil {
			t.Fatalf("Validate() error: %v", err)
		}
	})

	t.Run("bad nested name reports path", func(t *testing.T) {
		d := Dir(Sub("src", Dir(Sub("config", Leaves(File("../env.ts"))))))
		err := Validate(d)
		if err == nil {
			t.Fatal("expected error for name with separator")
		}
		if !strings.Contains(err.Error(), "src/config") {
			t.Errorf("error should name the offending path, got: %v", err)
		}
	})

	t.Run("file and directory with same path", func(t *testing.T) {
		d := Dir(
			Sub("prisma", Leaves(File("migrations"))),
			Sub("prisma", Leaves(EmptyDir("migrations"))),
		)
		err := Validate(d)
		if err == nil || !strings.Contains(err.Error(), "both") {
			t.Fatalf("expected conflict error, got %v", err)
		}
	})

	t.Run("repeated folder is allowed", func(t *testing.T) {
		d := Dir(Sub("src", Leaves(File("a.ts"))), Sub("src", Leaves(File("b.ts"))))
		if err := Validate(d); err != nil {
			t.Fatalf("Validate() error: %v", err)
		}
	})
}
