package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewRootCmd_Subcommands(t *testing.T) {
	root := NewRootCmd()

	want := []string{"login", "logout", "whoami", "courses", "exams"}
	for _, name := range want {
		found := false
		for _, cmd := range root.Commands() {
			if cmd.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("missing subcommand %q", name)
		}
	}
}

func TestCredentials_RoundTrip(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	creds := credentials{Token: "tok-abc", Email: "ana@example.com", Role: "Teacher"}
	if err := saveCredentials(creds); err != nil {
		t.Fatalf("saveCredentials: %v", err)
	}

	// The file must not be world readable.
	p, err := credentialsPath()
	if err != nil {
		t.Fatalf("credentialsPath: %v", err)
	}
	info, err := os.Stat(p)
	if err != nil {
		t.Fatalf("stat credentials: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("credentials mode = %o, want 0600", perm)
	}
	if filepath.Base(filepath.Dir(p)) != ".campus" {
		t.Errorf("credentials dir = %s, want ~/.campus", filepath.Dir(p))
	}

	got, err := loadCredentials()
	if err != nil {
		t.Fatalf("loadCredentials: %v", err)
	}
	if got != creds {
		t.Errorf("loadCredentials() = %+v, want %+v", got, creds)
	}

	if tok := LoadToken(); tok != "tok-abc" {
		t.Errorf("LoadToken() = %q, want tok-abc", tok)
	}
}

func TestLoadToken_NotSignedIn(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	if tok := LoadToken(); tok != "" {
		t.Errorf("LoadToken() = %q, want empty", tok)
	}
}
