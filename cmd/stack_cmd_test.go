package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/beekhof/file-stack/pkg/files"
	"github.com/beekhof/file-stack/pkg/session"
	"github.com/beekhof/file-stack/pkg/stack"
)

func TestAddFiles(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{"a.png", "b.pdf", "c.txt"} {
		if err := os.WriteFile(filepath.Join(root, name), []byte(name), 0644); err != nil {
			t.Fatalf("Failed to write %s: %v", name, err)
		}
	}

	store := session.NewStore("", 2)
	resolver := files.NewResolver(root, nil)

	var out bytes.Buffer
	if err := addFiles(&out, store, resolver, "cli", []string{"a.png", "b.pdf", "c.txt"}, false); err != nil {
		t.Fatalf("Failed to add files: %v", err)
	}

	expected := "Added a.png (image)\nAdded b.pdf (document)\nAdded c.txt (document)\nRemoved a.png\n"
	if out.String() != expected {
		t.Errorf("Expected output %q, got %q", expected, out.String())
	}

	refs := store.List("cli", -1)
	if len(refs) != 2 || refs[0].Path() != "c.txt" || refs[1].Path() != "b.pdf" {
		t.Errorf("Expected stack [c.txt b.pdf], got %v", refs)
	}
}

func TestAddFilesMissing(t *testing.T) {
	store := session.NewStore("", 2)
	resolver := files.NewResolver(t.TempDir(), nil)

	err := addFiles(&bytes.Buffer{}, store, resolver, "cli", []string{"missing.png"}, false)
	if !errors.Is(err, files.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
	if len(store.Sessions()) != 0 {
		t.Error("Expected no stack to be created for an unresolvable file")
	}
}

func TestAddFilesEncoded(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{"a%41.png", "aA.png"} {
		if err := os.WriteFile(filepath.Join(root, name), []byte(name), 0644); err != nil {
			t.Fatalf("Failed to write %s: %v", name, err)
		}
	}
	resolver := files.NewResolver(root, nil)

	testCases := []struct {
		name     string
		input    string
		encoded  bool
		expected string
	}{
		{"literal percent", "a%41.png", false, "a%41.png"},
		{"encoded percent", "a%2541.png", true, "a%41.png"},
		{"encoded letter", "a%41.png", true, "aA.png"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			store := session.NewStore("", 3)
			if err := addFiles(&bytes.Buffer{}, store, resolver, "cli", []string{tc.input}, tc.encoded); err != nil {
				t.Fatalf("Failed to add %s: %v", tc.input, err)
			}
			refs := store.List("cli", -1)
			if len(refs) != 1 || refs[0].Path() != tc.expected {
				t.Errorf("Expected stack [%s], got %v", tc.expected, refs)
			}
		})
	}
}

func TestPrintStack(t *testing.T) {
	refs := []stack.FileReference{
		stack.NewFileReference("files/2024/05/a-very-long-file-name.png"),
		stack.NewFileReference("b.pdf"),
	}

	t.Run("no width", func(t *testing.T) {
		var out bytes.Buffer
		printStack(&out, refs, 0)
		expected := " 1. files/2024/05/a-very-long-file-name.png\n 2. b.pdf\n"
		if out.String() != expected {
			t.Errorf("Expected %q, got %q", expected, out.String())
		}
	})

	t.Run("narrow terminal", func(t *testing.T) {
		var out bytes.Buffer
		printStack(&out, refs, 20)
		lines := strings.Split(strings.TrimSpace(out.String()), "\n")
		if lines[0] != " 1. ...file-name.png" {
			t.Errorf("Expected shortened path, got %q", lines[0])
		}
		if len(lines[0]) != 20 {
			t.Errorf("Expected line of width 20, got %d", len(lines[0]))
		}
	})

	t.Run("empty", func(t *testing.T) {
		var out bytes.Buffer
		printStack(&out, nil, 0)
		if out.String() != "The stack is empty.\n" {
			t.Errorf("Expected empty message, got %q", out.String())
		}
	})
}
