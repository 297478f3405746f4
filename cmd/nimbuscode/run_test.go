// Tests for save/extract helpers and display formatting.
package main

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleReply = "Here you go:\n" +
	"```go\n" +
	"package main\n" +
	"```\n" +
	"And a script:\n" +
	"```sh\n" +
	"echo hi\n" +
	"```\n"

// TestSaveReplyFullText verifies the whole reply is written when no block
// extraction is requested.
func TestSaveReplyFullText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reply.md")
	saveReply(sampleReply, path, false)

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read saved reply: %v", err)
	}
	if string(data) != sampleReply {
		t.Fatalf("saved content mismatch: %q", string(data))
	}
}

// TestSaveReplyFirstBlock verifies only the first code block is written.
func TestSaveReplyFirstBlock(t *testing.T) {
	path := filepath.Join(t.TempDir(), "code.go")
	saveReply(sampleReply, path, true)

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read saved block: %v", err)
	}
	if string(data) != "package main" {
		t.Fatalf("expected first block only, got %q", string(data))
	}
}

// TestSaveReplyFirstBlockMissing verifies a blockless reply writes nothing.
func TestSaveReplyFirstBlockMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "code.go")
	saveReply("no fences here", path, true)

	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("no file should be written when no block exists: %v", err)
	}
}

// TestExtractAllBlocks verifies numbered files in order of appearance.
func TestExtractAllBlocks(t *testing.T) {
	dir := t.TempDir()
	extractAllBlocks(sampleReply, dir)

	first, err := os.ReadFile(filepath.Join(dir, "code_block_1.txt"))
	if err != nil {
		t.Fatalf("read first block: %v", err)
	}
	if string(first) != "package main" {
		t.Fatalf("unexpected first block: %q", string(first))
	}

	second, err := os.ReadFile(filepath.Join(dir, "code_block_2.txt"))
	if err != nil {
		t.Fatalf("read second block: %v", err)
	}
	if string(second) != "echo hi" {
		t.Fatalf("unexpected second block: %q", string(second))
	}
}

// TestMaskKey verifies API key masking for config --show.
func TestMaskKey(t *testing.T) {
	cases := map[string]string{
		"":               "",
		"ab":             "********ab",
		"sk-or-abcd1234": "********1234",
	}
	for in, want := range cases {
		if got := maskKey(in); got != want {
			t.Fatalf("maskKey(%q) = %q, want %q", in, got, want)
		}
	}
}

// TestCapitalize verifies only the first rune is upper-cased.
func TestCapitalize(t *testing.T) {
	if got := capitalize("python"); got != "Python" {
		t.Fatalf("capitalize(python) = %q", got)
	}
	if got := capitalize("cross-platform (React Native/Flutter)"); got != "Cross-platform (React Native/Flutter)" {
		t.Fatalf("capitalize mangled mixed case: %q", got)
	}
	if got := capitalize(""); got != "" {
		t.Fatalf("capitalize empty: %q", got)
	}
}

// TestContextLabel verifies the Unknown sentinel for absent context lengths.
func TestContextLabel(t *testing.T) {
	if got := contextLabel(0); got != "Unknown" {
		t.Fatalf("contextLabel(0) = %q", got)
	}
	if got := contextLabel(8192); got != "8192" {
		t.Fatalf("contextLabel(8192) = %q", got)
	}
}
