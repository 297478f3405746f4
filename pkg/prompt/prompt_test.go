// Tests for prompt template builders.
package prompt

import (
	"strings"
	"testing"
)

// containsAll reports whether all substrings exist in text.
func containsAll(text string, needles []string) bool {
	for _, needle := range needles {
		if !strings.Contains(text, needle) {
			return false
		}
	}
	return true
}

// TestAskWithFileContext validates the file-content wrapper and default
// persona.
func TestAskWithFileContext(t *testing.T) {
	pair := Ask("what does this do?", "print('hi')", "")
	if !strings.HasPrefix(pair.User, "File content:\n```\nprint('hi')\n```\n\nPrompt: what does this do?") {
		t.Fatalf("unexpected user prompt: %q", pair.User)
	}
	if pair.System != DefaultAskSystem {
		t.Fatalf("expected default system prompt, got %q", pair.System)
	}
}

// TestAskSystemOverride verifies an explicit system prompt replaces the
// default.
func TestAskSystemOverride(t *testing.T) {
	pair := Ask("hello", "", "You are terse.")
	if pair.System != "You are terse." {
		t.Fatalf("override ignored: %q", pair.System)
	}
	if pair.User != "hello" {
		t.Fatalf("question should pass through untouched: %q", pair.User)
	}
}

// TestGenerate validates the language appears in both prompts.
func TestGenerate(t *testing.T) {
	pair := Generate("a REST server", "go")
	if !containsAll(pair.User, []string{"Generate go code for the following:", "a REST server"}) {
		t.Fatalf("unexpected user prompt: %q", pair.User)
	}
	if !strings.Contains(pair.System, "expert go developer") {
		t.Fatalf("unexpected system prompt: %q", pair.System)
	}
}

// TestImproveAndExplain validate the code is fenced into the user prompt.
func TestImproveAndExplain(t *testing.T) {
	improve := Improve("x = 1")
	if !containsAll(improve.User, []string{"Please improve the following code.", "```\nx = 1\n```"}) {
		t.Fatalf("unexpected improve prompt: %q", improve.User)
	}

	explain := Explain("x = 1")
	if !containsAll(explain.User, []string{"Please explain the following code in detail:", "```\nx = 1\n```"}) {
		t.Fatalf("unexpected explain prompt: %q", explain.User)
	}
}

// TestCloudUppercasesProvider validates the provider name casing.
func TestCloudUppercasesProvider(t *testing.T) {
	pair := Cloud("a static site", "aws")
	if !containsAll(pair.User, []string{"Generate AWS cloud deployment", "a static site"}) {
		t.Fatalf("unexpected user prompt: %q", pair.User)
	}
	if !strings.Contains(pair.System, "deployment on AWS") {
		t.Fatalf("unexpected system prompt: %q", pair.System)
	}
}

// TestPlatformDisplay validates the platform name map and passthrough.
func TestPlatformDisplay(t *testing.T) {
	cases := map[string]string{
		"ios":     "iOS (Swift/SwiftUI)",
		"android": "Android (Kotlin)",
		"CROSS":   "cross-platform (React Native/Flutter)",
		"web":     "web",
	}
	for in, want := range cases {
		if got := PlatformDisplay(in); got != want {
			t.Fatalf("PlatformDisplay(%q) = %q, want %q", in, got, want)
		}
	}
}

// TestMobile validates the platform display name reaches both prompts.
func TestMobile(t *testing.T) {
	pair := Mobile("a todo app", "android")
	if !containsAll(pair.User, []string{"Android (Kotlin)", "a todo app"}) {
		t.Fatalf("unexpected user prompt: %q", pair.User)
	}
	if !strings.Contains(pair.System, "Android (Kotlin) mobile app development") {
		t.Fatalf("unexpected system prompt: %q", pair.System)
	}
}
