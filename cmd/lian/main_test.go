package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(strings.NewReader(stdin), &out)
	cmd.SetArgs(args)
	cmd.SetErr(&bytes.Buffer{})
	require.NoError(t, cmd.Execute())
	return out.String()
}

func TestAsk_KnowledgeBase(t *testing.T) {
	out := run(t, "", "ask", "tomato", "early", "blight", "treatment")

	assert.Contains(t, out, "source=kb")
	assert.Contains(t, out, "score=17")
	assert.Contains(t, out, "Early Blight")
}

func TestAsk_Fallback(t *testing.T) {
	out := run(t, "", "ask", "hello")

	assert.Contains(t, out, "source=fallback topic=general")
}

func TestAsk_ExtraPack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orchard.yaml")
	pack := "pack: orchard\nentries:\n  - keywords: [\"apple scab\"]\n    response: \"Scab answer\"\n"
	require.NoError(t, os.WriteFile(path, []byte(pack), 0644))

	out := run(t, "", "--pack", path, "ask", "apple scab on leaves")

	assert.Contains(t, out, "source=kb")
	assert.Contains(t, out, "Scab answer")
}

func TestChat_ReadsLines(t *testing.T) {
	out := run(t, "hello\n\nwatering schedule please\n", "chat")

	assert.Equal(t, 2, strings.Count(out, "[source="))
}

func TestAsk_MissingPack(t *testing.T) {
	cmd := newRootCmd(strings.NewReader(""), &bytes.Buffer{})
	cmd.SetArgs([]string{"--pack", filepath.Join(t.TempDir(), "nope.yaml"), "ask", "hi"})
	cmd.SetErr(&bytes.Buffer{})
	assert.Error(t, cmd.Execute())
}
