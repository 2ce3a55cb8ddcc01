package e2e_test

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEndToEnd_ComplexNestedDocument runs the CLI over a deeply nested
// document and checks the printed tree
func TestEndToEnd_ComplexNestedDocument(t *testing.T) {
	tempDir := t.TempDir()

	content := `{
		"id": 12345,
		"config": {
			"timeout_seconds": 30,
			"rate_limits": {
				"per_second": 100,
				"burst": 150
			},
			"features": ["logging", "metrics", "alerting"]
		},
		"users": [
			{
				"id": 1,
				"name": "Alice",
				"roles": ["admin", "user"]
			},
			{
				"id": 2,
				"name": "Bob",
				"roles": []
			}
		],
		"success_rate": 0.9999,
		"empty": {}
	}`

	inputFile := filepath.Join(tempDir, "complex.json")
	require.NoError(t, os.WriteFile(inputFile, []byte(content), 0644))

	outputFile := filepath.Join(tempDir, "complex_output.json")

	cmd := exec.Command("go", "run", "../..", inputFile, "-o", outputFile)
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "CLI command failed: %s", string(output))

	printed, err := os.ReadFile(outputFile)
	require.NoError(t, err)

	// The output is standard JSON; a reference decode must agree with
	// the input structurally
	var got map[string]any
	require.NoError(t, json.Unmarshal(printed, &got))

	var want map[string]any
	require.NoError(t, json.Unmarshal([]byte(content), &want))
	assert.Equal(t, want, got)

	// Two-space indentation
	assert.Contains(t, string(printed), "\n  \"config\": {")
	assert.Contains(t, string(printed), "\n      \"per_second\": 100")
}

// TestEndToEnd_KeyOrderPreserved checks that object keys print in the
// order they first appear in the input
func TestEndToEnd_KeyOrderPreserved(t *testing.T) {
	tempDir := t.TempDir()

	inputFile := filepath.Join(tempDir, "ordered.json")
	require.NoError(t, os.WriteFile(inputFile, []byte(`{"zebra": 1, "apple": 2, "mango": 3}`), 0644))

	cmd := exec.Command("go", "run", "../..", inputFile)
	output, err := cmd.Output()
	require.NoError(t, err)

	text := string(output)
	zebra := strings.Index(text, `"zebra"`)
	apple := strings.Index(text, `"apple"`)
	mango := strings.Index(text, `"mango"`)
	require.NotEqual(t, -1, zebra)
	require.NotEqual(t, -1, apple)
	require.NotEqual(t, -1, mango)
	assert.Less(t, zebra, apple)
	assert.Less(t, apple, mango)
}

// TestEndToEnd_PipedInput feeds the document through stdin
func TestEndToEnd_PipedInput(t *testing.T) {
	cmd := exec.Command("go", "run", "../..")
	cmd.Stdin = strings.NewReader(`[1, 2.5, 3]`)
	output, err := cmd.Output()
	require.NoError(t, err)

	assert.Equal(t, "[\n  1,\n  2.5,\n  3\n]\n", string(output))
}

// TestEndToEnd_SortKeysFlag exercises the --sort-keys output option
func TestEndToEnd_SortKeysFlag(t *testing.T) {
	tempDir := t.TempDir()

	inputFile := filepath.Join(tempDir, "ordered.json")
	require.NoError(t, os.WriteFile(inputFile, []byte(`{"b": 1, "a": 2}`), 0644))

	cmd := exec.Command("go", "run", "../..", inputFile, "--sort-keys", "--indent", "0")
	output, err := cmd.Output()
	require.NoError(t, err)

	assert.Equal(t, `{"a":2,"b":1}`+"\n", string(output))
}

// TestEndToEnd_ParseErrors checks that malformed input exits non-zero
// with a diagnostic on stderr
func TestEndToEnd_ParseErrors(t *testing.T) {
	tests := []struct {
		name       string
		content    string
		diagnostic string
	}{
		{
			name:       "unquoted key",
			content:    `{a: 1}`,
			diagnostic: "unexpected character",
		},
		{
			name:       "trailing content",
			content:    `[1]2`,
			diagnostic: "trailing token",
		},
		{
			name:       "top-level scalar",
			content:    `5`,
			diagnostic: "unexpected value",
		},
		{
			name:       "second decimal point",
			content:    `[1.2.3]`,
			diagnostic: "invalid numeric literal",
		},
		{
			name:       "unterminated string",
			content:    `{"a`,
			diagnostic: "end of stream",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inputFile := filepath.Join(t.TempDir(), "bad.json")
			require.NoError(t, os.WriteFile(inputFile, []byte(tt.content), 0644))

			cmd := exec.Command("go", "run", "../..", inputFile)
			output, err := cmd.CombinedOutput()
			require.Error(t, err, "CLI should exit non-zero, output: %s", string(output))
			assert.Contains(t, string(output), tt.diagnostic)
		})
	}
}

// TestEndToEnd_Version checks the version flag
func TestEndToEnd_Version(t *testing.T) {
	cmd := exec.Command("go", "run", "../..", "--version")
	output, err := cmd.Output()
	require.NoError(t, err)
	assert.Contains(t, string(output), "jerry version")
}
