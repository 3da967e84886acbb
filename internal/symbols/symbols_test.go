// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package symbols

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract_SingleFile(t *testing.T) {
	dir := setupTestRepo(t, map[string]string{
		"a.py": "def foo():\n    pass\n\nclass Bar:\n    pass\n",
	})

	result, err := Extract(dir)
	require.NoError(t, err)

	require.Len(t, result, 1)
	assert.Equal(t, "a.py", result[0].FilePath)
	assert.Equal(t, []string{"foo"}, result[0].Functions)
	assert.Equal(t, []string{"Bar"}, result[0].Classes)
}

func TestExtract_CountsNestedDefinitions(t *testing.T) {
	// Indented definitions count exactly like top-level ones.
	dir := setupTestRepo(t, map[string]string{
		"nested.py": `class Outer:
    def method(self):
        def inner():
            pass
        return inner

def top():
    pass
`,
	})

	result, err := Extract(dir)
	require.NoError(t, err)

	require.Len(t, result, 1)
	assert.Equal(t, []string{"method", "inner", "top"}, result[0].Functions)
	assert.Equal(t, []string{"Outer"}, result[0].Classes)
}

func TestExtract_EmptyListsNotOmitted(t *testing.T) {
	dir := setupTestRepo(t, map[string]string{
		"plain.py": "x = 1\nprint(x)\n",
	})

	result, err := Extract(dir)
	require.NoError(t, err)

	require.Len(t, result, 1)
	assert.NotNil(t, result[0].Functions)
	assert.NotNil(t, result[0].Classes)
	assert.Empty(t, result[0].Functions)
	assert.Empty(t, result[0].Classes)
}

func TestExtract_SkipsNonPythonFiles(t *testing.T) {
	dir := setupTestRepo(t, map[string]string{
		"main.go":  "func main() {}",
		"notes.md": "def not_code():",
		"app.py":   "def real():\n    pass\n",
	})

	result, err := Extract(dir)
	require.NoError(t, err)

	require.Len(t, result, 1)
	assert.Equal(t, "app.py", result[0].FilePath)
}

func TestExtract_SkipsHousekeepingDirs(t *testing.T) {
	dir := setupTestRepo(t, map[string]string{
		"app.py":                "def visible():\n    pass\n",
		".git/hooks/sample.py":  "def hidden():\n    pass\n",
		"__pycache__/cached.py": "def cached():\n    pass\n",
	})

	result, err := Extract(dir)
	require.NoError(t, err)

	require.Len(t, result, 1)
	assert.Equal(t, "app.py", result[0].FilePath)
}

func TestExtract_InvalidUTF8Tolerated(t *testing.T) {
	dir := t.TempDir()
	content := append([]byte("def ok():\n    pass\n# "), 0xff, 0xfe, '\n')
	require.NoError(t, os.WriteFile(filepath.Join(dir, "weird.py"), content, 0o644))

	result, err := Extract(dir)
	require.NoError(t, err)

	require.Len(t, result, 1)
	assert.Equal(t, []string{"ok"}, result[0].Functions)
}

func TestExtract_MissingRoot(t *testing.T) {
	_, err := Extract(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestScanSource_NameExtraction(t *testing.T) {
	tests := []struct {
		name      string
		source    string
		functions []string
		classes   []string
	}{
		{
			name:      "plain def",
			source:    "def compute(a, b):",
			functions: []string{"compute"},
			classes:   []string{},
		},
		{
			name:      "class with base",
			source:    "class Child(Base):",
			functions: []string{},
			classes:   []string{"Child"},
		},
		{
			name:      "class without parens",
			source:    "class Standalone:",
			functions: []string{},
			classes:   []string{"Standalone"},
		},
		{
			name:      "indented def counted",
			source:    "    def helper(self):",
			functions: []string{"helper"},
			classes:   []string{},
		},
		{
			name:      "keyword mid-line ignored",
			source:    "x = def_table class_map",
			functions: []string{},
			classes:   []string{},
		},
		{
			name:      "unclosed paren still extracts",
			source:    "def broken(",
			functions: []string{"broken"},
			classes:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			functions, classes := ScanSource(tt.source)
			assert.Equal(t, tt.functions, functions)
			assert.Equal(t, tt.classes, classes)
		})
	}
}

func TestScanSource_CountsMatchDefinitionLines(t *testing.T) {
	source := `def a():
    pass
def b():
    pass
class C:
    def c_method(self):
        pass
class D(C):
    pass
`
	functions, classes := ScanSource(source)
	assert.Len(t, functions, 3)
	assert.Len(t, classes, 2)
}

// --- Test helpers ---

func setupTestRepo(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return dir
}
