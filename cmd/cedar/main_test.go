package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const schema = `enum Role {
  Admin,
  Guest,
}

record User {
  id Int
  role Role
}

fn getUser(id Int) User?
`

// run выполняет CLI в процессе и возвращает stdout, stderr и ошибку.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := newRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(append([]string{"--color", "off", "--ui", "off", "--path-mode", "basename"}, args...))
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func writeSchema(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestCheckFile(t *testing.T) {
	dir := t.TempDir()
	good := writeSchema(t, dir, "good.cedar", schema)
	stdout, _, err := run(t, "check", good)
	require.NoError(t, err)
	assert.Equal(t, good+": ok\n", stdout)

	stdout, _, err = run(t, "--quiet", "check", good)
	require.NoError(t, err)
	assert.Empty(t, stdout)

	bad := writeSchema(t, dir, "bad.cedar", "record A {\n  b B\n}\n")
	_, stderr, err := run(t, "check", bad)
	require.ErrorIs(t, err, errDiagnostics)
	assert.Contains(t, stderr, "Type error in bad.cedar:")
	assert.Contains(t, stderr, "unknown type 'B'")
}

func TestCheckShortAndJSON(t *testing.T) {
	bad := writeSchema(t, t.TempDir(), "bad.cedar", "record A {\n  b B\n  c C\n}\n")

	_, stderr, err := run(t, "--diagnostics", "short", "check", bad)
	require.ErrorIs(t, err, errDiagnostics)
	assert.Equal(t, "bad.cedar:2:5: SEM3001 unknown type 'B'\nbad.cedar:3:5: SEM3001 unknown type 'C'\n", stderr)

	stdout, _, err := run(t, "--diagnostics", "json", "check", bad)
	require.ErrorIs(t, err, errDiagnostics)
	var out struct {
		Count int `json:"count"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &out))
	assert.Equal(t, 2, out.Count)

	_, stderr, err = run(t, "--diagnostics", "short", "--max-diagnostics", "1", "check", bad)
	require.ErrorIs(t, err, errDiagnostics)
	assert.Equal(t, "bad.cedar:2:5: SEM3001 unknown type 'B'\n... and 1 more\n", stderr)
}

func TestCheckDir(t *testing.T) {
	dir := t.TempDir()
	writeSchema(t, dir, "a.cedar", schema)
	writeSchema(t, dir, "sub/b.cedar", "record A {\n  b B\n}\n")

	stdout, stderr, err := run(t, "--diagnostics", "short", "check", "--jobs", "2", "--cache-dir", filepath.Join(t.TempDir(), "cache"), dir)
	require.ErrorIs(t, err, errDiagnostics)
	assert.Equal(t, "checked 2 files, 1 with errors\n", stdout)
	assert.Equal(t, "b.cedar:2:5: SEM3001 unknown type 'B'\n", stderr)

	_, _, err = run(t, "check", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, errors.FlattenHints(err), "directory of schemas")
}

func TestFmt(t *testing.T) {
	dir := t.TempDir()
	path := writeSchema(t, dir, "users.cedar", "enum Role { Admin, Guest }\nrecord User {\n id Int\n role Role\n}\nfn getUser(id Int) User?")

	stdout, _, err := run(t, "fmt", path)
	require.NoError(t, err)
	assert.Equal(t, schema, stdout)

	stdout, _, err = run(t, "fmt", "--check", path)
	require.ErrorIs(t, err, errDiagnostics)
	assert.Equal(t, path+"\n", stdout)

	_, _, err = run(t, "--quiet", "fmt", "-w", path)
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, schema, string(data))

	_, _, err = run(t, "fmt", "--check", path)
	require.NoError(t, err)
}

func TestFmtManifestIndent(t *testing.T) {
	dir := t.TempDir()
	writeSchema(t, dir, "cedar.toml", "[format]\nindent = 4\n")
	path := writeSchema(t, dir, "e.cedar", "enum E { A }\n")

	stdout, _, err := run(t, "fmt", path)
	require.NoError(t, err)
	assert.Equal(t, "enum E {\n    A,\n}\n", stdout)

	// флаг сильнее манифеста
	stdout, _, err = run(t, "fmt", "--indent", "1", path)
	require.NoError(t, err)
	assert.Equal(t, "enum E {\n A,\n}\n", stdout)

	// табуляция не пробел для лексера, флага для неё нет
	_, _, err = run(t, "fmt", "--tabs", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown flag: --tabs")
}

func TestGenerate(t *testing.T) {
	dir := t.TempDir()
	path := writeSchema(t, dir, "users.cedar", schema)

	stdout, _, err := run(t, "generate", "go", path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout, "package server\n"))
	assert.Contains(t, stdout, "type Server struct {")

	stdout, _, err = run(t, "generate", "go", "--package", "api", "--set", "server=API", path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout, "package api\n"))
	assert.Contains(t, stdout, "type API struct {")

	outDir := t.TempDir()
	stdout, _, err = run(t, "generate", "go", "-o", outDir, path)
	require.NoError(t, err)
	assert.Equal(t, "wrote "+filepath.Join(outDir, "users.go")+"\n", stdout)
	data, err := os.ReadFile(filepath.Join(outDir, "users.go"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "package server\n"))
}

func TestGenerateManifest(t *testing.T) {
	dir := t.TempDir()
	writeSchema(t, dir, "cedar.toml", "[generate.go]\npackage = \"fromtoml\"\n")
	path := writeSchema(t, dir, "users.cedar", schema)

	stdout, _, err := run(t, "generate", "go", path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout, "package fromtoml\n"))

	stdout, _, err = run(t, "generate", "go", "--package", "fromflag", path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout, "package fromflag\n"))
}

func TestGenerateErrors(t *testing.T) {
	dir := t.TempDir()
	path := writeSchema(t, dir, "users.cedar", schema)

	_, _, err := run(t, "generate", "elm", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown generator")
	assert.Contains(t, errors.FlattenHints(err), "go")

	_, _, err = run(t, "generate", "go", "--set", "novalue", path)
	require.Error(t, err)

	_, _, err = run(t, "generate", "cedar", "--package", "x", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `has no option "package"`)

	bad := writeSchema(t, dir, "bad.cedar", "record A {\n  b B\n}\n")
	_, stderr, err := run(t, "generate", "go", bad)
	require.ErrorIs(t, err, errDiagnostics)
	assert.Contains(t, stderr, "unknown type 'B'")
}

func TestTokenizeAndParse(t *testing.T) {
	path := writeSchema(t, t.TempDir(), "users.cedar", schema)

	stdout, _, err := run(t, "tokenize", path)
	require.NoError(t, err)
	assert.Contains(t, stdout, "enum")

	stdout, _, err = run(t, "tokenize", "--format", "json", path)
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(stdout)))

	stdout, _, err = run(t, "parse", path)
	require.NoError(t, err)
	assert.Contains(t, stdout, "User")

	stdout, _, err = run(t, "parse", "--format", "json", path)
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(stdout)))

	lexBad := writeSchema(t, t.TempDir(), "lex.cedar", "enum A { $ }\n")
	_, stderr, err := run(t, "tokenize", lexBad)
	require.ErrorIs(t, err, errDiagnostics)
	assert.Contains(t, stderr, "Parse error in lex.cedar:")

	unknown := writeSchema(t, t.TempDir(), "u.cedar", "record A {\n  b B\n}\n")
	_, _, err = run(t, "parse", unknown)
	require.ErrorIs(t, err, errDiagnostics)
	stdout, _, err = run(t, "parse", "--no-typecheck", unknown)
	require.NoError(t, err)
	assert.Contains(t, stdout, "A")
}

func TestGlobalFlags(t *testing.T) {
	path := writeSchema(t, t.TempDir(), "users.cedar", schema)

	_, _, err := run(t, "--ui", "sometimes", "check", path)
	require.Error(t, err)
	_, _, err = run(t, "--diagnostics", "xml", "check", path)
	require.Error(t, err)
	_, _, err = run(t, "--trace-level", "loud", "check", path)
	require.Error(t, err)

	_, stderr, err := run(t, "--timings", "check", path)
	require.NoError(t, err)
	assert.Contains(t, stderr, "timings:")
	assert.Contains(t, stderr, "parse")

	_, stderr, err = run(t, "--trace", "-", "--trace-level", "debug", "check", path)
	require.NoError(t, err)
	assert.Contains(t, stderr, "parse")

	traceFile := filepath.Join(t.TempDir(), "trace.ndjson")
	_, _, err = run(t, "--trace", traceFile, "check", path)
	require.NoError(t, err)
	data, err := os.ReadFile(traceFile)
	require.NoError(t, err)
	for _, line := range strings.Split(strings.TrimSpace(string(data)), "\n") {
		assert.True(t, json.Valid([]byte(line)), line)
	}

	_, stderr, err = run(t, "--verbose", "fmt", path)
	require.NoError(t, err)
	assert.Contains(t, stderr, "no manifest")
}

func TestVersion(t *testing.T) {
	stdout, _, err := run(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout, "cedar "))
}

func TestReportError(t *testing.T) {
	var buf bytes.Buffer
	reportError(&buf, errors.WithHint(errors.New("boom"), "try again"))
	assert.Equal(t, "error: boom\nhint: try again\n", buf.String())
}

func TestProfilingFlags(t *testing.T) {
	dir := t.TempDir()
	path := writeSchema(t, dir, "users.cedar", schema)
	cpu := filepath.Join(dir, "cpu.pprof")
	mem := filepath.Join(dir, "mem.pprof")

	_, _, err := run(t, "--quiet", "--cpu-profile", cpu, "--mem-profile", mem, "check", path)
	require.NoError(t, err)
	assert.FileExists(t, cpu)
	assert.FileExists(t, mem)
}
