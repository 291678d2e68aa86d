package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lauvinko/lauvinko"
	"github.com/lauvinko/lauvinko/lv"
)

func writeConfig(t *testing.T, extra string) string {
	t.Helper()
	dict, err := filepath.Abs("../../data/dictionary.json")
	require.NoError(t, err)
	dir := t.TempDir()
	body := fmt.Sprintf("dictionary: %s\nlog:\n  level: error\nstore:\n  path: %s\n%s",
		dict, filepath.Join(dir, "paradigms.db"), extra)
	path := filepath.Join(dir, "lauvinko.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func execute(t *testing.T, configFile string, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(append([]string{"--config", configFile}, args...))
	err := rootCmd.ExecuteContext(context.Background())
	return buf.String(), err
}

func historical(t *testing.T, text string) string {
	t.Helper()
	m, err := lv.ParseMorpheme(text)
	require.NoError(t, err)
	return m.Surface.HistoricalTranscription()
}

func TestEvolveCmd(t *testing.T) {
	cfgFile := writeConfig(t, "")

	out, err := execute(t, cfgFile, "evolve", "--ctx", "au", "paaraye+N", "okka")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, historical(t, "pa/le+N"), strings.Split(lines[0], "\t")[1])
	assert.Equal(t, historical(t, "o/kka"), strings.Split(lines[1], "\t")[1])

	out, err = execute(t, cfgFile, "evolve", "--ctx", "na", "--verbose", "okka")
	require.NoError(t, err)
	assert.Equal(t, historical(t, "o/k"), strings.Split(strings.TrimSpace(out), "\t")[1])

	_, err = execute(t, cfgFile, "evolve", "--ctx", "zz", "okka")
	assert.Error(t, err)
	_, err = execute(t, cfgFile, "evolve", "--ctx", "na", "qqq")
	assert.Error(t, err)
}

func TestParseCmd(t *testing.T) {
	cfgFile := writeConfig(t, "")

	out, err := execute(t, cfgFile, "parse", "--lang", "lv", "o/kka")
	require.NoError(t, err)
	m, err := lv.ParseMorpheme("o/kka")
	require.NoError(t, err)
	assert.Contains(t, out, m.Falavay())

	_, err = execute(t, cfgFile, "parse", "--lang", "pk", "okka")
	require.NoError(t, err)

	_, err = execute(t, cfgFile, "parse", "--lang", "xx", "okka")
	assert.Error(t, err)
}

func TestGlossCmd(t *testing.T) {
	cfgFile := writeConfig(t, "")

	out, err := execute(t, cfgFile, "gloss", "if-cut", "want-rice")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "if-cut want-rice", lines[0])
	assert.Equal(t, historical(t, "tito/")+" "+historical(t, "evo/k"), lines[1])

	_, err = execute(t, cfgFile, "gloss", "$t1s$-cut")
	assert.ErrorIs(t, err, lauvinko.ErrInvalidGloss)
}

func TestParadigmCmd(t *testing.T) {
	cfgFile := writeConfig(t, "")

	out, err := execute(t, cfgFile, "paradigm", "grow")
	require.NoError(t, err)
	assert.Contains(t, out, "to grow up")
	assert.Contains(t, out, "impt*")
	assert.Contains(t, out, "inc.na*")

	_, err = execute(t, cfgFile, "paradigm", "nonesuch")
	assert.True(t, errors.Is(err, lauvinko.ErrUnknownEntry), "got %v", err)
}

func TestExportCmd(t *testing.T) {
	cfgFile := writeConfig(t, "")
	dbPath := filepath.Join(t.TempDir(), "out.db")

	out, err := execute(t, cfgFile, "export", "--db", dbPath)
	require.NoError(t, err)
	assert.Contains(t, out, dbPath)
	_, err = os.Stat(dbPath)
	assert.NoError(t, err)
}

func TestGenerateCmd(t *testing.T) {
	cfgFile := writeConfig(t, "")

	first, err := execute(t, cfgFile, "generate", "--category", "fientive", "--count", "3", "--seed", "7")
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(first), "\n"), 3)

	second, err := execute(t, cfgFile, "generate", "--category", "fientive", "--count", "3", "--seed", "7")
	require.NoError(t, err)
	assert.Equal(t, first, second)

	_, err = execute(t, cfgFile, "generate", "--category", "nounish", "--count", "3", "--seed", "7")
	assert.Error(t, err)
}

func TestDiffcheckCmd(t *testing.T) {
	out, err := execute(t, writeConfig(t, ""), "diffcheck", "--samples", "200", "--seed", "3", "--workers", "2", "--show", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "mismatches")

	strict := writeConfig(t, "diffcheck:\n  max_mismatch_rate: 0\n")
	_, err = execute(t, strict, "diffcheck", "--samples", "200", "--seed", "3", "--workers", "2", "--show", "0")
	assert.ErrorContains(t, err, "exceeds")
}

func TestMissingConfig(t *testing.T) {
	_, err := execute(t, filepath.Join(t.TempDir(), "absent.yaml"), "evolve", "--ctx", "na", "okka")
	assert.Error(t, err)
}
