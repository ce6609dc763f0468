package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rapidaai/tts-utils/config"
	"github.com/rapidaai/tts-utils/pkg/commons"
	"github.com/rapidaai/tts-utils/pkg/utils"
)

func runCommand(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("LOG_LEVEL", "error")

	root := newRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestApplyOverrides(t *testing.T) {
	cfg := &config.AppConfig{Locale: "pt-BR", DatasetConfig: config.DatasetConfig{Workers: 4, Lowercase: true}}

	err := applyOverrides(cfg, utils.Option{
		"normalizer.locale": "en-US",
		"normalizer.stages": "numeric, punctuation",
		"dataset.workers":   "8",
		"dataset.lowercase": false,
	})
	require.NoError(t, err)
	assert.Equal(t, "en-US", cfg.Locale)
	assert.Equal(t, "numeric"+commons.SEPARATOR+"punctuation", cfg.Normalizers)
	assert.Equal(t, []string{"numeric", "punctuation"}, cfg.Stages())
	assert.Equal(t, 8, cfg.DatasetConfig.Workers)
	assert.False(t, cfg.DatasetConfig.Lowercase)
}

func TestApplyOverrides_ZeroWorkers(t *testing.T) {
	cfg := &config.AppConfig{DatasetConfig: config.DatasetConfig{Workers: 4}}
	assert.Error(t, applyOverrides(cfg, utils.Option{"dataset.workers": 0}))
}

func TestApplyOverrides_RejectsNegativeWorkers(t *testing.T) {
	cfg := &config.AppConfig{DatasetConfig: config.DatasetConfig{Workers: 4}}
	assert.Error(t, applyOverrides(cfg, utils.Option{"dataset.workers": -1}))
	assert.Error(t, applyOverrides(cfg, utils.Option{"dataset.workers": "-1"}))
	assert.Equal(t, 4, cfg.DatasetConfig.Workers)
}

func TestDatasetCommand_NegativeWorkers(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "utterances.txt")
	require.NoError(t, os.WriteFile(input, []byte("audio1|Olá.\n"), 0o644))

	_, err := runCommand(t, "", "dataset", "--input", input, "--output", dir, "--workers", "-1")
	assert.Error(t, err)
	assert.NoFileExists(t, filepath.Join(dir, metadataFile))
}

func TestNormalizeCommand_Args(t *testing.T) {
	out, err := runCommand(t, "", "normalize", "O", "Dr.", "João", "chegou", "às", "14:00")
	require.NoError(t, err)
	assert.Equal(t, "O Doutor João chegou às quatorze.\n", out)
}

func TestNormalizeCommand_Stdin(t *testing.T) {
	out, err := runCommand(t, "Paguei R$10,50\nEle pesa 80kg\n", "normalize")
	require.NoError(t, err)
	assert.Equal(t, "Paguei dez reais e cinquenta centavos.\nEle pesa oitenta quilos.\n", out)
}

func TestNormalizeCommand_StageSelection(t *testing.T) {
	out, err := runCommand(t, "", "--normalizers", "punctuation", "normalize", "Tenho 3 gatos")
	require.NoError(t, err)
	assert.Equal(t, "Tenho 3 gatos.\n", out)
}

func TestNormalizeCommand_UnknownLocale(t *testing.T) {
	_, err := runCommand(t, "", "--locale", "xx-YY", "normalize", "1")
	assert.Error(t, err)
}

func TestDatasetCommand(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "utterances.txt")
	require.NoError(t, os.WriteFile(input, []byte("audio1|Olá. Custa R$5,00!\n"), 0o644))

	out, err := runCommand(t, "", "dataset", "--input", input, "--output", dir, "--workers", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "wrote 2 records from 1 utterances")

	data, err := os.ReadFile(filepath.Join(dir, metadataFile))
	require.NoError(t, err)
	assert.Equal(t, "ID|text|textCleaned\naudio1_0001|Olá.|olá.\naudio1_0002|Custa R$5,00!|custa cinco reais!\n", string(data))
}
