package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestResolveProvider_Defaults(t *testing.T) {
	p, err := ResolveProvider(Provider{}, envMap(nil))

	require.NoError(t, err)
	assert.Equal(t, ProviderOllama, p.Name)
	assert.Equal(t, DefaultOllamaModel, p.Model)
	assert.Equal(t, DefaultOllamaHost, p.BaseURL)
	assert.Empty(t, p.APIKey)
}

func TestResolveProvider_FromEnvironment(t *testing.T) {
	p, err := ResolveProvider(Provider{}, envMap(map[string]string{
		EnvProvider:      "openai",
		EnvModel:         "gpt-4.1",
		EnvOpenAIKey:     "sk-env",
		EnvOpenAIBaseURL: "https://proxy.example.com/v1",
	}))

	require.NoError(t, err)
	assert.Equal(t, Provider{Name: ProviderOpenAI, Model: "gpt-4.1", APIKey: "sk-env", BaseURL: "https://proxy.example.com/v1"}, p)
}

func TestResolveProvider_ExplicitBeatsEnvironment(t *testing.T) {
	env := envMap(map[string]string{
		EnvProvider:  "openai",
		EnvModel:     "gpt-4.1",
		EnvOpenAIKey: "sk-env",
	})

	p, err := ResolveProvider(Provider{Name: ProviderOllama, Model: "mistral", BaseURL: "http://gpu:11434"}, env)

	require.NoError(t, err)
	assert.Equal(t, ProviderOllama, p.Name)
	assert.Equal(t, "mistral", p.Model)
	assert.Equal(t, "http://gpu:11434", p.BaseURL)
}

func TestResolveProvider_HostedDefaultModel(t *testing.T) {
	p, err := ResolveProvider(Provider{Name: "hosted", APIKey: "sk-arg"}, envMap(nil))

	require.NoError(t, err)
	assert.Equal(t, ProviderOpenAI, p.Name)
	assert.Equal(t, DefaultOpenAIModel, p.Model)
	assert.Equal(t, "sk-arg", p.APIKey)
}

func TestResolveProvider_HostedWithoutCredential(t *testing.T) {
	_, err := ResolveProvider(Provider{Name: ProviderOpenAI}, envMap(nil))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingCredential)
	assert.True(t, IsConfigError(err))
}

func TestResolveProvider_Unsupported(t *testing.T) {
	_, err := ResolveProvider(Provider{}, envMap(map[string]string{EnvProvider: "anthropic"}))

	assert.ErrorIs(t, err, ErrUnsupportedProvider)
}

func TestParseProviderName(t *testing.T) {
	tests := map[string]ProviderName{
		"ollama": ProviderOllama,
		"local":  ProviderOllama,
		"OpenAI": ProviderOpenAI,
		"hosted": ProviderOpenAI,
	}
	for in, want := range tests {
		got, err := ParseProviderName(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

func TestLoadEnv_MissingFileIsNotAnError(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	defer os.Chdir(wd)

	assert.NoError(t, LoadEnv())
}

func TestLoadProject(t *testing.T) {
	dir := t.TempDir()
	content := `name: Demo
description: A tool that does a thing
license: Apache-2.0
scan: false
provider:
  name: local
  model: mistral
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0644))

	cfg, err := LoadProject(dir)

	require.NoError(t, err)
	assert.Equal(t, "Demo", cfg.Name)
	assert.Equal(t, "Apache-2.0", cfg.License)
	assert.False(t, cfg.ScanEnabled())
	assert.Equal(t, DefaultOutputFile, cfg.Output)
	assert.Equal(t, "local", cfg.Provider.Name)
	assert.Equal(t, "mistral", cfg.Provider.Model)
}

func TestLoadProject_Defaults(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("name: Demo\n"), 0644))

	cfg, err := LoadProject(dir)

	require.NoError(t, err)
	assert.Equal(t, DefaultLicense, cfg.License)
	assert.True(t, cfg.ScanEnabled())
}

func TestLoadProject_Missing(t *testing.T) {
	_, err := LoadProject(t.TempDir())

	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadProject_InvalidLicense(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("name: Demo\nlicense: WTFPL\n"), 0644))

	_, err := LoadProject(dir)

	assert.ErrorContains(t, err, "invalid license")
}

func TestProjectConfig_SaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	cfg := DefaultProject()
	cfg.Name = "Demo"
	cfg.Description = "A tool"

	_, err := cfg.Save(dir)
	require.NoError(t, err)
	loaded, err := LoadProject(dir)

	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestSchema(t *testing.T) {
	s := Schema()

	assert.Equal(t, "readmegen Project Configuration", s.Title)
	require.NotNil(t, s.Properties)
	_, ok := s.Properties.Get("description")
	assert.True(t, ok)
	_, ok = s.Properties.Get("provider")
	assert.True(t, ok)
}

func TestLoadProjectFile_ExplicitPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yml")
	require.NoError(t, os.WriteFile(path, []byte("name: Demo\nlicense: BSD-3-Clause\n"), 0644))

	cfg, err := LoadProjectFile(path)

	require.NoError(t, err)
	assert.Equal(t, "Demo", cfg.Name)
	assert.Equal(t, "BSD-3-Clause", cfg.License)
}
