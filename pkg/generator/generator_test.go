package generator

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/grovetools/readmegen/pkg/config"
	"github.com/grovetools/readmegen/pkg/provider"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	system, user string
	calls        int
	out          string
	err          error
}

func (f *fakeClient) Complete(ctx context.Context, system, user string) (string, error) {
	f.calls++
	f.system, f.user = system, user
	return f.out, f.err
}

func (f *fakeClient) Name() config.ProviderName { return config.ProviderOllama }

func (f *fakeClient) Model() string { return "llama3" }

func newTestGenerator(client provider.Client) *Generator {
	logger, _ := test.NewNullLogger()
	return NewWithClient(client, logger)
}

func validRequest(dir string) Request {
	return Request{
		ProjectName: "Demo",
		Description: "A tool that does a thing",
		License:     "MIT",
		Scan:        true,
		Directory:   dir,
	}
}

func TestNew_HostedWithoutCredentialFailsFast(t *testing.T) {
	_, err := New(context.Background(), config.Provider{Name: config.ProviderOpenAI, Model: "gpt-4o-mini"}, nil)

	require.Error(t, err)
	assert.True(t, config.IsConfigError(err))
}

func TestNew_UnsupportedProvider(t *testing.T) {
	_, err := New(context.Background(), config.Provider{Name: "bard", Model: "x"}, nil)

	assert.ErrorIs(t, err, config.ErrUnsupportedProvider)
}

func TestGenerate_TrimsOutput(t *testing.T) {
	client := &fakeClient{out: "\n\n  # Demo\n\nText.\n  \n"}
	g := newTestGenerator(client)

	out, err := g.Generate(context.Background(), validRequest(t.TempDir()))

	require.NoError(t, err)
	assert.Equal(t, "# Demo\n\nText.", out)
	assert.Equal(t, 1, client.calls)
}

func TestGenerate_AdoptsDetectedLanguage(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "requirements.txt"), nil, 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.py"), nil, 0644))
	client := &fakeClient{out: "ok"}

	_, err := newTestGenerator(client).Generate(context.Background(), validRequest(dir))

	require.NoError(t, err)
	assert.Contains(t, client.user, "Primary Language: Python\n")
	assert.Contains(t, client.user, "Project Files Found: app.py, requirements.txt")
	assert.Contains(t, client.user, "- Uses requirements.txt for Python dependencies")
}

func TestGenerate_ExplicitLanguageWins(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.py"), nil, 0644))
	client := &fakeClient{out: "ok"}
	req := validRequest(dir)
	req.Language = "Go"

	_, err := newTestGenerator(client).Generate(context.Background(), req)

	require.NoError(t, err)
	assert.Contains(t, client.user, "Primary Language: Go\n")
}

func TestGenerate_ScanDisabledOmitsFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.py"), nil, 0644))
	client := &fakeClient{out: "ok"}
	req := validRequest(dir)
	req.Scan = false

	_, err := newTestGenerator(client).Generate(context.Background(), req)

	require.NoError(t, err)
	assert.NotContains(t, client.user, "Project Files Found")
	assert.Contains(t, client.user, "Primary Language: Not specified\n")
}

func TestGenerate_ScanFailureIsAbsorbed(t *testing.T) {
	client := &fakeClient{out: "ok"}
	req := validRequest(filepath.Join(t.TempDir(), "does-not-exist"))

	out, err := newTestGenerator(client).Generate(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, "ok", out)
	assert.NotContains(t, client.user, "Project Files Found")
}

func TestGenerate_ProviderErrorPropagates(t *testing.T) {
	transport := errors.New("dial tcp 127.0.0.1:11434: connect: connection refused")
	client := &fakeClient{err: &provider.Error{Provider: config.ProviderOllama, Model: "llama3", Err: transport}}

	out, err := newTestGenerator(client).Generate(context.Background(), validRequest(t.TempDir()))

	require.Error(t, err)
	assert.Empty(t, out)
	var perr *provider.Error
	assert.True(t, errors.As(err, &perr))
	assert.ErrorIs(t, err, transport)
	assert.Contains(t, err.Error(), "failed to generate README")
}

func TestGenerate_InvalidRequest(t *testing.T) {
	client := &fakeClient{out: "ok"}
	g := newTestGenerator(client)

	for name, mutate := range map[string]func(*Request){
		"empty name":        func(r *Request) { r.ProjectName = " " },
		"empty description": func(r *Request) { r.Description = "" },
		"unknown license":   func(r *Request) { r.License = "WTFPL" },
	} {
		t.Run(name, func(t *testing.T) {
			req := validRequest(t.TempDir())
			mutate(&req)
			_, err := g.Generate(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidRequest)
		})
	}
	assert.Zero(t, client.calls)
}

func TestSave_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	client := &fakeClient{out: "  # Demo\n\n- émoji ✨\n\n"}
	g := newTestGenerator(client)

	content, err := g.Generate(context.Background(), validRequest(dir))
	require.NoError(t, err)
	path, err := g.Save(content, dir, "")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "README.md"), path)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "# Demo\n\n- émoji ✨", string(data))
}

func TestSave_TruncatesExistingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "DOCS.md")
	require.NoError(t, os.WriteFile(path, []byte("a much longer previous content"), 0644))

	_, err := Save("short", dir, "DOCS.md")

	require.NoError(t, err)
	data, _ := os.ReadFile(path)
	assert.Equal(t, "short", string(data))
}

func TestSave_ErrorIsSaveError(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "missing")

	_, err := Save("x", dir, "README.md")

	var serr *SaveError
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, filepath.Join(dir, "README.md"), serr.Path)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestPreview(t *testing.T) {
	assert.Equal(t, "short", Preview("short", 500))
	assert.Equal(t, "abc...", Preview("abcdef", 3))
	assert.Equal(t, "ééé...", Preview("éééé", 3))
	assert.Equal(t, "abcdef", Preview("abcdef", 0))
}

func TestProviderLabel(t *testing.T) {
	assert.Equal(t, "ollama/llama3", newTestGenerator(&fakeClient{}).Provider())
}
