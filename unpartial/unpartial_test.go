package unpartial_test

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/lyraproj/unpartial/api"
	"github.com/lyraproj/unpartial/unpartial"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testdata(name string) string {
	return filepath.Join(`testdata`, name)
}

func fillAndRender(t *testing.T, opts *unpartial.CommandOptions, stdin string) string {
	t.Helper()
	out := bytes.Buffer{}
	require.NoError(t, unpartial.FillAndRender(opts, bytes.NewBufferString(stdin), &out))
	return out.String()
}

func TestFillAndRender_shallow(t *testing.T) {
	out := fillAndRender(t, &unpartial.CommandOptions{
		Base:     testdata(`base.yaml`),
		Partial:  testdata(`partial.yaml`),
		RenderAs: `json`}, ``)
	require.Equal(t, `{"logging":{"level":"info"},"server":{"port":9090}}`+"\n", out)
}

func TestFillAndRender_deep(t *testing.T) {
	out := fillAndRender(t, &unpartial.CommandOptions{
		Merge:    `deep`,
		Base:     testdata(`base.yaml`),
		Partial:  testdata(`partial.yaml`),
		RenderAs: `json`}, ``)
	require.Equal(t, `{"logging":{"level":"info"},"server":{"host":"localhost","port":9090,"tags":["web"]}}`+"\n", out)
}

func TestFillAndRender_deep3(t *testing.T) {
	out := fillAndRender(t, &unpartial.CommandOptions{
		Merge:     `deep`,
		SuperBase: testdata(`super.json`),
		Base:      testdata(`base.yaml`),
		Partial:   `-`,
		RenderAs:  `json`}, `server: {tags: api}`)
	require.Equal(t,
		`{"logging":{"level":"info"},"retries":3,"server":{"host":"localhost","port":8080,"tags":["web","api"],"timeout":30}}`+"\n", out)
}

func TestFillAndRender_missingSuperBaseIsIgnored(t *testing.T) {
	out := fillAndRender(t, &unpartial.CommandOptions{
		SuperBase: testdata(`nosuchfile.yaml`),
		Base:      testdata(`partial.yaml`),
		RenderAs:  `json`}, ``)
	require.Equal(t, `{"server":{"port":9090}}`+"\n", out)
}

func TestFillAndRender_missingBase(t *testing.T) {
	out := fillAndRender(t, &unpartial.CommandOptions{
		Base:     testdata(`nosuchfile.yaml`),
		Partial:  testdata(`partial.yaml`),
		RenderAs: `json`}, ``)
	require.Equal(t, "null\n", out)
}

func TestFillAndRender_yamlIsDefault(t *testing.T) {
	out := fillAndRender(t, &unpartial.CommandOptions{Base: testdata(`partial.yaml`)}, ``)
	require.Equal(t, "server:\n    port: 9090\n", out)
}

func TestFillAndRender_errors(t *testing.T) {
	out := bytes.Buffer{}
	err := unpartial.FillAndRender(&unpartial.CommandOptions{}, nil, &out)
	require.EqualError(t, err, `missing required option 'base'`)

	err = unpartial.FillAndRender(&unpartial.CommandOptions{Base: testdata(`base.yaml`), Merge: `hash`}, nil, &out)
	require.EqualError(t, err, `unknown fill strategy 'hash'`)

	err = unpartial.FillAndRender(&unpartial.CommandOptions{Base: testdata(`base.yaml`), RenderAs: `binary`}, nil, &out)
	require.EqualError(t, err, `unknown rendering 'binary'`)
	assert.Empty(t, out.String())
}

func TestFill(t *testing.T) {
	s, err := unpartial.Strategy(`deep`)
	require.NoError(t, err)
	require.Equal(t, api.Record{`a`: 1, `b`: 2}, unpartial.Fill(s, nil, api.Record{`a`: 1}, api.Record{`b`: 2}))
	require.Equal(t, api.Record{`a`: 1, `b`: 2, `c`: 3}, unpartial.Fill(s, api.Record{`c`: 3}, api.Record{`a`: 1}, api.Record{`b`: 2}))
	require.Nil(t, unpartial.Fill(s, nil, nil, api.Record{`b`: 2}))
}

func TestRender(t *testing.T) {
	out := bytes.Buffer{}
	require.NoError(t, unpartial.Render(unpartial.Text, `hello`, &out))
	require.NoError(t, unpartial.Render(unpartial.JSON, nil, &out))
	require.NoError(t, unpartial.Render(unpartial.YAML, nil, &out))
	require.NoError(t, unpartial.Render(unpartial.JSON, api.Record{`a`: `<b>`}, &out))
	require.Equal(t, "hello\nnull\n\n{\"a\":\"<b>\"}\n", out.String())
}
