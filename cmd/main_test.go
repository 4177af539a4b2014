package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adspend/internal/core/domain"
)

const adsCSV = `platform,type,impressions
Instagram,image,10000
Instagram,video,20000
Facebook,image,12500
LinkedIn,text,500000
LinkedIn,image,91000
`

func TestCompute(t *testing.T) {
	var out, summary bytes.Buffer
	require.NoError(t, compute("", strings.NewReader(adsCSV), &out, &summary))

	assert.Equal(t, `platform,type,impressions,expenditure
Instagram,image,10000,50
Instagram,video,20000,200
Facebook,image,12500,50
LinkedIn,text,500000,1000
LinkedIn,image,91000,546
`, out.String())
	assert.Contains(t, summary.String(), "Instagram  250\n")
	assert.Contains(t, summary.String(), "total      1846 (5 records, 633500 impressions)")
}

func TestComputeFailsWithoutOutput(t *testing.T) {
	var out, summary bytes.Buffer
	err := compute("", strings.NewReader(adsCSV+"TikTok,image,1000\n"), &out, &summary)

	var platformErr *domain.UnsupportedPlatformError
	require.ErrorAs(t, err, &platformErr)
	assert.Empty(t, out.String())
}

func TestComputeCommandWithRateCardFlag(t *testing.T) {
	dir := t.TempDir()
	rates := filepath.Join(dir, "rates.yaml")
	require.NoError(t, os.WriteFile(rates, []byte("rates:\n  - platform: Facebook\n    ad_type: video\n    cpm: 8\n"), 0o600))
	input := filepath.Join(dir, "ads.csv")
	require.NoError(t, os.WriteFile(input, []byte("platform,type,impressions\nFacebook,video,2500\n"), 0o600))

	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs([]string{"compute", "--ratecard", rates, "--input", input})
	require.NoError(t, root.Execute())

	assert.Equal(t, "platform,type,impressions,expenditure\nFacebook,video,2500,20\n", out.String())
}

func TestRatesCommand(t *testing.T) {
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetArgs([]string{"rates"})
	require.NoError(t, root.Execute())

	assert.Contains(t, out.String(), "platform: LinkedIn")
	assert.Contains(t, out.String(), "ad_type: text")
}

func TestComputeCommandKeepsOutputOnFailure(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "ads.csv")
	require.NoError(t, os.WriteFile(input, []byte("platform,type,impressions\nTikTok,image,1000\n"), 0o600))
	output := filepath.Join(dir, "out.csv")
	require.NoError(t, os.WriteFile(output, []byte("previous results\n"), 0o600))

	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"compute", "--input", input, "--output", output})
	err := root.Execute()

	var platformErr *domain.UnsupportedPlatformError
	require.ErrorAs(t, err, &platformErr)
	got, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, "previous results\n", string(got))
}

func TestComputeCommandWritesOutputFile(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "ads.csv")
	require.NoError(t, os.WriteFile(input, []byte(adsCSV), 0o600))
	output := filepath.Join(dir, "out.csv")
	require.NoError(t, os.WriteFile(output, []byte("previous results\n"), 0o600))

	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"compute", "--input", input, "--output", output})
	require.NoError(t, root.Execute())

	got, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(got), "LinkedIn,image,91000,546\n")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}
