package main

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JesseCoretta/go-chronos"
	"github.com/JesseCoretta/go-chronos/config"
	"github.com/JesseCoretta/go-chronos/serde"
	"github.com/JesseCoretta/go-chronos/wellknown"
)

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err = root.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func TestDate(t *testing.T) {
	out, _, err := execute(t, "date", "2021-060")
	require.NoError(t, err)
	for _, line := range []string{
		"date:        2021-03-01",
		"ordinal:     2021-060",
		"iso week:    2021-W09-1",
		"weekday:     Monday",
		"leap year:   false",
	} {
		assert.Contains(t, out, line)
	}

	out, _, err = execute(t, "date", "2021-03-01", "-o", "json", "-c", "workday")
	require.NoError(t, err)
	var view map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &view))
	assert.Equal(t, "2021-03-01", view["date"])
	assert.Equal(t, float64(2459275), view["julian_day"])

	_, _, err = execute(t, "date", "2021-03-06", "--constraint", "workday")
	assert.Error(t, err)
	_, _, err = execute(t, "date", "2021-03-06", "--constraint", "holiday")
	assert.Error(t, err)
	_, _, err = execute(t, "date", "2021-02-29")
	assert.ErrorIs(t, err, chronos.ComponentRange{Name: "day"})
}

func TestArithmetic(t *testing.T) {
	for idx, tc := range []struct {
		args []string
		want string
	}{
		{[]string{"add", "2021-01-31T12:00:00Z", "P1DT6H"}, "2021-02-01T18:00:00Z\n"},
		{[]string{"sub", "2021-03-01T00:00:00+01:00", "PT1H"}, "2021-02-28T23:00:00+01:00\n"},
		{[]string{"diff", "2021-03-01T00:00:00Z", "2021-02-01T00:00:00Z"}, "P28D\n"},
		{[]string{"diff", "2021-02-01T01:30:00+01:00", "2021-02-01T00:00:00Z"}, "PT30M\n"},
		{[]string{"diff", "2021-02-01T00:00:00Z", "2021-02-01T01:30:00+01:00"}, "-PT30M\n"},
		{[]string{"convert", "2021-01-01T00:00:00Z", "--to", "-05:00"}, "2020-12-31T19:00:00-05:00\n"},
		{[]string{"convert", "2021-01-01T00:00:00Z", "--to=-05:30"}, "2020-12-31T18:30:00-05:30\n"},
		{[]string{"convert", "-t", "-03:00", "2021-01-01T00:00:00Z"}, "2020-12-31T21:00:00-03:00\n"},
		{[]string{"add", "--", "2021-01-01T00:00:00Z", "-PT90M"}, "2020-12-31T22:30:00Z\n"},
		{[]string{"sub", "--", "2021-01-01T00:00:00Z", "-P1D"}, "2021-01-02T00:00:00Z\n"},
		{[]string{"add", "-f", "iso8601", "2021-01-01T00:00", "PT0.5S"}, "2021-01-01T00:00:00.500000000Z\n"},
	} {
		out, _, err := execute(t, tc.args...)
		require.NoError(t, err, "case %d", idx)
		assert.Equal(t, tc.want, out, "case %d", idx)
	}

	out, _, err := execute(t, "diff", "-o", "json", "2021-03-01T00:00:00Z", "2021-02-01T00:00:00Z")
	require.NoError(t, err)
	assert.JSONEq(t, `{"duration": "P28D", "compact": [2419200, 0]}`, out)

	out, _, err = execute(t, "convert", "-o", "yaml", "2021-01-01T00:00:00Z", "--to", "+01:00")
	require.NoError(t, err)
	assert.Contains(t, out, "2021-01-01T01:00:00.000000000+01:00")

	_, _, err = execute(t, "add", "2021-01-01T00:00:00Z", "P999999999D")
	assert.ErrorIs(t, err, errOutOfRange)
	_, _, err = execute(t, "add", "2021-01-01T00:00:00Z", "P1M")
	assert.Error(t, err)
	_, _, err = execute(t, "add", "2021-01-01", "P1D")
	assert.Error(t, err)
	_, _, err = execute(t, "convert", "2021-01-01T00:00:00Z", "--to", "+25:00")
	assert.Error(t, err)
	_, _, err = execute(t, "convert", "2021-01-01T00:00:00Z")
	assert.Error(t, err)
}

func TestNow(t *testing.T) {
	out, _, err := execute(t, "now")
	require.NoError(t, err)
	now, err := wellknown.ParseOffsetDateTime(wellknown.RFC3339, strings.TrimSpace(out))
	require.NoError(t, err)
	assert.True(t, now.Offset().IsUTC())

	t.Setenv("TZ", "Asia/Tokyo")
	out, _, err = execute(t, "now", "--local")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(out, "+09:00\n"), out)

	t.Setenv("CHRONOS_LOCAL_OFFSET", "disabled")
	_, _, err = execute(t, "now", "--local")
	assert.ErrorIs(t, err, config.ErrCapabilityDisabled)
}

func TestRandom(t *testing.T) {
	_, _, err := execute(t, "random")
	assert.ErrorIs(t, err, config.ErrCapabilityDisabled)

	t.Setenv("CHRONOS_RAND", "true")
	t.Setenv("CHRONOS_SEED", "42")

	args := []string{"random", "-n", "5", "-c", "weekend", "-o", "json", "--from", "2000-01-01", "--to", "2000-12-31"}
	out, _, err := execute(t, args...)
	require.NoError(t, err)

	var got []serde.OffsetDateTime
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 5)
	for _, odt := range got {
		assert.Equal(t, int32(2000), odt.Year())
		wd := odt.Weekday()
		assert.True(t, wd == chronos.Saturday || wd == chronos.Sunday, wd.String())
	}

	again, _, err := execute(t, args...)
	require.NoError(t, err)
	assert.Equal(t, out, again)

	out, _, err = execute(t, "random", "-n", "3")
	require.NoError(t, err)
	assert.Equal(t, 3, strings.Count(out, "\n"))

	_, _, err = execute(t, "random", "-n", "0")
	assert.Error(t, err)
}

func TestConfiguration(t *testing.T) {
	t.Setenv("CHRONOS_OUTPUT", "xml")
	_, _, err := execute(t, "now")
	assert.ErrorIs(t, err, config.ErrInvalid)

	// a flag repairs the invalid setting
	_, _, err = execute(t, "now", "-o", "text")
	assert.NoError(t, err)

	t.Setenv("LOG_LEVEL", "debug")
	_, logs, err := execute(t, "now", "-o", "json")
	require.NoError(t, err)
	assert.Contains(t, logs, `"msg":"configured"`)

	out, _, err := execute(t, "env")
	require.NoError(t, err)
	assert.Contains(t, out, "CHRONOS_OUTPUT")
}
