package temporal

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// vector is one golden case read from testdata.
type vector struct {
	From         string `yaml:"from"`
	To           string `yaml:"to"`
	In           string `yaml:"in"`
	Since        bool   `yaml:"since"`
	LargestUnit  string `yaml:"largestUnit"`
	SmallestUnit string `yaml:"smallestUnit"`
	RoundingMode string `yaml:"roundingMode"`
	Increment    int64  `yaml:"roundingIncrement"`
	RelativeTo   string `yaml:"relativeTo"`
	Want         string `yaml:"want"`
	Error        bool   `yaml:"error"`
}

func loadVectors(t *testing.T, name string) []vector {
	t.Helper()
	raw, err := os.ReadFile("testdata/" + name)
	require.NoError(t, err)

	var vecs []vector
	require.NoError(t, yaml.Unmarshal(raw, &vecs))
	require.NotEmpty(t, vecs)
	return vecs
}

func (r vector) options(t *testing.T) (opts []Option) {
	t.Helper()
	if r.LargestUnit != "" {
		u, err := ParseUnit(r.LargestUnit)
		require.NoError(t, err)
		opts = append(opts, WithLargestUnit(u))
	}
	if r.SmallestUnit != "" {
		u, err := ParseUnit(r.SmallestUnit)
		require.NoError(t, err)
		opts = append(opts, WithSmallestUnit(u))
	}
	if r.RoundingMode != "" {
		m, err := ParseRoundingMode(r.RoundingMode)
		require.NoError(t, err)
		opts = append(opts, WithRoundingMode(m))
	}
	if r.Increment != 0 {
		opts = append(opts, WithIncrement(r.Increment))
	}
	if r.RelativeTo != "" {
		opts = append(opts, WithRelativeTo(mustDate(r.RelativeTo)))
	}
	return
}

func (r vector) check(t *testing.T, idx int, got Duration, err error) {
	t.Helper()
	if r.Error {
		if err == nil {
			t.Errorf("%s[%d] failed: want error, got %s", t.Name(), idx, got)
		}
		return
	}
	if err != nil {
		t.Errorf("%s[%d] failed: %v", t.Name(), idx, err)
	} else if got.String() != r.Want {
		t.Errorf("%s[%d] failed:\n\twant: %s\n\tgot:  %s", t.Name(), idx, r.Want, got)
	}
}

func TestVectors_dateDifference(t *testing.T) {
	for idx, v := range loadVectors(t, "date_difference.yaml") {
		a, b := mustDate(v.From), mustDate(v.To)
		var (
			got Duration
			err error
		)
		if v.Since {
			got, err = a.Since(b, v.options(t)...)
		} else {
			got, err = a.Until(b, v.options(t)...)
		}
		v.check(t, idx, got, err)
	}
}

func TestVectors_durationRound(t *testing.T) {
	for idx, v := range loadVectors(t, "duration_round.yaml") {
		d, err := ParseDuration(v.In)
		require.NoError(t, err, "%s[%d]", t.Name(), idx)

		got, err := d.Round(v.options(t)...)
		v.check(t, idx, got, err)
	}
}
