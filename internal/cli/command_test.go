package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func runExec(t *testing.T, args []string) (code int, stdout, stderr string) {
	t.Helper()

	var out, errOut bytes.Buffer

	o := NewIO(&out, &errOut)
	code = Exec(context.Background(), o, args)

	return code, out.String(), errOut.String()
}

func TestExec_NoArgumentsFailsWithMissingInputsMessage(t *testing.T) {
	code, _, stderr := runExec(t, nil)

	if code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}

	if !strings.Contains(stderr, "required parameter are --reads and --mates") {
		t.Fatalf("stderr = %q, want it to contain the missing-inputs message", stderr)
	}
}

func TestExec_MismatchedInputCountsFails(t *testing.T) {
	code, _, stderr := runExec(t, []string{"-1", "a.fq,b.fq", "-2", "c.fq"})

	if code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}

	if !strings.Contains(stderr, "ERROR Number of first and second read files are different") {
		t.Fatalf("stderr = %q, want the unequal-counts message", stderr)
	}
}

func TestExec_VersionPrintsVPrefixedVersion(t *testing.T) {
	code, stdout, _ := runExec(t, []string{"--version"})

	if code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}

	want := "v" + Version
	if !strings.Contains(stdout, want) {
		t.Fatalf("stdout = %q, want it to contain %q", stdout, want)
	}
}

func TestExec_HelpPrintsUsage(t *testing.T) {
	code, stdout, _ := runExec(t, []string{"--help"})

	if code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}

	if !strings.Contains(stdout, "Usage: fastq-shuffle") {
		t.Fatalf("stdout = %q, want a usage line", stdout)
	}
}

func TestExec_CommaSeparatedAndRepeatedReadsAreFlattened(t *testing.T) {
	pf, err := parse([]string{"-1", "a.fq,b.fq", "-1", "c.fq", "-2", "x.fq,y.fq,z.fq"})
	require.NoError(t, err)
	require.Equal(t, []string{"a.fq", "b.fq", "c.fq"}, pf.reads)
	require.Len(t, pf.mates, 3)
}

func TestParseNumTempFiles_LenientFallback(t *testing.T) {
	cases := []struct {
		raw      string
		wantN    *int
		wantWarn bool
	}{
		{"auto", nil, false},
		{"", nil, false},
		{"not-a-number", nil, true},
		{"-3", nil, true},
		{"0", nil, true},
	}

	for _, tt := range cases {
		n, warn := parseNumTempFiles(tt.raw)

		if (n == nil) != (tt.wantN == nil) {
			t.Errorf("parseNumTempFiles(%q) n = %v, want nil-ness %v", tt.raw, n, tt.wantN == nil)
		}

		if (warn != "") != tt.wantWarn {
			t.Errorf("parseNumTempFiles(%q) warn = %q, want non-empty=%v", tt.raw, warn, tt.wantWarn)
		}
	}

	n, warn := parseNumTempFiles("6")
	if n == nil || *n != 6 {
		t.Fatalf("parseNumTempFiles(6) n = %v, want 6", n)
	}

	if warn != "" {
		t.Fatalf("parseNumTempFiles(6) warn = %q, want empty", warn)
	}
}
