package sizeparse

import "testing"

func TestParse_Table(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		in      string
		want    uint64
		wantErr bool
	}{
		{name: "bare number", in: "1024", want: 1024},
		{name: "kilobytes", in: "1K", want: 1024},
		{name: "megabytes", in: "1M", want: 1024 * 1024},
		{name: "gigabytes default", in: "1G", want: 1024 * 1024 * 1024},
		{name: "fifty megabytes", in: "50M", want: 50 * 1024 * 1024},
		{name: "petabytes", in: "1P", want: 1024 * 1024 * 1024 * 1024 * 1024},
		{name: "lowercase unit", in: "1g", want: 1024 * 1024 * 1024},
		{name: "ibibyte suffix", in: "1GiB", want: 1024 * 1024 * 1024},
		{name: "plain byte suffix", in: "1GB", want: 1024 * 1024 * 1024},
		{name: "fractional value", in: "1.5G", want: uint64(1.5 * 1024 * 1024 * 1024)},
		{name: "leading/trailing whitespace", in: "  1G  ", want: 1024 * 1024 * 1024},
		{name: "empty", in: "", wantErr: true},
		{name: "garbage unit", in: "1X", wantErr: true},
		{name: "garbage value", in: "abc", wantErr: true},
		{name: "negative", in: "-1G", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Parse(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Parse(%q) = %d, nil; want error", tt.in, got)
				}

				return
			}

			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.in, err)
			}

			if got != tt.want {
				t.Errorf("Parse(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}
