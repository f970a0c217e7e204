package size

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		spec    string
		want    int64
		wantErr bool
	}{
		{spec: "16K", want: 16384},
		{spec: "16k", want: 16384},
		{spec: "2M", want: 2097152},
		{spec: "2m", want: 2097152},
		{spec: "1G", want: 1 << 30},
		{spec: "512", want: 512},
		{spec: "0", want: 0},
		{spec: "", wantErr: true},
		{spec: "10X", wantErr: true},
		{spec: "10KB", wantErr: true},
		{spec: "K", wantErr: true},
		{spec: "-1K", wantErr: true},
		{spec: " 1K", wantErr: true},
		{spec: "99999999999G", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			got, err := Parse(tt.spec)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tt.spec, err, tt.wantErr)
			}
			if err != nil {
				if !errors.Is(err, ErrInvalidSpec) {
					t.Errorf("Parse(%q) error = %v, want ErrInvalidSpec", tt.spec, err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %d, want %d", tt.spec, got, tt.want)
			}
		})
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{0, "0"},
		{512, "512"},
		{16384, "16K"},
		{8192 + 1, "8193"},
		{2 << 20, "2M"},
		{3 << 30, "3G"},
	}
	for _, tt := range tests {
		if got := Format(tt.n); got != tt.want {
			t.Errorf("Format(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestFormatParseAgree(t *testing.T) {
	for _, n := range []int64{1, 1000, 4096, 16384, 5 << 20, 1 << 30} {
		got, err := Parse(Format(n))
		if err != nil {
			t.Fatalf("Parse(Format(%d)): %v", n, err)
		}
		if got != n {
			t.Errorf("Parse(Format(%d)) = %d", n, got)
		}
	}
}
