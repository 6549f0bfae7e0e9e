package cmd

import (
	"errors"
	"reflect"
	"testing"

	"github.com/dendrascience/dendra-fileops/fileops"
)

func TestParseOperation(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    Operation
		wantErr error
	}{
		{
			name: "xor",
			args: []string{"a.bin", "b.bin", "xor3"},
			want: Operation{Kind: KindXOR, Files: []string{"a.bin", "b.bin"}, N: 3},
		},
		{
			name:    "xor out of range",
			args:    []string{"a.bin", "xor7"},
			wantErr: fileops.ErrInvalidBits,
		},
		{
			name:    "xor without number",
			args:    []string{"a.bin", "xor"},
			wantErr: fileops.ErrInvalidBits,
		},
		{
			name: "mask",
			args: []string{"a.bin", "mask", "0x78"},
			want: Operation{Kind: KindMask, Files: []string{"a.bin"}, Mask: 0x78},
		},
		{
			name:    "mask without file",
			args:    []string{"mask", "ff"},
			wantErr: fileops.ErrMissingArgument,
		},
		{
			name:    "mask not hex",
			args:    []string{"a.bin", "mask", "zz"},
			wantErr: fileops.ErrInvalidMask,
		},
		{
			name: "copy",
			args: []string{"a.txt", "copy15"},
			want: Operation{Kind: KindCopy, Files: []string{"a.txt"}, N: 15},
		},
		{
			name:    "copy zero",
			args:    []string{"a.txt", "copy0"},
			wantErr: fileops.ErrInvalidCopies,
		},
		{
			name:    "copy too many",
			args:    []string{"a.txt", "copy16"},
			wantErr: fileops.ErrInvalidCopies,
		},
		{
			name: "find decodes escapes",
			args: []string{"a.txt", "b.txt", "find", `a\nb`},
			want: Operation{Kind: KindFind, Files: []string{"a.txt", "b.txt"}, Pattern: "a\nb"},
		},
		{
			name:    "find empty",
			args:    []string{"a.txt", "find", ""},
			wantErr: fileops.ErrEmptyPattern,
		},
		{
			name:    "find without file",
			args:    []string{"find", "x"},
			wantErr: fileops.ErrMissingArgument,
		},
		{
			name: "xor wins over a file named mask",
			args: []string{"mask", "xor4"},
			want: Operation{Kind: KindXOR, Files: []string{"mask"}, N: 4},
		},
		{
			name:    "unknown",
			args:    []string{"a.txt", "rot13"},
			wantErr: fileops.ErrUnknownOperation,
		},
		{
			name:    "too few",
			args:    []string{"xor3"},
			wantErr: fileops.ErrMissingArgument,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseOperation(tt.args)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ParseOperation(%q) error = %v, want %v", tt.args, err, tt.wantErr)
				}
				if !errors.Is(err, fileops.ErrUsage) {
					t.Errorf("ParseOperation(%q) error = %v, want a usage error", tt.args, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseOperation(%q) unexpected error = %v", tt.args, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseOperation(%q) = %+v, want %+v", tt.args, got, tt.want)
			}
		})
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"dispatched", nil, ExitDispatched},
		{"usage", fileops.ErrEmptyPattern, ExitUsage},
		{"other", errors.New("write failed"), ExitError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCode(tt.err); got != tt.want {
				t.Errorf("ExitCode(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
