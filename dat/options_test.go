package dat

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestOptionsValidate(t *testing.T) {
	tmpDir := t.TempDir()
	plainFile := filepath.Join(tmpDir, "file.txt")
	os.WriteFile(plainFile, []byte("x"), 0644)

	valid := func() Options {
		o := DefaultOptions()
		o.Source = tmpDir
		o.Output = filepath.Join(tmpDir, "out.dat")
		return o
	}

	tests := []struct {
		name    string
		mutate  func(*Options)
		wantErr error
	}{
		{
			name:    "valid options",
			mutate:  func(o *Options) {},
			wantErr: nil,
		},
		{
			name:    "missing source",
			mutate:  func(o *Options) { o.Source = "" },
			wantErr: ErrNoSource,
		},
		{
			name:    "missing output",
			mutate:  func(o *Options) { o.Output = "" },
			wantErr: ErrNoOutput,
		},
		{
			name:    "source does not exist",
			mutate:  func(o *Options) { o.Source = filepath.Join(tmpDir, "nope") },
			wantErr: os.ErrNotExist,
		},
		{
			name:    "source is a file",
			mutate:  func(o *Options) { o.Source = plainFile },
			wantErr: ErrSourceNotDir,
		},
		{
			name:    "negative depth",
			mutate:  func(o *Options) { o.GameDepth = -1 },
			wantErr: ErrNegativeDepth,
		},
		{
			name:    "bad loose policy",
			mutate:  func(o *Options) { o.LooseFiles = "maybe" },
			wantErr: ErrBadLoosePolicy,
		},
		{
			name:    "bad forcepacking",
			mutate:  func(o *Options) { o.Header.ForcePacking = "zip" },
			wantErr: ErrBadForcePacking,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := valid()
			tt.mutate(&o)
			err := o.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() unexpected error = %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestParseLoosePolicy(t *testing.T) {
	for _, valid := range []string{"strip", "parent"} {
		if _, err := ParseLoosePolicy(valid); err != nil {
			t.Errorf("ParseLoosePolicy(%q) error = %v", valid, err)
		}
	}
	for _, invalid := range []string{"", "Strip", "discard"} {
		if _, err := ParseLoosePolicy(invalid); !errors.Is(err, ErrBadLoosePolicy) {
			t.Errorf("ParseLoosePolicy(%q) error = %v, want ErrBadLoosePolicy", invalid, err)
		}
	}
}

func TestParseForcePacking(t *testing.T) {
	for _, valid := range []string{"", "fileonly", "archive", "split"} {
		if _, err := ParseForcePacking(valid); err != nil {
			t.Errorf("ParseForcePacking(%q) error = %v", valid, err)
		}
	}
	if _, err := ParseForcePacking("zip"); !errors.Is(err, ErrBadForcePacking) {
		t.Errorf("ParseForcePacking(\"zip\") error = %v, want ErrBadForcePacking", err)
	}
}
