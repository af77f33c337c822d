package yamlutil

import (
	"errors"
	"strings"
	"testing"
)

type testDoc struct {
	Name  string `yaml:"name"`
	Count int    `yaml:"count"`
}

func TestUnmarshal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    []byte
		wantErr error
	}{
		{
			name: "valid document",
			data: []byte("name: hello\ncount: 3\n"),
		},
		{
			name:    "empty data",
			data:    nil,
			wantErr: ErrNilData,
		},
		{
			name: "unknown field tolerated",
			data: []byte("name: hello\nextra: 1\n"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var doc testDoc
			err := Unmarshal(tt.data, &doc)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Unmarshal() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unmarshal() error = %v", err)
			}
		})
	}
}

func TestUnmarshal_NilDestination(t *testing.T) {
	t.Parallel()

	if err := Unmarshal([]byte("a: 1"), nil); !errors.Is(err, ErrNilDestination) {
		t.Errorf("Unmarshal() error = %v, want ErrNilDestination", err)
	}
}

func TestUnmarshal_InputTooLarge(t *testing.T) {
	t.Parallel()

	big := []byte("name: " + strings.Repeat("x", MaxInputSize))
	var doc testDoc
	if err := Unmarshal(big, &doc); !errors.Is(err, ErrInputTooLarge) {
		t.Errorf("Unmarshal() error = %v, want ErrInputTooLarge", err)
	}
}

func TestUnmarshalStrict_RejectsUnknownFields(t *testing.T) {
	t.Parallel()

	var doc testDoc
	err := UnmarshalStrict([]byte("name: hello\nextra: 1\n"), &doc)
	if err == nil {
		t.Error("UnmarshalStrict() should reject unknown fields")
	}
}

func TestUnmarshalStrict_Valid(t *testing.T) {
	t.Parallel()

	var doc testDoc
	if err := UnmarshalStrict([]byte("name: hello\ncount: 7\n"), &doc); err != nil {
		t.Fatalf("UnmarshalStrict() error = %v", err)
	}
	if doc.Name != "hello" || doc.Count != 7 {
		t.Errorf("UnmarshalStrict() = %+v, want name=hello count=7", doc)
	}
}
