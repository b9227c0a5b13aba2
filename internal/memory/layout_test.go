package memory

import (
	"errors"
	"strings"
	"testing"
)

func TestLayoutValidate(t *testing.T) {
	tests := []struct {
		name    string
		layout  Layout
		wantErr []string
	}{
		{
			name:   "exact fit",
			layout: Layout{{"a", "b"}, {"b", "a"}},
		},
		{
			name:    "too few rows",
			layout:  Layout{{"a", "b"}},
			wantErr: []string{"layout has 1 rows, board has 2"},
		},
		{
			name:    "short row",
			layout:  Layout{{"a", "b"}, {"b"}},
			wantErr: []string{"layout row 1 has 1 columns, board has 2"},
		},
		{
			name:   "every dimension wrong",
			layout: Layout{{"a"}, {"b", "c", "d"}, {"e", "f"}},
			wantErr: []string{
				"layout has 3 rows, board has 2",
				"layout row 0 has 1 columns",
				"layout row 1 has 3 columns",
			},
		},
		{
			name:    "nil row",
			layout:  Layout{{"a", "b"}, nil},
			wantErr: []string{"layout row 1 is nil"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.layout.Validate(2, 2)
			if len(tt.wantErr) == 0 {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			for _, msg := range tt.wantErr {
				if !strings.Contains(err.Error(), msg) {
					t.Errorf("error %q does not mention %q", err, msg)
				}
			}
		})
	}
}

func TestLayoutValidateNil(t *testing.T) {
	var l Layout
	if err := l.Validate(2, 2); !errors.Is(err, ErrNilLayout) {
		t.Errorf("Validate() = %v, want ErrNilLayout", err)
	}
}

func TestLayoutPairable(t *testing.T) {
	if !exampleLayout().Pairable() {
		t.Error("example layout should be pairable")
	}
	if (Layout{{"a", "b"}, {"a", "c"}}).Pairable() {
		t.Error("layout with single b and c should not be pairable")
	}

	counts := exampleLayout().Counts()
	if len(counts) != 8 {
		t.Errorf("example layout has %d types, want 8", len(counts))
	}
	for label, n := range counts {
		if n != 2 {
			t.Errorf("label %q occurs %d times, want 2", label, n)
		}
	}
}
