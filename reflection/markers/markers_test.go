package markers

import (
	"errors"
	"testing"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Marker
		wantErr bool
	}{
		{
			name:  "bare marker",
			input: "NotEmpty",
			want:  Marker{Name: "NotEmpty", Options: map[string]string{}},
		},
		{
			name:  "empty argument list",
			input: "NotEmpty()",
			want:  Marker{Name: "NotEmpty", Options: map[string]string{}},
		},
		{
			name:  "keyed arguments",
			input: "StringLength(minimum=3, maximum=100)",
			want: Marker{Name: "StringLength", Options: map[string]string{
				"minimum": "3",
				"maximum": "100",
			}},
		},
		{
			name:  "quoted values",
			input: `Validate(argumentName="title", type="NotEmpty")`,
			want: Marker{Name: "Validate", Options: map[string]string{
				"argumentName": "title",
				"type":         "NotEmpty",
			}},
		},
		{
			name:  "positional arguments",
			input: `Cascade("remove")`,
			want: Marker{Name: "Cascade", Options: map[string]string{
				"0": "remove",
			}},
		},
		{
			name:  "comma inside quotes",
			input: `RegularExpression(regularExpression="^[a-z]{1,5}$")`,
			want: Marker{Name: "RegularExpression", Options: map[string]string{
				"regularExpression": "^[a-z]{1,5}$",
			}},
		},
		{
			name:    "empty input",
			input:   "   ",
			wantErr: true,
		},
		{
			name:    "missing closing parenthesis",
			input:   "StringLength(minimum=3",
			wantErr: true,
		},
		{
			name:    "name is not an identifier",
			input:   "String Length(minimum=3)",
			wantErr: true,
		},
		{
			name:    "unterminated quote",
			input:   `Validate(argumentName="title)`,
			wantErr: true,
		},
		{
			name:    "key is not an identifier",
			input:   "StringLength(mini mum=3)",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %+v", got)
				}
				var malformed *MalformedMarkerError
				if !errors.As(err, &malformed) {
					t.Errorf("expected MalformedMarkerError, got %T", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Name != tt.want.Name {
				t.Errorf("name: expected %s, got %s", tt.want.Name, got.Name)
			}
			if len(got.Options) != len(tt.want.Options) {
				t.Fatalf("options: expected %v, got %v", tt.want.Options, got.Options)
			}
			for k, v := range tt.want.Options {
				if got.Options[k] != v {
					t.Errorf("option %s: expected %q, got %q", k, v, got.Options[k])
				}
			}
		})
	}
}

func TestDecodeList(t *testing.T) {
	t.Run("multiple markers", func(t *testing.T) {
		got, err := DecodeList("NotEmpty;StringLength(minimum=3, maximum=100)")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("expected 2 markers, got %d", len(got))
		}
		if got[0].Name != "NotEmpty" || got[1].Name != "StringLength" {
			t.Errorf("unexpected markers: %+v", got)
		}
	})

	t.Run("empty segments skipped", func(t *testing.T) {
		got, err := DecodeList(";NotEmpty;;")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 {
			t.Errorf("expected 1 marker, got %d", len(got))
		}
	})

	t.Run("malformed entry fails whole list", func(t *testing.T) {
		_, err := DecodeList("NotEmpty;Broken(")
		if err == nil {
			t.Error("expected error for malformed list entry")
		}
	})
}

func TestMarkerOptions(t *testing.T) {
	marker := Marker{Name: "StringLength", Options: map[string]string{"minimum": "3", "label": "x"}}

	n, err := marker.IntOption("minimum")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 3 {
		t.Errorf("expected 3, got %d", n)
	}

	if _, err := marker.IntOption("label"); err == nil {
		t.Error("expected error for non-integer option")
	}
	if _, err := marker.IntOption("absent"); err == nil {
		t.Error("expected error for missing option")
	}
	if !marker.HasOption("label") || marker.HasOption("absent") {
		t.Error("HasOption misreported")
	}
}

func TestMarkersNamed(t *testing.T) {
	meta := MethodMeta{Markers: []Marker{
		{Name: "Validate", Options: map[string]string{"argumentName": "a"}},
		{Name: "IgnoreValidation", Options: map[string]string{"argumentName": "b"}},
		{Name: "Validate", Options: map[string]string{"argumentName": "c"}},
	}}

	validates := meta.MarkersNamed("Validate")
	if len(validates) != 2 {
		t.Fatalf("expected 2 Validate markers, got %d", len(validates))
	}
	if validates[0].Option("argumentName") != "a" || validates[1].Option("argumentName") != "c" {
		t.Error("declaration order not preserved")
	}
}
