package docparser

import "testing"

func TestParseParamTags(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want []ParamTag
	}{
		{
			name: "typed and named params",
			doc:  "Creates a post.\n@param string $title\n@param string $body",
			want: []ParamTag{{Type: "string", Name: "title"}, {Type: "string", Name: "body"}},
		},
		{
			name: "comment decoration stripped",
			doc:  "// Show one post.\n// @param string id",
			want: []ParamTag{{Type: "string", Name: "id"}},
		},
		{
			name: "block comment style",
			doc:  "/**\n * @param int $count\n */",
			want: []ParamTag{{Type: "int", Name: "count"}},
		},
		{
			name: "type only",
			doc:  "@param string",
			want: []ParamTag{{Type: "string"}},
		},
		{
			name: "bare tag keeps its slot",
			doc:  "@param\n@param int $second",
			want: []ParamTag{{}, {Type: "int", Name: "second"}},
		},
		{
			name: "no param tags",
			doc:  "Just prose, nothing else.",
			want: nil,
		},
		{
			name: "longer tags are not params",
			doc:  "@parameters int $x\n@paramFoo string $y\n@param int $kept",
			want: []ParamTag{{Type: "int", Name: "kept"}},
		},
		{
			name: "empty doc",
			doc:  "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseParamTags(tt.doc)
			if len(got) != len(tt.want) {
				t.Fatalf("expected %d tags, got %d: %+v", len(tt.want), len(got), got)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("tag %d: expected %+v, got %+v", i, tt.want[i], got[i])
				}
			}
		})
	}
}

func TestUnrecognizedTagsDiscarded(t *testing.T) {
	doc := `Does something.
@return string
@throws SomethingBadException
@author someone@example.com
@deprecated since 4.0
@see OtherClass
@api
@param string $kept`

	got := ParseParamTags(doc)
	if len(got) != 1 {
		t.Fatalf("expected exactly the @param tag, got %+v", got)
	}
	if got[0].Type != "string" || got[0].Name != "kept" {
		t.Errorf("unexpected tag: %+v", got[0])
	}
}
