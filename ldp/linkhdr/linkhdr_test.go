package linkhdr

import "testing"

func TestHasRelTypeTarget(t *testing.T) {
	cases := []struct {
		name   string
		header string
		want   bool
	}{
		{"exact match", `<http://www.w3.org/ns/ldp#Resource>; rel="type"`, true},
		{"no whitespace before params", `<http://www.w3.org/ns/ldp#Resource>;rel="type"`, true},
		{"multi-token rel", `<http://www.w3.org/ns/ldp#Resource>; rel="type other-rel"`, true},
		{"different target", `<http://example.org/other>; rel="type"`, false},
		{"different rel", `<http://www.w3.org/ns/ldp#Resource>; rel="describedby"`, false},
		{"empty header", "", false},
		{"multi valued header", `<http://example.org/other>; rel="describedby", <http://www.w3.org/ns/ldp#Resource>; rel="type"`, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := HasRelTypeTarget(c.header, "http://www.w3.org/ns/ldp#Resource"); got != c.want {
				t.Errorf("HasRelTypeTarget(%q) = %v, want %v", c.header, got, c.want)
			}
		})
	}
}

func TestParseParams(t *testing.T) {
	values := Parse(`<http://ex/constraints.html>; rel="http://www.w3.org/ns/ldp#constrainedBy"`)
	if len(values) != 1 {
		t.Fatalf("expected 1 link-value, got %d", len(values))
	}
	if values[0].Target != "http://ex/constraints.html" {
		t.Fatalf("unexpected target: %q", values[0].Target)
	}
	rel := values[0].Params["rel"]
	if len(rel) != 1 || rel[0] != "http://www.w3.org/ns/ldp#constrainedBy" {
		t.Fatalf("unexpected rel params: %v", rel)
	}
}
