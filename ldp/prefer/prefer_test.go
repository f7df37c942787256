package prefer

import "testing"

func TestParseEmptyHeader(t *testing.T) {
	p := Parse("")
	if p.Explicit {
		t.Fatal("empty header must not be explicit")
	}
	if p.Applied() {
		t.Fatal("empty header can never be applied")
	}
}

func TestParseIncludeContainment(t *testing.T) {
	p := Parse(`return=representation; include="http://www.w3.org/ns/ldp#PreferContainment"`)
	if !p.ReturnRepresentation {
		t.Fatal("expected ReturnRepresentation")
	}
	if !p.IncludesContainment() {
		t.Fatal("expected containment include to be recognized")
	}
	if !p.ShouldEmitContainment() {
		t.Fatal("include should force emission")
	}
	if !p.Applied() {
		t.Fatal("an honored include token must set Applied")
	}
}

func TestParseOmitMembership(t *testing.T) {
	p := Parse(`return=representation; omit="http://www.w3.org/ns/ldp#PreferMembership"`)
	if !p.OmitsMembership() {
		t.Fatal("expected membership omit to be recognized")
	}
	if p.ShouldEmitMembership() {
		t.Fatal("omit must suppress emission")
	}
}

func TestParseMinimalBareToken(t *testing.T) {
	p := Parse(`return=representation; minimal`)
	if !p.Minimal {
		t.Fatal("bare 'minimal' token must set Minimal")
	}
	if p.ShouldEmitContainment() || p.ShouldEmitMembership() {
		t.Fatal("minimal must suppress both containment and membership")
	}
}

func TestParseMinimalContainerAlias(t *testing.T) {
	p := Parse(`return=representation; include="http://www.w3.org/ns/ldp#PreferEmptyContainer"`)
	if !p.IncludesMinimal() {
		t.Fatal("PreferEmptyContainer must be recognized as the minimal alias")
	}
}

func TestMatchesDotEscaping(t *testing.T) {
	token := "http://www.w3.org/ns/ldp#PreferContainment"

	if !Matches([]string{token}, token) {
		t.Fatal("expected an exact token match")
	}

	// Replace one of the token's literal '.' characters with 'X'. If '.'
	// were left unescaped in the compiled matcher, it would act as a
	// regex wildcard and still match here.
	withSubstitutedDot := "http://wwwXw3.org/ns/ldp#PreferContainment"
	if Matches([]string{withSubstitutedDot}, token) {
		t.Fatal("'.' in an LDP preference token must be matched literally, not as a wildcard")
	}
}

func TestIncludeAndOmitAreDistinctSlots(t *testing.T) {
	p := Parse(`return=representation; include="http://www.w3.org/ns/ldp#PreferContainment"; omit="http://www.w3.org/ns/ldp#PreferMembership"`)
	if !p.IncludesContainment() || !p.OmitsMembership() {
		t.Fatal("include and omit tokens on the same header must both be recognized")
	}
}
