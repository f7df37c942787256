// Package rdfcodec parses and serializes the three RDF syntaxes the LDP
// core recognizes, wrapping github.com/geoknoesis/rdf-go.
package rdfcodec

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/url"

	"github.com/geoknoesis/rdf-go/rdf"

	"github.com/go-ldp/ldpserver/ldp/model"
)

// Syntax identifies one of the three recognized RDF media types.
type Syntax int

const (
	Turtle Syntax = iota
	JSONLD
	RDFXML
)

// NegotiationOrder is the server's media type preference for content
// negotiation: Turtle first, then JSON-LD/JSON, then RDF/XML.
var NegotiationOrder = []Syntax{Turtle, JSONLD, RDFXML}

func (s Syntax) ContentType() string {
	switch s {
	case Turtle:
		return "text/turtle"
	case JSONLD:
		return "application/ld+json"
	case RDFXML:
		return "application/rdf+xml"
	default:
		return ""
	}
}

// SyntaxForContentType maps a request/response Content-Type (ignoring
// parameters) onto a recognized Syntax. application/json is accepted as
// an alias for JSON-LD.
func SyntaxForContentType(contentType string) (Syntax, bool) {
	mt, _, _ := parseMediaType(contentType)
	switch mt {
	case "text/turtle":
		return Turtle, true
	case "application/ld+json", "application/json":
		return JSONLD, true
	case "application/rdf+xml":
		return RDFXML, true
	default:
		return 0, false
	}
}

func parseMediaType(contentType string) (string, map[string]string, error) {
	i := bytes.IndexByte([]byte(contentType), ';')
	if i < 0 {
		return trimLower(contentType), nil, nil
	}
	return trimLower(contentType[:i]), nil, nil
}

func trimLower(s string) string {
	start, end := 0, len(s)
	for start < end && (s[start] == ' ' || s[start] == '\t') {
		start++
	}
	for end > start && (s[end-1] == ' ' || s[end-1] == '\t') {
		end--
	}
	b := []byte(s[start:end])
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c - 'A' + 'a'
		}
	}
	return string(b)
}

func (s Syntax) rdfFormat() rdf.Format {
	switch s {
	case Turtle:
		return rdf.FormatTurtle
	case JSONLD:
		return rdf.FormatJSONLD
	case RDFXML:
		return rdf.FormatRDFXML
	default:
		return rdf.FormatAuto
	}
}

// ParseError wraps a syntax error from the underlying RDF parser; the
// controller maps it to HTTP 400.
type ParseError struct {
	Syntax Syntax
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("rdfcodec: parse error (%s): %v", e.Syntax.ContentType(), e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Parse decodes body (UTF-8) in the given syntax, resolving relative IRIs
// against baseIRI, and returns the resulting graph.
func Parse(body []byte, baseIRI string, syntax Syntax) (*model.Graph, error) {
	r, err := rdf.NewReader(bytes.NewReader(body), syntax.rdfFormat())
	if err != nil {
		return nil, &ParseError{Syntax: syntax, Err: err}
	}
	defer r.Close()

	g := model.NewGraph()
	base, baseErr := url.Parse(baseIRI)

	for {
		stmt, err := r.Next()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, &ParseError{Syntax: syntax, Err: err}
		}
		t := model.FromStatement(stmt)
		if baseErr == nil {
			t.S = resolveTerm(t.S, base)
			t.O = resolveTerm(t.O, base)
		}
		g.Add(t)
	}
	return g, nil
}

// resolveTerm resolves a relative IRI term against base; blank nodes and
// literals pass through unchanged.
func resolveTerm(t model.Term, base *url.URL) model.Term {
	iri, ok := t.(model.IRI)
	if !ok {
		return t
	}
	u, err := url.Parse(iri.Value)
	if err != nil {
		return t
	}
	if u.IsAbs() {
		return t
	}
	return model.IRI{Value: base.ResolveReference(u).String()}
}

// ldpPrefixDirective declares the ldp: namespace in Turtle output. The
// streaming writer does not expose prefix configuration, so the
// directive is written ahead of the encoded statements; the statements
// themselves carry absolute IRIs, which the directive does not alter.
const ldpPrefixDirective = "@prefix ldp: <http://www.w3.org/ns/ldp#> .\n"

// Serialize encodes every triple in g, in the given syntax, into a UTF-8
// byte string.
func Serialize(g *model.Graph, syntax Syntax) ([]byte, error) {
	var buf bytes.Buffer
	if syntax == Turtle {
		buf.WriteString(ldpPrefixDirective)
	}
	w, err := rdf.NewWriter(&buf, syntax.rdfFormat())
	if err != nil {
		return nil, fmt.Errorf("rdfcodec: serialize: %w", err)
	}
	for _, t := range g.Triples() {
		if err := w.Write(t.ToStatement()); err != nil {
			return nil, fmt.Errorf("rdfcodec: serialize: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		return nil, fmt.Errorf("rdfcodec: serialize: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("rdfcodec: serialize: %w", err)
	}
	return buf.Bytes(), nil
}

// ParseContext is a context-aware variant of Parse, used where the
// request's cancellation should abort a slow parse of a large body.
func ParseContext(ctx context.Context, body []byte, baseIRI string, syntax Syntax) (*model.Graph, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return Parse(body, baseIRI, syntax)
}
