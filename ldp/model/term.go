package model

import (
	"fmt"

	"github.com/geoknoesis/rdf-go/rdf"
)

// Term is a value that can appear in a Triple. It mirrors rdf.Term but
// is re-declared here so LDP-level code never has to reach into the
// codec package just to build or compare graph terms.
type Term interface {
	Kind() TermKind
	String() string
}

// TermKind identifies the concrete kind of a Term.
type TermKind uint8

const (
	KindIRI TermKind = iota
	KindBlankNode
	KindLiteral
)

// IRI is an absolute or relative IRI term.
type IRI struct {
	Value string
}

func (i IRI) Kind() TermKind { return KindIRI }
func (i IRI) String() string { return i.Value }

// BlankNode is a locally-scoped blank node identifier.
type BlankNode struct {
	ID string
}

func (b BlankNode) Kind() TermKind { return KindBlankNode }
func (b BlankNode) String() string { return "_:" + b.ID }

// Literal is an RDF literal, optionally typed or language-tagged.
type Literal struct {
	Lexical  string
	Datatype string
	Lang     string
}

func (l Literal) Kind() TermKind { return KindLiteral }

func (l Literal) String() string {
	if l.Lang != "" {
		return fmt.Sprintf("%q@%s", l.Lexical, l.Lang)
	}
	if l.Datatype != "" {
		return fmt.Sprintf("%q^^<%s>", l.Lexical, l.Datatype)
	}
	return fmt.Sprintf("%q", l.Lexical)
}

// Triple is a single RDF statement.
type Triple struct {
	S Term
	P IRI
	O Term
}

// fromRDFTerm converts an rdf-go term into our Term.
func fromRDFTerm(t rdf.Term) Term {
	switch v := t.(type) {
	case rdf.IRI:
		return IRI{Value: v.Value}
	case rdf.BlankNode:
		return BlankNode{ID: v.ID}
	case rdf.Literal:
		return Literal{Lexical: v.Lexical, Datatype: v.Datatype.Value, Lang: v.Lang}
	default:
		// RDF-star quoted triples are outside LDP's scope; fold to a
		// blank node so callers don't have to handle a nil term.
		return BlankNode{ID: "unsupported-term"}
	}
}

// toRDFTerm converts our Term into an rdf-go term for serialization.
func toRDFTerm(t Term) rdf.Term {
	switch v := t.(type) {
	case IRI:
		return rdf.IRI{Value: v.Value}
	case BlankNode:
		return rdf.BlankNode{ID: v.ID}
	case Literal:
		return rdf.Literal{Lexical: v.Lexical, Datatype: rdf.IRI{Value: v.Datatype}, Lang: v.Lang}
	default:
		return rdf.IRI{Value: ""}
	}
}

// FromStatement converts an rdf-go Statement (triple, graph ignored) into
// a model Triple.
func FromStatement(s rdf.Statement) Triple {
	return Triple{
		S: fromRDFTerm(s.S),
		P: IRI{Value: s.P.Value},
		O: fromRDFTerm(s.O),
	}
}

// ToStatement converts a model Triple into an rdf-go Statement suitable
// for writing.
func (t Triple) ToStatement() rdf.Statement {
	return rdf.Statement{
		S: toRDFTerm(t.S),
		P: rdf.IRI{Value: t.P.Value},
		O: toRDFTerm(t.O),
	}
}
