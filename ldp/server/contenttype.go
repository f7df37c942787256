package server

import "github.com/go-ldp/ldpserver/ldp/rdfcodec"

// requestSyntax validates a request's Content-Type against the three
// recognized RDF syntaxes.
func requestSyntax(contentType string) (rdfcodec.Syntax, error) {
	syntax, ok := rdfcodec.SyntaxForContentType(contentType)
	if !ok {
		return 0, unsupportedMediaTypeError{contentType: contentType}
	}
	return syntax, nil
}
