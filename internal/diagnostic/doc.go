// Package diagnostic collects coded errors and warnings produced while
// applying parameter type definitions, so that one bad entry does not hide
// the others.
//
// Each diagnostic names the parameter type it concerns and may carry
// did-you-mean suggestions and the underlying error.
package diagnostic
