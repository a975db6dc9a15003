// Package batch formats many documents: it finds them, runs the formatter
// over them with bounded parallelism and writes the results.
//
// Documents are independent. A document that fails to parse is reported in
// its [Result] and does not stop the others.
package batch
