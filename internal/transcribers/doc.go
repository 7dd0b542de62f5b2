// Package transcribers turns uploaded files into plain text.
//
// Each sub-package implements driven.Transcriber for a family of MIME
// types; the Registry selects among them by type and priority and
// exposes the total driven.FileTranscriber contract: callers always get
// a string back. Decode failures and formats with no registered decoder
// degrade to placeholder text, logged as warnings.
//
// DefaultRegistry registers plain text decoding and the universal stub
// fallback, which is the minimal configuration the ingestion pipeline
// requires. The PDF transcriber is an optional extra the application
// wires in at startup.
package transcribers
