// Package hep holds the transformation rules for the 5xx field
// family: notes, thesis metadata, abstracts, funding, licensing,
// copyright, private notes, export flags and internal bookkeeping.
//
// Forward rules consume tag-addressed occurrences and populate
// semantic keys; backward rules reverse the mapping. Two mappings are
// intentionally lossy and do not round-trip:
//
//   - copyright material: the forward rule reads subfield e and falls
//     back to subfield 3, the backward rule reconstructs only e;
//   - degree types: forward synonyms (THESIS, RAPPORT DE STAGE,
//     INTERNSHIP REPORT all map to "other"; PHD, PDF, PH.D. THESIS
//     all map to "phd") come back as one canonical textual form.
//
// Everything else round-trips modulo subfield ordering.
package hep
