// Package marc models tag-addressed flat bibliographic records in the
// MARC-in-JSON style: a record maps tags ("500__", "595_D") to one or
// more field occurrences, and each occurrence maps single-character
// subfield codes to values.
//
// Subfield multiplicity is data-dependent: the same code may carry a
// single string in one record and a list in the next. Value absorbs
// that distinction; Value.List and Value.Single are the two
// normalizations rules work with.
package marc
