package hep

import "github.com/openbib/marcjson/convert"

// forwardRules is the explicit dispatch table for the raw-to-semantic
// direction. First matching pattern wins.
var forwardRules = []convert.ForwardRule{
	{Name: "public_notes", Pattern: `^500..`, Key: KeyPublicNotes, Policy: convert.Append, Fn: publicNotes},
	{Name: "thesis_info", Pattern: `^502..`, Key: KeyThesisInfo, Policy: convert.Set, Fn: thesisInfo},
	{Name: "abstracts", Pattern: `^520..`, Key: KeyAbstracts, Policy: convert.Append, Fn: abstracts},
	{Name: "funding_info", Pattern: `^536..`, Key: KeyFundingInfo, Policy: convert.Append, Fn: fundingInfo},
	{Name: "license", Pattern: `^540..`, Key: KeyLicense, Policy: convert.Append, Fn: license},
	{Name: "copyright", Pattern: `^542..`, Key: KeyCopyright, Policy: convert.Append, Fn: copyright},
	{Name: "_desy_bookkeeping", Pattern: `^595.D`, Key: KeyDesyBookkeeping, Policy: convert.Append, Fn: desyBookkeeping},
	{Name: "_private_notes_hal", Pattern: `^595.H`, Key: KeyPrivateNotes, Policy: convert.Append, Fn: privateNotesHAL},
	{Name: "_private_notes", Pattern: `^595.[^DH]`, Key: KeyPrivateNotes, Policy: convert.Append, Fn: privateNotes},
}

// backwardRules mirrors forwardRules keyed by semantic key. Keys are
// visited in sorted order, so _export_to emits its flag occurrence on
// 595 before _private_notes appends the notes, and public_notes queues
// 500 notes before thesis_info appends its synthesized one.
var backwardRules = []convert.BackwardRule{
	{Name: "public_notes2marc", Pattern: `^public_notes$`, Tag: TagNotes, Policy: convert.Append, Fn: publicNotes2MARC},
	{Name: "thesis_info2marc", Pattern: `^thesis_info$`, Tag: TagThesis, Policy: convert.Append, Fn: thesisInfo2MARC},
	{Name: "abstracts2marc", Pattern: `^abstracts$`, Tag: TagAbstracts, Policy: convert.Append, Fn: abstracts2MARC},
	{Name: "funding_info2marc", Pattern: `^funding_info$`, Tag: TagFunding, Policy: convert.Append, Fn: fundingInfo2MARC},
	{Name: "license2marc", Pattern: `^license$`, Tag: TagLicense, Policy: convert.Append, Fn: license2MARC},
	{Name: "copyright2marc", Pattern: `^copyright$`, Tag: TagCopyright, Policy: convert.Append, Fn: copyright2MARC},
	{Name: "_private_notes2marc", Pattern: `^_private_notes$`, Tag: TagPrivate, Policy: convert.Append, Fn: privateNotes2MARC},
	{Name: "_export_to2marc", Pattern: `^_export_to$`, Tag: TagPrivate, Policy: convert.Append, Fn: exportTo2MARC},
	{Name: "_desy_bookkeeping2marc", Pattern: `^_desy_bookkeeping$`, Tag: TagDesy, Policy: convert.Append, Fn: desyBookkeeping2MARC},
}

var defaultTable = convert.MustTable(forwardRules, backwardRules)

// Table returns the compiled rule table for the 5xx family.
func Table() *convert.Table {
	return defaultTable
}
