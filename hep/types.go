package hep

import (
	"github.com/openbib/marcjson/convert"
	"github.com/openbib/marcjson/record"
)

// Semantic is the engine's semantic-record form, re-exported for
// callers working with this family.
type Semantic = convert.Semantic

// Semantic keys owned by this family.
const (
	KeyPublicNotes     = "public_notes"
	KeyThesisInfo      = "thesis_info"
	KeyAbstracts       = "abstracts"
	KeyFundingInfo     = "funding_info"
	KeyLicense         = "license"
	KeyCopyright       = "copyright"
	KeyPrivateNotes    = "_private_notes"
	KeyExportTo        = "_export_to"
	KeyDesyBookkeeping = "_desy_bookkeeping"
)

// Raw tags this family reads and writes.
const (
	TagNotes      = "500__"
	TagThesis     = "502__"
	TagAbstracts  = "520__"
	TagFunding    = "536__"
	TagLicense    = "540__"
	TagCopyright  = "542__"
	TagPrivate    = "595__"
	TagDesy       = "595_D"
	TagPrivateHAL = "595_H"
)

// Note is one attributed note entry. Value is required; Source is the
// collapsed attribution subfield.
type Note struct {
	Source string `json:"source,omitempty"`
	Value  string `json:"value"`
}

// Abstract is one attributed abstract entry.
type Abstract struct {
	Source string `json:"source,omitempty"`
	Value  string `json:"value"`
}

// Institution is a thesis-granting institution, optionally carrying a
// resolved cross-reference when the raw name/recid lists could be
// paired.
type Institution struct {
	CuratedRelation bool        `json:"curated_relation,omitempty"`
	Name            string      `json:"name"`
	Record          *record.Ref `json:"record,omitempty"`
}

// ThesisInfo accumulates from two independent tags: 500 contributes
// DefenseDate, 502 the rest. It tolerates either tag arriving first
// or not at all.
type ThesisInfo struct {
	DefenseDate  string        `json:"defense_date,omitempty"`
	Date         string        `json:"date,omitempty"`
	DegreeType   string        `json:"degree_type,omitempty"`
	Institutions []Institution `json:"institutions,omitempty"`
}

type FundingInfo struct {
	Agency        string `json:"agency,omitempty"`
	GrantNumber   string `json:"grant_number,omitempty"`
	ProjectNumber string `json:"project_number,omitempty"`
}

type License struct {
	License  string `json:"license,omitempty"`
	Imposing string `json:"imposing,omitempty"`
	URL      string `json:"url,omitempty"`
	Material string `json:"material,omitempty"`
}

type Copyright struct {
	Holder    string `json:"holder,omitempty"`
	Material  string `json:"material,omitempty"`
	Statement string `json:"statement,omitempty"`
	URL       string `json:"url,omitempty"`
	Year      *int   `json:"year,omitempty"`
}

type DesyBookkeeping struct {
	Date   string `json:"date,omitempty"`
	Expert string `json:"expert,omitempty"`
	Status string `json:"status,omitempty"`
}

// ExportTo maps a destination name to whether the record should be
// exported there.
type ExportTo map[string]bool
