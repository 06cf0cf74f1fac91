package model

import (
	"fmt"
	"strings"
)

// Sentinels rendered in place of an absent match.
const (
	NoManufacturerMatch = "No Manufacturer Match"
	NoModelMatch        = "No Model Match"
	NoPartMatch         = "No Part Match"
)

// DefaultCategoryTag marks model records inside reference ids.
const DefaultCategoryTag = "PT_CAT"

type CustomerRecord struct {
	Line             int    // source line in the customer file (1-based)
	ManufacturerName string // Customer_Mfg_Name
	ModelName        string // Customer_Model_Name (empty = absent)
	PartNumber       string // opaque, never parsed as a number
	PartFromModel    bool   // PartNumber was taken from the model column
}

type ReferenceManufacturer struct {
	Name       string
	Code       string
	ParentName string // empty when the manufacturer has no parent
}

// ReferenceItem is a catalog model or part. Models carry the category tag in ReferenceID.
type ReferenceItem struct {
	ReferenceID      string // primaryId
	Designation      string // manufacturerPartNumber
	ManufacturerName string // manufacturerName
}

func (it ReferenceItem) IsModel(tag string) bool {
	return tag != "" && strings.Contains(it.ReferenceID, tag)
}

// PairKey scopes a customer string to a resolved manufacturer.
type PairKey struct {
	Manufacturer string
	Value        string
}

func (k PairKey) String() string { return fmt.Sprintf("%s|%s", k.Manufacturer, k.Value) }

type Candidate struct {
	SourceKey  string
	TargetKey  string // reference id or manufacturer name
	TargetName string // designation or manufacturer name
	Score      int
	Tier       Tier
}

// Result is the resolved identity for one source key. A nil TargetKey means no match,
// which is not the same thing as a match scored 0.
type Result struct {
	SourceKey  string
	TargetKey  *string
	TargetName *string
	Score      *int
	Tier       Tier
}

func (r Result) Matched() bool { return r.TargetKey != nil }

func (r Result) Target() string {
	if r.TargetKey == nil {
		return ""
	}
	return *r.TargetKey
}

func (r Result) Name() string {
	if r.TargetName == nil {
		return ""
	}
	return *r.TargetName
}

type Options struct {
	Workers      int    `json:"workers"`      // parallel candidate generation, 1 = sequential
	CategoryTag  string `json:"categoryTag"`  // model marker inside primaryId
	Dedupe       bool   `json:"dedupe"`       // collapse duplicate customer rows
	SisterBrands bool   `json:"sisterBrands"` // add codes of manufacturers sharing a parent
}

func DefaultOptions() Options {
	return Options{Workers: 1, CategoryTag: DefaultCategoryTag, Dedupe: true}
}

type OutputRow struct {
	Line               int     `json:"Row"`
	CustomerMfgName    string  `json:"Customer_Mfg_Name"`
	CustomerModelName  string  `json:"Customer_Model_Name"`
	CustomerPartNumber string  `json:"Customer_Part_Number"`
	MfgName            string  `json:"PT_Mfg_Name"`
	MfgCode            string  `json:"PT_Mfg_Code,omitempty"`
	MfgQuality         Quality `json:"Mfg_Match_Quality"`
	CategoryID         string  `json:"PT_Category_ID"`
	ModelMatch         string  `json:"PT_Model_Match"`
	ModelTier          string  `json:"Model_Match_Tier,omitempty"`
	ModelQuality       Quality `json:"Model_Match_Quality"`
	PartNumber         string  `json:"PT_Part_Number"`
	MfgPartNumber      string  `json:"PT_MFG_Part_Number"`
	Error              string  `json:"Row_Error,omitempty"`
}

// RowIssue flags one bad input row; the batch keeps going.
type RowIssue struct {
	Dataset string `json:"dataset"`
	Line    int    `json:"line"`
	Message string `json:"message"`
}

type Stats struct {
	Customers             int `json:"customers"`
	DistinctManufacturers int `json:"distinctManufacturers"`
	ManufacturersMatched  int `json:"manufacturersMatched"`
	ModelKeys             int `json:"modelKeys"`
	ModelsMatched         int `json:"modelsMatched"`
	PartKeys              int `json:"partKeys"`
	PartsMatched          int `json:"partsMatched"`
	ReferenceModels       int `json:"referenceModels"`
	ReferenceParts        int `json:"referenceParts"`
	OutputRows            int `json:"outputRows"`
}

type Report struct {
	Rows              []OutputRow `json:"rows"`
	ManufacturerCodes []string    `json:"manufacturerCodes"`
	Issues            []RowIssue  `json:"issues"`
	PartFromModel     bool        `json:"partFromModel"`
	Stats             Stats       `json:"stats"`
	Opts              Options     `json:"opts"`
}
