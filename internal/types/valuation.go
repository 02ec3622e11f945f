package types

import (
	"time"

	"valuation/internal/money"
)

// Valuation holds everything printed on the appraisal report for one flat.
// Fields are plain strings wherever the report prints free text; quantities
// used in arithmetic are fixed-point.
type Valuation struct {
	Addressee Addressee
	FileNo    string

	InspectionDate time.Time
	ReportDate     time.Time

	Purpose     string
	Documents   Documents
	OwnerName   string
	Description string

	Location   Location
	Area       AreaClass
	Boundaries []Boundary
	Extent     Extent

	Coordinates string
	Occupancy   string

	Building Building
	Flat     Flat
	Market   Market
	Rate     Rate
	Depr     Depreciation

	FixedFurniture money.Paise
	SaleDeedValue  string
	DocumentsShown string
	Remarks        string

	Place  string
	Valuer string

	LimitingConditions []string
}

// Addressee is the bank branch the report is addressed to.
type Addressee struct {
	Bank   string
	Branch string
}

// Documents lists the papers produced to the valuer.
type Documents struct {
	MortgageDeed            string
	MortgageDeedBetween     string
	PreviousReport          string
	PreviousReportInFavorOf string
	ApprovedPlan            string
}

type Location struct {
	PlotSurvey       string
	Door             string
	TPVillage        string
	WardTaluka       string
	MandalDistrict   string
	LayoutPlanDate   time.Time
	PlanAuthority    string
	PlanVerification string
	PlanComments     string
	PostalAddress    string
	City             string
	Residential      bool
	Commercial       bool
	Industrial       bool
}

// AreaClass is the classification block (items 9-11 of the general section).
type AreaClass struct {
	Class       string
	Urbanity    string
	Corporation string
	Enactments  string
}

// Boundary describes one side of the flat as per document and as found on site.
type Boundary struct {
	Direction   string
	PerDocument string
	PerActual   string
}

type Extent struct {
	BuiltUp string
	Carpet  money.Area
	UDSL    money.Area
}

type Building struct {
	Nature           string
	Location         string
	SurveyBlock      string
	TPFP             string
	Municipality     string
	PinCode          string
	Locality         string
	CommencementYear int
	Floors           string
	Structure        string
	DwellingUnits    string
	Quality          string
	Appearance       string
	Maintenance      string
	Facilities       Facilities
}

type Facilities struct {
	Lift         bool
	WaterSupply  bool
	Sewerage     bool
	CarParking   bool
	CompoundWall bool
	Pavement     bool
}

type Flat struct {
	Floor         string
	DoorNo        string
	Specification string
	Roof          string
	Flooring      string
	Doors         string
	Windows       string
	Fittings      string
	Finishing     string
	HouseTax      string
	AssessmentNo  string
	TaxPaidBy     string
	TaxAmount     string
	ElectricityNo string
	MeterCardName string
	Maintenance   string
	SaleDeedName  string
	FSI           string
	Class         string
	Use           string
	OwnerOrTenant string
	MonthlyRent   string
}

// Market is section IV.
type Market struct {
	Marketability string
	Favouring     string
	Negative      string
}

// Rate is section V plus the adopted composite rate of section VI.
type Rate struct {
	Comparable       string
	Adopted          string
	BuildingServices string
	LandOthers       string
	JantriRate       money.Paise
	JantriYear       int
	Composite        money.Paise
}

// Depreciation is section VI(a). The flat is new so most entries are
// descriptive rather than numeric.
type Depreciation struct {
	BuildingRate string
	Replacement  string
	AgeYears     int
	LifeYears    int
	Percent      string
	Ratio        string
	RateOfLand   string
}

// Issue is one generated report as recorded in the register.
type Issue struct {
	ReportID    string
	FileNo      string
	OwnerName   string
	ReportDate  time.Time
	MarketValue money.Paise
	Layouts     []string
	Artifacts   []string
	GeneratedAt time.Time
}
