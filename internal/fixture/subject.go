// Package fixture holds the one property this tool reports on.
package fixture

import (
	"time"

	"valuation/internal/money"
	"valuation/internal/types"
)

const postalAddress = `Flat No. A/503, 5th Floor, Tower A, "Brookfieldz Devbhumi Residency", Nr. Tulsidham Cross Road, Manjalpur, Vadodara - 390020.`

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Subject returns the valuation record for Flat A/503, Brookfieldz Devbhumi
// Residency, Manjalpur. A fresh copy is returned on every call.
func Subject() types.Valuation {
	return types.Valuation{
		Addressee: types.Addressee{
			Bank:   "Gujarat Gramin Bank , Vadodara",
			Branch: "Manjalpur Branch",
		},
		FileNo:         "06GGB1025 10",
		InspectionDate: date(2025, time.October, 30),
		ReportDate:     date(2025, time.October, 31),

		Purpose: "Financial Assistance for loan from GGB Bank",
		Documents: types.Documents{
			MortgageDeed:            "Reg. No. 7204, Dated: 28/05/2025",
			MortgageDeedBetween:     "Hemanshu Haribhai Patel & GGB Manjalpur Branch - Mr. Sanjaykumar",
			PreviousReport:          "Issued By I S Associates Pvt. Ltd. On Dated: 20/03/2025",
			PreviousReportInFavorOf: "Mr. Hemanshu Haribhai Patel",
			ApprovedPlan:            "Approved by Vadodara Municpal Corporation,\nWard No. 4, Order No.: RAH-SHB/19/20-21,\nDate: 26/11/2020",
		},
		OwnerName:   "Hemanshu Haribhai Patel",
		Description: "It is a 3bhk Residential Flat at 5th Floor of Tower A of\nBrookfieldz Devbhumi Residency, Flat No. A/503.",

		Location: types.Location{
			PlotSurvey:       "R.S. No. 101, 102/2, 106/2 Paiki 2, T.P.S. No. 29, F.P. No. 9+24, At: Manjalpur, Sub District & District: Vadodara.",
			Door:             postalAddress,
			TPVillage:        "Manjalpur",
			WardTaluka:       "Vadodara",
			MandalDistrict:   "Vadodara",
			LayoutPlanDate:   date(2020, time.November, 26),
			PlanAuthority:    "Vadodara Municipal Corporation",
			PlanVerification: "Original Documents Not Produced To the Valuer For Scrutinity. We have verified scan copy of original.",
			PlanComments:     "Property is constructed as per approved plan",
			PostalAddress:    postalAddress,
			City:             "Vadodara",
			Residential:      true,
		},
		Area: types.AreaClass{
			Class:       "Middle Class Area",
			Urbanity:    "Urban",
			Corporation: "Vadodara Municipal Corporation",
			Enactments:  "As Per General Development Control Regulation.",
		},
		Boundaries: []types.Boundary{
			{Direction: "East", PerDocument: "Tower B", PerActual: "Tower B"},
			{Direction: "West", PerDocument: "Staircase, Passage", PerActual: "Staircase, Passage"},
			{Direction: "North", PerDocument: "36 Mt. Wide Road", PerActual: "36 Mt. Wide Road"},
			{Direction: "South", PerDocument: "Flat No. 501, Tower B", PerActual: "Flat No. 501, Tower B"},
		},
		Extent: types.Extent{
			BuiltUp: "NA",
			Carpet:  6893,
			UDSL:    2049,
		},
		Coordinates: `22°16'13.5"N 73°11'41.8"E`,
		Occupancy:   "Vacant",

		Building: types.Building{
			Nature:           "Residential Flat",
			Location:         "Vadodara",
			SurveyBlock:      "R.S. No. 101, 102/2, 106/2 Paiki 2",
			TPFP:             "T.P.S. No. 29, F.P. No. 3+24",
			Municipality:     "Vadodara Municipal Corporation",
			PinCode:          "390011",
			Locality:         "Residential Flat in Developed Area.",
			CommencementYear: 2025,
			Floors:           "Basement + Ground Floor + 7 Upper Floors",
			Structure:        "RCC Structure",
			DwellingUnits:    "As Per Plan",
			Quality:          "Standard",
			Appearance:       "Good",
			Maintenance:      "Good",
			Facilities: types.Facilities{
				Lift:         true,
				WaterSupply:  true,
				Sewerage:     true,
				CarParking:   true,
				CompoundWall: true,
				Pavement:     true,
			},
		},
		Flat: types.Flat{
			Floor:         "5th Floor",
			DoorNo:        "Flat No. A-503",
			Specification: "3BHK Residential Flat",
			Roof:          "RCC Slab",
			Flooring:      "Vitrified Tiles",
			Doors:         "Wooden Framed Flush Door",
			Windows:       "Section Windows",
			Fittings:      "Good",
			Finishing:     "Interior Finishing",
			HouseTax:      "NA",
			AssessmentNo:  "NA",
			TaxPaidBy:     "NA",
			TaxAmount:     "NA",
			ElectricityNo: "NA",
			MeterCardName: "NA",
			Maintenance:   "Well Maintained",
			SaleDeedName:  "Hemanshu Haribhai Patel",
			FSI:           "2.7",
			Class:         "Medium",
			Use:           "Used As Residential Flat",
			OwnerOrTenant: "Vacant",
			MonthlyRent:   "Not Applicable",
		},
		Market: types.Market{
			Marketability: "Good",
			Favouring:     "Prposed Fully Developed Scheme",
			Negative:      "The Unforeseen Events",
		},
		Rate: types.Rate{
			Comparable: "The estimate of Fair Market Value is based on situation, location, size, shape, road width, " +
				"Neighborhood, accessibility, frontage, environmental aspects, demand and supply. The property rate is " +
				"considered after information received by surrounding property holders. Also necessary information has " +
				"been collected from nearby occupant. Our market inquiry among nearby occupant has revealed that similar " +
				"sized property in the vicinity of the subject property is available in a range from Rs. 60000-65000 per " +
				"sq. Mt. based on Carpet area.",
			Adopted:          "I have adopted market approach method for valuation of the property. Local Inquiry as well as market Survey",
			BuildingServices: "24 x 7 Water Supply & Security",
			LandOthers:       "Fully Developed Scheme & Interior",
			JantriRate:       money.Rupees(23400),
			JantriYear:       2023,
			Composite:        money.Rupees(64580),
		},
		Depr: types.Depreciation{
			BuildingRate: "Consider In Valuation",
			Replacement:  "Consider In Valuation",
			AgeYears:     0,
			LifeYears:    50,
			Percent:      "N.A.",
			Ratio:        "N.A.",
			RateOfLand:   "Composite Rate Method Of Valuation",
		},

		FixedFurniture: money.Rupees(1500000),
		SaleDeedValue:  "NA",
		DocumentsShown: "Mortgage Deed, Approved Plan, Previous Valuation Report",
		Remarks:        "Rate is given on Carpet Area.",

		Place:  "Vadodara",
		Valuer: "MAHIM ARCHITECTS",

		LimitingConditions: []string{
			"If this property is offered for collateral security the concerned financial institution is requested to obtained latest title report from advocate of said property.",
			"No responsibility is to be assumed for matter legal in nature nor is opinion of title rendered by this report, good title is assumed.",
			"Scope of this report is only to access present market value of the property for specific purpose, date & place. It therefore varies with purpose, period, and location, identification of rightful owner of the property, genuineness of the title deed, encumbrance if any on the property etc. be examined by the (Financial Institution) concerned authority.",
			"Possession of the any copy of this report does not carry with it the right of publication, nor any be used for any purpose by any one, except the addressee and the property owner, without the previous written consent of the appraiser, and in any event, only may be revealed in its entirety.",
			"Credibility of buyer and seller is fully responsible of financial institute. Identification of buyer & seller is from financial institute only.",
			"If found any typo error in this report is not counted for any legal action and obligation.",
		},
	}
}
