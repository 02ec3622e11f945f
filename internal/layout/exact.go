package layout

import (
	"fmt"

	"valuation/internal/story"
	"valuation/internal/types"
	"valuation/internal/valuation"
)

// exact runs several sections through one table, separated by navy rows.
type exact struct {
	v types.Valuation
	f valuation.Figures
}

func (e exact) table(rows ...story.Row) story.Table {
	return threeCol(0.5, 2.8, 3.2, rows...)
}

func (e exact) build(doc *story.Document) {
	v, f := e.v, e.f
	gap := story.Spacer{Height: in(0.1)}
	wide := story.Spacer{Height: in(0.15)}

	doc.Add(
		headerTable(v, labelSize),
		wide,
		story.Heading{Text: reportTitle, Size: 10, Align: story.Center},
	)

	d := v.Documents
	loc := v.Location
	general := []story.Row{
		section("GENERAL"),
		row("1", "purpose for which valuation is made", v.Purpose),
		row("2", "(a) Date of inspection", valuation.ShortDate(v.InspectionDate)),
		row("", "(b) Date on which valuation is made", valuation.ShortDate(v.ReportDate)),
		row("", "List of documents produced for pursual", ""),
		row("", "(1) Mortgage Deed :", d.MortgageDeed),
		row("", "(2) Mortgage Deed Between :", d.MortgageDeedBetween),
		row("3", "(3) Previous Valuation Report:", d.PreviousReport),
		row("", "(4) Previous Valuation Report In Favor of:", d.PreviousReportInFavorOf),
		row("", "(5) Approved Plan No:", d.ApprovedPlan),
		row("4", "Name of the Owner/Applicant:", v.OwnerName),
		row("5", "Brief description of Property", v.Description),
		row("", "Location of the property", ""),
		row("", "(a) Plot No/Survey No/Block No", loc.PlotSurvey),
		row("", "(b) Door/Shop No", loc.Door),
	}
	vals := locationValues(loc)
	for i, l := range locationLabels() {
		sno := ""
		if i == 0 {
			sno = "6"
		}
		general = append(general, row(sno, l, vals[i]))
	}
	general = append(general,
		row("7", "Postal address of the property", loc.PostalAddress),
		row("8", "City/Town", loc.City),
		row("", "Residential Area", valuation.YesNo(loc.Residential)),
		row("", "Commercial Area", valuation.YesNo(loc.Commercial)),
		row("", "Industrial Area", valuation.YesNo(loc.Industrial)),
		row("9", lines("Classification Of The Area", "(a) High/Middle/Poor", "(b) Urban/Semi Urban/Rural"),
			lines(v.Area.Class, v.Area.Urbanity)),
		row("10", "Coming under Corporation limits/Village Panchayat/Municipality", v.Area.Corporation),
		row("11", "Weather convered under any State/Central Govt.enactments", v.Area.Enactments),
		row("12", "Boundaries of the property", boundaryHeading()),
	)
	for _, b := range v.Boundaries {
		general = append(general, row("", b.Direction, boundaryCell(b)))
	}
	general = append(general,
		row("13", "Extent of the Site", extentCell(v)),
		row("14", "Latitude,Longitude & Co ordinates of flat", v.Coordinates),
		row("15", "Extent of the Site Considered for valuation", fmt.Sprintf("Carpet Area (Sq.mt.): %s", v.Extent.Carpet)),
		row("16", "Weather Occupied by owner/tenant? If occupied by tenant,science how long?", v.Occupancy),
	)
	doc.Add(e.table(general...), gap)

	bl := v.Building
	doc.Add(e.table(
		section("II. APARTMENT BUILDING"),
		row("1", "Nature of Apartment", bl.Nature),
		row("2", "Location", bl.Location),
		row("", "Survey/Block No.", bl.SurveyBlock),
		row("", "TP, FP No.", bl.TPFP),
		row("", "Village/Municipality/Corporation", bl.Municipality),
		row("", "Door No,Street or Road (Pin Code)", bl.PinCode),
		row("3", lines("Description of the locality", "Residential/Commercial/Mixed"), bl.Locality),
		row("4", "Commencement Year of construction", fmt.Sprint(bl.CommencementYear)),
		row("5", "Number of Floor", bl.Floors),
		row("6", "Type Of Structure", bl.Structure),
		row("7", "Number of Dwelling units in the building", bl.DwellingUnits),
	), gap)

	fl := v.Flat
	flat := []story.Row{
		row("8", "Quality of Construction", bl.Quality),
		row("9", "Apperance of the building", bl.Appearance),
		row("10", "Maintenance of building", bl.Maintenance),
		row("11", "Facilities Available", ""),
	}
	fv := facilityValues(bl.Facilities)
	for i, l := range facilityLabels() {
		flat = append(flat, row("", l, fv[i]))
	}
	flat = append(flat,
		section("III. Flat"),
		row("1", "The floor on which the Flat is situated", fl.Floor),
		row("2", "Door No, Of the Flat", fl.DoorNo),
		row("3", "Specification of the Flat", fl.Specification),
	)
	sv := flatSpecValues(fl)
	for i, l := range flatSpecLabels() {
		flat = append(flat, row("", l, sv[i]))
	}
	flat = append(flat,
		row("4", "House Tax", fl.HouseTax),
		row("", "Assessment no", fl.AssessmentNo),
		row("", "Tax paid in the name of", fl.TaxPaidBy),
		row("", "Tax amount", fl.TaxAmount),
		row("5", "Electricity service connection no.", fl.ElectricityNo),
		row("", "Meter card is in name of", fl.MeterCardName),
		row("6", "How is the maintenance of the Flat?", fl.Maintenance),
		row("7", "Sale Deed in the name of", fl.SaleDeedName),
		row("8", "What is the undivided area of land as per sale deed? (sq.mt.)", v.Extent.UDSL.String()),
		row("9", "What is the plinth area of the Flat ?", plinthCell(v, "\n")),
		row("10", "What is the FSI?", fl.FSI),
		row("11", "What is the Carpet Area of the Flat consider for valuation?", v.Extent.Carpet.String()),
		row("12", "Is it posh/ I class/Medium / Ordinary", fl.Class),
		row("13", "IS It being used for residential or comercial purpose?", fl.Use),
		row("14", "is it is owner occupied or Rent out?", fl.OwnerOrTenant),
		row("15", "If rented ,what is the monthly rent?", fl.MonthlyRent),
	)
	doc.Add(e.table(flat...), story.PageBreak{})

	doc.Add(e.table(
		section("IV MARKETIBILITY"),
		row("1", "How is marketability?", v.Market.Marketability),
		row("2", "What are the factors favouring for an extra potential value?", v.Market.Favouring),
		row("3", "Any negative factors are observed which affect the market value in general?", v.Market.Negative),
		section("V RATE"),
		row("1", "After analysing the comparable sale instances, what is the composite rate for a similar flat with same specifications in the adjoining locality?", v.Rate.Comparable),
		row("2", "Assuming it is a new construction, what is the adopted basic composite rate of the flat under valuation after comparing with the specifications and other factors with the flat under comparison", v.Rate.Adopted),
		row("3", "Break up for the rate", ""),
		row("", "(i) Building + Services", v.Rate.BuildingServices),
		row("", "(ii) Land+Others", v.Rate.LandOthers),
		row("4", "Guideline rate obtained from the Registrar's office", jantriRateCell(v)),
		row("", "Per Sq. Mt.", v.Extent.Carpet.String()),
		row("", "", valuation.Rs(v.Rate.JantriRate)),
		row("", "Total Jantri Value", valuation.Rs(f.JantriValue)),
	), gap)

	dp := v.Depr
	composite := valuation.Rs(v.Rate.Composite) + " | Per Sq.mt. Carpet Area"
	doc.Add(e.table(
		section("VI COMPOSITE RATE ADOPTED AFTER DEPRECIATION"),
		row("a", "Depreciated building rate", dp.BuildingRate),
		row("", "Replacement cost of Flat with services", dp.Replacement),
		row("", "Age of the building", valuation.Years(dp.AgeYears)),
		row("", "Life of the building estimated", valuation.Years(dp.LifeYears)),
		row("", "Depreciation % assuming the salvage value as 10%", dp.Percent),
		row("", "Depreciated ratio of the building", dp.Ratio),
		row("b", "Total Composite rate arrived for valuation", composite),
		row("", "Depreciated building rate VI (a)", dp.BuildingRate),
		row("", "Rate of land & Other VI (3) ii", dp.RateOfLand),
		row("", "Total Composite rate", composite),
		section("DETAILS OF VALUATION"),
		header("No.", "DESCRIPTION", "Area in Sq. mt. | RATE"),
		row("1", "Present value of the Flat - Carpet Area", v.Extent.Carpet.String()+" | "+valuation.Rs(v.Rate.Composite)),
		row("", "Value Of The Flat", valuation.Rs(f.FlatValue)),
		row("2", "Fixed Furniture & Fixtures", valuation.Rs(v.FixedFurniture)),
		row("", "Total Value Of The Flat", valuation.Rs(f.TotalValue)),
		row("", "In Words "+f.TotalWords+".", ""),
	), wide)

	results := append([]story.Row{header("As a result of my appraisal and analysis,", "")}, resultRows(v, f)...)
	doc.Add(story.Table{
		Widths:     []float64{in(3.5), in(2.5)},
		Size:       bodySize,
		Rows:       results,
		HeaderFill: story.White,
	}, story.Spacer{Height: in(0.2)})

	doc.Add(
		story.Heading{Text: "STATEMENT OF LIMITING CONDITIONS", Size: 10, Color: story.Blue},
		story.Bullets{Items: v.LimitingConditions, Size: bodySize},
		wide,
		sectionHeading("VIII DECLARATION"),
		declarationTable(v, 0.3, 6.2),
		wide,
	)

	doc.Add(
		story.Table{
			Widths:      []float64{in(2.0), in(1.5), in(2.0)},
			Aligns:      []story.Align{story.Left, story.Left, story.Center},
			Size:        labelSize,
			Borderless:  true,
			BoldColumns: []int{2},
			Rows: []story.Row{
				row("Place: "+v.Place, "", "SIGNATURE OF THE VALUER"),
				row("Date: "+valuation.SlashDate(v.ReportDate), "", v.Valuer),
			},
		},
		story.Spacer{Height: in(0.2)},
		story.Paragraph{Text: "Enclsd: 1. Declaration from the valuer", Size: bodySize, Bold: true},
		story.Paragraph{Text: enclosureText(v, f), Size: bodySize},
		wide,
		story.Table{
			Widths:      []float64{in(3.5), in(2.5)},
			Aligns:      []story.Align{story.Left, story.Center},
			Size:        bodySize,
			Borderless:  true,
			BoldColumns: []int{0, 1},
			Rows: []story.Row{
				row("", "SIGNATURE"),
				row("", "NAME OF BRANCH OFFICIAL WITH SEAL"),
			},
		},
	)
}
