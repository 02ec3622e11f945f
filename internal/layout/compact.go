package layout

import (
	"fmt"

	"valuation/internal/story"
	"valuation/internal/types"
	"valuation/internal/valuation"
)

// compact folds each numbered item into one row with multi-line cells.
type compact struct {
	v types.Valuation
	f valuation.Figures
}

func (c compact) table(rows ...story.Row) story.Table {
	return threeCol(0.5, 2.8, 3.2, rows...)
}

func (c compact) build(doc *story.Document) {
	v, f := c.v, c.f
	blank := story.Spacer{Height: in(0.15)}

	doc.Add(
		story.Paragraph{Text: lines("To;", v.Addressee.Bank, v.Addressee.Branch), Size: labelSize, Bold: true},
		story.Paragraph{
			Text:  lines("File No: "+v.FileNo, "Date: "+valuation.ShortDate(v.ReportDate)),
			Size:  labelSize,
			Align: story.Right,
		},
		story.Heading{Text: reportTitle, Size: 11, Align: story.Center},
		sectionHeading("GENERAL"),
	)

	d := v.Documents
	loc := v.Location
	doc.Add(c.table(
		header("S.No", "Description", "Details"),
		row("1", "Purpose for which valuation is made", v.Purpose),
		row("2",
			lines("(a) Date of inspection", "(b) Date on which valuation is made", "List of documents produced for pursual",
				"(1) Mortgage Deed :", "(2) Mortgage Deed Between :", "(3) Previous Valuation Report:",
				"(4) Previous Valuation Report In Favor of:", "(5) Approved Plan No:"),
			lines(valuation.ShortDate(v.InspectionDate), valuation.ShortDate(v.ReportDate), "",
				d.MortgageDeed, d.MortgageDeedBetween, d.PreviousReport, d.PreviousReportInFavorOf, d.ApprovedPlan)),
		row("3", "Name of the Owner/Applicant:", v.OwnerName),
		row("4", "Brief description of Property", v.Description),
		row("5",
			lines(append([]string{"Location of the property", "(a) Plot No/Survey No/Block No", "(b) Door/Shop No"}, locationLabels()...)...),
			lines(append([]string{loc.PlotSurvey, loc.Door}, locationValues(loc)...)...)),
		row("6", "Postal address of the property", loc.PostalAddress),
		row("7", lines("City/Town", "Residential Area", "Comercial Area", "Industrial Area"),
			lines(loc.City, valuation.YesNo(loc.Residential), valuation.YesNo(loc.Commercial), valuation.YesNo(loc.Industrial))),
	), blank)

	dirs := []string{"Boundaries of the property"}
	bounds := []string{boundaryHeading()}
	for _, b := range v.Boundaries {
		dirs = append(dirs, b.Direction)
		bounds = append(bounds, boundaryCell(b))
	}
	doc.Add(c.table(
		row("9", lines("Classification Of The Area", "(a) High/Middle/Poor", "(b) Urban/Semi Urban/Rural"),
			lines(v.Area.Class, v.Area.Urbanity)),
		row("10", "Coming under Corporation limits/Village Panchayat/Municipality", v.Area.Corporation),
		row("11", "Weather convered under any State/Central Govt.enactments", v.Area.Enactments),
		row("12", lines(dirs...), lines(bounds...)),
		row("13", "Extent of the Site", extentCell(v)),
		row("14", "Latitude,Longitude & Co ordinates of flat", v.Coordinates),
		row("15", "Extent of the Site Considered for valuation", fmt.Sprintf("Carpet Area (Sq.mt.): %s", v.Extent.Carpet)),
		row("16", "Weather Occupied by owner/tenant? If occupied by tenant,science how long?", v.Occupancy),
	), blank)

	bl := v.Building
	doc.Add(sectionHeading("II. APARTMENT BUILDING"))
	doc.Add(c.table(
		row("1", "Nature of Apartment", bl.Nature),
		row("2", lines("Location", "Survey/Block No.", "TP, FP No.", "Village/Municipality/Corporation", "Door No,Street or Road"),
			lines(bl.Location, bl.SurveyBlock, bl.TPFP, bl.Municipality, bl.PinCode)),
		row("3", lines("Description of the locality", "Residential/Commercial/Mixed"), bl.Locality),
		row("4", "Commencement Year of construction", fmt.Sprint(bl.CommencementYear)),
		row("5", "Number of Floor", bl.Floors),
		row("6", "Type Of Structure", bl.Structure),
		row("7", "Number of Dwelling units in the building", bl.DwellingUnits),
		row("8", "Quality of Construction", bl.Quality),
		row("9", "Apperance of the building", bl.Appearance),
		row("10", "Maintenance of building", bl.Maintenance),
		row("11", lines(append([]string{"Facilities Available"}, facilityLabels()...)...),
			lines(facilityValues(bl.Facilities)...)),
	), blank)

	fl := v.Flat
	doc.Add(sectionHeading("III. Flat"))
	doc.Add(c.table(
		row("1", "The floor on which the Flat is situated", fl.Floor),
		row("2", "Door No, Of the Flat", fl.DoorNo),
		row("3", lines(append([]string{"Specification of the Flat"}, flatSpecLabels()...)...),
			lines(append([]string{fl.Specification}, flatSpecValues(fl)...)...)),
		row("4", lines("House Tax", "Assessment no", "Tax paid in the name of", "Tax amount"),
			lines(fl.HouseTax, fl.AssessmentNo, fl.TaxPaidBy, fl.TaxAmount)),
		row("5", lines("Electricity service connection no.", "Meter card is in name of"),
			lines(fl.ElectricityNo, fl.MeterCardName)),
		row("6", "How is the maintenance of the Flat?", fl.Maintenance),
		row("7", "Sale Deed in the name of", fl.SaleDeedName),
		row("8", "What is the undivided area of land as per sale deed? (sq.mt.)", v.Extent.UDSL.String()),
		row("9", "What is the plinth area of the Flat ?", plinthCell(v, " | ")),
		row("10", "What is the FSI?", fl.FSI),
		row("11", "What is the Carpet Area of the Flat consider for valuation?", v.Extent.Carpet.String()),
		row("12", "Is it posh/ I class/Medium / Ordinary", fl.Class),
		row("13", "IS It being used for residential or comercial purpose?", fl.Use),
		row("14", "is it is owner occupied or Rent out?", fl.OwnerOrTenant),
		row("15", "If rented ,what is the monthly rent?", fl.MonthlyRent),
	), blank)

	doc.Add(sectionHeading("IV MARKETIBILITY"))
	doc.Add(c.table(
		row("1", "How is marketability?", v.Market.Marketability),
		row("2", "What are the factors favouring for an extra potential value?", v.Market.Favouring),
		row("3", "Any negative factors are observed which affect the market value in general?", v.Market.Negative),
	), blank)

	doc.Add(
		sectionHeading("V RATE"),
		story.Paragraph{Text: "1. After analysing the comparable sale instances, what is the composite rate for a similar flat with same specifications in the adjoining locality?", Size: labelSize},
		story.Paragraph{Text: v.Rate.Comparable, Size: labelSize},
		blank,
	)

	dp := v.Depr
	doc.Add(sectionHeading("VI COMPOSITE RATE ADOPTED AFTER DEPRECIATION"))
	doc.Add(c.table(
		row("", "Depreciated building rate", dp.BuildingRate),
		row("", "Replacement cost of Flat with services", dp.Replacement),
		row("", "Age of the building", valuation.Years(dp.AgeYears)),
		row("", "Life of the building estimated", valuation.Years(dp.LifeYears)),
		row("", "Depreciation % assuming the salvage value as 10%", dp.Percent),
		row("", "Depreciated ratio of the building", dp.Ratio),
		row("b", "Total Composite rate arrived for valuation", valuation.Rs(v.Rate.Composite)+" (Per Sq.mt. Carpet Area)"),
	), blank)

	doc.Add(sectionHeading("DETAILS OF VALUATION"))
	doc.Add(story.Table{
		Widths: []float64{in(0.5), in(3.3), in(1.4), in(1.5)},
		Size:   bodySize,
		Rows: []story.Row{
			header("No.", "DESCRIPTION", "Area in Sq. mt.", "RATE"),
			row("1", "Present value of the Flat - Carpet Area", v.Extent.Carpet.String(), valuation.Rs(v.Rate.Composite)),
			row("", "Value Of The Flat", "", valuation.Rs(f.FlatValue)),
			row("2", "Fixed Furniture & Fixtures", "", valuation.Rs(v.FixedFurniture)),
			row("", "Total Value Of The Flat", "", valuation.Rs(f.TotalValue)),
			row("", "In Words "+f.TotalWords+".", "", ""),
		},
	}, blank)

	doc.Add(story.Paragraph{Text: "As a result of my appraisal and analysis,", Size: labelSize, Bold: true})
	doc.Add(story.Table{
		Widths: []float64{in(3.2), in(3.5)},
		Size:   bodySize,
		Rows:   resultRows(v, f),
	}, blank)

	doc.Add(
		story.Heading{Text: "STATEMENT OF LIMITING CONDITIONS", Size: 10, Color: story.Blue},
		story.Bullets{Items: v.LimitingConditions, Size: labelSize},
		blank,
		sectionHeading("VIII DECLARATION"),
		declarationTable(v, 0.5, 6.2),
		blank,
	)

	doc.Add(
		story.Table{
			Widths:      []float64{in(3.5), in(3.2)},
			Size:        labelSize,
			Borderless:  true,
			BoldColumns: []int{1},
			Rows: []story.Row{
				row("Place: "+v.Place, "SIGNATURE OF THE VALUER"),
				row("Date: "+valuation.SlashDate(v.ReportDate), v.Valuer),
			},
		},
		blank,
		story.Paragraph{Text: "Enclsd: 1. Declaration from the valuer", Size: labelSize, Bold: true},
		story.Paragraph{Text: enclosureText(v, f), Size: labelSize},
		story.Table{
			Widths:      []float64{in(3.5), in(3.2)},
			Size:        labelSize,
			Borderless:  true,
			BoldColumns: []int{1},
			Rows: []story.Row{
				row("", "SIGNATURE"),
				row("", "NAME OF BRANCH OFFICIAL WITH SEAL"),
			},
		},
	)
}
