package layout

import (
	"fmt"

	"valuation/internal/story"
	"valuation/internal/types"
	"valuation/internal/valuation"
)

type standard struct {
	v types.Valuation
	f valuation.Figures
}

func (s standard) table(rows ...story.Row) story.Table {
	return firstAsHeader(threeCol(0.4, 2.5, 3, rows...))
}

func (s standard) build(doc *story.Document) {
	v, f := s.v, s.f
	gap := story.Spacer{Height: in(0.1)}
	small := story.Spacer{Height: in(0.08)}

	doc.Add(
		headerTable(v, labelSize),
		gap,
		story.Heading{Text: reportTitle, Size: 12, Align: story.Center},
		small,
		sectionHeading("GENERAL"),
	)

	doc.Add(s.table(
		row("1", "Purpose for which valuation is made", v.Purpose),
		row("2", lines("(a) Date of inspection", "(b) Date on which valuation is made"),
			lines(valuation.ShortDate(v.InspectionDate), valuation.ShortDate(v.ReportDate))),
		row("", "List of documents produced for pursual", ""),
		row("", "(1) Mortgage Deed :", v.Documents.MortgageDeed),
		row("", "(2) Mortgage Deed Between :", v.Documents.MortgageDeedBetween),
		row("3", "(3) Previous Valuation Report:", v.Documents.PreviousReport),
		row("", "(4) Previous Valuation Report In Favor of:", v.Documents.PreviousReportInFavorOf),
		row("", "(5) Approved Plan No:", v.Documents.ApprovedPlan),
		row("4", "Name of the Owner/Applicant:", v.OwnerName),
		row("5", "Brief description of Property", v.Description),
	), gap)

	loc := v.Location
	doc.Add(s.table(
		row("", "Location of the property", ""),
		row("", "(a) Plot No/Survey No/Block No", loc.PlotSurvey),
		row("", "(b) Door/Shop No", loc.Door),
		row("6", lines(locationLabels()...), lines(locationValues(loc)...)),
		row("7", "Postal address of the property", loc.PostalAddress),
		row("8", lines("City/Town", "Residential Area", "Comercial Area", "Industrial Area"),
			lines(loc.City, valuation.YesNo(loc.Residential), valuation.YesNo(loc.Commercial), valuation.YesNo(loc.Industrial))),
	), gap)

	more := []story.Row{
		row("9", lines("Classification Of The Area", "(a) High/Middle/Poor", "(b) Urban/Semi Urban/Rural"),
			lines(v.Area.Class, v.Area.Urbanity)),
		row("10", "Coming under Corporation limits/Village Panchayat/Municipality", v.Area.Corporation),
		row("11", "Weather convered under any State/Central Govt.enactments(e.g. Urban land celling actior notified under agenc area/scheduled area/cantonment area",
			v.Area.Enactments),
		row("12", "Boundaries of the property", boundaryHeading()),
	}
	for _, b := range v.Boundaries {
		more = append(more, row("", b.Direction, boundaryCell(b)))
	}
	more = append(more,
		row("13", "Extent of the Site", extentCell(v)),
		row("14", "Latitude,Longitude & Co ordinates of flat", v.Coordinates),
		row("15", "Extent of the Site Considered for valuation", fmt.Sprintf("Carpet Area (Sq.mt.): | %s", v.Extent.Carpet)),
		row("16", "Weather Occupied by owner/tenant? If occupied by tenant,science how long? Rent received per month", v.Occupancy),
	)
	doc.Add(s.table(more...), story.PageBreak{})

	bl := v.Building
	doc.Add(sectionHeading("II. APARTMENT BUILDING"), small)
	doc.Add(s.table(
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

	facilities := []story.Row{
		row("8", "Quality of Construction", bl.Quality),
		row("9", "Apperance of the building", bl.Appearance),
		row("10", "Maintenance of building", bl.Maintenance),
		row("11", "Facilities Available", ""),
	}
	vals := facilityValues(bl.Facilities)
	for i, l := range facilityLabels() {
		facilities = append(facilities, row("", l, vals[i]))
	}
	doc.Add(s.table(facilities...), gap)

	fl := v.Flat
	doc.Add(sectionHeading("III. Flat"), small)
	flat := []story.Row{
		row("1", "The floor on which the Flat is situated", fl.Floor),
		row("2", "Door No, Of the Flat", fl.DoorNo),
		row("3", "Specification of the Flat", fl.Specification),
	}
	spec := flatSpecValues(fl)
	for i, l := range flatSpecLabels() {
		flat = append(flat, row("", l, spec[i]))
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
		row("9", "What is the plinth area of the Flat ?", plinthCell(v, " | ")),
		row("10", "What is the FSI?", fl.FSI),
		row("11", "What is the Carpet Area of the Flat consider for valuation?", v.Extent.Carpet.String()),
		row("12", "Is it posh/ I class/Medium / Ordinary", fl.Class),
		row("13", "IS It being used for residential or comercial purpose?", fl.Use),
		row("14", "is it is owner occupied or Rent out?", fl.OwnerOrTenant),
		row("15", "If rented ,what is the monthly rent?", fl.MonthlyRent),
	)
	doc.Add(s.table(flat...), story.PageBreak{})

	doc.Add(sectionHeading("IV MARKETIBILITY"), small)
	doc.Add(s.table(
		row("1", "How is marketability?", v.Market.Marketability),
		row("2", "What are the factors favouring for an extra potential value?", v.Market.Favouring),
		row("3", "Any negative factors are observed which affect the market value in general?", v.Market.Negative),
	), gap)

	doc.Add(sectionHeading("V RATE"), small)
	doc.Add(s.table(
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

	d := v.Depr
	composite := valuation.Rs(v.Rate.Composite)
	doc.Add(sectionHeading("VI COMPOSITE RATE ADOPTED AFTER DEPRECIATION"), small)
	doc.Add(firstAsHeader(story.Table{
		Widths: []float64{in(0.4), in(2.5), in(2), in(1.5)},
		Size:   bodySize,
		Rows: []story.Row{
			row("a", "Depreciated building rate", d.BuildingRate),
			row("", "Replacement cost of Flat with services", d.Replacement),
			row("", "Age of the building", valuation.Years(d.AgeYears)),
			row("", "Life of the building estimated", valuation.Years(d.LifeYears)),
			row("", "Depreciation % assuming the salvage value as 10%", d.Percent),
			row("", "Depreciated ratio of the building", d.Ratio),
			row("b", "Total Composite rate arrived for valuation", composite, "Per Sq.mt. Carpet Area"),
			row("", "Depreciated building rate VI (a)", d.BuildingRate),
			row("", "Rate of land & Other VI (3) ii", d.RateOfLand),
			row("", "Total Composite rate", composite, "Per Sq.mt. Carpet Area"),
		},
	}), gap)

	doc.Add(sectionHeading("DETAILS OF VALUATION"), small)
	doc.Add(story.Table{
		Widths: []float64{in(0.4), in(2.5), in(1.5), in(1.5)},
		Size:   bodySize,
		Rows: []story.Row{
			header("No.", "DESCRIPTION", "Area in Sq. mt.", "RATE"),
			row("1", "Present value of the Flat - Carpet Area", v.Extent.Carpet.String(), composite),
			row("", "Value Of The Flat", "", valuation.Rs(f.FlatValue)),
			row("2", "Fixed Furniture & Fixtures", "", valuation.Rs(v.FixedFurniture)),
			row("", "", "Total Value Of The Flat", valuation.Rs(f.TotalValue)),
			row("", "", "In Words "+f.TotalWords+".", ""),
		},
	}, story.PageBreak{})

	doc.Add(sectionHeading("As a result of my appraisal and analysis,"), small)
	doc.Add(firstAsHeader(story.Table{
		Widths: []float64{in(3), in(3)},
		Size:   bodySize,
		Rows:   resultRows(v, f),
	}), story.Spacer{Height: in(0.15)})

	doc.Add(
		sectionHeading("STATEMENT OF LIMITING CONDITIONS"),
		story.Bullets{Items: v.LimitingConditions, Size: labelSize},
		gap,
		sectionHeading("VIII DECLARATION"),
		small,
		firstAsHeader(declarationTable(v, 0.5, 5.5)),
		story.Spacer{Height: in(0.15)},
	)

	doc.Add(story.Table{
		Widths:     []float64{in(2.5), in(2), in(2)},
		Size:       bodySize,
		Borderless: true,
		Rows: []story.Row{
			row("Place: "+v.Place, "", "SIGNATURE OF THE VALUER"),
			row("Date: "+valuation.SlashDate(v.ReportDate), "", v.Valuer),
		},
	}, gap)

	doc.Add(
		story.Paragraph{Text: "Enclsd: 1. Declaration from the valuer", Size: labelSize, Bold: true},
		story.Paragraph{Text: enclosureText(v, f), Size: labelSize},
		gap,
		story.Table{
			Widths:     []float64{in(3), in(2.5)},
			Aligns:     []story.Align{story.Right, story.Right},
			Size:       bodySize,
			Borderless: true,
			Rows: []story.Row{
				row("", "SIGNATURE"),
				row("", "NAME OF BRANCH OFFICIAL WITH SEAL"),
			},
		},
	)
}
