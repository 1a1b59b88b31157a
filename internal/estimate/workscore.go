// Package estimate implements the consultation pricing models.
//
// Two independently evolved models coexist: the quick workscore range used
// during live consultations, and the grade + itemized price model used by the
// standalone calculator. They produce customer-facing numbers and are kept
// separate on purpose.
package estimate

// WorkScore sizes a project from its page and section counts. Four sections
// count as one page worth of work; the larger of the two measures wins.
func WorkScore(pageCount, sectionCount int) int {
	if pageCount < 0 {
		pageCount = 0
	}
	if sectionCount < 0 {
		sectionCount = 0
	}
	sectionScore := (sectionCount + 3) / 4
	if pageCount > sectionScore {
		return pageCount
	}
	return sectionScore
}

// PriceRange maps a workscore to the quoted price-range label, in units of
// 10,000 KRW.
func PriceRange(workScore int) string {
	switch {
	case workScore <= 5:
		return "100~150만원"
	case workScore <= 8:
		return "150~200만원"
	case workScore <= 12:
		return "200~300만원"
	case workScore <= 15:
		return "300~400만원"
	default:
		return "400만원 이상 (협의)"
	}
}

// EstimatedPrice is the one-call form used by the consultation views.
func EstimatedPrice(pageCount, sectionCount int) string {
	return PriceRange(WorkScore(pageCount, sectionCount))
}
