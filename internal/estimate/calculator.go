package estimate

import "math"

// Grade is the coarse complexity/price tier of a project.
type Grade string

const (
	GradeC Grade = "C"
	GradeB Grade = "B"
	GradeA Grade = "A"
	GradeS Grade = "S"
)

// GradeInfo carries the static display metadata for a grade.
type GradeInfo struct {
	Grade       Grade  `json:"grade"`
	MinPrice    int    `json:"minPrice"`
	MaxPrice    int    `json:"maxPrice"`
	Description string `json:"description"`
}

// GradeInfos maps each grade to its price band and label.
var GradeInfos = map[Grade]GradeInfo{
	GradeC: {Grade: GradeC, MinPrice: 50, MaxPrice: 150, Description: "기본형"},
	GradeB: {Grade: GradeB, MinPrice: 150, MaxPrice: 300, Description: "표준형"},
	GradeA: {Grade: GradeA, MinPrice: 300, MaxPrice: 500, Description: "프리미엄"},
	GradeS: {Grade: GradeS, MinPrice: 500, MaxPrice: 1000, Description: "전문개발"},
}

// unitPagePrice is the per-page price in webbuilder mode (10,000 KRW units).
const unitPagePrice = 10

// Selection is one chosen feature with its quantity.
type Selection struct {
	ID       string `json:"id"`
	Quantity int    `json:"quantity"`
}

// Input is a calculator request. Page and section counts apply to webbuilder
// mode only; counts and quantities are clamped rather than rejected.
type Input struct {
	Mode          Mode        `json:"mode"`
	PageCount     int         `json:"pageCount"`
	SectionCount  int         `json:"sectionCount"`
	IncludeMobile bool        `json:"includeMobile"`
	Selections    []Selection `json:"features"`
}

// LineItem is one priced row of the quote breakdown.
type LineItem struct {
	Feature  Feature `json:"feature"`
	Quantity int     `json:"quantity"`
	Total    int     `json:"total"` // 0 for note-only features
}

// Result is the calculator output. Prices are in units of 10,000 KRW; the
// add-on prices are rounded independently before summation.
type Result struct {
	Mode           Mode       `json:"mode"`
	Grade          Grade      `json:"grade"`
	TotalScore     int        `json:"totalScore"`
	ExtraPages     int        `json:"extraPages"`
	BasePrice      int        `json:"basePrice"`
	MobilePrice    int        `json:"mobilePrice"`
	MultilangPrice int        `json:"multilangPrice"`
	TotalPrice     int        `json:"totalPrice"`
	HasDiscussion  bool       `json:"hasDiscussion"`
	Items          []LineItem `json:"items"`
}

// Calculate dispatches to the model for the input's mode.
func Calculate(in Input) Result {
	if in.Mode == ModeCustom {
		return calculateCustom(in)
	}
	return calculateWebbuilder(in)
}

// resolve maps selections onto the mode's catalog, clamping quantities to a
// minimum of 1 and dropping unknown ids.
func resolve(mode Mode, selections []Selection) []LineItem {
	items := make([]LineItem, 0, len(selections))
	for _, sel := range selections {
		f, ok := FeatureByID(mode, sel.ID)
		if !ok {
			continue
		}
		qty := sel.Quantity
		if qty < 1 {
			qty = 1
		}
		items = append(items, LineItem{Feature: f, Quantity: qty, Total: f.Price * qty})
	}
	return items
}

// roundHalfUp rounds to the nearest integer with halves away from zero,
// matching how the original quotes were computed.
func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}

func calculateWebbuilder(in Input) Result {
	pageCount := in.PageCount
	if pageCount < 1 {
		pageCount = 1
	}
	sectionCount := in.SectionCount
	if sectionCount < 0 {
		sectionCount = 0
	}

	items := resolve(ModeWebbuilder, in.Selections)

	pageScore := 3
	switch {
	case pageCount <= 5:
		pageScore = 1
	case pageCount <= 15:
		pageScore = 2
	}

	// Section overflow beyond the first four, expressed as extra pages.
	extraPages := (max(0, sectionCount-4) + 3) / 4

	functionScore := DifficultyBasic.Score()
	hasDiscussion := false
	hasMultilang := false
	for _, it := range items {
		if it.Feature.RequiresDiscussion {
			hasDiscussion = true
		}
		if it.Feature.ID == multilangFeatureID {
			hasMultilang = true
		}
		if s := it.Feature.Difficulty.Score(); s > functionScore {
			functionScore = s
		}
	}

	totalScore := pageScore + extraPages + functionScore

	var grade Grade
	switch {
	case hasDiscussion || totalScore >= 8:
		grade = GradeS
	case totalScore >= 6:
		grade = GradeA
	case totalScore >= 4:
		grade = GradeB
	default:
		grade = GradeC
	}

	basePrice := pageCount*unitPagePrice + extraPages*unitPagePrice
	for _, it := range items {
		if it.Feature.Price > 0 {
			basePrice += it.Total
		}
	}

	mobilePrice := 0
	if in.IncludeMobile {
		mobilePrice = roundHalfUp(float64(basePrice) * 0.6)
	}
	multilangPrice := 0
	if hasMultilang {
		multilangPrice = roundHalfUp(float64(basePrice+mobilePrice) * 0.3)
	}

	return Result{
		Mode:           ModeWebbuilder,
		Grade:          grade,
		TotalScore:     totalScore,
		ExtraPages:     extraPages,
		BasePrice:      basePrice,
		MobilePrice:    mobilePrice,
		MultilangPrice: multilangPrice,
		TotalPrice:     basePrice + mobilePrice + multilangPrice,
		HasDiscussion:  hasDiscussion,
		Items:          items,
	}
}

func calculateCustom(in Input) Result {
	items := resolve(ModeCustom, in.Selections)

	totalPrice := 0
	hasAdvanced := false
	for _, it := range items {
		totalPrice += it.Total
		if it.Feature.Difficulty == DifficultyAdvanced {
			hasAdvanced = true
		}
	}

	var grade Grade
	switch {
	case totalPrice >= 500:
		grade = GradeS
	case totalPrice >= 300 || hasAdvanced:
		grade = GradeA
	case totalPrice >= 150:
		grade = GradeB
	default:
		grade = GradeC
	}

	return Result{
		Mode:       ModeCustom,
		Grade:      grade,
		TotalPrice: totalPrice,
		Items:      items,
	}
}
