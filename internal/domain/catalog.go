package domain

// Platform describes one of the fixed delivery approaches shown to the
// salesperson during a consultation. The metadata is static.
type Platform struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	PriceHint   string `json:"priceHint"`
}

// Platforms is the fixed delivery-platform catalog.
var Platforms = []Platform{
	{
		ID:          "webbuilder",
		Name:        "웹빌더 (아임웹)",
		Description: "템플릿 기반 제작. 짧은 일정과 합리적인 비용, 유지보수가 쉽습니다.",
		PriceHint:   "100~400만원",
	},
	{
		ID:          "ecommerce",
		Name:        "쇼핑몰 플랫폼",
		Description: "카페24 등 커머스 특화 플랫폼. 결제/배송/재고 기능이 기본 제공됩니다.",
		PriceHint:   "200~500만원",
	},
	{
		ID:          "ai",
		Name:        "AI 생성 빌더",
		Description: "AI가 초안을 생성하고 사람이 다듬는 방식. 빠르지만 자유도가 낮습니다.",
		PriceHint:   "50~150만원",
	},
	{
		ID:          "custom",
		Name:        "커스텀 개발",
		Description: "전용 설계/개발. 기능 제약이 없는 대신 일정과 비용이 가장 큽니다.",
		PriceHint:   "300만원 이상",
	},
}

// PlatformByID looks up a platform by id. The second return is false for
// unknown ids.
func PlatformByID(id string) (Platform, bool) {
	for _, p := range Platforms {
		if p.ID == id {
			return p, true
		}
	}
	return Platform{}, false
}

// Preset is a quick quote package the salesperson can apply in one click.
type Preset struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Price     string   `json:"price"`
	Pages     int      `json:"pages"`
	Sections  int      `json:"sections"`
	Recommend string   `json:"recommend"`
	Desc      string   `json:"desc"`
	Features  []string `json:"features"`
}

// Presets are the three standard quote packages.
var Presets = []Preset{
	{
		ID:        "A",
		Name:      "A안 - 미니멀",
		Price:     "100~150만원",
		Pages:     3,
		Sections:  12,
		Recommend: "소규모 개인사업자, 1인 기업",
		Desc:      "회사소개 중심의 컴팩트한 구성",
		Features:  []string{"홈", "서비스 안내", "문의하기"},
	},
	{
		ID:        "B",
		Name:      "B안 - 스탠다드",
		Price:     "150~220만원",
		Pages:     5,
		Sections:  25,
		Recommend: "중소기업, 스타트업",
		Desc:      "브랜드 신뢰도를 높이는 표준 구성",
		Features:  []string{"홈", "회사소개", "서비스", "포트폴리오", "문의"},
	},
	{
		ID:        "C",
		Name:      "C안 - 프리미엄",
		Price:     "250~400만원",
		Pages:     10,
		Sections:  50,
		Recommend: "중견기업, 상세 정보 필요",
		Desc:      "방대한 콘텐츠와 상세한 서비스 설명",
		Features:  []string{"다국어 가능", "상세 페이지 다수", "커스텀 기능"},
	},
}

// SectionSample maps a familiar page style to a typical section count,
// used to help customers gauge scale.
type SectionSample struct {
	Name     string `json:"name"`
	Sections int    `json:"sections"`
}

// SectionSamples are reference points for section-count discussions.
var SectionSamples = []SectionSample{
	{Name: "간단한 소개", Sections: 3},
	{Name: "일반적인 회사소개", Sections: 5},
	{Name: "보통 랜딩페이지", Sections: 8},
	{Name: "상세한 서비스", Sections: 12},
	{Name: "풀 스크롤 사이트", Sections: 20},
}
