package estimate

// Difficulty is the implementation-difficulty tier of an optional feature.
type Difficulty string

const (
	DifficultyBasic        Difficulty = "basic"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
	DifficultyDiscuss      Difficulty = "discuss"
)

// Score returns the ordinal used for grade computation. Unknown tiers count
// as basic.
func (d Difficulty) Score() int {
	switch d {
	case DifficultyIntermediate:
		return 2
	case DifficultyAdvanced:
		return 3
	case DifficultyDiscuss:
		return 5
	default:
		return 1
	}
}

// Label returns the Korean display label for the tier.
func (d Difficulty) Label() string {
	switch d {
	case DifficultyIntermediate:
		return "중급"
	case DifficultyAdvanced:
		return "고급"
	case DifficultyDiscuss:
		return "협의필요"
	default:
		return "기본"
	}
}

// Mode selects which feature catalog and pricing model applies.
type Mode string

const (
	ModeWebbuilder Mode = "webbuilder"
	ModeCustom     Mode = "custom"
)

// Feature is one optional capability with a price (in units of 10,000 KRW),
// a difficulty tier, and a flag for whether it needs human discussion before
// quoting. Zero-priced features contribute only their note text.
type Feature struct {
	ID                 string     `json:"id"`
	Name               string     `json:"name"`
	Description        string     `json:"description"`
	Price              int        `json:"price"`
	Difficulty         Difficulty `json:"difficulty"`
	Note               string     `json:"note,omitempty"`
	Tags               []string   `json:"tags,omitempty"`
	RequiresDiscussion bool       `json:"requiresDiscussion,omitempty"`
}

// WebbuilderFeatures is the catalog for webbuilder (Imweb) projects.
var WebbuilderFeatures = []Feature{
	{ID: "wb-form", Name: "기본 문의폼", Description: "문의폼이 10개 이상 또는 디자인이 필요하면 논의 필요", Price: 5, Difficulty: DifficultyBasic, Tags: []string{"문의폼"}},
	{ID: "wb-page", Name: "페이지 당 가격", Description: "기본 페이지 추가", Price: 10, Difficulty: DifficultyBasic, Tags: []string{"페이지"}},
	{ID: "wb-section", Name: "4개 섹션당 추가 비용", Description: "4개 섹션 = 10만 (페이지 1개 분량)", Price: 10, Difficulty: DifficultyBasic, Tags: []string{"페이지", "섹션"}},
	{ID: "wb-mobile", Name: "모바일 페이지 비용", Description: "+ PC 비용의 60%", Price: 0, Difficulty: DifficultyBasic, Note: "PC 비용의 60%"},
	{ID: "wb-reservation", Name: "예약 위젯", Description: "PG사 연결 및 행정 소요가 많음", Price: 20, Difficulty: DifficultyIntermediate, Tags: []string{"예약"}},
	{ID: "wb-payment", Name: "결제 위젯", Description: "PG사 연결 및 행정 소요가 많음", Price: 20, Difficulty: DifficultyIntermediate, Tags: []string{"결제"}},
	{ID: "wb-member", Name: "로그인/회원가입", Description: "회원 가입/마이페이지", Price: 5, Difficulty: DifficultyBasic, Tags: []string{"회원"}},
	{ID: "wb-board", Name: "게시판 위젯", Description: "게시판", Price: 5, Difficulty: DifficultyBasic, Tags: []string{"게시판"}},
	{ID: "wb-multilang", Name: "다국어 지원", Description: "프로젝트 총 비용의 30%, 언어별 메뉴/페이지 세팅", Price: 0, Difficulty: DifficultyIntermediate, Note: "총 비용의 30%", Tags: []string{"다국어"}},
	{ID: "wb-animation", Name: "애니메이션 효과", Description: "레퍼런스 필수로 필요", Price: 50, Difficulty: DifficultyAdvanced, Tags: []string{"애니메이션", "인터렉션"}},
	{ID: "wb-api", Name: "외부 API 연동", Description: "협의 필요 (불가할 가능성이 높음)", Price: 100, Difficulty: DifficultyDiscuss, RequiresDiscussion: true},
	{ID: "wb-erp", Name: "ERP/회계 양방향 API", Description: "아임웹 한계 초과", Price: 0, Difficulty: DifficultyDiscuss, Note: "협의", RequiresDiscussion: true},
	{ID: "wb-filter", Name: "상품 필터링", Description: "아임웹 기능으로 불가, 고급 코드 연계를 통해 가능", Price: 100, Difficulty: DifficultyAdvanced},
	{ID: "wb-naver-login", Name: "네이버 로그인", Description: "행정 소요 약 1시간", Price: 10, Difficulty: DifficultyIntermediate},
	{ID: "wb-kakao-login", Name: "카카오 로그인", Description: "행정 소요 약 1시간", Price: 10, Difficulty: DifficultyIntermediate},
}

// CustomFeatures is the catalog for fully-custom development.
var CustomFeatures = []Feature{
	{ID: "ct-landing", Name: "랜딩페이지 (1페이지)", Description: "전환 최적화 단일 페이지", Price: 100, Difficulty: DifficultyBasic},
	{ID: "ct-basic-5p", Name: "기본 홈페이지 (5페이지)", Description: "메인, 소개, 서비스, 갤러리, 연락처", Price: 200, Difficulty: DifficultyBasic},
	{ID: "ct-basic-10p", Name: "기본 홈페이지 (10페이지)", Description: "확장된 페이지 구성", Price: 350, Difficulty: DifficultyBasic},
	{ID: "ct-form", Name: "문의 폼", Description: "이메일 발송 포함", Price: 30, Difficulty: DifficultyBasic},
	{ID: "ct-reservation", Name: "예약/달력 시스템", Description: "날짜/시간 선택, 관리자 확인", Price: 150, Difficulty: DifficultyIntermediate},
	{ID: "ct-member", Name: "회원 기능", Description: "가입, 로그인, 마이페이지", Price: 150, Difficulty: DifficultyIntermediate},
	{ID: "ct-board", Name: "게시판", Description: "글쓰기, 댓글, 관리", Price: 80, Difficulty: DifficultyBasic},
	{ID: "ct-blog", Name: "블로그/뉴스 CMS", Description: "콘텐츠 관리 시스템", Price: 100, Difficulty: DifficultyIntermediate},
	{ID: "ct-gallery", Name: "포트폴리오/갤러리", Description: "이미지 업로드, 카테고리", Price: 60, Difficulty: DifficultyBasic},
	{ID: "ct-search", Name: "검색 기능", Description: "사이트 내 검색", Price: 50, Difficulty: DifficultyBasic},
	{ID: "ct-multilang", Name: "다국어 지원 (2개 언어)", Description: "언어 전환, 콘텐츠 관리", Price: 150, Difficulty: DifficultyIntermediate},
	{ID: "ct-shop", Name: "쇼핑몰 기본", Description: "상품 등록, 장바구니, 주문", Price: 400, Difficulty: DifficultyAdvanced},
	{ID: "ct-payment", Name: "결제 연동 (PG)", Description: "카드, 계좌이체, 간편결제", Price: 100, Difficulty: DifficultyIntermediate},
	{ID: "ct-coupon", Name: "쿠폰/할인 시스템", Description: "할인 코드, 자동 적용", Price: 60, Difficulty: DifficultyIntermediate},
	{ID: "ct-review", Name: "상품 리뷰", Description: "별점, 사진 리뷰", Price: 50, Difficulty: DifficultyBasic},
	{ID: "ct-api-basic", Name: "외부 API 연동 (기본)", Description: "지도, SNS 등 단순 연동", Price: 50, Difficulty: DifficultyBasic},
	{ID: "ct-api-complex", Name: "외부 API 연동 (복잡)", Description: "ERP, CRM 등 시스템 연동", Price: 250, Difficulty: DifficultyAdvanced},
	{ID: "ct-admin", Name: "관리자 대시보드", Description: "통계, 회원/주문 관리", Price: 300, Difficulty: DifficultyAdvanced},
	{ID: "ct-chat", Name: "실시간 채팅", Description: "1:1 문의, 채팅봇", Price: 200, Difficulty: DifficultyAdvanced},
	{ID: "ct-responsive", Name: "반응형 웹", Description: "PC/태블릿/모바일 최적화", Price: 80, Difficulty: DifficultyBasic, Note: "기본 포함 권장"},
	{ID: "ct-animation", Name: "인터랙티브 애니메이션", Description: "스크롤 효과, 모션", Price: 100, Difficulty: DifficultyIntermediate},
	{ID: "ct-seo", Name: "SEO 최적화", Description: "검색엔진 최적화", Price: 50, Difficulty: DifficultyBasic},
}

// multilangFeatureID triggers the 30% multilingual surcharge in webbuilder mode.
const multilangFeatureID = "wb-multilang"

// Catalog returns the feature catalog for the given mode.
func Catalog(mode Mode) []Feature {
	if mode == ModeCustom {
		return CustomFeatures
	}
	return WebbuilderFeatures
}

// FeatureByID looks a feature up in the given mode's catalog.
func FeatureByID(mode Mode, id string) (Feature, bool) {
	for _, f := range Catalog(mode) {
		if f.ID == id {
			return f, true
		}
	}
	return Feature{}, false
}
