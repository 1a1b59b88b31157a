// Package summary renders consultation data as plain-text blocks for
// clipboard export.
package summary

import (
	"fmt"
	"strings"
	"time"

	"github.com/consultdesk/server/internal/domain"
	"github.com/consultdesk/server/internal/estimate"
)

const divider = "━━━━━━━━━━━━━━━━━━━━━\n"

var siteTypeLabels = map[string]string{
	"company":     "회사/브랜드 소개",
	"shopping":    "쇼핑몰",
	"reservation": "예약 사이트",
	"portfolio":   "포트폴리오",
	"landing":     "랜딩페이지",
	"blog":        "블로그/매거진",
}

var planLabels = map[string]string{
	"yes":     "기획 완료",
	"partial": "부분 기획",
	"no":      "기획 필요",
}

var contentLabels = map[string]string{
	"yes":     "콘텐츠 있음",
	"partial": "일부 있음",
	"no":      "콘텐츠 필요",
}

var budgetLabels = map[string]string{
	"under100": "100만원 미만",
	"100-200":  "100~200만원",
	"200-300":  "200~300만원",
	"300-500":  "300~500만원",
	"over500":  "500만원 이상",
}

// label resolves an enum value through a lookup table, falling back to the
// raw value when unmapped.
func label(table map[string]string, value, fallback string) string {
	if l, ok := table[value]; ok {
		return l
	}
	if value != "" {
		return value
	}
	return fallback
}

// Consultation renders the section-by-section consultation summary. Sections
// whose underlying fields are empty are skipped; free-text overrides take
// precedence over enum labels. The trailing date is the consultation date.
func Consultation(data domain.SessionData, now time.Time) string {
	var b strings.Builder
	b.WriteString("📋 고객 상담 내용 정리\n")
	b.WriteString(divider)
	b.WriteString("\n")

	if data.SiteType != "" || data.CustomSiteType != "" {
		typeLabel := data.CustomSiteType
		if typeLabel == "" {
			typeLabel = label(siteTypeLabels, data.SiteType, data.SiteType)
		}
		fmt.Fprintf(&b, "【사이트 유형】 %s\n", typeLabel)
		if data.SiteTypeMemo != "" {
			fmt.Fprintf(&b, "  메모: %s\n", data.SiteTypeMemo)
		}
		b.WriteString("\n")
	}

	if data.HasPlan != "" {
		fmt.Fprintf(&b, "【기획 상태】 %s\n", label(planLabels, data.HasPlan, "기획 필요"))
		if data.MenuStructure != "" {
			fmt.Fprintf(&b, "  메뉴: %s\n", data.MenuStructure)
		}
		if data.PlanMemo != "" {
			fmt.Fprintf(&b, "  메모: %s\n", data.PlanMemo)
		}
		b.WriteString("\n")
	}

	if data.HasContent != "" {
		fmt.Fprintf(&b, "【콘텐츠】 %s\n", label(contentLabels, data.HasContent, "콘텐츠 필요"))
		if data.ContentMemo != "" {
			fmt.Fprintf(&b, "  메모: %s\n", data.ContentMemo)
		}
		b.WriteString("\n")
	}

	b.WriteString("【규모】\n")
	fmt.Fprintf(&b, "  • 페이지: 약 %d페이지\n", data.PageCount)
	fmt.Fprintf(&b, "  • 섹션: 약 %d섹션\n", data.SectionCount)
	fmt.Fprintf(&b, "  • 예상 견적: %s\n", estimate.EstimatedPrice(data.PageCount, data.SectionCount))
	if data.SizeMemo != "" {
		fmt.Fprintf(&b, "  메모: %s\n", data.SizeMemo)
	}
	b.WriteString("\n")

	if data.Budget != "" || data.CustomBudget != "" {
		budgetLabel := data.CustomBudget
		if budgetLabel == "" {
			budgetLabel = label(budgetLabels, data.Budget, "미정")
		}
		fmt.Fprintf(&b, "【고객 예산】 %s\n", budgetLabel)
		if data.BudgetMemo != "" {
			fmt.Fprintf(&b, "  메모: %s\n", data.BudgetMemo)
		}
		b.WriteString("\n")
	}

	if data.AdditionalMemo != "" {
		fmt.Fprintf(&b, "【추가 메모】\n%s\n\n", data.AdditionalMemo)
	}

	b.WriteString(divider)
	fmt.Fprintf(&b, "📅 상담일: %s", now.Format("2006. 1. 2."))

	return b.String()
}

// Quote renders the calculator's clipboard export for a computed estimate.
func Quote(in estimate.Input, res estimate.Result) string {
	var b strings.Builder
	if res.Mode == estimate.ModeCustom {
		b.WriteString("📋 커스텀 개발 견적 요약\n")
	} else {
		b.WriteString("📋 웹빌더(아임웹) 견적 요약\n")
	}
	b.WriteString(divider)
	b.WriteString("\n")

	if res.Mode == estimate.ModeWebbuilder {
		mobile := "미포함"
		if in.IncludeMobile {
			mobile = "포함"
		}
		fmt.Fprintf(&b, "📄 페이지: %d개\n📦 섹션: %d개\n📱 모바일: %s\n\n", in.PageCount, in.SectionCount, mobile)
	}

	if len(res.Items) > 0 {
		b.WriteString("【선택된 기능】\n")
		for _, it := range res.Items {
			name := it.Feature.Name
			if it.Quantity > 1 {
				name = fmt.Sprintf("%s x%d", name, it.Quantity)
			}
			priceText := it.Feature.Note
			if it.Feature.Price > 0 {
				priceText = fmt.Sprintf("+%d만원", it.Total)
			}
			fmt.Fprintf(&b, "  • %s: %s\n", name, priceText)
		}
		b.WriteString("\n")
	}

	b.WriteString(divider)
	fmt.Fprintf(&b, "💰 예상 비용: 약 %d만원\n\n※ 실제 비용은 상세 상담 후 확정됩니다.", res.TotalPrice)

	return b.String()
}
