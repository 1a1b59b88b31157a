// Package domain defines the core consultation types.
package domain

import (
	"crypto/rand"
	"fmt"
	"time"
)

// SessionIDLength is the length of a shareable session code.
const SessionIDLength = 6

// sessionIDAlphabet excludes visually ambiguous characters (0/O, 1/I/L).
const sessionIDAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// Session is one customer consultation record, identified by a short
// shareable code. The data column is stored as a single JSON value.
type Session struct {
	ID        string      `json:"id"`
	Data      SessionData `json:"data"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// SessionData holds every questionnaire answer for a consultation. Each memo
// field has a customer-visible variant and a salesperson-private variant.
// JSON tags match the stored column keys; older records missing newer fields
// are backfilled by unmarshalling over DefaultSessionData.
type SessionData struct {
	// Site type
	SiteType            string `json:"siteType"`
	CustomSiteType      string `json:"customSiteType"`
	SiteTypeMemo        string `json:"siteTypeMemo"`
	SiteTypePrivateMemo string `json:"siteTypePrivateMemo"`

	// Planning status
	HasPlan         string `json:"hasPlan"`
	MenuStructure   string `json:"menuStructure"`
	PlanMemo        string `json:"planMemo"`
	PlanPrivateMemo string `json:"planPrivateMemo"`

	// Content readiness
	HasContent         string `json:"hasContent"`
	ContentMemo        string `json:"contentMemo"`
	ContentPrivateMemo string `json:"contentPrivateMemo"`

	// Scale
	PageCount       int    `json:"pageCount"`
	SectionCount    int    `json:"sectionCount"`
	SizeMemo        string `json:"sizeMemo"`
	SizePrivateMemo string `json:"sizePrivateMemo"`

	// Optional features
	Features           []string `json:"features"`
	CustomFeature      string   `json:"customFeature"`
	FeatureMemo        string   `json:"featureMemo"`
	FeaturePrivateMemo string   `json:"featurePrivateMemo"`

	// Reference sites
	ReferenceURLs        []string `json:"referenceUrls"`
	ReferenceMemo        string   `json:"referenceMemo"`
	ReferencePrivateMemo string   `json:"referencePrivateMemo"`

	// Schedule
	Deadline            string `json:"deadline"` // ISO date (YYYY-MM-DD)
	DeadlineFlexible    bool   `json:"deadlineFlexible"`
	ScheduleMemo        string `json:"scheduleMemo"`
	SchedulePrivateMemo string `json:"schedulePrivateMemo"`

	// Budget
	Budget            string `json:"budget"`
	CustomBudget      string `json:"customBudget"`
	BudgetMemo        string `json:"budgetMemo"`
	BudgetPrivateMemo string `json:"budgetPrivateMemo"`

	// Misc
	AdditionalMemo        string `json:"additionalMemo"`
	AdditionalPrivateMemo string `json:"additionalPrivateMemo"`

	// Delivery platform, one of the Platforms ids (empty until chosen).
	Platform string `json:"platform"`

	// Section the salesperson is focused on, sent with every sync.
	AdminSection string `json:"adminSection"`
}

// DefaultAdminSection is the cursor assigned to new sessions and substituted
// for unknown cursors on sync.
const DefaultAdminSection = "sitetype"

// Sections lists the questionnaire sections in display order. AdminSection is
// always one of these.
var Sections = []string{
	"sitetype",
	"plan",
	"content",
	"size",
	"features",
	"reference",
	"schedule",
	"budget",
	"summary",
}

// IsValidSection reports whether name is a known questionnaire section.
func IsValidSection(name string) bool {
	for _, s := range Sections {
		if s == name {
			return true
		}
	}
	return false
}

// DefaultSessionData returns the canonical empty-session template. Every
// field carries its explicit default; reads merge stored values over a fresh
// copy of this template.
func DefaultSessionData() SessionData {
	return SessionData{
		PageCount:     5,
		SectionCount:  15,
		Features:      []string{},
		ReferenceURLs: []string{"", "", ""},
		AdminSection:  DefaultAdminSection,
	}
}

// NewSessionID generates a fresh 6-character session code from the
// unambiguous alphabet.
func NewSessionID() (string, error) {
	buf := make([]byte, SessionIDLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate session id: %w", err)
	}
	id := make([]byte, SessionIDLength)
	for i, b := range buf {
		id[i] = sessionIDAlphabet[int(b)%len(sessionIDAlphabet)]
	}
	return string(id), nil
}
