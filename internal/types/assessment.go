// Package types provides type definitions for structured data used throughout the resume-renderer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// IssueCode identifies the kind of contract finding an assessment reports.
// The set is closed; callers may switch exhaustively on it.
type IssueCode string

// Assessment issue codes.
const (
	IssuePageOverflow       IssueCode = "PAGE_OVERFLOW"
	IssueModeOverflow       IssueCode = "MODE_OVERFLOW"
	IssueSummaryContract    IssueCode = "SUMMARY_CONTRACT"
	IssueExperienceContract IssueCode = "EXPERIENCE_CONTRACT"
	IssueProjectsContract   IssueCode = "PROJECTS_CONTRACT"
	IssueSkillsContract     IssueCode = "SKILLS_CONTRACT"
	IssueEducationContract  IssueCode = "EDUCATION_CONTRACT"
)

// Issue represents a single structured assessment finding. Findings carry
// measured values in the message; they are never raised as errors.
type Issue struct {
	Code    IssueCode `json:"code"`
	Message string    `json:"message"`
}

// Assessment is the result of replaying the render pipeline without
// producing bytes: would this document, under these options, violate any
// contract or overflow the requested mode?
type Assessment struct {
	OK            bool    `json:"ok"`
	RequestedMode Mode    `json:"requested_mode"`
	ModeUsed      Mode    `json:"mode_used"`
	Pages         int     `json:"pages"`
	Issues        []Issue `json:"issues"`
}
