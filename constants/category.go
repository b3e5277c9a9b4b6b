package constants

import "strings"

// PIICategory is the canonical taxonomy for detected spans.
// Stable values (store these exact strings in DB and reports).
type PIICategory string

const (
	CategoryAadhaar     PIICategory = "AADHAAR"      // 12-digit national ID, Verhoeff checksum
	CategoryPAN         PIICategory = "PAN"          // permanent account number (government ID)
	CategoryCreditCard  PIICategory = "CREDIT_CARD"  // 13-19 digits, Luhn checksum
	CategoryIFSC        PIICategory = "IFSC"         // bank routing code, fixed grammar
	CategoryBankAccount PIICategory = "BANK_ACCOUNT" // 9-18 digit account number
	CategoryPhone       PIICategory = "PHONE"
	CategoryEmail       PIICategory = "EMAIL"
	CategoryName        PIICategory = "NAME"    // free text, model-recognized
	CategoryAddress     PIICategory = "ADDRESS" // free text, model-recognized
)

// CustomCategoryPrefix marks caller-defined categories registered at runtime.
const CustomCategoryPrefix = "CUSTOM_"

// categoryPriority orders categories for overlap tie-breaking: structured,
// checksum-verifiable PII always outranks heuristic PII. Higher wins.
var categoryPriority = map[PIICategory]int{
	CategoryAadhaar:     90,
	CategoryPAN:         85,
	CategoryCreditCard:  80,
	CategoryIFSC:        75,
	CategoryBankAccount: 70,
	CategoryPhone:       60,
	CategoryEmail:       60,
	CategoryName:        30,
	CategoryAddress:     30,
}

// CategoryPriority returns the tie-break rank for a category.
// Custom categories sit between structured and free-text detectors.
func CategoryPriority(c PIICategory) int {
	if p, ok := categoryPriority[c]; ok {
		return p
	}
	if IsCustomCategory(c) {
		return 50
	}
	return 0
}

// IsStructured reports whether the category has a verifiable checksum or
// fixed structural grammar (vs. model/heuristic recognition).
func IsStructured(c PIICategory) bool {
	switch c {
	case CategoryAadhaar, CategoryPAN, CategoryCreditCard, CategoryIFSC, CategoryBankAccount:
		return true
	}
	return false
}

func IsCustomCategory(c PIICategory) bool {
	return strings.HasPrefix(string(c), CustomCategoryPrefix)
}

// Placeholder is the fixed irreversible-mask replacement for a category,
// e.g. "[PHONE]". It carries only the category label.
func (c PIICategory) Placeholder() string {
	return "[" + string(c) + "]"
}

// Categories holds the allowed category values for schema validation.
var Categories = []string{
	string(CategoryAadhaar), string(CategoryPAN), string(CategoryCreditCard),
	string(CategoryIFSC), string(CategoryBankAccount), string(CategoryPhone),
	string(CategoryEmail), string(CategoryName), string(CategoryAddress),
}
