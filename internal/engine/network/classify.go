package network

import "strings"

// Category is one tag from the fixed connection taxonomy.
type Category string

const (
	CategoryFounders    Category = "Founders"
	CategoryExecutives  Category = "Executives"
	CategoryLeadership  Category = "Leadership"
	CategoryRecruiting  Category = "Recruiting"
	CategoryInvestors   Category = "Investors"
	CategoryEngineering Category = "Engineering"
	CategoryProduct     Category = "Product"
	CategoryDesign      Category = "Design"
	CategorySales       Category = "Sales"
	CategoryMarketing   Category = "Marketing"
	CategoryConsulting  Category = "Consulting"
	CategoryStudents    Category = "Students"
	CategoryData        Category = "Data"
	CategoryFinance     Category = "Finance"
	CategoryLegal       Category = "Legal"
	CategoryOperations  Category = "Operations"
	CategoryOther       Category = "Other"
)

// categoryRule matches when the lowercased title starts with any prefix or
// contains any substring. Matching is substring-based on purpose: "strategic"
// must hit Consulting via "strateg".
type categoryRule struct {
	tag      Category
	prefixes []string
	contains []string
}

// categoryRules is evaluated top-down, first match wins. Order is load-bearing:
// leadership and seniority rules sit above the function rules they overlap
// with ("Head of Engineering" is Leadership, not Engineering; "VP of Sales"
// is Leadership, not Sales).
var categoryRules = []categoryRule{
	{tag: CategoryFounders, contains: []string{"founder", "co-founder", "cofounder", "owner"}},
	{tag: CategoryExecutives, prefixes: []string{"ceo", "cto", "cfo", "coo", "cmo", "cio"}, contains: []string{"chief"}},
	{tag: CategoryLeadership, prefixes: []string{"vp"}, contains: []string{"vice president", "director", "head of"}},
	{tag: CategoryRecruiting, contains: []string{"recruit", "talent", "hr", "human resource", "people ops"}},
	{tag: CategoryInvestors, contains: []string{"investor", "partner", "vc", "venture", "capital", "angel"}},
	{tag: CategoryEngineering, contains: []string{"engineer", "developer", "software", "swe", "sde", "programmer", "architect"}},
	{tag: CategoryProduct, contains: []string{"product", "pm", "program manager"}},
	{tag: CategoryDesign, contains: []string{"design", "ux", "ui", "creative"}},
	{tag: CategorySales, contains: []string{"sales", "account", "business dev", "bd"}},
	{tag: CategoryMarketing, contains: []string{"market", "growth", "brand", "content", "seo", "social"}},
	{tag: CategoryConsulting, contains: []string{"consult", "advisor", "strateg"}},
	{tag: CategoryStudents, contains: []string{"student", "intern", "university", "college", "phd", "research"}},
	{tag: CategoryData, contains: []string{"analy", "data", "scientist"}},
	{tag: CategoryFinance, contains: []string{"finance", "accounting", "controller"}},
	{tag: CategoryLegal, contains: []string{"legal", "counsel", "attorney", "lawyer"}},
	{tag: CategoryOperations, contains: []string{"operat", "admin", "office", "assistant"}},
}

// Categorize maps a job title to its category tag. Pure and total:
// an empty or unmatched title yields CategoryOther.
func Categorize(position string) Category {
	title := strings.ToLower(strings.TrimSpace(position))
	if title == "" {
		return CategoryOther
	}
	for _, rule := range categoryRules {
		for _, p := range rule.prefixes {
			if strings.HasPrefix(title, p) {
				return rule.tag
			}
		}
		for _, sub := range rule.contains {
			if strings.Contains(title, sub) {
				return rule.tag
			}
		}
	}
	return CategoryOther
}
