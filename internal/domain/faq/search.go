package faq

import "strings"

// SearchFAQs returns records whose question, clause or document type contains
// the normalized query. Order follows the collection.
func SearchFAQs(query string, data Collection) []SearchResult {
	results := make([]SearchResult, 0)
	if len(data) == 0 {
		return results
	}

	needle := strings.ReplaceAll(strings.TrimSpace(strings.ToLower(query)), "?", "")
	for _, rec := range data {
		question := strings.ToLower(rec.Question)
		clause := strings.ToLower(rec.ClauseName)
		docType := strings.ToLower(rec.DocumentTypeName)
		if strings.Contains(question, needle) || strings.Contains(clause, needle) || strings.Contains(docType, needle) {
			results = append(results, toSearchResult(rec))
		}
	}
	return results
}

// HandleSearch cleans fuzzy commands before searching; other input is searched as-is.
func HandleSearch(query string, data Collection) []SearchResult {
	if IsFuzzyCommand(query) {
		return SearchFAQs(CleanQuery(query), data)
	}
	return SearchFAQs(query, data)
}

func toSearchResult(rec Record) SearchResult {
	submitter := rec.SubmittedByUserName
	if submitter == "" {
		submitter = UnknownSubmitter
	}
	return SearchResult{
		Question:     strings.ToLower(rec.Question),
		Answer:       rec.Response,
		Clause:       strings.ToLower(rec.ClauseName),
		DocumentType: strings.ToLower(rec.DocumentTypeName),
		SubmittedBy:  submitter,
	}
}
