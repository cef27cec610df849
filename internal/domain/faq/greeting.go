package faq

import "fmt"

const greetingMessage = "Hi, i'm LUAN, Infracredit’s AI bot. How can I help you today?"

const (
	fallbackClause   = "Clause 1"
	fallbackDocument = "Document 1"
	fallbackClient   = "Client 1"
)

// BuildGreeting samples the first non-empty clause, document type and submitter
// seen in data and renders them into example queries.
func BuildGreeting(data Collection) Greeting {
	clause := firstNonEmpty(data, func(r Record) string { return r.ClauseName }, fallbackClause)
	doc := firstNonEmpty(data, func(r Record) string { return r.DocumentTypeName }, fallbackDocument)
	client := firstNonEmpty(data, func(r Record) string { return r.SubmittedByUserName }, fallbackClient)

	return Greeting{
		Message: greetingMessage,
		Examples: []string{
			fmt.Sprintf("List Negotiated issue about document type '%s'", doc),
			fmt.Sprintf("List Negotiated issue about client type '%s'", client),
			fmt.Sprintf("Tell me about FNI for clause '%s'", clause),
			fmt.Sprintf("Tell me about FNI for document '%s'", doc),
			fmt.Sprintf("Show me about FNI for document '%s'", doc),
			fmt.Sprintf("Show me about FNI for clause '%s'", clause),
			fmt.Sprintf("What is the frequently negotiated issue for '%s'?", doc),
		},
	}
}

func firstNonEmpty(data Collection, field func(Record) string, fallback string) string {
	for _, rec := range data {
		if v := field(rec); v != "" {
			return v
		}
	}
	return fallback
}
