package faq

// UnknownSubmitter is reported when a record carries no submitter name.
const UnknownSubmitter = "Unknown User"

// NoMatchesMessage is returned in place of results when a search finds nothing.
const NoMatchesMessage = "No matches found. Try rephrasing your query or check the document title."

// Record is a single upstream FAQ entry. Missing fields are empty strings.
type Record struct {
	Question            string `json:"question"`
	Response            string `json:"response"`
	ClauseName          string `json:"clauseName"`
	DocumentTypeName    string `json:"documentTypeName"`
	SubmittedByUserName string `json:"submittedByUserName"`
}

// Collection is the full FAQ set in upstream order.
type Collection []Record

// SearchResult is the projection of a matched record returned to callers.
type SearchResult struct {
	Question     string `json:"question"`
	Answer       string `json:"answer"`
	Clause       string `json:"clause"`
	DocumentType string `json:"documentType"`
	SubmittedBy  string `json:"submittedBy"`
}

// SearchResponse carries either results or an informational message.
type SearchResponse struct {
	Results []SearchResult `json:"results,omitempty"`
	Message string         `json:"message,omitempty"`
}

// Greeting is the welcome message plus example queries built from live data.
type Greeting struct {
	Message  string   `json:"message"`
	Examples []string `json:"examples"`
}
