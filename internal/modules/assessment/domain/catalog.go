package domain

// Question is one entry of the static assessment catalog. The catalog is
// fixed at build time and is not user data.
type Question struct {
	ID   string
	Text string
}

// Catalog is the ordered list of questions presented to every user.
// It must be non-empty by construction.
type Catalog []Question

// DefaultCatalog returns the nine-question AI readiness catalog.
func DefaultCatalog() Catalog {
	return Catalog{
		{ID: "q1", Text: "What are your biggest challenges with AI adoption in your team?"},
		{ID: "q2", Text: "How much time does your team spend on repetitive tasks each week?"},
		{ID: "q3", Text: "What manual processes would you like to automate first?"},
		{ID: "q4", Text: "How comfortable is your team with using AI tools?"},
		{ID: "q5", Text: "What outcomes would make AI adoption successful for you?"},
		{ID: "q6", Text: "What concerns do you have about implementing AI?"},
		{ID: "q7", Text: "How do you currently measure team productivity?"},
		{ID: "q8", Text: "What training or support would your team need?"},
		{ID: "q9", Text: "What is your timeline for seeing results from AI adoption?"},
	}
}

func (c Catalog) indexOf(questionID string) int {
	for i, q := range c {
		if q.ID == questionID {
			return i
		}
	}
	return -1
}

// ActiveIndex derives the resumption point from the order-significant
// answered log: the position immediately after the catalog position of
// the log's last element, clamped to the final index. An empty log (or a
// last element unknown to the catalog) resumes at the first question.
func (c Catalog) ActiveIndex(answered []string) int {
	if len(answered) == 0 {
		return 0
	}
	last := c.indexOf(answered[len(answered)-1])
	next := last + 1
	if next > len(c)-1 {
		next = len(c) - 1
	}
	return next
}

func (c Catalog) IsLast(index int) bool {
	return index == len(c)-1
}

// Progress returns the answered fraction in [0,1], for display only.
func (c Catalog) Progress(answeredCount int) float64 {
	if answeredCount < 0 {
		answeredCount = 0
	}
	if answeredCount > len(c) {
		answeredCount = len(c)
	}
	return float64(answeredCount) / float64(len(c))
}
