package domain

// Keys of the durable session store. Each key is written or removed as a
// whole value; absence is "unset", distinct from an empty string.
const (
	KeySessionID         = "session_id"
	KeyFirstPrompt       = "first_prompt"
	KeyCurrentQuestionID = "current_question_id"
	KeyAnswered          = "answered_questions"
)

// Keys lists every field the store may hold, in hydration order.
var Keys = []string{KeySessionID, KeyFirstPrompt, KeyCurrentQuestionID, KeyAnswered}

// Session is one user's attempt at the fixed-question assessment,
// identified by an opaque id issued by the coaching service.
type Session struct {
	ID                string
	FirstPrompt       string
	CurrentQuestionID string
	Answered          []string
}

// Matches reports whether the stored identity agrees with the id supplied
// by the invocation context. A mismatch invalidates the session for
// display purposes only and must never mutate stored data.
func (s Session) Matches(routeID string) bool {
	return s.ID != "" && s.ID == routeID
}

// HasAnswered reports whether questionID is already in the answered log.
func (s Session) HasAnswered(questionID string) bool {
	for _, id := range s.Answered {
		if id == questionID {
			return true
		}
	}
	return false
}

// AddAnswered appends questionID to the answered log unless already
// present, and reports whether the log changed. The log is
// order-significant: resumption is derived from its last element.
func (s *Session) AddAnswered(questionID string) bool {
	if s.HasAnswered(questionID) {
		return false
	}
	s.Answered = append(s.Answered, questionID)
	return true
}
