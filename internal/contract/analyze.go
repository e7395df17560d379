package contract

import "github.com/alexanderramin/grapple/internal/domain"

type AnalyzeRequest struct {
	Text string
	// User is optional. When set, matches carry the user's mastery levels.
	User *domain.UserContext
}

func NewAnalyzeRequest(text string) AnalyzeRequest {
	return AnalyzeRequest{Text: text}
}

// WithUser returns a copy of the request scoped to uc.
func (r AnalyzeRequest) WithUser(uc domain.UserContext) AnalyzeRequest {
	r.User = &uc
	return r
}
