// Package dto defines data transfer objects for API requests and responses.
package dto

// AskAdvisorRequest represents the request body for asking the financial advisor.
type AskAdvisorRequest struct {
	Question string `json:"question" binding:"required,min=1,max=2000"`
}

// AskAdvisorResponse represents the advisor's reply.
type AskAdvisorResponse struct {
	Advice string `json:"advice"`
}
