package evaluation

type CreateEvaluationRequest struct {
	EmployeeID string `json:"employee_id" binding:"required,uuid"`
	Date       string `json:"date" binding:"required"`
	Evaluator  string `json:"evaluator" binding:"required"`
	Factor     string `json:"factor" binding:"required"`
	Rating     string `json:"rating" binding:"required"`
	Comments   string `json:"comments"`
}

type UpdateEvaluationRequest struct {
	Date      string `json:"date" binding:"required"`
	Evaluator string `json:"evaluator" binding:"required"`
	Factor    string `json:"factor" binding:"required"`
	Rating    string `json:"rating" binding:"required"`
	Comments  string `json:"comments"`
}

type EvaluationResponse struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	Evaluator  string `json:"evaluator"`
	Factor     string `json:"factor"`
	Rating     string `json:"rating"`
	Comments   string `json:"comments,omitempty"`
}
