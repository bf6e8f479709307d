package training

type CreateTrainingRequest struct {
	EmployeeID  string `json:"employee_id" binding:"required,uuid"`
	Date        string `json:"date" binding:"required"`
	Course      string `json:"course" binding:"required"`
	Score       string `json:"score" binding:"required"`
	Institution string `json:"institution"`
	Comments    string `json:"comments"`
}

type UpdateTrainingRequest struct {
	Date        string `json:"date" binding:"required"`
	Course      string `json:"course" binding:"required"`
	Score       string `json:"score" binding:"required"`
	Institution string `json:"institution"`
	Comments    string `json:"comments"`
}

type TrainingResponse struct {
	ID          string `json:"id"`
	EmployeeID  string `json:"employee_id"`
	Date        string `json:"date"`
	Course      string `json:"course"`
	Score       string `json:"score"`
	Institution string `json:"institution,omitempty"`
	Comments    string `json:"comments,omitempty"`
}
