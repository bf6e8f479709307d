package vacation

type RequestVacationRequest struct {
	EmployeeID string `json:"employee_id" binding:"required,uuid"`
	StartDate  string `json:"start_date" binding:"required"`
	EndDate    string `json:"end_date" binding:"required"`
}

type VacationResponse struct {
	ID                   string `json:"id"`
	EmployeeID           string `json:"employee_id"`
	StartDate            string `json:"start_date"`
	EndDate              string `json:"end_date"`
	DaysTaken            int    `json:"days_taken"`
	AccumulatedDaysAfter int    `json:"accumulated_days_after"`
	LongServiceEmployee  bool   `json:"long_service_employee"`
}
