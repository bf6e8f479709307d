package remuneration

type CreateRemunerationRequest struct {
	EmployeeID          string  `json:"employee_id" binding:"required,uuid"`
	AFPID               *string `json:"afp_id" binding:"omitempty,uuid"`
	HealthPlanID        *string `json:"health_plan_id" binding:"omitempty,uuid"`
	GrossAmount         string  `json:"gross_amount" binding:"required"`
	Tax                 string  `json:"tax" binding:"required"`
	Deductions          string  `json:"deductions" binding:"required"`
	Bonus               string  `json:"bonus" binding:"required"`
	WelfareContribution string  `json:"welfare_contribution" binding:"required"`
}

type UpdateRemunerationRequest struct {
	AFPID               *string `json:"afp_id" binding:"omitempty,uuid"`
	HealthPlanID        *string `json:"health_plan_id" binding:"omitempty,uuid"`
	GrossAmount         string  `json:"gross_amount" binding:"required"`
	Tax                 string  `json:"tax" binding:"required"`
	Deductions          string  `json:"deductions" binding:"required"`
	Bonus               string  `json:"bonus" binding:"required"`
	WelfareContribution string  `json:"welfare_contribution" binding:"required"`
}

type RemunerationResponse struct {
	ID                  string  `json:"id"`
	EmployeeID          string  `json:"employee_id"`
	AFPID               *string `json:"afp_id,omitempty"`
	HealthPlanID        *string `json:"health_plan_id,omitempty"`
	GrossAmount         string  `json:"gross_amount"`
	Tax                 string  `json:"tax"`
	Deductions          string  `json:"deductions"`
	Bonus               string  `json:"bonus"`
	WelfareContribution string  `json:"welfare_contribution"`
	NetAmount           string  `json:"net_amount"`
}
