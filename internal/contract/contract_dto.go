package contract

type CreateContractRequest struct {
	EmployeeID     string `json:"employee_id" binding:"required,uuid"`
	PositionID     string `json:"position_id" binding:"required,uuid"`
	ContractType   string `json:"contract_type" binding:"required,oneof=PERMANENT FIXED_TERM TEMPORARY REPLACEMENT"`
	Classification string `json:"classification" binding:"required,oneof=AUXILIARY ADMINISTRATIVE TECHNICAL PROFESSIONAL EXECUTIVE"`
	StartDate      string `json:"start_date" binding:"required"`
	EndDate        string `json:"end_date"`
}

type UpdateContractRequest struct {
	PositionID     string `json:"position_id" binding:"required,uuid"`
	ContractType   string `json:"contract_type" binding:"required,oneof=PERMANENT FIXED_TERM TEMPORARY REPLACEMENT"`
	Classification string `json:"classification" binding:"required,oneof=AUXILIARY ADMINISTRATIVE TECHNICAL PROFESSIONAL EXECUTIVE"`
	StartDate      string `json:"start_date" binding:"required"`
	EndDate        string `json:"end_date"`
}

type ContractResponse struct {
	ID               string  `json:"id"`
	EmployeeID       string  `json:"employee_id"`
	PositionID       string  `json:"position_id"`
	ContractType     string  `json:"contract_type"`
	Classification   string  `json:"classification"`
	StartDate        string  `json:"start_date"`
	EndDate          *string `json:"end_date,omitempty"`
	RegistrationDate string  `json:"registration_date"`
}
