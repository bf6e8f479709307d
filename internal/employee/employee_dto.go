package employee

type CreateEmployeeRequest struct {
	EmployeeNumber  string `json:"employee_number"`
	Rut             string `json:"rut" binding:"required"`
	FirstName       string `json:"first_name" binding:"required"`
	LastName        string `json:"last_name" binding:"required"`
	BirthDate       string `json:"birth_date"`
	StartDate       string `json:"start_date" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Phone           string `json:"phone"`
	Salary          string `json:"salary"`
	Nationality     string `json:"nationality"`
	AFPID           *string `json:"afp_id" binding:"omitempty,uuid"`
	HealthPlanID    *string `json:"health_plan_id" binding:"omitempty,uuid"`
	AccumulatedDays int     `json:"accumulated_days" binding:"gte=0"`
}

type UpdateEmployeeRequest struct {
	Rut                 string  `json:"rut" binding:"required"`
	FirstName           string  `json:"first_name" binding:"required"`
	LastName            string  `json:"last_name" binding:"required"`
	BirthDate           string  `json:"birth_date"`
	Email               string  `json:"email" binding:"required,email"`
	Phone               string  `json:"phone"`
	Salary              string  `json:"salary"`
	Nationality         string  `json:"nationality"`
	ActiveEmployee      bool    `json:"active_employee"`
	AFPID               *string `json:"afp_id" binding:"omitempty,uuid"`
	HealthPlanID        *string `json:"health_plan_id" binding:"omitempty,uuid"`
	LongServiceEmployee bool    `json:"long_service_employee"`
}

type EmployeeResponse struct {
	ID                  string  `json:"id"`
	EmployeeNumber      string  `json:"employee_number"`
	Rut                 string  `json:"rut"`
	FirstName           string  `json:"first_name"`
	LastName            string  `json:"last_name"`
	BirthDate           *string `json:"birth_date,omitempty"`
	StartDate           string  `json:"start_date"`
	Email               string  `json:"email"`
	Phone               string  `json:"phone"`
	Salary              string  `json:"salary"`
	Nationality         string  `json:"nationality"`
	ActiveEmployee      bool    `json:"active_employee"`
	AFPID               *string `json:"afp_id,omitempty"`
	HealthPlanID        *string `json:"health_plan_id,omitempty"`
	AccumulatedDays     int     `json:"accumulated_days"`
	LongServiceEmployee bool    `json:"long_service_employee"`
}

// EmployeeOption is the trimmed shape used by dropdowns and pickers.
type EmployeeOption struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
}
