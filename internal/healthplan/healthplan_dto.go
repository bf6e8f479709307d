package healthplan

type CreateHealthPlanRequest struct {
	Name     string `json:"name" binding:"required"`
	Type     string `json:"type" binding:"required,oneof=FONASA ISAPRE"`
	Discount string `json:"discount" binding:"required"`
}

type UpdateHealthPlanRequest struct {
	Name     string `json:"name" binding:"required"`
	Type     string `json:"type" binding:"required,oneof=FONASA ISAPRE"`
	Discount string `json:"discount" binding:"required"`
}

type HealthPlanResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	Discount string `json:"discount"`
}
