package pensionfund

type CreatePensionFundRequest struct {
	Name                 string `json:"name" binding:"required"`
	CommissionPercentage string `json:"commission_percentage" binding:"required"`
}

type UpdatePensionFundRequest struct {
	Name                 string `json:"name" binding:"required"`
	CommissionPercentage string `json:"commission_percentage" binding:"required"`
}

type PensionFundResponse struct {
	ID                   string `json:"id"`
	Name                 string `json:"name"`
	CommissionPercentage string `json:"commission_percentage"`
}
