package model

// Department is static reference data a request is charged against.
type Department struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Code       string `json:"code"`
	CostCenter string `json:"cost_center"`
}
