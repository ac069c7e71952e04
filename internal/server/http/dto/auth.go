package dto

// LoginRequest describes employee credentials payload.
type LoginRequest struct {
	EmployeeID string `json:"employeeId"`
	Password   string `json:"password"`
}

// LoginResponse returns the signed-in employee identity.
type LoginResponse struct {
	EmployeeID string `json:"employeeId"`
	Name       string `json:"employeeName"`
	Role       string `json:"role"`
}
