package dto

import "time"

// EmployeeRequest carries registration and update payloads. Password is
// optional on update; an empty value keeps the stored one.
type EmployeeRequest struct {
	ID       string `json:"employeeId"`
	Password string `json:"employeePw"`
	Name     string `json:"employeeName"`
	Email    string `json:"employeeEmail"`
	Tel      string `json:"employeeTel"`
	Role     string `json:"employeeRole"`
}

// EmployeeResponse is the employee list/detail entry.
type EmployeeResponse struct {
	ID        string     `json:"employeeId"`
	Name      string     `json:"employeeName"`
	Email     string     `json:"employeeEmail"`
	Tel       string     `json:"employeeTel"`
	Role      string     `json:"employeeRole"`
	CreatedAt time.Time  `json:"employeeInsertDate"`
	UpdatedAt time.Time  `json:"employeeUpdateDate"`
	Deleted   bool       `json:"employeeDeleteYn"`
	DeletedAt *time.Time `json:"employeeDeleteDate,omitempty"`
}
