package repository

// Factory describes access to different domain repositories.
type Factory interface {
	Employees() EmployeeRepository
	Customers() CustomerRepository
	Products() ProductRepository
	Categories() CategoryRepository
	Prices() PriceRepository
	Orders() OrderRepository
}
