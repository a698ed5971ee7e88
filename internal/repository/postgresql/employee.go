package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/workforcehq/hrm-backend-go/internal/domain/employee"
	"github.com/workforcehq/hrm-backend-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

const employeeColumns = `
	e.id, e.first_name, e.last_name, e.email, e.phone, e.date_of_birth, e.hire_date,
	e.address, e.city, e.state, e.zip_code, e.country, e.job_title, e.salary,
	e.department_id, e.manager_id, e.user_id, e.created_at, e.updated_at,
	d.name AS department_name,
	m.first_name || ' ' || m.last_name AS manager_name
`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(
		&e.ID, &e.FirstName, &e.LastName, &e.Email, &e.Phone, &e.DateOfBirth, &e.HireDate,
		&e.Address, &e.City, &e.State, &e.ZipCode, &e.Country, &e.JobTitle, &e.Salary,
		&e.DepartmentID, &e.ManagerID, &e.UserID, &e.CreatedAt, &e.UpdatedAt,
		&e.DepartmentName,
		&e.ManagerName,
	)
	return e, err
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (first_name, last_name, email, phone, date_of_birth, hire_date,
							   address, city, state, zip_code, country, job_title, salary,
							   department_id, manager_id, user_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING id, first_name, last_name, email, phone, date_of_birth, hire_date,
				  address, city, state, zip_code, country, job_title, salary,
				  department_id, manager_id, user_id, created_at, updated_at
	`

	var created employee.Employee
	err := q.QueryRow(ctx, query,
		e.FirstName, e.LastName, e.Email, e.Phone, e.DateOfBirth, e.HireDate,
		e.Address, e.City, e.State, e.ZipCode, e.Country, e.JobTitle, e.Salary,
		e.DepartmentID, e.ManagerID, e.UserID,
	).Scan(
		&created.ID, &created.FirstName, &created.LastName, &created.Email, &created.Phone,
		&created.DateOfBirth, &created.HireDate,
		&created.Address, &created.City, &created.State, &created.ZipCode, &created.Country,
		&created.JobTitle, &created.Salary,
		&created.DepartmentID, &created.ManagerID, &created.UserID,
		&created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return employee.Employee{}, err
	}

	return created, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees e
		LEFT JOIN departments d ON e.department_id = d.id
		LEFT JOIN employees m ON e.manager_id = m.id
		WHERE e.id = $1
	`

	e, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}

	return e, nil
}

// GetByUserID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByUserID(ctx context.Context, userID string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees e
		LEFT JOIN departments d ON e.department_id = d.id
		LEFT JOIN employees m ON e.manager_id = m.id
		WHERE e.user_id = $1
	`

	e, err := scanEmployee(q.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}

	return e, nil
}

// List implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) List(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees e
		LEFT JOIN departments d ON e.department_id = d.id
		LEFT JOIN employees m ON e.manager_id = m.id
		ORDER BY e.last_name, e.first_name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	employees := make([]employee.Employee, 0)
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}

	return employees, nil
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Update(ctx context.Context, e employee.Employee) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET first_name = $1, last_name = $2, email = $3, phone = $4, date_of_birth = $5,
			hire_date = $6, address = $7, city = $8, state = $9, zip_code = $10,
			country = $11, job_title = $12, salary = $13, department_id = $14,
			manager_id = $15, updated_at = NOW()
		WHERE id = $16
	`

	tag, err := q.Exec(ctx, query,
		e.FirstName, e.LastName, e.Email, e.Phone, e.DateOfBirth,
		e.HireDate, e.Address, e.City, e.State, e.ZipCode,
		e.Country, e.JobTitle, e.Salary, e.DepartmentID,
		e.ManagerID, e.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

// Delete implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}
