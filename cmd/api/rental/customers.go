package rental

import (
	"context"
	"errors"
	"time"
)

func (s *Service) CreateCustomer(ctx context.Context, req CustomerRequest) (Customer, error) {
	if err := s.validator.ValidateCustomer(req); err != nil {
		return Customer{}, err
	}

	_, err := s.repo.GetCustomerByCPF(ctx, req.CPF)
	switch {
	case err == nil:
		return Customer{}, ErrResponseCustomerCPFConflict
	case !errors.Is(err, ErrResponseCustomerNotFound):
		return Customer{}, fromRepository("GetCustomerByCPF", err)
	}

	created, err := s.repo.CreateCustomer(ctx, requestToCustomer(req))
	if err != nil {
		return Customer{}, fromRepository("CreateCustomer", err)
	}
	return created, nil
}

/* Replaces every field of an existing customer. The cpf may stay the same but must not collide with another customer. */
func (s *Service) UpdateCustomer(ctx context.Context, req UpdateCustomerRequest) (Customer, error) {
	if err := s.validator.ValidateCustomer(req.CustomerRequest); err != nil {
		return Customer{}, err
	}

	current, err := s.repo.GetCustomerByID(ctx, req.ID)
	if err != nil {
		return Customer{}, fromRepository("GetCustomerByID", err)
	}

	if current.CPF != req.CPF {
		holder, err := s.repo.GetCustomerByCPF(ctx, req.CPF)
		switch {
		case err == nil && holder.ID != current.ID:
			return Customer{}, ErrResponseCustomerCPFConflict
		case err != nil && !errors.Is(err, ErrResponseCustomerNotFound):
			return Customer{}, fromRepository("GetCustomerByCPF", err)
		}
	}

	c := requestToCustomer(req.CustomerRequest)
	c.ID = current.ID
	updated, err := s.repo.UpdateCustomer(ctx, c)
	if err != nil {
		return Customer{}, fromRepository("UpdateCustomer", err)
	}
	return updated, nil
}

func (s *Service) GetCustomer(ctx context.Context, id int) (Customer, error) {
	c, err := s.repo.GetCustomerByID(ctx, id)
	if err != nil {
		return Customer{}, fromRepository("GetCustomerByID", err)
	}
	return c, nil
}

func (s *Service) ListCustomers(ctx context.Context, cpfPrefix string, page Page) ([]Customer, error) {
	customers, err := s.repo.ListCustomers(ctx, cpfPrefix, normalizePage(page))
	if err != nil {
		return nil, fromRepository("ListCustomers", err)
	}
	return customers, nil
}

/* Builds a customer from an already validated request. */
func requestToCustomer(req CustomerRequest) Customer {
	birthday, _ := time.Parse(DateLayout, req.Birthday)
	return Customer{
		Name:     req.Name,
		Phone:    req.Phone,
		CPF:      req.CPF,
		Birthday: birthday,
	}
}
