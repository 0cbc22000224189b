package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"hotel-frontdesk/models"
	"hotel-frontdesk/utils"
)

// Walk-in customers created at the desk get this portal password until they
// set their own.
const defaultWalkInPassword = "Customer@123"

const maxCustomerPageSize = 100

type CustomerService struct {
	DB *gorm.DB
}

func NewCustomerService(db *gorm.DB) *CustomerService {
	return &CustomerService{DB: db}
}

type CustomerInput struct {
	FullName     string `json:"fullName"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	IdentityCard string `json:"identityCard"`
	Address      string `json:"address"`
	Password     string `json:"password,omitempty"`
}

func (in *CustomerInput) validate() error {
	if utils.IsEmpty(in.FullName) {
		return Validationf("customer name is required")
	}
	if !utils.IsValidPhone(in.Phone) {
		return Validationf("phone number must be exactly 10 digits")
	}
	if !utils.IsValidIdentityCard(in.IdentityCard) {
		return Validationf("identity card number is too short")
	}
	if !utils.IsEmpty(in.Email) && !utils.IsValidEmail(in.Email) {
		return Validationf("email address is not valid")
	}
	return nil
}

// List returns a page of customers, optionally filtered by a search term
// matched against name, phone and email. An empty term returns an unfiltered
// page; page size is bounded.
func (s *CustomerService) List(ctx context.Context, search string, page, pageSize int) ([]models.Customer, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > maxCustomerPageSize {
		pageSize = maxCustomerPageSize
	}

	q := s.DB.WithContext(ctx).Model(&models.Customer{})
	if term := strings.TrimSpace(search); term != "" {
		like := "%" + strings.ToLower(term) + "%"
		q = q.Where("LOWER(full_name) LIKE ? OR phone LIKE ? OR LOWER(email) LIKE ?", like, like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count customers: %w", err)
	}

	var customers []models.Customer
	if err := q.Order("full_name ASC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&customers).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list customers: %w", err)
	}
	return customers, total, nil
}

// CustomerByID loads one customer.
func (s *CustomerService) CustomerByID(ctx context.Context, id uint) (*models.Customer, error) {
	var cust models.Customer
	if err := s.DB.WithContext(ctx).First(&cust, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load customer %d: %w", id, err)
	}
	return &cust, nil
}

// ResolveMany loads the customers for a multi-select confirmation. Unknown
// ids fail with ErrNotFound instead of being silently dropped; repeated ids
// count once.
func (s *CustomerService) ResolveMany(ctx context.Context, ids []uint) ([]models.Customer, error) {
	ids = uniqueIDs(ids)
	if len(ids) == 0 {
		return []models.Customer{}, nil
	}
	var customers []models.Customer
	if err := s.DB.WithContext(ctx).Where("id IN ?", ids).Find(&customers).Error; err != nil {
		return nil, fmt.Errorf("failed to resolve customers: %w", err)
	}
	if len(customers) != len(ids) {
		return nil, ErrNotFound
	}
	return customers, nil
}

// uniqueIDs drops repeated ids, keeping first-seen order.
func uniqueIDs(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// Create validates and persists a customer. When no password is given the
// documented walk-in default is stored (bcrypt-hashed) so the record works
// for guest-portal login later.
func (s *CustomerService) Create(ctx context.Context, in CustomerInput) (*models.Customer, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	password := in.Password
	if password == "" {
		password = defaultWalkInPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash customer password: %w", err)
	}

	cust := models.Customer{
		FullName:     strings.TrimSpace(in.FullName),
		Phone:        strings.TrimSpace(in.Phone),
		Email:        strings.TrimSpace(in.Email),
		IdentityCard: strings.TrimSpace(in.IdentityCard),
		Address:      strings.TrimSpace(in.Address),
		Password:     string(hash),
	}
	if err := s.DB.WithContext(ctx).Create(&cust).Error; err != nil {
		if isDuplicateErr(err) {
			return nil, Conflictf("a customer with the same phone or email already exists")
		}
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}
	return &cust, nil
}

// Update applies the editable fields of an existing customer.
func (s *CustomerService) Update(ctx context.Context, id uint, in CustomerInput) (*models.Customer, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	cust, err := s.CustomerByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"full_name":     strings.TrimSpace(in.FullName),
		"phone":         strings.TrimSpace(in.Phone),
		"email":         strings.TrimSpace(in.Email),
		"identity_card": strings.TrimSpace(in.IdentityCard),
		"address":       strings.TrimSpace(in.Address),
	}
	if err := s.DB.WithContext(ctx).Model(cust).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update customer %d: %w", id, err)
	}
	return s.CustomerByID(ctx, id)
}

// Delete soft-deletes a customer with no active bookings.
func (s *CustomerService) Delete(ctx context.Context, id uint) error {
	var active int64
	if err := s.DB.WithContext(ctx).Model(&models.Booking{}).
		Where("customer_id = ? AND status IN ?", id, []string{models.BookingStatusConfirmed, models.BookingStatusCheckedIn}).
		Count(&active).Error; err != nil {
		return fmt.Errorf("failed to check customer bookings: %w", err)
	}
	if active > 0 {
		return Conflictf("customer has active bookings and cannot be deleted")
	}

	res := s.DB.WithContext(ctx).Delete(&models.Customer{}, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete customer %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
