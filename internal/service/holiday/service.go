package holiday

import (
	"context"
	"fmt"
	"time"

	"github.com/chronoline/attendance-backend-go/internal/domain/holiday"
	"github.com/chronoline/attendance-backend-go/internal/domain/user"
	"github.com/chronoline/attendance-backend-go/internal/pkg/clock"
	"github.com/chronoline/attendance-backend-go/internal/pkg/validator"
	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
)

type HolidayServiceImpl struct {
	holiday.HolidayRepository
	clock clock.Clock
}

func NewHolidayService(repository holiday.HolidayRepository, clk clock.Clock) holiday.HolidayService {
	return &HolidayServiceImpl{
		HolidayRepository: repository,
		clock:             clk,
	}
}

func (s *HolidayServiceImpl) callerFromContext(ctx context.Context) (companyID string, role user.Role, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", fmt.Errorf("failed to extract claims from context: %w", err)
	}
	companyID, _ = claims["company_id"].(string)
	roleStr, _ := claims["role"].(string)
	return companyID, user.Role(roleStr), nil
}

// Create implements holiday.HolidayService. Company holidays are scoped to
// the caller's company; only owners may create global ones.
func (s *HolidayServiceImpl) Create(ctx context.Context, req holiday.CreateHolidayRequest) (holiday.Holiday, error) {
	if err := req.Validate(); err != nil {
		return holiday.Holiday{}, err
	}

	companyID, role, err := s.callerFromContext(ctx)
	if err != nil {
		return holiday.Holiday{}, err
	}

	date, _ := validator.IsValidDate(req.Date)
	h := holiday.Holiday{
		ID:   uuid.NewString(),
		Date: date,
		Name: req.Name,
	}
	if req.Global {
		if role != user.RoleOwner {
			return holiday.Holiday{}, holiday.ErrGlobalHolidayForbidden
		}
	} else {
		h.CompanyID = &companyID
	}

	created, err := s.HolidayRepository.Create(ctx, h)
	if err != nil {
		return holiday.Holiday{}, fmt.Errorf("failed to create holiday: %w", err)
	}
	return created, nil
}

// List implements holiday.HolidayService. Empty bounds default to the
// current calendar year.
func (s *HolidayServiceImpl) List(ctx context.Context, from, to string) ([]holiday.Holiday, error) {
	companyID, _, err := s.callerFromContext(ctx)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	fromDate := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	toDate := time.Date(now.Year(), time.December, 31, 0, 0, 0, 0, time.UTC)

	var errs validator.ValidationErrors
	if from != "" {
		parsed, ok := validator.IsValidDate(from)
		if !ok {
			errs = append(errs, validator.ValidationError{Field: "from", Message: "must be YYYY-MM-DD"})
		} else {
			fromDate = parsed
		}
	}
	if to != "" {
		parsed, ok := validator.IsValidDate(to)
		if !ok {
			errs = append(errs, validator.ValidationError{Field: "to", Message: "must be YYYY-MM-DD"})
		} else {
			toDate = parsed
		}
	}
	if len(errs) > 0 {
		return nil, errs
	}

	holidays, err := s.HolidayRepository.ListBetween(ctx, companyID, fromDate, toDate)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}
	return holidays, nil
}

// Delete implements holiday.HolidayService.
func (s *HolidayServiceImpl) Delete(ctx context.Context, id string) error {
	companyID, _, err := s.callerFromContext(ctx)
	if err != nil {
		return err
	}
	return s.HolidayRepository.Delete(ctx, id, companyID)
}
