package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"kaidan-backend/internal/cache"
	"kaidan-backend/internal/match"
	"kaidan-backend/internal/models"
	"kaidan-backend/internal/numeric"
	"kaidan-backend/internal/region"
)

// Learner store ports. The pgx repositories satisfy them; tests use
// in-memory fakes.
type customerLearnStore interface {
	List(ctx context.Context) ([]*models.Customer, error)
	Upsert(ctx context.Context, c *models.Customer) error
	FillEmpty(ctx context.Context, name, location, province string) error
}

type productLearnStore interface {
	List(ctx context.Context) ([]*models.Product, error)
	InsertIfAbsent(ctx context.Context, p *models.Product) error
}

type vehicleLearnStore interface {
	List(ctx context.Context) ([]*models.Vehicle, error)
	Upsert(ctx context.Context, v *models.Vehicle) error
	FillEmpty(ctx context.Context, plate1, plate2, driver, phone string) error
}

// LearnerService updates the reference tables from each finalized slip.
// It only fills gaps: existing non-empty reference data always wins over
// inferred data, and products are insert-only. Every step is isolated so
// one failure never blocks the invoice or the remaining steps.
type LearnerService struct {
	customers customerLearnStore
	products  productLearnStore
	vehicles  vehicleLearnStore
	log       zerolog.Logger
}

func NewLearnerService(customers customerLearnStore, products productLearnStore, vehicles vehicleLearnStore, log zerolog.Logger) *LearnerService {
	return &LearnerService{
		customers: customers,
		products:  products,
		vehicles:  vehicles,
		log:       log,
	}
}

// LearnInput is the finalized slip data the learner consumes.
type LearnInput struct {
	Customer string
	Location string
	Plate1   string
	Plate2   string
	Driver   string
	Phone    string
	Items    []models.SlipItem
}

// Learn runs the three upsert steps and returns human-readable warnings
// for any that failed. It never returns an error.
func (s *LearnerService) Learn(ctx context.Context, in LearnInput) []string {
	var warnings []string

	if err := s.learnCustomer(ctx, in.Customer, in.Location); err != nil {
		s.log.Warn().Err(err).Str("customer", in.Customer).Msg("customer learn failed")
		warnings = append(warnings, fmt.Sprintf("客户资料未更新: %v", err))
	}
	if err := s.learnProducts(ctx, in.Items); err != nil {
		s.log.Warn().Err(err).Msg("product learn failed")
		warnings = append(warnings, fmt.Sprintf("产品资料未更新: %v", err))
	}
	if err := s.learnVehicle(ctx, in.Plate1, in.Plate2, in.Driver, in.Phone); err != nil {
		s.log.Warn().Err(err).Str("plate1", in.Plate1).Msg("vehicle learn failed")
		warnings = append(warnings, fmt.Sprintf("车辆资料未更新: %v", err))
	}

	if len(warnings) < 3 {
		cache.InvalidateReferences(ctx)
	}
	return warnings
}

func (s *LearnerService) learnCustomer(ctx context.Context, name, location string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}
	location = strings.TrimSpace(location)

	rows, err := s.customers.List(ctx)
	if err != nil {
		return err
	}

	existing := match.CustomerByKey(name, deref(rows))
	if existing == nil {
		province := ""
		if location != "" {
			province = region.Resolve(location)
		}
		return s.customers.Upsert(ctx, &models.Customer{
			Name:     name,
			Location: location,
			Province: province,
		})
	}

	if location == "" {
		return nil
	}
	province := region.Resolve(location)
	return s.customers.FillEmpty(ctx, existing.Name, location, province)
}

func (s *LearnerService) learnProducts(ctx context.Context, items []models.SlipItem) error {
	rows, err := s.products.List(ctx)
	if err != nil {
		return err
	}
	known := deref(rows)

	var firstErr error
	for _, it := range items {
		name := strings.TrimSpace(it.Name)
		if name == "" {
			continue
		}
		if match.ProductByKey(name, known) != nil {
			continue
		}

		var spec *float64
		if v := numeric.ParseFloat(it.Spec, -1); v > 0 {
			spec = &v
		}
		p := &models.Product{Name: name, SpecJin: spec}
		if err := s.products.InsertIfAbsent(ctx, p); err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		known = append(known, *p)
	}
	return firstErr
}

func (s *LearnerService) learnVehicle(ctx context.Context, plate1, plate2, driver, phone string) error {
	plate1 = strings.TrimSpace(plate1)
	// The primary plate is the vehicle's identity; without it there is
	// nothing to key the row on.
	if plate1 == "" {
		return nil
	}

	rows, err := s.vehicles.List(ctx)
	if err != nil {
		return err
	}

	existing := match.VehicleByPlate(plate1, deref(rows))
	if existing == nil {
		return s.vehicles.Upsert(ctx, &models.Vehicle{
			Plate1: plate1,
			Plate2: strings.TrimSpace(plate2),
			Driver: strings.TrimSpace(driver),
			Phone:  strings.TrimSpace(phone),
		})
	}
	return s.vehicles.FillEmpty(ctx, existing.Plate1,
		strings.TrimSpace(plate2), strings.TrimSpace(driver), strings.TrimSpace(phone))
}
