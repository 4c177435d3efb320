package services

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"kaidan-backend/internal/cache"
	"kaidan-backend/internal/match"
	"kaidan-backend/internal/models"
	"kaidan-backend/internal/numeric"
	"kaidan-backend/internal/reconcile"
	"kaidan-backend/internal/region"
	"kaidan-backend/internal/repositories"
)

// ReferenceService manages the three reference tables and runs the
// auto-fill pipeline over them.
type ReferenceService struct {
	customers *repositories.CustomerRepository
	products  *repositories.ProductRepository
	vehicles  *repositories.VehicleRepository
	log       zerolog.Logger
}

func NewReferenceService(
	customers *repositories.CustomerRepository,
	products *repositories.ProductRepository,
	vehicles *repositories.VehicleRepository,
	log zerolog.Logger,
) *ReferenceService {
	return &ReferenceService{
		customers: customers,
		products:  products,
		vehicles:  vehicles,
		log:       log,
	}
}

// Customers returns all customer rows, via Redis when available.
func (s *ReferenceService) Customers(ctx context.Context) ([]models.Customer, error) {
	return cachedList(ctx, cache.CustomersKey, func() ([]models.Customer, error) {
		rows, err := s.customers.List(ctx)
		return deref(rows), err
	})
}

func (s *ReferenceService) Products(ctx context.Context) ([]models.Product, error) {
	return cachedList(ctx, cache.ProductsKey, func() ([]models.Product, error) {
		rows, err := s.products.List(ctx)
		return deref(rows), err
	})
}

func (s *ReferenceService) Vehicles(ctx context.Context) ([]models.Vehicle, error) {
	return cachedList(ctx, cache.VehiclesKey, func() ([]models.Vehicle, error) {
		rows, err := s.vehicles.List(ctx)
		return deref(rows), err
	})
}

func cachedList[T any](ctx context.Context, key string, load func() ([]T, error)) ([]T, error) {
	if data, ok := cache.GetCached(ctx, key); ok {
		var rows []T
		if err := json.Unmarshal(data, &rows); err == nil {
			return rows, nil
		}
	}

	rows, err := load()
	if err != nil {
		return nil, err
	}
	if data, err := json.Marshal(rows); err == nil {
		cache.SetReference(ctx, key, data)
	}
	return rows, nil
}

func deref[T any](rows []*T) []T {
	out := make([]T, 0, len(rows))
	for _, r := range rows {
		if r != nil {
			out = append(out, *r)
		}
	}
	return out
}

// SaveCustomer upserts a customer row, resolving the province from the
// location when the caller left it blank.
func (s *ReferenceService) SaveCustomer(ctx context.Context, req *models.SaveCustomerRequest) error {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return errors.New("customer name is required")
	}
	province := strings.TrimSpace(req.Province)
	if province == "" && strings.TrimSpace(req.Location) != "" {
		province = region.Resolve(req.Location)
	}
	err := s.customers.Upsert(ctx, &models.Customer{
		Name:     name,
		Location: strings.TrimSpace(req.Location),
		Province: province,
		Note:     req.Note,
	})
	if err == nil {
		cache.InvalidateReferences(ctx)
	}
	return err
}

func (s *ReferenceService) SaveProduct(ctx context.Context, req *models.SaveProductRequest) error {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return errors.New("product name is required")
	}
	var spec *float64
	if v := numeric.ParseFloat(req.SpecJin, -1); v > 0 {
		spec = &v
	}
	err := s.products.Upsert(ctx, &models.Product{
		Name:     name,
		SpecJin:  spec,
		Category: strings.TrimSpace(req.Category),
		Note:     req.Note,
	})
	if err == nil {
		cache.InvalidateReferences(ctx)
	}
	return err
}

func (s *ReferenceService) SaveVehicle(ctx context.Context, req *models.SaveVehicleRequest) error {
	plate1 := strings.TrimSpace(req.Plate1)
	if plate1 == "" {
		return errors.New("primary plate is required")
	}
	err := s.vehicles.Upsert(ctx, &models.Vehicle{
		Plate1: plate1,
		Plate2: strings.TrimSpace(req.Plate2),
		Driver: strings.TrimSpace(req.Driver),
		Phone:  strings.TrimSpace(req.Phone),
	})
	if err == nil {
		cache.InvalidateReferences(ctx)
	}
	return err
}

func (s *ReferenceService) DeleteCustomer(ctx context.Context, id int) error {
	err := s.customers.Delete(ctx, id)
	if err == nil {
		cache.InvalidateReferences(ctx)
	}
	return err
}

func (s *ReferenceService) DeleteProduct(ctx context.Context, id int) error {
	err := s.products.Delete(ctx, id)
	if err == nil {
		cache.InvalidateReferences(ctx)
	}
	return err
}

func (s *ReferenceService) DeleteVehicle(ctx context.Context, id int) error {
	err := s.vehicles.Delete(ctx, id)
	if err == nil {
		cache.InvalidateReferences(ctx)
	}
	return err
}

// Autofill completes the slip header and rows from the reference tables:
// customer name fills the destination, any known vehicle field cross-fills
// the others, a known product name fills its spec, and every row is run
// through reconciliation. Only blank fields are ever written.
func (s *ReferenceService) Autofill(ctx context.Context, req *models.AutofillRequest) (*models.AutofillResponse, error) {
	customers, err := s.Customers(ctx)
	if err != nil {
		return nil, err
	}
	products, err := s.Products(ctx)
	if err != nil {
		return nil, err
	}
	vehicles, err := s.Vehicles(ctx)
	if err != nil {
		return nil, err
	}

	resp := &models.AutofillResponse{
		Customer: req.Customer,
		Location: req.Location,
		Plate1:   req.Plate1,
		Plate2:   req.Plate2,
		Driver:   req.Driver,
		Phone:    req.Phone,
	}

	if c := match.Customer(req.Customer, customers); c != nil {
		if strings.TrimSpace(resp.Location) == "" {
			resp.Location = c.Location
		}
	}

	if v := match.Vehicle(req.Plate1, req.Plate2, req.Driver, req.Phone, vehicles); v != nil {
		match.FillVehicle(v, &resp.Plate1, &resp.Plate2, &resp.Driver, &resp.Phone)
	}

	var lines []*reconcile.Line
	for _, it := range req.Items {
		spec := it.Spec
		if strings.TrimSpace(spec) == "" && strings.TrimSpace(it.Name) != "" {
			if p := match.Product(it.Name, products); p != nil && p.SpecJin != nil {
				spec = numeric.FormatDecimal(*p.SpecJin)
			}
		}
		line := reconcile.NewLineFromValues(it.Name, spec, it.Count, it.Weight, it.Price, it.Amount)
		line.Recalc()
		lines = append(lines, line)

		resp.Items = append(resp.Items, models.SlipItem{
			Name:   line.Product.Text,
			Spec:   line.Spec.Text,
			Count:  line.Count.Text,
			Weight: line.Weight.Text,
			Price:  line.Price.Text,
			Amount: line.Amount.Text,
		})
	}

	totals := reconcile.Sum(lines)
	resp.TotalsLine = totals.Line()
	resp.Summary = totals.DefaultSummary()
	return resp, nil
}
