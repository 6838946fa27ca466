package bill

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sitebook/sitebook-backend/internal/domain/auth"
	"github.com/sitebook/sitebook-backend/internal/domain/bill"
	"github.com/sitebook/sitebook-backend/internal/pkg/dateutil"
	"github.com/sitebook/sitebook-backend/internal/service/file"
)

type BillServiceImpl struct {
	bill.BillRepository
	fileService file.FileService
}

func NewBillService(billRepository bill.BillRepository, fileService file.FileService) bill.BillService {
	return &BillServiceImpl{
		BillRepository: billRepository,
		fileService:    fileService,
	}
}

// Create implements bill.BillService.
func (s *BillServiceImpl) Create(ctx context.Context, req bill.CreateBillRequest) (bill.BillResponse, error) {
	userID, err := auth.UserID(ctx)
	if err != nil {
		return bill.BillResponse{}, err
	}
	if err := req.Validate(); err != nil {
		return bill.BillResponse{}, err
	}

	date, _ := dateutil.Parse(req.Date)
	material, _ := bill.ParseMaterial(req.Material)

	created, err := s.BillRepository.Create(ctx, bill.Bill{
		UserID:   userID,
		ShopName: strings.TrimSpace(req.ShopName),
		Material: material,
		Amount:   req.Amount,
		Date:     date,
		Location: req.Location,
	})
	if err != nil {
		return bill.BillResponse{}, fmt.Errorf("failed to create bill: %w", err)
	}
	return bill.NewBillResponse(created), nil
}

// Get implements bill.BillService.
func (s *BillServiceImpl) Get(ctx context.Context, id string) (bill.BillResponse, error) {
	userID, err := auth.UserID(ctx)
	if err != nil {
		return bill.BillResponse{}, err
	}

	b, err := s.BillRepository.GetByID(ctx, id, userID)
	if err != nil {
		return bill.BillResponse{}, err
	}
	return bill.NewBillResponse(b), nil
}

// List implements bill.BillService. Without a principal the list is empty.
func (s *BillServiceImpl) List(ctx context.Context, filter bill.BillFilter) (bill.ListBillResponse, error) {
	if err := filter.Validate(); err != nil {
		return bill.ListBillResponse{}, err
	}

	resp := bill.ListBillResponse{
		Bills:      []bill.BillResponse{},
		Total:      decimal.Zero,
		ByMaterial: []bill.MaterialTotal{},
	}
	p, ok := auth.PrincipalFrom(ctx)
	if !ok {
		return resp, nil
	}

	from, to := filter.Range()
	bills, err := s.BillRepository.List(ctx, p.UserID, from, to)
	if err != nil {
		return bill.ListBillResponse{}, fmt.Errorf("failed to list bills: %w", err)
	}

	for _, b := range bills {
		resp.Bills = append(resp.Bills, bill.NewBillResponse(b))
		resp.Total = resp.Total.Add(b.Amount)
	}
	resp.TotalCount = len(bills)
	resp.ByMaterial = bill.TotalsByMaterial(bills)
	return resp, nil
}

// Update implements bill.BillService.
func (s *BillServiceImpl) Update(ctx context.Context, req bill.UpdateBillRequest) (bill.BillResponse, error) {
	userID, err := auth.UserID(ctx)
	if err != nil {
		return bill.BillResponse{}, err
	}
	if err := req.Validate(); err != nil {
		return bill.BillResponse{}, err
	}

	b, err := s.BillRepository.GetByID(ctx, req.ID, userID)
	if err != nil {
		return bill.BillResponse{}, err
	}

	if req.ShopName != nil {
		b.ShopName = strings.TrimSpace(*req.ShopName)
	}
	if req.Material != nil {
		b.Material, _ = bill.ParseMaterial(*req.Material)
	}
	if req.Amount != nil {
		b.Amount = *req.Amount
	}
	if req.Date != nil {
		b.Date, _ = dateutil.Parse(*req.Date)
	}
	if req.Location != nil {
		b.Location = req.Location
	}

	updated, err := s.BillRepository.Update(ctx, userID, b)
	if err != nil {
		return bill.BillResponse{}, err
	}
	return bill.NewBillResponse(updated), nil
}

// UploadPhoto implements bill.BillService.
func (s *BillServiceImpl) UploadPhoto(ctx context.Context, id string, file io.Reader, filename string) (bill.BillResponse, error) {
	userID, err := auth.UserID(ctx)
	if err != nil {
		return bill.BillResponse{}, err
	}

	b, err := s.BillRepository.GetByID(ctx, id, userID)
	if err != nil {
		return bill.BillResponse{}, err
	}

	url, err := s.fileService.UploadBillPhoto(ctx, b.ID, b.Date, file, filename)
	if err != nil {
		return bill.BillResponse{}, err
	}
	b.PhotoURL = &url

	updated, err := s.BillRepository.Update(ctx, userID, b)
	if err != nil {
		return bill.BillResponse{}, err
	}
	return bill.NewBillResponse(updated), nil
}

// Delete implements bill.BillService.
func (s *BillServiceImpl) Delete(ctx context.Context, id string) error {
	userID, err := auth.UserID(ctx)
	if err != nil {
		return err
	}
	return s.BillRepository.Delete(ctx, id, userID)
}
