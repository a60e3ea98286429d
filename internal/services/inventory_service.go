package services

import (
	"strings"
	"time"

	"transportpro/internal/domain"
	"transportpro/internal/domain/models"
	"transportpro/internal/repositories"
	"transportpro/internal/utils"

	"github.com/google/uuid"
)

const minModelYear = 1950

// InventoryService guards the truck lifecycle. Generic updates never
// touch sale data; a truck becomes sold only through SellTruck.
type InventoryService struct {
	Repo      *repositories.TruckRepository
	RequestID string
}

func (s InventoryService) AddTruck(in models.TruckInput) (models.TruckInventory, error) {
	if err := normalizeTruckInput(&in); err != nil {
		utils.LogEvent(s.RequestID, "inventory", "add_rejected", err.Error())
		return models.TruckInventory{}, err
	}
	t := s.Repo.Add(in)
	utils.LogEventf(s.RequestID, "inventory", "add", "id=%s reg=%s status=%s", t.ID, t.RegistrationNumber, t.Status)
	return t, nil
}

// UpdateTruck applies a generic field update. Sale details are refused
// here, as is any status move into or out of "sold".
func (s InventoryService) UpdateTruck(id string, patch models.TruckPatch) (models.TruckInventory, error) {
	if patch.SaleDetails != nil {
		return models.TruckInventory{}, domain.ValidationError{Field: "saleDetails", Msg: "use the sell or sale correction endpoint"}
	}
	if err := normalizeTruckPatch(&patch); err != nil {
		utils.LogEventf(s.RequestID, "inventory", "update_rejected", "id=%s err=%s", id, err.Error())
		return models.TruckInventory{}, err
	}

	t, found, err := s.Repo.Modify(id, func(cur models.TruckInventory, now time.Time) (models.TruckInventory, error) {
		if patch.Status != nil && cur.Status == models.TruckSold && *patch.Status != models.TruckSold {
			return cur, domain.ConflictError{Resource: "truck", Msg: "a sold truck cannot change status"}
		}
		return cur.Apply(patch, now), nil
	})
	if !found {
		return models.TruckInventory{}, domain.NotFoundError{Resource: "truck", ID: id}
	}
	if err != nil {
		utils.LogEventf(s.RequestID, "inventory", "update_rejected", "id=%s err=%s", id, err.Error())
		return models.TruckInventory{}, err
	}
	utils.LogEventf(s.RequestID, "inventory", "update", "id=%s status=%s", t.ID, t.Status)
	return t, nil
}

// SellTruck records the sale and moves the truck to "sold".
func (s InventoryService) SellTruck(id string, sale models.SaleDetails) (models.TruckInventory, error) {
	if err := normalizeSale(&sale); err != nil {
		return models.TruckInventory{}, err
	}
	t, found, err := s.Repo.Modify(id, func(cur models.TruckInventory, now time.Time) (models.TruckInventory, error) {
		if cur.Status == models.TruckSold || cur.SaleDetails != nil {
			return cur, domain.ConflictError{Resource: "truck", Msg: "truck is already sold"}
		}
		if sale.SaleDate < cur.PurchaseDate {
			return cur, domain.ValidationError{Field: "saleDate", Msg: "must not be before purchaseDate"}
		}
		return cur.Sell(sale, now), nil
	})
	if !found {
		return models.TruckInventory{}, domain.NotFoundError{Resource: "truck", ID: id}
	}
	if err != nil {
		utils.LogEventf(s.RequestID, "inventory", "sell_rejected", "id=%s err=%s", id, err.Error())
		return models.TruckInventory{}, err
	}
	utils.LogEventf(s.RequestID, "inventory", "sell", "id=%s amount=%s profit=%s", t.ID, utils.FormatMoney(sale.SaleAmount), utils.FormatMoney(*t.Profit))
	return t, nil
}

// CorrectSale replaces the sale details of a truck that is already sold.
func (s InventoryService) CorrectSale(id string, sale models.SaleDetails) (models.TruckInventory, error) {
	if err := normalizeSale(&sale); err != nil {
		return models.TruckInventory{}, err
	}
	t, found, err := s.Repo.Modify(id, func(cur models.TruckInventory, now time.Time) (models.TruckInventory, error) {
		if !cur.IsSold() {
			return cur, domain.ConflictError{Resource: "truck", Msg: "truck is not sold"}
		}
		if sale.SaleDate < cur.PurchaseDate {
			return cur, domain.ValidationError{Field: "saleDate", Msg: "must not be before purchaseDate"}
		}
		return cur.CorrectSale(sale, now), nil
	})
	if !found {
		return models.TruckInventory{}, domain.NotFoundError{Resource: "truck", ID: id}
	}
	if err != nil {
		utils.LogEventf(s.RequestID, "inventory", "sale_correction_rejected", "id=%s err=%s", id, err.Error())
		return models.TruckInventory{}, err
	}
	utils.LogEventf(s.RequestID, "inventory", "sale_correction", "id=%s profit=%s", t.ID, utils.FormatMoney(*t.Profit))
	return t, nil
}

func (s InventoryService) DeleteTruck(id string) error {
	if !s.Repo.Delete(id) {
		return domain.NotFoundError{Resource: "truck", ID: id}
	}
	utils.LogEventf(s.RequestID, "inventory", "delete", "id=%s", id)
	return nil
}

func (s InventoryService) GetTruck(id string) (models.TruckInventory, error) {
	t, ok := s.Repo.Get(id)
	if !ok {
		return models.TruckInventory{}, domain.NotFoundError{Resource: "truck", ID: id}
	}
	return t, nil
}

func (s InventoryService) ListTrucks(query, status string) ([]models.TruckInventory, error) {
	st := models.TruckStatus(strings.TrimSpace(status))
	if st != "" && !st.Valid() {
		return nil, domain.ValidationError{Field: "status", Msg: "unknown truck status"}
	}
	if strings.TrimSpace(query) == "" && st == "" {
		return s.Repo.List(), nil
	}
	return s.Repo.Search(query, st), nil
}

func (s InventoryService) Models() []string {
	return s.Repo.Models()
}

func normalizeTruckInput(in *models.TruckInput) error {
	in.RegistrationNumber = strings.ToUpper(utils.NormalizeSpace(in.RegistrationNumber))
	in.NewRegistrationNumber = strings.ToUpper(utils.NormalizeSpace(in.NewRegistrationNumber))
	in.Model = utils.NormalizeSpace(in.Model)
	in.PurchaseDate = strings.TrimSpace(in.PurchaseDate)
	if in.Status == "" {
		in.Status = models.TruckAvailable
	}

	switch {
	case in.RegistrationNumber == "":
		return domain.ValidationError{Field: "registrationNumber", Msg: "is required"}
	case in.Model == "":
		return domain.ValidationError{Field: "model", Msg: "is required"}
	case !utils.IsDate(in.PurchaseDate):
		return domain.ValidationError{Field: "purchaseDate", Msg: "must be YYYY-MM-DD"}
	case in.FullPurchaseAmount < 0:
		return domain.ValidationError{Field: "fullPurchaseAmount", Msg: "must not be negative"}
	case !in.Status.Valid():
		return domain.ValidationError{Field: "status", Msg: "unknown truck status"}
	case in.Status == models.TruckSold && in.SaleDetails == nil:
		return domain.ValidationError{Field: "status", Msg: "a truck is sold only with sale details"}
	}
	if err := validateModelYear(in.InitialModelYear); err != nil {
		return err
	}
	if err := validateNOC(in.NOCApplied, &in.NOCAppliedDate, &in.NOCReceivedDate); err != nil {
		return err
	}
	if err := validateTruckExpenses(in.Expenses); err != nil {
		return err
	}
	payments, err := normalizePayments(in.PaymentModes)
	if err != nil {
		return err
	}
	in.PaymentModes = payments
	if in.SaleDetails != nil {
		if err := normalizeSale(in.SaleDetails); err != nil {
			return err
		}
		if in.SaleDetails.SaleDate < in.PurchaseDate {
			return domain.ValidationError{Field: "saleDate", Msg: "must not be before purchaseDate"}
		}
	}
	return nil
}

func normalizeTruckPatch(p *models.TruckPatch) error {
	if p.RegistrationNumber != nil {
		v := strings.ToUpper(utils.NormalizeSpace(*p.RegistrationNumber))
		if v == "" {
			return domain.ValidationError{Field: "registrationNumber", Msg: "is required"}
		}
		p.RegistrationNumber = &v
	}
	if p.NewRegistrationNumber != nil {
		v := strings.ToUpper(utils.NormalizeSpace(*p.NewRegistrationNumber))
		p.NewRegistrationNumber = &v
	}
	if p.Model != nil {
		v := utils.NormalizeSpace(*p.Model)
		if v == "" {
			return domain.ValidationError{Field: "model", Msg: "is required"}
		}
		p.Model = &v
	}
	if p.PurchaseDate != nil {
		v := strings.TrimSpace(*p.PurchaseDate)
		if !utils.IsDate(v) {
			return domain.ValidationError{Field: "purchaseDate", Msg: "must be YYYY-MM-DD"}
		}
		p.PurchaseDate = &v
	}
	if p.InitialModelYear != nil {
		if err := validateModelYear(*p.InitialModelYear); err != nil {
			return err
		}
	}
	if p.FullPurchaseAmount != nil && *p.FullPurchaseAmount < 0 {
		return domain.ValidationError{Field: "fullPurchaseAmount", Msg: "must not be negative"}
	}
	for _, d := range []*string{p.NOCAppliedDate, p.NOCReceivedDate} {
		if d == nil {
			continue
		}
		*d = strings.TrimSpace(*d)
		if *d != "" && !utils.IsDate(*d) {
			return domain.ValidationError{Field: "nocDate", Msg: "must be YYYY-MM-DD"}
		}
	}
	if p.Status != nil {
		if !p.Status.Valid() {
			return domain.ValidationError{Field: "status", Msg: "unknown truck status"}
		}
		if *p.Status == models.TruckSold {
			return domain.ValidationError{Field: "status", Msg: "use the sell endpoint to mark a truck sold"}
		}
	}
	if p.Expenses != nil {
		if err := validateTruckExpenses(*p.Expenses); err != nil {
			return err
		}
	}
	if p.PaymentModes != nil {
		payments, err := normalizePayments(p.PaymentModes)
		if err != nil {
			return err
		}
		p.PaymentModes = payments
	}
	return nil
}

func validateModelYear(year int) error {
	if year == 0 {
		return nil
	}
	if year < minModelYear || year > utils.NowUTC().Year()+1 {
		return domain.ValidationError{Field: "initialModelYear", Msg: "is out of range"}
	}
	return nil
}

func validateNOC(applied bool, appliedDate, receivedDate *string) error {
	*appliedDate = strings.TrimSpace(*appliedDate)
	*receivedDate = strings.TrimSpace(*receivedDate)
	if *appliedDate != "" && !utils.IsDate(*appliedDate) {
		return domain.ValidationError{Field: "nocAppliedDate", Msg: "must be YYYY-MM-DD"}
	}
	if *receivedDate != "" && !utils.IsDate(*receivedDate) {
		return domain.ValidationError{Field: "nocReceivedDate", Msg: "must be YYYY-MM-DD"}
	}
	if !applied && *receivedDate != "" {
		return domain.ValidationError{Field: "nocReceivedDate", Msg: "requires nocApplied"}
	}
	if *appliedDate != "" && *receivedDate != "" && *receivedDate < *appliedDate {
		return domain.ValidationError{Field: "nocReceivedDate", Msg: "must not be before nocAppliedDate"}
	}
	return nil
}

func validateTruckExpenses(e models.TruckExpenses) error {
	for _, v := range []float64{
		e.Transportation, e.Driver, e.Diesel, e.Toll, e.BodyWork, e.KamaniWork,
		e.Tyre, e.Paint, e.Floor, e.Fatta, e.Builty, e.Insurance,
	} {
		if v < 0 {
			return domain.ValidationError{Field: "expenses", Msg: "must not be negative"}
		}
	}
	return nil
}

// normalizePayments checks each instalment and gives entries without an
// id a fresh one.
func normalizePayments(in []models.PaymentEntry) ([]models.PaymentEntry, error) {
	out := make([]models.PaymentEntry, 0, len(in))
	for _, p := range in {
		p.Date = strings.TrimSpace(p.Date)
		switch {
		case !p.Mode.Valid():
			return nil, domain.ValidationError{Field: "paymentModes", Msg: "unknown payment mode " + string(p.Mode)}
		case p.Amount < 0:
			return nil, domain.ValidationError{Field: "paymentModes", Msg: "amount must not be negative"}
		case p.Percentage < 0 || p.Percentage > 100:
			return nil, domain.ValidationError{Field: "paymentModes", Msg: "percentage must be between 0 and 100"}
		case p.Date != "" && !utils.IsDate(p.Date):
			return nil, domain.ValidationError{Field: "paymentModes", Msg: "date must be YYYY-MM-DD"}
		case p.Mode == models.PaymentCheque && strings.TrimSpace(p.ChequeNumber) == "":
			return nil, domain.ValidationError{Field: "paymentModes", Msg: "cheque payments need a cheque number"}
		}
		if strings.TrimSpace(p.ID) == "" {
			p.ID = uuid.NewString()
		}
		out = append(out, p)
	}
	return out, nil
}

func normalizeSale(s *models.SaleDetails) error {
	s.SaleDate = strings.TrimSpace(s.SaleDate)
	s.BuyerDetails.Name = utils.NormalizeSpace(s.BuyerDetails.Name)
	s.CommissionDealerName = utils.NormalizeSpace(s.CommissionDealerName)
	switch {
	case s.BuyerDetails.Name == "":
		return domain.ValidationError{Field: "buyerDetails.name", Msg: "is required"}
	case !utils.IsDate(s.SaleDate):
		return domain.ValidationError{Field: "saleDate", Msg: "must be YYYY-MM-DD"}
	case s.SaleAmount <= 0:
		return domain.ValidationError{Field: "saleAmount", Msg: "must be positive"}
	case s.CommissionAmount < 0:
		return domain.ValidationError{Field: "commissionAmount", Msg: "must not be negative"}
	case s.CommissionAmount > s.SaleAmount:
		return domain.ValidationError{Field: "commissionAmount", Msg: "must not exceed saleAmount"}
	}
	return nil
}
