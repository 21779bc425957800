package relief

import (
	"context"
	"time"

	"relief-coordination-backend/internal/apperr"
	"relief-coordination-backend/internal/ident"
	"relief-coordination-backend/internal/model"
	"relief-coordination-backend/internal/validate"
)

// SupplyInput carries the fields for a full supply registration, where the
// donor provides contact details up front.
type SupplyInput struct {
	RequestID        string
	SupplierID       string
	SupplierName     string
	SupplierPhone    string
	SupplierEmail    string
	SuppliedQuantity int
	Message          string
}

// SimpleSupplyInput is the deferred-contact variant: the donor picks an item
// and registers courier details later via RegisterTracking.
type SimpleSupplyInput struct {
	ShelterID   string
	ItemName    string
	Category    string
	Subcategory string
	Quantity    int
	Unit        string
	Priority    string
	Notes       string
}

// SupplyWithShelter annotates a supply record with its shelter for listing.
type SupplyWithShelter struct {
	model.ReliefSupply
	Shelter *model.Shelter `json:"shelter"`
}

// AddSupply records a donor's fulfillment of a request. The item fields are
// snapshotted from the request's representative line item at this moment;
// later edits to the request do not change the supply record.
func (s *Service) AddSupply(ctx context.Context, in SupplyInput) (*model.ReliefSupply, error) {
	if in.RequestID == "" || in.SupplierName == "" || in.SupplierPhone == "" ||
		in.SuppliedQuantity == 0 || in.SupplierID == "" {
		return nil, apperr.Validation("supply-missing-fields", "필수 필드가 누락되었습니다.")
	}
	if in.SuppliedQuantity < 0 {
		return nil, apperr.Validation("supply-invalid-quantity", "수량은 0보다 큰 숫자여야 합니다.")
	}
	if !validate.Phone(in.SupplierPhone) {
		return nil, apperr.Validation("supply-invalid-phone", "연락처 형식이 올바르지 않습니다.")
	}
	if in.SupplierEmail != "" && !validate.Email(in.SupplierEmail) {
		return nil, apperr.Validation("supply-invalid-email", "이메일 형식이 올바르지 않습니다.")
	}

	request, err := s.store.GetRequest(ctx, in.RequestID)
	if err != nil {
		return nil, err
	}

	supply := &model.ReliefSupply{
		ID:               ident.New(ident.PrefixSupply),
		RequestID:        &in.RequestID,
		ShelterID:        request.ShelterID,
		SupplierID:       in.SupplierID,
		SupplierName:     in.SupplierName,
		SupplierPhone:    in.SupplierPhone,
		SupplierEmail:    in.SupplierEmail,
		SupplierMessage:  in.Message,
		SuppliedQuantity: in.SuppliedQuantity,
		Priority:         request.Priority,
		Status:           model.SupplyPending,
	}
	if rep := request.RepresentativeItem(); rep != nil {
		supply.ItemName = rep.ItemName
		supply.Category = rep.Category
		supply.Subcategory = rep.Subcategory
		supply.RequestedQuantity = rep.Quantity
		supply.Unit = rep.Unit
	}

	if err := s.store.CreateSupply(ctx, supply); err != nil {
		return nil, err
	}
	return supply, nil
}

// AddSupplySimple creates a supply with blank supplier contact details, to be
// filled in when the courier info is registered.
func (s *Service) AddSupplySimple(ctx context.Context, requestID, userID string, item SimpleSupplyInput) (*model.ReliefSupply, error) {
	if requestID == "" || userID == "" || item.ItemName == "" {
		return nil, apperr.Validation("supply-missing-fields", "필수 필드가 누락되었습니다.")
	}
	if item.Quantity <= 0 {
		return nil, apperr.Validation("supply-invalid-quantity", "수량은 0보다 큰 숫자여야 합니다.")
	}

	request, err := s.store.GetRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}

	shelterID := item.ShelterID
	if shelterID == "" {
		shelterID = request.ShelterID
	}
	priority := item.Priority
	if priority == "" {
		priority = request.Priority
	}

	supply := &model.ReliefSupply{
		ID:                ident.New(ident.PrefixSupply),
		RequestID:         &requestID,
		ShelterID:         shelterID,
		SupplierID:        userID,
		SupplierMessage:   item.Notes,
		ItemName:          item.ItemName,
		Category:          item.Category,
		Subcategory:       item.Subcategory,
		RequestedQuantity: item.Quantity,
		SuppliedQuantity:  item.Quantity,
		Unit:              item.Unit,
		Priority:          priority,
		Status:            model.SupplyPending,
	}
	if err := s.store.CreateSupply(ctx, supply); err != nil {
		return nil, err
	}
	return supply, nil
}

// RegisterTracking attaches courier info to a supply and marks it shipped.
// Both fields are required together. Only the supplying donor may register.
func (s *Service) RegisterTracking(ctx context.Context, actorID, supplyID, courierCompany, trackingNumber string) (*model.ReliefSupply, error) {
	if !validate.NotBlank(courierCompany) || !validate.NotBlank(trackingNumber) {
		return nil, apperr.Validation("tracking-missing-fields", "택배사와 송장번호를 모두 입력해주세요.")
	}

	supply, err := s.store.GetSupply(ctx, supplyID)
	if err != nil {
		return nil, err
	}
	if supply.SupplierID != actorID {
		return nil, apperr.Auth("forbidden", "해당 공급 기록을 변경할 권한이 없습니다.")
	}
	if err := checkTransition(supplyTransitions, supply.Status, model.SupplyShipped, "supply-invalid-status"); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	supply.CourierCompany = courierCompany
	supply.TrackingNumber = trackingNumber
	supply.Status = model.SupplyShipped
	supply.ShippedAt = &now
	if err := s.store.SaveSupply(ctx, supply); err != nil {
		return nil, err
	}
	return supply, nil
}

// UpdateSupplyStatus moves a supply through its lifecycle under the guard
// table. Moving to shipped requires courier info to be present already; use
// RegisterTracking to attach it.
func (s *Service) UpdateSupplyStatus(ctx context.Context, actorID, supplyID, newStatus string) (*model.ReliefSupply, error) {
	supply, err := s.store.GetSupply(ctx, supplyID)
	if err != nil {
		return nil, err
	}
	if err := s.authorizeSupplyUpdate(ctx, actorID, supply, newStatus); err != nil {
		return nil, err
	}
	if err := checkTransition(supplyTransitions, supply.Status, newStatus, "supply-invalid-status"); err != nil {
		return nil, err
	}
	if newStatus == model.SupplyShipped &&
		(supply.CourierCompany == "" || supply.TrackingNumber == "") {
		return nil, apperr.Validation("tracking-missing-fields", "택배사와 송장번호를 모두 입력해주세요.")
	}

	supply.Status = newStatus
	if err := s.store.SaveSupply(ctx, supply); err != nil {
		return nil, err
	}
	return supply, nil
}

// CancelSupply cancels a pending or confirmed supply.
func (s *Service) CancelSupply(ctx context.Context, actorID, supplyID string) (*model.ReliefSupply, error) {
	return s.UpdateSupplyStatus(ctx, actorID, supplyID, model.SupplyCancelled)
}

// authorizeSupplyUpdate enforces who may move a supply: the donor cancels
// their own pledge, the shelter manager confirms and acknowledges delivery.
func (s *Service) authorizeSupplyUpdate(ctx context.Context, actorID string, supply *model.ReliefSupply, newStatus string) error {
	if newStatus == model.SupplyCancelled {
		if supply.SupplierID != actorID {
			return apperr.Auth("forbidden", "해당 공급 기록을 변경할 권한이 없습니다.")
		}
		return nil
	}
	shelter, err := s.store.GetShelter(ctx, supply.ShelterID)
	if err != nil {
		return err
	}
	if shelter.ManagerID != actorID {
		return apperr.Auth("forbidden", "해당 공급 기록을 변경할 권한이 없습니다.")
	}
	return nil
}

// ListSuppliesByUser returns a donor's supplies, most recent first, each
// annotated with its shelter via one batched lookup.
func (s *Service) ListSuppliesByUser(ctx context.Context, userID string) ([]SupplyWithShelter, error) {
	supplies, err := s.store.ListSuppliesByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.annotateShelters(ctx, supplies)
}

// ListSuppliesByShelter returns a shelter's incoming supplies, most recent
// first.
func (s *Service) ListSuppliesByShelter(ctx context.Context, shelterID string) ([]model.ReliefSupply, error) {
	if shelterID == "" {
		return nil, apperr.Validation("missing-shelter-id", "대피소 ID가 필요합니다.")
	}
	return s.store.ListSuppliesByShelter(ctx, shelterID)
}

func (s *Service) annotateShelters(ctx context.Context, supplies []model.ReliefSupply) ([]SupplyWithShelter, error) {
	ids := make([]string, 0, len(supplies))
	seen := make(map[string]bool, len(supplies))
	for _, sup := range supplies {
		if !seen[sup.ShelterID] {
			seen[sup.ShelterID] = true
			ids = append(ids, sup.ShelterID)
		}
	}
	shelters, err := s.store.SheltersByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	annotated := make([]SupplyWithShelter, len(supplies))
	for i, sup := range supplies {
		annotated[i] = SupplyWithShelter{ReliefSupply: sup}
		if shelter, ok := shelters[sup.ShelterID]; ok {
			sh := shelter
			annotated[i].Shelter = &sh
		}
	}
	return annotated, nil
}
