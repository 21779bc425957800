package relief

import (
	"context"

	"relief-coordination-backend/internal/apperr"
	"relief-coordination-backend/internal/ident"
	"relief-coordination-backend/internal/model"
)

// ItemInput is one line item of a new relief request.
type ItemInput struct {
	Category    string
	Subcategory string
	ItemName    string
	Quantity    int
	Unit        string
	Priority    string
	Notes       string
}

// RequestInput carries the fields for relief request creation.
type RequestInput struct {
	ShelterID   string
	RequesterID string
	Priority    string
	Notes       string
	Items       []ItemInput
}

// CreateReliefRequest registers a shelter's need. The request starts pending
// with total_items equal to the number of line items.
func (s *Service) CreateReliefRequest(ctx context.Context, in RequestInput) (*model.ReliefRequest, error) {
	if in.ShelterID == "" || len(in.Items) == 0 {
		return nil, apperr.Validation("relief-request-invalid", "대피소 ID와 구호품 목록을 입력해주세요.")
	}
	for _, item := range in.Items {
		if item.Category == "" || item.Subcategory == "" || item.ItemName == "" || item.Unit == "" {
			return nil, apperr.Validation("relief-item-incomplete", "구호품 정보를 모두 입력해주세요.")
		}
		if item.Quantity <= 0 {
			return nil, apperr.Validation("relief-item-invalid-quantity", "수량은 0보다 큰 숫자여야 합니다.")
		}
	}
	if _, err := s.store.GetShelter(ctx, in.ShelterID); err != nil {
		return nil, err
	}

	priority := in.Priority
	if priority == "" {
		priority = model.PriorityNormal
	}

	items := make([]model.ReliefItem, len(in.Items))
	for i, item := range in.Items {
		itemPriority := item.Priority
		if itemPriority == "" {
			itemPriority = priority
		}
		items[i] = model.ReliefItem{
			Position:    i,
			Category:    item.Category,
			Subcategory: item.Subcategory,
			ItemName:    item.ItemName,
			Quantity:    item.Quantity,
			Unit:        item.Unit,
			Priority:    itemPriority,
			Notes:       item.Notes,
		}
	}

	request := &model.ReliefRequest{
		ID:          ident.New(ident.PrefixRequest),
		ShelterID:   in.ShelterID,
		RequesterID: in.RequesterID,
		Priority:    priority,
		Status:      model.RequestPending,
		TotalItems:  len(items),
		Notes:       in.Notes,
		Items:       items,
	}
	if err := s.store.CreateRequest(ctx, request); err != nil {
		return nil, err
	}
	return request, nil
}

// GetReliefRequest returns the request with its line items.
func (s *Service) GetReliefRequest(ctx context.Context, id string) (*model.ReliefRequest, error) {
	return s.store.GetRequest(ctx, id)
}

// ListRequestsByShelter returns a shelter's requests, most recent first.
func (s *Service) ListRequestsByShelter(ctx context.Context, shelterID string) ([]model.ReliefRequest, error) {
	if shelterID == "" {
		return nil, apperr.Validation("missing-shelter-id", "대피소 ID가 필요합니다.")
	}
	return s.store.ListRequestsByShelter(ctx, shelterID)
}

// ListAllPendingRequests returns every pending request, most recent first.
func (s *Service) ListAllPendingRequests(ctx context.Context) ([]model.ReliefRequest, error) {
	return s.store.ListRequestsByStatus(ctx, model.RequestPending)
}

// UpdateRequestStatus moves a request through its lifecycle. Illegal
// transitions are rejected. Only the owning shelter's manager may update.
func (s *Service) UpdateRequestStatus(ctx context.Context, actorID, requestID, newStatus, notes string) (*model.ReliefRequest, error) {
	request, err := s.store.GetRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}
	shelter, err := s.store.GetShelter(ctx, request.ShelterID)
	if err != nil {
		return nil, err
	}
	if shelter.ManagerID != actorID {
		return nil, apperr.Auth("forbidden", "해당 구호품 요청을 변경할 권한이 없습니다.")
	}
	if err := checkTransition(requestTransitions, request.Status, newStatus, "relief-request-invalid-status"); err != nil {
		return nil, err
	}

	request.Status = newStatus
	if notes != "" {
		request.Notes = notes
	}
	if err := s.store.SaveRequest(ctx, request); err != nil {
		return nil, err
	}
	return request, nil
}
