package relief

import (
	"context"

	"relief-coordination-backend/internal/apperr"
	"relief-coordination-backend/internal/ident"
	"relief-coordination-backend/internal/model"
	"relief-coordination-backend/internal/store"
	"relief-coordination-backend/internal/validate"
)

// Service is the relief coordination engine: shelters, requests, supplies,
// donation preferences, matching and statistics over a Store.
type Service struct {
	store   store.Store
	matcher Matcher
}

// NewService creates the engine with the default substring matcher.
func NewService(st store.Store) *Service {
	return &Service{store: st, matcher: SubstringMatcher{}}
}

// NewServiceWithMatcher creates the engine with a custom matcher.
func NewServiceWithMatcher(st store.Store, m Matcher) *Service {
	return &Service{store: st, matcher: m}
}

// ShelterInput carries the fields for shelter creation.
type ShelterInput struct {
	Name                string
	Location            string
	Latitude            *float64
	Longitude           *float64
	DisasterType        string
	Capacity            int
	CurrentOccupancy    *int
	HasDisabledFacility bool
	HasPetZone          bool
	Status              string
	ContactPerson       string
	ContactPhone        string
	ManagerID           string
}

// ShelterPatch carries a partial shelter update; nil fields are untouched.
type ShelterPatch struct {
	Name                *string
	Location            *string
	Latitude            *float64
	Longitude           *float64
	DisasterType        *string
	Capacity            *int
	CurrentOccupancy    *int
	HasDisabledFacility *bool
	HasPetZone          *bool
	Status              *string
	ContactPerson       *string
	ContactPhone        *string
}

// CreateShelter validates the input, derives the occupancy rate and persists
// a new shelter owned by its manager.
func (s *Service) CreateShelter(ctx context.Context, in ShelterInput) (*model.Shelter, error) {
	if in.Name == "" || in.Location == "" || in.DisasterType == "" || in.Capacity == 0 ||
		in.CurrentOccupancy == nil || in.Status == "" || in.ContactPerson == "" || in.ContactPhone == "" {
		return nil, apperr.Validation("shelter-missing-fields", "필수 항목을 모두 입력해주세요.")
	}
	if in.Capacity < 0 {
		return nil, apperr.Validation("shelter-invalid-capacity", "수용 인원은 0보다 큰 숫자여야 합니다.")
	}
	if *in.CurrentOccupancy < 0 {
		return nil, apperr.Validation("shelter-invalid-occupancy", "현재 인원은 0 이상이어야 합니다.")
	}
	if !validate.Phone(in.ContactPhone) {
		return nil, apperr.Validation("shelter-invalid-phone", "연락처 형식이 올바르지 않습니다.")
	}

	shelter := &model.Shelter{
		ID:                  ident.New(ident.PrefixShelter),
		Name:                in.Name,
		Location:            in.Location,
		Latitude:            in.Latitude,
		Longitude:           in.Longitude,
		DisasterType:        in.DisasterType,
		Capacity:            in.Capacity,
		CurrentOccupancy:    *in.CurrentOccupancy,
		OccupancyRate:       model.ComputeOccupancyRate(*in.CurrentOccupancy, in.Capacity),
		HasDisabledFacility: in.HasDisabledFacility,
		HasPetZone:          in.HasPetZone,
		Status:              in.Status,
		ContactPerson:       in.ContactPerson,
		ContactPhone:        in.ContactPhone,
		ManagerID:           in.ManagerID,
	}
	if err := s.store.CreateShelter(ctx, shelter); err != nil {
		return nil, err
	}
	return shelter, nil
}

// GetShelter returns the shelter or a not-found error.
func (s *Service) GetShelter(ctx context.Context, id string) (*model.Shelter, error) {
	return s.store.GetShelter(ctx, id)
}

// UpdateShelter merges the patch into the stored record. The occupancy rate
// is recomputed from the merged capacity and occupancy whenever either is
// part of the update. Only the owning manager may update a shelter.
func (s *Service) UpdateShelter(ctx context.Context, actorID, id string, patch ShelterPatch) (*model.Shelter, error) {
	shelter, err := s.store.GetShelter(ctx, id)
	if err != nil {
		return nil, err
	}
	if shelter.ManagerID != actorID {
		return nil, apperr.Auth("forbidden", "해당 대피소를 관리할 권한이 없습니다.")
	}

	if patch.Name != nil {
		shelter.Name = *patch.Name
	}
	if patch.Location != nil {
		shelter.Location = *patch.Location
	}
	if patch.Latitude != nil {
		shelter.Latitude = patch.Latitude
	}
	if patch.Longitude != nil {
		shelter.Longitude = patch.Longitude
	}
	if patch.DisasterType != nil {
		shelter.DisasterType = *patch.DisasterType
	}
	if patch.HasDisabledFacility != nil {
		shelter.HasDisabledFacility = *patch.HasDisabledFacility
	}
	if patch.HasPetZone != nil {
		shelter.HasPetZone = *patch.HasPetZone
	}
	if patch.Status != nil {
		shelter.Status = *patch.Status
	}
	if patch.ContactPerson != nil {
		shelter.ContactPerson = *patch.ContactPerson
	}
	if patch.ContactPhone != nil {
		if !validate.Phone(*patch.ContactPhone) {
			return nil, apperr.Validation("shelter-invalid-phone", "연락처 형식이 올바르지 않습니다.")
		}
		shelter.ContactPhone = *patch.ContactPhone
	}
	if patch.Capacity != nil || patch.CurrentOccupancy != nil {
		if patch.Capacity != nil {
			shelter.Capacity = *patch.Capacity
		}
		if patch.CurrentOccupancy != nil {
			shelter.CurrentOccupancy = *patch.CurrentOccupancy
		}
		if shelter.Capacity <= 0 {
			return nil, apperr.Validation("shelter-invalid-capacity", "수용 인원은 0보다 큰 숫자여야 합니다.")
		}
		if shelter.CurrentOccupancy < 0 {
			return nil, apperr.Validation("shelter-invalid-occupancy", "현재 인원은 0 이상이어야 합니다.")
		}
		shelter.OccupancyRate = model.ComputeOccupancyRate(shelter.CurrentOccupancy, shelter.Capacity)
	}

	if err := s.store.SaveShelter(ctx, shelter); err != nil {
		return nil, err
	}
	return shelter, nil
}

// DeleteShelter removes the shelter. Deleting an absent id succeeds. Only the
// owning manager may delete.
func (s *Service) DeleteShelter(ctx context.Context, actorID, id string) error {
	shelter, err := s.store.GetShelter(ctx, id)
	if err != nil {
		if apperr.KindOf(err) == apperr.KindNotFound {
			return nil
		}
		return err
	}
	if shelter.ManagerID != actorID {
		return apperr.Auth("forbidden", "해당 대피소를 관리할 권한이 없습니다.")
	}
	return s.store.DeleteShelter(ctx, id)
}

// ListAllShelters returns every shelter, most recent first.
func (s *Service) ListAllShelters(ctx context.Context) ([]model.Shelter, error) {
	return s.store.ListShelters(ctx, store.ShelterFilter{})
}

// ListSheltersByManager returns the manager's shelters, most recent first.
func (s *Service) ListSheltersByManager(ctx context.Context, managerID string) ([]model.Shelter, error) {
	return s.store.ListShelters(ctx, store.ShelterFilter{ManagerID: managerID})
}

// ListSheltersByDisasterType returns shelters for a disaster type, most
// recent first.
func (s *Service) ListSheltersByDisasterType(ctx context.Context, disasterType string) ([]model.Shelter, error) {
	return s.store.ListShelters(ctx, store.ShelterFilter{DisasterType: disasterType})
}

// ListOperatingShelters returns shelters currently operating, most recent
// first.
func (s *Service) ListOperatingShelters(ctx context.Context) ([]model.Shelter, error) {
	return s.store.ListShelters(ctx, store.ShelterFilter{OperatingOnly: true})
}
