package relief

import (
	"context"

	"relief-coordination-backend/internal/apperr"
	"relief-coordination-backend/internal/ident"
	"relief-coordination-backend/internal/model"
)

// MatchResult pairs the matching requests with the preference list that
// produced them.
type MatchResult struct {
	Requests    []model.ReliefRequest      `json:"requests"`
	Preferences []model.DonationPreference `json:"user_donations"`
}

// AddDonationPreference registers a standing pledge of what a donor is
// willing to supply.
func (s *Service) AddDonationPreference(ctx context.Context, userID, itemName string, quantity int, unit string) (*model.DonationPreference, error) {
	if userID == "" || itemName == "" || quantity == 0 || unit == "" {
		return nil, apperr.Validation("donation-missing-fields", "필수 필드가 누락되었습니다.")
	}
	if quantity < 0 {
		return nil, apperr.Validation("donation-invalid-quantity", "수량은 0보다 큰 숫자여야 합니다.")
	}

	donation := &model.DonationPreference{
		ID:       ident.New(ident.PrefixDonation),
		UserID:   userID,
		ItemName: itemName,
		Quantity: quantity,
		Unit:     unit,
		Active:   true,
	}
	if err := s.store.CreateDonation(ctx, donation); err != nil {
		return nil, err
	}
	return donation, nil
}

// ListDonationPreferences returns the user's active preferences, most recent
// first.
func (s *Service) ListDonationPreferences(ctx context.Context, userID string) ([]model.DonationPreference, error) {
	if userID == "" {
		return nil, apperr.Validation("missing-user-id", "사용자 ID가 필요합니다.")
	}
	return s.store.ListActiveDonationsByUser(ctx, userID)
}

// RemoveDonationPreference soft-deletes a preference by flipping it inactive.
// Only its owner may remove it.
func (s *Service) RemoveDonationPreference(ctx context.Context, actorID, donationID string) error {
	if donationID == "" {
		return apperr.Validation("missing-donation-id", "기부 물품 ID가 필요합니다.")
	}
	donation, err := s.store.GetDonation(ctx, donationID)
	if err != nil {
		return err
	}
	if donation.UserID != actorID {
		return apperr.Auth("forbidden", "해당 기부 물품을 삭제할 권한이 없습니다.")
	}
	donation.Active = false
	return s.store.SaveDonation(ctx, donation)
}

// GetMatchingReliefRequests finds open requests whose representative item
// name overlaps any of the user's active donation preferences. With no
// preferences the request scan is skipped entirely. Matches keep the request
// list's most-recent-first order; no ranking is applied.
func (s *Service) GetMatchingReliefRequests(ctx context.Context, userID string) (*MatchResult, error) {
	if userID == "" {
		return nil, apperr.Validation("missing-user-id", "사용자 ID가 필요합니다.")
	}

	preferences, err := s.store.ListActiveDonationsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(preferences) == 0 {
		return &MatchResult{Requests: []model.ReliefRequest{}, Preferences: []model.DonationPreference{}}, nil
	}

	requests, err := s.store.ListRequestsByStatus(ctx, model.RequestPending)
	if err != nil {
		return nil, err
	}

	matched := make([]model.ReliefRequest, 0, len(requests))
	for _, request := range requests {
		rep := request.RepresentativeItem()
		if rep == nil {
			continue
		}
		for _, pref := range preferences {
			if s.matcher.Match(pref.ItemName, rep.ItemName) {
				matched = append(matched, request)
				break
			}
		}
	}

	return &MatchResult{Requests: matched, Preferences: preferences}, nil
}

// MatchDonorsForRequest returns the user ids of donors whose active
// preferences match any line item of the request. Used for push alerts when
// a new request is registered.
func (s *Service) MatchDonorsForRequest(ctx context.Context, request *model.ReliefRequest) ([]string, error) {
	donations, err := s.store.ListActiveDonations(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var userIDs []string
	for _, donation := range donations {
		if seen[donation.UserID] {
			continue
		}
		for _, item := range request.Items {
			if s.matcher.Match(donation.ItemName, item.ItemName) {
				seen[donation.UserID] = true
				userIDs = append(userIDs, donation.UserID)
				break
			}
		}
	}
	return userIDs, nil
}
