package relief

import (
	"fmt"

	"relief-coordination-backend/internal/apperr"
	"relief-coordination-backend/internal/model"
)

// requestTransitions is the allowed state machine for relief requests.
// completed and cancelled are terminal.
var requestTransitions = map[string][]string{
	model.RequestPending:    {model.RequestInProgress, model.RequestCancelled},
	model.RequestInProgress: {model.RequestCompleted, model.RequestCancelled},
	model.RequestCompleted:  {},
	model.RequestCancelled:  {},
}

// supplyTransitions is the allowed state machine for relief supplies.
// delivered and cancelled are terminal. A shipped transition additionally
// requires courier info, enforced by the caller.
var supplyTransitions = map[string][]string{
	model.SupplyPending:   {model.SupplyConfirmed, model.SupplyShipped, model.SupplyCancelled},
	model.SupplyConfirmed: {model.SupplyShipped, model.SupplyCancelled},
	model.SupplyShipped:   {model.SupplyDelivered},
	model.SupplyDelivered: {},
	model.SupplyCancelled: {},
}

func checkTransition(table map[string][]string, from, to, code string) error {
	allowed, known := table[from]
	if !known {
		return apperr.Validation(code, fmt.Sprintf("알 수 없는 상태입니다: %s", from))
	}
	for _, next := range allowed {
		if next == to {
			return nil
		}
	}
	return apperr.Validation(code, fmt.Sprintf("%s 상태에서 %s 상태로 변경할 수 없습니다.", from, to))
}
