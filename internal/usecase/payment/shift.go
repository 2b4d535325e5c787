package payment

import "github.com/yaovidiy/e-commerce-cms/internal/domain"

// Shift management pre-checks the current state so the admin gets a clear
// "already open" / "none open" rejection instead of the raw Checkbox error.

func (uc *DefaultPaymentUsecase) OpenShift() (*domain.Shift, error) {
	current, err := uc.Fiscal.CurrentShift()
	if err != nil {
		return nil, err
	}
	if current != nil {
		return nil, domain.ErrShiftAlreadyOpen
	}

	return uc.Fiscal.OpenShift()
}

func (uc *DefaultPaymentUsecase) CloseShift() (*domain.Shift, error) {
	current, err := uc.Fiscal.CurrentShift()
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, domain.ErrNoOpenShift
	}

	return uc.Fiscal.CloseShift()
}

func (uc *DefaultPaymentUsecase) CurrentShift() (*domain.Shift, error) {
	return uc.Fiscal.CurrentShift()
}
