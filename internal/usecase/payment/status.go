package payment

import (
	"github.com/yaovidiy/e-commerce-cms/internal/domain"
	paymentdto "github.com/yaovidiy/e-commerce-cms/internal/usecase/dto/payment"
)

// CheckPaymentStatus polls the gateway for orders where the webhook has not
// arrived. Same transition rule as the webhook path, but no fiscalization
// side effect - that stays an explicit admin action.
func (uc *DefaultPaymentUsecase) CheckPaymentStatus(orderID string) (*paymentdto.StatusOutput, error) {
	order, err := uc.OrderRepo.GetOrderByID(orderID)
	if err != nil {
		return nil, err
	}

	payment, err := uc.PaymentRepo.GetPaymentByOrderID(orderID)
	if err != nil {
		return nil, err
	}

	if payment.Provider == domain.ProviderCOD {
		return &paymentdto.StatusOutput{
			Status:   payment.Status,
			Provider: payment.Provider,
		}, nil
	}

	gatewayStatus, err := uc.Gateway.QueryStatus(order.OrderNumber)
	if err != nil {
		return nil, err
	}

	paymentStatus, _, applied, err := uc.applyGatewayStatus(order, payment, gatewayStatus)
	if err != nil {
		return nil, err
	}

	return &paymentdto.StatusOutput{
		Status:   paymentStatus,
		Provider: payment.Provider,
		Applied:  applied,
	}, nil
}
