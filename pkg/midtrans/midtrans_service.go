package midtrans

import (
	"context"
	"errors"
	"fmt"

	"tabletalk-backend/domain"
	"tabletalk-backend/entities"
	"tabletalk-backend/pkg/order"

	"github.com/gofiber/fiber/v2/log"
	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
	"gorm.io/gorm"
)

type (
	MidtransService interface {
		CreateTransaction(ctx context.Context, req domain.CreateTransactionRequest, userID string) (domain.CreateTransactionResponse, error)
		HandleNotification(ctx context.Context, req domain.PaymentNotificationRequest) error
	}

	midtransService struct {
		orderRepository order.OrderRepository
		snapClient      SnapClient
	}
)

func NewMidtransService(orderRepository order.OrderRepository, snapClient SnapClient) MidtransService {
	return &midtransService{
		orderRepository: orderRepository,
		snapClient:      snapClient,
	}
}

// CreateTransaction exchanges a pending order for a Snap payment token. It
// never changes the order status; only a reconciled notification does that.
func (s *midtransService) CreateTransaction(ctx context.Context, req domain.CreateTransactionRequest, userID string) (domain.CreateTransactionResponse, error) {
	ord, err := s.orderRepository.GetOrderByID(ctx, req.OrderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.CreateTransactionResponse{}, domain.ErrOrderNotFound
		}
		return domain.CreateTransactionResponse{}, err
	}

	if ord.UserID.String() != userID {
		return domain.CreateTransactionResponse{}, domain.ErrOrderNotFound
	}

	if ord.Status != entities.OrderStatusPending {
		return domain.CreateTransactionResponse{}, domain.ErrOrderNotPayable
	}

	snapReq := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  BuildOrderReference(ord.ID),
			GrossAmt: int64(ord.Total),
		},
		CreditCard: &snap.CreditCardDetails{
			Secure: true,
		},
	}

	snapResp, snapErr := s.snapClient.CreateTransaction(snapReq)
	if snapErr != nil {
		log.Errorf("snap transaction for order %d failed: %s", ord.ID, snapErr.Message)
		return domain.CreateTransactionResponse{}, fmt.Errorf("%w: %s", domain.ErrPaymentGatewayFailed, snapErr.Message)
	}

	return domain.CreateTransactionResponse{
		Token:       snapResp.Token,
		RedirectURL: snapResp.RedirectURL,
	}, nil
}

// HandleNotification reconciles an asynchronous gateway notification with the
// order it references. Deliveries are at-least-once and possibly out of
// order, so the transition is a single conditional write: replays and late
// notifications against a terminal status become no-ops.
func (s *midtransService) HandleNotification(ctx context.Context, req domain.PaymentNotificationRequest) error {
	orderID, err := ParseOrderReference(req.OrderID)
	if err != nil {
		return err
	}

	ord, err := s.orderRepository.GetOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrOrderNotFound
		}
		return err
	}

	var target string
	switch req.TransactionStatus {
	case "capture", "settlement":
		target = entities.OrderStatusPaid
	case "deny", "expire", "cancel":
		target = entities.OrderStatusFailed
	case "pending":
		// The order was created pending; nothing to record.
		return nil
	default:
		// The gateway must not be made to retry over a status this
		// system does not act on.
		log.Warnf("ignoring unrecognized transaction_status %q for order %d", req.TransactionStatus, ord.ID)
		return nil
	}

	applied, err := s.orderRepository.MarkOrderStatus(ctx, ord.ID, target)
	if err != nil {
		return err
	}

	if applied {
		log.Infof("order %d status: %s -> %s (transaction_status=%s)", ord.ID, ord.Status, target, req.TransactionStatus)
	} else {
		log.Infof("order %d already settled, notification %q ignored", ord.ID, req.TransactionStatus)
	}
	return nil
}
