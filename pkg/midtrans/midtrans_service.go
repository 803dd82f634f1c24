package midtrans

import (
	"context"
	"errors"
	"fmt"

	"nutriscan-api/domain"
	"nutriscan-api/entities"
	"nutriscan-api/internal/utils"
	"nutriscan-api/pkg/user"

	"github.com/google/uuid"
	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
	"gorm.io/gorm"
)

// PremiumPrice is the one-time premium unlock price in IDR.
const PremiumPrice int64 = 49000

type (
	MidtransService interface {
		CreateSubscription(ctx context.Context, userID string) (domain.SubscribeResponse, error)
		HandleNotification(ctx context.Context, payload map[string]interface{}) error
	}

	midtransService struct {
		midtransRepository MidtransRepository
		userRepository     user.UserRepository
	}
)

func NewMidtransService(midtransRepository MidtransRepository, userRepository user.UserRepository) MidtransService {
	return &midtransService{
		midtransRepository: midtransRepository,
		userRepository:     userRepository,
	}
}

func snapClient() snap.Client {
	env := midtrans.Sandbox
	if utils.GetConfig("IsProd") == "true" {
		env = midtrans.Production
	}

	var client snap.Client
	client.New(utils.GetConfig("SERVER_KEY"), env)
	return client
}

func (s *midtransService) CreateSubscription(ctx context.Context, userID string) (domain.SubscribeResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.SubscribeResponse{}, domain.ErrParseUUID
	}

	usr, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.SubscribeResponse{}, domain.ErrUserNotFound
		}
		return domain.SubscribeResponse{}, err
	}
	if usr.IsPremium {
		return domain.SubscribeResponse{}, domain.ErrAlreadyPremium
	}

	orderID := fmt.Sprintf("premium-%s", uuid.New().String())

	client := snapClient()
	snapReq := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderID,
			GrossAmt: PremiumPrice,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: usr.Name,
			Email: usr.Email,
		},
	}

	snapResp, snapErr := client.CreateTransaction(snapReq)
	if snapErr != nil {
		return domain.SubscribeResponse{}, snapErr
	}

	transaction := &entities.Transaction{
		ID:      uuid.New(),
		UserID:  userUUID,
		OrderID: orderID,
		Amount:  PremiumPrice,
		Status:  "pending",
	}
	if err := s.midtransRepository.CreateTransaction(ctx, transaction); err != nil {
		return domain.SubscribeResponse{}, err
	}

	return domain.SubscribeResponse{
		OrderID:     orderID,
		RedirectURL: snapResp.RedirectURL,
		Token:       snapResp.Token,
	}, nil
}

func (s *midtransService) HandleNotification(ctx context.Context, payload map[string]interface{}) error {
	orderID, ok := payload["order_id"].(string)
	if !ok {
		return errors.New("notification missing order_id")
	}
	status, ok := payload["transaction_status"].(string)
	if !ok {
		return errors.New("notification missing transaction_status")
	}

	transaction, err := s.midtransRepository.GetTransactionByOrderID(ctx, orderID)
	if err != nil {
		return err
	}

	switch status {
	case "settlement", "capture":
		transaction.Status = "settlement"
	case "expire":
		transaction.Status = "expire"
	case "cancel", "deny":
		transaction.Status = "cancel"
	default:
		transaction.Status = status
	}

	if err := s.midtransRepository.UpdateTransaction(ctx, transaction); err != nil {
		return err
	}

	if transaction.Status != "settlement" {
		return nil
	}

	usr, err := s.userRepository.GetUserByID(ctx, transaction.UserID.String())
	if err != nil {
		return err
	}
	usr.IsPremium = true
	return s.userRepository.UpdateUser(ctx, usr)
}
